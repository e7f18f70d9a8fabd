package format

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGolden formats each testdata/<case>/input.sql and compares the
// result against testdata/<case>/expected.sql. Expected files carry a
// trailing newline; Format output does not.
func TestGolden(t *testing.T) {
	entries, err := os.ReadDir("testdata")
	require.NoError(t, err)

	f := testFormatter(t, Options{})

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		t.Run(entry.Name(), func(t *testing.T) {
			dir := filepath.Join("testdata", entry.Name())

			input, err := os.ReadFile(filepath.Join(dir, "input.sql"))
			require.NoError(t, err)
			expected, err := os.ReadFile(filepath.Join(dir, "expected.sql"))
			require.NoError(t, err)

			got, err := f.Format(string(input))
			require.NoError(t, err)
			assert.Equal(t, strings.TrimRight(string(expected), "\n"), got)
		})
	}
}
