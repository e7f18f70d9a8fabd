package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robomillo/sql-formatter/token"
	"github.com/robomillo/sql-formatter/tokenizer"
)

func TestAllDialectsConstruct(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			cfg, ok := ByName(name)
			require.True(t, ok)
			_, err := tokenizer.New(cfg)
			require.NoError(t, err)
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"standard", "STANDARD", " Standard "} {
		_, ok := ByName(name)
		assert.True(t, ok, "lookup %q", name)
	}
	_, ok := ByName("sqlite")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"db2", "n1ql", "plsql", "standard"}, Names())
}

func TestStandardClassification(t *testing.T) {
	tok, err := tokenizer.New(Standard())
	require.NoError(t, err)

	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"SELECT", token.RESERVED_TOPLEVEL},
		{"group by", token.RESERVED_TOPLEVEL},
		{"DELETE FROM", token.RESERVED_TOPLEVEL},
		{"left outer join", token.RESERVED_NEWLINE},
		{"and", token.RESERVED_NEWLINE},
		{"between", token.RESERVED},
		{"character set", token.RESERVED},
		{"on update", token.RESERVED},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := tok.Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, ts, 1)
			assert.Equal(t, tt.kind, ts[0].Kind)
		})
	}

	// Function names classify only when called.
	ts, err := tok.Tokenize("count(*)")
	require.NoError(t, err)
	require.NotEmpty(t, ts)
	assert.Equal(t, token.RESERVED, ts[0].Kind)

	ts, err = tok.Tokenize("now()")
	require.NoError(t, err)
	assert.Equal(t, token.RESERVED, ts[0].Kind)
}

func TestDialectSpotChecks(t *testing.T) {
	checks := []struct {
		dialect string
		input   string
		kind    token.Kind
	}{
		{"n1ql", "UPSERT INTO", token.RESERVED_TOPLEVEL},
		{"n1ql", "USE KEYS", token.RESERVED_TOPLEVEL},
		{"n1ql", "satisfies", token.RESERVED},
		{"db2", "FETCH FIRST", token.RESERVED_TOPLEVEL},
		{"db2", "buffersize", token.WORD},
		{"plsql", "START WITH", token.RESERVED_TOPLEVEL},
		{"plsql", "CROSS APPLY", token.RESERVED_NEWLINE},
		{"plsql", "rownum", token.RESERVED},
	}
	for _, c := range checks {
		t.Run(c.dialect+"/"+c.input, func(t *testing.T) {
			cfg, ok := ByName(c.dialect)
			require.True(t, ok)
			tok, err := tokenizer.New(cfg)
			require.NoError(t, err)
			ts, err := tok.Tokenize(c.input)
			require.NoError(t, err)
			require.NotEmpty(t, ts)
			assert.Equal(t, c.kind, ts[0].Kind)
		})
	}
}

func TestDialectsRoundTrip(t *testing.T) {
	const query = "SELECT a, COUNT(*) FROM t WHERE a BETWEEN 1 AND 10 GROUP BY a -- done\n"
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			cfg, _ := ByName(name)
			tok, err := tokenizer.New(cfg)
			require.NoError(t, err)
			ts, err := tok.Tokenize(query)
			require.NoError(t, err)
			assert.Equal(t, query, ts.String())
		})
	}
}
