package format

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robomillo/sql-formatter/dialect"
	"github.com/robomillo/sql-formatter/internal/normalize"
	"github.com/robomillo/sql-formatter/tokenizer"
)

func testFormatter(t *testing.T, opts Options) *Formatter {
	t.Helper()
	tok, err := tokenizer.New(dialect.Standard())
	require.NoError(t, err)
	return New(tok, opts)
}

func TestFormat(t *testing.T) {
	f := testFormatter(t, Options{})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "simple select",
			in:   "SELECT * FROM t",
			want: "SELECT\n  *\nFROM\n  t",
		},
		{
			name: "select list",
			in:   "SELECT a, b, c FROM t WHERE x = 1 AND y < 2",
			want: "SELECT\n  a,\n  b,\n  c\nFROM\n  t\nWHERE\n  x = 1\n  AND y < 2",
		},
		{
			name: "messy whitespace",
			in:   "select   a,b\n\t from    t",
			want: "select\n  a,\n  b\nfrom\n  t",
		},
		{
			name: "function call",
			in:   "SELECT COUNT(*) AS n FROM t",
			want: "SELECT\n  COUNT(*) AS n\nFROM\n  t",
		},
		{
			name: "inline parens",
			in:   "SELECT a FROM t WHERE x IN (1, 2)",
			want: "SELECT\n  a\nFROM\n  t\nWHERE\n  x IN (1, 2)",
		},
		{
			name: "subquery",
			in:   "SELECT * FROM (SELECT id FROM u) x",
			want: "SELECT\n  *\nFROM\n  (\n    SELECT\n      id\n    FROM\n      u\n  ) x",
		},
		{
			name: "limit pair stays inline",
			in:   "SELECT a FROM t LIMIT 10, 20",
			want: "SELECT\n  a\nFROM\n  t\nLIMIT\n  10, 20",
		},
		{
			name: "limit offset",
			in:   "SELECT a FROM t LIMIT 10 OFFSET 5",
			want: "SELECT\n  a\nFROM\n  t\nLIMIT\n  10 OFFSET 5",
		},
		{
			name: "update",
			in:   "UPDATE t SET a = 1, b = 2 WHERE id = 3",
			want: "UPDATE\n  t\nSET\n  a = 1,\n  b = 2\nWHERE\n  id = 3",
		},
		{
			name: "delete",
			in:   "DELETE FROM sessions WHERE expires_at < NOW()",
			want: "DELETE FROM\n  sessions\nWHERE\n  expires_at < NOW()",
		},
		{
			name: "join",
			in:   "SELECT a FROM t1 INNER JOIN t2 ON t1.id = t2.id",
			want: "SELECT\n  a\nFROM\n  t1\n  INNER JOIN t2 ON t1.id = t2.id",
		},
		{
			name: "case expression",
			in:   "SELECT CASE WHEN x = 1 THEN 'one' ELSE 'other' END AS label FROM t",
			want: "SELECT\n  CASE WHEN x = 1 THEN 'one' ELSE 'other' END AS label\nFROM\n  t",
		},
		{
			name: "glued operators",
			in:   "SELECT * FROM t WHERE a != b",
			want: "SELECT\n  *\nFROM\n  t\nWHERE\n  a != b",
		},
		{
			name: "dotted names",
			in:   "SELECT t.a FROM db.t",
			want: "SELECT\n  t.a\nFROM\n  db.t",
		},
		{
			name: "variables",
			in:   "SET @a = 1",
			want: "SET\n  @a = 1",
		},
		{
			name: "group by having",
			in:   "SELECT a, COUNT(*) FROM t GROUP BY a HAVING COUNT(*) > 1",
			want: "SELECT\n  a,\n  COUNT(*)\nFROM\n  t\nGROUP BY\n  a\nHAVING\n  COUNT(*) > 1",
		},
		{
			name: "multi word keyword collapses",
			in:   "SELECT a FROM t GROUP   BY a",
			want: "SELECT\n  a\nFROM\n  t\nGROUP BY\n  a",
		},
		{
			name: "between keeps newline on and",
			in:   "SELECT a FROM t WHERE x BETWEEN 1 AND 10",
			want: "SELECT\n  a\nFROM\n  t\nWHERE\n  x BETWEEN 1\n  AND 10",
		},
		{
			name: "long parens wrap at commas",
			in:   "INSERT INTO t (aaaaaaaaaa, bbbbbbbbbb, cccccccccc, dddddddddd) VALUES (1, 2, 3, 4)",
			want: "INSERT INTO t (\n  aaaaaaaaaa, bbbbbbbbbb, cccccccccc,\n  dddddddddd\n)\nVALUES\n  (1, 2, 3, 4)",
		},
		{
			name: "line comment stays on its line",
			in:   "SELECT a -- pick\nFROM t",
			want: "SELECT\n  a -- pick\nFROM\n  t",
		},
		{
			name: "block comment gets its own line",
			in:   "SELECT /* c */ a FROM t",
			want: "SELECT\n  /* c */\n  a\nFROM\n  t",
		},
		{
			name: "string with semicolon",
			in:   "SELECT 'a; b' FROM t",
			want: "SELECT\n  'a; b'\nFROM\n  t",
		},
		{
			name: "trailing semicolon",
			in:   "SELECT a FROM t;",
			want: "SELECT\n  a\nFROM\n  t;",
		},
		{
			name: "two statements",
			in:   "SELECT 1; SELECT 2",
			want: "SELECT\n  1;\nSELECT\n  2",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   "  \n\t ",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatUnclosedParens(t *testing.T) {
	f := testFormatter(t, Options{})

	got, err := f.Format("SELECT a FROM (SELECT b")
	require.NoError(t, err)
	want := "SELECT\n  a\nFROM\n  (\n    SELECT\n      b\n-- WARNING: unclosed parentheses or section"
	assert.Equal(t, want, got)
}

func TestFormatIndentOption(t *testing.T) {
	f := testFormatter(t, Options{Indent: "\t"})

	got, err := f.Format("SELECT a, b FROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n\ta,\n\tb\nFROM\n\tt", got)
}

// Formatting rewrites whitespace only, so the token stream minus
// whitespace and comments must come out unchanged.
func TestFormatPreservesContent(t *testing.T) {
	tok, err := tokenizer.New(dialect.Standard())
	require.NoError(t, err)
	f := New(tok, Options{})

	inputs := []string{
		"SELECT * FROM t",
		"SELECT a, b, c FROM t WHERE x = 1 AND y < 2",
		"SELECT COUNT(*) AS n, MAX(price) FROM orders GROUP BY region HAVING COUNT(*) > 10",
		"SELECT * FROM (SELECT id, name FROM users WHERE active = 1) u INNER JOIN logs l ON l.user_id = u.id",
		"INSERT INTO t (a, b) VALUES (1, 'two'), (3, 'four')",
		"UPDATE t SET a = COALESCE(b, 'fallback') WHERE id IN (1, 2, 3)",
		"SELECT `weird ident`, \"doubled\"\"quote\", 'it''s' FROM t",
		"SELECT @var, :param, 0xFF, 0b01, 12.5, - 5 FROM t",
		"SELECT a -- trailing\nFROM t /* block\ncomment */ WHERE x = 1",
		"SELECT CASE WHEN x BETWEEN 1 AND 10 THEN 'low' ELSE 'high' END FROM t",
		"SELECT a FROM t LIMIT 10, 20",
		"select distinct a from t order by a desc;",
	}
	for _, in := range inputs {
		formatted, err := f.Format(in)
		require.NoError(t, err, "input: %q", in)

		want, err := normalize.Canonical(tok, in)
		require.NoError(t, err)
		got, err := normalize.Canonical(tok, formatted)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input: %q", in)
	}
}

// Running formatted output through the formatter again must not change it.
func TestFormatIdempotent(t *testing.T) {
	f := testFormatter(t, Options{})

	inputs := []string{
		"SELECT a, b, c FROM t WHERE x = 1 AND y < 2",
		"SELECT * FROM (SELECT id FROM u) x",
		"INSERT INTO t (aaaaaaaaaa, bbbbbbbbbb, cccccccccc, dddddddddd) VALUES (1, 2, 3, 4)",
		"SELECT a -- pick\nFROM t",
		"SELECT /* c */ a FROM t",
		"SELECT a FROM t1 INNER JOIN t2 ON t1.id = t2.id ORDER BY a",
	}
	for _, in := range inputs {
		once, err := f.Format(in)
		require.NoError(t, err)
		twice, err := f.Format(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input: %q", in)
	}
}

func TestFormatterConcurrent(t *testing.T) {
	f := testFormatter(t, Options{})

	const input = "SELECT a, b FROM t WHERE x = 1 AND y = 2 ORDER BY a"
	want, err := f.Format(input)
	require.NoError(t, err)

	const goroutines = 8
	results := make([]string, goroutines)
	errs := make([]error, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.Format(input)
		}(i)
	}
	wg.Wait()
	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}

func TestCompress(t *testing.T) {
	f := testFormatter(t, Options{})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "SELECT  a , b\nFROM t -- done\n", "SELECT a , b FROM t"},
		{"line comment separates", "a--c\nb", "a b"},
		{"block comment dropped", "a/*x*/b", "ab"},
		{"keyword spacing", "GROUP   BY  x", "GROUP BY x"},
		{"trailing comment", "SELECT 1;\n\n-- trailing\n", "SELECT 1;"},
		{"comment only", "/*only*/", ""},
		{"line comment at eof", "a -- c", "a"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Compress(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripComments(t *testing.T) {
	f := testFormatter(t, Options{})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"line comment keeps newline", "SELECT a -- c\nFROM t", "SELECT a \nFROM t"},
		{"leading block comment", "/*x*/SELECT 1", "SELECT 1"},
		{"inner block comment", "SELECT /* mid */ a", "SELECT  a"},
		{"comment only", "-- only\n", "\n"},
		{"comment inside string survives", "SELECT 'no -- comment' FROM t", "SELECT 'no -- comment' FROM t"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.StripComments(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit(t *testing.T) {
	f := testFormatter(t, Options{})

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"two statements", "SELECT 1; SELECT 2", []string{"SELECT 1", "SELECT 2"}},
		{"comments dropped", "SELECT 1; -- c\nSELECT 2;", []string{"SELECT 1", "SELECT 2"}},
		{"semicolon in string", "SELECT ';' AS x; SELECT 2", []string{"SELECT ';' AS x", "SELECT 2"}},
		{"inner whitespace kept", "SELECT a,\n  b FROM t", []string{"SELECT a,\n  b FROM t"}},
		{"space before semicolon", "SELECT 1 ;", []string{"SELECT 1"}},
		{"semicolons only", ";;;", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Split(tt.in)
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

var ansiRe = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestHighlight(t *testing.T) {
	f := testFormatter(t, Options{})

	const input = "SELECT 'x', 42, `id` FROM t -- done\n"

	SetColor(false)
	plain, err := f.Highlight(input)
	require.NoError(t, err)
	assert.Equal(t, input, plain)

	SetColor(true)
	colored, err := f.Highlight(input)
	SetColor(false)
	require.NoError(t, err)
	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, input, ansiRe.ReplaceAllString(colored, ""))
}

func TestPackageLevelHelpers(t *testing.T) {
	got, err := Format("SELECT a FROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  a\nFROM\n  t", got)

	compressed, err := Compress("SELECT  a\nFROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t", compressed)

	stripped, err := StripComments("SELECT a /* c */ FROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a  FROM t", stripped)

	stmts, err := Split("SELECT 1; SELECT 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"SELECT 1", "SELECT 2"}, stmts)

	SetColor(false)
	highlighted, err := Highlight("SELECT 1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", highlighted)
}

func BenchmarkFormat(b *testing.B) {
	tok, err := tokenizer.New(dialect.Standard())
	if err != nil {
		b.Fatal(err)
	}
	f := New(tok, Options{})
	const input = "SELECT c.id, c.name, COUNT(o.id) AS n FROM customers c " +
		"LEFT JOIN orders o ON o.customer_id = c.id WHERE c.active = 1 " +
		"GROUP BY c.id, c.name ORDER BY n DESC LIMIT 10"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := f.Format(input); err != nil {
			b.Fatal(err)
		}
	}
}
