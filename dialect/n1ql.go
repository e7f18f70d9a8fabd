package dialect

import "github.com/robomillo/sql-formatter/tokenizer"

// N1QL returns the keyword sets for Couchbase N1QL.
func N1QL() tokenizer.Config {
	return tokenizer.Config{
		ReservedToplevelWords: n1qlToplevel,
		ReservedNewlineWords:  n1qlNewline,
		ReservedWords:         n1qlReserved,
		FunctionWords:         n1qlFunctions,
	}
}

var n1qlToplevel = []string{
	"ADVISE", "ALTER INDEX", "BUILD INDEX", "CREATE FUNCTION",
	"CREATE INDEX", "CREATE PRIMARY INDEX", "DELETE FROM",
	"DROP FUNCTION", "DROP INDEX", "EXECUTE", "EXPLAIN", "FROM",
	"GRANT", "GROUP BY", "HAVING", "INFER", "INSERT INTO", "LET",
	"LETTING", "LIMIT", "MERGE INTO", "NEST", "OFFSET", "ORDER BY",
	"PREPARE", "RETURNING", "REVOKE", "SELECT", "SET", "UNNEST",
	"UPDATE", "UPSERT INTO", "USE KEYS", "VALUES", "WHERE",
}

var n1qlNewline = []string{
	"LEFT OUTER JOIN", "RIGHT OUTER JOIN", "LEFT JOIN", "RIGHT JOIN",
	"OUTER JOIN", "INNER JOIN", "JOIN", "XOR", "OR", "AND",
}

var n1qlReserved = []string{
	"ALL", "ANY", "ARRAY", "AS", "ASC", "BEGIN", "BETWEEN", "BINARY",
	"BOOLEAN", "BREAK", "BUCKET", "CASE", "CAST", "CLUSTER",
	"COLLATE", "COLLECTION", "COMMIT", "CONNECT", "CONTINUE",
	"CORRELATE", "COVER", "CREATE", "DATABASE", "DATASET",
	"DATASTORE", "DECLARE", "DECREMENT", "DERIVED", "DESC",
	"DESCRIBE", "DISTINCT", "DO", "DROP", "EACH", "ELEMENT", "ELSE",
	"END", "EVERY", "EXCEPT", "EXCLUDE", "EXISTS", "FALSE", "FETCH",
	"FIRST", "FLATTEN", "FOR", "FORCE", "FUNCTION", "IF", "IGNORE",
	"ILIKE", "IN", "INCLUDE", "INCREMENT", "INDEX", "INLINE", "INNER",
	"INSERT", "INTERSECT", "INTO", "IS", "KEY", "KEYS", "KEYSPACE",
	"KNOWN", "LAST", "LIKE", "MAP", "MAPPING", "MATCHED",
	"MATERIALIZED", "MINUS", "MISSING", "NAMESPACE", "NOT", "NULL",
	"NUMBER", "OBJECT", "OPTION", "OUTER", "OVER", "PARSE",
	"PARTITION", "PASSWORD", "PATH", "POOL", "PRIMARY", "PRIVATE",
	"PRIVILEGE", "PROCEDURE", "PUBLIC", "RAW", "REALM", "REDUCE",
	"RENAME", "RETURN", "ROLE", "ROLLBACK", "SATISFIES", "SCHEMA",
	"SELF", "SEMI", "SHOW", "SOME", "START", "STATISTICS", "STRING",
	"SYSTEM", "THEN", "TO", "TRANSACTION", "TRIGGER", "TRUE",
	"TRUNCATE", "UNDER", "UNION", "UNIQUE", "UNKNOWN", "UNSET", "USE",
	"USER", "USING", "VALIDATE", "VALUE", "VALUED", "VIA", "VIEW",
	"WHEN", "WHILE", "WITH", "WITHIN", "WORK",
}

var n1qlFunctions = []string{
	"ABS", "ACOS", "ARRAY_AGG", "ARRAY_APPEND", "ARRAY_AVG",
	"ARRAY_CONCAT", "ARRAY_CONTAINS", "ARRAY_COUNT", "ARRAY_DISTINCT",
	"ARRAY_FLATTEN", "ARRAY_IFNULL", "ARRAY_INSERT", "ARRAY_LENGTH",
	"ARRAY_MAX", "ARRAY_MIN", "ARRAY_POSITION", "ARRAY_PREPEND",
	"ARRAY_PUT", "ARRAY_RANGE", "ARRAY_REMOVE", "ARRAY_REPEAT",
	"ARRAY_REPLACE", "ARRAY_REVERSE", "ARRAY_SORT", "ARRAY_SUM",
	"ASIN", "ATAN", "ATAN2", "AVG", "CEIL", "CLOCK_MILLIS",
	"CLOCK_STR", "CONTAINS", "COS", "COUNT", "DATE_ADD_MILLIS",
	"DATE_ADD_STR", "DATE_DIFF_MILLIS", "DATE_DIFF_STR",
	"DATE_PART_MILLIS", "DATE_PART_STR", "DATE_TRUNC_MILLIS",
	"DATE_TRUNC_STR", "DECODE_JSON", "DEGREES", "ENCODE_JSON",
	"ENCODED_SIZE", "EXP", "FLOOR", "GREATEST", "IFINF", "IFMISSING",
	"IFMISSINGORNULL", "IFNAN", "IFNANORINF", "IFNULL", "INITCAP",
	"LEAST", "LENGTH", "LN", "LOG", "LOWER", "LTRIM", "MAX", "META",
	"MILLIS", "MILLIS_TO_STR", "MILLIS_TO_UTC", "MILLIS_TO_ZONE_NAME",
	"MIN", "MISSINGIF", "NANIF", "NEGINFIF", "NOW_MILLIS", "NOW_STR",
	"NULLIF", "OBJECT_LENGTH", "OBJECT_NAMES", "OBJECT_PAIRS",
	"OBJECT_REMOVE", "OBJECT_VALUES", "PI", "POLY_LENGTH", "POSINFIF",
	"POSITION", "POWER", "RADIANS", "RANDOM", "REGEXP_CONTAINS",
	"REGEXP_LIKE", "REGEXP_POSITION", "REGEXP_REPLACE", "REPEAT",
	"REPLACE", "REVERSE", "ROUND", "RTRIM", "SIGN", "SIN", "SPLIT",
	"SQRT", "STR_TO_MILLIS", "STR_TO_UTC", "STR_TO_ZONE_NAME",
	"SUBSTR", "SUM", "TAN", "TITLE", "TOARRAY", "TOATOM", "TOBOOLEAN",
	"TONUMBER", "TOOBJECT", "TOSTRING", "TRIM", "TRUNC", "TYPE",
	"UPPER", "UUID", "WEEKDAY_MILLIS", "WEEKDAY_STR",
}
