package dialect

import "github.com/robomillo/sql-formatter/tokenizer"

// DB2 returns the keyword sets for IBM Db2 SQL.
func DB2() tokenizer.Config {
	return tokenizer.Config{
		ReservedToplevelWords: db2Toplevel,
		ReservedNewlineWords:  db2Newline,
		ReservedWords:         db2Reserved,
		FunctionWords:         db2Functions,
	}
}

var db2Toplevel = []string{
	"ADD", "AFTER", "ALTER COLUMN", "ALTER TABLE", "DELETE FROM",
	"EXCEPT", "FETCH FIRST", "FROM", "GROUP BY", "GO", "HAVING",
	"INSERT INTO", "INTERSECT", "LIMIT", "ORDER BY", "SELECT", "SET",
	"UNION ALL", "UNION", "UPDATE", "VALUES", "WHERE",
}

var db2Newline = []string{
	"CROSS JOIN", "FULL OUTER JOIN", "LEFT OUTER JOIN",
	"RIGHT OUTER JOIN", "LEFT JOIN", "RIGHT JOIN", "INNER JOIN",
	"OUTER JOIN", "JOIN", "XOR", "OR", "AND",
}

var db2Reserved = []string{
	"ACTIVATE", "ALIAS", "ALL", "ALLOCATE", "ALLOW", "ALTER", "ANY",
	"AS", "ASC", "ASENSITIVE", "ASSOCIATE", "ASUTIME", "AT",
	"ATTRIBUTES", "AUDIT", "AUTHORIZATION", "AUX", "AUXILIARY",
	"BEFORE", "BEGIN", "BETWEEN", "BINARY", "BUFFERPOOL", "BY",
	"CACHE", "CALL", "CALLED", "CAPTURE", "CARDINALITY", "CASCADED",
	"CASE", "CAST", "CHECK", "CLONE", "CLUSTER", "COLLECTION",
	"COLLID", "COLUMN", "COMMENT", "COMMIT", "CONCAT", "CONDITION",
	"CONNECT", "CONNECTION", "CONSTRAINT", "CONTAINS", "CONTINUE",
	"COUNT_BIG", "CREATE", "CURRENT", "CURRVAL", "CURSOR", "CYCLE",
	"DATABASE", "DATAPARTITIONNAME", "DATAPARTITIONNUM", "DBINFO",
	"DBPARTITIONNAME", "DBPARTITIONNUM", "DEALLOCATE", "DECLARE",
	"DEFAULT", "DEFAULTS", "DEFINITION", "DELETE", "DENSERANK",
	"DENSE_RANK", "DESC", "DESCRIBE", "DESCRIPTOR", "DETERMINISTIC",
	"DIAGNOSTICS", "DISABLE", "DISALLOW", "DISCONNECT", "DISTINCT",
	"DO", "DOCUMENT", "DROP", "DSSIZE", "DYNAMIC", "EACH", "EDITPROC",
	"ELSE", "ELSEIF", "ENABLE", "ENCODING", "ENCRYPTION", "END",
	"ENDING", "ERASE", "ESCAPE", "EVERY", "EXCEPTION", "EXCLUDING",
	"EXCLUSIVE", "EXECUTE", "EXISTS", "EXIT", "EXPLAIN", "EXTERNAL",
	"EXTRACT", "FENCED", "FETCH", "FIELDPROC", "FILE", "FINAL",
	"FIRST", "FOR", "FOREIGN", "FREE", "FULL", "FUNCTION",
	"GENERATED", "GET", "GLOBAL", "GOTO", "GRANT", "GRAPHIC",
	"HANDLER", "HASH", "HASHED_VALUE", "HINT", "HOLD", "HOUR",
	"HOURS", "IDENTITY", "IF", "IMMEDIATE", "IN", "INCLUDING",
	"INCLUSIVE", "INCREMENT", "INDEX", "INDICATOR", "INF", "INFINITY",
	"INHERIT", "INOUT", "INSENSITIVE", "INSERT", "INTEGRITY", "INTO",
	"IS", "ISOBID", "ISOLATION", "ITERATE", "JAR", "KEEP", "KEY",
	"LABEL", "LANGUAGE", "LATERAL", "LC_CTYPE", "LEAVE", "LIKE",
	"LINKTYPE", "LOCAL", "LOCALDATE", "LOCALE", "LOCALTIME",
	"LOCALTIMESTAMP", "LOCATOR", "LOCATORS", "LOCK", "LOCKMAX",
	"LOCKSIZE", "LONG", "LOOP", "MAINTAINED", "MATERIALIZED",
	"MAXVALUE", "MICROSECOND", "MICROSECONDS", "MINUTES", "MINVALUE",
	"MODE", "MODIFIES", "MONTHS", "NAN", "NEW", "NEW_TABLE",
	"NEXTVAL", "NO", "NOCACHE", "NOCYCLE", "NODENAME", "NODENUMBER",
	"NOMAXVALUE", "NOMINVALUE", "NONE", "NOORDER", "NORMALIZED",
	"NOT", "NULL", "NULLS", "NUMPARTS", "OBID", "OF", "OLD",
	"OLD_TABLE", "ON", "ON DELETE", "ON UPDATE", "OPEN",
	"OPTIMIZATION", "OPTIMIZE", "OPTION", "ORGANIZE", "OUT", "OVER",
	"OVERRIDING", "PACKAGE", "PADDED", "PAGESIZE", "PARAMETER",
	"PART", "PARTITION", "PARTITIONED", "PARTITIONING", "PASSWORD",
	"PATH", "PIECESIZE", "PLAN", "PRECISION", "PREPARE", "PREVVAL",
	"PRIMARY", "PRIQTY", "PRIVILEGES", "PROCEDURE", "PROGRAM",
	"PSID", "PUBLIC", "QUERY", "QUERYNO", "RANGE", "RANK", "READ",
	"READS", "RECOVERY", "REFERENCES", "REFERENCING", "REFRESH",
	"RELEASE", "RENAME", "REPEAT", "RESET", "RESIGNAL", "RESTART",
	"RESTRICT", "RESULT", "RETURN", "RETURNS", "REVOKE", "ROLE",
	"ROLLBACK", "ROUND_CEILING", "ROUND_DOWN", "ROUND_FLOOR",
	"ROUND_HALF_DOWN", "ROUND_HALF_EVEN", "ROUND_HALF_UP",
	"ROUND_UP", "ROUTINE", "ROW", "ROWNUMBER", "ROWS", "ROWSET",
	"ROW_NUMBER", "RRN", "RUN", "SAVEPOINT", "SCHEMA",
	"SCRATCHPAD", "SCROLL", "SEARCH", "SECONDS", "SECQTY",
	"SECURITY", "SENSITIVE", "SEQUENCE", "SESSION", "SESSION_USER",
	"SIGNAL", "SIMPLE", "SOME", "SOURCE", "SPECIFIC", "SQL",
	"SQLID", "STACKED", "STANDARD", "START", "STARTING", "STATEMENT",
	"STATIC", "STATMENT", "STAY", "STOGROUP", "STORES", "STYLE",
	"SUBSTRING", "SUMMARY", "SYNONYM", "SYSFUN", "SYSIBM", "SYSPROC",
	"SYSTEM", "TABLE", "TABLESPACE", "THEN", "TO", "TRANSACTION",
	"TRIGGER", "TRIM", "TRUNCATE", "TYPE", "UNDO", "UNIQUE", "UNTIL",
	"USAGE", "USER", "USING", "VALIDPROC", "VARIABLE", "VARIANT",
	"VCAT", "VERSION", "VIEW", "VOLATILE", "VOLUMES", "WHEN",
	"WHENEVER", "WHILE", "WITH", "WITHOUT", "WLM", "WRITE", "XMLCAST",
	"XMLEXISTS", "XMLNAMESPACES", "YEARS",
}

var db2Functions = []string{
	"ABS", "ACOS", "ASCII", "ASIN", "ATAN", "ATAN2", "AVG",
	"BIGINT", "BLOB", "CEILING", "CHAR", "CHR", "CLOB", "COALESCE",
	"CONCAT", "CORRELATION", "COS", "COT", "COUNT", "COUNT_BIG",
	"COVARIANCE", "DATE", "DAY", "DAYNAME", "DAYOFWEEK",
	"DAYOFWEEK_ISO", "DAYOFYEAR", "DAYS", "DBCLOB", "DECIMAL",
	"DECRYPT_BIN", "DECRYPT_CHAR", "DEGREES", "DEREF", "DIFFERENCE",
	"DIGITS", "DOUBLE", "ENCRYPT", "EVENT_MON_STATE", "EXP", "FLOAT",
	"FLOOR", "GENERATE_UNIQUE", "GETHINT", "GRAPHIC", "GROUPING",
	"HEX", "HOUR", "IDENTITY_VAL_LOCAL", "INSERT", "INTEGER",
	"JULIAN_DAY", "LCASE", "LEFT", "LENGTH", "LN", "LOCATE", "LOG",
	"LOG10", "LONG_VARCHAR", "LONG_VARGRAPHIC", "LOWER", "LTRIM",
	"MAX", "MICROSECOND", "MIDNIGHT_SECONDS", "MIN", "MINUTE", "MOD",
	"MONTH", "MONTHNAME", "MULTIPLY_ALT", "NULLIF", "NVL",
	"PARTITION", "POSSTR", "POWER", "QUARTER", "RADIANS", "RAISE_ERROR",
	"RAND", "REAL", "REC2XML", "REPEAT", "REPLACE", "RIGHT", "ROUND",
	"RTRIM", "SECOND", "SIGN", "SIN", "SMALLINT", "SOUNDEX", "SPACE",
	"SQRT", "STDDEV", "SUBSTR", "SUM", "TABLE_NAME", "TABLE_SCHEMA",
	"TAN", "TIME", "TIMESTAMP", "TIMESTAMP_FORMAT", "TIMESTAMP_ISO",
	"TO_CHAR", "TO_DATE", "TRANSLATE", "TRUNC", "TRUNCATE", "UCASE",
	"UPPER", "VALUE", "VARCHAR", "VARCHAR_FORMAT", "VARGRAPHIC",
	"VARIANCE", "WEEK", "WEEK_ISO", "YEAR",
}
