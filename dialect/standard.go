package dialect

import "github.com/robomillo/sql-formatter/tokenizer"

// Standard returns the keyword sets for general MySQL-flavored SQL.
// This is the default dialect and the broadest of the shipped sets.
func Standard() tokenizer.Config {
	return tokenizer.Config{
		ReservedToplevelWords: standardToplevel,
		ReservedNewlineWords:  standardNewline,
		ReservedWords:         standardReserved,
		FunctionWords:         standardFunctions,
	}
}

var standardToplevel = []string{
	"SELECT", "FROM", "WHERE", "SET", "ORDER BY", "GROUP BY", "LIMIT",
	"DROP", "VALUES", "UPDATE", "HAVING", "ADD", "AFTER", "ALTER TABLE",
	"DELETE FROM", "UNION ALL", "UNION", "EXCEPT", "INTERSECT",
}

var standardNewline = []string{
	"LEFT OUTER JOIN", "RIGHT OUTER JOIN", "LEFT JOIN", "RIGHT JOIN",
	"OUTER JOIN", "INNER JOIN", "JOIN", "XOR", "OR", "AND",
}

var standardReserved = []string{
	"ACCESSIBLE", "ACTION", "AGAINST", "AGGREGATE", "ALGORITHM", "ALL",
	"ALTER", "ANALYSE", "ANALYZE", "AS", "ASC", "AUTOCOMMIT",
	"AUTO_INCREMENT", "BACKUP", "BEGIN", "BETWEEN", "BINLOG", "BOTH",
	"CASCADE", "CASE", "CHANGE", "CHANGED", "CHARACTER SET", "CHARSET",
	"CHECK", "CHECKSUM", "COLLATE", "COLLATION", "COLUMN", "COLUMNS",
	"COMMENT", "COMMIT", "COMMITTED", "COMPRESSED", "CONCURRENT",
	"CONSTRAINT", "CONTAINS", "CONVERT", "CREATE", "CROSS",
	"CURRENT_TIMESTAMP", "DATABASE", "DATABASES", "DAY", "DAY_HOUR",
	"DAY_MINUTE", "DAY_SECOND", "DEFAULT", "DEFINER", "DELAYED",
	"DELETE", "DESC", "DESCRIBE", "DETERMINISTIC", "DISTINCT",
	"DISTINCTROW", "DIV", "DO", "DUMPFILE", "DUPLICATE", "DYNAMIC",
	"ELSE", "ENCLOSED", "END", "ENGINE", "ENGINES", "ENGINE_TYPE",
	"ESCAPE", "ESCAPED", "EVENTS", "EXEC", "EXECUTE", "EXISTS",
	"EXPLAIN", "EXTENDED", "FAST", "FIELDS", "FILE", "FIRST", "FIXED",
	"FLUSH", "FOR", "FORCE", "FOREIGN", "FULL", "FULLTEXT", "FUNCTION",
	"GLOBAL", "GRANT", "GRANTS", "GROUP_CONCAT", "HEAP",
	"HIGH_PRIORITY", "HOSTS", "HOUR", "HOUR_MINUTE", "HOUR_SECOND",
	"IDENTIFIED", "IF", "IFNULL", "IGNORE", "IN", "INDEX", "INDEXES",
	"INFILE", "INSERT", "INSERT_ID", "INSERT_METHOD", "INTERVAL",
	"INTO", "INVOKER", "IS", "ISOLATION", "KEY", "KEYS", "KILL",
	"LAST_INSERT_ID", "LEADING", "LEVEL", "LIKE", "LINEAR", "LINES",
	"LOAD", "LOCAL", "LOCK", "LOCKS", "LOGS", "LOW_PRIORITY", "MARIA",
	"MASTER", "MASTER_CONNECT_RETRY", "MASTER_HOST", "MASTER_LOG_FILE",
	"MATCH", "MAX_CONNECTIONS_PER_HOUR", "MAX_QUERIES_PER_HOUR",
	"MAX_ROWS", "MAX_UPDATES_PER_HOUR", "MAX_USER_CONNECTIONS",
	"MEDIUM", "MERGE", "MINUTE", "MINUTE_SECOND", "MIN_ROWS", "MODE",
	"MODIFY", "MONTH", "MRG_MYISAM", "MYISAM", "NAMES", "NATURAL",
	"NOT", "NULL", "OFFSET", "ON", "ON DELETE", "ON UPDATE", "OPEN",
	"OPTIMIZE", "OPTION", "OPTIONALLY", "OUTFILE", "PACK_KEYS", "PAGE",
	"PARTIAL", "PARTITION", "PARTITIONS", "PASSWORD", "PRIMARY",
	"PRIVILEGES", "PROCEDURE", "PROCESS", "PROCESSLIST", "PURGE",
	"QUICK", "RANGE", "READ", "READ_ONLY", "READ_WRITE", "REFERENCES",
	"REGEXP", "RELOAD", "RENAME", "REPAIR", "REPEATABLE", "REPLACE",
	"REPLICATION", "RESET", "RESTORE", "RESTRICT", "RETURN", "RETURNS",
	"REVOKE", "RLIKE", "ROLLBACK", "ROW", "ROWS", "ROW_FORMAT",
	"SECOND", "SECURITY", "SEPARATOR", "SERIALIZABLE", "SESSION",
	"SHARE", "SHOW", "SHUTDOWN", "SLAVE", "SONAME", "SOUNDS", "SQL",
	"SQL_AUTO_IS_NULL", "SQL_BIG_RESULT", "SQL_BIG_SELECTS",
	"SQL_BIG_TABLES", "SQL_BUFFER_RESULT", "SQL_CALC_FOUND_ROWS",
	"SQL_LOG_BIN", "SQL_LOG_OFF", "SQL_LOG_UPDATE",
	"SQL_LOW_PRIORITY_UPDATES", "SQL_MAX_JOIN_SIZE",
	"SQL_QUOTE_SHOW_CREATE", "SQL_SAFE_UPDATES", "SQL_SELECT_LIMIT",
	"SQL_SLAVE_SKIP_COUNTER", "SQL_SMALL_RESULT",
	"SQL_SPLIT_TEMPORARY_TABLES", "SQL_WARNINGS", "START", "STARTING",
	"STATUS", "STOP", "STORAGE", "STRAIGHT_JOIN", "STRING", "STRIPED",
	"SUPER", "TABLE", "TABLES", "TEMPORARY", "TERMINATED", "THEN",
	"TO", "TRAILING", "TRANSACTIONAL", "TRUE", "TRUNCATE", "TYPE",
	"TYPES", "UNCOMMITTED", "UNIQUE", "UNLOCK", "UNSIGNED", "USAGE",
	"USE", "USING", "VARIABLES", "VIEW", "WHEN", "WITH", "WORK",
	"WRITE", "YEAR_MONTH",
}

var standardFunctions = []string{
	"ABS", "ACOS", "ADDDATE", "ADDTIME", "AES_DECRYPT", "AES_ENCRYPT",
	"ASCII", "ASIN", "ATAN", "ATAN2", "AVG", "BENCHMARK", "BIN",
	"BIT_AND", "BIT_COUNT", "BIT_LENGTH", "BIT_OR", "BIT_XOR", "CAST",
	"CEIL", "CEILING", "CHAR", "CHARACTER_LENGTH", "CHAR_LENGTH",
	"COALESCE", "COERCIBILITY", "COMPRESS", "CONCAT", "CONCAT_WS",
	"CONNECTION_ID", "CONV", "CONVERT_TZ", "COS", "COT", "COUNT",
	"CRC32", "CURDATE", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_USER",
	"CURTIME", "DATE", "DATEDIFF", "DATE_ADD", "DATE_FORMAT",
	"DATE_SUB", "DAYNAME", "DAYOFMONTH", "DAYOFWEEK", "DAYOFYEAR",
	"DECODE", "DEGREES", "ELT", "ENCODE", "ENCRYPT", "EXP",
	"EXPORT_SET", "EXTRACT", "FIELD", "FIND_IN_SET", "FLOOR", "FORMAT",
	"FOUND_ROWS", "FROM_DAYS", "FROM_UNIXTIME", "GET_FORMAT",
	"GET_LOCK", "GREATEST", "HEX", "INET_ATON", "INET_NTOA", "INSTR",
	"ISNULL", "IS_FREE_LOCK", "IS_USED_LOCK", "LAST_DAY", "LCASE",
	"LEAST", "LEFT", "LENGTH", "LN", "LOAD_FILE", "LOCALTIME",
	"LOCALTIMESTAMP", "LOCATE", "LOG", "LOG10", "LOG2", "LOWER",
	"LPAD", "LTRIM", "MAKEDATE", "MAKETIME", "MAKE_SET",
	"MASTER_POS_WAIT", "MAX", "MD5", "MICROSECOND", "MID", "MIN",
	"MONTHNAME", "NAME_CONST", "NOW", "NULLIF", "OCT", "OCTET_LENGTH",
	"ORD", "PERIOD_ADD", "PERIOD_DIFF", "PI", "POSITION", "POW",
	"POWER", "QUARTER", "QUOTE", "RADIANS", "RAND", "RELEASE_LOCK",
	"REPEAT", "REVERSE", "RIGHT", "ROUND", "ROW_COUNT", "RPAD",
	"RTRIM", "SCHEMA", "SEC_TO_TIME", "SESSION_USER", "SHA", "SHA1",
	"SIGN", "SIN", "SLEEP", "SOUNDEX", "SPACE", "SQRT", "STD",
	"STDDEV", "STDDEV_POP", "STDDEV_SAMP", "STRCMP", "STR_TO_DATE",
	"SUBDATE", "SUBSTR", "SUBSTRING", "SUBSTRING_INDEX", "SUBTIME",
	"SUM", "SYSDATE", "SYSTEM_USER", "TAN", "TIME", "TIMEDIFF",
	"TIMESTAMP", "TIMESTAMPADD", "TIMESTAMPDIFF", "TIME_FORMAT",
	"TIME_TO_SEC", "TO_DAYS", "TRIM", "UCASE", "UNCOMPRESS",
	"UNCOMPRESSED_LENGTH", "UNHEX", "UNIX_TIMESTAMP", "UPPER", "USER",
	"UTC_DATE", "UTC_TIME", "UTC_TIMESTAMP", "UUID", "VARIANCE",
	"VAR_POP", "VAR_SAMP", "VERSION", "WEEK", "WEEKDAY", "WEEKOFYEAR",
	"YEAR", "YEARWEEK",
}
