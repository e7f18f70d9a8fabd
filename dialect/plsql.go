package dialect

import "github.com/robomillo/sql-formatter/tokenizer"

// PLSQL returns the keyword sets for Oracle PL/SQL.
func PLSQL() tokenizer.Config {
	return tokenizer.Config{
		ReservedToplevelWords: plsqlToplevel,
		ReservedNewlineWords:  plsqlNewline,
		ReservedWords:         plsqlReserved,
		FunctionWords:         plsqlFunctions,
	}
}

var plsqlToplevel = []string{
	"ADD", "ALTER COLUMN", "ALTER TABLE", "BEGIN", "CONNECT BY",
	"DECLARE", "DELETE FROM", "DELETE", "END", "EXCEPT", "EXCEPTION",
	"FETCH FIRST", "FROM", "GROUP BY", "HAVING", "INSERT INTO",
	"INSERT", "INTERSECT", "LIMIT", "LOOP", "MINUS", "MODIFY",
	"ORDER BY", "RETURNING", "SELECT", "SET CURRENT SCHEMA", "SET",
	"START WITH", "UNION ALL", "UNION", "UPDATE", "VALUES", "WHERE",
}

var plsqlNewline = []string{
	"CROSS APPLY", "CROSS JOIN", "FULL OUTER JOIN", "LEFT OUTER JOIN",
	"RIGHT OUTER JOIN", "LEFT JOIN", "RIGHT JOIN", "INNER JOIN",
	"OUTER APPLY", "OUTER JOIN", "JOIN", "XOR", "OR", "AND",
}

var plsqlReserved = []string{
	"ACCESS", "ALL", "ALTER", "ANY", "AS", "ASC", "AUDIT", "BETWEEN",
	"BY", "CASE", "CHAR", "CHECK", "CLUSTER", "COLUMN",
	"COLUMN_VALUE", "COMMENT", "COMMIT", "COMPRESS", "CONNECT",
	"CREATE", "CURRENT", "CURSOR", "DATE", "DECIMAL", "DEFAULT",
	"DESC", "DISTINCT", "DROP", "ELSE", "ELSIF", "EXCLUSIVE",
	"EXISTS", "FILE", "FLOAT", "FOR", "FOREIGN", "FUNCTION", "GRANT",
	"IDENTIFIED", "IF", "IMMEDIATE", "IN", "INCREMENT", "INDEX",
	"INITIAL", "INTEGER", "INTO", "IS", "KEY", "LEVEL", "LIKE",
	"LOCK", "LONG", "MAXEXTENTS", "MLSLABEL", "MODE", "NESTED_TABLE_ID",
	"NOAUDIT", "NOCOMPRESS", "NOT", "NOWAIT", "NULL", "NUMBER", "OF",
	"OFFLINE", "ON", "ONLINE", "OPTION", "PCTFREE", "PRIMARY",
	"PRIOR", "PRIVILEGES", "PROCEDURE", "PUBLIC", "RAW", "RENAME",
	"RESOURCE", "REVOKE", "ROLLBACK", "ROW", "ROWID", "ROWNUM",
	"ROWS", "SAVEPOINT", "SESSION", "SHARE", "SIZE", "SMALLINT",
	"SUCCESSFUL", "SYNONYM", "SYSDATE", "TABLE", "THEN", "TO",
	"TRIGGER", "UID", "UNIQUE", "USER", "USING", "VALIDATE",
	"VARCHAR", "VARCHAR2", "VIEW", "WHEN", "WHENEVER", "WITH",
}

var plsqlFunctions = []string{
	"ABS", "ACOS", "ADD_MONTHS", "ASCII", "ASCIISTR", "ASIN", "ATAN",
	"ATAN2", "AVG", "BFILENAME", "BIN_TO_NUM", "BITAND", "CARDINALITY",
	"CAST", "CEIL", "CHARTOROWID", "CHR", "COALESCE", "COMPOSE",
	"CONCAT", "CONVERT", "CORR", "COS", "COSH", "COUNT", "COVAR_POP",
	"COVAR_SAMP", "CUME_DIST", "CURRENT_DATE", "CURRENT_TIMESTAMP",
	"DBTIMEZONE", "DECODE", "DECOMPOSE", "DENSE_RANK", "DUMP", "EMPTY_BLOB",
	"EMPTY_CLOB", "EXP", "EXTRACT", "FIRST_VALUE", "FLOOR",
	"FROM_TZ", "GREATEST", "GROUP_ID", "HEXTORAW", "INITCAP", "INSTR",
	"INSTR2", "INSTR4", "INSTRB", "INSTRC", "LAG", "LAST_DAY",
	"LAST_VALUE", "LEAD", "LEAST", "LENGTH", "LENGTH2", "LENGTH4",
	"LENGTHB", "LENGTHC", "LISTAGG", "LN", "LNNVL", "LOCALTIMESTAMP",
	"LOG", "LOWER", "LPAD", "LTRIM", "MAX", "MEDIAN", "MIN", "MOD",
	"MONTHS_BETWEEN", "NANVL", "NCHR", "NEW_TIME", "NEXT_DAY",
	"NTH_VALUE", "NTILE", "NULLIF", "NUMTODSINTERVAL",
	"NUMTOYMINTERVAL", "NVL", "NVL2", "PERCENTILE_CONT",
	"PERCENTILE_DISC", "PERCENT_RANK", "POWER", "RANK", "RAWTOHEX",
	"REGEXP_COUNT", "REGEXP_INSTR", "REGEXP_REPLACE", "REGEXP_SUBSTR",
	"REMAINDER", "REPLACE", "ROUND", "ROWIDTOCHAR", "ROWIDTONCHAR",
	"ROW_NUMBER", "RPAD", "RTRIM", "SESSIONTIMEZONE", "SIGN", "SIN",
	"SINH", "SOUNDEX", "SQRT", "STDDEV", "SUBSTR", "SUM",
	"SYS_CONTEXT", "SYSTIMESTAMP", "TAN", "TANH", "TO_CHAR",
	"TO_CLOB", "TO_DATE", "TO_DSINTERVAL", "TO_LOB", "TO_MULTI_BYTE",
	"TO_NCLOB", "TO_NUMBER", "TO_SINGLE_BYTE", "TO_TIMESTAMP",
	"TO_TIMESTAMP_TZ", "TO_YMINTERVAL", "TRANSLATE", "TRIM", "TRUNC",
	"TZ_OFFSET", "UID", "UPPER", "USERENV", "VARIANCE", "VSIZE",
}
