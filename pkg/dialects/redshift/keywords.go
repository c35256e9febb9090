package redshift

// reservedKeywords replaces the inherited PostgreSQL set.
var reservedKeywords = []string{
	"AES128", "AES256", "ALL", "ALLOWOVERWRITE", "ANALYSE", "ANALYZE", "AND",
	"ANY", "ARRAY", "AS", "ASC", "AUTHORIZATION", "AZ64", "BACKUP", "BETWEEN",
	"BINARY", "BLANKSASNULL", "BOTH", "BYTEDICT", "BZIP2", "CASE", "CAST",
	"CHECK", "COLLATE", "COLUMN", "CONSTRAINT", "CREATE", "CREDENTIALS",
	"CROSS", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP",
	"CURRENT_USER", "CURRENT_USER_ID", "DEFAULT", "DEFERRABLE", "DEFLATE",
	"DEFRAG", "DELTA", "DELTA32K", "DESC", "DISABLE", "DISTINCT", "DISTKEY",
	"DO", "ELSE", "EMPTYASNULL", "ENABLE", "ENCODE", "ENCRYPT", "ENCRYPTION",
	"END", "EXCEPT", "EXPLICIT", "FALSE", "FOR", "FOREIGN", "FREEZE", "FROM",
	"FULL", "GLOBALDICT256", "GLOBALDICT64K", "GRANT", "GROUP", "GZIP",
	"HAVING", "IDENTITY", "IGNORE", "ILIKE", "IN", "INITIALLY", "INNER",
	"INTERSECT", "INTERVAL", "INTO", "IS", "ISNULL", "JOIN", "LEADING",
	"LEFT", "LIKE", "LIMIT", "LOCALTIME", "LOCALTIMESTAMP", "LUN", "LUNS",
	"LZO", "LZOP", "MINUS", "MOSTLY16", "MOSTLY32", "MOSTLY8", "NATURAL",
	"NEW", "NOT", "NOTNULL", "NULL", "NULLS", "OFF", "OFFLINE", "OFFSET",
	"OID", "OLD", "ON", "ONLY", "OPEN", "OR", "ORDER", "OUTER", "OVERLAPS",
	"PARALLEL", "PARTITION", "PERCENT", "PERMISSIONS", "PLACING", "PRIMARY",
	"RAW", "READRATIO", "RECOVER", "REFERENCES", "RESPECT", "REJECTLOG",
	"RESORT", "RESTORE", "RIGHT", "SELECT", "SESSION_USER", "SIMILAR",
	"SNAPSHOT", "SOME", "SORTKEY", "SYSDATE", "SYSTEM", "TABLE", "TAG",
	"TDES", "TEXT255", "TEXT32K", "THEN", "TIMESTAMP", "TO", "TOP",
	"TRAILING", "TRUE", "TRUNCATECOLUMNS", "UNION", "UNIQUE", "USER", "USING",
	"VERBOSE", "WALLET", "WHEN", "WHERE", "WITH", "WITHOUT",
}

// unreservedKeywords replaces the inherited PostgreSQL set.
var unreservedKeywords = []string{
	"A", "ABORT", "ACCESS", "ADD", "AFTER", "ALTER", "AUTO", "BEGIN", "BY",
	"CASCADE", "COMMIT", "COMPOUND", "CONNECTION", "CREATEDB", "CREATEUSER",
	"CURRENT", "DATEADD", "DATEDIFF", "DEFAULTS", "DELETE", "DISTSTYLE",
	"DROP", "EVEN", "EXCLUDING", "EXISTS", "FILTER", "FIRST", "FOLLOWING",
	"GENERATED", "IF", "INCLUDING", "INSERT", "INTERLEAVED", "KEY", "LAST",
	"LOCAL", "NO", "NOCREATEDB", "NOCREATEUSER", "OVER", "PASSWORD",
	"PRECEDING", "RANGE", "RECURSIVE", "RENAME", "REPLACE", "RESTRICT",
	"RESTRICTED", "ROLLBACK", "ROW", "ROWS", "RUNLENGTH", "SCHEMA", "SESSION",
	"SET", "START", "SYSLOG", "TEMP", "TEMPORARY", "TIMEOUT", "TRANSACTION",
	"UNBOUNDED", "UNLIMITED", "UNRESTRICTED", "UNTIL", "UPDATE", "USE",
	"VALID", "VALUES", "VIEW", "WINDOW", "WORK", "YES", "ZSTD",
}
