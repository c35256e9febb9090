package ansi

// reservedKeywords cannot be used as bare identifiers.
var reservedKeywords = []string{
	"ALL", "ALTER", "AND", "ANY", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST",
	"CHECK", "COLLATE", "CONSTRAINT", "CREATE", "CROSS", "CURRENT_DATE",
	"CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER", "DEFAULT", "DELETE",
	"DESC", "DISTINCT", "DROP", "ELSE", "END", "EXCEPT", "EXISTS", "FALSE",
	"FETCH", "FOREIGN", "FROM", "FULL", "GRANT", "GROUP", "HAVING", "IN",
	"INNER", "INSERT", "INTERSECT", "INTERVAL", "INTO", "IS", "JOIN", "KEY",
	"LATERAL", "LEFT", "LIKE", "LIMIT", "NATURAL", "NOT", "NULL", "OFFSET",
	"ON", "OR", "ORDER", "OUTER", "OVER", "PARTITION", "PRIMARY", "RECURSIVE",
	"REFERENCES", "RIGHT", "SELECT", "SET", "SOME", "TABLE", "THEN", "TRUE",
	"UNION", "UNIQUE", "UPDATE", "USING", "VALUES", "VIEW", "WHEN", "WHERE",
	"WINDOW", "WITH",
}

// unreservedKeywords are recognised by grammars but may still name objects.
var unreservedKeywords = []string{
	"BEGIN", "CASCADE", "COMMIT", "CURRENT", "DATEADD", "EXCLUDING", "FIRST",
	"FOLLOWING", "IF", "IGNORE", "INCLUDING", "LAST", "NULLS", "PRECEDING",
	"RANGE", "REPLACE", "RESPECT", "RESTRICT", "ROLLBACK", "ROW", "ROWS",
	"SCHEMA", "START", "TEMP", "TEMPORARY", "TRANSACTION", "UNBOUNDED", "USE",
	"WORK",
}

// bareFunctions are called without brackets.
var bareFunctions = []string{
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER",
	"LOCALTIME", "LOCALTIMESTAMP",
}

var datetimeUnits = []string{
	"DAY", "DAYOFYEAR", "HOUR", "MILLISECOND", "MICROSECOND", "MINUTE",
	"MONTH", "QUARTER", "SECOND", "WEEK", "WEEKDAY", "YEAR",
}
