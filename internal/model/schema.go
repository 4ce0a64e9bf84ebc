package model

// ColumnInfo describes one column of a readable table, from
// information_schema introspection.
type ColumnInfo struct {
	TableName  string `json:"table_name"`
	ColumnName string `json:"column_name"`
	DataType   string `json:"data_type"`
	Nullable   bool   `json:"nullable"`
}
