package dto

import "linguagraph.app/insight/internal/model"

type ColumnInfoResponse struct {
	TableName  string `json:"table_name"`
	ColumnName string `json:"column_name"`
	DataType   string `json:"data_type"`
	Nullable   bool   `json:"nullable"`
}

func ToColumnInfoResponse(c model.ColumnInfo) ColumnInfoResponse {
	return ColumnInfoResponse(c)
}
