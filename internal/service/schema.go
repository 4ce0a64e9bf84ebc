package service

import (
	"context"

	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/store"
)

// SchemaService describes the readable tables.
type SchemaService interface {
	Describe(ctx context.Context) ([]model.ColumnInfo, error)
}

type schemaService struct {
	schema store.SchemaStore
}

func NewSchemaService(schema store.SchemaStore) SchemaService {
	return &schemaService{schema: schema}
}

func (s *schemaService) Describe(ctx context.Context) ([]model.ColumnInfo, error) {
	return s.schema.DescribeTables(ctx)
}
