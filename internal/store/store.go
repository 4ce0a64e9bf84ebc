package store

import "github.com/jackc/pgx/v5/pgxpool"

// Stores bundles the typed read stores behind one constructor.
type Stores struct {
	pool *pgxpool.Pool
}

func NewStores(pool *pgxpool.Pool) *Stores {
	return &Stores{pool: pool}
}

func (s *Stores) Features() FeatureStore {
	return &featureStore{pool: s.pool}
}

func (s *Stores) Content() ContentStore {
	return &contentStore{pool: s.pool}
}

func (s *Stores) Telemetry() TelemetryStore {
	return &telemetryStore{pool: s.pool}
}

func (s *Stores) Exercises() ExerciseStore {
	return &exerciseStore{pool: s.pool}
}

func (s *Stores) Schema() SchemaStore {
	return &schemaStore{pool: s.pool}
}
