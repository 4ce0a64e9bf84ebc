package service

import "linguagraph.app/insight/internal/store"

// ServicesConfig wires the service layer. Catalog is the feature store
// the graph and coverage services read from — pass the cache-backed
// decorator in production and a bare store in tests.
type ServicesConfig struct {
	Stores  *store.Stores
	Catalog store.FeatureStore
}

type Services struct {
	stores  *store.Stores
	catalog store.FeatureStore
}

func NewServices(cfg ServicesConfig) *Services {
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = cfg.Stores.Features()
	}
	return &Services{
		stores:  cfg.Stores,
		catalog: catalog,
	}
}

func (s *Services) Graph() GraphService {
	return NewGraphService(s.catalog)
}

func (s *Services) Coverage() CoverageService {
	return NewCoverageService(s.catalog, s.stores.Content())
}

func (s *Services) Content() ContentService {
	return NewContentService(s.stores.Content())
}

func (s *Services) Telemetry() TelemetryService {
	return NewTelemetryService(s.stores.Telemetry())
}

func (s *Services) Exercises() ExerciseService {
	return NewExerciseService(s.stores.Exercises())
}

func (s *Services) Schema() SchemaService {
	return NewSchemaService(s.stores.Schema())
}
