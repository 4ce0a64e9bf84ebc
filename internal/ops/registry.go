// Package ops declares the callable query operations this API exposes,
// each with the JSON Schema of its validated input shape. The registry
// is what /api/v1/operations serves, so callers can discover the
// operation surface without reading the route table.
package ops

import (
	"github.com/invopop/jsonschema"

	"linguagraph.app/insight/internal/http/dto"
)

type Operation struct {
	Name        string             `json:"name"`
	Method      string             `json:"method"`
	Path        string             `json:"path"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"input_schema"`
}

// PrerequisiteTreeRequest declares the single path parameter of the
// prerequisite-tree operation; it never binds from a body.
type PrerequisiteTreeRequest struct {
	FeatureID string `json:"feature_id" jsonschema:"description=Root grammar feature to resolve,required"`
}

type emptyInput struct{}

// Registry returns the fixed operation catalog. All operations are
// read-only; order is the order they are documented in.
func Registry() []Operation {
	return []Operation{
		{
			Name:        "grammar.prerequisite_tree",
			Method:      "GET",
			Path:        "/api/v1/grammar/features/:id/prerequisites",
			Description: "Resolve a grammar feature's transitive prerequisites into a bounded, cycle-safe tree.",
			InputSchema: schemaOf(&PrerequisiteTreeRequest{}),
		},
		{
			Name:        "coverage.report",
			Method:      "GET",
			Path:        "/api/v1/coverage/report",
			Description: "Rank every grammar feature by how much published content references it, flagging gaps.",
			InputSchema: schemaOf(&emptyInput{}),
		},
		{
			Name:        "content.browse",
			Method:      "GET",
			Path:        "/api/v1/content",
			Description: "List content items; without a level filter, results are sampled evenly across CEFR bands.",
			InputSchema: schemaOf(&dto.BrowseContentRequest{}),
		},
		{
			Name:        "usage.stats",
			Method:      "GET",
			Path:        "/api/v1/usage/stats",
			Description: "Aggregate anonymized session telemetry for one reporting period.",
			InputSchema: schemaOf(&dto.UsageStatsRequest{}),
		},
		{
			Name:        "usage.sessions",
			Method:      "GET",
			Path:        "/api/v1/usage/sessions",
			Description: "List recent anonymized usage sessions.",
			InputSchema: schemaOf(&dto.ListSessionsRequest{}),
		},
		{
			Name:        "usage.proficiency_trend",
			Method:      "GET",
			Path:        "/api/v1/usage/proficiency",
			Description: "Weekly learner-population proficiency trend for one skill.",
			InputSchema: schemaOf(&dto.ProficiencyTrendRequest{}),
		},
		{
			Name:        "exercises.list",
			Method:      "GET",
			Path:        "/api/v1/exercises",
			Description: "List practice exercises, optionally filtered by grammar feature or type.",
			InputSchema: schemaOf(&dto.ListExercisesRequest{}),
		},
		{
			Name:        "errors.patterns",
			Method:      "GET",
			Path:        "/api/v1/errors/patterns",
			Description: "Aggregate learner error events by tag and grammar feature.",
			InputSchema: schemaOf(&dto.ErrorPatternsRequest{}),
		},
		{
			Name:        "schema.describe",
			Method:      "GET",
			Path:        "/api/v1/schema",
			Description: "Describe the columns of every readable table.",
			InputSchema: schemaOf(&emptyInput{}),
		},
	}
}

func schemaOf(v any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(v)
}
