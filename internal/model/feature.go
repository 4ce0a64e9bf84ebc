package model

import "linguagraph.app/insight/internal/cefr"

// UnresolvedName is the display-name sentinel used for prerequisite
// references that have no catalog entry.
const UnresolvedName = "unresolved"

// GrammarFeature is a discrete grammar concept from the instructional
// catalog. Prerequisites reference other feature IDs, but the store does
// not enforce referential integrity: entries may dangle, self-reference,
// or form cycles.
type GrammarFeature struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Band          cefr.Band `json:"cefr_level"`
	Category      string    `json:"category"`
	Prerequisites []string  `json:"prerequisites"`
}

// PrerequisiteNode is one node of a resolved prerequisite tree. A node
// standing in for a dangling reference carries the unresolved sentinels
// and no children.
type PrerequisiteNode struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Band     cefr.Band          `json:"cefr_level"`
	Children []PrerequisiteNode `json:"prerequisites"`
}
