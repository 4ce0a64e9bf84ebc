package prereq

import (
	"errors"

	"linguagraph.app/insight/internal/cefr"
	"linguagraph.app/insight/internal/model"
)

// ErrNotFound is returned when the requested root feature has no entry
// in the supplied catalog.
var ErrNotFound = errors.New("grammar feature not found")

// MaxDepth bounds how far below the root the tree may grow. Acyclic
// chains longer than this are cut off without error.
const MaxDepth = 10

// FeatureTable is the full grammar catalog keyed by feature ID, built
// once per request from an already-fetched snapshot.
type FeatureTable map[string]model.GrammarFeature

func NewFeatureTable(features []model.GrammarFeature) FeatureTable {
	table := make(FeatureTable, len(features))
	for _, f := range features {
		table[f.ID] = f
	}
	return table
}

// Resolve builds the prerequisite tree rooted at rootID. The traversal
// performs no I/O; the catalog must be complete before the call.
//
// Two skip rules bound the walk: a feature already opened anywhere in
// this call is pruned (cycles terminate), and children deeper than
// MaxDepth are pruned (long chains terminate). Pruned branches leave no
// node behind — the caller sees the first-visited copy of a feature
// only. Prerequisite IDs with no catalog entry are kept as placeholder
// leaves instead, so dangling references stay visible in the result.
func Resolve(rootID string, table FeatureTable) (*model.PrerequisiteNode, error) {
	root, ok := table[rootID]
	if !ok {
		return nil, ErrNotFound
	}

	tr := &traversal{
		table:   table,
		visited: make(map[string]struct{}),
	}
	node := tr.expand(root, 0)
	return &node, nil
}

// traversal holds the mutable state of one Resolve call. It is created
// fresh per call and never shared, so Resolve stays reentrant.
type traversal struct {
	table   FeatureTable
	visited map[string]struct{}
}

func (t *traversal) expand(feature model.GrammarFeature, depth int) model.PrerequisiteNode {
	t.visited[feature.ID] = struct{}{}

	node := model.PrerequisiteNode{
		ID:       feature.ID,
		Name:     feature.Name,
		Band:     feature.Band,
		Children: []model.PrerequisiteNode{},
	}

	for _, prereqID := range feature.Prerequisites {
		if depth+1 > MaxDepth {
			break
		}
		if _, seen := t.visited[prereqID]; seen {
			continue
		}
		child, ok := t.table[prereqID]
		if !ok {
			node.Children = append(node.Children, placeholder(prereqID))
			continue
		}
		node.Children = append(node.Children, t.expand(child, depth+1))
	}

	return node
}

func placeholder(id string) model.PrerequisiteNode {
	return model.PrerequisiteNode{
		ID:       id,
		Name:     model.UnresolvedName,
		Band:     cefr.BandUnknown,
		Children: []model.PrerequisiteNode{},
	}
}
