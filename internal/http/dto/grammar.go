package dto

import "linguagraph.app/insight/internal/model"

// PrerequisiteNodeResponse mirrors the resolved tree shape. Children
// keep the order the catalog lists prerequisites in.
type PrerequisiteNodeResponse struct {
	ID            string                     `json:"id"`
	Name          string                     `json:"name"`
	CEFRLevel     string                     `json:"cefr_level"`
	Prerequisites []PrerequisiteNodeResponse `json:"prerequisites"`
}

func ToPrerequisiteNodeResponse(node *model.PrerequisiteNode) *PrerequisiteNodeResponse {
	resp := &PrerequisiteNodeResponse{
		ID:            node.ID,
		Name:          node.Name,
		CEFRLevel:     string(node.Band),
		Prerequisites: make([]PrerequisiteNodeResponse, 0, len(node.Children)),
	}
	for i := range node.Children {
		resp.Prerequisites = append(resp.Prerequisites, *ToPrerequisiteNodeResponse(&node.Children[i]))
	}
	return resp
}
