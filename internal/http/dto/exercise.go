package dto

import "linguagraph.app/insight/internal/model"

type ListExercisesRequest struct {
	FeatureID string `form:"feature_id" json:"feature_id,omitempty" binding:"omitempty,max=120" jsonschema:"description=Only exercises attached to this grammar feature"`
	Type      string `form:"type" json:"type,omitempty" binding:"omitempty,oneof=cloze multiple_choice transformation dictation" jsonschema:"enum=cloze,enum=multiple_choice,enum=transformation,enum=dictation,description=Optional exercise type filter"`
	Limit     int32  `form:"limit" json:"limit,omitempty" binding:"omitempty,min=1,max=200" jsonschema:"minimum=1,maximum=200,description=Maximum rows returned"`
}

type ExerciseResponse struct {
	ID              string  `json:"id"`
	FeatureID       string  `json:"feature_id"`
	Type            string  `json:"type"`
	Prompt          string  `json:"prompt"`
	DifficultyScore float64 `json:"difficulty_score"`
}

func ToExerciseResponse(e model.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:              e.ID,
		FeatureID:       e.FeatureID,
		Type:            string(e.Type),
		Prompt:          e.Prompt,
		DifficultyScore: e.DifficultyScore,
	}
}
