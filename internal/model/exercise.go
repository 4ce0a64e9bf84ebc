package model

type ExerciseType string

const (
	ExerciseTypeCloze       ExerciseType = "cloze"
	ExerciseTypeMultiChoice ExerciseType = "multiple_choice"
	ExerciseTypeTransform   ExerciseType = "transformation"
	ExerciseTypeDictation   ExerciseType = "dictation"
)

// Exercise is a practice item attached to a grammar feature.
type Exercise struct {
	ID              string       `json:"id"`
	FeatureID       string       `json:"feature_id"`
	Type            ExerciseType `json:"type"`
	Prompt          string       `json:"prompt"`
	DifficultyScore float64      `json:"difficulty_score"`
}
