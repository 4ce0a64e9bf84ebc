package service

import (
	"context"

	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/store"
)

const defaultExerciseLimit = 50

// ExerciseService lists practice exercises.
type ExerciseService interface {
	List(ctx context.Context, filters store.ExerciseFilters) ([]model.Exercise, error)
}

type exerciseService struct {
	exercises store.ExerciseStore
}

func NewExerciseService(exercises store.ExerciseStore) ExerciseService {
	return &exerciseService{exercises: exercises}
}

func (s *exerciseService) List(ctx context.Context, filters store.ExerciseFilters) ([]model.Exercise, error) {
	if filters.Limit < 1 {
		filters.Limit = defaultExerciseLimit
	}
	return s.exercises.List(ctx, filters)
}
