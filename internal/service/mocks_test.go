package service_test

import (
	"context"

	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/store"
)

type mockFeatureStore struct {
	listAllFn func(ctx context.Context) ([]model.GrammarFeature, error)
	getByIDFn func(ctx context.Context, id string) (*model.GrammarFeature, error)
}

func (m *mockFeatureStore) ListAll(ctx context.Context) ([]model.GrammarFeature, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockFeatureStore) GetByID(ctx context.Context, id string) (*model.GrammarFeature, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

type mockContentStore struct {
	listTagPayloadsFn func(ctx context.Context) ([]model.TagPayload, error)
	listCandidatesFn  func(ctx context.Context, filters store.ContentFilters) ([]model.ContentItem, error)
}

func (m *mockContentStore) ListTagPayloads(ctx context.Context) ([]model.TagPayload, error) {
	if m.listTagPayloadsFn != nil {
		return m.listTagPayloadsFn(ctx)
	}
	return nil, nil
}

func (m *mockContentStore) ListCandidates(ctx context.Context, filters store.ContentFilters) ([]model.ContentItem, error) {
	if m.listCandidatesFn != nil {
		return m.listCandidatesFn(ctx, filters)
	}
	return nil, nil
}
