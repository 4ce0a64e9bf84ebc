package service

import (
	"context"
	"fmt"

	"linguagraph.app/insight/internal/cefr"
	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/sampling"
	"linguagraph.app/insight/internal/store"
)

// DefaultBrowseLimit applies when the caller sends no limit.
const DefaultBrowseLimit = 18

// MaxCandidatePool bounds the earliest-first fetch feeding the
// stratified sampler, so an unfiltered browse never scans the whole
// content table. Far above any per-band quota a valid limit produces.
const MaxCandidatePool = 1000

// BrowseFilters narrows a content browse. A nil Level selects the
// stratified sampling path.
type BrowseFilters struct {
	Level *cefr.Band
	Topic *string
	Type  *model.ContentType
	Limit int
}

// ContentService lists catalog content.
type ContentService interface {
	Browse(ctx context.Context, filters BrowseFilters) ([]model.ContentItem, error)
}

type contentService struct {
	content store.ContentStore
}

func NewContentService(content store.ContentStore) ContentService {
	return &contentService{content: content}
}

// Browse dispatches on the level filter. With a level, the store
// applies the score-range predicate and the limit directly. Without
// one, a bounded candidate pool is fetched and stratified across bands
// so easy content cannot crowd out the rest.
func (s *contentService) Browse(ctx context.Context, filters BrowseFilters) ([]model.ContentItem, error) {
	limit := filters.Limit
	if limit < 1 {
		limit = DefaultBrowseLimit
	}

	if filters.Level != nil {
		items, err := s.content.ListCandidates(ctx, store.ContentFilters{
			Topic: filters.Topic,
			Type:  filters.Type,
			Band:  filters.Level,
			Limit: int32(limit),
		})
		if err != nil {
			return nil, fmt.Errorf("listing content: %w", err)
		}
		if items == nil {
			items = []model.ContentItem{}
		}
		return items, nil
	}

	candidates, err := s.content.ListCandidates(ctx, store.ContentFilters{
		Topic: filters.Topic,
		Type:  filters.Type,
		Limit: MaxCandidatePool,
	})
	if err != nil {
		return nil, fmt.Errorf("listing content candidates: %w", err)
	}

	return sampling.Stratify(candidates, limit), nil
}
