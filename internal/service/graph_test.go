package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"linguagraph.app/insight/internal/cefr"
	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/prereq"
	"linguagraph.app/insight/internal/service"
)

var _ = Describe("GraphService", func() {
	var (
		svc     service.GraphService
		catalog *mockFeatureStore
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		catalog = &mockFeatureStore{}
		svc = service.NewGraphService(catalog)
	})

	It("resolves a tree from the fetched catalog", func() {
		catalog.listAllFn = func(_ context.Context) ([]model.GrammarFeature, error) {
			return []model.GrammarFeature{
				{ID: "conditionals", Name: "Conditionals", Band: cefr.BandB1, Prerequisites: []string{"past-simple"}},
				{ID: "past-simple", Name: "Past Simple", Band: cefr.BandA2},
			}, nil
		}

		node, err := svc.PrerequisiteTree(ctx, "conditionals")

		Expect(err).NotTo(HaveOccurred())
		Expect(node.ID).To(Equal("conditionals"))
		Expect(node.Children).To(HaveLen(1))
		Expect(node.Children[0].ID).To(Equal("past-simple"))
	})

	It("passes prereq.ErrNotFound through for unknown roots", func() {
		catalog.listAllFn = func(_ context.Context) ([]model.GrammarFeature, error) {
			return []model.GrammarFeature{}, nil
		}

		_, err := svc.PrerequisiteTree(ctx, "nope")
		Expect(err).To(MatchError(prereq.ErrNotFound))
	})

	It("wraps catalog fetch failures", func() {
		boom := errors.New("connection reset")
		catalog.listAllFn = func(_ context.Context) ([]model.GrammarFeature, error) {
			return nil, boom
		}

		_, err := svc.PrerequisiteTree(ctx, "conditionals")
		Expect(err).To(MatchError(boom))
		Expect(errors.Is(err, prereq.ErrNotFound)).To(BeFalse())
	})
})
