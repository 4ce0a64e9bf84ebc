package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"linguagraph.app/insight/internal/cefr"
	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/service"
)

var _ = Describe("CoverageService", func() {
	var (
		svc     service.CoverageService
		catalog *mockFeatureStore
		content *mockContentStore
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		catalog = &mockFeatureStore{}
		content = &mockContentStore{}
		svc = service.NewCoverageService(catalog, content)
	})

	It("reconciles the two fetched datasets", func() {
		catalog.listAllFn = func(_ context.Context) ([]model.GrammarFeature, error) {
			return []model.GrammarFeature{
				{ID: "articles", Name: "Articles", Band: cefr.BandA1},
				{ID: "gerunds", Name: "Gerunds", Band: cefr.BandB2},
			}, nil
		}
		content.listTagPayloadsFn = func(_ context.Context) ([]model.TagPayload, error) {
			return []model.TagPayload{
				{GrammarFeatures: []string{"articles"}},
				{},
			}, nil
		}

		report, err := svc.Report(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(report.Summary.TotalFeatures).To(Equal(2))
		Expect(report.Summary.Covered).To(Equal(1))
		Expect(report.Summary.Gaps).To(Equal(1))
		Expect(report.Summary.CoveragePercent).To(Equal(50))
	})

	It("fails when the catalog fetch fails", func() {
		boom := errors.New("db down")
		catalog.listAllFn = func(_ context.Context) ([]model.GrammarFeature, error) {
			return nil, boom
		}

		_, err := svc.Report(ctx)
		Expect(err).To(MatchError(boom))
	})

	It("fails when the tag fetch fails", func() {
		catalog.listAllFn = func(_ context.Context) ([]model.GrammarFeature, error) {
			return []model.GrammarFeature{}, nil
		}
		boom := errors.New("db down")
		content.listTagPayloadsFn = func(_ context.Context) ([]model.TagPayload, error) {
			return nil, boom
		}

		_, err := svc.Report(ctx)
		Expect(err).To(MatchError(boom))
	})
})
