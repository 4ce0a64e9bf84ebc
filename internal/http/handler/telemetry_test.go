package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"linguagraph.app/insight/internal/http/handler"
	"linguagraph.app/insight/internal/model"
)

var _ = Describe("TelemetryHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTelemetryService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockTelemetryService{}
		h := handler.NewTelemetryHandler(svc)
		router.GET("/usage/stats", h.Stats)
		router.GET("/usage/sessions", h.Sessions)
		router.GET("/usage/proficiency", h.ProficiencyTrend)
		router.GET("/errors/patterns", h.ErrorPatterns)
	})

	Describe("Stats", func() {
		It("defaults the period to week", func() {
			var gotPeriod string
			svc.statsFn = func(_ context.Context, period string) (*model.UsageStats, error) {
				gotPeriod = period
				return &model.UsageStats{Period: period, SessionCount: 42}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/usage/stats", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotPeriod).To(Equal("week"))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["session_count"]).To(BeEquivalentTo(42))
		})

		It("returns 400 on an unknown period", func() {
			req := httptest.NewRequest(http.MethodGet, "/usage/stats?period=year", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Sessions", func() {
		It("parses the since filter as RFC 3339", func() {
			var gotSince *time.Time
			svc.sessionsFn = func(_ context.Context, since *time.Time, _ int32) ([]model.SessionSummary, error) {
				gotSince = since
				return []model.SessionSummary{{ID: "s1", UserHash: "ab12"}}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/usage/sessions?since=2026-08-01T00:00:00Z&limit=5", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotSince).NotTo(BeNil())
			Expect(gotSince.Year()).To(Equal(2026))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["count"]).To(BeEquivalentTo(1))
		})

		It("returns 400 on a malformed since", func() {
			req := httptest.NewRequest(http.MethodGet, "/usage/sessions?since=yesterday", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ProficiencyTrend", func() {
		It("returns 200 with trend points", func() {
			svc.proficiencyTrendFn = func(_ context.Context, skill string) ([]model.ProficiencyPoint, error) {
				return []model.ProficiencyPoint{
					{Skill: skill, Score: 4.2, RecordedAt: time.Now()},
				}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/usage/proficiency?skill=listening", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["skill"]).To(Equal("listening"))
			Expect(resp["points"].([]any)).To(HaveLen(1))
		})

		It("returns 400 when skill is missing", func() {
			req := httptest.NewRequest(http.MethodGet, "/usage/proficiency", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ErrorPatterns", func() {
		It("passes min_count through", func() {
			var gotMin int64
			svc.errorPatternsFn = func(_ context.Context, minCount int64) ([]model.ErrorPattern, error) {
				gotMin = minCount
				return []model.ErrorPattern{{ErrorTag: "ser-estar", Count: 12}}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/errors/patterns?min_count=10", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotMin).To(Equal(int64(10)))
		})

		It("returns 500 when aggregation fails", func() {
			svc.errorPatternsFn = func(_ context.Context, _ int64) ([]model.ErrorPattern, error) {
				return nil, errors.New("boom")
			}

			req := httptest.NewRequest(http.MethodGet, "/errors/patterns", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
