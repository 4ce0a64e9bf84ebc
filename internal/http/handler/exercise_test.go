package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"linguagraph.app/insight/internal/http/handler"
	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/store"
)

var _ = Describe("ExerciseHandler", func() {
	var (
		router *gin.Engine
		svc    *mockExerciseService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockExerciseService{}
		h := handler.NewExerciseHandler(svc)
		router.GET("/exercises", h.List)
	})

	It("returns 200 with the filtered exercises", func() {
		var got store.ExerciseFilters
		svc.listFn = func(_ context.Context, filters store.ExerciseFilters) ([]model.Exercise, error) {
			got = filters
			return []model.Exercise{
				{ID: "e1", FeatureID: "subjunctive", Type: model.ExerciseTypeCloze, Prompt: "fill the blank"},
			}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/exercises?feature_id=subjunctive&type=cloze&limit=25", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(*got.FeatureID).To(Equal("subjunctive"))
		Expect(*got.Type).To(Equal(model.ExerciseTypeCloze))
		Expect(got.Limit).To(Equal(int32(25)))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["count"]).To(BeEquivalentTo(1))
	})

	It("returns 400 on an unknown exercise type", func() {
		req := httptest.NewRequest(http.MethodGet, "/exercises?type=essay", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 500 when the service fails", func() {
		svc.listFn = func(_ context.Context, _ store.ExerciseFilters) ([]model.Exercise, error) {
			return nil, errors.New("boom")
		}

		req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
