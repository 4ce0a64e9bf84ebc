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

	"linguagraph.app/insight/internal/cefr"
	"linguagraph.app/insight/internal/http/handler"
	"linguagraph.app/insight/internal/model"
	"linguagraph.app/insight/internal/service"
)

var _ = Describe("ContentHandler", func() {
	var (
		router *gin.Engine
		svc    *mockContentService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockContentService{}
		h := handler.NewContentHandler(svc)
		router.GET("/content", h.Browse)
	})

	It("returns 200 with derived CEFR levels", func() {
		svc.browseFn = func(_ context.Context, _ service.BrowseFilters) ([]model.ContentItem, error) {
			return []model.ContentItem{
				{ID: "c1", Type: model.ContentTypeText, Title: "greetings", DifficultyScore: 1.5, CreatedAt: time.Now()},
				{ID: "c2", Type: model.ContentTypeAudio, Title: "debate", DifficultyScore: 8.2, CreatedAt: time.Now()},
			}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/content", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["count"]).To(BeEquivalentTo(2))
		items := resp["items"].([]any)
		Expect(items[0].(map[string]any)["cefr_level"]).To(Equal("A1"))
		Expect(items[1].(map[string]any)["cefr_level"]).To(Equal("C1"))
	})

	It("passes the level filter through to the service", func() {
		var got service.BrowseFilters
		svc.browseFn = func(_ context.Context, filters service.BrowseFilters) ([]model.ContentItem, error) {
			got = filters
			return nil, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/content?level=B1&topic=travel&type=audio&limit=10", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got.Level).NotTo(BeNil())
		Expect(*got.Level).To(Equal(cefr.BandB1))
		Expect(*got.Topic).To(Equal("travel"))
		Expect(*got.Type).To(Equal(model.ContentTypeAudio))
		Expect(got.Limit).To(Equal(10))
	})

	It("returns 400 on an unknown level", func() {
		req := httptest.NewRequest(http.MethodGet, "/content?level=Z9", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 400 on an out-of-range limit", func() {
		req := httptest.NewRequest(http.MethodGet, "/content?limit=0", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 500 when the service fails", func() {
		svc.browseFn = func(_ context.Context, _ service.BrowseFilters) ([]model.ContentItem, error) {
			return nil, errors.New("boom")
		}

		req := httptest.NewRequest(http.MethodGet, "/content", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
