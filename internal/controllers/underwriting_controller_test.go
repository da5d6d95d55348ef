package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/shazam37/ai-underwriting/internal/controllers"
	"github.com/shazam37/ai-underwriting/internal/models"
	"github.com/shazam37/ai-underwriting/internal/pkg/flow"
	"github.com/shazam37/ai-underwriting/internal/pkg/underwriting"
	"github.com/shazam37/ai-underwriting/internal/testhelpers"
)

var _ = Describe("UnderwritingController", func() {
	var (
		dbConn *gorm.DB
		mock   *testhelpers.MockTransport
		router *gin.Engine
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)

		dbConn, _ = setupTestDB()

		mock = testhelpers.NewMockTransport()
		controller := controllers.UnderwritingController{
			DB:              dbConn,
			UW:              underwriting.NewWithClient("test-token", "https://apiv2.aryaxai.com", mock.Client()),
			Flow:            flow.NewWithClient("https://flow.test/api/v1/run/lending", "test-key", mock.Client()),
			ResultPollDelay: time.Millisecond,
		}

		router = gin.New()
		router.POST("/post_underwriting_result", controller.PostUnderwritingResult)
		router.GET("/latest_underwriting_result", controller.GetLatestUnderwritingResult)
		router.GET("/get_all_underwriting_results", controller.GetAllUnderwritingResults)
		router.GET("/get_uw_result/:tag/:id", controller.GetUWResult)
		router.GET("/run_underwriting_flow", controller.RunUnderwritingFlow)
	})

	Describe("POST /post_underwriting_result", func() {
		It("stores the payload and returns its id", func() {
			body := strings.NewReader(`{"payload_content": "risk grade B"}`)
			req := httptest.NewRequest(http.MethodPost, "/post_underwriting_result", body)
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			Expect(resp.Code).To(Equal(http.StatusOK))

			var reply struct {
				Message string `json:"message"`
				ID      string `json:"id"`
			}
			Expect(json.Unmarshal(resp.Body.Bytes(), &reply)).To(Succeed())
			Expect(reply.Message).To(Equal("Underwriting result saved successfully"))
			Expect(reply.ID).NotTo(BeEmpty())

			var stored models.UnderwritingResult
			Expect(dbConn.First(&stored, "id = ?", reply.ID).Error).To(Succeed())
			Expect(stored.Content).To(Equal("risk grade B"))
		})

		It("rejects a body without payload_content", func() {
			req := httptest.NewRequest(http.MethodPost, "/post_underwriting_result", strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(resp.Body.String()).To(MatchJSON(`{"error": "payload_content is required"}`))
		})
	})

	Describe("GET /latest_underwriting_result", func() {
		It("returns the newest entry", func() {
			older := models.UnderwritingResult{
				ID:        uuid.NewString(),
				Content:   "old analysis",
				CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			}
			newer := models.UnderwritingResult{
				ID:        uuid.NewString(),
				Content:   "new analysis",
				CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			}
			Expect(dbConn.Create(&older).Error).To(Succeed())
			Expect(dbConn.Create(&newer).Error).To(Succeed())

			req := httptest.NewRequest(http.MethodGet, "/latest_underwriting_result", nil)
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body.String()).To(MatchJSON(`{"underwriting_analysis": "new analysis"}`))
		})

		It("returns 404 when the log is empty", func() {
			req := httptest.NewRequest(http.MethodGet, "/latest_underwriting_result", nil)
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			Expect(resp.Code).To(Equal(http.StatusNotFound))
			Expect(resp.Body.String()).To(MatchJSON(`{"error": "No underwriting result found."}`))
		})
	})

	Describe("GET /get_all_underwriting_results", func() {
		It("lists every entry", func() {
			for _, content := range []string{"a", "b", "c"} {
				result := models.UnderwritingResult{ID: uuid.NewString(), Content: content, CreatedAt: time.Now()}
				Expect(dbConn.Create(&result).Error).To(Succeed())
			}

			req := httptest.NewRequest(http.MethodGet, "/get_all_underwriting_results", nil)
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			Expect(resp.Code).To(Equal(http.StatusOK))

			var results []models.UnderwritingResult
			Expect(json.Unmarshal(resp.Body.Bytes(), &results)).To(Succeed())
			Expect(results).To(HaveLen(3))
		})
	})

	Describe("GET /get_uw_result/:tag/:id", func() {
		It("proxies the upstream JSON payload", func() {
			mock.New("https://apiv2.aryaxai.com").
				Post("/v2/project/get-case-profile").
				Reply(200).
				JSON(map[string]interface{}{"case_id": "case-42", "decision": "approved"})

			req := httptest.NewRequest(http.MethodGet, "/get_uw_result/loan/case-42", nil)
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body.String()).To(MatchJSON(`{"case_id": "case-42", "decision": "approved"}`))
			Expect(mock.IsDone()).To(BeTrue())
		})

		It("wraps a non-JSON upstream payload", func() {
			mock.New("https://apiv2.aryaxai.com").
				Post("/v2/project/get-case-profile").
				Reply(200).
				BodyString("profile still being generated")

			req := httptest.NewRequest(http.MethodGet, "/get_uw_result/loan/case-42", nil)
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body.String()).To(MatchJSON(`{"warning": "Upstream returned non-JSON payload", "raw_text": "profile still being generated"}`))
		})

		It("stops waiting and calls nothing when the caller disconnects", func() {
			slow := controllers.UnderwritingController{
				DB:              dbConn,
				UW:              underwriting.NewWithClient("test-token", "https://apiv2.aryaxai.com", mock.Client()),
				ResultPollDelay: time.Hour,
			}
			engine := gin.New()
			engine.GET("/get_uw_result/:tag/:id", slow.GetUWResult)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			req := httptest.NewRequest(http.MethodGet, "/get_uw_result/loan/case-42", nil).WithContext(ctx)
			resp := httptest.NewRecorder()

			engine.ServeHTTP(resp, req)

			Expect(resp.Body.Len()).To(BeZero())
			Expect(mock.IsDone()).To(BeTrue(), "no upstream call expected")
		})

		It("answers 502 when upstream fails", func() {
			mock.New("https://apiv2.aryaxai.com").
				Post("/v2/project/get-case-profile").
				Reply(500).
				BodyString("internal error")

			req := httptest.NewRequest(http.MethodGet, "/get_uw_result/loan/case-42", nil)
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			Expect(resp.Code).To(Equal(http.StatusBadGateway))
			Expect(resp.Body.String()).To(MatchJSON(`{"error": "Upstream request failed"}`))
		})
	})

	Describe("GET /run_underwriting_flow", func() {
		It("returns the flow text", func() {
			envelope := map[string]interface{}{
				"outputs": []interface{}{
					map[string]interface{}{
						"outputs": []interface{}{
							map[string]interface{}{
								"results": map[string]interface{}{
									"message": map[string]interface{}{
										"data": map[string]interface{}{"text": "Recommend approval"},
									},
								},
							},
						},
					},
				},
			}
			mock.New("https://flow.test").
				Post("/api/v1/run/lending").
				Reply(200).
				JSON(envelope)

			req := httptest.NewRequest(http.MethodGet, "/run_underwriting_flow", nil)
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body.String()).To(MatchJSON(`"Recommend approval"`))
		})

		It("answers null when the flow fails", func() {
			mock.New("https://flow.test").
				Post("/api/v1/run/lending").
				Reply(500).
				BodyString("flow crashed")

			req := httptest.NewRequest(http.MethodGet, "/run_underwriting_flow", nil)
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body.String()).To(Equal("null"))
		})
	})
})
