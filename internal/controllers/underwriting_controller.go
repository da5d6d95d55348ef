package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shazam37/ai-underwriting/internal/apperr"
	"github.com/shazam37/ai-underwriting/internal/models"
	"github.com/shazam37/ai-underwriting/internal/pkg/flow"
	"github.com/shazam37/ai-underwriting/internal/pkg/underwriting"
)

// UnderwritingController serves the result log and the two partner proxies.
type UnderwritingController struct {
	DB   *gorm.DB
	UW   *underwriting.Client
	Flow *flow.Client

	// ResultPollDelay is how long the case-profile proxy waits before
	// asking upstream: partner cases take about a minute to register.
	// Shortened in tests.
	ResultPollDelay time.Duration
}

type underwritingInput struct {
	PayloadContent string `json:"payload_content" binding:"required"`
}

// PostUnderwritingResult appends one entry to the result log.
func (uc *UnderwritingController) PostUnderwritingResult(c *gin.Context) {
	var req underwritingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload_content is required"})
		return
	}

	result := models.UnderwritingResult{
		ID:        uuid.NewString(),
		Content:   req.PayloadContent,
		CreatedAt: time.Now(),
	}
	if err := uc.DB.WithContext(c.Request.Context()).Create(&result).Error; err != nil {
		log.Printf("failed to save underwriting result: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save underwriting result"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Underwriting result saved successfully",
		"id":      result.ID,
	})
}

// GetLatestUnderwritingResult returns the newest result log entry.
func (uc *UnderwritingController) GetLatestUnderwritingResult(c *gin.Context) {
	var latest models.UnderwritingResult
	err := uc.DB.Order("created_at DESC").First(&latest).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			err = apperr.NotFound("No underwriting result found.")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"underwriting_analysis": latest.Content})
}

func (uc *UnderwritingController) GetAllUnderwritingResults(c *gin.Context) {
	var results []models.UnderwritingResult
	if err := uc.DB.Find(&results).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetUWResult waits for the partner to register the case, then proxies the
// case-profile lookup. The wait-then-poll shape is deliberate; the delay is
// aborted if the caller disconnects.
func (uc *UnderwritingController) GetUWResult(c *gin.Context) {
	tag := c.Param("tag")
	id := c.Param("id")

	ctx := c.Request.Context()
	select {
	case <-ctx.Done():
		// Caller went away; nothing can be delivered.
		c.Abort()
		return
	case <-time.After(uc.ResultPollDelay):
	}

	result, err := uc.UW.GetCaseProfile(ctx, tag, id)
	if err != nil {
		log.Printf("upstream request failed: %v", err)
		respondError(c, apperr.Upstream("Upstream request failed", nil))
		return
	}

	if result.Data == nil {
		c.JSON(http.StatusOK, gin.H{
			"warning":  "Upstream returned non-JSON payload",
			"raw_text": result.RawText,
		})
		return
	}

	c.Data(http.StatusOK, "application/json", result.Data)
}

// RunUnderwritingFlow triggers the flow-orchestration partner and returns
// the produced text. Failures are logged and answered with a null body, not
// an error status.
func (uc *UnderwritingController) RunUnderwritingFlow(c *gin.Context) {
	text, err := uc.Flow.Run(c.Request.Context())
	if err != nil {
		log.Printf("underwriting flow failed: %v", err)
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, text)
}
