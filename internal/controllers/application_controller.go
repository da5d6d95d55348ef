package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shazam37/ai-underwriting/internal/apperr"
	"github.com/shazam37/ai-underwriting/internal/intake"
	"github.com/shazam37/ai-underwriting/internal/models"
)

// ApplicationController serves the financial-document intake and its
// lookups.
type ApplicationController struct {
	DB     *gorm.DB
	Intake *intake.Service
}

// UploadBankDocuments runs the full intake pipeline for a bank application
// or bank statement PDF.
func (ac *ApplicationController) UploadBankDocuments(c *gin.Context) {
	appType, err := models.ParseApplicationType(c.Query("application_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileName, data, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := ac.Intake.ProcessBankDocument(c.Request.Context(), fileName, data, appType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type bankContentRequest struct {
	Content string `json:"content" binding:"required"`
}

// SaveBankApplication persists caller-supplied application text under the
// bank_application tag.
func (ac *ApplicationController) SaveBankApplication(c *gin.Context) {
	var req bankContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	if err := ac.Intake.SaveApplicationContent(c.Request.Context(), models.ApplicationTypeBankApplication, req.Content); err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, "Bank application uploaded")
}

// SaveBankStatement persists caller-supplied statement text under the
// bank_statement tag.
func (ac *ApplicationController) SaveBankStatement(c *gin.Context) {
	var req bankContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	if err := ac.Intake.SaveApplicationContent(c.Request.Context(), models.ApplicationTypeBankStatement, req.Content); err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, "Bank statement uploaded")
}

// GetLatestBankApplication returns the content of the most recent
// bank_application entry.
func (ac *ApplicationController) GetLatestBankApplication(c *gin.Context) {
	ac.latestContent(c, models.ApplicationTypeBankApplication, "No latest bank application found")
}

// GetLatestBankStatement returns the content of the most recent
// bank_statement entry.
func (ac *ApplicationController) GetLatestBankStatement(c *gin.Context) {
	ac.latestContent(c, models.ApplicationTypeBankStatement, "No latest bank statement found")
}

func (ac *ApplicationController) latestContent(c *gin.Context, appType models.ApplicationType, notFoundMsg string) {
	var latest models.ApplicationUpload
	err := ac.DB.Where("application_type = ?", string(appType)).
		Order("created_at DESC").First(&latest).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			err = apperr.NotFound(notFoundMsg)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, latest.Content)
}

// GetAllApplicationUploads lists every financial intake log entry.
func (ac *ApplicationController) GetAllApplicationUploads(c *gin.Context) {
	var applications []models.ApplicationUpload
	if err := ac.DB.Find(&applications).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}
