package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shazam37/ai-underwriting/internal/apperr"
	"github.com/shazam37/ai-underwriting/internal/intake"
	"github.com/shazam37/ai-underwriting/internal/models"
)

// DocumentController serves the identity-document intake and its lookups.
type DocumentController struct {
	DB     *gorm.DB
	Intake *intake.Service
}

// UploadPersonalDocuments runs the full intake pipeline for a driving
// license or SSN document.
func (dc *DocumentController) UploadPersonalDocuments(c *gin.Context) {
	docType, err := models.ParseDocumentType(c.Query("document_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileName, data, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := dc.Intake.ProcessPersonalDocument(c.Request.Context(), fileName, data, docType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SaveDrivingLicense is the bypass path for clients that already extracted
// the number themselves. Failures are reported in the body, not the status.
func (dc *DocumentController) SaveDrivingLicense(c *gin.Context) {
	number := c.Param("extracted_number")

	if err := dc.Intake.SaveExtractedNumber(c.Request.Context(), models.DocumentTypeDrivingLicense, number); err != nil {
		c.String(http.StatusOK, fmt.Sprintf("Couldn't upload DL due to: %v", err))
		return
	}

	c.String(http.StatusOK, "DL number uploaded")
}

func (dc *DocumentController) SaveSSN(c *gin.Context) {
	number := c.Param("extracted_number")

	if err := dc.Intake.SaveExtractedNumber(c.Request.Context(), models.DocumentTypeSSN, number); err != nil {
		c.String(http.StatusOK, fmt.Sprintf("Couldn't upload SSN due to: %v", err))
		return
	}

	c.String(http.StatusOK, "SSN uploaded")
}

// GetLatestDLNumber returns the most recently extracted driving license
// number.
func (dc *DocumentController) GetLatestDLNumber(c *gin.Context) {
	dc.latestNumber(c, models.DocumentTypeDrivingLicense)
}

// GetLatestSSNNumber returns the most recently extracted SSN.
func (dc *DocumentController) GetLatestSSNNumber(c *gin.Context) {
	dc.latestNumber(c, models.DocumentTypeSSN)
}

func (dc *DocumentController) latestNumber(c *gin.Context, docType models.DocumentType) {
	var latest models.DocumentUpload
	err := dc.DB.Where("document_type = ?", string(docType)).
		Order("created_at DESC").First(&latest).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			err = apperr.NotFound("No documents found for this type")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, latest.ExtractedNumber)
}

// GetAllDocumentUploads lists every identity intake log entry.
func (dc *DocumentController) GetAllDocumentUploads(c *gin.Context) {
	var documents []models.DocumentUpload
	if err := dc.DB.Find(&documents).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, documents)
}

func readUpload(c *gin.Context) (string, []byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return "", nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return "", nil, false
	}

	return fileHeader.Filename, data, true
}
