package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shazam37/ai-underwriting/internal/apperr"
	"github.com/shazam37/ai-underwriting/internal/models"
)

// RecordController serves point lookups, listings, and the bulk wipe over
// the four master record kinds.
type RecordController struct {
	DB *gorm.DB
}

// GetDrivingLicense returns driving license details by license number.
func (rc *RecordController) GetDrivingLicense(c *gin.Context) {
	var record models.DrivingLicense
	err := rc.DB.Where("license_number = ?", c.Param("license_number")).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			err = apperr.NotFound("Driving license not found")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetSSNRecord returns SSN record details by SSN.
func (rc *RecordController) GetSSNRecord(c *gin.Context) {
	var record models.SSNRecord
	err := rc.DB.Where("ssn = ?", c.Param("ssn")).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			err = apperr.NotFound("SSN record not found")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetBureauRecord returns credit-bureau details by SSN.
func (rc *RecordController) GetBureauRecord(c *gin.Context) {
	var record models.Bureau
	err := rc.DB.Where("ssn = ?", c.Param("ssn")).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			err = apperr.NotFound("Bureau record not found")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetKYCRecord returns KYC details by SSN.
func (rc *RecordController) GetKYCRecord(c *gin.Context) {
	var record models.KYC
	err := rc.DB.Where("ssn = ?", c.Param("ssn")).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			err = apperr.NotFound("KYC record not found")
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (rc *RecordController) GetAllDrivingLicenses(c *gin.Context) {
	var records []models.DrivingLicense
	if err := rc.DB.Find(&records).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (rc *RecordController) GetAllSSNRecords(c *gin.Context) {
	var records []models.SSNRecord
	if err := rc.DB.Find(&records).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (rc *RecordController) GetAllBureauRecords(c *gin.Context) {
	var records []models.Bureau
	if err := rc.DB.Find(&records).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (rc *RecordController) GetAllKYCRecords(c *gin.Context) {
	var records []models.KYC
	if err := rc.DB.Find(&records).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// DeleteAllRecords wipes the four master tables in one transaction and
// reports per-kind counts. An already-empty store is a 404 and leaves state
// unchanged.
func (rc *RecordController) DeleteAllRecords(c *gin.Context) {
	var counts struct {
		DrivingLicenses int64 `json:"driving_licenses"`
		SSNRecords      int64 `json:"ssn_records"`
		BureauRecords   int64 `json:"bureau_records"`
		KYCRecords      int64 `json:"kyc_records"`
		Total           int64 `json:"total"`
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DrivingLicense{}).Count(&counts.DrivingLicenses).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SSNRecord{}).Count(&counts.SSNRecords).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Bureau{}).Count(&counts.BureauRecords).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.KYC{}).Count(&counts.KYCRecords).Error; err != nil {
			return err
		}

		counts.Total = counts.DrivingLicenses + counts.SSNRecords + counts.BureauRecords + counts.KYCRecords
		if counts.Total == 0 {
			return apperr.NotFound("No records found in database")
		}

		if err := tx.Where("1 = 1").Delete(&models.DrivingLicense{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.SSNRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Bureau{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.KYC{}).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "All records deleted successfully",
		"deleted_counts": counts,
	})
}
