package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shazam37/ai-underwriting/internal/config"
	"github.com/shazam37/ai-underwriting/internal/controllers"
	"github.com/shazam37/ai-underwriting/internal/intake"
	"github.com/shazam37/ai-underwriting/internal/pkg/flow"
	"github.com/shazam37/ai-underwriting/internal/pkg/underwriting"
)

// Partner cases take about a minute to register upstream before a profile
// can be fetched.
const resultPollDelay = 60 * time.Second

// SetupRouter initializes all services, controllers, and API routes. The
// analyzer is injected so tests can fake the LLM collaborator.
func SetupRouter(db *gorm.DB, cfg *config.Config, analyzer intake.Analyzer) (*gin.Engine, error) {
	files, err := intake.NewFileStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	intakeService := intake.NewService(db, analyzer, files, cfg.ImageHostURL)

	documentController := controllers.DocumentController{DB: db, Intake: intakeService}
	applicationController := controllers.ApplicationController{DB: db, Intake: intakeService}
	recordController := controllers.RecordController{DB: db}
	underwritingController := controllers.UnderwritingController{
		DB:              db,
		UW:              underwriting.New(cfg.UWAPIKey),
		Flow:            flow.New(cfg.LangflowURL, cfg.FlowAPIKey),
		ResultPollDelay: resultPollDelay,
	}

	// Set up Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
	})

	// Intake pipelines
	router.POST("/upload_personal_documents", documentController.UploadPersonalDocuments)
	router.POST("/upload_bank_documents", applicationController.UploadBankDocuments)

	// Bypass saves for clients that already hold the extracted value
	router.POST("/save-driving-license/:extracted_number", documentController.SaveDrivingLicense)
	router.POST("/save-ssn/:extracted_number", documentController.SaveSSN)
	router.POST("/save-bank-application", applicationController.SaveBankApplication)
	router.POST("/save-bank-statement", applicationController.SaveBankStatement)

	// Point lookups by natural key
	router.GET("/driving-license/:license_number", recordController.GetDrivingLicense)
	router.GET("/ssn/:ssn", recordController.GetSSNRecord)
	router.GET("/bureau-record/:ssn", recordController.GetBureauRecord)
	router.GET("/kyc-record/:ssn", recordController.GetKYCRecord)

	// Listings
	router.GET("/driving-licenses", recordController.GetAllDrivingLicenses)
	router.GET("/ssn-records", recordController.GetAllSSNRecords)
	router.GET("/bureau-records", recordController.GetAllBureauRecords)
	router.GET("/kyc-records", recordController.GetAllKYCRecords)
	router.GET("/fetch_all_stored_license", documentController.GetAllDocumentUploads)
	router.GET("/fetch_all_stored_applications", applicationController.GetAllApplicationUploads)

	// Latest-by-type lookups
	router.GET("/latest_dl_number", documentController.GetLatestDLNumber)
	router.GET("/latest_ssn_number", documentController.GetLatestSSNNumber)
	router.GET("/latest_bank_application", applicationController.GetLatestBankApplication)
	router.GET("/latest_bank_statement", applicationController.GetLatestBankStatement)

	// Administrative wipe of the master tables. Route casing is part of the
	// published API.
	router.POST("/Delete_all-records", recordController.DeleteAllRecords)

	// Underwriting result log and partner proxies
	router.POST("/post_underwriting_result", underwritingController.PostUnderwritingResult)
	router.GET("/latest_underwriting_result", underwritingController.GetLatestUnderwritingResult)
	router.GET("/get_all_underwriting_results", underwritingController.GetAllUnderwritingResults)
	router.GET("/get_uw_result/:tag/:id", underwritingController.GetUWResult)
	router.GET("/run_underwriting_flow", underwritingController.RunUnderwritingFlow)

	return router, nil
}
