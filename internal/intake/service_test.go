package intake_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/shazam37/ai-underwriting/internal/apperr"
	"github.com/shazam37/ai-underwriting/internal/config"
	"github.com/shazam37/ai-underwriting/internal/db"
	"github.com/shazam37/ai-underwriting/internal/intake"
	"github.com/shazam37/ai-underwriting/internal/models"
	"github.com/shazam37/ai-underwriting/internal/pkg/llm"
	"github.com/shazam37/ai-underwriting/internal/testhelpers"
)

type stubAnalyzer struct {
	verdict    bool
	verifyErr  error
	number     string
	extractErr error

	lastDeclaredType string
	lastPayload      llm.Payload
}

func (s *stubAnalyzer) VerifyDocument(ctx context.Context, declaredType string, payload llm.Payload) (bool, error) {
	s.lastDeclaredType = declaredType
	s.lastPayload = payload
	return s.verdict, s.verifyErr
}

func (s *stubAnalyzer) ExtractNumber(ctx context.Context, payload llm.Payload) (string, error) {
	return s.number, s.extractErr
}

var _ = Describe("Service", func() {
	var (
		dbConn    *gorm.DB
		analyzer  *stubAnalyzer
		service   *intake.Service
		uploadDir string
	)

	BeforeEach(func() {
		cfg, err := config.LoadConfig()
		Expect(err).NotTo(HaveOccurred())

		dbConn, err = db.InitDB(cfg.DatabaseURL)
		if err != nil {
			Skip("database not available: " + err.Error())
		}

		Expect(db.Migrate(dbConn)).To(Succeed())
		testhelpers.CleanupDB(dbConn)

		uploadDir = GinkgoT().TempDir()
		files, err := intake.NewFileStore(uploadDir)
		Expect(err).NotTo(HaveOccurred())

		analyzer = &stubAnalyzer{verdict: true, number: "D7654321"}
		service = intake.NewService(dbConn, analyzer, files, "http://images.test")
		service.ExtractPDF = func(data []byte) (string, error) {
			return "extracted document text", nil
		}
	})

	Describe("ProcessPersonalDocument", func() {
		It("sends PDF text to the analyzer", func() {
			result, err := service.ProcessPersonalDocument(context.Background(), "license.pdf", []byte("%PDF-stub"), models.DocumentTypeDrivingLicense)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Success).To(BeTrue())
			Expect(result.ExtractedNumber).To(Equal("D7654321"))
			Expect(analyzer.lastDeclaredType).To(Equal("driving_license"))
			Expect(analyzer.lastPayload.Text).To(Equal("extracted document text"))
			Expect(analyzer.lastPayload.ImageURL).To(BeEmpty())

			var uploads []models.DocumentUpload
			Expect(dbConn.Find(&uploads).Error).To(Succeed())
			Expect(uploads).To(HaveLen(1))
		})

		It("sends a hosted image reference for raster uploads", func() {
			result, err := service.ProcessPersonalDocument(context.Background(), "card.jpg", []byte("jpeg bytes"), models.DocumentTypeSSN)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Success).To(BeTrue())
			Expect(analyzer.lastPayload.Text).To(BeEmpty())
			Expect(analyzer.lastPayload.ImageURL).To(Equal("http://images.test/" + filepath.Base(result.FilePath)))
		})

		It("keeps the artifact on a failed verification", func() {
			analyzer.verdict = false

			result, err := service.ProcessPersonalDocument(context.Background(), "card.png", []byte("png bytes"), models.DocumentTypeSSN)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Success).To(BeFalse())

			_, statErr := os.Stat(result.FilePath)
			Expect(statErr).NotTo(HaveOccurred())

			var count int64
			Expect(dbConn.Model(&models.DocumentUpload{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})

		It("removes the artifact when extraction fails", func() {
			analyzer.extractErr = errors.New("no number visible")

			_, err := service.ProcessPersonalDocument(context.Background(), "license.pdf", []byte("%PDF-stub"), models.DocumentTypeDrivingLicense)
			Expect(err).To(HaveOccurred())
			Expect(apperr.Status(err)).To(Equal(http.StatusInternalServerError))

			entries, readErr := os.ReadDir(uploadDir)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})

		It("rejects disallowed extensions before saving anything", func() {
			_, err := service.ProcessPersonalDocument(context.Background(), "notes.txt", []byte("text"), models.DocumentTypeSSN)
			Expect(err).To(HaveOccurred())
			Expect(apperr.Status(err)).To(Equal(http.StatusBadRequest))

			entries, readErr := os.ReadDir(uploadDir)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})

		It("treats an unreadable PDF as a client error", func() {
			service.ExtractPDF = func(data []byte) (string, error) {
				return "", errors.New("could not read PDF content")
			}

			_, err := service.ProcessPersonalDocument(context.Background(), "license.pdf", []byte("garbage"), models.DocumentTypeDrivingLicense)
			Expect(err).To(HaveOccurred())
			Expect(apperr.Status(err)).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ProcessBankDocument", func() {
		It("persists the extracted text of a verified document", func() {
			result, err := service.ProcessBankDocument(context.Background(), "statement.pdf", []byte("%PDF-stub"), models.ApplicationTypeBankStatement)
			Expect(err).NotTo(HaveOccurred())

			Expect(result.Success).To(BeTrue())
			Expect(result.Content).To(Equal("extracted document text"))

			var uploads []models.ApplicationUpload
			Expect(dbConn.Find(&uploads).Error).To(Succeed())
			Expect(uploads).To(HaveLen(1))
			Expect(uploads[0].ApplicationType).To(Equal("bank_statement"))
		})

		It("only accepts PDFs", func() {
			_, err := service.ProcessBankDocument(context.Background(), "statement.jpg", []byte("jpeg"), models.ApplicationTypeBankStatement)
			Expect(err).To(HaveOccurred())
			Expect(apperr.Status(err)).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("FileStore", func() {
		It("stores under a fresh name and keeps the extension", func() {
			files, err := intake.NewFileStore(GinkgoT().TempDir())
			Expect(err).NotTo(HaveOccurred())

			path, err := files.Save("original.png", []byte("bytes"))
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.Ext(path)).To(Equal(".png"))
			Expect(filepath.Base(path)).NotTo(Equal("original.png"))

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal([]byte("bytes")))

			files.Remove(path)
			_, err = os.Stat(path)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})
})
