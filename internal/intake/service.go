// Package intake runs the document pipeline: validate the upload, extract a
// verifiable payload, ask the model whether the declared type is truthful,
// and persist the accepted outcome. A rejected document is a normal result,
// not an error.
package intake

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shazam37/ai-underwriting/internal/apperr"
	"github.com/shazam37/ai-underwriting/internal/models"
	"github.com/shazam37/ai-underwriting/internal/pkg/llm"
	"github.com/shazam37/ai-underwriting/internal/pkg/pdftext"
)

// Analyzer is the LLM collaborator. Faked in tests.
type Analyzer interface {
	VerifyDocument(ctx context.Context, declaredType string, payload llm.Payload) (bool, error)
	ExtractNumber(ctx context.Context, payload llm.Payload) (string, error)
}

var identityExtensions = map[string]bool{
	".pdf": true, ".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".bmp": true, ".tiff": true,
}

var financialExtensions = map[string]bool{
	".pdf": true,
}

type Service struct {
	DB           *gorm.DB
	Analyzer     Analyzer
	Files        *FileStore
	ImageHostURL string

	// ExtractPDF converts PDF bytes to text. Defaults to pdftext.Extract;
	// replaced in tests that have no real PDFs.
	ExtractPDF func(data []byte) (string, error)
}

func NewService(db *gorm.DB, analyzer Analyzer, files *FileStore, imageHostURL string) *Service {
	return &Service{
		DB:           db,
		Analyzer:     analyzer,
		Files:        files,
		ImageHostURL: imageHostURL,
		ExtractPDF:   pdftext.Extract,
	}
}

type DocumentResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	DocumentType    string `json:"document_type"`
	ExtractedNumber string `json:"extracted_number"`
	FilePath        string `json:"file_path"`
}

type ApplicationResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	ApplicationType string `json:"application_type"`
	Content         string `json:"content"`
	FilePath        string `json:"file_path"`
}

// ProcessPersonalDocument runs the identity intake: save the artifact, build
// the payload (PDF text or image reference), verify the declared type, then
// extract and persist the identity number. Any failure after the artifact is
// saved deletes it best-effort; a failed verification keeps it.
func (s *Service) ProcessPersonalDocument(ctx context.Context, fileName string, data []byte, docType models.DocumentType) (*DocumentResult, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !identityExtensions[ext] {
		return nil, apperr.Input(fmt.Sprintf("File type %s not allowed. Allowed types: %s", ext, allowedList(identityExtensions)))
	}

	filePath, err := s.Files.Save(fileName, data)
	if err != nil {
		return nil, apperr.Persistence("Error saving file", err)
	}

	payload, err := s.buildPayload(ext, filepath.Base(filePath), data)
	if err != nil {
		s.Files.Remove(filePath)
		return nil, err
	}

	verified, err := s.Analyzer.VerifyDocument(ctx, string(docType), payload)
	if err != nil {
		s.Files.Remove(filePath)
		return nil, apperr.Extraction("Error verifying document", err)
	}

	if !verified {
		log.Printf("failed verification for %s", docType)
		return &DocumentResult{
			Success:         false,
			Message:         fmt.Sprintf("Couldn't Upload the document: %s", docType),
			DocumentType:    string(docType),
			ExtractedNumber: "",
			FilePath:        filePath,
		}, nil
	}

	extractedNumber, err := s.Analyzer.ExtractNumber(ctx, payload)
	if err != nil {
		s.Files.Remove(filePath)
		return nil, apperr.Extraction("Error extracting number", err)
	}

	log.Printf("the number extracted: %s", extractedNumber)

	if err := s.SaveExtractedNumber(ctx, docType, extractedNumber); err != nil {
		s.Files.Remove(filePath)
		return nil, err
	}

	return &DocumentResult{
		Success:         true,
		Message:         fmt.Sprintf("Successfully extracted %s number", docType),
		DocumentType:    string(docType),
		ExtractedNumber: extractedNumber,
		FilePath:        filePath,
	}, nil
}

// ProcessBankDocument runs the financial intake. PDF only; the extracted
// text itself is the payload to persist, there is no field-extraction step.
func (s *Service) ProcessBankDocument(ctx context.Context, fileName string, data []byte, appType models.ApplicationType) (*ApplicationResult, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !financialExtensions[ext] {
		return nil, apperr.Input(fmt.Sprintf("File type %s not allowed. Allowed types: %s", ext, allowedList(financialExtensions)))
	}

	filePath, err := s.Files.Save(fileName, data)
	if err != nil {
		return nil, apperr.Persistence("Error saving file", err)
	}

	content, err := s.ExtractPDF(data)
	if err != nil {
		s.Files.Remove(filePath)
		return nil, apperr.Input(err.Error())
	}

	verified, err := s.Analyzer.VerifyDocument(ctx, string(appType), llm.Payload{Text: content})
	if err != nil {
		s.Files.Remove(filePath)
		return nil, apperr.Extraction("Error verifying document", err)
	}

	if !verified {
		log.Printf("failed verification for %s", appType)
		return &ApplicationResult{
			Success:         false,
			Message:         fmt.Sprintf("Couldn't Upload the document: %s", appType),
			ApplicationType: string(appType),
			Content:         "",
			FilePath:        filePath,
		}, nil
	}

	if err := s.SaveApplicationContent(ctx, appType, content); err != nil {
		s.Files.Remove(filePath)
		return nil, err
	}

	return &ApplicationResult{
		Success:         true,
		Message:         fmt.Sprintf("Successfully extracted %s", appType),
		ApplicationType: string(appType),
		Content:         content,
		FilePath:        filePath,
	}, nil
}

// SaveExtractedNumber appends one row to the identity intake log. Also the
// bypass path for clients that already hold the value.
func (s *Service) SaveExtractedNumber(ctx context.Context, docType models.DocumentType, number string) error {
	row := models.DocumentUpload{
		ID:              uuid.NewString(),
		DocumentType:    string(docType),
		ExtractedNumber: number,
		CreatedAt:       time.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return apperr.Persistence("failed to save document upload", err)
	}

	log.Println("document saved successfully")
	return nil
}

// SaveApplicationContent appends one row to the financial intake log.
func (s *Service) SaveApplicationContent(ctx context.Context, appType models.ApplicationType, content string) error {
	row := models.ApplicationUpload{
		ID:              uuid.NewString(),
		Content:         content,
		ApplicationType: string(appType),
		CreatedAt:       time.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return apperr.Persistence("failed to save application upload", err)
	}

	log.Println("application saved successfully")
	return nil
}

func (s *Service) buildPayload(ext string, fileName string, data []byte) (llm.Payload, error) {
	if ext == ".pdf" {
		text, err := s.ExtractPDF(data)
		if err != nil {
			return llm.Payload{}, apperr.Input(err.Error())
		}
		return llm.Payload{Text: text}, nil
	}

	// Raster formats are never processed locally; the model dereferences a
	// hosted copy of the upload.
	return llm.Payload{ImageURL: fmt.Sprintf("%s/%s", s.ImageHostURL, fileName)}, nil
}

func allowedList(set map[string]bool) string {
	exts := make([]string, 0, len(set))
	for ext := range set {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
