package models

import "time"

// DocumentUpload is the append-only intake log for identity documents.
// "Latest by type" lookups order on created_at.
type DocumentUpload struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	DocumentType    string    `json:"document_type"`
	ExtractedNumber string    `json:"extracted_number"`
	CreatedAt       time.Time `json:"created_at"`
}

func (DocumentUpload) TableName() string {
	return "document_upload"
}

// ApplicationUpload is the append-only intake log for financial documents.
type ApplicationUpload struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Content         string    `json:"content"`
	ApplicationType string    `json:"application_type"`
	CreatedAt       time.Time `json:"created_at"`
}

func (ApplicationUpload) TableName() string {
	return "application_upload"
}

type UnderwritingResult struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (UnderwritingResult) TableName() string {
	return "underwriting_result"
}
