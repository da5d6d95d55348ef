package models

import "fmt"

// DocumentType tags an identity-document intake. Validated at the boundary
// before the pipeline runs.
type DocumentType string

const (
	DocumentTypeDrivingLicense DocumentType = "driving_license"
	DocumentTypeSSN            DocumentType = "ssn"
)

func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case DocumentTypeDrivingLicense, DocumentTypeSSN:
		return DocumentType(s), nil
	}
	return "", fmt.Errorf("unknown document_type %q, expected driving_license or ssn", s)
}

// ApplicationType tags a financial-document intake.
type ApplicationType string

const (
	ApplicationTypeBankApplication ApplicationType = "bank_application"
	ApplicationTypeBankStatement   ApplicationType = "bank_statement"
)

func ParseApplicationType(s string) (ApplicationType, error) {
	switch ApplicationType(s) {
	case ApplicationTypeBankApplication, ApplicationTypeBankStatement:
		return ApplicationType(s), nil
	}
	return "", fmt.Errorf("unknown application_type %q, expected bank_application or bank_statement", s)
}
