package models

type KYC struct {
	ID        string `gorm:"primaryKey" json:"id"`
	SSN       string `gorm:"uniqueIndex;column:ssn" json:"ssn"`
	ZipCode   string `json:"zip_code"`
	AddrState string `json:"addr_state"`
}

func (KYC) TableName() string {
	return "kyc"
}
