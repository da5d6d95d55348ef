package models

import "time"

type SSNRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	SSN       string    `gorm:"uniqueIndex;column:ssn" json:"ssn"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
