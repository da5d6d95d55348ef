package models

import "time"

type DrivingLicense struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	LicenseNumber  string    `gorm:"uniqueIndex" json:"license_number"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	Address        string    `json:"address"`
	IssueDate      time.Time `json:"issue_date"`
	ExpirationDate time.Time `json:"expiration_date"`
	Sex            string    `json:"sex"`
	CreatedAt      time.Time `json:"created_at"`
}
