// Package seed installs sample master records on first boot so lookup
// endpoints have data before any real intake has run.
package seed

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shazam37/ai-underwriting/internal/models"
)

// Run is idempotent: it does nothing when any master table already has
// rows.
func Run(db *gorm.DB) error {
	var count int64
	for _, model := range []interface{}{
		&models.DrivingLicense{}, &models.SSNRecord{}, &models.Bureau{}, &models.KYC{},
	} {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			return err
		}
		count += n
	}
	if count > 0 {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		licenses := []models.DrivingLicense{
			{
				ID:             uuid.NewString(),
				LicenseNumber:  "123456789",
				FirstName:      "John",
				LastName:       "Doe",
				DateOfBirth:    time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
				Address:        "123 Main St, Anytown, CA 90210",
				IssueDate:      time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
				ExpirationDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
				Sex:            "M",
			},
			{
				ID:             uuid.NewString(),
				LicenseNumber:  "B9876543",
				FirstName:      "Jane",
				LastName:       "Smith",
				DateOfBirth:    time.Date(1985, 8, 22, 0, 0, 0, 0, time.UTC),
				Address:        "456 Oak Ave, Springfield, NY 12345",
				IssueDate:      time.Date(2019, 3, 10, 0, 0, 0, 0, time.UTC),
				ExpirationDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Sex:            "F",
			},
		}
		if err := tx.Create(&licenses).Error; err != nil {
			return err
		}

		ssns := []models.SSNRecord{
			{
				ID:        uuid.NewString(),
				SSN:       "854659582",
				FirstName: "John",
				LastName:  "Doe",
				Address:   "123 Main St, Anytown, CA 90210",
			},
			{
				ID:        uuid.NewString(),
				SSN:       "987-65-4321",
				FirstName: "Jane",
				LastName:  "Smith",
				Address:   "456 Oak Ave, Springfield, NY 12345",
			},
		}
		if err := tx.Create(&ssns).Error; err != nil {
			return err
		}

		bureau := models.Bureau{
			ID:                     uuid.NewString(),
			SSN:                    "854659582",
			DTI:                    "15.25",
			Delinq2Yrs:             intPtr(0),
			EarliestCrLine:         "2010-01-01",
			FicoRangeLow:           intPtr(740),
			FicoRangeHigh:          intPtr(744),
			InqLast6Mths:           intPtr(1),
			OpenAcc:                intPtr(12),
			PubRec:                 intPtr(0),
			RevolBal:               "8500.00",
			RevolUtil:              "22.5",
			TotalAcc:               intPtr(18),
			InitialListStatus:      "f",
			OutPrncp:               "0.00",
			OutPrncpInv:            "0.00",
			TotalPymnt:             "15000.00",
			TotalPymntInv:          "15000.00",
			TotalRecPrncp:          "12000.00",
			TotalRecInt:            "3000.00",
			TotalRecLateFee:        "0.00",
			Recoveries:             "0.00",
			CollectionRecoveryFee:  "0.00",
			LastPymntD:             "2024-01-15",
			LastPymntAmnt:          "450.00",
			NextPymntD:             "2024-02-15",
			LastCreditPullD:        "2024-01-10",
			LastFicoRangeHigh:      intPtr(750),
			LastFicoRangeLow:       intPtr(746),
			Collections12MthsExMed: intPtr(0),
			PolicyCode:             "1",
			ApplicationType:        "Individual",
			AccNowDelinq:           intPtr(0),
			TotCollAmt:             "0.00",
			TotCurBal:              "85000.00",
			OpenAcc6M:              intPtr(0),
			OpenActIl:              intPtr(2),
			OpenIl12M:              intPtr(0),
			OpenIl24M:              intPtr(1),
			MthsSinceRcntIl:        intPtr(8),
			TotalBalIl:             "25000.00",
			IlUtil:                 "65.5",
			OpenRv12M:              intPtr(1),
			OpenRv24M:              intPtr(2),
			MaxBalBc:               "12000.00",
			AllUtil:                "22.5",
			TotalRevHiLim:          "38000.00",
			InqFi:                  intPtr(1),
			TotalCuTl:              intPtr(2),
			InqLast12M:             intPtr(3),
			AccOpenPast24Mths:      intPtr(2),
			AvgCurBal:              "7083.33",
			BcOpenToBuy:            "29500.00",
			BcUtil:                 "22.5",
			ChargeoffWithin12Mths:  intPtr(0),
			DelinqAmnt:             "0.00",
			MoSinOldIlAcct:         intPtr(168),
			MoSinOldRevTlOp:        intPtr(95),
			MoSinRcntRevTlOp:       intPtr(8),
			MoSinRcntTl:            intPtr(8),
			MortAcc:                intPtr(1),
			MthsSinceRecentBc:      intPtr(8),
			MthsSinceRecentInq:     intPtr(2),
			NumAcctsEver120Pd:      intPtr(0),
			NumActvBcTl:            intPtr(8),
			NumActvRevTl:           intPtr(8),
			NumBcSats:              intPtr(8),
			NumBcTl:                intPtr(12),
			NumIlTl:                intPtr(6),
			NumOpRevTl:             intPtr(8),
			NumRevAccts:            intPtr(12),
			NumRevTlBalGt0:         intPtr(8),
			NumSats:                intPtr(16),
			NumTl120Dpd2M:          intPtr(0),
			NumTl30Dpd:             intPtr(0),
			NumTl90GDpd24M:         intPtr(0),
			NumTlOpPast12M:         intPtr(2),
			PctTlNvrDlq:            "100.0",
			PercentBcGt75:          "0.0",
			PubRecBankruptcies:     intPtr(0),
			TaxLiens:               intPtr(0),
			TotHiCredLim:           "185000.00",
			TotalBalExMort:         "33500.00",
			TotalBcLimit:           "38000.00",
			TotalIlHighCreditLimit: "50000.00",
			HardshipFlag:           "N",
			DebtSettlementFlag:     "N",
		}
		if err := tx.Create(&bureau).Error; err != nil {
			return err
		}

		kyc := models.KYC{
			ID:        uuid.NewString(),
			SSN:       "854659582",
			ZipCode:   "90210",
			AddrState: "123 Main St, Anytown, CA",
		}
		return tx.Create(&kyc).Error
	})
	if err != nil {
		return err
	}

	log.Println("sample data initialized successfully")
	return nil
}

func intPtr(v int) *int {
	return &v
}
