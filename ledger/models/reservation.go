package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation is one booking submission and its current status.
// The xlsx ledger is the authoritative owner of reservation state;
// these values only live in memory for the duration of a request.
type Reservation struct {
	ID               string          `json:"id"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Birthday         time.Time       `json:"birthday"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	Neighbourhood    string          `json:"neighbourhood"`
	Budget           decimal.Decimal `json:"budget"`
	PickupDate       time.Time       `json:"pickupDate"`
	ReturnDate       time.Time       `json:"returnDate"`
	PickupLocation   string          `json:"pickupLocation"`
	SpecificLocation string          `json:"specificLocation"`
	PassportFile     string          `json:"passportFile"`
	LicenseFile      string          `json:"licenseFile"`
	SubmissionDate   time.Time       `json:"submissionDate"`
	Status           string          `json:"status,omitempty"`
}
