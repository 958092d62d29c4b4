package services

import (
	"strings"
	"time"

	"car-rental-backend/ledger/models"
	"car-rental-backend/reservations/requests"

	"github.com/shopspring/decimal"
)

var submissionDateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ValidateSubmission normalizes and checks a booking submission. It
// returns the populated reservation and an empty message when the
// input is valid, or a message naming the first failing field. The
// attachment filenames are filled in later by the controller; `now`
// is the reference point for the pickup-date check.
func ValidateSubmission(req *requests.SubmitReservationRequest, now time.Time) (*models.Reservation, string) {
	rec := &models.Reservation{
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Phone:            strings.TrimSpace(req.Phone),
		Address:          strings.TrimSpace(req.Address),
		Neighbourhood:    strings.TrimSpace(req.Neighbourhood),
		PickupLocation:   strings.TrimSpace(req.PickupLocation),
		SpecificLocation: strings.TrimSpace(req.SpecificLocation),
	}

	if rec.FirstName == "" {
		return nil, "First name is required"
	}
	if rec.LastName == "" {
		return nil, "Last name is required"
	}
	if rec.Phone == "" {
		return nil, "Phone number is required"
	}
	if rec.Address == "" {
		return nil, "Address is required"
	}
	if rec.Neighbourhood == "" {
		return nil, "Neighbourhood is required"
	}

	budgetText := strings.TrimSpace(req.Budget)
	if budgetText == "" {
		return nil, "Budget is required"
	}
	budget, err := decimal.NewFromString(budgetText)
	if err != nil {
		return nil, "Invalid budget amount"
	}
	rec.Budget = budget

	if rec.PickupLocation == "" {
		return nil, "Pickup location is required"
	}

	birthday, ok := parseSubmittedDate(req.Birthday)
	if !ok {
		return nil, "Invalid birthday"
	}
	rec.Birthday = birthday

	pickup, ok := parseSubmittedDate(req.PickupDate)
	if !ok {
		return nil, "Invalid pickup date"
	}
	rec.PickupDate = pickup

	ret, ok := parseSubmittedDate(req.ReturnDate)
	if !ok {
		return nil, "Invalid return date"
	}
	rec.ReturnDate = ret

	if pickup.Before(now) {
		return nil, "Pickup date cannot be in the past"
	}
	if ret.Before(pickup) {
		return nil, "Return date must be after pickup date"
	}

	return rec, ""
}

// parseSubmittedDate accepts the formats browsers actually send for
// date and datetime-local inputs, normalized to UTC.
func parseSubmittedDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, format := range submissionDateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
