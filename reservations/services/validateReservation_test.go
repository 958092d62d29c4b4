package services_test

import (
	"testing"
	"time"

	"car-rental-backend/reservations/requests"
	"car-rental-backend/reservations/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func validRequest() requests.SubmitReservationRequest {
	return requests.SubmitReservationRequest{
		FirstName:        "Amina",
		LastName:         "Abdou",
		Birthday:         "1990-05-04",
		Phone:            "+2693212345",
		Address:          "12 Route de la Corniche",
		Neighbourhood:    "Itsandra",
		Budget:           "500",
		PickupDate:       testNow.Add(24 * time.Hour).Format(time.RFC3339),
		ReturnDate:       testNow.Add(48 * time.Hour).Format(time.RFC3339),
		PickupLocation:   "Moroni Airport",
		SpecificLocation: " Terminal entrance ",
	}
}

func TestValidateSubmissionAccepted(t *testing.T) {
	req := validRequest()
	rec, msg := services.ValidateSubmission(&req, testNow)
	require.Empty(t, msg)
	require.NotNil(t, rec)

	assert.Equal(t, "Amina", rec.FirstName)
	assert.Equal(t, "Terminal entrance", rec.SpecificLocation)
	assert.Equal(t, "500", rec.Budget.String())
	assert.True(t, rec.Birthday.Equal(time.Date(1990, 5, 4, 0, 0, 0, 0, time.UTC)))
}

func TestValidateSubmissionFieldFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*requests.SubmitReservationRequest)
		wantMsg string
	}{
		{
			name:    "missing first name",
			mutate:  func(r *requests.SubmitReservationRequest) { r.FirstName = "   " },
			wantMsg: "First name is required",
		},
		{
			name:    "missing last name",
			mutate:  func(r *requests.SubmitReservationRequest) { r.LastName = "" },
			wantMsg: "Last name is required",
		},
		{
			name:    "missing phone",
			mutate:  func(r *requests.SubmitReservationRequest) { r.Phone = "" },
			wantMsg: "Phone number is required",
		},
		{
			name:    "missing address",
			mutate:  func(r *requests.SubmitReservationRequest) { r.Address = "" },
			wantMsg: "Address is required",
		},
		{
			name:    "missing neighbourhood",
			mutate:  func(r *requests.SubmitReservationRequest) { r.Neighbourhood = "" },
			wantMsg: "Neighbourhood is required",
		},
		{
			name:    "missing budget",
			mutate:  func(r *requests.SubmitReservationRequest) { r.Budget = "" },
			wantMsg: "Budget is required",
		},
		{
			name:    "unparseable budget",
			mutate:  func(r *requests.SubmitReservationRequest) { r.Budget = "five hundred" },
			wantMsg: "Invalid budget amount",
		},
		{
			name:    "missing pickup location",
			mutate:  func(r *requests.SubmitReservationRequest) { r.PickupLocation = "" },
			wantMsg: "Pickup location is required",
		},
		{
			name:    "unparseable birthday",
			mutate:  func(r *requests.SubmitReservationRequest) { r.Birthday = "04/05/1990?" },
			wantMsg: "Invalid birthday",
		},
		{
			name:    "unparseable pickup date",
			mutate:  func(r *requests.SubmitReservationRequest) { r.PickupDate = "sometime soon" },
			wantMsg: "Invalid pickup date",
		},
		{
			name:    "unparseable return date",
			mutate:  func(r *requests.SubmitReservationRequest) { r.ReturnDate = "" },
			wantMsg: "Invalid return date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			rec, msg := services.ValidateSubmission(&req, testNow)
			assert.Nil(t, rec)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestValidateSubmissionDateBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		pickup     time.Time
		returnDate time.Time
		wantMsg    string
	}{
		{
			name:       "pickup one second in the past",
			pickup:     testNow.Add(-time.Second),
			returnDate: testNow.Add(24 * time.Hour),
			wantMsg:    "Pickup date cannot be in the past",
		},
		{
			name:       "pickup one second in the future",
			pickup:     testNow.Add(time.Second),
			returnDate: testNow.Add(24 * time.Hour),
			wantMsg:    "",
		},
		{
			name:       "return equals pickup",
			pickup:     testNow.Add(24 * time.Hour),
			returnDate: testNow.Add(24 * time.Hour),
			wantMsg:    "",
		},
		{
			name:       "return one second before pickup",
			pickup:     testNow.Add(24 * time.Hour),
			returnDate: testNow.Add(24*time.Hour - time.Second),
			wantMsg:    "Return date must be after pickup date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.PickupDate = tt.pickup.Format(time.RFC3339)
			req.ReturnDate = tt.returnDate.Format(time.RFC3339)

			rec, msg := services.ValidateSubmission(&req, testNow)
			assert.Equal(t, tt.wantMsg, msg)
			if tt.wantMsg == "" {
				assert.NotNil(t, rec)
			}
		})
	}
}
