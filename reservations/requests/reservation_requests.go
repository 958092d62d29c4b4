package requests

// SubmitReservationRequest carries the multipart form fields of a
// booking submission. File parts (passport, license) are read from
// the form directly by the controller.
type SubmitReservationRequest struct {
	FirstName        string `form:"firstName" json:"firstName"`
	LastName         string `form:"lastName" json:"lastName"`
	Birthday         string `form:"birthday" json:"birthday"`
	Phone            string `form:"phone" json:"phone"`
	Address          string `form:"address" json:"address"`
	Neighbourhood    string `form:"neighbourhood" json:"neighbourhood"`
	Budget           string `form:"budget" json:"budget"`
	PickupDate       string `form:"pickupDate" json:"pickupDate"`
	ReturnDate       string `form:"returnDate" json:"returnDate"`
	PickupLocation   string `form:"pickupLocation" json:"pickupLocation"`
	SpecificLocation string `form:"specificLocation" json:"specificLocation"`
}

// UpdateStatusRequest is the JSON body of an admin status change.
// The admin key may ride along in the same body.
type UpdateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Key    string `json:"key"`
}
