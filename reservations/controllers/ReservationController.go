package controllers

import (
	"car-rental-backend/ledger"
	"car-rental-backend/utils"
)

// ReservationController wires the HTTP surface to the ledger store
// and attachment storage.
type ReservationController struct {
	Store       *ledger.Store
	FileStorage utils.FileStorage
}
