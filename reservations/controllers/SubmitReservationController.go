package controllers

import (
	"errors"
	"mime/multipart"
	"time"

	"car-rental-backend/config"
	"car-rental-backend/ledger"
	"car-rental-backend/reservations/requests"
	"car-rental-backend/reservations/services"
	"car-rental-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const maxAttachmentSize = 5 * 1024 * 1024

var allowedAttachmentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
}

// SubmitReservationController accepts a multipart booking submission,
// stores both identity documents, and appends the reservation to the
// ledger.
func (rc *ReservationController) SubmitReservationController(c *fiber.Ctx) error {
	passport, passportErr := c.FormFile("passport")
	license, licenseErr := c.FormFile("license")
	if passportErr != nil || licenseErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Both passport and license files are required",
		})
	}

	for _, attachment := range []*multipart.FileHeader{passport, license} {
		if msg := checkAttachment(attachment); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": msg,
			})
		}
	}

	req := new(requests.SubmitReservationRequest)
	if err := c.BodyParser(req); err != nil {
		config.Logger.Warn("Failed to parse submission form", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid form data",
		})
	}

	rec, msg := services.ValidateSubmission(req, time.Now().UTC())
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": msg,
		})
	}

	passportName, err := rc.storeAttachment(passport)
	if err != nil {
		config.Logger.Error("Failed to store passport file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error processing your request",
		})
	}
	licenseName, err := rc.storeAttachment(license)
	if err != nil {
		rc.removeAttachments(passportName)
		config.Logger.Error("Failed to store license file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error processing your request",
		})
	}
	rec.PassportFile = passportName
	rec.LicenseFile = licenseName

	id, err := rc.Store.Append(*rec)
	if err != nil {
		// The attachments belong to a record that was never created.
		rc.removeAttachments(passportName, licenseName)
		config.Logger.Error("Failed to append reservation", zap.Error(err))
		if errors.Is(err, ledger.ErrLockTimeout) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"message": "Server is busy, please try again",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error processing your request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"message":       "Reservation submitted successfully",
		"reservationId": id,
	})
}

func checkAttachment(header *multipart.FileHeader) string {
	if header.Size > maxAttachmentSize {
		return "Files must be 5MB or smaller"
	}
	if !allowedAttachmentTypes[header.Header.Get("Content-Type")] {
		return "Invalid file type. Only PDF and JPEG files are allowed."
	}
	return ""
}

func (rc *ReservationController) storeAttachment(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	storedName := utils.UniqueFileName(header.Filename)
	if _, err := rc.FileStorage.UploadFile(file, storedName); err != nil {
		return "", err
	}
	return storedName, nil
}

func (rc *ReservationController) removeAttachments(names ...string) {
	for _, name := range names {
		if name == "" {
			continue
		}
		if err := rc.FileStorage.DeleteFile(name); err != nil {
			config.Logger.Warn("Failed to remove orphaned attachment",
				zap.String("file", name),
				zap.Error(err),
			)
		}
	}
}
