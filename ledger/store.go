package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"car-rental-backend/ledger/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("reservation not found")
	// ErrWriteFailed is returned once the bounded retries around a
	// guarded write are exhausted.
	ErrWriteFailed = errors.New("failed to update reservation ledger")
)

const writeAttempts = 3

// Store owns all access to the ledger file. Writers serialize through
// the FIFO lock and replace the file atomically; readers skip the
// lock and only ever observe a complete previous or complete new
// document.
type Store struct {
	path    string
	lock    *FileLock
	logger  *zap.Logger
	timeout time.Duration
	backoff time.Duration
}

func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{
		path:    path,
		lock:    NewFileLock(),
		logger:  logger,
		timeout: DefaultLockTimeout,
		backoff: time.Second,
	}
}

// Path returns the ledger file location on disk.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a ledger document has been written yet.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Append adds one reservation to the ledger under the write lock,
// assigning its id and submission timestamp. Returns the assigned id.
func (s *Store) Append(rec models.Reservation) (string, error) {
	rec.ID = uuid.NewString()
	rec.SubmissionDate = time.Now().UTC()

	err := s.lock.WithLock(s.timeout, func() error {
		return s.retryWrite(func(records []models.Reservation) ([]models.Reservation, error) {
			return append(records, rec), nil
		})
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Reservation appended to ledger",
		zap.String("reservation_id", rec.ID),
		zap.String("path", s.path),
	)
	return rec.ID, nil
}

// UpdateStatus locates a record by id (case-insensitive) and rewrites
// the ledger with its status changed. Goes through the same lock and
// atomic replace as Append so concurrent updates are never lost.
func (s *Store) UpdateStatus(id, status string) error {
	err := s.lock.WithLock(s.timeout, func() error {
		return s.retryWrite(func(records []models.Reservation) ([]models.Reservation, error) {
			for i := range records {
				if strings.EqualFold(records[i].ID, id) {
					records[i].Status = status
					return records, nil
				}
			}
			return nil, ErrNotFound
		})
	})
	if err != nil {
		return err
	}

	s.logger.Info("Reservation status updated",
		zap.String("reservation_id", id),
		zap.String("status", status),
	)
	return nil
}

// List returns the full record sequence without taking the write
// lock. An absent or unreadable ledger yields an empty sequence; the
// atomic replace guarantees a racing reader still sees a complete
// document.
func (s *Store) List() ([]models.Reservation, error) {
	records, err := s.readAll()
	if err != nil {
		s.logger.Error("Ledger unreadable, treating as empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return []models.Reservation{}, nil
	}
	if records == nil {
		records = []models.Reservation{}
	}
	return records, nil
}

// retryWrite runs one read-modify-write cycle against the ledger,
// retrying transient failures with linear backoff. Must be called
// with the lock held. ErrNotFound aborts immediately, everything else
// surfaces as ErrWriteFailed after the attempts are spent.
func (s *Store) retryWrite(mutate func([]models.Reservation) ([]models.Reservation, error)) error {
	var lastErr error
	for attempt := 1; attempt <= writeAttempts; attempt++ {
		lastErr = s.writeCycle(mutate)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, ErrNotFound) {
			return lastErr
		}
		s.logger.Warn("Ledger write attempt failed",
			zap.Int("attempt", attempt),
			zap.String("path", s.path),
			zap.Error(lastErr),
		)
		if attempt < writeAttempts {
			time.Sleep(time.Duration(attempt) * s.backoff)
		}
	}
	return fmt.Errorf("%w after %d attempts: %v", ErrWriteFailed, writeAttempts, lastErr)
}

func (s *Store) writeCycle(mutate func([]models.Reservation) ([]models.Reservation, error)) error {
	records, err := s.readAll()
	if err != nil {
		// Refusing to proceed here keeps a corrupt-but-present ledger
		// from being silently replaced with only the new rows.
		return err
	}

	records, err = mutate(records)
	if err != nil {
		return err
	}

	f, err := encodeWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp-%d", s.path, time.Now().UnixNano())
	if err := f.SaveAs(tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write ledger temp file: %w", err)
	}

	// Rename is atomic on the same filesystem, so a crash between the
	// temp write and here leaves the previous ledger intact.
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}

func (s *Store) readAll() ([]models.Reservation, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat ledger file: %w", err)
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file: %w", err)
	}
	defer f.Close()

	return decodeWorkbook(f)
}
