package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/samuraihq/samurai-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrActionRequired = errors.New("action is required")
	ErrEmailRequired  = errors.New("email is required")
	ErrFieldTooLong   = errors.New("field exceeds 32 characters")
)

// Column width shared by action, email and name.
const maxFieldLen = 32

// ActionService is the append-only store of reported actions.
type ActionService struct {
	db *gorm.DB
}

func NewActionService(db *gorm.DB) *ActionService {
	return &ActionService{db: db}
}

// Create persists a new action row in its own transaction and returns it
// with the generated ID and timestamps filled in.
func (s *ActionService) Create(action, email string, name *string) (*models.Action, error) {
	if action == "" {
		return nil, ErrActionRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(action) > maxFieldLen || len(email) > maxFieldLen {
		return nil, ErrFieldTooLong
	}
	if name != nil && len(*name) > maxFieldLen {
		return nil, ErrFieldTooLong
	}

	row := models.Action{
		Action: action,
		Email:  email,
		Name:   name,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create action: %w", err)
	}

	slog.Info("action recorded", "id", row.ID, "action", action, "email", email)
	return &row, nil
}

// List returns every recorded action. No pagination: the table is an
// event log read only by operators.
func (s *ActionService) List() ([]models.Action, error) {
	var rows []models.Action
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	return rows, nil
}

// ListByEmail returns actions whose email matches exactly (case-sensitive).
func (s *ActionService) ListByEmail(email string) ([]models.Action, error) {
	var rows []models.Action
	if err := s.db.Where("email = ?", email).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list actions for email: %w", err)
	}
	return rows, nil
}
