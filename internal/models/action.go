package models

import "time"

// Action is a single reported user action. Rows are append-only: nothing
// in the system updates or deletes them.
type Action struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Action    string    `gorm:"size:32;not null" json:"action"`
	Email     string    `gorm:"size:32;not null" json:"email"`
	Name      *string   `gorm:"size:32" json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Action) TableName() string {
	return "actions"
}
