package models

import "time"

const (
	RoleFaculty = "Faculty"
	RoleFinance = "Finance"
)

// Review statuses kept by finance per faculty member. The glyphs are part of
// the wire contract with the dashboard.
const (
	StatusMatched   = "✓"
	StatusUnmatched = "✗"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:191"`
	Email        string `gorm:"size:191"`
	PasswordHash []byte
	Role         string `gorm:"size:32;index"`
	Status       string `gorm:"size:8;default:'✗'"`
	CreatedAt    time.Time
}
