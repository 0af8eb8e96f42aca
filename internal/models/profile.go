package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the public-facing record linked one-to-one to a User. The contact
// email is never stored here: reads join the user row so the address cannot
// drift out of sync with the credential record.
type Profile struct {
	UserID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	User        User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	FullName    string         `gorm:"size:100" json:"full_name"`
	City        string         `gorm:"size:100" json:"city"`
	Items       []Item         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Preferences datatypes.JSON `json:"preferences,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
