package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"` // bcrypt hash
	FirstName string    `gorm:"size:100"`
	LastName  string    `gorm:"size:100"`
	Role      string    `gorm:"size:30;not null;default:'MANAGER'"`
	// CustomPermissions is a JSON array of extra permission strings granted on
	// top of the role's base set.
	CustomPermissions string `gorm:"type:text;default:'[]'"`
	// Permissions is a denormalized snapshot of the effective set, rebuilt on
	// every role/customPermissions write. Query convenience only; the
	// authorization path always re-derives the set from the catalog.
	Permissions string `gorm:"type:text;default:'[]'"`
	IsActive    bool   `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}

// CustomPermissionList decodes the stored JSON grant list. A corrupt column
// reads as no extra grants rather than a failed request.
func (u *User) CustomPermissionList() []string {
	var perms []string
	if err := json.Unmarshal([]byte(u.CustomPermissions), &perms); err != nil {
		return nil
	}
	return perms
}
