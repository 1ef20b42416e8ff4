// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the access level assigned to a user account.
type Role string

const (
	// RoleAdmin has full administrative access.
	RoleAdmin Role = "admin"
	// RoleModerator can moderate other users' content.
	RoleModerator Role = "moder"
	// RoleUser is the default role for new accounts.
	RoleUser Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}

// User represents a registered Mooduck account.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"size:128;unique;not null" json:"username"`
	Email     string         `gorm:"size:512;unique;not null" json:"email"`
	Password  string         `gorm:"size:128;not null" json:"-"`
	Name      *string        `gorm:"size:512;unique" json:"name,omitempty"`
	Role      Role           `gorm:"type:varchar(10);default:'user'" json:"role"`
	Bio       string         `gorm:"type:text" json:"bio"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Moodboards []Moodboard `gorm:"foreignKey:AuthorID" json:"moodboards,omitempty"`
	Items      []Item      `gorm:"foreignKey:AuthorID" json:"items,omitempty"`
}

// Subscription records that Subscriber follows Target.
// The pair must be unique; a second subscribe attempt is a conflict.
type Subscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubscriberID uint      `gorm:"not null;uniqueIndex:idx_subscriber_target" json:"subscriber_id"`
	TargetID     uint      `gorm:"not null;uniqueIndex:idx_subscriber_target" json:"target_id"`
	CreatedAt    time.Time `json:"created_at"`

	Subscriber User `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"subscriber,omitempty"`
	Target     User `gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE" json:"target,omitempty"`
}

// TableName specifies the table name for GORM
func (Subscription) TableName() string {
	return "subscriptions"
}
