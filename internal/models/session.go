package models

import "time"

// Session maps an opaque token to a user. Expired rows are ignored by
// lookups but never actively purged.
type Session struct {
	Token     string    `gorm:"primaryKey;size:64" json:"token"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

const SessionLifetime = 7 * 24 * time.Hour
