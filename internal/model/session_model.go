package model

import "time"

// Session rows back the fiber session store. Data is the encoded session
// payload; a nil ExpiresAt never expires.
type Session struct {
	ID        string     `gorm:"primaryKey;type:varchar(64)"`
	Data      []byte     `gorm:"not null"`
	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Session) TableName() string {
	return "sessions"
}
