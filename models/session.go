package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Session struct {
	gorm.Model

	Token     string    `gorm:"size:36;uniqueIndex;not null"`
	UserID    uint      `gorm:"index"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"index"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) (err error) {
	if s.Token == "" {
		s.Token = strings.ToLower(uuid.New().String())
	}
	return nil
}
