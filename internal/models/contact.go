package models

import (
	"time"
)

type Contact struct {
	ID        uint       `gorm:"primaryKey"`
	Firstname string     `gorm:"size:50;index;not null"`
	Lastname  string     `gorm:"size:50;index"`
	Email     string     `gorm:"size:100;uniqueIndex"`
	Phone     string     `gorm:"size:20;uniqueIndex;not null;index:uniq_phone_user,unique"`
	Birthday  *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint `gorm:"not null;index:uniq_phone_user,unique"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
