package models

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:50"`
	Email        string `gorm:"size:250;uniqueIndex;not null"`
	Password     string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	Avatar       string `gorm:"size:255"`
	RefreshToken string `gorm:"size:255"`
	Confirmed    bool   `gorm:"default:false"`
}
