package models

import "time"

type Shop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string  `gorm:"size:100;not null" json:"name"`
	Address   string  `gorm:"size:255" json:"address"`
	Phone     string  `gorm:"size:20" json:"phone"`
	Whatsapp  string  `gorm:"size:20" json:"whatsapp"`
	Instagram string  `gorm:"size:100" json:"instagram"`
	Facebook  string  `gorm:"size:100" json:"facebook"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Active    bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
