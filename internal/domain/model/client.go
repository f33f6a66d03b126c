package model

import "time"

type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

type Client struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Nom          string    `gorm:"type:varchar(255);not null" json:"nom"`
	Prenom       string    `gorm:"type:varchar(255)" json:"prenom"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Telephone    string    `gorm:"type:varchar(30)" json:"telephone"`
	Adresse      string    `gorm:"type:varchar(255)" json:"adresse"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'CLIENT'" json:"role"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
