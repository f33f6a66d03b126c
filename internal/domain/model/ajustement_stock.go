package model

import "time"

//在庫調整の履歴

type AjustementStock struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProduitID int64     `gorm:"not null;index" json:"produitId"`
	AdminID   int64     `gorm:"not null;index" json:"adminId"`
	Delta     int64     `gorm:"not null" json:"delta"`
	Motif     string    `gorm:"type:varchar(255);not null" json:"motif"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
