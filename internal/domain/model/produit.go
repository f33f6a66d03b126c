package model

import "time"

// 在庫(stock)は負にならない
type Produit struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nom         string     `gorm:"type:varchar(255);not null" json:"nom"`
	Description string     `gorm:"type:text" json:"description"`
	Prix        float64    `gorm:"not null" json:"prix"`
	Stock       int64      `gorm:"not null" json:"stock"`
	CategorieID int64      `gorm:"not null;index" json:"categorieId"`
	Categorie   *Categorie `gorm:"foreignKey:CategorieID" json:"category,omitempty"`
	Image       []byte     `gorm:"type:bytea" json:"image,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
