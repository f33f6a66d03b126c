package model

import "time"

const (
	PanierStatutEnAttente = "en attente"
	PanierStatutValide    = "valide"
)

// Quantite はカート自体のカウンタ（明細の数量とは別物）。
// Total は明細から再計算して保存するキャッシュ値。
type Panier struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Quantite       int64           `gorm:"not null;default:0" json:"quantite"`
	Statut         string          `gorm:"type:varchar(20);not null" json:"statut"`
	Total          float64         `gorm:"not null;default:0" json:"total"`
	ProduitsPanier []ProduitPanier `gorm:"foreignKey:PanierID" json:"produitsPanier"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
