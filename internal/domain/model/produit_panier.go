package model

import "time"

// カートの明細。追加1回ごとに1行（同一商品でもマージしない）。
type ProduitPanier struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PanierID  int64     `gorm:"not null;index" json:"panierId"`
	ProduitID int64     `gorm:"not null;index" json:"produitId"`
	Produit   *Produit  `gorm:"foreignKey:ProduitID" json:"produit,omitempty"`
	Quantite  int64     `gorm:"not null" json:"quantite"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
