package model

import "time"

// PanierID は値として保持するだけ（パニエ削除後も残り得る）。
// Total は作成時点のパニエ合計のスナップショット。
type Commande struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID     int64      `gorm:"not null;index" json:"clientId"`
	Client       *Client    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	PanierID     int64      `gorm:"not null;index" json:"panierId"`
	Total        float64    `gorm:"not null" json:"total"`
	DateCommande *time.Time `json:"dateCommande"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
