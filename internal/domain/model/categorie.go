package model

type Categorie struct {
	ID  int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Nom string `gorm:"type:varchar(255);not null" json:"nom"`
}
