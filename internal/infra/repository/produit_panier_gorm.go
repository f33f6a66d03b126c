package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type ProduitPanierGormRepository struct {
	db *gorm.DB
}

// DI
func NewProduitPanierGormRepository(db *gorm.DB) *ProduitPanierGormRepository {
	return &ProduitPanierGormRepository{db: db}
}

// カート明細を一覧取得（商品付き、合計再計算用）
func (r *ProduitPanierGormRepository) ListByPanierID(ctx context.Context, panierID int64) ([]model.ProduitPanier, error) {
	var items []model.ProduitPanier

	if err := r.db.WithContext(ctx).
		Preload("Produit").
		Where("panier_id = ?", panierID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.ProduitPanier{}, err
	}

	return items, nil
}

func (r *ProduitPanierGormRepository) Create(ctx context.Context, item *model.ProduitPanier) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// 同一商品の明細を全部削除（1行だけではない）
func (r *ProduitPanierGormRepository) DeleteByPanierAndProduit(ctx context.Context, panierID int64, produitID int64) error {
	return r.db.WithContext(ctx).
		Where("panier_id = ? AND produit_id = ?", panierID, produitID).
		Delete(&model.ProduitPanier{}).Error
}

func (r *ProduitPanierGormRepository) DeleteByPanierID(ctx context.Context, panierID int64) error {
	return r.db.WithContext(ctx).
		Where("panier_id = ?", panierID).
		Delete(&model.ProduitPanier{}).Error
}
