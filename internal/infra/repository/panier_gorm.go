package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PanierGormRepository struct {
	db *gorm.DB
}

// DI
func NewPanierGormRepository(db *gorm.DB) *PanierGormRepository {
	return &PanierGormRepository{db: db}
}

func (r *PanierGormRepository) FindAll(ctx context.Context) ([]model.Panier, error) {
	var paniers []model.Panier

	if err := r.db.WithContext(ctx).
		Preload("ProduitsPanier").
		Preload("ProduitsPanier.Produit").
		Order("id asc").
		Find(&paniers).Error; err != nil {
		return []model.Panier{}, err
	}

	return paniers, nil
}

// 明細と商品をプリロードして取得
func (r *PanierGormRepository) FindByID(ctx context.Context, panierID int64) (model.Panier, error) {
	var p model.Panier

	err := r.db.WithContext(ctx).
		Preload("ProduitsPanier").
		Preload("ProduitsPanier.Produit").
		First(&p, panierID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Panier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Panier{}, err
	}
	return p, nil
}

func (r *PanierGormRepository) Create(ctx context.Context, p *model.Panier) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// quantite / statut を上書き
func (r *PanierGormRepository) Update(ctx context.Context, panierID int64, quantite int64, statut string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Panier{}).
		Where("id = ?", panierID).
		Updates(map[string]interface{}{
			"quantite": quantite,
			"statut":   statut,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 合計キャッシュを保存
func (r *PanierGormRepository) UpdateTotal(ctx context.Context, panierID int64, total float64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Panier{}).
		Where("id = ?", panierID).
		Update("total", total)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PanierGormRepository) Delete(ctx context.Context, panierID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Panier{}, panierID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
