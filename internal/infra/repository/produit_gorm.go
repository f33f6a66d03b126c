package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProduitGormRepository struct {
	db *gorm.DB
}

// DI
func NewProduitGormRepository(db *gorm.DB) *ProduitGormRepository {
	return &ProduitGormRepository{db: db}
}

// 商品の一覧（カテゴリ付き）
func (r *ProduitGormRepository) FindAll(ctx context.Context) ([]model.Produit, error) {
	var produits []model.Produit

	if err := r.db.WithContext(ctx).
		Preload("Categorie").
		Order("id asc").
		Find(&produits).Error; err != nil {
		return []model.Produit{}, err
	}

	return produits, nil
}

// IDで商品を取得
func (r *ProduitGormRepository) FindByID(ctx context.Context, id int64) (model.Produit, error) {
	var p model.Produit

	err := r.db.WithContext(ctx).
		Preload("Categorie").
		First(&p, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Produit{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Produit{}, err
	}
	return p, nil
}

// カテゴリ別の商品一覧
func (r *ProduitGormRepository) FindByCategorieID(ctx context.Context, categorieID int64) ([]model.Produit, error) {
	var produits []model.Produit

	if err := r.db.WithContext(ctx).
		Preload("Categorie").
		Where("categorie_id = ?", categorieID).
		Order("id asc").
		Find(&produits).Error; err != nil {
		return []model.Produit{}, err
	}

	return produits, nil
}

func (r *ProduitGormRepository) Create(ctx context.Context, p model.Produit) (model.Produit, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Produit{}, err
	}
	return p, nil
}

func (r *ProduitGormRepository) Update(ctx context.Context, p model.Produit) error {
	res := r.db.WithContext(ctx).
		Model(&model.Produit{}).
		Where("id = ?", p.ID).
		Select("nom", "description", "prix", "stock", "categorie_id", "image").
		Updates(map[string]interface{}{
			"nom":          p.Nom,
			"description":  p.Description,
			"prix":         p.Prix,
			"stock":        p.Stock,
			"categorie_id": p.CategorieID,
			"image":        p.Image,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProduitGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Produit{}, id)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
