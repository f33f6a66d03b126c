package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CategorieGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategorieGormRepository(db *gorm.DB) *CategorieGormRepository {
	return &CategorieGormRepository{db: db}
}

func (r *CategorieGormRepository) FindAll(ctx context.Context) ([]model.Categorie, error) {
	var categories []model.Categorie

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&categories).Error; err != nil {
		return []model.Categorie{}, err
	}

	return categories, nil
}

func (r *CategorieGormRepository) FindByID(ctx context.Context, categorieID int64) (model.Categorie, error) {
	var c model.Categorie

	err := r.db.WithContext(ctx).First(&c, categorieID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Categorie{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Categorie{}, err
	}
	return c, nil
}

func (r *CategorieGormRepository) Create(ctx context.Context, c *model.Categorie) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategorieGormRepository) Update(ctx context.Context, c model.Categorie) error {
	res := r.db.WithContext(ctx).
		Model(&model.Categorie{}).
		Where("id = ?", c.ID).
		Update("nom", c.Nom)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CategorieGormRepository) Delete(ctx context.Context, categorieID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Categorie{}, categorieID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
