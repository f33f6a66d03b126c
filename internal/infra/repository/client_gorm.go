package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ClientGormRepository struct {
	db *gorm.DB
}

// DI
func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) FindAll(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&clients).Error; err != nil {
		return []model.Client{}, err
	}

	return clients, nil
}

func (r *ClientGormRepository) FindByID(ctx context.Context, clientID int64) (model.Client, error) {
	var c model.Client

	err := r.db.WithContext(ctx).First(&c, clientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Client{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Client{}, err
	}
	return c, nil
}

func (r *ClientGormRepository) FindByEmail(ctx context.Context, email string) (model.Client, error) {
	var c model.Client

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Client{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Client{}, err
	}
	return c, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientGormRepository) Update(ctx context.Context, c model.Client) error {
	res := r.db.WithContext(ctx).
		Model(&model.Client{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"nom":       c.Nom,
			"prenom":    c.Prenom,
			"email":     c.Email,
			"telephone": c.Telephone,
			"adresse":   c.Adresse,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ClientGormRepository) Delete(ctx context.Context, clientID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Client{}, clientID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
