package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CommandeGormRepository struct {
	db *gorm.DB
}

// DI
func NewCommandeGormRepository(db *gorm.DB) *CommandeGormRepository {
	return &CommandeGormRepository{db: db}
}

func (r *CommandeGormRepository) FindAll(ctx context.Context) ([]model.Commande, error) {
	var commandes []model.Commande

	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("id asc").
		Find(&commandes).Error; err != nil {
		return []model.Commande{}, err
	}

	return commandes, nil
}

func (r *CommandeGormRepository) FindByID(ctx context.Context, commandeID int64) (model.Commande, error) {
	var c model.Commande

	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&c, commandeID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Commande{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Commande{}, err
	}
	return c, nil
}

// パニエ削除のカスケードで使う
func (r *CommandeGormRepository) FindByPanierID(ctx context.Context, panierID int64) ([]model.Commande, error) {
	var commandes []model.Commande

	if err := r.db.WithContext(ctx).
		Where("panier_id = ?", panierID).
		Find(&commandes).Error; err != nil {
		return []model.Commande{}, err
	}

	return commandes, nil
}

func (r *CommandeGormRepository) Create(ctx context.Context, c *model.Commande) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommandeGormRepository) Update(ctx context.Context, c model.Commande) error {
	res := r.db.WithContext(ctx).
		Model(&model.Commande{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"client_id":     c.ClientID,
			"panier_id":     c.PanierID,
			"total":         c.Total,
			"date_commande": c.DateCommande,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CommandeGormRepository) Delete(ctx context.Context, commandeID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Commande{}, commandeID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// まとめて削除（カスケード用、0件なら何もしない）
func (r *CommandeGormRepository) DeleteAll(ctx context.Context, commandes []model.Commande) error {
	if len(commandes) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(commandes))
	for _, c := range commandes {
		ids = append(ids, c.ID)
	}

	return r.db.WithContext(ctx).Delete(&model.Commande{}, ids).Error
}
