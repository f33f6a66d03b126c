package repository

import (
	"context"

	"app/internal/domain/model"
)

type CommandeRepository interface {
	FindAll(ctx context.Context) ([]model.Commande, error)
	FindByID(ctx context.Context, commandeID int64) (model.Commande, error)
	// パニエ削除のカスケードで使う
	FindByPanierID(ctx context.Context, panierID int64) ([]model.Commande, error)
	Create(ctx context.Context, c *model.Commande) error
	Update(ctx context.Context, c model.Commande) error
	Delete(ctx context.Context, commandeID int64) error
	DeleteAll(ctx context.Context, commandes []model.Commande) error
}
