package repository

import (
	"context"

	"app/internal/domain/model"
)

type CategorieRepository interface {
	FindAll(ctx context.Context) ([]model.Categorie, error)
	FindByID(ctx context.Context, categorieID int64) (model.Categorie, error)
	Create(ctx context.Context, c *model.Categorie) error
	Update(ctx context.Context, c model.Categorie) error
	Delete(ctx context.Context, categorieID int64) error
}
