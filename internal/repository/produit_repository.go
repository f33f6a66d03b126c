package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProduitRepository interface {
	FindAll(ctx context.Context) ([]model.Produit, error)
	FindByID(ctx context.Context, id int64) (model.Produit, error)
	FindByCategorieID(ctx context.Context, categorieID int64) ([]model.Produit, error)

	Create(ctx context.Context, p model.Produit) (model.Produit, error)
	Update(ctx context.Context, p model.Produit) error
	Delete(ctx context.Context, id int64) error
}
