package repository

import (
	"context"

	"app/internal/domain/model"
)

type ProduitPanierRepository interface {
	// Produitをプリロードして返す（合計の再計算に使う）
	ListByPanierID(ctx context.Context, panierID int64) ([]model.ProduitPanier, error)
	Create(ctx context.Context, item *model.ProduitPanier) error
	// 同一商品の明細を全部削除
	DeleteByPanierAndProduit(ctx context.Context, panierID int64, produitID int64) error
	DeleteByPanierID(ctx context.Context, panierID int64) error
}
