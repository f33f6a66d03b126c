package repository

import (
	"context"

	"app/internal/domain/model"
)

type PanierRepository interface {
	FindAll(ctx context.Context) ([]model.Panier, error)
	// 明細（と商品）をプリロードして返す
	FindByID(ctx context.Context, panierID int64) (model.Panier, error)
	Create(ctx context.Context, p *model.Panier) error
	// quantite / statut を上書き
	Update(ctx context.Context, panierID int64, quantite int64, statut string) error
	// 再計算済みの合計を保存
	UpdateTotal(ctx context.Context, panierID int64, total float64) error
	Delete(ctx context.Context, panierID int64) error
}
