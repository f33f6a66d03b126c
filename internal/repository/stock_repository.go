package repository

import (
	"app/internal/domain/model"
	"context"
)

type StockRepository interface {
	// 在庫の現在値を設定
	SetStock(ctx context.Context, produitID int64, newStock int64) error

	// 在庫が足りるときだけ減算
	DecreaseStockIfEnough(ctx context.Context, produitID int64, qty int64) (bool, error)

	// 在庫戻し
	IncreaseStock(ctx context.Context, produitID int64, qty int64) error

	// 調整履歴作成
	CreateAjustement(ctx context.Context, ajustement model.AjustementStock) error
}
