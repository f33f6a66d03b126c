package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type StockGormRepository struct {
	db *gorm.DB
}

func NewStockGormRepository(db *gorm.DB) *StockGormRepository {
	return &StockGormRepository{db: db}
}

// 在庫の現在値を設定
func (r *StockGormRepository) SetStock(ctx context.Context, produitID int64, newStock int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Produit{}).
		Where("id = ?", produitID).
		Update("stock", newStock)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 在庫が足りるときだけ減らす
func (r *StockGormRepository) DecreaseStockIfEnough(ctx context.Context, produitID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Produit{}).
		Where("id = ? AND stock >= ?", produitID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し
func (r *StockGormRepository) IncreaseStock(ctx context.Context, produitID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Produit{}).
		Where("id = ?", produitID).
		Update("stock", gorm.Expr("stock + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 調整履歴作成
func (r *StockGormRepository) CreateAjustement(ctx context.Context, aj model.AjustementStock) error {
	if err := r.db.WithContext(ctx).Create(&aj).Error; err != nil {
		return err
	}
	return nil
}
