package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	paniers        repo.PanierRepository
	produitsPanier repo.ProduitPanierRepository
	produits       repo.ProduitRepository
	commandes      repo.CommandeRepository
	clients        repo.ClientRepository
	stock          repo.StockRepository
}

func (r *txReposGorm) Paniers() repo.PanierRepository               { return r.paniers }
func (r *txReposGorm) ProduitsPanier() repo.ProduitPanierRepository { return r.produitsPanier }
func (r *txReposGorm) Produits() repo.ProduitRepository             { return r.produits }
func (r *txReposGorm) Commandes() repo.CommandeRepository           { return r.commandes }
func (r *txReposGorm) Clients() repo.ClientRepository               { return r.clients }
func (r *txReposGorm) Stock() repo.StockRepository                  { return r.stock }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			paniers:        NewPanierGormRepository(tx),
			produitsPanier: NewProduitPanierGormRepository(tx),
			produits:       NewProduitGormRepository(tx),
			commandes:      NewCommandeGormRepository(tx),
			clients:        NewClientGormRepository(tx),
			stock:          NewStockGormRepository(tx),
		}
		return fn(r)
	})
}
