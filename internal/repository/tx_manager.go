package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Paniers() PanierRepository
	ProduitsPanier() ProduitPanierRepository
	Produits() ProduitRepository
	Commandes() CommandeRepository
	Clients() ClientRepository
	Stock() StockRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
