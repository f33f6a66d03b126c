package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockProduitRepo struct {
	mock.Mock
}

func (m *mockProduitRepo) FindAll(ctx context.Context) ([]model.Produit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Produit), args.Error(1)
}

func (m *mockProduitRepo) FindByID(ctx context.Context, id int64) (model.Produit, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Produit), args.Error(1)
}

func (m *mockProduitRepo) FindByCategorieID(ctx context.Context, categorieID int64) ([]model.Produit, error) {
	args := m.Called(ctx, categorieID)
	return args.Get(0).([]model.Produit), args.Error(1)
}

func (m *mockProduitRepo) Create(ctx context.Context, p model.Produit) (model.Produit, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.Produit), args.Error(1)
}

func (m *mockProduitRepo) Update(ctx context.Context, p model.Produit) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProduitRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategorieRepo struct {
	mock.Mock
}

func (m *mockCategorieRepo) FindAll(ctx context.Context) ([]model.Categorie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Categorie), args.Error(1)
}

func (m *mockCategorieRepo) FindByID(ctx context.Context, categorieID int64) (model.Categorie, error) {
	args := m.Called(ctx, categorieID)
	return args.Get(0).(model.Categorie), args.Error(1)
}

func (m *mockCategorieRepo) Create(ctx context.Context, c *model.Categorie) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategorieRepo) Update(ctx context.Context, c model.Categorie) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategorieRepo) Delete(ctx context.Context, categorieID int64) error {
	return m.Called(ctx, categorieID).Error(0)
}

type mockPanierRepo struct {
	mock.Mock
}

func (m *mockPanierRepo) FindAll(ctx context.Context) ([]model.Panier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Panier), args.Error(1)
}

func (m *mockPanierRepo) FindByID(ctx context.Context, panierID int64) (model.Panier, error) {
	args := m.Called(ctx, panierID)
	return args.Get(0).(model.Panier), args.Error(1)
}

func (m *mockPanierRepo) Create(ctx context.Context, p *model.Panier) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPanierRepo) Update(ctx context.Context, panierID int64, quantite int64, statut string) error {
	return m.Called(ctx, panierID, quantite, statut).Error(0)
}

func (m *mockPanierRepo) UpdateTotal(ctx context.Context, panierID int64, total float64) error {
	return m.Called(ctx, panierID, total).Error(0)
}

func (m *mockPanierRepo) Delete(ctx context.Context, panierID int64) error {
	return m.Called(ctx, panierID).Error(0)
}

type mockProduitPanierRepo struct {
	mock.Mock
}

func (m *mockProduitPanierRepo) ListByPanierID(ctx context.Context, panierID int64) ([]model.ProduitPanier, error) {
	args := m.Called(ctx, panierID)
	return args.Get(0).([]model.ProduitPanier), args.Error(1)
}

func (m *mockProduitPanierRepo) Create(ctx context.Context, item *model.ProduitPanier) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockProduitPanierRepo) DeleteByPanierAndProduit(ctx context.Context, panierID int64, produitID int64) error {
	return m.Called(ctx, panierID, produitID).Error(0)
}

func (m *mockProduitPanierRepo) DeleteByPanierID(ctx context.Context, panierID int64) error {
	return m.Called(ctx, panierID).Error(0)
}

type mockCommandeRepo struct {
	mock.Mock
}

func (m *mockCommandeRepo) FindAll(ctx context.Context) ([]model.Commande, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Commande), args.Error(1)
}

func (m *mockCommandeRepo) FindByID(ctx context.Context, commandeID int64) (model.Commande, error) {
	args := m.Called(ctx, commandeID)
	return args.Get(0).(model.Commande), args.Error(1)
}

func (m *mockCommandeRepo) FindByPanierID(ctx context.Context, panierID int64) ([]model.Commande, error) {
	args := m.Called(ctx, panierID)
	return args.Get(0).([]model.Commande), args.Error(1)
}

func (m *mockCommandeRepo) Create(ctx context.Context, c *model.Commande) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommandeRepo) Update(ctx context.Context, c model.Commande) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommandeRepo) Delete(ctx context.Context, commandeID int64) error {
	return m.Called(ctx, commandeID).Error(0)
}

func (m *mockCommandeRepo) DeleteAll(ctx context.Context, commandes []model.Commande) error {
	return m.Called(ctx, commandes).Error(0)
}

type mockClientRepo struct {
	mock.Mock
}

func (m *mockClientRepo) FindAll(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *mockClientRepo) FindByID(ctx context.Context, clientID int64) (model.Client, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(model.Client), args.Error(1)
}

func (m *mockClientRepo) FindByEmail(ctx context.Context, email string) (model.Client, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Client), args.Error(1)
}

func (m *mockClientRepo) Create(ctx context.Context, c *model.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockClientRepo) Update(ctx context.Context, c model.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockClientRepo) Delete(ctx context.Context, clientID int64) error {
	return m.Called(ctx, clientID).Error(0)
}

type mockStockRepo struct {
	mock.Mock
}

func (m *mockStockRepo) SetStock(ctx context.Context, produitID int64, newStock int64) error {
	return m.Called(ctx, produitID, newStock).Error(0)
}

func (m *mockStockRepo) DecreaseStockIfEnough(ctx context.Context, produitID int64, qty int64) (bool, error) {
	args := m.Called(ctx, produitID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *mockStockRepo) IncreaseStock(ctx context.Context, produitID int64, qty int64) error {
	return m.Called(ctx, produitID, qty).Error(0)
}

func (m *mockStockRepo) CreateAjustement(ctx context.Context, ajustement model.AjustementStock) error {
	return m.Called(ctx, ajustement).Error(0)
}

// stubTxRepos はモック一式をTxReposとして束ねる。
type stubTxRepos struct {
	paniers        *mockPanierRepo
	produitsPanier *mockProduitPanierRepo
	produits       *mockProduitRepo
	commandes      *mockCommandeRepo
	clients        *mockClientRepo
	stock          *mockStockRepo
}

func newStubTxRepos() *stubTxRepos {
	return &stubTxRepos{
		paniers:        new(mockPanierRepo),
		produitsPanier: new(mockProduitPanierRepo),
		produits:       new(mockProduitRepo),
		commandes:      new(mockCommandeRepo),
		clients:        new(mockClientRepo),
		stock:          new(mockStockRepo),
	}
}

func (s *stubTxRepos) Paniers() repo.PanierRepository               { return s.paniers }
func (s *stubTxRepos) ProduitsPanier() repo.ProduitPanierRepository { return s.produitsPanier }
func (s *stubTxRepos) Produits() repo.ProduitRepository             { return s.produits }
func (s *stubTxRepos) Commandes() repo.CommandeRepository           { return s.commandes }
func (s *stubTxRepos) Clients() repo.ClientRepository               { return s.clients }
func (s *stubTxRepos) Stock() repo.StockRepository                  { return s.stock }

// stubTxManager はTxなしでfnを直接呼ぶ。
type stubTxManager struct {
	repos repo.TxRepos
}

func (s *stubTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(s.repos)
}
