package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	produitA := &model.Produit{ID: 1, Nom: "clavier", Prix: 10.0}
	produitB := &model.Produit{ID: 2, Nom: "souris", Prix: 5.0}

	t.Run("empty cart is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ComputeTotal(nil))
		assert.Equal(t, 0.0, ComputeTotal([]model.ProduitPanier{}))
	})

	t.Run("sums quantite times prix per line", func(t *testing.T) {
		items := []model.ProduitPanier{
			{ProduitID: 1, Produit: produitA, Quantite: 2},
			{ProduitID: 2, Produit: produitB, Quantite: 1},
		}
		assert.Equal(t, 25.0, ComputeTotal(items))
	})

	t.Run("removing all lines of a product drops its contribution", func(t *testing.T) {
		items := []model.ProduitPanier{
			{ProduitID: 2, Produit: produitB, Quantite: 1},
		}
		assert.Equal(t, 5.0, ComputeTotal(items))
	})

	t.Run("line without preloaded produit is skipped", func(t *testing.T) {
		items := []model.ProduitPanier{
			{ProduitID: 9, Produit: nil, Quantite: 3},
			{ProduitID: 2, Produit: produitB, Quantite: 2},
		}
		assert.Equal(t, 10.0, ComputeTotal(items))
	})
}

func TestPanierUsecase_Create_DefaultStatut(t *testing.T) {
	ctx := context.Background()
	panierRepo := new(mockPanierRepo)

	panierRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Panier) bool {
		return p.Statut == model.PanierStatutEnAttente && p.Total == 0
	})).Return(nil)

	uc := NewPanierUsecase(&stubTxManager{repos: newStubTxRepos()}, panierRepo)

	out, err := uc.Create(ctx, CreatePanierInput{})
	require.NoError(t, err)
	assert.Equal(t, model.PanierStatutEnAttente, out.Statut)
	panierRepo.AssertExpectations(t)
}

func TestPanierUsecase_AddProduit(t *testing.T) {
	ctx := context.Background()

	produit := model.Produit{ID: 7, Nom: "clavier", Prix: 10.0, Stock: 5}

	t.Run("success decrements stock, creates line and recomputes total", func(t *testing.T) {
		r := newStubTxRepos()
		r.paniers.On("FindByID", ctx, int64(3)).Return(model.Panier{ID: 3}, nil)
		r.produits.On("FindByID", ctx, int64(7)).Return(produit, nil)
		r.stock.On("DecreaseStockIfEnough", ctx, int64(7), int64(2)).Return(true, nil)
		r.produitsPanier.On("Create", ctx, mock.MatchedBy(func(it *model.ProduitPanier) bool {
			return it.PanierID == 3 && it.ProduitID == 7 && it.Quantite == 2
		})).Return(nil)
		r.produitsPanier.On("ListByPanierID", ctx, int64(3)).Return([]model.ProduitPanier{
			{PanierID: 3, ProduitID: 7, Produit: &produit, Quantite: 2},
		}, nil)
		r.paniers.On("UpdateTotal", ctx, int64(3), 20.0).Return(nil)

		uc := NewPanierUsecase(&stubTxManager{repos: r}, new(mockPanierRepo))

		total, err := uc.AddProduit(ctx, 3, 7, AddProduitInput{Quantite: 2})
		require.NoError(t, err)
		assert.Equal(t, 20.0, total)
		r.paniers.AssertExpectations(t)
		r.stock.AssertExpectations(t)
		r.produitsPanier.AssertExpectations(t)
	})

	t.Run("insufficient stock rejects without creating a line", func(t *testing.T) {
		r := newStubTxRepos()
		r.paniers.On("FindByID", ctx, int64(3)).Return(model.Panier{ID: 3}, nil)
		r.produits.On("FindByID", ctx, int64(7)).Return(produit, nil)

		uc := NewPanierUsecase(&stubTxManager{repos: r}, new(mockPanierRepo))

		_, err := uc.AddProduit(ctx, 3, 7, AddProduitInput{Quantite: 99})
		he, ok := AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Status)
		assert.Equal(t, "stock insuffisant pour le produit : clavier", he.Message)
		r.produitsPanier.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		r.stock.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("guarded decrement losing the race also rejects", func(t *testing.T) {
		r := newStubTxRepos()
		r.paniers.On("FindByID", ctx, int64(3)).Return(model.Panier{ID: 3}, nil)
		r.produits.On("FindByID", ctx, int64(7)).Return(produit, nil)
		r.stock.On("DecreaseStockIfEnough", ctx, int64(7), int64(5)).Return(false, nil)

		uc := NewPanierUsecase(&stubTxManager{repos: r}, new(mockPanierRepo))

		_, err := uc.AddProduit(ctx, 3, 7, AddProduitInput{Quantite: 5})
		he, ok := AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Status)
		r.produitsPanier.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("quantite below one is rejected before touching the db", func(t *testing.T) {
		r := newStubTxRepos()
		uc := NewPanierUsecase(&stubTxManager{repos: r}, new(mockPanierRepo))

		_, err := uc.AddProduit(ctx, 3, 7, AddProduitInput{Quantite: 0})
		he, ok := AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Status)
		assert.Equal(t, "quantité invalide", he.Message)
		r.paniers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown panier yields 404", func(t *testing.T) {
		r := newStubTxRepos()
		r.paniers.On("FindByID", ctx, int64(99)).Return(model.Panier{}, repo.ErrNotFound)

		uc := NewPanierUsecase(&stubTxManager{repos: r}, new(mockPanierRepo))

		_, err := uc.AddProduit(ctx, 99, 7, AddProduitInput{Quantite: 1})
		he, ok := AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Status)
	})
}

func TestPanierUsecase_RemoveProduit(t *testing.T) {
	ctx := context.Background()

	produitB := model.Produit{ID: 2, Nom: "souris", Prix: 5.0}

	t.Run("deletes every line of the product and recomputes total", func(t *testing.T) {
		r := newStubTxRepos()
		r.paniers.On("FindByID", ctx, int64(3)).Return(model.Panier{ID: 3}, nil).Once()
		r.produits.On("FindByID", ctx, int64(1)).Return(model.Produit{ID: 1}, nil)
		r.produitsPanier.On("DeleteByPanierAndProduit", ctx, int64(3), int64(1)).Return(nil)
		r.produitsPanier.On("ListByPanierID", ctx, int64(3)).Return([]model.ProduitPanier{
			{PanierID: 3, ProduitID: 2, Produit: &produitB, Quantite: 1},
		}, nil)
		r.paniers.On("UpdateTotal", ctx, int64(3), 5.0).Return(nil)
		r.paniers.On("FindByID", ctx, int64(3)).Return(model.Panier{ID: 3, Total: 5.0}, nil).Once()

		uc := NewPanierUsecase(&stubTxManager{repos: r}, new(mockPanierRepo))

		out, err := uc.RemoveProduit(ctx, 3, 1)
		require.NoError(t, err)
		assert.Equal(t, 5.0, out.Total)
		r.produitsPanier.AssertExpectations(t)
		// 在庫は戻さない
		r.stock.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown produit yields 404", func(t *testing.T) {
		r := newStubTxRepos()
		r.paniers.On("FindByID", ctx, int64(3)).Return(model.Panier{ID: 3}, nil)
		r.produits.On("FindByID", ctx, int64(99)).Return(model.Produit{}, repo.ErrNotFound)

		uc := NewPanierUsecase(&stubTxManager{repos: r}, new(mockPanierRepo))

		_, err := uc.RemoveProduit(ctx, 3, 99)
		he, ok := AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Status)
		assert.Equal(t, "panier ou produit non trouvé", he.Message)
	})
}

func TestPanierUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades commandes and lines before the panier itself", func(t *testing.T) {
		commandes := []model.Commande{{ID: 10, PanierID: 3}, {ID: 11, PanierID: 3}}

		r := newStubTxRepos()
		r.paniers.On("FindByID", ctx, int64(3)).Return(model.Panier{ID: 3}, nil)
		r.commandes.On("FindByPanierID", ctx, int64(3)).Return(commandes, nil)
		r.commandes.On("DeleteAll", ctx, commandes).Return(nil)
		r.produitsPanier.On("DeleteByPanierID", ctx, int64(3)).Return(nil)
		r.paniers.On("Delete", ctx, int64(3)).Return(nil)

		uc := NewPanierUsecase(&stubTxManager{repos: r}, new(mockPanierRepo))

		require.NoError(t, uc.Delete(ctx, 3))
		r.commandes.AssertExpectations(t)
		r.produitsPanier.AssertExpectations(t)
		r.paniers.AssertExpectations(t)
	})

	t.Run("unknown panier yields 404", func(t *testing.T) {
		r := newStubTxRepos()
		r.paniers.On("FindByID", ctx, int64(99)).Return(model.Panier{}, repo.ErrNotFound)

		uc := NewPanierUsecase(&stubTxManager{repos: r}, new(mockPanierRepo))

		err := uc.Delete(ctx, 99)
		he, ok := AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Status)
	})
}

func TestPanierUsecase_IncreaseQuantity(t *testing.T) {
	ctx := context.Background()
	panierRepo := new(mockPanierRepo)

	panierRepo.On("FindByID", ctx, int64(3)).
		Return(model.Panier{ID: 3, Quantite: 2, Statut: model.PanierStatutEnAttente}, nil)
	panierRepo.On("Update", ctx, int64(3), int64(3), model.PanierStatutEnAttente).Return(nil)

	uc := NewPanierUsecase(&stubTxManager{repos: newStubTxRepos()}, panierRepo)

	out, err := uc.IncreaseQuantity(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Quantite)
	panierRepo.AssertExpectations(t)
}
