package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProduitUsecase struct {
	produitRepo   repo.ProduitRepository
	categorieRepo repo.CategorieRepository
	tx            repo.TransactionManager
}

// DI
func NewProduitUsecase(
	produitRepo repo.ProduitRepository,
	categorieRepo repo.CategorieRepository,
	tx repo.TransactionManager,
) *ProduitUsecase {
	return &ProduitUsecase{
		produitRepo:   produitRepo,
		categorieRepo: categorieRepo,
		tx:            tx,
	}
}

type CreateProduitInput struct {
	Nom         string
	Description string
	Prix        float64
	Stock       int64
	CategorieID int64
	Image       []byte
}

// 更新時はImage==nilなら既存画像を残す。
type UpdateProduitInput struct {
	Nom         string
	Description string
	Prix        float64
	Stock       int64
	CategorieID int64
	Image       []byte
}

type SetStockInput struct {
	Stock int64
	Motif string
}

func (u *ProduitUsecase) List(ctx context.Context) ([]model.Produit, error) {
	produits, err := u.produitRepo.FindAll(ctx)
	if err != nil {
		return []model.Produit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return produits, nil
}

func (u *ProduitUsecase) Get(ctx context.Context, produitID int64) (model.Produit, error) {
	p, err := u.produitRepo.FindByID(ctx, produitID)
	if err == repo.ErrNotFound {
		return model.Produit{}, NewHTTPError(http.StatusNotFound, "produit non trouvé")
	}
	if err != nil {
		return model.Produit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProduitUsecase) ListByCategorie(ctx context.Context, categorieID int64) ([]model.Produit, error) {
	produits, err := u.produitRepo.FindByCategorieID(ctx, categorieID)
	if err != nil {
		return []model.Produit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return produits, nil
}

func (u *ProduitUsecase) Create(ctx context.Context, in CreateProduitInput) (model.Produit, error) {
	if err := validateProduit(in.Nom, in.Prix, in.Stock); err != nil {
		return model.Produit{}, err
	}

	// カテゴリの存在確認
	categorie, err := u.categorieRepo.FindByID(ctx, in.CategorieID)
	if err == repo.ErrNotFound {
		return model.Produit{}, NewHTTPError(http.StatusNotFound, "catégorie non trouvée")
	}
	if err != nil {
		return model.Produit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p := model.Produit{
		Nom:         strings.TrimSpace(in.Nom),
		Description: in.Description,
		Prix:        in.Prix,
		Stock:       in.Stock,
		CategorieID: categorie.ID,
		Image:       in.Image,
	}

	created, err := u.produitRepo.Create(ctx, p)
	if err != nil {
		return model.Produit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created.Categorie = &categorie
	return created, nil
}

func (u *ProduitUsecase) Update(ctx context.Context, produitID int64, in UpdateProduitInput) (model.Produit, error) {
	if err := validateProduit(in.Nom, in.Prix, in.Stock); err != nil {
		return model.Produit{}, err
	}

	p, err := u.produitRepo.FindByID(ctx, produitID)
	if err == repo.ErrNotFound {
		return model.Produit{}, NewHTTPError(http.StatusNotFound, "produit non trouvé")
	}
	if err != nil {
		return model.Produit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p.Nom = strings.TrimSpace(in.Nom)
	p.Description = in.Description
	p.Prix = in.Prix
	p.Stock = in.Stock
	p.CategorieID = in.CategorieID

	// 画像は送られてきたときだけ差し替える
	if in.Image != nil {
		p.Image = in.Image
	}

	if err := u.produitRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return model.Produit{}, NewHTTPError(http.StatusNotFound, "produit non trouvé")
		}
		return model.Produit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p.Categorie = nil
	return p, nil
}

func (u *ProduitUsecase) Delete(ctx context.Context, produitID int64) error {
	err := u.produitRepo.Delete(ctx, produitID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "produit non trouvé")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AdminSetStock は在庫の現在値を書き換えて調整履歴を残す。
// 在庫書き込みと履歴は同一Tx。
func (u *ProduitUsecase) AdminSetStock(ctx context.Context, adminID int64, produitID int64, in SetStockInput) error {
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock invalide")
	}
	motif := strings.TrimSpace(in.Motif)
	if motif == "" {
		return NewHTTPError(http.StatusBadRequest, "motif requis")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Produits().FindByID(ctx, produitID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "produit non trouvé")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Stock().SetStock(ctx, produitID, in.Stock); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		aj := model.AjustementStock{
			ProduitID: produitID,
			AdminID:   adminID,
			Delta:     in.Stock - p.Stock,
			Motif:     motif,
		}
		if err := r.Stock().CreateAjustement(ctx, aj); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func validateProduit(nom string, prix float64, stock int64) error {
	if strings.TrimSpace(nom) == "" {
		return NewHTTPError(http.StatusBadRequest, "nom requis")
	}
	if prix < 0 {
		return NewHTTPError(http.StatusBadRequest, "prix invalide")
	}
	// 在庫は負にならない
	if stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock invalide")
	}
	return nil
}
