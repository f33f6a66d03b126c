package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategorieUsecase struct {
	categorieRepo repo.CategorieRepository
}

func NewCategorieUsecase(categorieRepo repo.CategorieRepository) *CategorieUsecase {
	return &CategorieUsecase{categorieRepo: categorieRepo}
}

type CategorieInput struct {
	Nom string
}

func (u *CategorieUsecase) List(ctx context.Context) ([]model.Categorie, error) {
	categories, err := u.categorieRepo.FindAll(ctx)
	if err != nil {
		return []model.Categorie{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

func (u *CategorieUsecase) Get(ctx context.Context, categorieID int64) (model.Categorie, error) {
	c, err := u.categorieRepo.FindByID(ctx, categorieID)
	if err == repo.ErrNotFound {
		return model.Categorie{}, NewHTTPError(http.StatusNotFound, "catégorie non trouvée")
	}
	if err != nil {
		return model.Categorie{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategorieUsecase) Create(ctx context.Context, in CategorieInput) (model.Categorie, error) {
	nom := strings.TrimSpace(in.Nom)
	if nom == "" {
		return model.Categorie{}, NewHTTPError(http.StatusBadRequest, "nom requis")
	}

	c := model.Categorie{Nom: nom}
	if err := u.categorieRepo.Create(ctx, &c); err != nil {
		return model.Categorie{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategorieUsecase) Update(ctx context.Context, categorieID int64, in CategorieInput) (model.Categorie, error) {
	nom := strings.TrimSpace(in.Nom)
	if nom == "" {
		return model.Categorie{}, NewHTTPError(http.StatusBadRequest, "nom requis")
	}

	c, err := u.categorieRepo.FindByID(ctx, categorieID)
	if err == repo.ErrNotFound {
		return model.Categorie{}, NewHTTPError(http.StatusNotFound, "catégorie non trouvée")
	}
	if err != nil {
		return model.Categorie{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c.Nom = nom
	if err := u.categorieRepo.Update(ctx, c); err != nil {
		return model.Categorie{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategorieUsecase) Delete(ctx context.Context, categorieID int64) error {
	err := u.categorieRepo.Delete(ctx, categorieID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "catégorie non trouvée")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
