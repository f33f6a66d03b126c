package usecase

import (
	"context"
	"net/http"
	"net/mail"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ClientUsecase struct {
	clientRepo repo.ClientRepository
}

func NewClientUsecase(clientRepo repo.ClientRepository) *ClientUsecase {
	return &ClientUsecase{clientRepo: clientRepo}
}

type ClientInput struct {
	Nom       string
	Prenom    string
	Email     string
	Telephone string
	Adresse   string
}

func (u *ClientUsecase) List(ctx context.Context) ([]model.Client, error) {
	clients, err := u.clientRepo.FindAll(ctx)
	if err != nil {
		return []model.Client{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return clients, nil
}

func (u *ClientUsecase) Get(ctx context.Context, clientID int64) (model.Client, error) {
	c, err := u.clientRepo.FindByID(ctx, clientID)
	if err == repo.ErrNotFound {
		return model.Client{}, NewHTTPError(http.StatusNotFound, "client non trouvé")
	}
	if err != nil {
		return model.Client{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *ClientUsecase) Create(ctx context.Context, in ClientInput) (model.Client, error) {
	if err := validateClient(in); err != nil {
		return model.Client{}, err
	}

	c := model.Client{
		Nom:       strings.TrimSpace(in.Nom),
		Prenom:    strings.TrimSpace(in.Prenom),
		Email:     strings.TrimSpace(in.Email),
		Telephone: strings.TrimSpace(in.Telephone),
		Adresse:   strings.TrimSpace(in.Adresse),
		Role:      model.RoleClient,
	}

	if err := u.clientRepo.Create(ctx, &c); err != nil {
		return model.Client{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *ClientUsecase) Update(ctx context.Context, clientID int64, in ClientInput) (model.Client, error) {
	if err := validateClient(in); err != nil {
		return model.Client{}, err
	}

	c, err := u.clientRepo.FindByID(ctx, clientID)
	if err == repo.ErrNotFound {
		return model.Client{}, NewHTTPError(http.StatusNotFound, "client non trouvé")
	}
	if err != nil {
		return model.Client{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c.Nom = strings.TrimSpace(in.Nom)
	c.Prenom = strings.TrimSpace(in.Prenom)
	c.Email = strings.TrimSpace(in.Email)
	c.Telephone = strings.TrimSpace(in.Telephone)
	c.Adresse = strings.TrimSpace(in.Adresse)

	if err := u.clientRepo.Update(ctx, c); err != nil {
		return model.Client{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *ClientUsecase) Delete(ctx context.Context, clientID int64) error {
	err := u.clientRepo.Delete(ctx, clientID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "client non trouvé")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateClient(in ClientInput) error {
	if strings.TrimSpace(in.Nom) == "" {
		return NewHTTPError(http.StatusBadRequest, "nom requis")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return NewHTTPError(http.StatusBadRequest, "email invalide")
	}
	return nil
}
