package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/araddon/dateparse"
)

type CommandeUsecase struct {
	commandeRepo repo.CommandeRepository
	panierRepo   repo.PanierRepository
	clientRepo   repo.ClientRepository
}

func NewCommandeUsecase(
	commandeRepo repo.CommandeRepository,
	panierRepo repo.PanierRepository,
	clientRepo repo.ClientRepository,
) *CommandeUsecase {
	return &CommandeUsecase{
		commandeRepo: commandeRepo,
		panierRepo:   panierRepo,
		clientRepo:   clientRepo,
	}
}

// 作成時はdateCommande省略可（省略すると未設定のまま）。
type PlaceCommandeInput struct {
	DateCommande *string
}

// 更新時はdateCommande必須。clientId/panierIdは任意（present-or-absent）。
type UpdateCommandeInput struct {
	DateCommande *string
	ClientID     *int64
	PanierID     *int64
}

func (u *CommandeUsecase) List(ctx context.Context) ([]model.Commande, error) {
	commandes, err := u.commandeRepo.FindAll(ctx)
	if err != nil {
		return []model.Commande{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return commandes, nil
}

func (u *CommandeUsecase) Get(ctx context.Context, commandeID int64) (model.Commande, error) {
	c, err := u.commandeRepo.FindByID(ctx, commandeID)
	if err == repo.ErrNotFound {
		return model.Commande{}, NewHTTPError(http.StatusNotFound, "commande non trouvée")
	}
	if err != nil {
		return model.Commande{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

// Place は「valide」なパニエからコマンドを作る。
// total はこの時点のパニエ合計のコピー。以後パニエが変わっても追従しない。
func (u *CommandeUsecase) Place(ctx context.Context, panierID int64, clientID int64, in PlaceCommandeInput) (model.Commande, error) {
	panier, err := u.panierRepo.FindByID(ctx, panierID)
	if err == repo.ErrNotFound {
		return model.Commande{}, NewHTTPError(http.StatusNotFound, "panier non trouvé")
	}
	if err != nil {
		return model.Commande{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	client, err := u.clientRepo.FindByID(ctx, clientID)
	if err == repo.ErrNotFound {
		return model.Commande{}, NewHTTPError(http.StatusNotFound, "client non trouvé")
	}
	if err != nil {
		return model.Commande{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if panier.Statut != model.PanierStatutValide {
		return model.Commande{}, NewHTTPError(http.StatusBadRequest, "le panier n'est pas valide")
	}

	var date *time.Time
	if in.DateCommande != nil && strings.TrimSpace(*in.DateCommande) != "" {
		t, err := parseDateCommande(*in.DateCommande)
		if err != nil {
			return model.Commande{}, NewHTTPError(http.StatusBadRequest, "format de dateCommande invalide")
		}
		date = &t
	}

	c := model.Commande{
		ClientID:     client.ID,
		PanierID:     panierID,
		Total:        panier.Total,
		DateCommande: date,
	}

	if err := u.commandeRepo.Create(ctx, &c); err != nil {
		return model.Commande{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

// Update はコマンドを更新する。
// dateCommandeは必須（作成時と非対称だが既存API互換）。
// clientIdは指定されたら存在チェック、panierIdは値だけ差し替える。
func (u *CommandeUsecase) Update(ctx context.Context, commandeID int64, in UpdateCommandeInput) (model.Commande, error) {
	c, err := u.commandeRepo.FindByID(ctx, commandeID)
	if err == repo.ErrNotFound {
		return model.Commande{}, NewHTTPError(http.StatusNotFound, "commande non trouvée")
	}
	if err != nil {
		return model.Commande{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.DateCommande == nil || strings.TrimSpace(*in.DateCommande) == "" {
		return model.Commande{}, NewHTTPError(http.StatusBadRequest, "date de commande non fournie")
	}
	t, err := parseDateCommande(*in.DateCommande)
	if err != nil {
		return model.Commande{}, NewHTTPError(http.StatusBadRequest, "format de dateCommande invalide")
	}
	c.DateCommande = &t

	if in.ClientID != nil {
		// 不正値も未存在もまとめて「client non trouvé」
		_, err := u.clientRepo.FindByID(ctx, *in.ClientID)
		if err == repo.ErrNotFound {
			return model.Commande{}, NewHTTPError(http.StatusBadRequest, "client non trouvé")
		}
		if err != nil {
			return model.Commande{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		c.ClientID = *in.ClientID
		c.Client = nil
	}

	// panierIdは存在チェックなしで保存する（既存API互換）
	if in.PanierID != nil {
		c.PanierID = *in.PanierID
	}

	if err := u.commandeRepo.Update(ctx, c); err != nil {
		return model.Commande{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CommandeUsecase) Delete(ctx context.Context, commandeID int64) error {
	err := u.commandeRepo.Delete(ctx, commandeID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "commande non trouvée")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// ISO-8601前後の揺れを許容してパースする
func parseDateCommande(s string) (time.Time, error) {
	return dateparse.ParseLocal(strings.TrimSpace(s))
}
