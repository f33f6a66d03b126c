package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// PanierUsecase は /panier の業務ロジックです。
// 在庫減算・明細追加・合計再計算はひとつのトランザクションで行う。
type PanierUsecase struct {
	tx         repo.TransactionManager
	panierRepo repo.PanierRepository
}

func NewPanierUsecase(tx repo.TransactionManager, panierRepo repo.PanierRepository) *PanierUsecase {
	return &PanierUsecase{tx: tx, panierRepo: panierRepo}
}

type CreatePanierInput struct {
	Quantite int64
	Statut   string
}

type UpdatePanierInput struct {
	Quantite int64
	Statut   string
}

type AddProduitInput struct {
	Quantite int64
}

// ComputeTotal は明細から合計を計算する純関数。
// 隠れた累積値は持たず、永続化された明細だけから再導出できる。
func ComputeTotal(items []model.ProduitPanier) float64 {
	var total float64 = 0

	for _, it := range items {
		if it.Produit == nil {
			continue
		}
		total += float64(it.Quantite) * it.Produit.Prix
	}

	return total
}

func (u *PanierUsecase) List(ctx context.Context) ([]model.Panier, error) {
	paniers, err := u.panierRepo.FindAll(ctx)
	if err != nil {
		return []model.Panier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return paniers, nil
}

func (u *PanierUsecase) Get(ctx context.Context, panierID int64) (model.Panier, error) {
	p, err := u.panierRepo.FindByID(ctx, panierID)
	if err == repo.ErrNotFound {
		return model.Panier{}, NewHTTPError(http.StatusNotFound, "panier non trouvé")
	}
	if err != nil {
		return model.Panier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// Create は空のパニエを作る（statut未指定は「en attente」）。
func (u *PanierUsecase) Create(ctx context.Context, in CreatePanierInput) (model.Panier, error) {
	statut := strings.TrimSpace(in.Statut)
	if statut == "" {
		statut = model.PanierStatutEnAttente
	}

	p := model.Panier{
		Quantite: in.Quantite,
		Statut:   statut,
		Total:    0,
	}

	if err := u.panierRepo.Create(ctx, &p); err != nil {
		return model.Panier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// Update はカウンタとstatutを上書きする（statutは前後の空白を除去）。
func (u *PanierUsecase) Update(ctx context.Context, panierID int64, in UpdatePanierInput) (model.Panier, error) {
	err := u.panierRepo.Update(ctx, panierID, in.Quantite, strings.TrimSpace(in.Statut))
	if err == repo.ErrNotFound {
		return model.Panier{}, NewHTTPError(http.StatusNotFound, "panier non trouvé")
	}
	if err != nil {
		return model.Panier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.Get(ctx, panierID)
}

// IncreaseQuantity はパニエ自体のカウンタを+1する。
func (u *PanierUsecase) IncreaseQuantity(ctx context.Context, panierID int64) (model.Panier, error) {
	p, err := u.panierRepo.FindByID(ctx, panierID)
	if err == repo.ErrNotFound {
		return model.Panier{}, NewHTTPError(http.StatusNotFound, "panier non trouvé")
	}
	if err != nil {
		return model.Panier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.panierRepo.Update(ctx, panierID, p.Quantite+1, p.Statut); err != nil {
		return model.Panier{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p.Quantite = p.Quantite + 1
	return p, nil
}

// AddProduit は商品をパニエに追加する。
// 在庫減算→明細作成→合計再計算を同一Txで行い、途中失敗は全部巻き戻す。
func (u *PanierUsecase) AddProduit(ctx context.Context, panierID int64, produitID int64, in AddProduitInput) (float64, error) {
	if in.Quantite < 1 {
		return 0, NewHTTPError(http.StatusBadRequest, "quantité invalide")
	}

	var total float64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.Paniers().FindByID(ctx, panierID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "panier ou produit non trouvé")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		produit, err := r.Produits().FindByID(ctx, produitID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "panier ou produit non trouvé")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if produit.Stock < in.Quantite {
			return NewHTTPError(http.StatusBadRequest, "stock insuffisant pour le produit : "+produit.Nom)
		}

		// 足りるときだけ減算（同時リクエストで負在庫にならないようにする）
		ok, err := r.Stock().DecreaseStockIfEnough(ctx, produitID, in.Quantite)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusBadRequest, "stock insuffisant pour le produit : "+produit.Nom)
		}

		// 追加1回＝明細1行（マージしない）
		item := model.ProduitPanier{
			PanierID:  panierID,
			ProduitID: produitID,
			Quantite:  in.Quantite,
		}
		if err := r.ProduitsPanier().Create(ctx, &item); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 合計は必ず明細から再計算して保存する
		items, err := r.ProduitsPanier().ListByPanierID(ctx, panierID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		total = ComputeTotal(items)
		if err := r.Paniers().UpdateTotal(ctx, panierID, total); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	if err != nil {
		return 0, err
	}
	return total, nil
}

// RemoveProduit はその商品の明細を「全部」削除して合計を再計算する。
// 在庫は戻さない（既存API互換。戻すならここで Stock().IncreaseStock）。
func (u *PanierUsecase) RemoveProduit(ctx context.Context, panierID int64, produitID int64) (model.Panier, error) {
	var out model.Panier

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.Paniers().FindByID(ctx, panierID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "panier ou produit non trouvé")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		_, err = r.Produits().FindByID(ctx, produitID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "panier ou produit non trouvé")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.ProduitsPanier().DeleteByPanierAndProduit(ctx, panierID, produitID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.ProduitsPanier().ListByPanierID(ctx, panierID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Paniers().UpdateTotal(ctx, panierID, ComputeTotal(items)); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = r.Paniers().FindByID(ctx, panierID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	if err != nil {
		return model.Panier{}, err
	}
	return out, nil
}

// Delete はパニエを削除する。
// 先に紐づくコマンドを明示的に消してから本体を消す（二段階カスケード）。
func (u *PanierUsecase) Delete(ctx context.Context, panierID int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.Paniers().FindByID(ctx, panierID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "panier non trouvé")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		commandes, err := r.Commandes().FindByPanierID(ctx, panierID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Commandes().DeleteAll(ctx, commandes); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 明細はパニエが所有しているので一緒に消す
		if err := r.ProduitsPanier().DeleteByPanierID(ctx, panierID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Paniers().Delete(ctx, panierID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}
