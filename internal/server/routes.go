package server

import (
	"github.com/labstack/echo/v4"

	"app/internal/config"
	"app/internal/handler"
)

// Handlers は登録対象のhandler一式。
type Handlers struct {
	Auth      *handler.AuthHandler
	Produit   *handler.ProduitHandler
	Categorie *handler.CategorieHandler
	Client    *handler.ClientHandler
	Panier    *handler.PanierHandler
	Commande  *handler.CommandeHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.Produit.RegisterRoutes(e, cfg)
	h.Categorie.RegisterRoutes(e)
	h.Client.RegisterRoutes(e)
	h.Panier.RegisterRoutes(e)
	h.Commande.RegisterRoutes(e)
}
