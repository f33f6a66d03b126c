package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /panierのHTTP
type PanierHandler struct {
	uc *usecase.PanierUsecase
}

// DI
func NewPanierHandler(uc *usecase.PanierUsecase) *PanierHandler {
	return &PanierHandler{uc: uc}
}

type panierRequest struct {
	Quantite int64  `json:"quantite"`
	Statut   string `json:"statut"`
}

type addProduitRequest struct {
	Quantite int64 `json:"quantite"`
}

type addProduitResponse struct {
	Message string  `json:"message"`
	Total   float64 `json:"total"`
}

func (h *PanierHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/panier")

	g.GET("/list", h.list)
	g.POST("/add", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)

	// 既存クライアントはGETで副作用を起こす。互換のため残す。
	g.GET("/increaseQuantity/:id", h.increaseQuantity)
	g.POST("/addProduitToPanier/:panierId/:produitId", h.addProduit)
	g.GET("/removeProduitFromPanier/:panierId/:produitId", h.removeProduit)
}

func (h *PanierHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PanierHandler) get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PanierHandler) create(c echo.Context) error {
	var req panierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "corps invalide"})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreatePanierInput{
		Quantite: req.Quantite,
		Statut:   req.Statut,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PanierHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	var req panierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "corps invalide"})
	}

	out, err := h.uc.Update(c.Request().Context(), id, usecase.UpdatePanierInput{
		Quantite: req.Quantite,
		Statut:   req.Statut,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PanierHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "panier supprimé"})
}

func (h *PanierHandler) increaseQuantity(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	out, err := h.uc.IncreaseQuantity(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PanierHandler) addProduit(c echo.Context) error {
	panierID, err := strconv.ParseInt(c.Param("panierId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}
	produitID, err := strconv.ParseInt(c.Param("produitId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	var req addProduitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "corps invalide"})
	}

	total, err := h.uc.AddProduit(c.Request().Context(), panierID, produitID, usecase.AddProduitInput{
		Quantite: req.Quantite,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, addProduitResponse{
		Message: "produit ajouté au panier",
		Total:   total,
	})
}

func (h *PanierHandler) removeProduit(c echo.Context) error {
	panierID, err := strconv.ParseInt(c.Param("panierId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}
	produitID, err := strconv.ParseInt(c.Param("produitId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	out, err := h.uc.RemoveProduit(c.Request().Context(), panierID, produitID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
