package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CommandeHandler struct {
	uc *usecase.CommandeUsecase
}

func NewCommandeHandler(uc *usecase.CommandeUsecase) *CommandeHandler {
	return &CommandeHandler{uc: uc}
}

// dateCommandeは作成時は任意、更新時は必須。
type placeCommandeRequest struct {
	DateCommande *string `json:"dateCommande"`
}

type updateCommandeRequest struct {
	DateCommande *string `json:"dateCommande"`
	ClientID     *int64  `json:"clientId"`
	PanierID     *int64  `json:"panierId"`
}

func (h *CommandeHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/commandes")

	g.GET("/list", h.list)
	g.GET("/:id", h.get)
	g.POST("/add/:panierId/:clientId", h.place)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *CommandeHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CommandeHandler) get(c echo.Context) error {
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

func (h *CommandeHandler) place(c echo.Context) error {
	panierID, err := strconv.ParseInt(c.Param("panierId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}
	clientID, err := strconv.ParseInt(c.Param("clientId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	var req placeCommandeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "corps invalide"})
	}

	_, err = h.uc.Place(c.Request().Context(), panierID, clientID, usecase.PlaceCommandeInput{
		DateCommande: req.DateCommande,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Commande créée avec succès"})
}

func (h *CommandeHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	var req updateCommandeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "corps invalide"})
	}

	out, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateCommandeInput{
		DateCommande: req.DateCommande,
		ClientID:     req.ClientID,
		PanierID:     req.PanierID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CommandeHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "commande supprimée"})
}
