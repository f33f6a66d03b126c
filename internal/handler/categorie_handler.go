package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CategorieHandler struct {
	uc *usecase.CategorieUsecase
}

func NewCategorieHandler(uc *usecase.CategorieUsecase) *CategorieHandler {
	return &CategorieHandler{uc: uc}
}

type categorieRequest struct {
	Nom string `json:"nom"`
}

func (h *CategorieHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/categories")

	g.GET("/list", h.list)
	g.POST("/add", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *CategorieHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategorieHandler) get(c echo.Context) error {
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

func (h *CategorieHandler) create(c echo.Context) error {
	var req categorieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "corps invalide"})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CategorieInput{Nom: req.Nom})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategorieHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	var req categorieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "corps invalide"})
	}

	out, err := h.uc.Update(c.Request().Context(), id, usecase.CategorieInput{Nom: req.Nom})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategorieHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "catégorie supprimée"})
}
