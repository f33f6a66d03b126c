package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Message: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
}

// AuthJWTミドルウェアが入れたclient_idを取り出す
func getClientIDFromContext(c echo.Context) (int64, bool) {
	raw := c.Get(middleware.CtxClientIDKey)
	id, ok := raw.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// /produits の公開API
type ProduitHandler struct {
	uc *usecase.ProduitUsecase
}

// DI
func NewProduitHandler(uc *usecase.ProduitUsecase) *ProduitHandler {
	return &ProduitHandler{uc: uc}
}

type setStockRequest struct {
	Stock int64  `json:"stock"`
	Motif string `json:"motif"`
}

func (h *ProduitHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/produits")

	g.GET("/list", h.list)
	g.GET("/:id", h.get)
	g.GET("/byCategory/:categoryId", h.listByCategorie)
	g.POST("/add", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)

	// 在庫の直接調整は管理者のみ
	admin := e.Group("/admin/produits")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())
	admin.PUT("/:id/stock", h.adminSetStock)
}

func (h *ProduitHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProduitHandler) get(c echo.Context) error {
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

func (h *ProduitHandler) listByCategorie(c echo.Context) error {
	categorieID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	out, err := h.uc.ListByCategorie(c.Request().Context(), categorieID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// multipart/form-dataで商品を登録する（画像は任意）。
func (h *ProduitHandler) create(c echo.Context) error {
	prix, err := strconv.ParseFloat(c.FormValue("prix"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "prix invalide"})
	}

	stock, err := strconv.ParseInt(c.FormValue("stock"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "stock invalide"})
	}

	categorieID, err := strconv.ParseInt(c.FormValue("category"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "category invalide"})
	}

	image, err := readImageFile(c, "file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "image invalide"})
	}

	out, err := h.uc.Create(c.Request().Context(), usecase.CreateProduitInput{
		Nom:         c.FormValue("nom"),
		Description: c.FormValue("description"),
		Prix:        prix,
		Stock:       stock,
		CategorieID: categorieID,
		Image:       image,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 更新もmultipart。categoryはJSONオブジェクト文字列で届く（既存クライアント互換）。
func (h *ProduitHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	prix, err := strconv.ParseFloat(c.FormValue("prix"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "prix invalide"})
	}

	stock, err := strconv.ParseInt(c.FormValue("stock"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "stock invalide"})
	}

	var categorie model.Categorie
	if err := json.Unmarshal([]byte(c.FormValue("category")), &categorie); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "category invalide"})
	}

	image, err := readImageFile(c, "image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "image invalide"})
	}

	out, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateProduitInput{
		Nom:         c.FormValue("nom"),
		Description: c.FormValue("description"),
		Prix:        prix,
		Stock:       stock,
		CategorieID: categorie.ID,
		Image:       image,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProduitHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "produit supprimé"})
}

func (h *ProduitHandler) adminSetStock(c echo.Context) error {
	adminID, ok := getClientIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "id invalide"})
	}

	var req setStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "corps invalide"})
	}

	err = h.uc.AdminSetStock(c.Request().Context(), adminID, id, usecase.SetStockInput{
		Stock: req.Stock,
		Motif: req.Motif,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "stock mis à jour"})
}

// フォームのファイルを読み込む。未添付なら(nil, nil)。
func readImageFile(c echo.Context, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err == http.ErrMissingFile || fh == nil {
		return nil, nil
	}
	if err != nil {
		// multipartでないリクエストも「添付なし」として扱う
		return nil, nil
	}
	return readMultipartFile(fh)
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
