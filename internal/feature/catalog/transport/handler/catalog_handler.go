package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopp_backend/internal/api"
	"shopp_backend/internal/feature/catalog/domain/entity"
	"shopp_backend/internal/feature/catalog/transport/http/dto"
)

// CatalogUsecase は商品カタログに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CatalogUsecase interface {
	AddProduct(ctx context.Context, p *entity.Product) error
	RemoveProduct(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]entity.Product, error)
	NewCollections(ctx context.Context) ([]entity.Product, error)
	PopularInWomen(ctx context.Context) ([]entity.Product, error)
}

// CatalogHandler は商品カタログに関するHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は新しい CatalogHandler を作成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// AddProduct は/addproductを処理します。連番IDの採番はリポジトリ層で行われます。
func (h *CatalogHandler) AddProduct(c *gin.Context) {
	var req dto.AddProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("addproduct validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	p := &entity.Product{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		NewPrice: req.NewPrice,
		OldPrice: req.OldPrice,
	}
	if err := h.uc.AddProduct(c.Request.Context(), p); err != nil {
		slog.Error("addproduct failed", "error", err, "name", req.Name)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to add product"})
		return
	}
	slog.Info("product added", "id", p.ID, "name", p.Name, "category", p.Category)
	c.JSON(http.StatusOK, api.NameResponse{Success: true, Name: p.Name})
}

// RemoveProduct は/removeproductを処理します。
// 存在しないIDの削除も成功として扱われます（レガシー契約）。
func (h *CatalogHandler) RemoveProduct(c *gin.Context) {
	var req dto.RemoveProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("removeproduct validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.uc.RemoveProduct(c.Request.Context(), req.ID); err != nil {
		slog.Error("removeproduct failed", "error", err, "id", req.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to remove product"})
		return
	}
	slog.Info("product removed", "id", req.ID)
	c.JSON(http.StatusOK, api.NameResponse{Success: true, Name: req.Name})
}

// ListAll は/allproductsを処理し、カタログ全体を返します。
func (h *CatalogHandler) ListAll(c *gin.Context) {
	products, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("allproducts failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(products))
}

// NewCollections は/newcollectionsを処理し、最新8件を返します。
func (h *CatalogHandler) NewCollections(c *gin.Context) {
	products, err := h.uc.NewCollections(c.Request.Context())
	if err != nil {
		slog.Error("newcollections failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(products))
}

// PopularInWomen は/popularinwomenを処理し、womenカテゴリの先頭4件を返します。
func (h *CatalogHandler) PopularInWomen(c *gin.Context) {
	products, err := h.uc.PopularInWomen(c.Request.Context())
	if err != nil {
		slog.Error("popularinwomen failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(products))
}
