// Package handler はcartフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopp_backend/internal/api"
	"shopp_backend/internal/feature/auth/domain/entity"
	"shopp_backend/internal/feature/cart/transport/http/dto"
	"shopp_backend/internal/feature/cart/usecase"
	jwtmw "shopp_backend/internal/platform/jwt"
)

// CartUsecase はカート操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CartUsecase interface {
	// Add はスロットの数量を1増やします。
	Add(ctx context.Context, userID uint, slot int) error
	// Remove はスロットの数量を1減らします（0が下限）。
	Remove(ctx context.Context, userID uint, slot int) error
	// Get はユーザーのカートマッピング全体を返します。
	Get(ctx context.Context, userID uint) (entity.CartData, error)
}

// CartHandler は認証済みユーザーのカート操作のHTTPリクエストを処理します。
// ルーティング側でAuthRequiredミドルウェアの背後に置かれることを前提とします。
type CartHandler struct {
	cart CartUsecase
}

// NewCartHandler はCartHandlerの新しいインスタンスを生成します。
func NewCartHandler(cart CartUsecase) *CartHandler {
	return &CartHandler{cart: cart}
}

// currentUserID はミドルウェアが設定したユーザーIDをコンテキストから取り出します。
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Add は/addtocartを処理し、成功時はプレーンテキスト"Added"を返します。
// レスポンス形式はレガシーのストアフロント契約によるものです。
func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Please authenticate with a valid token"})
		return
	}
	var req dto.CartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("addtocart validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.cart.Add(c.Request.Context(), userID, *req.ItemID); err != nil {
		h.writeCartError(c, "addtocart", userID, err)
		return
	}
	c.String(http.StatusOK, "Added")
}

// Remove は/removefromcartを処理し、成功時はプレーンテキスト"Removed"を返します。
// 数量0のスロットからの削除は何もしない成功として扱われます。
func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Please authenticate with a valid token"})
		return
	}
	var req dto.CartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("removefromcart validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.cart.Remove(c.Request.Context(), userID, *req.ItemID); err != nil {
		h.writeCartError(c, "removefromcart", userID, err)
		return
	}
	c.String(http.StatusOK, "Removed")
}

// Get は/getcartを処理し、カートマッピングをJSONで返します。
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Please authenticate with a valid token"})
		return
	}
	cart, err := h.cart.Get(c.Request.Context(), userID)
	if err != nil {
		h.writeCartError(c, "getcart", userID, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// writeCartError はユースケースのエラーをHTTPステータスに対応付けます。
func (h *CartHandler) writeCartError(c *gin.Context, op string, userID uint, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidSlot):
		slog.Warn(op+" rejected, slot out of range", "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid item id"})
	case errors.Is(err, usecase.ErrUserNotFound):
		// 有効なトークンを持つが行が消えているケース（発行後の削除など）
		slog.Warn(op+" failed, user missing", "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "user not found"})
	default:
		slog.Error(op+" failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "cart operation failed"})
	}
}
