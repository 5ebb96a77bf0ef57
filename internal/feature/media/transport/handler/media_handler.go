// Package handler はmediaフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopp_backend/internal/api"
	"shopp_backend/internal/feature/media/transport/http/dto"
	"shopp_backend/internal/feature/media/usecase"
)

// MediaUsecase は画像アップロードと説明文生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MediaUsecase interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
	SuggestDescription(ctx context.Context, name, category string) (string, error)
}

// MediaHandler は商品画像アップロードと説明文生成のHTTPリクエストを処理します。
type MediaHandler struct {
	uc MediaUsecase
}

// NewMediaHandler はMediaHandlerの新しいインスタンスを生成します。
func NewMediaHandler(uc MediaUsecase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// Upload は商品画像をアップロードし、メディアホストのURLを返します。
//
// エンドポイント: POST /upload
// Content-Type: multipart/form-data
// フィールド: product（画像ファイル、最大10MB、jpg/png）
func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("product")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}

	url, err := h.uc.Upload(c.Request.Context(), data, file.Filename)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyImage),
			errors.Is(err, usecase.ErrImageTooLarge),
			errors.Is(err, usecase.ErrUnsupportedFormat),
			errors.Is(err, usecase.ErrImageRejected):
			slog.Warn("画像アップロードを拒否", "error", err, "filename", file.Filename)
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("画像アップロードに失敗", "error", err, "filename", file.Filename)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "image upload failed"})
		}
		return
	}

	c.JSON(http.StatusOK, api.UploadResponse{Success: true, ImageURL: url})
}

// DescribeProduct は商品説明文の候補を生成します。
//
// エンドポイント: POST /describeproduct
// Content-Type: application/json
func (h *MediaHandler) DescribeProduct(c *gin.Context) {
	var req dto.DescribeProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("説明文リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name and category are required"})
		return
	}

	text, err := h.uc.SuggestDescription(c.Request.Context(), req.Name, req.Category)
	if err != nil {
		if errors.Is(err, usecase.ErrSuggestionsDisabled) {
			c.JSON(http.StatusNotImplemented, api.ErrorResponse{Error: "description suggestions are not enabled"})
			return
		}
		slog.Error("説明文生成に失敗", "error", err, "name", req.Name)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to generate description"})
		return
	}

	c.JSON(http.StatusOK, api.DescriptionResponse{Success: true, Description: text})
}
