// Package gemini はGoogle Gemini APIを使用した商品説明文生成クライアントを提供します。
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"shopp_backend/internal/feature/media/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// GeminiWriter はGoogle Gemini APIを使用して商品説明文を生成します。
type GeminiWriter struct {
	client *genai.Client
	model  string
}

// GeminiWriterがDescriptionWriterを実装していることをコンパイル時に検証します。
var _ usecase.DescriptionWriter = (*GeminiWriter)(nil)

// NewGeminiWriter はADCを使用してGeminiWriterの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION が必要です。
func NewGeminiWriter(ctx context.Context) (*GeminiWriter, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiWriter{client: client, model: DefaultModel}, nil
}

// Write はプロンプトから説明文を生成します。
func (g *GeminiWriter) Write(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
