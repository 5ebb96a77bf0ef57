// Package vision はGoogle Cloud Vision APIを使用した画像モデレーションクライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"shopp_backend/internal/feature/media/usecase"
)

// SafeSearchModerator はGoogle Cloud Vision SafeSearchで商品画像を審査します。
type SafeSearchModerator struct {
	client *gvision.ImageAnnotatorClient
}

// SafeSearchModeratorがImageModeratorを実装していることをコンパイル時に検証します。
var _ usecase.ImageModerator = (*SafeSearchModerator)(nil)

// NewSafeSearchModerator はADCを使用してSafeSearchModeratorの新しいインスタンスを生成します。
func NewSafeSearchModerator(ctx context.Context) (*SafeSearchModerator, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &SafeSearchModerator{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (m *SafeSearchModerator) Close() error {
	return m.client.Close()
}

// Moderate は画像をSafeSearchにかけ、成人向け・暴力的コンテンツの可能性が
// LIKELY以上の場合にusecase.ErrImageRejectedを返します。
func (m *SafeSearchModerator) Moderate(ctx context.Context, data []byte) error {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: data},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_SAFE_SEARCH_DETECTION},
				},
			},
		},
	}

	resp, err := m.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return nil
	}
	if resp.Responses[0].Error != nil {
		return fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	annotation := resp.Responses[0].SafeSearchAnnotation
	if annotation == nil {
		return nil
	}
	if annotation.Adult >= visionpb.Likelihood_LIKELY ||
		annotation.Violence >= visionpb.Likelihood_LIKELY ||
		annotation.Racy >= visionpb.Likelihood_VERY_LIKELY {
		return usecase.ErrImageRejected
	}
	return nil
}
