package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// DescriptionPromptTemplate は商品説明文生成のプロンプトテンプレートです。
	DescriptionPromptTemplate = "Write a short, upbeat product description (under 60 words) for %q in the %s category of an online clothing store."
	// MaxProductNameLength は商品名の最大文字数（rune数）です。
	MaxProductNameLength = 100
)

// allowedImageExt はアップロードを許可する画像拡張子です（メディアホストの制約）。
var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// validProductName は商品名に許可される文字パターンです（英数字・スペース・一部記号）。
var validProductName = regexp.MustCompile(`^[\p{L}\p{N}\s\-\.&,']+$`)

// ImageUploader は画像を外部メディアホストに転送するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ImageUploader interface {
	// Upload は画像バイト列を転送し、公開URLを返します。
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}

// ImageModerator は画像のコンテンツモデレーションを行うインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ImageModerator interface {
	// Moderate は不適切なコンテンツを検出した場合にエラーを返します。
	Moderate(ctx context.Context, data []byte) error
}

// DescriptionWriter は商品説明文の候補を生成するインターフェースです。
type DescriptionWriter interface {
	// Write はプロンプトから説明文を生成します。
	Write(ctx context.Context, prompt string) (string, error)
}

// mediaUsecase は商品画像のアップロードと説明文生成のビジネスロジックを提供します。
// moderatorとwriterはオプションであり、nilの場合は該当機能がスキップまたは無効になります。
type mediaUsecase struct {
	uploader  ImageUploader
	moderator ImageModerator
	writer    DescriptionWriter
}

// NewMediaUsecase はmediaUsecaseの新しいインスタンスを生成します。
func NewMediaUsecase(uploader ImageUploader, moderator ImageModerator, writer DescriptionWriter) *mediaUsecase {
	return &mediaUsecase{uploader: uploader, moderator: moderator, writer: writer}
}

// Upload は商品画像を検証し、必要に応じてモデレーションを行った上で
// 外部メディアホストに転送し、公開URLを返します。
func (u *mediaUsecase) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}
	if !allowedImageExt[strings.ToLower(filepath.Ext(filename))] {
		return "", ErrUnsupportedFormat
	}

	// モデレーターが配線されている場合のみ実行
	if u.moderator != nil {
		if err := u.moderator.Moderate(ctx, data); err != nil {
			return "", err
		}
	}

	url, err := u.uploader.Upload(ctx, data, filename)
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	return url, nil
}

// SuggestDescription は商品名とカテゴリから説明文の候補を生成します。
func (u *mediaUsecase) SuggestDescription(ctx context.Context, name, category string) (string, error) {
	if u.writer == nil {
		return "", ErrSuggestionsDisabled
	}
	if name == "" {
		return "", fmt.Errorf("product name is required")
	}
	if utf8.RuneCountInString(name) > MaxProductNameLength {
		return "", fmt.Errorf("product name exceeds maximum length of %d characters", MaxProductNameLength)
	}
	if !validProductName.MatchString(name) {
		return "", fmt.Errorf("product name contains invalid characters")
	}
	if category == "" {
		return "", fmt.Errorf("category is required")
	}

	prompt := fmt.Sprintf(DescriptionPromptTemplate, name, category)
	text, err := u.writer.Write(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("description writer failed for %q: %w", name, err)
	}
	return text, nil
}
