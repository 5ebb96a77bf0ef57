package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"shopp_backend/internal/feature/media/usecase"
	"shopp_backend/internal/shared/ratelimiter"
)

// transformation は商品画像に適用するCloudinary変換です（500x500に制限）。
const transformation = "c_limit,h_500,w_500"

// Client はCloudinary REST APIに画像を転送するImageUploader実装です。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// ClientがImageUploaderを実装していることをコンパイル時に検証します。
var _ usecase.ImageUploader = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// limiterはnil可で、その場合はスロットリングを行いません。
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// uploadResponse はCloudinaryのアップロードAPIレスポンスです。
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload は署名付きmultipartリクエストで画像をCloudinaryに転送し、
// 配信用のセキュアURLを返します。
func (c *Client) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	// 署名対象パラメータはキーのアルファベット順で連結する
	toSign := fmt.Sprintf("folder=%s&timestamp=%s&transformation=%s",
		c.cfg.Folder, timestamp, transformation)
	signature := signPayload(toSign, c.cfg.APISecret)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fields := map[string]string{
		"api_key":        c.cfg.APIKey,
		"timestamp":      timestamp,
		"signature":      signature,
		"folder":         c.cfg.Folder,
		"transformation": transformation,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return "", fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return "", fmt.Errorf("failed to write image data: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	u := fmt.Sprintf("%s/v1_1/%s/image/upload", c.cfg.BaseURL, c.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	var out uploadResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode cloudinary response: %w", err)
	}
	if res.StatusCode >= 400 {
		if out.Error.Message != "" {
			return "", fmt.Errorf("cloudinary: %s", out.Error.Message)
		}
		return "", fmt.Errorf("cloudinary http %d", res.StatusCode)
	}
	if out.SecureURL == "" {
		// 古いアカウント設定ではsecure_urlが欠けることがある
		if out.URL != "" {
			return out.URL, nil
		}
		return "", fmt.Errorf("cloudinary response missing secure_url")
	}
	return out.SecureURL, nil
}

// signPayload はCloudinaryのAPI署名（SHA-1）を計算します。
func signPayload(toSign, secret string) string {
	sum := sha1.Sum([]byte(toSign + secret))
	return hex.EncodeToString(sum[:])
}
