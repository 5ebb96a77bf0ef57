// Package api defines the shared HTTP response types for the shopp API.
// The field shapes mirror the contract the storefront and admin panel
// already consume, so they must not be changed casually.
package api

// TokenResponse is returned by /signup and /login on success.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// ErrorResponse is the generic failure payload ({success:false, error}).
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ErrorsResponse is the login failure payload. The legacy client reads
// the plural "errors" key here, unlike everywhere else.
type ErrorsResponse struct {
	Success bool   `json:"success"`
	Errors  string `json:"errors"`
}

// NameResponse is returned by /addproduct and /removeproduct.
type NameResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
}

// UploadResponse is returned by /upload with the minted image URL.
type UploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url"`
}

// DescriptionResponse is returned by /describeproduct.
type DescriptionResponse struct {
	Success     bool   `json:"success"`
	Description string `json:"description"`
}
