// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// The field names follow the storefront contract (username, not name).
// No minimum password length is enforced; the legacy clients send short
// passwords and the hash cost is the brute-force defence.
type SignupReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
