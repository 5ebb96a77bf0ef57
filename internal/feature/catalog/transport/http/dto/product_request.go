// Package dto defines data transfer objects for the catalog HTTP API.
package dto

// AddProductReq represents the body of /addproduct.
// Field names follow the admin-panel contract (snake_case prices).
type AddProductReq struct {
	Name     string  `json:"name" binding:"required"`
	Image    string  `json:"image" binding:"required"`
	Category string  `json:"category" binding:"required"`
	NewPrice float64 `json:"new_price"`
	OldPrice float64 `json:"old_price"`
}

// RemoveProductReq represents the body of /removeproduct.
// Name is optional and only echoed back in the response.
type RemoveProductReq struct {
	ID   uint   `json:"id" binding:"required"`
	Name string `json:"name"`
}
