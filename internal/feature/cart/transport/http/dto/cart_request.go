// Package dto defines data transfer objects for the cart feature's HTTP transport layer.
package dto

// CartItemReq represents the body of /addtocart and /removefromcart.
// ItemID is a pointer so slot 0 passes the required validation.
type CartItemReq struct {
	ItemID *int `json:"itemId" binding:"required"`
}
