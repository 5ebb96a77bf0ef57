// Package dto defines data transfer objects for the media feature's HTTP transport layer.
package dto

// DescribeProductReq represents the body of /describeproduct.
type DescribeProductReq struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}
