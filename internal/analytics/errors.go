package analytics

import "errors"

var (
	ErrInvalidCustomerID = errors.New("customer id must be a non-negative integer")
	ErrInvalidProductID  = errors.New("product id must not be empty")
)
