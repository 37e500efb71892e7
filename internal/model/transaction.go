package model

// Transaction is one row of the retail transactions table.
type Transaction struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"CustomerID"`
	ProductID          string  `json:"ProductID"`
	Quantity           int64   `json:"Quantity"`
	Price              float64 `json:"Price"`
	TransactionDate    string  `json:"TransactionDate"` // "YYYY-MM-DD HH:MM"
	PaymentMethod      string  `json:"PaymentMethod"`
	StoreLocation      string  `json:"StoreLocation"`
	ProductCategory    string  `json:"ProductCategory"`
	DiscountAppliedPct float64 `json:"DiscountAppliedPct"`
	TotalAmount        float64 `json:"TotalAmount"`
}
