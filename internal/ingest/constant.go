package ingest

const (
	LogPrefixLoad = "ingest.Load"

	// DefaultBatchSize is the number of rows inserted per database transaction.
	DefaultBatchSize = 2000
)

// Column names of the source CSV.
const (
	ColCustomerID      = "CustomerID"
	ColProductID       = "ProductID"
	ColQuantity        = "Quantity"
	ColPrice           = "Price"
	ColTransactionDate = "TransactionDate"
	ColPaymentMethod   = "PaymentMethod"
	ColStoreLocation   = "StoreLocation"
	ColProductCategory = "ProductCategory"
	ColDiscountApplied = "DiscountApplied(%)"
	ColTotalAmount     = "TotalAmount"
)

// RequiredColumns must all be present in the header; extra columns are ignored.
var RequiredColumns = []string{
	ColCustomerID,
	ColProductID,
	ColQuantity,
	ColPrice,
	ColTransactionDate,
	ColPaymentMethod,
	ColStoreLocation,
	ColProductCategory,
	ColDiscountApplied,
	ColTotalAmount,
}
