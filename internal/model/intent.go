package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// IntentKind is the top-level category of a user question.
type IntentKind string

const (
	IntentCustomer       IntentKind = "customer"
	IntentProduct        IntentKind = "product"
	IntentBusinessMetric IntentKind = "business_metric"
)

// IntentKinds lists every accepted kind, in schema order.
var IntentKinds = []IntentKind{IntentCustomer, IntentProduct, IntentBusinessMetric}

// Valid reports whether k is one of the known kinds.
func (k IntentKind) Valid() bool {
	for _, known := range IntentKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Intent is the structured reading of a user question.
// It is well-formed but may be incomplete, e.g. a customer intent without a
// customer_id. Deciding what to do about that belongs to the router.
type Intent struct {
	Kind       IntentKind `json:"intent"`
	CustomerID *int64     `json:"customer_id"`
	ProductID  *string    `json:"product_id"`
	Metric     *string    `json:"metric"`
	TopN       *int       `json:"top_n"`
	DateRange  *string    `json:"date_range"`
}

// SchemaValidationError lists every reason a candidate intent was rejected.
type SchemaValidationError struct {
	Violations []string
}

func (e *SchemaValidationError) Error() string {
	return "invalid intent: " + strings.Join(e.Violations, "; ")
}

const intentSchema = `{
  "type": "object",
  "required": ["intent"],
  "properties": {
    "intent":      {"type": "string", "enum": ["customer", "product", "business_metric"]},
    "customer_id": {"type": ["integer", "null"], "minimum": 0},
    "product_id":  {"type": ["string", "null"], "minLength": 1},
    "metric":      {"type": ["string", "null"]},
    "top_n":       {"type": ["integer", "null"], "minimum": 1},
    "date_range":  {"type": ["string", "null"]}
  }
}`

var compiledIntentSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(intentSchema))
})

// wireIntent keeps numbers as json.Number so integral floats such as 7.0,
// which the schema accepts as integers, still decode.
type wireIntent struct {
	Kind       IntentKind   `json:"intent"`
	CustomerID *json.Number `json:"customer_id"`
	ProductID  *string      `json:"product_id"`
	Metric     *string      `json:"metric"`
	TopN       *json.Number `json:"top_n"`
	DateRange  *string      `json:"date_range"`
}

// ParseIntent validates a JSON document against the intent schema and decodes it.
// Unknown fields are ignored.
func ParseIntent(raw []byte) (Intent, error) {
	if !json.Valid(raw) {
		return Intent{}, &SchemaValidationError{Violations: []string{"document is not valid JSON"}}
	}

	schema, err := compiledIntentSchema()
	if err != nil {
		return Intent{}, fmt.Errorf("compile intent schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return Intent{}, &SchemaValidationError{Violations: []string{err.Error()}}
	}
	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}
		return Intent{}, &SchemaValidationError{Violations: violations}
	}

	var w wireIntent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&w); err != nil {
		return Intent{}, &SchemaValidationError{Violations: []string{err.Error()}}
	}

	intent := Intent{
		Kind:      w.Kind,
		ProductID: w.ProductID,
		Metric:    w.Metric,
		DateRange: w.DateRange,
	}
	if w.CustomerID != nil {
		id, err := integral(*w.CustomerID)
		if err != nil {
			return Intent{}, &SchemaValidationError{Violations: []string{"customer_id: " + err.Error()}}
		}
		intent.CustomerID = &id
	}
	if w.TopN != nil {
		n, err := integral(*w.TopN)
		if err != nil || n > math.MaxInt32 {
			return Intent{}, &SchemaValidationError{Violations: []string{"top_n: out of range"}}
		}
		topN := int(n)
		intent.TopN = &topN
	}

	return intent, nil
}

// Validate applies the schema rules to an Intent built in code.
func (i Intent) Validate() error {
	var violations []string
	if !i.Kind.Valid() {
		violations = append(violations, fmt.Sprintf("intent: must be one of %v", IntentKinds))
	}
	if i.CustomerID != nil && *i.CustomerID < 0 {
		violations = append(violations, "customer_id: must be greater than or equal to 0")
	}
	if i.ProductID != nil && *i.ProductID == "" {
		violations = append(violations, "product_id: must not be empty")
	}
	if i.TopN != nil && *i.TopN < 1 {
		violations = append(violations, "top_n: must be greater than or equal to 1")
	}
	if len(violations) > 0 {
		return &SchemaValidationError{Violations: violations}
	}
	return nil
}

func integral(n json.Number) (int64, error) {
	if v, err := n.Int64(); err == nil {
		return v, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%s is not an integer", n)
	}
	return int64(f), nil
}
