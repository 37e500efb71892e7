package router

import (
	"fmt"

	"retail-insights/internal/model"
)

// RoutingError means the intent kind is outside the closed set.
type RoutingError struct {
	Kind model.IntentKind
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("unsupported intent type: %s", e.Kind)
}
