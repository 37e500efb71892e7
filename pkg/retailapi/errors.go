package retailapi

import "fmt"

// DataServiceError reports a failed call to the aggregation API: transport
// failure, timeout, non-2xx status or an undecodable body.
type DataServiceError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *DataServiceError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("retailapi %s: API request failed: %d %s", e.Op, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("retailapi %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("retailapi %s: request failed", e.Op)
	}
}

func (e *DataServiceError) Unwrap() error {
	return e.Err
}
