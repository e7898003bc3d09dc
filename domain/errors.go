package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrProductNotFound = errors.New("product not found")
	ErrDataMissing     = errors.New("data missing")
	ErrSchema          = errors.New("schema error")
)

// PricingError classifies a failed price query. Kind is one of the Err*
// sentinels above; Message is safe to show to API clients.
type PricingError struct {
	Kind      error
	ProductID int64
	Source    DatasetGroup
	Column    string
	Message   string
	Err       error
}

func (e *PricingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PricingError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindName returns a stable label for err, used for metrics and logs.
func KindName(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, ErrDataMissing):
		return "data_missing"
	case errors.Is(err, ErrSchema):
		return "schema_error"
	default:
		return "error"
	}
}
