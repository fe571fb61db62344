package service

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// decimal.Decimal is opaque to the validator; expose it as a float so the
	// numeric tags (gt, gte) work on amounts.
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	return v
}

func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// validateTemplates checks the invariants the engine assumes already hold:
// positive amount, end date after start date, stride of at least one. The
// engine does not re-check these, so a violation here aborts the computation
// before any projection is generated.
func validateTemplates(templates []domain.FullFutureTransaction) error {
	for _, tpl := range templates {
		if err := validate.Struct(tpl.FutureTransaction); err != nil {
			return fmt.Errorf("template %s (%s): %w", tpl.ID, tpl.Name, err)
		}
	}
	return nil
}
