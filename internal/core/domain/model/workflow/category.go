package workflow

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// StatusCategory partitions the externally configured status catalog.
// Derived-status lookups only accept names that belong to the category
// a milestone step is bound to.
type StatusCategory int

const (
	// CategoryUnknown catches uninitialized StatusCategory values.
	CategoryUnknown StatusCategory = iota

	// CategoryOrder covers order lifecycle statuses.
	CategoryOrder

	// CategoryPayment covers payment lifecycle statuses.
	CategoryPayment

	// CategoryDelivery covers delivery leg statuses.
	CategoryDelivery
)

func getCategoryStrings() map[StatusCategory]string {
	return map[StatusCategory]string{
		CategoryUnknown:  "UNKNOWN",
		CategoryOrder:    "ORDER",
		CategoryPayment:  "PAYMENT",
		CategoryDelivery: "DELIVERY",
	}
}

func getValidCategoryStrings() map[StatusCategory]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[StatusCategory]string{
		CategoryOrder:    "ORDER",
		CategoryPayment:  "PAYMENT",
		CategoryDelivery: "DELIVERY",
	}
}

// CategoryFromString resolves a catalog category by its stored name.
func CategoryFromString(s string) (StatusCategory, error) {
	for category, name := range getValidCategoryStrings() {
		if name == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("statusCategory", fmt.Errorf("%q is not a known category", s))
}

// Validate reports whether the category is one of ORDER, PAYMENT, DELIVERY.
func (c StatusCategory) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("statusCategory", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the catalog name of the category.
func (c StatusCategory) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "UNKNOWN"
}
