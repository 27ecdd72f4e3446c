package domain

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidBarcode = errors.New("invalid barcode (expected 8-14 digits)")
	ErrLookupFailed   = errors.New("product lookup failed")
)

var barcodeRegex = regexp.MustCompile(`^\d{8,14}$`)

// FoodPrefill carries per-100g values used to seed a new food record.
// Name is nil when the product has neither a name nor a brand.
type FoodPrefill struct {
	Barcode  string  `json:"barcode"`
	Name     *string `json:"name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

func NormalizeBarcode(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if !barcodeRegex.MatchString(code) {
		return "", ErrInvalidBarcode
	}
	return code, nil
}

type ProductLookup interface {
	// LookupBarcode reports found=false with a nil error when the provider has no such product.
	LookupBarcode(ctx context.Context, barcode string) (prefill FoodPrefill, found bool, err error)
}
