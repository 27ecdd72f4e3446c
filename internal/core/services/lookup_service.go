package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
)

const DefaultLookupTimeout = 8 * time.Second

type LookupService struct {
	provider domain.ProductLookup
	timeout  time.Duration
}

func NewLookupService(provider domain.ProductLookup, timeout time.Duration) *LookupService {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &LookupService{
		provider: provider,
		timeout:  timeout,
	}
}

// ResolveFoodPrefillFromBarcode returns found=false with a barcode-only prefill when
// the provider has no product. Provider failures are wrapped in ErrLookupFailed.
func (s *LookupService) ResolveFoodPrefillFromBarcode(ctx context.Context, barcode string) (domain.FoodPrefill, bool, error) {
	code, err := domain.NormalizeBarcode(barcode)
	if err != nil {
		return domain.FoodPrefill{}, false, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prefill, found, err := s.provider.LookupBarcode(ctx, code)
	if err != nil {
		log.Printf("[LOOKUP] barcode %s failed: %v", code, err)
		if errors.Is(err, domain.ErrLookupFailed) {
			return domain.FoodPrefill{}, false, err
		}
		return domain.FoodPrefill{}, false, fmt.Errorf("%w: %w", domain.ErrLookupFailed, err)
	}
	if !found {
		return domain.FoodPrefill{Barcode: code}, false, nil
	}

	prefill.Barcode = code
	return prefill, true, nil
}
