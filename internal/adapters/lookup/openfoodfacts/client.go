package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
)

const (
	DefaultBaseURL   = "https://world.openfoodfacts.org"
	defaultUserAgent = "fitjournal-engine/1.0 (+https://github.com/comitanigiacomo/fitjournal-engine)"
	maxBodyBytes     = 4 << 20
)

var _ domain.ProductLookup = (*Client)(nil)

type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type offResponse struct {
	Status  int         `json:"status"`
	Product *offProduct `json:"product"`
}

type offProduct struct {
	ProductName string         `json:"product_name"`
	Brands      string         `json:"brands"`
	Nutriments  map[string]any `json:"nutriments"`
}

// LookupBarcode returns found=false for unknown products, whether signalled by
// HTTP 404, status != 1 or a missing product object.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (domain.FoodPrefill, bool, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	ua := c.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	url := fmt.Sprintf("%s/api/v2/product/%s.json", base, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.FoodPrefill{}, false, fmt.Errorf("%w: create openfoodfacts request: %w", domain.ErrLookupFailed, err)
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return domain.FoodPrefill{}, false, fmt.Errorf("%w: execute openfoodfacts request: %w", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.FoodPrefill{}, false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.FoodPrefill{}, false, fmt.Errorf("%w: openfoodfacts request failed with status %d", domain.ErrLookupFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.FoodPrefill{}, false, fmt.Errorf("%w: read openfoodfacts response: %w", domain.ErrLookupFailed, err)
	}

	var parsed offResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return domain.FoodPrefill{}, false, fmt.Errorf("%w: decode openfoodfacts response: %w", domain.ErrLookupFailed, err)
	}
	if parsed.Status != 1 || parsed.Product == nil {
		return domain.FoodPrefill{}, false, nil
	}

	return toPrefill(barcode, parsed.Product), true, nil
}

func toPrefill(barcode string, p *offProduct) domain.FoodPrefill {
	prefill := domain.FoodPrefill{
		Barcode:  barcode,
		Calories: firstNutrient(p.Nutriments, "energy-kcal_100g", "energy-kcal"),
		ProteinG: firstNutrient(p.Nutriments, "proteins_100g"),
		CarbsG:   firstNutrient(p.Nutriments, "carbohydrates_100g"),
		FatG:     firstNutrient(p.Nutriments, "fat_100g"),
	}

	name := strings.TrimSpace(p.ProductName)
	if name == "" {
		name = strings.TrimSpace(p.Brands)
	}
	if name != "" {
		prefill.Name = &name
	}
	return prefill
}

// firstNutrient returns the first present, finite, non-negative value among keys, else 0.
func firstNutrient(n map[string]any, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := parseFloatAny(n[key]); ok && v >= 0 {
			return v
		}
	}
	return 0
}

func parseFloatAny(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
