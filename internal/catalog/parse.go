// Package catalog mirrors product records from the remote document store:
// an HTTP client for the store and brand directory, a defensive parsing
// boundary for its loosely-typed records, and a TTL-bounded snapshot cache
// with a serve-stale-on-failure policy.
package catalog

import (
	"log/slog"
	"time"

	"github.com/emveka/beautydiscountnext-sub000/internal/domain"
)

// RawProduct is one untyped record as returned by the remote store. All
// schema drift is absorbed here: fields may be missing, null, or of the
// wrong type, and parsing substitutes defaults instead of failing.
type RawProduct map[string]any

// ParseProduct maps a raw record to a typed ProductRecord, defaulting
// per-field: missing text fields become empty strings, missing numerics 0,
// unknown stock values in_stock. It never returns an error.
func ParseProduct(raw RawProduct) domain.ProductRecord {
	return domain.ProductRecord{
		ID:               stringField(raw, "id"),
		Name:             stringField(raw, "name"),
		Slug:             stringField(raw, "slug"),
		Description:      stringField(raw, "description"),
		ShortDescription: stringField(raw, "short_description"),
		BrandID:          stringField(raw, "brand_id"),
		BrandName:        stringField(raw, "brand_name"),
		CategoryIDs:      stringSliceField(raw, "category_ids"),
		SubCategoryIDs:   stringSliceField(raw, "subcategory_ids"),
		Price:            floatField(raw, "price"),
		OriginalPrice:    floatField(raw, "original_price"),
		Stock:            domain.ParseStockStatus(stringField(raw, "stock")),
		SKU:              stringField(raw, "sku"),
		Images:           stringSliceField(raw, "images"),
		QualityScore:     floatField(raw, "quality_score"),
		CreatedAt:        timeField(raw, "created_at"),
		UpdatedAt:        timeField(raw, "updated_at"),
	}
}

// ParseCatalog converts a batch of raw records, skipping records without an
// id and recovering from any per-record panic so one bad record never aborts
// a catalog load.
func ParseCatalog(raws []RawProduct, logger *slog.Logger) []domain.ProductRecord {
	products := make([]domain.ProductRecord, 0, len(raws))
	for i, raw := range raws {
		p, ok := parseOne(raw, i, logger)
		if !ok || p.ID == "" {
			continue
		}
		products = append(products, p)
	}
	return products
}

func parseOne(raw RawProduct, index int, logger *slog.Logger) (p domain.ProductRecord, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Warn("skipping unparsable catalog record",
				slog.Int("index", index),
				slog.Any("panic", rec),
			)
			ok = false
		}
	}()
	return ParseProduct(raw), true
}

func stringField(raw RawProduct, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

func floatField(raw RawProduct, key string) float64 {
	switch v := raw[key].(type) {
	case float64:
		if v < 0 {
			return 0
		}
		return v
	case int:
		if v < 0 {
			return 0
		}
		return float64(v)
	default:
		return 0
	}
}

func stringSliceField(raw RawProduct, key string) []string {
	switch v := raw[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func timeField(raw RawProduct, key string) time.Time {
	s, ok := raw[key].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
