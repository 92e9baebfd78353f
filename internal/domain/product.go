package domain

import (
	"time"
)

// StockStatus describes the availability of a product.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockOnOrder    StockStatus = "on_order"
	StockOutOfStock StockStatus = "out_of_stock"
)

// ParseStockStatus maps a raw stock value to a StockStatus. Unknown or
// malformed values default to in_stock, matching the storefront's policy of
// never hiding a product because of bad upstream data.
func ParseStockStatus(raw string) StockStatus {
	switch StockStatus(raw) {
	case StockInStock, StockOnOrder, StockOutOfStock:
		return StockStatus(raw)
	default:
		return StockInStock
	}
}

// ProductRecord is one catalog entry mirrored from the remote product store.
type ProductRecord struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Slug             string      `json:"slug"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"short_description"`
	BrandID          string      `json:"brand_id"`
	BrandName        string      `json:"brand_name"`
	CategoryIDs      []string    `json:"category_ids"`
	SubCategoryIDs   []string    `json:"subcategory_ids"`
	Price            float64     `json:"price"`
	OriginalPrice    float64     `json:"original_price"`
	Stock            StockStatus `json:"stock"`
	SKU              string      `json:"sku"`
	Images           []string    `json:"images"`
	QualityScore     float64     `json:"quality_score"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
