package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the top level of the parts hierarchy.
type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `json:"sort_order"`
	IsActive    bool    `json:"is_active"`
	ImageURL    *string `json:"image_url,omitempty"`
	StyleCount  int     `json:"style_count"`
	PartCount   int     `json:"part_count"`
}

// Style groups types within a category.
type Style struct {
	ID           int     `json:"id"`
	CategoryID   int     `json:"category_id"`
	CategoryName *string `json:"category_name,omitempty"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	SortOrder    int     `json:"sort_order"`
	IsActive     bool    `json:"is_active"`
	ImageURL     *string `json:"image_url,omitempty"`
	TypeCount    int     `json:"type_count"`
	PartCount    int     `json:"part_count"`
}

// Type is the functional variety within a style. Parts hang off a type
// through its brand and color links.
type Type struct {
	ID           int     `json:"id"`
	StyleID      int     `json:"style_id"`
	StyleName    *string `json:"style_name,omitempty"`
	CategoryName *string `json:"category_name,omitempty"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	SortOrder    int     `json:"sort_order"`
	IsActive     bool    `json:"is_active"`
	ImageURL     *string `json:"image_url,omitempty"`
	ColorCount   int     `json:"color_count"`
	PartCount    int     `json:"part_count"`
}

// Color is a global lookup entity shared across all types.
type Color struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	HexCode   *string `json:"hex_code,omitempty"`
	SortOrder int     `json:"sort_order"`
	IsActive  bool    `json:"is_active"`
	PartCount int     `json:"part_count"`
}

// TypeColorLink records that a color is valid for a type. A part for a
// (type, color) pair can only exist once this link does.
type TypeColorLink struct {
	ID        int     `json:"id"`
	TypeID    int     `json:"type_id"`
	ColorID   int     `json:"color_id"`
	ColorName *string `json:"color_name,omitempty"`
	HexCode   *string `json:"hex_code,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
	SortOrder int     `json:"sort_order"`
}

// TypeBrandLink enables a brand for a type. BrandID nil means "General"
// (unbranded commodity parts); the server reports BrandName "General"
// for that case.
type TypeBrandLink struct {
	ID        int        `json:"id"`
	TypeID    int        `json:"type_id"`
	BrandID   *int       `json:"brand_id,omitempty"`
	BrandName string     `json:"brand_name"`
	PartCount int        `json:"part_count"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Brand is a global manufacturer entity.
type Brand struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Website       *string    `json:"website,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	IsActive      bool       `json:"is_active"`
	PartCount     int        `json:"part_count"`
	SupplierCount int        `json:"supplier_count"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// BrandSupplierLink says a supplier carries a brand.
type BrandSupplierLink struct {
	ID            int     `json:"id"`
	BrandID       int     `json:"brand_id"`
	BrandName     *string `json:"brand_name,omitempty"`
	SupplierID    int     `json:"supplier_id"`
	SupplierName  *string `json:"supplier_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	IsActive      bool    `json:"is_active"`
}

// Supplier is the read-side view of a supplier. Supplier management
// forms live elsewhere; voltdesk only lists them.
type Supplier struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Website     *string `json:"website,omitempty"`
	RepName     *string `json:"rep_name,omitempty"`
	RepPhone    *string `json:"rep_phone,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// Part is the leaf of the hierarchy, addressed by (type, brand, color).
type Part struct {
	ID                     int              `json:"id"`
	Code                   *string          `json:"code,omitempty"`
	Name                   string           `json:"name"`
	Description            *string          `json:"description,omitempty"`
	PartType               string           `json:"part_type"` // "general" or "specific" (branded)
	CategoryID             *int             `json:"category_id,omitempty"`
	CategoryName           *string          `json:"category_name,omitempty"`
	StyleID                *int             `json:"style_id,omitempty"`
	StyleName              *string          `json:"style_name,omitempty"`
	TypeID                 *int             `json:"type_id,omitempty"`
	TypeName               *string          `json:"type_name,omitempty"`
	BrandID                *int             `json:"brand_id,omitempty"`
	BrandName              *string          `json:"brand_name,omitempty"`
	ColorID                *int             `json:"color_id,omitempty"`
	ColorName              *string          `json:"color_name,omitempty"`
	ManufacturerPartNumber *string          `json:"manufacturer_part_number,omitempty"`
	UnitOfMeasure          string           `json:"unit_of_measure"`
	CompanyCostPrice       *decimal.Decimal `json:"company_cost_price,omitempty"`
	CompanyMarkupPercent   *decimal.Decimal `json:"company_markup_percent,omitempty"`
	CompanySellPrice       *decimal.Decimal `json:"company_sell_price,omitempty"`
	TotalStock             int              `json:"total_stock"`
	IsDeprecated           bool             `json:"is_deprecated"`
	DeprecationReason      *string          `json:"deprecation_reason,omitempty"`
	Notes                  *string          `json:"notes,omitempty"`
	ImageURL               *string          `json:"image_url,omitempty"`
	CreatedAt              *time.Time       `json:"created_at,omitempty"`
	UpdatedAt              *time.Time       `json:"updated_at,omitempty"`
}

// TypeBrandPart is the compact part row returned for a type+brand combo,
// one per linked color. It powers the color-chip view and quick-create.
type TypeBrandPart struct {
	ID                     int              `json:"id"`
	Name                   string           `json:"name"`
	Code                   *string          `json:"code,omitempty"`
	PartType               string           `json:"part_type"`
	ColorID                *int             `json:"color_id,omitempty"`
	ColorName              *string          `json:"color_name,omitempty"`
	HexCode                *string          `json:"hex_code,omitempty"`
	BrandID                *int             `json:"brand_id,omitempty"`
	BrandName              *string          `json:"brand_name,omitempty"`
	ManufacturerPartNumber *string          `json:"manufacturer_part_number,omitempty"`
	CompanyCostPrice       *decimal.Decimal `json:"company_cost_price,omitempty"`
	CompanySellPrice       *decimal.Decimal `json:"company_sell_price,omitempty"`
	UnitOfMeasure          string           `json:"unit_of_measure"`
	ImageURL               *string          `json:"image_url,omitempty"`
	IsDeprecated           bool             `json:"is_deprecated"`
	TotalStock             int              `json:"total_stock"`
	HasPendingPartNumber   bool             `json:"has_pending_part_number"`
}

// Alternative relationship kinds.
const (
	RelationshipSubstitute = "substitute"
	RelationshipUpgrade    = "upgrade"
	RelationshipCompatible = "compatible"
)

// PartAlternative is one undirected link between two parts. A single row
// serves both parts' alternative lists; callers must resolve which side
// is "the other part" relative to the part they are viewing.
type PartAlternative struct {
	ID                   int        `json:"id"`
	PartID               int        `json:"part_id"`
	AlternativePartID    int        `json:"alternative_part_id"`
	Relationship         string     `json:"relationship"`
	Preference           int        `json:"preference"` // 0 or 1; 1 = preferred
	Notes                *string    `json:"notes,omitempty"`
	CreatedAt            *time.Time `json:"created_at,omitempty"`
	PartName             string     `json:"part_name"`
	PartCode             *string    `json:"part_code,omitempty"`
	AlternativeName      string     `json:"alternative_name"`
	AlternativeCode      *string    `json:"alternative_code,omitempty"`
	AlternativeBrandName *string    `json:"alternative_brand_name,omitempty"`
}

// Page is a paginated list response.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}
