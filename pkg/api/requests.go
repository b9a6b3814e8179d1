package api

// Request payloads for the mutating endpoints. Validation tags mirror
// what the backend enforces so obviously bad input fails before a round
// trip; the backend remains the authority.

// CategoryCreate is the body for POST /parts/categories.
type CategoryCreate struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `json:"sort_order"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// CategoryUpdate is the body for PUT /parts/categories/{id}. Nil fields
// are left untouched by the backend.
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// StyleCreate is the body for POST /parts/styles.
type StyleCreate struct {
	CategoryID  int     `json:"category_id" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `json:"sort_order"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// StyleUpdate is the body for PUT /parts/styles/{id}.
type StyleUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// TypeCreate is the body for POST /parts/types.
type TypeCreate struct {
	StyleID     int     `json:"style_id" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `json:"sort_order"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// TypeUpdate is the body for PUT /parts/types/{id}.
type TypeUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// ColorCreate is the body for POST /parts/colors.
type ColorCreate struct {
	Name      string  `json:"name" validate:"required,min=1,max=50"`
	HexCode   *string `json:"hex_code,omitempty" validate:"omitempty,hexcolor"`
	SortOrder int     `json:"sort_order"`
}

// ColorUpdate is the body for PUT /parts/colors/{id}.
type ColorUpdate struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	HexCode   *string `json:"hex_code,omitempty" validate:"omitempty,hexcolor"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

// BrandCreate is the body for POST /parts/brands.
type BrandCreate struct {
	Name    string  `json:"name" validate:"required,min=1,max=100"`
	Website *string `json:"website,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// BrandUpdate is the body for PUT /parts/brands/{id}.
type BrandUpdate struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Website  *string `json:"website,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// PartCreate is the body for POST /parts/catalog.
type PartCreate struct {
	Code                   *string `json:"code,omitempty"`
	Name                   string  `json:"name" validate:"required,min=1"`
	Description            *string `json:"description,omitempty"`
	PartType               string  `json:"part_type" validate:"required,oneof=general specific"`
	TypeID                 *int    `json:"type_id,omitempty"`
	BrandID                *int    `json:"brand_id,omitempty"`
	ColorID                *int    `json:"color_id,omitempty"`
	ManufacturerPartNumber *string `json:"manufacturer_part_number,omitempty"`
	UnitOfMeasure          string  `json:"unit_of_measure"`
	Notes                  *string `json:"notes,omitempty"`
}

// PartUpdate is the body for PUT /parts/catalog/{id}. Pricing is not
// updatable here; it has its own endpoint.
type PartUpdate struct {
	Code                   *string `json:"code,omitempty"`
	Name                   *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description            *string `json:"description,omitempty"`
	ManufacturerPartNumber *string `json:"manufacturer_part_number,omitempty"`
	UnitOfMeasure          *string `json:"unit_of_measure,omitempty"`
	IsDeprecated           *bool   `json:"is_deprecated,omitempty"`
	DeprecationReason      *string `json:"deprecation_reason,omitempty"`
	Notes                  *string `json:"notes,omitempty"`
	ImageURL               *string `json:"image_url,omitempty"`
}

// PricingUpdate is the body for PUT /parts/catalog/{id}/pricing. The
// sell price is a generated column; only cost and markup are sent.
type PricingUpdate struct {
	CompanyCostPrice     string `json:"company_cost_price" validate:"required"`
	CompanyMarkupPercent string `json:"company_markup_percent" validate:"required"`
}

// PartSearchParams are the query parameters for GET /parts/catalog.
type PartSearchParams struct {
	Search       string
	PartType     string
	BrandID      *int
	IsDeprecated *bool
	SortBy       string
	SortDir      string
	Page         int
	PageSize     int
}

// QuickCreateRequest is the body for POST /parts/types/{id}/quick-create.
// The backend derives the part name and hierarchy placement from the
// (type, brand, color) coordinate; the client supplies only the ids.
type QuickCreateRequest struct {
	BrandID *int `json:"brand_id"`
	ColorID int  `json:"color_id" validate:"required,gt=0"`
}

// TypeColorLinkCreate is the body for POST /parts/types/{id}/colors
// (bulk link).
type TypeColorLinkCreate struct {
	ColorIDs []int `json:"color_ids" validate:"required,min=1,dive,gt=0"`
}

// TypeBrandLinkCreate is the body for POST /parts/types/{id}/brands.
// BrandID nil enables the General (unbranded) slot.
type TypeBrandLinkCreate struct {
	BrandID *int `json:"brand_id"`
}

// AlternativeCreate is the body for POST /parts/catalog/{id}/alternatives.
type AlternativeCreate struct {
	AlternativePartID int     `json:"alternative_part_id" validate:"required,gt=0"`
	Relationship      string  `json:"relationship" validate:"required,oneof=substitute upgrade compatible"`
	Preference        int     `json:"preference" validate:"oneof=0 1"`
	Notes             *string `json:"notes,omitempty"`
}

// AlternativeUpdate is the body for PUT /parts/alternatives/{linkId}.
// The linked part itself is immutable after creation.
type AlternativeUpdate struct {
	Relationship *string `json:"relationship,omitempty" validate:"omitempty,oneof=substitute upgrade compatible"`
	Preference   *int    `json:"preference,omitempty" validate:"omitempty,oneof=0 1"`
	Notes        *string `json:"notes,omitempty"`
}
