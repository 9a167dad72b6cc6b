package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type priceRequest struct {
	// Amount 0 with a non-empty Display means "price on request".
	Amount   int64  `json:"amount"   validate:"gte=0"`
	Currency string `json:"currency"`
	Display  string `json:"display"`
}

type contactRequest struct {
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type createPropertyRequest struct {
	Title        string          `json:"title"        validate:"required"`
	Description  string          `json:"description"`
	City         string          `json:"city"         validate:"required"`
	Neighborhood string          `json:"neighborhood"`
	Address      string          `json:"address"`
	Type         string          `json:"type"         validate:"required,oneof=apartment house loft penthouse studio duplex villa chalet castle"`
	Rooms        float64         `json:"rooms"        validate:"required,gt=0"`
	Surface      float64         `json:"surface"      validate:"required,gt=0"`
	Status       string          `json:"status"       validate:"omitempty,oneof=available rented sold"`
	ListingType  string          `json:"listing_type" validate:"required,oneof=sale rent"`
	Price        priceRequest    `json:"price"`
	Images       []string        `json:"images"`
	VideoURL     string          `json:"video_url"`
	Features     []string        `json:"features"`
	Contact      *contactRequest `json:"contact"`
}

// updatePropertyRequest is bound straight into a domain patch: absent JSON
// fields stay nil and leave the stored value untouched. Validation happens
// on the merged result, not the sparse patch.

// --- Response types ---
//
// Transport-owned so the JSON contract is not coupled to internal domain
// changes.

type priceResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Display  string `json:"display"`
}

type contactResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type propertyResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	City         string           `json:"city"`
	Neighborhood string           `json:"neighborhood"`
	Address      string           `json:"address,omitempty"`
	Type         string           `json:"type"`
	Rooms        float64          `json:"rooms"`
	Surface      float64          `json:"surface"`
	Status       string           `json:"status"`
	ListingType  string           `json:"listing_type"`
	Price        priceResponse    `json:"price"`
	Images       []string         `json:"images"`
	VideoURL     string           `json:"video_url,omitempty"`
	Features     []string         `json:"features"`
	Contact      *contactResponse `json:"contact,omitempty"`
	Views        int64            `json:"views"`
	Inquiries    int64            `json:"inquiries"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type paginationResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

type listPropertiesResponse struct {
	Data       []propertyResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
