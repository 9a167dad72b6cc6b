package domain

import (
	"errors"
	"strings"
	"time"
)

// PropertyType is the closed set of listing categories.
type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypeHouse     PropertyType = "house"
	TypeLoft      PropertyType = "loft"
	TypePenthouse PropertyType = "penthouse"
	TypeStudio    PropertyType = "studio"
	TypeDuplex    PropertyType = "duplex"
	TypeVilla     PropertyType = "villa"
	TypeChalet    PropertyType = "chalet"
	TypeCastle    PropertyType = "castle"
)

var propertyTypes = map[PropertyType]struct{}{
	TypeApartment: {}, TypeHouse: {}, TypeLoft: {}, TypePenthouse: {},
	TypeStudio: {}, TypeDuplex: {}, TypeVilla: {}, TypeChalet: {}, TypeCastle: {},
}

// Valid reports whether t belongs to the closed enumeration.
func (t PropertyType) Valid() bool {
	_, ok := propertyTypes[t]
	return ok
}

// PropertyStatus is the mutually exclusive availability state of a listing.
// No history is retained on transitions.
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusRented    PropertyStatus = "rented"
	StatusSold      PropertyStatus = "sold"
)

func (s PropertyStatus) Valid() bool {
	return s == StatusAvailable || s == StatusRented || s == StatusSold
}

// ListingType says whether a property is offered for sale or for rent.
// It is independent of PropertyStatus.
type ListingType string

const (
	ListingSale ListingType = "sale"
	ListingRent ListingType = "rent"
)

func (l ListingType) Valid() bool {
	return l == ListingSale || l == ListingRent
}

var ErrPropertyNotFound = errors.New("property not found")
var ErrInvalidProperty = errors.New("invalid property")
var ErrForbidden = errors.New("access forbidden")

// Price is a structured monetary amount. Listings marketed "on request" keep
// Amount at zero (undisclosed) and carry only the display text.
type Price struct {
	Amount   int64  `json:"amount" bson:"amount"`
	Currency string `json:"currency" bson:"currency"`
	Display  string `json:"display" bson:"display"`
}

// Disclosed reports whether the listing carries a usable numeric price.
func (p Price) Disclosed() bool {
	return p.Amount > 0
}

// ContactInfo identifies the person handling enquiries for a listing.
// It is only exposed to authenticated members.
type ContactInfo struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}

// Property is the core aggregate of the listing catalogue.
type Property struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	City         string         `json:"city"`
	Neighborhood string         `json:"neighborhood"`
	Address      string         `json:"address,omitempty"` // optional, withheld for privacy
	Type         PropertyType   `json:"type"`
	Rooms        float64        `json:"rooms"` // half-room granularity, e.g. 4.5
	Surface      float64        `json:"surface"`
	Status       PropertyStatus `json:"status"`
	ListingType  ListingType    `json:"listing_type"`
	Price        Price          `json:"price"`
	Images       []string       `json:"images"` // first element is the primary image
	VideoURL     string         `json:"video_url,omitempty"`
	Features     []string       `json:"features"`
	Contact      *ContactInfo   `json:"contact,omitempty"`
	Views        int64          `json:"views"`
	Inquiries    int64          `json:"inquiries"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Validate checks the structural invariants of a property.
func (p *Property) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errInvalid("title must not be empty")
	}
	if !p.Type.Valid() {
		return errInvalid("unknown property type " + string(p.Type))
	}
	if !p.Status.Valid() {
		return errInvalid("unknown status " + string(p.Status))
	}
	if !p.ListingType.Valid() {
		return errInvalid("unknown listing type " + string(p.ListingType))
	}
	if p.Rooms <= 0 {
		return errInvalid("rooms must be positive")
	}
	if p.Surface <= 0 {
		return errInvalid("surface must be positive")
	}
	for _, f := range p.Features {
		if strings.TrimSpace(f) == "" {
			return errInvalid("features must be non-empty strings")
		}
	}
	return nil
}

func errInvalid(msg string) error {
	return &invalidPropertyError{msg: msg}
}

type invalidPropertyError struct {
	msg string
}

func (e *invalidPropertyError) Error() string { return "invalid property: " + e.msg }

func (e *invalidPropertyError) Is(target error) bool { return target == ErrInvalidProperty }

// PropertyPatch is a partial update. Nil fields leave the base value
// untouched; set fields override it. Apply validates the merged result so a
// patch can never break an invariant (e.g. drive rooms non-positive).
type PropertyPatch struct {
	Title        *string         `json:"title,omitempty"`
	Description  *string         `json:"description,omitempty"`
	City         *string         `json:"city,omitempty"`
	Neighborhood *string         `json:"neighborhood,omitempty"`
	Address      *string         `json:"address,omitempty"`
	Type         *PropertyType   `json:"type,omitempty"`
	Rooms        *float64        `json:"rooms,omitempty"`
	Surface      *float64        `json:"surface,omitempty"`
	Status       *PropertyStatus `json:"status,omitempty"`
	ListingType  *ListingType    `json:"listing_type,omitempty"`
	Price        *Price          `json:"price,omitempty"`
	Images       *[]string       `json:"images,omitempty"`
	VideoURL     *string         `json:"video_url,omitempty"`
	Features     *[]string       `json:"features,omitempty"`
	Contact      *ContactInfo    `json:"contact,omitempty"`
}

// Apply merges the patch onto base, field by field, and returns the merged
// property after validation. base is not mutated.
func (patch PropertyPatch) Apply(base Property) (Property, error) {
	merged := base
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.City != nil {
		merged.City = *patch.City
	}
	if patch.Neighborhood != nil {
		merged.Neighborhood = *patch.Neighborhood
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	if patch.Type != nil {
		merged.Type = *patch.Type
	}
	if patch.Rooms != nil {
		merged.Rooms = *patch.Rooms
	}
	if patch.Surface != nil {
		merged.Surface = *patch.Surface
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}
	if patch.ListingType != nil {
		merged.ListingType = *patch.ListingType
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.Images != nil {
		merged.Images = append([]string(nil), (*patch.Images)...)
	}
	if patch.VideoURL != nil {
		merged.VideoURL = *patch.VideoURL
	}
	if patch.Features != nil {
		merged.Features = append([]string(nil), (*patch.Features)...)
	}
	if patch.Contact != nil {
		contact := *patch.Contact
		merged.Contact = &contact
	}
	if err := merged.Validate(); err != nil {
		return Property{}, err
	}
	return merged, nil
}
