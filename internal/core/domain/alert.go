package domain

import (
	"errors"
	"time"
)

var ErrAlertNotFound = errors.New("property alert not found")

// AlertCriteria is the saved-search shape a member fills in on the
// property-finder form. Zero values mean "no constraint".
type AlertCriteria struct {
	Type        PropertyType `json:"type,omitempty" bson:"type,omitempty"`
	ListingType ListingType  `json:"listing_type,omitempty" bson:"listing_type,omitempty"`
	City        string       `json:"city,omitempty" bson:"city,omitempty"`
	MinRooms    float64      `json:"min_rooms,omitempty" bson:"min_rooms,omitempty"`
	MinSurface  float64      `json:"min_surface,omitempty" bson:"min_surface,omitempty"`
	MaxPrice    int64        `json:"max_price,omitempty" bson:"max_price,omitempty"`
	Features    []string     `json:"features,omitempty" bson:"features,omitempty"`
}

// PropertyAlert is a member's standing search. New listings are matched
// against active alerts as they are created.
type PropertyAlert struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"owner_id"`
	Label     string        `json:"label"`
	Criteria  AlertCriteria `json:"criteria"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"created_at"`
}

// AlertMatch records that a listing satisfied an alert's criteria.
type AlertMatch struct {
	ID         string    `json:"id"`
	AlertID    string    `json:"alert_id"`
	OwnerID    string    `json:"owner_id"`
	PropertyID string    `json:"property_id"`
	MatchedAt  time.Time `json:"matched_at"`
}
