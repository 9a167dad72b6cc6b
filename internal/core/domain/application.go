package domain

import (
	"errors"
	"time"
)

var ErrApplicationNotFound = errors.New("membership application not found")
var ErrInvalidReview = errors.New("invalid application review")

// ApplicationStatus is the review state of a membership application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	return s == ApplicationPending || s == ApplicationApproved || s == ApplicationRejected
}

// MembershipApplication is a become-a-member form submission awaiting admin
// review. Only pending applications can be approved or rejected.
type MembershipApplication struct {
	ID          string            `json:"id"`
	FullName    string            `json:"full_name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Budget      int64             `json:"budget"` // CHF, 0 = not stated
	SearchNotes string            `json:"search_notes,omitempty"`
	Status      ApplicationStatus `json:"status"`
	ReviewNotes string            `json:"review_notes,omitempty"`
	SubmittedAt time.Time         `json:"submitted_at"`
	ReviewedAt  time.Time         `json:"reviewed_at,omitempty"`
}

// Review transitions a pending application to approved or rejected.
func (a *MembershipApplication) Review(status ApplicationStatus, notes string, at time.Time) error {
	if a.Status != ApplicationPending {
		return ErrInvalidReview
	}
	if status != ApplicationApproved && status != ApplicationRejected {
		return ErrInvalidReview
	}
	a.Status = status
	a.ReviewNotes = notes
	a.ReviewedAt = at
	return nil
}
