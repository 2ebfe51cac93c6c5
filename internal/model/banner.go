package model

import "time"

type Banner struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Subtitle        string     `json:"subtitle,omitempty"`
	Message         string     `json:"message"`
	Type            string     `json:"type"`
	BackgroundColor string     `json:"backgroundColor"`
	TextColor       string     `json:"textColor"`
	ButtonText      string     `json:"buttonText,omitempty"`
	ButtonLink      string     `json:"buttonLink,omitempty"`
	IsActive        bool       `json:"isActive"`
	Priority        int        `json:"priority"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// BannerUpdate carries a partial banner update; nil fields are left
// unchanged. StartDate and EndDate cannot be cleared through an update,
// only replaced.
type BannerUpdate struct {
	Title           *string    `json:"title"`
	Subtitle        *string    `json:"subtitle"`
	Message         *string    `json:"message"`
	Type            *string    `json:"type"`
	BackgroundColor *string    `json:"backgroundColor"`
	TextColor       *string    `json:"textColor"`
	ButtonText      *string    `json:"buttonText"`
	ButtonLink      *string    `json:"buttonLink"`
	IsActive        *bool      `json:"isActive"`
	Priority        *int       `json:"priority"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
}

// ActiveAt reports whether the banner should be shown at t: it must be
// flagged active and t must fall inside the optional display window.
func (b Banner) ActiveAt(t time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartDate != nil && b.StartDate.After(t) {
		return false
	}
	if b.EndDate != nil && b.EndDate.Before(t) {
		return false
	}
	return true
}
