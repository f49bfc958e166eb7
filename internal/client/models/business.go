package models

import "time"

// Business is a venue listed by GET /business.
type Business struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	AvatarURL          string   `json:"avatar_url,omitempty"`
	CategoryName       string   `json:"category_name,omitempty"`
	CategorySlug       string   `json:"category_slug,omitempty"`
	DefaultVisitCredit int      `json:"default_visit_credit"`
	Requirements       []string `json:"requirements,omitempty"`
}

// Category is a business category used for filtering.
type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Slot is a bookable visit window for a business.
type Slot struct {
	Start     time.Time `json:"slot_start"`
	End       time.Time `json:"slot_end"`
	Available int       `json:"available"`
}

// City is a supported city, referenced by creator applications.
type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreatorApplication is the body of POST /apply/creator. At least one social
// link must be set; the check belongs to the caller, the server enforces it too.
type CreatorApplication struct {
	CityID        string `json:"city_id"`
	InstagramLink string `json:"instagram_link,omitempty"`
	TikTokLink    string `json:"tiktok_link,omitempty"`
}

// CreatorProfile reports the state of a creator application.
type CreatorProfile struct {
	Status string `json:"status"`
}
