package domain

import "time"

// Visit is one recorded hit against a tracked site.
type Visit struct {
	ID         int64     `json:"id"`
	SiteID     string    `json:"site_id"`
	Message    string    `json:"message"`
	IP         string    `json:"ip"`
	Country    string    `json:"country"`
	UserAgent  string    `json:"user_agent"`
	DeviceType string    `json:"device_type"`
	Browser    string    `json:"browser"`
	OS         string    `json:"os"`
	URL        *string   `json:"url"`
	Referrer   *string   `json:"referrer"`
	CreatedAt  time.Time `json:"created_at"`
}
