package models

// Helpline is a static crisis-support contact record for a region, served by
// /api/helplines. Region is a free-form label, not a country code.
type Helpline struct {
	Region  string `json:"region"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	URL     string `json:"url"`
}
