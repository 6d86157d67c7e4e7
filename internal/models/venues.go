package models

// Venue is one row of venues.csv. Tags, Residents and PhotoURLs stay as the
// comma-joined strings the file stores; clients split them for display.
type Venue struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Type      string `json:"type"`
	Bio       string `json:"bio"`
	Tags      string `json:"tags"`
	Residents string `json:"residents"`
	PhotoURLs string `json:"photourls"`
}

// Host is one row of hosts.csv.
type Host struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photoUrl"`
	Tags     string `json:"tags"`
}
