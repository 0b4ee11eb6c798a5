package catalog_models

// Destination is a travel location as returned by GET /destinations.
type Destination struct {
	ID          string   `json:"_id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Highlights  []string `json:"highlights,omitempty"`
}

const maxCardHighlights = 3

// TopHighlights returns the highlights shown on a destination card.
func (d Destination) TopHighlights() []string {
	if len(d.Highlights) > maxCardHighlights {
		return d.Highlights[:maxCardHighlights]
	}
	return d.Highlights
}
