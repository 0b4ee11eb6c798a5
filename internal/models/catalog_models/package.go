package catalog_models

// Package is a priced tour offering as returned by GET /packages.
// DestinationSlug references a Destination but is not checked here.
type Package struct {
	ID              string   `json:"_id"`
	Title           string   `json:"title"`
	Price           float64  `json:"price"`
	Days            int      `json:"days"`
	DestinationSlug string   `json:"destination_slug"`
	Image           string   `json:"image,omitempty"`
	Includes        []string `json:"includes,omitempty"`
}

const maxCardIncludes = 4

func (p Package) TopIncludes() []string {
	if len(p.Includes) > maxCardIncludes {
		return p.Includes[:maxCardIncludes]
	}
	return p.Includes
}
