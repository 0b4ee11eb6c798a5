package response_models

import (
	"wanderworld/internal/models/catalog_models"
	"wanderworld/internal/storefront"
)

type StorefrontView struct {
	Loading       bool                         `json:"loading"`
	Destinations  []catalog_models.Destination `json:"destinations"`
	Packages      []catalog_models.Package     `json:"packages"`
	SelectedSlug  string                       `json:"selected_slug"`
	Draft         catalog_models.InquiryDraft  `json:"draft"`
	Status        storefront.Status            `json:"status"`
	StatusMessage string                       `json:"status_message,omitempty"`
}

func NewStorefrontView(v *storefront.View) StorefrontView {
	return StorefrontView{
		Loading:       v.Loading,
		Destinations:  v.Destinations,
		Packages:      v.Packages,
		SelectedSlug:  v.SelectedSlug,
		Draft:         v.Draft,
		Status:        v.Status,
		StatusMessage: v.Status.Message(),
	}
}
