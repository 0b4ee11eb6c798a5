package request_models

import "wanderworld/internal/models/catalog_models"

type SelectDestinationRequest struct {
	Slug string `json:"slug" form:"slug"`
}

type FilterPackagesRequest struct {
	Destination string `json:"destination" form:"destination"`
}

// PresetInquiryRequest is what the "Enquire" button of a package card posts.
type PresetInquiryRequest struct {
	PackageTitle    string `json:"package_title" form:"package_title"`
	DestinationSlug string `json:"destination_slug" form:"destination_slug"`
}

// InquiryDraftRequest carries the form fields while the visitor is typing; no
// field is mandatory yet.
type InquiryDraftRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	Message         string `json:"message" form:"message"`
	PackageTitle    string `json:"package_title" form:"package_title"`
	DestinationSlug string `json:"destination_slug" form:"destination_slug"`
}

// SubmitInquiryRequest is the JSON form submission. Name and email are
// required here, at the input edge, the way the HTML form marks them required.
type SubmitInquiryRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Message         string `json:"message"`
	PackageTitle    string `json:"package_title"`
	DestinationSlug string `json:"destination_slug"`
}

func (r InquiryDraftRequest) ToDraft() catalog_models.InquiryDraft {
	return catalog_models.InquiryDraft{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Message:         r.Message,
		PackageTitle:    r.PackageTitle,
		DestinationSlug: r.DestinationSlug,
	}
}

func (r SubmitInquiryRequest) ToDraft() catalog_models.InquiryDraft {
	return catalog_models.InquiryDraft{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Message:         r.Message,
		PackageTitle:    r.PackageTitle,
		DestinationSlug: r.DestinationSlug,
	}
}

func (r PresetInquiryRequest) ToPackage() catalog_models.Package {
	return catalog_models.Package{
		Title:           r.PackageTitle,
		DestinationSlug: r.DestinationSlug,
	}
}
