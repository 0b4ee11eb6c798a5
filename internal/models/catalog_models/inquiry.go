package catalog_models

// InquiryDraft is the inquiry form as the visitor is editing it. It is also
// the body posted to /inquire, so the json keys are part of the backend contract.
type InquiryDraft struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Message         string `json:"message"`
	PackageTitle    string `json:"package_title"`
	DestinationSlug string `json:"destination_slug"`
}
