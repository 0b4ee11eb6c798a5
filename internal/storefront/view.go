// Package storefront holds the per-visitor storefront state and the
// transitions applied to it. Nothing in here performs I/O; callers fetch from
// the backend and hand the results to the View.
package storefront

import (
	"unicode"
	"unicode/utf8"

	"wanderworld/internal/models/catalog_models"
)

type View struct {
	Loading      bool `json:"loading"`
	Bootstrapped bool `json:"bootstrapped"`

	Destinations []catalog_models.Destination `json:"destinations"`
	Packages     []catalog_models.Package     `json:"packages"`

	// SelectedSlug is the destination filter, "" means all packages.
	SelectedSlug string                      `json:"selected_slug"`
	Draft        catalog_models.InquiryDraft `json:"draft"`
	Status       Status                      `json:"status"`

	// Generations of the latest issued fetch per list. A response carrying an
	// older generation belongs to an abandoned request and is dropped.
	DestinationsGeneration uint64 `json:"destinations_generation"`
	PackagesGeneration     uint64 `json:"packages_generation"`
}

func NewView() *View {
	return &View{
		Loading:      true,
		Destinations: []catalog_models.Destination{},
		Packages:     []catalog_models.Package{},
		Status:       StatusIdle,
	}
}

// BeginBootstrap reports whether the caller should run the first-display
// sequence. It returns true only once per view.
func (v *View) BeginBootstrap() bool {
	if v.Bootstrapped {
		return false
	}
	v.Bootstrapped = true
	v.Loading = true
	return true
}

func (v *View) FinishBootstrap() {
	v.Loading = false
}

func (v *View) BeginDestinationsFetch() uint64 {
	v.DestinationsGeneration++
	return v.DestinationsGeneration
}

// ApplyDestinations replaces the destination list wholesale. It returns false
// and leaves the view untouched when gen is stale.
func (v *View) ApplyDestinations(gen uint64, destinations []catalog_models.Destination) bool {
	if gen < v.DestinationsGeneration {
		return false
	}
	if destinations == nil {
		destinations = []catalog_models.Destination{}
	}
	v.Destinations = destinations
	return true
}

func (v *View) BeginPackagesFetch() uint64 {
	v.PackagesGeneration++
	return v.PackagesGeneration
}

// ApplyPackages replaces the package list wholesale unless gen is stale.
func (v *View) ApplyPackages(gen uint64, packages []catalog_models.Package) bool {
	if gen < v.PackagesGeneration {
		return false
	}
	if packages == nil {
		packages = []catalog_models.Package{}
	}
	v.Packages = packages
	return true
}

// SelectDestination is the destination card click: picking the selected slug
// again clears the filter. The resulting filter is mirrored into the draft and
// returned so the caller can reload packages for it.
func (v *View) SelectDestination(slug string) string {
	if slug == v.SelectedSlug {
		slug = ""
	}
	return v.SetFilter(slug)
}

// SetFilter sets the filter directly, as the package dropdown does.
func (v *View) SetFilter(slug string) string {
	v.SelectedSlug = slug
	v.Draft.DestinationSlug = slug
	return slug
}

// PresetInquiry fills the draft from a package's "Enquire" button. Selection
// and lists are not touched.
func (v *View) PresetInquiry(pkg catalog_models.Package) {
	v.Draft.PackageTitle = pkg.Title
	v.Draft.DestinationSlug = pkg.DestinationSlug
}

func (v *View) UpdateDraft(draft catalog_models.InquiryDraft) {
	v.Draft = draft
}

// BeginSubmit records the submitted field values, flips the status to sending
// and returns the payload to post.
func (v *View) BeginSubmit(draft catalog_models.InquiryDraft) catalog_models.InquiryDraft {
	v.Draft = draft
	v.Status = StatusSending
	return v.Draft
}

// CompleteSubmit applies the outcome of the inquiry post. On failure the draft
// is kept so the visitor can resubmit. On success it is cleared, except the
// destination, which follows the current filter.
func (v *View) CompleteSubmit(ok bool) {
	if !ok {
		v.Status = StatusFailure
		return
	}
	v.Status = StatusSuccess
	v.Draft = catalog_models.InquiryDraft{DestinationSlug: v.SelectedSlug}
}

func (v *View) IsSelected(slug string) bool {
	return v.SelectedSlug != "" && v.SelectedSlug == slug
}

// FilterTitle is the suffix of the packages heading, e.g. "Dubai" for "dubai".
func (v *View) FilterTitle() string {
	if v.SelectedSlug == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(v.SelectedSlug)
	return string(unicode.ToUpper(r)) + v.SelectedSlug[size:]
}
