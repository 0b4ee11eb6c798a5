package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"wanderworld/internal/models/catalog_models"
	"wanderworld/internal/repositories"
	"wanderworld/internal/storefront"
)

// StorefrontServiceInterface runs the storefront interactions of one visitor.
// Backend read failures are logged and leave the previous lists in place, so
// the only errors returned come from the view store.
type StorefrontServiceInterface interface {
	Bootstrap(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error)
	Snapshot(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error)
	LoadDestinations(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error)
	LoadPackages(ctx context.Context, visitorID uuid.UUID, destinationSlug string) (*storefront.View, error)
	Refresh(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error)
	SelectDestination(ctx context.Context, visitorID uuid.UUID, slug string) (*storefront.View, error)
	FilterPackages(ctx context.Context, visitorID uuid.UUID, slug string) (*storefront.View, error)
	PresetInquiry(ctx context.Context, visitorID uuid.UUID, pkg catalog_models.Package) (*storefront.View, error)
	UpdateDraft(ctx context.Context, visitorID uuid.UUID, draft catalog_models.InquiryDraft) (*storefront.View, error)
	SubmitInquiry(ctx context.Context, visitorID uuid.UUID, draft catalog_models.InquiryDraft) (*storefront.View, error)
}

type StorefrontService struct {
	backend BackendClient
	views   repositories.ViewRepository
	logger  *zap.Logger
	locks   *visitorLocks
}

func NewStorefrontService(backend BackendClient, views repositories.ViewRepository, logger *zap.Logger) StorefrontServiceInterface {
	return &StorefrontService{
		backend: backend,
		views:   views,
		logger:  logger.Named("storefront"),
		locks:   newVisitorLocks(),
	}
}

// Bootstrap runs the first-display sequence once per view: a best-effort seed
// whose outcome is ignored, then destinations and the packages of the view's
// current filter fetched concurrently, then the loading flag is cleared. Later
// calls return the view.
func (s *StorefrontService) Bootstrap(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error) {
	view, _, err := s.bootstrap(ctx, visitorID)
	return view, err
}

// bootstrap reports whether this call ran the first-display sequence. A view
// that expired from the store comes back fresh, possibly with a filter set by
// the request that recreated it, so the packages follow that filter.
func (s *StorefrontService) bootstrap(ctx context.Context, visitorID uuid.UUID) (*storefront.View, bool, error) {
	first := false
	var filter string
	view, err := s.update(ctx, visitorID, func(v *storefront.View) error {
		first = v.BeginBootstrap()
		filter = v.SelectedSlug
		return nil
	})
	if err != nil || !first {
		return view, false, err
	}

	_ = s.backend.Seed(ctx)

	var g errgroup.Group
	g.Go(func() error {
		_, err := s.LoadDestinations(ctx, visitorID)
		return err
	})
	g.Go(func() error {
		_, err := s.LoadPackages(ctx, visitorID, filter)
		return err
	})
	loadErr := g.Wait()

	view, err = s.update(context.WithoutCancel(ctx), visitorID, func(v *storefront.View) error {
		v.FinishBootstrap()
		return nil
	})
	if loadErr != nil {
		return view, true, loadErr
	}
	return view, true, err
}

// Snapshot returns the visitor's view, bootstrapping it if it has never been
// displayed.
func (s *StorefrontService) Snapshot(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error) {
	return s.Bootstrap(ctx, visitorID)
}

func (s *StorefrontService) current(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error) {
	return s.update(ctx, visitorID, func(*storefront.View) error { return nil })
}

func (s *StorefrontService) LoadDestinations(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error) {
	var gen uint64
	view, err := s.update(ctx, visitorID, func(v *storefront.View) error {
		gen = v.BeginDestinationsFetch()
		return nil
	})
	if err != nil {
		return nil, err
	}

	destinations, err := s.backend.ListDestinations(ctx)
	if err != nil {
		s.logger.Warn("Failed to load destinations",
			zap.String("visitor_id", visitorID.String()),
			zap.Error(err))
		return view, nil
	}

	return s.update(context.WithoutCancel(ctx), visitorID, func(v *storefront.View) error {
		if !v.ApplyDestinations(gen, destinations) {
			s.logger.Debug("Dropped stale destinations response",
				zap.String("visitor_id", visitorID.String()),
				zap.Uint64("generation", gen))
		}
		return nil
	})
}

// LoadPackages fetches packages for destinationSlug ("" for all). Only the
// response of the latest issued fetch is applied.
func (s *StorefrontService) LoadPackages(ctx context.Context, visitorID uuid.UUID, destinationSlug string) (*storefront.View, error) {
	var gen uint64
	view, err := s.update(ctx, visitorID, func(v *storefront.View) error {
		gen = v.BeginPackagesFetch()
		return nil
	})
	if err != nil {
		return nil, err
	}

	packages, err := s.backend.ListPackages(ctx, destinationSlug)
	if err != nil {
		s.logger.Warn("Failed to load packages",
			zap.String("visitor_id", visitorID.String()),
			zap.String("destination", destinationSlug),
			zap.Error(err))
		return view, nil
	}

	return s.update(context.WithoutCancel(ctx), visitorID, func(v *storefront.View) error {
		if !v.ApplyPackages(gen, packages) {
			s.logger.Debug("Dropped stale packages response",
				zap.String("visitor_id", visitorID.String()),
				zap.String("destination", destinationSlug),
				zap.Uint64("generation", gen))
		}
		return nil
	})
}

// Refresh reloads destinations and the packages of the current filter.
// A view that was never displayed is bootstrapped instead.
func (s *StorefrontService) Refresh(ctx context.Context, visitorID uuid.UUID) (*storefront.View, error) {
	view, ran, err := s.bootstrap(ctx, visitorID)
	if err != nil || ran {
		return view, err
	}
	slug := view.SelectedSlug

	var g errgroup.Group
	g.Go(func() error {
		_, err := s.LoadDestinations(ctx, visitorID)
		return err
	})
	g.Go(func() error {
		_, err := s.LoadPackages(ctx, visitorID, slug)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s.current(ctx, visitorID)
}

// SelectDestination toggles slug as the filter and reloads packages for the
// resulting filter. A view that was never displayed is bootstrapped first.
func (s *StorefrontService) SelectDestination(ctx context.Context, visitorID uuid.UUID, slug string) (*storefront.View, error) {
	if _, err := s.Bootstrap(ctx, visitorID); err != nil {
		return nil, err
	}

	var filter string
	if _, err := s.update(ctx, visitorID, func(v *storefront.View) error {
		filter = v.SelectDestination(slug)
		return nil
	}); err != nil {
		return nil, err
	}
	return s.LoadPackages(ctx, visitorID, filter)
}

// FilterPackages sets slug as the filter without toggling and reloads packages.
func (s *StorefrontService) FilterPackages(ctx context.Context, visitorID uuid.UUID, slug string) (*storefront.View, error) {
	if _, err := s.Bootstrap(ctx, visitorID); err != nil {
		return nil, err
	}

	var filter string
	if _, err := s.update(ctx, visitorID, func(v *storefront.View) error {
		filter = v.SetFilter(slug)
		return nil
	}); err != nil {
		return nil, err
	}
	return s.LoadPackages(ctx, visitorID, filter)
}

// PresetInquiry copies the package's title and destination into the inquiry
// draft. Nothing is fetched.
func (s *StorefrontService) PresetInquiry(ctx context.Context, visitorID uuid.UUID, pkg catalog_models.Package) (*storefront.View, error) {
	return s.update(ctx, visitorID, func(v *storefront.View) error {
		v.PresetInquiry(pkg)
		return nil
	})
}

func (s *StorefrontService) UpdateDraft(ctx context.Context, visitorID uuid.UUID, draft catalog_models.InquiryDraft) (*storefront.View, error) {
	return s.update(ctx, visitorID, func(v *storefront.View) error {
		v.UpdateDraft(draft)
		return nil
	})
}

// SubmitInquiry posts draft once. The sending status is stored before the
// request goes out; the outcome decides whether the draft is cleared.
func (s *StorefrontService) SubmitInquiry(ctx context.Context, visitorID uuid.UUID, draft catalog_models.InquiryDraft) (*storefront.View, error) {
	var payload catalog_models.InquiryDraft
	if _, err := s.update(ctx, visitorID, func(v *storefront.View) error {
		payload = v.BeginSubmit(draft)
		return nil
	}); err != nil {
		return nil, err
	}

	sendErr := s.backend.SubmitInquiry(ctx, payload)
	if sendErr != nil {
		s.logger.Warn("Failed to submit inquiry",
			zap.String("visitor_id", visitorID.String()),
			zap.String("destination", payload.DestinationSlug),
			zap.Error(sendErr))
	} else {
		s.logger.Info("Inquiry submitted",
			zap.String("visitor_id", visitorID.String()),
			zap.String("destination", payload.DestinationSlug),
			zap.String("package", payload.PackageTitle))
	}

	return s.update(context.WithoutCancel(ctx), visitorID, func(v *storefront.View) error {
		v.CompleteSubmit(sendErr == nil)
		return nil
	})
}

// update loads the visitor's view (a fresh one if none is stored), applies fn
// and saves the result, all under the visitor's lock. The view is not saved
// when fn fails.
func (s *StorefrontService) update(ctx context.Context, visitorID uuid.UUID, fn func(v *storefront.View) error) (*storefront.View, error) {
	unlock := s.locks.lock(visitorID)
	defer unlock()

	view, ok, err := s.views.Load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		view = storefront.NewView()
	}

	if err := fn(view); err != nil {
		return nil, err
	}

	if err := s.views.Save(ctx, visitorID, view); err != nil {
		return nil, err
	}
	return view, nil
}

// visitorLocks hands out one mutex per visitor and forgets it once nobody
// holds or waits for it.
type visitorLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*visitorLock
}

type visitorLock struct {
	mu   sync.Mutex
	refs int
}

func newVisitorLocks() *visitorLocks {
	return &visitorLocks{locks: make(map[uuid.UUID]*visitorLock)}
}

func (l *visitorLocks) lock(visitorID uuid.UUID) (unlock func()) {
	l.mu.Lock()
	vl, ok := l.locks[visitorID]
	if !ok {
		vl = &visitorLock{}
		l.locks[visitorID] = vl
	}
	vl.refs++
	l.mu.Unlock()

	vl.mu.Lock()
	return func() {
		vl.mu.Unlock()

		l.mu.Lock()
		vl.refs--
		if vl.refs == 0 {
			delete(l.locks, visitorID)
		}
		l.mu.Unlock()
	}
}
