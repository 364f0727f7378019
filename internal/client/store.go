package client

import (
	"context"
	"sync"

	"candleshop/internal/content"
	"candleshop/internal/models"
)

// State tracks a collection snapshot's lifecycle: Loading until the first
// fetch resolves, then Loaded or Error.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Store holds the last-known-good snapshot of both collections for
// rendering. The snapshot is never authoritative: every mutation goes to the
// backend first and the local copy is only touched on a successful response,
// so a failed call needs no rollback. On fetch failure the snapshot degrades
// to the canonical default content instead of leaving the UI empty.
type Store struct {
	api *Client

	mu            sync.RWMutex
	products      []models.Product
	productsState State
	productsErr   string
	heroes        []models.HeroSection
	heroesState   State
	heroesErr     string
}

func NewStore(api *Client) *Store {
	return &Store{
		api:           api,
		productsState: StateLoading,
		heroesState:   StateLoading,
	}
}

// Load performs the initial fetch of both collections. Safe to call again at
// any time; Refresh is the explicit way to do that.
func (s *Store) Load(ctx context.Context) {
	s.loadProducts(ctx)
	s.loadHeroes(ctx)
}

func (s *Store) loadProducts(ctx context.Context) {
	products, err := s.api.ListProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Keep the storefront stocked with the built-in catalog; the error
		// stays available for a banner.
		s.productsState = StateError
		s.productsErr = err.Error()
		s.products = content.DefaultProducts()
		return
	}
	s.productsState = StateLoaded
	s.productsErr = ""
	s.products = products
}

func (s *Store) loadHeroes(ctx context.Context) {
	sections, err := s.api.ListHeroSections(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.heroesState = StateError
		s.heroesErr = err.Error()
		s.heroes = []models.HeroSection{content.DefaultHero()}
		return
	}
	s.heroesState = StateLoaded
	s.heroesErr = ""
	if len(sections) == 0 {
		// An empty store still renders the default banner. Products have no
		// empty-success fallback; an empty catalog is an empty catalog.
		s.heroes = []models.HeroSection{content.DefaultHero()}
		return
	}
	s.heroes = sections
}

// Refresh discards both snapshots unconditionally and refetches. Used after
// bulk reset or reseed operations.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.productsState = StateLoading
	s.heroesState = StateLoading
	s.mu.Unlock()

	s.Load(ctx)
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) HeroSections() []models.HeroSection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.HeroSection, len(s.heroes))
	copy(out, s.heroes)
	return out
}

// ActiveHeroSection returns the explicitly active section, or the first one
// by creation order when none is flagged — an empty store yields nil.
func (s *Store) ActiveHeroSection() *models.HeroSection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.heroes {
		if s.heroes[i].IsActive {
			section := s.heroes[i]
			return &section
		}
	}
	if len(s.heroes) > 0 {
		section := s.heroes[0]
		return &section
	}
	return nil
}

func (s *Store) ProductsState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productsState
}

func (s *Store) HeroesState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heroesState
}

func (s *Store) ProductsErr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productsErr
}

func (s *Store) HeroesErr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heroesErr
}

func (s *Store) AddProduct(ctx context.Context, p models.Product) (models.Product, error) {
	created, err := s.api.CreateProduct(ctx, p)
	if err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	s.products = append(s.products, created)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	updated, err := s.api.UpdateProduct(ctx, p)
	if err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == updated.ID {
			s.products[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.mu.Unlock()
	return nil
}

func (s *Store) AddHeroSection(ctx context.Context, h models.HeroSection) (models.HeroSection, error) {
	created, err := s.api.CreateHeroSection(ctx, h)
	if err != nil {
		return models.HeroSection{}, err
	}

	s.mu.Lock()
	s.heroes = append(s.heroes, created)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateHeroSection(ctx context.Context, h models.HeroSection) (models.HeroSection, error) {
	updated, err := s.api.UpdateHeroSection(ctx, h)
	if err != nil {
		return models.HeroSection{}, err
	}

	s.mu.Lock()
	for i := range s.heroes {
		if s.heroes[i].ID == updated.ID {
			s.heroes[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteHeroSection(ctx context.Context, id string) error {
	if err := s.api.DeleteHeroSection(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.heroes[:0]
	for _, h := range s.heroes {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	s.heroes = kept
	s.mu.Unlock()
	return nil
}

// ActivateHeroSection replaces the whole hero snapshot with the listing the
// backend returns, so every section's flag is current without a second fetch.
func (s *Store) ActivateHeroSection(ctx context.Context, id string) error {
	result, err := s.api.ActivateHeroSection(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.heroes = result.HeroSections
	s.heroesState = StateLoaded
	s.heroesErr = ""
	s.mu.Unlock()
	return nil
}

// SeedDefaults reseeds the backend with the canonical content and refreshes
// both snapshots.
func (s *Store) SeedDefaults(ctx context.Context) (SeedResult, error) {
	result, err := s.api.Seed(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	s.Refresh(ctx)
	return result, nil
}
