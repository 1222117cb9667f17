// Package store owns the companion's application state: the campaign
// list and the active-campaign pointer. All mutations funnel through the
// store, which serializes them, enforces the lock gate on retired
// campaigns, stamps modification times, and persists the whole state
// after every change. Persistence failures degrade the session to
// in-memory play instead of failing the mutation.
package store

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/solo-blaster/companion/internal/campaign/command"
	"github.com/solo-blaster/companion/internal/campaign/domain"
	"github.com/solo-blaster/companion/internal/campaign/normalize"
	apperrors "github.com/solo-blaster/companion/internal/errors"
	"github.com/solo-blaster/companion/internal/platform/id"
	"github.com/solo-blaster/companion/internal/storage"
)

// State is the persisted application state document.
type State struct {
	Campaigns        []domain.Campaign `json:"campaigns"`
	ActiveCampaignID string            `json:"activeCampaignId"`
}

// Store serializes access to the application state.
type Store struct {
	backend storage.Backend
	logger  *log.Logger
	now     func() time.Time
	newID   func() (string, error)

	mu    sync.Mutex
	state State
	snap  *State

	subMu       sync.Mutex
	subscribers map[int]func()
	nextSub     int
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator injects the id source.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLogger injects the logger used for degraded-persistence warnings.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a store over the given backend. Call Init before use.
func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend:     backend,
		logger:      log.Default(),
		now:         time.Now,
		newID:       id.NewID,
		subscribers: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init loads and normalizes the persisted state. A first run yields an
// empty state, and so does an unreadable blob: malformed persisted data
// is never fatal, only a backend Load failure is. Every stored campaign
// passes through the normalizer, so schema migrations happen here,
// once, on load.
func (s *Store) Init(ctx context.Context) error {
	data, found, err := s.backend.Load(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorageUnavailable, "load state", err)
	}

	state := State{Campaigns: []domain.Campaign{}}
	if found {
		var raw struct {
			Campaigns        []any  `json:"campaigns"`
			ActiveCampaignID string `json:"activeCampaignId"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			s.logger.Printf("load state: decode: %v", err)
			raw.Campaigns = nil
			raw.ActiveCampaignID = ""
		}
		for _, entry := range raw.Campaigns {
			state.Campaigns = append(state.Campaigns, normalize.CampaignAt(entry, s.now, s.newID))
		}
		state.ActiveCampaignID = raw.ActiveCampaignID
	}

	// A dangling active pointer falls back to the first campaign.
	if indexOf(state.Campaigns, state.ActiveCampaignID) < 0 {
		state.ActiveCampaignID = ""
		if len(state.Campaigns) > 0 {
			state.ActiveCampaignID = state.Campaigns[0].ID
		}
	}

	s.mu.Lock()
	s.state = state
	s.snap = nil
	s.mu.Unlock()
	return nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Snapshot returns the current state. The same pointer is returned
// until the next mutation, so callers may memoize on identity; treat
// the snapshot as read-only.
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		campaigns := make([]domain.Campaign, len(s.state.Campaigns))
		copy(campaigns, s.state.Campaigns)
		s.snap = &State{Campaigns: campaigns, ActiveCampaignID: s.state.ActiveCampaignID}
	}
	return s.snap
}

// ActiveCampaign returns the active campaign, if any.
func (s *Store) ActiveCampaign() (domain.Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := indexOf(s.state.Campaigns, s.state.ActiveCampaignID)
	if index < 0 {
		return domain.Campaign{}, false
	}
	return s.state.Campaigns[index], true
}

// Campaign returns one campaign by id.
func (s *Store) Campaign(campaignID string) (domain.Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := indexOf(s.state.Campaigns, campaignID)
	if index < 0 {
		return domain.Campaign{}, false
	}
	return s.state.Campaigns[index], true
}

// CreateCampaign mints a campaign, prepends it to the list, and makes it
// active.
func (s *Store) CreateCampaign(ctx context.Context, name string) (domain.Campaign, error) {
	campaign, err := domain.NewCampaign(name, s.now, s.newID)
	if err != nil {
		return domain.Campaign{}, err
	}

	s.mu.Lock()
	s.state.Campaigns = append([]domain.Campaign{campaign}, s.state.Campaigns...)
	s.state.ActiveCampaignID = campaign.ID
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify()
	return campaign, nil
}

// DeleteCampaign removes a campaign. Deleting the active campaign moves
// the pointer to the first remaining one.
func (s *Store) DeleteCampaign(ctx context.Context, campaignID string) error {
	s.mu.Lock()
	index := indexOf(s.state.Campaigns, campaignID)
	if index < 0 {
		s.mu.Unlock()
		return campaignNotFound(campaignID)
	}
	s.state.Campaigns = append(s.state.Campaigns[:index:index], s.state.Campaigns[index+1:]...)
	if s.state.ActiveCampaignID == campaignID {
		s.state.ActiveCampaignID = ""
		if len(s.state.Campaigns) > 0 {
			s.state.ActiveCampaignID = s.state.Campaigns[0].ID
		}
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify()
	return nil
}

// SetActiveCampaign moves the active pointer.
func (s *Store) SetActiveCampaign(ctx context.Context, campaignID string) error {
	s.mu.Lock()
	if indexOf(s.state.Campaigns, campaignID) < 0 {
		s.mu.Unlock()
		return campaignNotFound(campaignID)
	}
	s.state.ActiveCampaignID = campaignID
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify()
	return nil
}

// Apply runs a command against one campaign. It returns false with no
// error when the campaign is locked and the command is not exempt: a
// locked campaign silently refuses changes rather than erroring, since
// stale UI surfaces may still issue them.
func (s *Store) Apply(ctx context.Context, campaignID string, cmd command.Command) (bool, error) {
	s.mu.Lock()
	index := indexOf(s.state.Campaigns, campaignID)
	if index < 0 {
		s.mu.Unlock()
		return false, campaignNotFound(campaignID)
	}
	current := s.state.Campaigns[index]
	if current.Locked && !command.AllowedWhileLocked(cmd) {
		s.mu.Unlock()
		return false, nil
	}

	updated, err := cmd.Apply(current, s.now())
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	updated.UpdatedAt = domain.Millis(s.now())
	s.state.Campaigns[index] = updated
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify()
	return true, nil
}

// Update runs an arbitrary transformation against one campaign, subject
// to the same lock gate as Apply. Intended for coarse edits like
// replacing the whole sheet from a settings surface.
func (s *Store) Update(ctx context.Context, campaignID string, fn func(domain.Campaign) domain.Campaign) (bool, error) {
	s.mu.Lock()
	index := indexOf(s.state.Campaigns, campaignID)
	if index < 0 {
		s.mu.Unlock()
		return false, campaignNotFound(campaignID)
	}
	current := s.state.Campaigns[index]
	if current.Locked {
		s.mu.Unlock()
		return false, nil
	}

	updated := fn(current)
	updated.ID = current.ID
	updated.UpdatedAt = domain.Millis(s.now())
	s.state.Campaigns[index] = updated
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify()
	return true, nil
}

// ResetAll discards every campaign and the active pointer.
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	s.state = State{Campaigns: []domain.Campaign{}}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify()
	return nil
}

// Subscribe registers a callback invoked after every state change. The
// returned cancel function removes the subscription.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.subMu.Lock()
	token := s.nextSub
	s.nextSub++
	s.subscribers[token] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, token)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	callbacks := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		callbacks = append(callbacks, fn)
	}
	s.subMu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// persistLocked writes the state through the backend and invalidates
// the memoized snapshot. Save failures are logged and swallowed: the
// in-memory state is already updated and the session continues without
// persistence.
func (s *Store) persistLocked(ctx context.Context) {
	s.snap = nil
	data, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Printf("persist state: marshal: %v", err)
		return
	}
	if err := s.backend.Save(ctx, data); err != nil {
		s.logger.Printf("persist state: save: %v", err)
	}
}

func indexOf(campaigns []domain.Campaign, campaignID string) int {
	if strings.TrimSpace(campaignID) == "" {
		return -1
	}
	for i := range campaigns {
		if campaigns[i].ID == campaignID {
			return i
		}
	}
	return -1
}

func campaignNotFound(campaignID string) error {
	return apperrors.New(apperrors.CodeCampaignNotFound, "campaign not found").
		WithMetadata(map[string]string{"CampaignID": campaignID})
}
