// Package store holds the panel's process-wide state: settings, the
// normalized analysis collections, and loading/error status. The Store is
// the single writer of that state; the UI layer only observes snapshots,
// either by polling Snapshot or through Subscribe callbacks.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/api"
	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/model"
	"github.com/Software-Improvement-Group/sigrid-mendix-studio-pro/storage"
)

// User-facing error messages.
const (
	errNoSettings  = "No settings configured. Please configure your Sigrid credentials first."
	errLoadGeneric = "Failed to load data from the Sigrid API"
)

// ErrNoSettings is returned by LoadAllData when a load that requires
// settings runs before any were configured.
var ErrNoSettings = errors.New("no settings configured")

// Settings are the credentials required for any fetch. Customer and System
// are stored lowercased; SetSettings takes care of that. Validating that
// the fields are non-empty is the caller's responsibility.
type Settings struct {
	Token    string
	Customer string
	System   string
}

func (s Settings) credentials() api.Credentials {
	return api.Credentials{Token: s.Token, Customer: s.Customer, System: s.System}
}

// Snapshot is an observable copy of the store state. Collection slices and
// maps are shared with the store and must be treated as read-only.
type Snapshot struct {
	Settings              *Settings
	SecurityFindings      []model.SecurityFinding
	OshDependencies       []model.OshDependency
	OshMetadata           *model.OshMetadata
	RefactoringCandidates model.CandidatesMap
	AnalysisDate          string
	IsLoading             bool
	Error                 string
}

// Fetcher is the slice of the API client the store needs. *api.Client
// satisfies it; tests supply fakes.
type Fetcher interface {
	SecurityFindings(ctx context.Context, creds api.Credentials) (any, error)
	OshFindings(ctx context.Context, creds api.Credentials) (any, error)
	RefactoringCandidates(ctx context.Context, creds api.Credentials, category model.Category) (any, error)
}

// LoadOptions controls one LoadAllData call.
type LoadOptions struct {
	// RequireSettings surfaces a configuration error when no settings are
	// available. Passive startup loads leave it false and return silently.
	RequireSettings bool

	// SettingsOverride fetches with these settings instead of the stored
	// ones, used when the user saves new credentials and refreshes in one
	// action.
	SettingsOverride *Settings
}

// Store owns the panel state. All mutation goes through its methods; a
// second LoadAllData while one is in flight is not guarded here, the UI
// disables refresh while IsLoading is true.
type Store struct {
	fetcher Fetcher
	cache   storage.Store
	logger  *slog.Logger

	mu          sync.Mutex
	state       Snapshot
	subscribers map[string]func(Snapshot)
}

// New creates a Store with empty state. cache may be nil, in which case
// nothing is persisted or restored. A nil logger falls back to
// slog.Default().
func New(fetcher Fetcher, cache storage.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
		state: Snapshot{
			RefactoringCandidates: model.NewCandidatesMap(),
			AnalysisDate:          model.NotAvailable,
		},
		subscribers: make(map[string]func(Snapshot)),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a callback invoked after every state change. The
// returned function cancels the subscription.
func (s *Store) Subscribe(callback func(Snapshot)) (unsubscribe func()) {
	id := uuid.NewString()

	s.mu.Lock()
	s.subscribers[id] = callback
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// commit applies a transition to the state under lock, then notifies
// subscribers with the resulting snapshot outside of it.
func (s *Store) commit(transition func(*Snapshot)) {
	s.mu.Lock()
	transition(&s.state)
	snapshot := s.state
	callbacks := make([]func(Snapshot), 0, len(s.subscribers))
	for _, callback := range s.subscribers {
		callbacks = append(callbacks, callback)
	}
	s.mu.Unlock()

	for _, callback := range callbacks {
		callback(snapshot)
	}
}

// SetSettings lowercases customer and system, stores the settings, writes
// them through to the cache, and clears any prior error.
func (s *Store) SetSettings(ctx context.Context, settings Settings) {
	normalized := Settings{
		Token:    settings.Token,
		Customer: strings.ToLower(settings.Customer),
		System:   strings.ToLower(settings.System),
	}

	s.persist(ctx, storage.KeyToken, normalized.Token)
	s.persist(ctx, storage.KeyCustomer, normalized.Customer)
	s.persist(ctx, storage.KeySystem, normalized.System)

	s.commit(func(state *Snapshot) {
		state.Settings = &normalized
		state.Error = ""
	})
}

// LoadSettingsFromStorage restores settings and cached collections from the
// persisted cache. Missing or corrupt entries degrade to their empty
// defaults; the restore never fails as a whole. Settings are only adopted
// when all three fields were persisted.
func (s *Store) LoadSettingsFromStorage(ctx context.Context) {
	if s.cache == nil {
		return
	}

	token := s.read(ctx, storage.KeyToken)
	customer := s.read(ctx, storage.KeyCustomer)
	system := s.read(ctx, storage.KeySystem)

	findings := model.DecodeSecurityFindings(s.readJSON(ctx, storage.KeySecurityFindings))
	dependencies := model.MapOshDependencies(s.readJSON(ctx, storage.KeyOshDependencies))
	metadata := model.DecodeOshMetadata(s.readJSON(ctx, storage.KeyOshMetadata))
	candidates := model.DecodeCandidatesMap(s.readJSON(ctx, storage.KeyRefactoringCandidates))

	analysisDate := strings.TrimSpace(s.read(ctx, storage.KeyAnalysisDate))
	if analysisDate == "" {
		analysisDate = model.DeriveAnalysisDate(findings, candidates, metadata)
	}

	s.commit(func(state *Snapshot) {
		state.SecurityFindings = findings
		state.OshDependencies = dependencies
		state.OshMetadata = metadata
		state.RefactoringCandidates = candidates
		state.AnalysisDate = analysisDate

		if token != "" && customer != "" && system != "" {
			state.Settings = &Settings{
				Token:    token,
				Customer: strings.ToLower(customer),
				System:   strings.ToLower(system),
			}
			state.Error = ""
		}
	})
}

// LoadAllData fetches and normalizes all collections sequentially: security
// findings, the OSH payload, then each of the seven refactoring categories.
// A category failure degrades that category to an empty list; a failure on
// the findings or OSH endpoint aborts the sequence, surfaces the error, and
// leaves previously loaded state untouched.
//
// The snapshot carries the user-facing error state; the returned error is
// for programmatic callers: nil on success and on a passive load without
// settings, ErrNoSettings when required settings are missing, or the fetch
// error that aborted the sequence.
func (s *Store) LoadAllData(ctx context.Context, opts LoadOptions) error {
	effective := opts.SettingsOverride
	if effective == nil {
		s.mu.Lock()
		effective = s.state.Settings
		s.mu.Unlock()
	}

	if effective == nil {
		if opts.RequireSettings {
			s.commit(func(state *Snapshot) {
				state.Error = errNoSettings
				state.IsLoading = false
			})
			return ErrNoSettings
		}
		return nil
	}

	s.commit(func(state *Snapshot) {
		state.IsLoading = true
		state.Error = ""
	})

	creds := effective.credentials()

	securityPayload, err := s.fetcher.SecurityFindings(ctx, creds)
	if err != nil {
		s.fail(err)
		return err
	}
	findings := model.MapSecurityFindings(securityPayload)

	oshPayload, err := s.fetcher.OshFindings(ctx, creds)
	if err != nil {
		s.fail(err)
		return err
	}
	dependencies, metadata := model.NormalizeOshPayload(oshPayload)

	candidates := model.NewCandidatesMap()
	for _, category := range model.Categories() {
		payload, err := s.fetcher.RefactoringCandidates(ctx, creds, category)
		if err != nil {
			s.logger.Warn("refactoring category fetch failed",
				"category", category, "error", err)
			continue
		}
		candidates[category] = model.MapRefactoringCandidates(candidatesField(payload), category)
	}

	analysisDate := model.DeriveAnalysisDate(findings, candidates, metadata)

	s.persistAll(ctx, findings, dependencies, metadata, candidates, analysisDate)

	s.commit(func(state *Snapshot) {
		state.SecurityFindings = findings
		state.OshDependencies = dependencies
		state.OshMetadata = metadata
		state.RefactoringCandidates = candidates
		state.AnalysisDate = analysisDate
		state.IsLoading = false
		state.Error = ""
	})
	return nil
}

// fail surfaces a fetch failure without touching previously loaded data.
func (s *Store) fail(err error) {
	message := errLoadGeneric
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	s.commit(func(state *Snapshot) {
		state.Error = message
		state.IsLoading = false
	})
}

// candidatesField unwraps the {refactoringCandidates: [...]} response shape.
func candidatesField(payload any) any {
	data, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	return data["refactoringCandidates"]
}

// persistAll writes the five cache entries. Failures are logged and
// swallowed: the in-memory state is authoritative for the session.
func (s *Store) persistAll(
	ctx context.Context,
	findings []model.SecurityFinding,
	dependencies []model.OshDependency,
	metadata *model.OshMetadata,
	candidates model.CandidatesMap,
	analysisDate string,
) {
	if s.cache == nil {
		return
	}

	s.persistJSON(ctx, storage.KeySecurityFindings, findings)
	s.persistJSON(ctx, storage.KeyOshDependencies, dependencies)
	if metadata != nil {
		s.persistJSON(ctx, storage.KeyOshMetadata, metadata)
	} else {
		if err := s.cache.Delete(ctx, storage.KeyOshMetadata); err != nil {
			s.logger.Warn("failed to clear cache entry", "key", storage.KeyOshMetadata, "error", err)
		}
	}
	s.persistJSON(ctx, storage.KeyRefactoringCandidates, candidates)
	s.persist(ctx, storage.KeyAnalysisDate, analysisDate)
}

func (s *Store) persist(ctx context.Context, key, value string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("failed to persist cache entry", "key", key, "error", err)
	}
}

func (s *Store) persistJSON(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to serialize cache entry", "key", key, "error", err)
		return
	}
	s.persist(ctx, key, string(data))
}

// read returns the stored value for a key, or "" when absent or failing.
func (s *Store) read(ctx context.Context, key string) string {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return ""
	}
	return value
}

// readJSON decodes the stored JSON for a key, or nil when absent, failing,
// or corrupt; the caller's normalizer turns nil into the empty default.
func (s *Store) readJSON(ctx context.Context, key string) any {
	raw := s.read(ctx, key)
	if raw == "" {
		return nil
	}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		s.logger.Warn("discarding corrupt cache entry", "key", key, "error", err)
		return nil
	}
	return value
}
