package calculator

import (
	"sync"

	"github.com/google/uuid"

	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// Session is one operator's live calculator report: the aggregation state for
// the currently applied filter plus the overrides entered since that fetch.
// Overrides never outlive a fetch; a new report replaces the whole session.
type Session struct {
	Filter    ReportFilter
	State     *AggregationState
	Overrides *Overrides
}

// sessionEntry tracks a user's session together with the fetch generation used
// to drop stale responses.
type sessionEntry struct {
	generation uint64
	session    *Session
}

// SessionStore keeps per-user calculator sessions in memory. HTTP handlers run
// concurrently, and overrides and recalculation read-modify-write the same
// totals, so every access goes through one mutex.
//
// Staleness: each fetch begins by bumping the user's generation; a fetch that
// tries to commit under an older generation lost the race to a newer filter
// and is discarded (last filter wins).
type SessionStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*sessionEntry
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[uuid.UUID]*sessionEntry),
	}
}

// Begin registers a new fetch for the user and returns its generation token.
func (s *SessionStore) Begin(userID uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok {
		entry = &sessionEntry{}
		s.entries[userID] = entry
	}
	entry.generation++
	return entry.generation
}

// Commit installs a freshly built state for the fetch identified by
// generation. Overrides and collapse flags start clean. If a newer fetch began
// in the meantime the commit is rejected with a stale-filter error.
func (s *SessionStore) Commit(userID uuid.UUID, generation uint64, filter ReportFilter, state *AggregationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok || entry.generation != generation {
		return domainerror.NewCalculatorError(
			domainerror.ErrCodeStaleFilter,
			"report fetch superseded by a newer filter change",
			domainerror.ErrStaleFilter,
		)
	}

	entry.session = &Session{
		Filter:    filter,
		State:     state,
		Overrides: NewOverrides(),
	}
	return nil
}

// View returns a read-only snapshot of the user's current aggregation state.
func (s *SessionStore) View(userID uuid.UUID) (*AggregationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok || entry.session == nil {
		return nil, noSessionError()
	}
	return entry.session.State.Clone(), nil
}

// Mutate runs fn against the user's live session under the store lock. fn may
// edit overrides and replace the state; errors from fn are returned unchanged.
func (s *SessionStore) Mutate(userID uuid.UUID, fn func(session *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok || entry.session == nil {
		return noSessionError()
	}
	return fn(entry.session)
}

// Drop discards the user's session, if any.
func (s *SessionStore) Drop(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
}

func noSessionError() error {
	return domainerror.NewCalculatorError(
		domainerror.ErrCodeNoReportSession,
		"no calculator report loaded; fetch a report first",
		domainerror.ErrNoReportSession,
	)
}
