package calculator

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/worktrack/backend/internal/domain/error"
)

func testFilter(from, to string) ReportFilter {
	fromDate, _ := time.Parse("2006-01-02", from)
	toDate, _ := time.Parse("2006-01-02", to)
	return ReportFilter{FromDate: fromDate, ToDate: toDate}
}

func TestSessionStore(t *testing.T) {
	t.Run("view without a session fails", func(t *testing.T) {
		store := NewSessionStore()
		_, err := store.View(uuid.New())
		if !errors.Is(err, domainerror.ErrNoReportSession) {
			t.Errorf("expected ErrNoReportSession, got %v", err)
		}
	})

	t.Run("commit installs a fresh session with empty overrides", func(t *testing.T) {
		store := NewSessionStore()
		userID := uuid.New()
		state := buildTwoUserState(t)

		generation := store.Begin(userID)
		if err := store.Commit(userID, generation, testFilter("2026-01-01", "2026-01-31"), state); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := store.Mutate(userID, func(session *Session) error {
			if !session.Overrides.IsEmpty() {
				t.Error("expected fresh overrides after commit")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("an older fetch cannot overwrite a newer one", func(t *testing.T) {
		store := NewSessionStore()
		userID := uuid.New()

		older := store.Begin(userID)
		newer := store.Begin(userID)

		newState := buildTwoUserState(t)
		if err := store.Commit(userID, newer, testFilter("2026-02-01", "2026-02-28"), newState); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := store.Commit(userID, older, testFilter("2026-01-01", "2026-01-31"), buildTwoUserState(t))
		if !errors.Is(err, domainerror.ErrStaleFilter) {
			t.Errorf("expected ErrStaleFilter, got %v", err)
		}

		// The newer session is untouched.
		err = store.Mutate(userID, func(session *Session) error {
			if session.Filter.FromDate != testFilter("2026-02-01", "2026-02-28").FromDate {
				t.Error("newer session was replaced by a stale fetch")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("a new fetch discards overrides from the previous session", func(t *testing.T) {
		store := NewSessionStore()
		userID := uuid.New()

		generation := store.Begin(userID)
		if err := store.Commit(userID, generation, testFilter("2026-01-01", "2026-01-31"), buildTwoUserState(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_ = store.Mutate(userID, func(session *Session) error {
			session.Overrides.SetGroupPrice("10|Digging", dec("12"))
			return nil
		})

		generation = store.Begin(userID)
		if err := store.Commit(userID, generation, testFilter("2026-02-01", "2026-02-28"), buildTwoUserState(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_ = store.Mutate(userID, func(session *Session) error {
			if !session.Overrides.IsEmpty() {
				t.Error("expected overrides cleared by the new fetch")
			}
			return nil
		})
	})

	t.Run("view returns a snapshot, not the live state", func(t *testing.T) {
		store := NewSessionStore()
		userID := uuid.New()

		generation := store.Begin(userID)
		if err := store.Commit(userID, generation, testFilter("2026-01-01", "2026-01-31"), buildTwoUserState(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snapshot, err := store.View(userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snapshot.Collapsed["10|Digging"] = false

		fresh, _ := store.View(userID)
		if !fresh.Collapsed["10|Digging"] {
			t.Error("mutating a snapshot must not affect the stored state")
		}
	})

	t.Run("concurrent mutation does not race", func(t *testing.T) {
		store := NewSessionStore()
		userID := uuid.New()

		generation := store.Begin(userID)
		if err := store.Commit(userID, generation, testFilter("2026-01-01", "2026-01-31"), buildTwoUserState(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = store.Mutate(userID, func(session *Session) error {
					session.Overrides.SetGroupPrice("10|Digging", dec("12"))
					session.State = Recalculate(session.State, session.Overrides, testDivisor)
					return nil
				})
			}()
		}
		wg.Wait()

		state, err := store.View(userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !state.UpdatedTotalOfAll.Equal(dec("180")) {
			t.Errorf("expected 180 after concurrent recalculations, got %s", state.UpdatedTotalOfAll)
		}
	})
}
