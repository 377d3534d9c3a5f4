package calculator

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApplyOverridesInput represents the input for running a recalculation pass.
type ApplyOverridesInput struct {
	UserID uuid.UUID
}

// ApplyOverridesOutput carries the recomputed state and any override inputs
// that were flagged as unparseable since the last fetch.
type ApplyOverridesOutput struct {
	State         *AggregationState
	InvalidFields []InvalidField
}

// ApplyOverridesUseCase runs the recalculation engine over the session state
// with the currently stored overrides. Triggered explicitly by the operator
// pressing "Update"; running it twice with unchanged overrides yields the same
// totals.
type ApplyOverridesUseCase struct {
	sessions          *SessionStore
	multiplierDivisor decimal.Decimal
}

// NewApplyOverridesUseCase creates a new ApplyOverridesUseCase instance.
func NewApplyOverridesUseCase(sessions *SessionStore, multiplierDivisor decimal.Decimal) *ApplyOverridesUseCase {
	return &ApplyOverridesUseCase{
		sessions:          sessions,
		multiplierDivisor: multiplierDivisor,
	}
}

// Execute recalculates the session state from the stored overrides.
func (uc *ApplyOverridesUseCase) Execute(ctx context.Context, input ApplyOverridesInput) (*ApplyOverridesOutput, error) {
	var output ApplyOverridesOutput

	err := uc.sessions.Mutate(input.UserID, func(session *Session) error {
		session.State = Recalculate(session.State, session.Overrides, uc.multiplierDivisor)
		output.State = session.State.Clone()
		output.InvalidFields = session.Overrides.InvalidFields()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &output, nil
}
