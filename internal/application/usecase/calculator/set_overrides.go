package calculator

import (
	"context"

	"github.com/google/uuid"

	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// GroupPriceEdit is one operator edit of a group-level price, as raw text.
type GroupPriceEdit struct {
	GroupToken string
	Price      string
}

// UserEdit is one operator edit of a user's price and/or multiplier figure,
// as raw text. Nil means the field was not touched.
type UserEdit struct {
	GroupToken string
	UserID     uuid.UUID
	Price      *string
	Multiplier *string
}

// SetOverridesInput represents the input for recording operator edits.
type SetOverridesInput struct {
	UserID      uuid.UUID
	GroupPrices []GroupPriceEdit
	UserEdits   []UserEdit
}

// SetOverridesOutput reports which inputs failed to parse and were ignored.
type SetOverridesOutput struct {
	InvalidFields []InvalidField
}

// SetOverridesUseCase records operator edits in the session's override store.
// It never recomputes anything; recalculation is a separate explicit step,
// matching the edit-then-apply interaction of the report screen.
type SetOverridesUseCase struct {
	sessions *SessionStore
}

// NewSetOverridesUseCase creates a new SetOverridesUseCase instance.
func NewSetOverridesUseCase(sessions *SessionStore) *SetOverridesUseCase {
	return &SetOverridesUseCase{
		sessions: sessions,
	}
}

// Execute stores the edits. Edits referencing a group that is not part of the
// loaded report are rejected; unparseable values are flagged and skipped.
func (uc *SetOverridesUseCase) Execute(ctx context.Context, input SetOverridesInput) (*SetOverridesOutput, error) {
	var output SetOverridesOutput

	err := uc.sessions.Mutate(input.UserID, func(session *Session) error {
		for _, edit := range input.GroupPrices {
			if err := uc.requireGroup(session, edit.GroupToken); err != nil {
				return err
			}
			session.Overrides.SetGroupPriceInput(edit.GroupToken, edit.Price)
		}

		for _, edit := range input.UserEdits {
			if err := uc.requireGroup(session, edit.GroupToken); err != nil {
				return err
			}
			if edit.Price != nil {
				session.Overrides.SetUserPriceInput(edit.GroupToken, edit.UserID, *edit.Price)
			}
			if edit.Multiplier != nil {
				session.Overrides.SetUserMultiplierInput(edit.GroupToken, edit.UserID, *edit.Multiplier)
			}
		}

		output.InvalidFields = session.Overrides.InvalidFields()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &output, nil
}

func (uc *SetOverridesUseCase) requireGroup(session *Session, groupToken string) error {
	for _, group := range session.State.Groups {
		if group.Token == groupToken {
			return nil
		}
	}
	return domainerror.NewCalculatorError(
		domainerror.ErrCodeUnknownGroup,
		"override references group "+groupToken+" which is not in the report",
		domainerror.ErrUnknownGroup,
	)
}
