package calculator

import (
	"context"

	"github.com/google/uuid"
)

// ToggleGroupInput represents the input for toggling a group's collapse state.
type ToggleGroupInput struct {
	UserID     uuid.UUID
	GroupToken string
}

// ToggleGroupOutput represents the output of toggling a group.
type ToggleGroupOutput struct {
	GroupToken string
	Collapsed  bool
}

// ToggleGroupUseCase flips the collapsed flag of one report group. Purely
// presentational; totals are untouched.
type ToggleGroupUseCase struct {
	sessions *SessionStore
}

// NewToggleGroupUseCase creates a new ToggleGroupUseCase instance.
func NewToggleGroupUseCase(sessions *SessionStore) *ToggleGroupUseCase {
	return &ToggleGroupUseCase{
		sessions: sessions,
	}
}

// Execute toggles the group's collapse flag.
func (uc *ToggleGroupUseCase) Execute(ctx context.Context, input ToggleGroupInput) (*ToggleGroupOutput, error) {
	var output ToggleGroupOutput

	err := uc.sessions.Mutate(input.UserID, func(session *Session) error {
		next, err := ToggleGroup(session.State, input.GroupToken)
		if err != nil {
			return err
		}
		session.State = next
		output.GroupToken = input.GroupToken
		output.Collapsed = next.Collapsed[input.GroupToken]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &output, nil
}
