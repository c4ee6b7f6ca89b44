package commands

import (
	"errors"

	"pizzapos/internal/core/domain/model/terminal"
	"pizzapos/internal/pkg/guard"
)

var (
	ErrUpdateTerminalSettingsCommandIsNotConstructed = errors.New(
		"UpdateTerminalSettingsCommand must be created via NewUpdateTerminalSettingsCommand constructor",
	)
	ErrSettingsPatchIsEmpty = errors.New("settings patch must set at least one field")
)

// SettingsPatch is a partial update of the terminal settings. Nil fields are
// left unchanged.
type SettingsPatch struct {
	UserRole          *terminal.Role
	RushMode          *bool
	ShowReadinessView *bool
	SearchQuery       *string
	SelectedCategory  *string
}

func (p SettingsPatch) isEmpty() bool {
	return p.UserRole == nil &&
		p.RushMode == nil &&
		p.ShowReadinessView == nil &&
		p.SearchQuery == nil &&
		p.SelectedCategory == nil
}

// UpdateTerminalSettingsCommand represents a partial settings update: role,
// rush mode, readiness board and catalog filters.
type UpdateTerminalSettingsCommand struct { //nolint:recvcheck //using for validation
	patch SettingsPatch

	guard guard.ConstructorGuard
}

// NewUpdateTerminalSettingsCommand creates a settings update command.
func NewUpdateTerminalSettingsCommand(patch SettingsPatch) (UpdateTerminalSettingsCommand, error) {
	command := UpdateTerminalSettingsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if patch.isEmpty() {
		return UpdateTerminalSettingsCommand{}, ErrSettingsPatchIsEmpty
	}
	if patch.UserRole != nil {
		if err := patch.UserRole.Validate(); err != nil {
			return UpdateTerminalSettingsCommand{}, err
		}
	}
	command.patch = patch

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTerminalSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTerminalSettingsCommandIsNotConstructed)
}

// Patch returns the partial settings update.
func (c UpdateTerminalSettingsCommand) Patch() SettingsPatch {
	return c.patch
}
