package commands

import (
	"context"
)

// UpdateTerminalSettingsCommandHandler applies a partial settings update to
// the terminal.
type UpdateTerminalSettingsCommandHandler struct {
	uowFactory TerminalUoWFactory
}

// NewUpdateTerminalSettingsCommandHandler creates a handler for settings updates.
func NewUpdateTerminalSettingsCommandHandler(uowFactory TerminalUoWFactory) UpdateTerminalSettingsCommandHandler {
	return UpdateTerminalSettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settings update within one transaction.
func (h *UpdateTerminalSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateTerminalSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	terminalRepo := uow.TerminalRepository()
	term, err := terminalRepo.Get(ctx)
	if err != nil {
		return err
	}

	patch := cmd.Patch()
	if patch.UserRole != nil {
		if err = term.SetUserRole(*patch.UserRole); err != nil {
			return err
		}
	}
	if patch.RushMode != nil {
		term.SetRushMode(*patch.RushMode)
	}
	if patch.ShowReadinessView != nil {
		term.SetShowReadinessView(*patch.ShowReadinessView)
	}
	if patch.SearchQuery != nil {
		term.SetSearchQuery(*patch.SearchQuery)
	}
	if patch.SelectedCategory != nil {
		term.SetSelectedCategory(*patch.SelectedCategory)
	}

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
