package commands

import (
	"errors"

	"pizzapos/internal/pkg/guard"
)

var (
	ErrApplyTemplateCommandIsNotConstructed = errors.New(
		"ApplyTemplateCommand must be created via NewApplyTemplateCommand constructor",
	)
	ErrTemplateIDIsRequired = errors.New("templateId is required")
)

// ApplyTemplateCommand represents a request to append every line of a
// predefined order template to the active cart in one batch.
type ApplyTemplateCommand struct { //nolint:recvcheck //using for validation
	templateID string

	guard guard.ConstructorGuard
}

// NewApplyTemplateCommand creates a command to apply an order template.
func NewApplyTemplateCommand(templateID string) (ApplyTemplateCommand, error) {
	command := ApplyTemplateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if templateID == "" {
		return ApplyTemplateCommand{}, ErrTemplateIDIsRequired
	}
	command.templateID = templateID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyTemplateCommand) Validate() error {
	return c.guard.Validate(ErrApplyTemplateCommandIsNotConstructed)
}

// TemplateID returns the id of the template to apply.
func (c ApplyTemplateCommand) TemplateID() string {
	return c.templateID
}
