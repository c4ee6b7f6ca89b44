package commands

import (
	"context"

	"pizzapos/internal/core/domain/model/terminal"
)

// ApplyTemplateCommandHandler resolves a template's entries in the catalog
// and appends them to the active cart as one undoable batch. Unknown
// template ids and unknown products inside a template are skipped silently.
type ApplyTemplateCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewApplyTemplateCommandHandler creates a handler for template application.
func NewApplyTemplateCommandHandler(uowFactory CartUoWFactory) ApplyTemplateCommandHandler {
	return ApplyTemplateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the apply-template command within one transaction.
func (h *ApplyTemplateCommandHandler) Handle(ctx context.Context, cmd ApplyTemplateCommand) error {
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

	cat, err := uow.CatalogRepository().Get(ctx)
	if err != nil {
		return err
	}

	template, ok := cat.TemplateByID(cmd.TemplateID())
	if !ok {
		return uow.Commit(ctx)
	}

	lines := make([]terminal.TemplateLine, 0, len(template.Entries))
	for _, entry := range template.Entries {
		product, found := cat.ProductByID(entry.ProductID)
		if !found {
			continue
		}
		lines = append(lines, terminal.TemplateLine{
			Product:       product,
			Customization: entry.Customization,
		})
	}

	terminalRepo := uow.TerminalRepository()
	term, err := terminalRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = term.ApplyTemplate(lines, cat.Options().Defaults()); err != nil {
		return err
	}

	if err = terminalRepo.Update(ctx, term); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
