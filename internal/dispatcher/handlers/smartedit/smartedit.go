package smartedit

import (
	"github.com/kwpeters/airliner/internal/dispatcher/execctx"
	"github.com/kwpeters/airliner/internal/dispatcher/handler"
	"github.com/kwpeters/airliner/internal/input"
)

// Action names for smart editing operations.
const (
	ActionBackspace = "smartedit.backspace" // hungry backspace
	ActionCutToEOL  = "smartedit.cutToEOL"  // accruing kill to end of line
)

// Actions lists every action this package handles, for registration.
var Actions = []string{ActionBackspace, ActionCutToEOL}

// Handler handles smart editing actions.
type Handler struct{}

// NewHandler creates a new smart editing handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the smartedit namespace.
func (h *Handler) Namespace() string {
	return "smartedit"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionBackspace, ActionCutToEOL:
		return true
	}
	return false
}

// HandleAction processes a smart editing action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	switch action.Name {
	case ActionBackspace:
		if err := ctx.Validate(); err != nil {
			return handler.Error(err)
		}
		return h.backspace(ctx)
	case ActionCutToEOL:
		if err := ctx.ValidateForKill(); err != nil {
			return handler.Error(err)
		}
		return h.cutToEOL(ctx)
	default:
		return handler.Errorf("unknown smartedit action: %s", action.Name)
	}
}
