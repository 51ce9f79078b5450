// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/kwpeters/airliner/internal/clipboard"
	"github.com/kwpeters/airliner/internal/kill"
	"github.com/kwpeters/airliner/internal/view"
)

// ExecutionContext carries the capabilities handlers operate through.
// Handlers receive capabilities, not concrete editor internals: the
// active-view provider, the clipboard slot, and the kill accrual tracker.
type ExecutionContext struct {
	// Views provides the currently active view.
	Views view.Provider

	// Clipboard is the single global clipboard slot.
	Clipboard clipboard.Clipboard

	// Kill tracks the accrual window for kill operations.
	Kill *kill.Accrual
}

// New creates an empty execution context.
func New() *ExecutionContext {
	return &ExecutionContext{}
}

// WithViews returns the context with the view provider set.
func (ctx *ExecutionContext) WithViews(p view.Provider) *ExecutionContext {
	ctx.Views = p
	return ctx
}

// WithClipboard returns the context with the clipboard set.
func (ctx *ExecutionContext) WithClipboard(c clipboard.Clipboard) *ExecutionContext {
	ctx.Clipboard = c
	return ctx
}

// WithKill returns the context with the kill accrual tracker set.
func (ctx *ExecutionContext) WithKill(a *kill.Accrual) *ExecutionContext {
	ctx.Kill = a
	return ctx
}

// Validate checks that the context has all required components.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Views == nil {
		return ErrMissingViews
	}
	return nil
}

// ValidateForKill checks that the context is valid for kill operations.
func (ctx *ExecutionContext) ValidateForKill() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Clipboard == nil {
		return ErrMissingClipboard
	}
	if ctx.Kill == nil {
		return ErrMissingKill
	}
	return nil
}
