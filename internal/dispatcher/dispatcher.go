// Package dispatcher routes actions to their handlers.
//
// Dispatch is serialized: one action runs to completion (context read,
// decision, mutation, clipboard write) before the next begins. The kill
// accrual check-then-act pair therefore always happens-before the next
// kill, without any background timer.
package dispatcher

import (
	"sync"

	"github.com/kwpeters/airliner/internal/dispatcher/execctx"
	"github.com/kwpeters/airliner/internal/dispatcher/handler"
	"github.com/kwpeters/airliner/internal/input"
)

// Dispatcher routes actions to registered handlers against a shared
// execution context.
type Dispatcher struct {
	mu       sync.Mutex // serializes Dispatch
	registry *Registry
	ctx      *execctx.ExecutionContext
}

// New creates a dispatcher with an empty registry.
func New(ctx *execctx.ExecutionContext) *Dispatcher {
	return &Dispatcher{
		registry: NewRegistry(),
		ctx:      ctx,
	}
}

// Registry returns the dispatcher's handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Register adds a handler for an action name.
func (d *Dispatcher) Register(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterNamespace registers a namespace handler for the given action
// names.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler, actionNames ...string) {
	adapted := handler.NewNamespaceAdapter(h)
	for _, name := range actionNames {
		d.registry.Register(name, adapted)
	}
}

// Dispatch executes the action and returns its result. Invocations are
// serialized; a command never observes another command's partial state.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	h := d.registry.Get(action.Name)
	if h == nil {
		return handler.Errorf("%w: %s", ErrNoHandler, action.Name)
	}
	return h.Handle(action, d.ctx)
}
