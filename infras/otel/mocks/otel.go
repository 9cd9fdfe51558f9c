package mocks

import (
	"context"
	"sync"

	"frontdesk/infras/otel"
)

// Otel hands out recording scopes and keeps every one it opened.
type Otel struct {
	mu     sync.Mutex
	scopes map[string]*Scope
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := &Scope{Name: spanName}
	if o.scopes == nil {
		o.scopes = map[string]*Scope{}
	}

	o.scopes[spanName] = scope

	return ctx, scope
}

// Scope returns the latest scope opened under spanName, or nil.
func (o *Otel) Scope(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.scopes[spanName]
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &Otel{}
}
