package assign

import (
	"context"
	"log/slog"

	"github.com/cottand/typealg/internal/log"
	"github.com/cottand/typealg/term"
	"github.com/hashicorp/go-set/v3"
)

// Engine answers assignability questions under one Semantics.
// An Engine holds no mutable state and may be shared between goroutines.
type Engine struct {
	semantics Semantics
	boxing    bool
	logger    *slog.Logger
}

type Option func(*Engine)

// WithBoxing asks for primitives to be boxed before they are compared. The Semantics
// has the final say, see Semantics.Boxing.
func WithBoxing(boxing bool) Option {
	return func(e *Engine) { e.boxing = boxing }
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

func New(semantics Semantics, opts ...Option) *Engine {
	e := &Engine{semantics: semantics, logger: log.Section("assign")}
	for _, opt := range opts {
		opt(e)
	}
	e.boxing = semantics.Boxing(e.boxing)
	return e
}

func (e *Engine) Semantics() Semantics { return e.semantics }

// Boxing reports whether this engine boxes primitives
func (e *Engine) Boxing() bool { return e.boxing }

// Assignable reports whether a value of type payload may be used where receiver is expected
func (e *Engine) Assignable(receiver, payload term.Type) bool {
	return e.check().Assignable(receiver, payload)
}

// AnyAssignable reports whether at least one of payloads is assignable to receiver
func (e *Engine) AnyAssignable(receiver term.Type, payloads ...term.Type) bool {
	c := e.check()
	for _, p := range payloads {
		if c.Assignable(receiver, p) {
			return true
		}
	}
	return false
}

func (e *Engine) check() *Check {
	return &Check{
		semantics:  e.semantics,
		boxing:     e.boxing,
		logger:     e.logger,
		inProgress: set.New[visit](8),
	}
}

// Check is the state of one top-level assignability question. Hooks receive it and
// recurse through it.
type Check struct {
	semantics Semantics
	boxing    bool
	logger    *slog.Logger

	// inProgress holds the questions currently being answered further up the stack,
	// so that recursive bounds like `E extends Enum<E>` terminate
	inProgress *set.Set[visit]
	depth      int
}

type visit struct {
	semantics         string
	receiver, payload uint64
}

// Assignable answers a nested question under the semantics of c
func (c *Check) Assignable(receiver, payload term.Type) bool {
	if receiver == payload {
		return true
	}
	if c.boxing {
		receiver, payload = term.Box(receiver), term.Box(payload)
		if receiver == payload {
			return true
		}
	}
	key := visit{semantics: c.semantics.Name(), receiver: term.Hash(receiver), payload: term.Hash(payload)}
	if !c.inProgress.Insert(key) {
		c.logger.Debug("cut recursive question", "semantics", key.semantics, "receiver", receiver, "payload", payload)
		return false
	}
	c.depth++
	defer func() {
		c.depth--
		c.inProgress.Remove(key)
	}()

	rs, ps := shapeOf(receiver), shapeOf(payload)
	result := hooks[rs][ps](c.semantics, c, receiver, payload)
	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.logger.Debug("assignable",
			"semantics", key.semantics,
			"receiver", receiver, "receiverShape", rs,
			"payload", payload, "payloadShape", ps,
			"depth", c.depth,
			"result", result)
	}
	return result
}

// Covariant is a view of c under Covariant semantics, sharing its cycle guard
func (c *Check) Covariant() *Check {
	return c.Under(Covariant)
}

// Under is a view of c under other semantics, sharing its cycle guard.
// The boxing setting of c is kept.
func (c *Check) Under(semantics Semantics) *Check {
	if c.semantics == semantics {
		return c
	}
	return &Check{
		semantics:  semantics,
		boxing:     c.boxing,
		logger:     c.logger,
		inProgress: c.inProgress,
		depth:      c.depth,
	}
}

// Semantics is the policy c answers under
func (c *Check) Semantics() Semantics { return c.semantics }
