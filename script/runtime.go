// Package script runs tengo scripts in response to playback frame events.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/flipbook/anim"
)

// The script body defines onEvent; this snippet is appended so each
// dispatch only has to set the globals and run.
const eventDispatchScript = `
onEvent(__engine, __event, __payload, __index, __col, __row)
`

// Runtime compiles a frame-event script once and dispatches events to its
// onEvent(engine, event, payload, index, col, row) function. The __state
// global persists between dispatches so scripts can accumulate state.
type Runtime struct {
	compiled *tengo.Compiled
	state    map[string]any
	onError  func(error)
}

// New compiles src. The script must define onEvent.
func New(src []byte) (*Runtime, error) {
	full := string(src) + "\n" + eventDispatchScript
	s := tengo.NewScript([]byte(full))
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__event", "")
	_ = s.Add("__payload", "")
	_ = s.Add("__index", 0)
	_ = s.Add("__col", 0)
	_ = s.Add("__row", 0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &Runtime{
		compiled: compiled,
		state:    map[string]any{},
	}, nil
}

// SetErrorHandler installs a callback for script run errors. Script
// errors never stop playback.
func (r *Runtime) SetErrorHandler(fn func(error)) {
	r.onError = fn
}

// State returns the script's persistent state map as of the last
// dispatch.
func (r *Runtime) State() map[string]any {
	return r.state
}

// Handler returns an event handler that dispatches frame events to the
// script.
func (r *Runtime) Handler() anim.EventHandler {
	return func(index int, coord anim.Frame, evt anim.Event) {
		c := r.compiled.Clone()
		_ = c.Set("__state", r.state)
		_ = c.Set("__event", string(evt.Type))
		_ = c.Set("__payload", evt.Payload)
		_ = c.Set("__index", index)
		_ = c.Set("__col", coord.Col)
		_ = c.Set("__row", coord.Row)
		if err := c.Run(); err != nil {
			if r.onError != nil {
				r.onError(fmt.Errorf("script: onEvent: %w", err))
			}
			return
		}
		if v := c.Get("__state"); v != nil {
			if m, ok := v.Value().(map[string]any); ok {
				r.state = m
			}
		}
	}
}
