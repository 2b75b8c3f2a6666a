// Package wire implements the JSON encoding of commands and events used
// when the core is addressed through an RPC bridge from a UI in another
// process: each enum variant is a tagged object {"Variant": {...fields}}.
// Ports are 0-based; floats are IEEE-754 doubles on the wire, truncated to
// single precision by the core.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/dspforge/synthcore/pkg/engine"
)

// EncodeCommand renders a command as its tagged-object wire form.
func EncodeCommand(cmd engine.Command) ([]byte, error) {
	name, ok := commandNames[fmt.Sprintf("%T", cmd)]
	if !ok {
		return nil, fmt.Errorf("wire: unknown command type %T", cmd)
	}
	return json.Marshal(map[string]engine.Command{name: cmd})
}

// EncodeEvent renders an event as its tagged-object wire form.
func EncodeEvent(event engine.Event) ([]byte, error) {
	name, ok := eventNames[fmt.Sprintf("%T", event)]
	if !ok {
		return nil, fmt.Errorf("wire: unknown event type %T", event)
	}
	return json.Marshal(map[string]engine.Event{name: event})
}

// DecodeCommand parses a tagged-object wire command into its concrete
// engine.Command type.
func DecodeCommand(data []byte) (engine.Command, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("wire: decode command envelope: %w", err)
	}
	if len(envelope) != 1 {
		return nil, fmt.Errorf("wire: command envelope must have exactly one variant, got %d", len(envelope))
	}
	for variant, body := range envelope {
		factory, ok := commandFactories[variant]
		if !ok {
			return nil, fmt.Errorf("wire: unknown command variant %q", variant)
		}
		return factory(body)
	}
	panic("unreachable")
}

// DecodeEvent parses a tagged-object wire event into its concrete
// engine.Event type.
func DecodeEvent(data []byte) (engine.Event, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("wire: decode event envelope: %w", err)
	}
	if len(envelope) != 1 {
		return nil, fmt.Errorf("wire: event envelope must have exactly one variant, got %d", len(envelope))
	}
	for variant, body := range envelope {
		factory, ok := eventFactories[variant]
		if !ok {
			return nil, fmt.Errorf("wire: unknown event variant %q", variant)
		}
		return factory(body)
	}
	panic("unreachable")
}
