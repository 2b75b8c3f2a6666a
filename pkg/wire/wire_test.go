package wire

import (
	"testing"

	"github.com/dspforge/synthcore/pkg/engine"
)

func TestEncodeDecodeCommandRoundTrip(t *testing.T) {
	cmd := engine.NoteStart{Note: 60, Row: 1, Velocity: 0.8}

	data, err := EncodeCommand(cmd)
	if err != nil {
		t.Fatalf("EncodeCommand: %v", err)
	}

	want := `{"NoteStart":{"Note":60,"Row":1,"Velocity":0.8}}`
	if string(data) != want {
		t.Errorf("encoded = %s, want %s", data, want)
	}

	decoded, err := DecodeCommand(data)
	if err != nil {
		t.Fatalf("DecodeCommand: %v", err)
	}
	got, ok := decoded.(engine.NoteStart)
	if !ok {
		t.Fatalf("decoded type = %T, want engine.NoteStart", decoded)
	}
	if got != cmd {
		t.Errorf("decoded = %+v, want %+v", got, cmd)
	}
}

func TestEncodeDecodeEventRoundTrip(t *testing.T) {
	event := engine.GraphError{Reason: "cycle without postponable"}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	got, ok := decoded.(engine.GraphError)
	if !ok {
		t.Fatalf("decoded type = %T, want engine.GraphError", decoded)
	}
	if got != event {
		t.Errorf("decoded = %+v, want %+v", got, event)
	}
}

func TestDecodeCommandUnknownVariant(t *testing.T) {
	_, err := DecodeCommand([]byte(`{"NotARealCommand":{}}`))
	if err == nil {
		t.Error("expected an error for an unknown command variant")
	}
}

func TestDecodeCommandRejectsMultipleVariants(t *testing.T) {
	_, err := DecodeCommand([]byte(`{"Play":{}, "Stop":{}}`))
	if err == nil {
		t.Error("expected an error for an envelope with more than one variant")
	}
}
