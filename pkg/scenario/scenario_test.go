package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jajohns1/relativity-visualizer/pkg/frame"
)

func TestBuiltinsResolveAndValidate(t *testing.T) {
	for _, name := range Names() {
		s, err := Resolve(name)
		if err != nil {
			t.Errorf("Resolve(%q): %v", name, err)
			continue
		}
		if err := s.Validate(); err != nil {
			t.Errorf("builtin %q invalid: %v", name, err)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, err := Resolve("does-not-exist"); err == nil {
		t.Error("Resolve of unknown scenario should fail")
	}
}

func TestApplyReplacesModelState(t *testing.T) {
	m := frame.New()
	m.SetVelocity(0.1)
	m.AddEvent(9, 9)

	s, err := Resolve("train-platform")
	if err != nil {
		t.Fatal(err)
	}
	s.Apply(m)

	if m.Velocity() != 0.6 {
		t.Errorf("velocity = %v, want 0.6", m.Velocity())
	}
	if m.ActiveFrame() != frame.Stationary {
		t.Errorf("frame = %v, want Stationary", m.ActiveFrame())
	}
	evs := m.Events()
	if len(evs) != 2 {
		t.Fatalf("%d events, want 2 (stale events must be cleared)", len(evs))
	}
	if evs[0] != (frame.Event{X: -2, CT: 1}) || evs[1] != (frame.Event{X: 2, CT: 1}) {
		t.Errorf("events = %+v, order not preserved", evs)
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	doc := `
name: flyby
velocity: -0.5
frame: moving
units: si
events:
  - {x: 1, ct: 0.5}
  - {x: -1, ct: 2}
`
	path := filepath.Join(t.TempDir(), "flyby.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Name != "flyby" || s.Velocity != -0.5 || s.Frame != "moving" {
		t.Errorf("loaded scenario = %+v", s)
	}
	if len(s.Events) != 2 || s.Events[0] != (Event{X: 1, CT: 0.5}) {
		t.Errorf("events = %+v, order not preserved", s.Events)
	}
}

func TestLoadFileRejectsSuperluminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("name: bad\nvelocity: 1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("superluminal scenario should fail validation")
	}
}

func TestResolveFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.yaml")
	if err := os.WriteFile(path, []byte("name: ok\nvelocity: 0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(path): %v", err)
	}
	if s.Name != "ok" {
		t.Errorf("resolved scenario name = %q", s.Name)
	}
}
