package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetFallsBackToDefault(t *testing.T) {
	got := Get("no-such-theme")
	if got.Name != "default" {
		t.Errorf("Get(no-such-theme).Name = %q, want default", got.Name)
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"default", "light", "mono"} {
		if Get(name).Name != name {
			t.Errorf("builtin %q not registered", name)
		}
	}
}

func TestBuiltinPalettesComplete(t *testing.T) {
	// Every diagram role must be colored in every builtin; a blank role
	// would render uncolored primitives.
	for _, name := range Names() {
		th := Get(name)
		roles := map[string]string{
			"LightCone": th.LightCone, "ConeFill": th.ConeFill,
			"Axis": th.Axis, "Grid": th.Grid, "ShearAxis": th.ShearAxis,
			"Simultaneity": th.Simultaneity, "ConstPosition": th.ConstPosition,
			"Worldline": th.Worldline, "RestWorldline": th.RestWorldline,
			"Event": th.EventColor, "EventLine": th.EventLine,
			"StationaryText": th.StationaryText, "MovingText": th.MovingText,
		}
		for role, color := range roles {
			if color == "" {
				t.Errorf("theme %q: role %s has no color", name, role)
			}
		}
	}
}

func TestSetCurrent(t *testing.T) {
	defer SetCurrent("default")
	SetCurrent("mono")
	if Current.Name != "mono" {
		t.Errorf("Current.Name = %q after SetCurrent(mono)", Current.Name)
	}
}

func TestLoadFileInheritsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	data := []byte("name = \"custom\"\ninherit = \"mono\"\nworldline = \"#123456\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if th.Worldline != "#123456" {
		t.Errorf("override not applied: worldline = %q", th.Worldline)
	}
	if th.Axis != Get("mono").Axis {
		t.Errorf("inherit not applied: axis = %q", th.Axis)
	}
	if Get("custom").Name != "custom" {
		t.Error("loaded theme not registered")
	}
}

func TestLoadFileNameDefaultsToFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sunset.toml")
	if err := os.WriteFile(path, []byte("accent = \"#ff8800\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if th.Name != "sunset" {
		t.Errorf("theme name = %q, want sunset", th.Name)
	}
}

func TestLoadDirMissingIsNotError(t *testing.T) {
	if err := LoadDir(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Errorf("LoadDir on missing dir = %v, want nil", err)
	}
}
