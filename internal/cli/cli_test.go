package cli

import (
	"testing"

	"go.uber.org/zap"

	"github.com/tunalyze/tunalyze/internal/config"
	"github.com/tunalyze/tunalyze/internal/version"
)

func TestNewTunalyzeCommand(t *testing.T) {
	cmd := NewTunalyzeCommand(&config.Config{}, zap.NewNop())

	if cmd.Name != "tunalyze" {
		t.Errorf("Name = %q, want %q", cmd.Name, "tunalyze")
	}
	if cmd.Version != version.Semantic() {
		t.Errorf("Version = %q, want %q", cmd.Version, version.Semantic())
	}

	want := map[string]bool{
		"search":        false,
		"features":      false,
		"album-tracks":  false,
		"artist-albums": false,
	}
	for _, sub := range cmd.Commands {
		if _, ok := want[sub.Name]; ok {
			want[sub.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q is not registered", name)
		}
	}
}
