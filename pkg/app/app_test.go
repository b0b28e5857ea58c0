package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/pumpballoon/pkg/config"
	"github.com/decker502/pumpballoon/pkg/embedded"
)

func TestLoadSceneConfigEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		config.BalloonConfigPath: &fstest.MapFile{Data: []byte("pump:\n  pressThreshold: 4\n")},
	})

	cfg, err := LoadSceneConfig("")
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if cfg.Pump.PressThreshold != 4 {
		t.Errorf("expected pressThreshold 4, got %d", cfg.Pump.PressThreshold)
	}
}

func TestLoadSceneConfigEmbeddedInvalid(t *testing.T) {
	embedded.Init(fstest.MapFS{
		config.BalloonConfigPath: &fstest.MapFile{Data: []byte("pump:\n  increment: -1\n")},
	})

	if _, err := LoadSceneConfig(""); err == nil {
		t.Error("expected error for invalid embedded config")
	}
}

func TestLoadSceneConfigFromDisk(t *testing.T) {
	// 磁盘路径优先，内嵌配置不参与
	embedded.Init(fstest.MapFS{})

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("float:\n  riseStopY: 200\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadSceneConfig(path)
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if cfg.Float.RiseStopY != 200 {
		t.Errorf("expected riseStopY 200, got %f", cfg.Float.RiseStopY)
	}

	if _, err := LoadSceneConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
