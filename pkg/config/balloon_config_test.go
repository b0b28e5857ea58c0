package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseBalloonConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *BalloonConfig)
	}{
		{
			name:        "empty document keeps defaults",
			yamlContent: ``,
			validate: func(t *testing.T, cfg *BalloonConfig) {
				if !reflect.DeepEqual(cfg, DefaultBalloonConfig()) {
					t.Errorf("expected defaults, got %+v", cfg)
				}
			},
		},
		{
			name: "partial override",
			yamlContent: `
pump:
  pressThreshold: 5
float:
  collideWorldBounds: true
`,
			validate: func(t *testing.T, cfg *BalloonConfig) {
				if cfg.Pump.PressThreshold != 5 {
					t.Errorf("expected pressThreshold = 5, got %d", cfg.Pump.PressThreshold)
				}
				if !cfg.Float.CollideWorldBounds {
					t.Error("expected collideWorldBounds = true")
				}
				// 未写出的字段保留默认值
				if cfg.Pump.Increment != 0.05 {
					t.Errorf("expected increment = 0.05, got %f", cfg.Pump.Increment)
				}
				if cfg.Float.RiseStopY != 150 {
					t.Errorf("expected riseStopY = 150, got %f", cfg.Float.RiseStopY)
				}
			},
		},
		{
			name: "texture paths",
			yamlContent: `
textures:
  balloon: "assets/balloon.png"
  letter: ""
`,
			validate: func(t *testing.T, cfg *BalloonConfig) {
				if cfg.Textures["balloon"] != "assets/balloon.png" {
					t.Errorf("expected balloon texture path, got %q", cfg.Textures["balloon"])
				}
				if path, ok := cfg.Textures["letter"]; !ok || path != "" {
					t.Errorf("expected empty letter path, got %q (present=%v)", path, ok)
				}
			},
		},
		{
			name:        "malformed yaml",
			yamlContent: "pump: [1, 2",
			wantErr:     true,
			errContains: "failed to parse",
		},
		{
			name: "non-positive increment",
			yamlContent: `
pump:
  increment: 0
`,
			wantErr:     true,
			errContains: "increment",
		},
		{
			name: "max scale below initial scale",
			yamlContent: `
pump:
  initialScale: 0.5
  maxScale: 0.4
`,
			wantErr:     true,
			errContains: "maxScale",
		},
		{
			name: "zero threshold",
			yamlContent: `
pump:
  pressThreshold: 0
`,
			wantErr:     true,
			errContains: "pressThreshold",
		},
		{
			name: "downward rise velocity",
			yamlContent: `
float:
  riseVelocity: 50
`,
			wantErr:     true,
			errContains: "riseVelocity",
		},
		{
			name: "bad background color",
			yamlContent: `
window:
  background: "white"
`,
			wantErr:     true,
			errContains: "background",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseBalloonConfig([]byte(tt.yamlContent))

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

// 内嵌的默认配置文件必须与 DefaultBalloonConfig 保持一致（纹理表除外）
func TestBundledBalloonConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadBalloonConfig(filepath.Join("..", "..", BalloonConfigPath))
	if err != nil {
		t.Fatalf("failed to load bundled config: %v", err)
	}

	defaults := DefaultBalloonConfig()
	if cfg.Window != defaults.Window {
		t.Errorf("window mismatch: %+v vs %+v", cfg.Window, defaults.Window)
	}
	if cfg.Pump != defaults.Pump {
		t.Errorf("pump mismatch: %+v vs %+v", cfg.Pump, defaults.Pump)
	}
	if cfg.Float != defaults.Float {
		t.Errorf("float mismatch: %+v vs %+v", cfg.Float, defaults.Float)
	}
	if cfg.Layout != defaults.Layout {
		t.Errorf("layout mismatch: %+v vs %+v", cfg.Layout, defaults.Layout)
	}
	for key, path := range cfg.Textures {
		if path != "" {
			t.Errorf("bundled texture %q should use a placeholder, got %q", key, path)
		}
	}
}

func TestLoadBalloonConfig(t *testing.T) {
	t.Run("file not found", func(t *testing.T) {
		_, err := LoadBalloonConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("disk override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "balloon.yaml")
		content := "window:\n  title: \"Custom\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadBalloonConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Window.Title != "Custom" {
			t.Errorf("expected title Custom, got %q", cfg.Window.Title)
		}
		if cfg.Window.Width != 1600 {
			t.Errorf("expected default width 1600, got %d", cfg.Window.Width)
		}
	})
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    [4]uint8
		wantErr bool
	}{
		{input: "#ffffff", want: [4]uint8{255, 255, 255, 255}},
		{input: "#1a2b3c", want: [4]uint8{0x1a, 0x2b, 0x3c, 255}},
		{input: "00000080", want: [4]uint8{0, 0, 0, 0x80}},
		{input: " #FF0000 ", want: [4]uint8{255, 0, 0, 255}},
		{input: "#fff", wantErr: true},
		{input: "#gggggg", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseHexColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := [4]uint8{c.R, c.G, c.B, c.A}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
