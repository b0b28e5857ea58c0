package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BalloonConfigPath 是内嵌默认配置在 embed.FS 中的路径
const BalloonConfigPath = "data/balloon.yaml"

// BalloonConfig 打气球场景的完整配置
//
// 配置文件位置: data/balloon.yaml（内嵌），可通过 --config 指定磁盘文件覆盖。
type BalloonConfig struct {
	Window   WindowConfig      `yaml:"window"`
	Pump     PumpConfig        `yaml:"pump"`
	Float    FloatConfig       `yaml:"float"`
	Layout   LayoutConfig      `yaml:"layout"`
	Textures map[string]string `yaml:"textures"`
}

// WindowConfig 窗口与逻辑屏幕配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // 十六进制颜色，如 "#ffffff"
}

// PumpConfig 打气阶段参数
type PumpConfig struct {
	// Increment 每次有效按压增加的缩放
	Increment float64 `yaml:"increment"`
	// MaxScale 缩放上限，达到后继续打气不再变大
	MaxScale float64 `yaml:"maxScale"`
	// InitialScale 气球初始缩放
	InitialScale float64 `yaml:"initialScale"`
	// PressThreshold 第几次有效按压时气球开始漂浮
	PressThreshold int `yaml:"pressThreshold"`
	// Cooldown 按压后的冷却时间（秒），冷却期间的按压被忽略
	Cooldown float64 `yaml:"cooldown"`
	// Nudge 按压时打气筒下压的像素
	Nudge float64 `yaml:"nudge"`
}

// FloatConfig 漂浮阶段参数
type FloatConfig struct {
	// RiseVelocity 上升阶段的竖直速度（像素/秒，负值向上）
	RiseVelocity float64 `yaml:"riseVelocity"`
	// DriftVelocity 漂移阶段的水平速度（像素/秒，负值向左）
	DriftVelocity float64 `yaml:"driftVelocity"`
	// RiseStopY 上升到 y <= RiseStopY 时转入漂移
	RiseStopY float64 `yaml:"riseStopY"`
	// CollideWorldBounds 为 true 时气球被限制在屏幕内
	CollideWorldBounds bool `yaml:"collideWorldBounds"`
}

// Point 场景中的一个坐标
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpritePlacement 单个精灵的摆放
type SpritePlacement struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

// LayoutConfig 场景布局
type LayoutConfig struct {
	// Balloon 气球初始位置，初始缩放取 pump.initialScale
	Balloon Point           `yaml:"balloon"`
	Machine SpritePlacement `yaml:"machine"`
	// PumpOffsetY 打气筒相对机器的竖直偏移
	PumpOffsetY float64 `yaml:"pumpOffsetY"`
	PumpScale   float64 `yaml:"pumpScale"`
	// OutletGap 出气口与机器左缘的间距
	OutletGap     float64 `yaml:"outletGap"`
	OutletOffsetY float64 `yaml:"outletOffsetY"`
	OutletScale   float64 `yaml:"outletScale"`
	// MarkerSize 字母标记的显示尺寸（像素）
	MarkerSize float64 `yaml:"markerSize"`
}

// DefaultBalloonConfig 返回与内嵌 data/balloon.yaml 相同的默认值
func DefaultBalloonConfig() *BalloonConfig {
	return &BalloonConfig{
		Window: WindowConfig{
			Width:      1600,
			Height:     900,
			Title:      "Pump Balloon",
			Background: "#ffffff",
		},
		Pump: PumpConfig{
			Increment:      0.05,
			MaxScale:       0.8,
			InitialScale:   0.3,
			PressThreshold: 3,
			Cooldown:       0.2,
			Nudge:          20,
		},
		Float: FloatConfig{
			RiseVelocity:       -50,
			DriftVelocity:      -100,
			RiseStopY:          150,
			CollideWorldBounds: false,
		},
		Layout: LayoutConfig{
			Balloon:       Point{X: 1130, Y: 390},
			Machine:       SpritePlacement{X: 1380, Y: 570, Scale: 0.7},
			PumpOffsetY:   -200,
			PumpScale:     0.5,
			OutletGap:     55,
			OutletOffsetY: -30,
			OutletScale:   0.5,
			MarkerSize:    50,
		},
		Textures: map[string]string{},
	}
}

// ParseBalloonConfig 解析 YAML 配置
//
// 未出现在 YAML 中的字段保留默认值，因此配置文件只需写出要改的部分。
func ParseBalloonConfig(data []byte) (*BalloonConfig, error) {
	cfg := DefaultBalloonConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse balloon config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balloon config: %w", err)
	}

	return cfg, nil
}

// LoadBalloonConfig 从磁盘加载配置文件
func LoadBalloonConfig(path string) (*BalloonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balloon config: %w", err)
	}
	return ParseBalloonConfig(data)
}

// Validate 验证配置有效性
func (c *BalloonConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := ParseHexColor(c.Window.Background); err != nil {
		return fmt.Errorf("window background: %w", err)
	}

	if c.Pump.Increment <= 0 {
		return fmt.Errorf("pump increment must be positive, got %.3f", c.Pump.Increment)
	}
	if c.Pump.InitialScale <= 0 {
		return fmt.Errorf("pump initialScale must be positive, got %.3f", c.Pump.InitialScale)
	}
	if c.Pump.MaxScale <= c.Pump.InitialScale {
		return fmt.Errorf("pump maxScale(%.3f) must be greater than initialScale(%.3f)",
			c.Pump.MaxScale, c.Pump.InitialScale)
	}
	if c.Pump.PressThreshold < 1 {
		return fmt.Errorf("pump pressThreshold must be >= 1, got %d", c.Pump.PressThreshold)
	}
	if c.Pump.Cooldown < 0 {
		return fmt.Errorf("pump cooldown must be >= 0, got %.3f", c.Pump.Cooldown)
	}

	if c.Float.RiseVelocity >= 0 {
		return fmt.Errorf("float riseVelocity must be negative (upward), got %.1f", c.Float.RiseVelocity)
	}

	if c.Layout.MarkerSize <= 0 {
		return fmt.Errorf("layout markerSize must be positive, got %.1f", c.Layout.MarkerSize)
	}

	return nil
}
