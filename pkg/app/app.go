// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/pumpballoon/pkg/config"
	"github.com/decker502/pumpballoon/pkg/embedded"
	"github.com/decker502/pumpballoon/pkg/game"
	"github.com/decker502/pumpballoon/pkg/scenes"
	"github.com/decker502/pumpballoon/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的场景配置文件，为空则使用内嵌的 data/balloon.yaml
	ConfigPath string
	// Debug 启动时显示调试信息覆盖层（运行中可按 F3 切换）
	Debug bool
}

// debugToggler 支持调试覆盖层的场景
type debugToggler interface {
	ToggleDebug()
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	sceneConfig              *config.BalloonConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := LoadSceneConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Window %dx%d, threshold=%d, cooldown=%.2fs",
		sceneConfig.Window.Width, sceneConfig.Window.Height,
		sceneConfig.Pump.PressThreshold, sceneConfig.Pump.Cooldown)

	// 创建资源管理器，未配置路径的纹理使用占位图
	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadTextures(sceneConfig.Textures, scenes.RequiredTextures, utils.GeneratePlaceholderTexture); err != nil {
		return nil, fmt.Errorf("纹理加载失败: %w", err)
	}

	// 工厂函数同时用于首次启动和按 R 重开
	newScene := func() (game.Scene, error) {
		scene, err := scenes.NewBalloonScene(resourceManager, sceneConfig, nil)
		if err != nil {
			return nil, err
		}
		scene.SetDebug(cfg.Debug)
		return scene, nil
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(newScene)

	scene, err := newScene()
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	sceneManager.SwitchTo(scene)

	log.Printf("[App] Balloon scene started")

	return &App{
		sceneManager: sceneManager,
		sceneConfig:  sceneConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadSceneConfig 加载场景配置
// path 为空时读取内嵌的默认配置，否则读取磁盘文件
func LoadSceneConfig(path string) (*config.BalloonConfig, error) {
	if path != "" {
		cfg, err := config.LoadBalloonConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败 (%s): %w", path, err)
		}
		log.Printf("[Config] 加载配置文件: %s", path)
		return cfg, nil
	}

	data, err := embedded.ReadFile(config.BalloonConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内嵌配置读取失败: %w", err)
	}
	cfg, err := config.ParseBalloonConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内嵌配置解析失败: %w", err)
	}
	log.Printf("[Config] 加载内嵌配置: %s", config.BalloonConfigPath)
	return cfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.sceneConfig.Window.Width, a.sceneConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.sceneConfig.Window.Width, a.sceneConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// 移动端没有键盘，快捷键只在桌面端处理
	if !utils.IsMobile() {
		a.handleShortcuts()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// handleShortcuts 处理 F11 全屏、R 重开、F3 调试信息
func (a *App) handleShortcuts() {
	if utils.IsFullscreenToggleRequested() {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if utils.IsRestartRequested() {
		a.sceneManager.Restart()
	}

	if utils.IsDebugToggleRequested() {
		if scene, ok := a.sceneManager.GetCurrentScene().(debugToggler); ok {
			scene.ToggleDebug()
		}
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.sceneConfig.Window.Width, a.sceneConfig.Window.Height
}

// SceneConfig 返回当前使用的场景配置（窗口尺寸和标题由 main 读取）
func (a *App) SceneConfig() *config.BalloonConfig {
	return a.sceneConfig
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
