package scenes

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/decker502/pumpballoon/pkg/balloon"
	"github.com/decker502/pumpballoon/pkg/config"
	"github.com/decker502/pumpballoon/pkg/ecs"
	"github.com/decker502/pumpballoon/pkg/entities"
	"github.com/decker502/pumpballoon/pkg/game"
	"github.com/decker502/pumpballoon/pkg/systems"
	"github.com/decker502/pumpballoon/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	debugFontSize   = 16
	debugLineHeight = 20
)

// 场景用到的纹理键
const (
	TextureBackground = "bg"
	TextureMachine    = "machine"
	TextureOutlet     = "outlet"
	TexturePump       = "pump"
	TextureLetter     = "letter"
)

// RequiredTextures 场景启动前必须注册的全部纹理
var RequiredTextures = []string{
	TextureBackground,
	TextureMachine,
	TextureOutlet,
	TexturePump,
	balloon.TextureBalloon,
	balloon.TextureBalloonBurst,
	TextureLetter,
}

// 绘制层级（从底到顶）
const (
	zBackground = iota
	zMachine
	zOutlet
	zPump
	zBalloon
	zMarker
)

// BalloonScene 打气球场景
//
// 场景只负责搭建实体和按固定顺序驱动系统，所有交互逻辑都在 balloon.Controller 中。
// 每帧顺序：输入 → 定时器 → 移动 → 控制器 tick → 清理实体。
// tick 放在移动之后，读到的是本帧的最终位置，字母与气球在绘制时完全重合。
type BalloonScene struct {
	cfg             *config.BalloonConfig
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	background      color.RGBA

	inputSystem    *systems.InputSystem
	timerSystem    *systems.TimerSystem
	movementSystem *systems.MovementSystem
	renderSystem   *systems.RenderSystem

	controller *balloon.Controller
	balloonObj *entities.ObjectHandle
	markerObj  *entities.ObjectHandle
	pumpObj    *entities.ObjectHandle

	showDebug bool
	debugFont *text.GoTextFace
}

// NewBalloonScene 创建场景
//
// 参数:
//   - rm: 资源管理器，RequiredTextures 中的纹理必须已注册
//   - cfg: 场景配置
//   - pointer: 点击来源，nil 表示使用真实的鼠标/触摸输入
//
// 返回:
//   - *BalloonScene: 场景实例
//   - error: 纹理缺失或配置错误时返回
func NewBalloonScene(rm *game.ResourceManager, cfg *config.BalloonConfig, pointer systems.PointerSource) (*BalloonScene, error) {
	bg, err := config.ParseHexColor(cfg.Window.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background color: %w", err)
	}

	em := ecs.NewEntityManager()
	s := &BalloonScene{
		cfg:             cfg,
		entityManager:   em,
		resourceManager: rm,
		background:      bg,
		inputSystem:     systems.NewInputSystem(em, pointer),
		timerSystem:     systems.NewTimerSystem(em),
		movementSystem:  systems.NewMovementSystem(em, float64(cfg.Window.Width), float64(cfg.Window.Height)),
		renderSystem:    systems.NewRenderSystem(em),
	}

	if err := s.buildEntities(); err != nil {
		return nil, err
	}

	// 字体加载失败时调试信息回退到 ebitenutil.DebugPrintAt
	if face, err := rm.LoadFont(game.DefaultFontPath, debugFontSize); err != nil {
		log.Printf("[BalloonScene] Debug font unavailable: %v", err)
	} else {
		s.debugFont = face
	}

	s.controller = balloon.NewController(cfg.Pump, cfg.Float, balloon.Parts{
		Balloon: s.balloonObj,
		Marker:  s.markerObj,
		Pump:    s.pumpObj,
	}, s)

	s.pumpObj.OnPress(s.controller.OnPumpPressed)
	s.balloonObj.OnPress(s.controller.OnObjectPressed)

	log.Printf("[BalloonScene] Scene ready: %d entities", em.EntityCount())
	return s, nil
}

// buildEntities 按布局配置创建背景、机器、出气口、打气筒、气球和字母
func (s *BalloonScene) buildEntities() error {
	layout := s.cfg.Layout
	em := s.entityManager
	rm := s.resourceManager

	bgImage := rm.GetImage(TextureBackground)
	if bgImage == nil {
		return fmt.Errorf("texture %q not loaded", TextureBackground)
	}
	bgScaleX, bgScaleY := entities.DisplayScale(bgImage, float64(s.cfg.Window.Width), float64(s.cfg.Window.Height))
	if _, err := entities.NewSpriteEntity(em, rm, entities.SpriteSpec{
		Texture: TextureBackground,
		ScaleX:  bgScaleX,
		ScaleY:  bgScaleY,
		Z:       zBackground,
	}); err != nil {
		return fmt.Errorf("failed to create background: %w", err)
	}

	machineID, err := entities.NewSpriteEntity(em, rm, entities.SpriteSpec{
		Texture: TextureMachine,
		X:       layout.Machine.X,
		Y:       layout.Machine.Y,
		ScaleX:  layout.Machine.Scale,
		ScaleY:  layout.Machine.Scale,
		OriginX: 0.5,
		OriginY: 0.5,
		Z:       zMachine,
	})
	if err != nil {
		return fmt.Errorf("failed to create machine: %w", err)
	}

	// 出气口贴在机器左侧
	machineImage := rm.GetImage(TextureMachine)
	machineHalfWidth := float64(machineImage.Bounds().Dx()) * layout.Machine.Scale / 2
	if _, err := entities.NewSpriteEntity(em, rm, entities.SpriteSpec{
		Texture: TextureOutlet,
		X:       layout.Machine.X - machineHalfWidth - layout.OutletGap,
		Y:       layout.Machine.Y + layout.OutletOffsetY,
		ScaleX:  layout.OutletScale,
		ScaleY:  layout.OutletScale,
		OriginX: 0.5,
		OriginY: 0.5,
		Z:       zOutlet,
	}); err != nil {
		return fmt.Errorf("failed to create outlet: %w", err)
	}

	pumpID, err := entities.NewSpriteEntity(em, rm, entities.SpriteSpec{
		Texture:   TexturePump,
		X:         layout.Machine.X,
		Y:         layout.Machine.Y + layout.PumpOffsetY,
		ScaleX:    layout.PumpScale,
		ScaleY:    layout.PumpScale,
		OriginX:   0.5,
		OriginY:   0.5,
		Z:         zPump,
		Clickable: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create pump: %w", err)
	}

	balloonID, err := entities.NewSpriteEntity(em, rm, entities.SpriteSpec{
		Texture:            balloon.TextureBalloon,
		X:                  layout.Balloon.X,
		Y:                  layout.Balloon.Y,
		ScaleX:             s.cfg.Pump.InitialScale,
		ScaleY:             s.cfg.Pump.InitialScale,
		OriginX:            0.5,
		OriginY:            0.5,
		Z:                  zBalloon,
		Clickable:          true,
		Movable:            true,
		CollideWorldBounds: s.cfg.Float.CollideWorldBounds,
	})
	if err != nil {
		return fmt.Errorf("failed to create balloon: %w", err)
	}

	letterImage := rm.GetImage(TextureLetter)
	if letterImage == nil {
		return fmt.Errorf("texture %q not loaded", TextureLetter)
	}
	markerScaleX, markerScaleY := entities.DisplayScale(letterImage, layout.MarkerSize, layout.MarkerSize)
	markerID, err := entities.NewSpriteEntity(em, rm, entities.SpriteSpec{
		Texture: TextureLetter,
		X:       layout.Balloon.X,
		Y:       layout.Balloon.Y,
		ScaleX:  markerScaleX,
		ScaleY:  markerScaleY,
		OriginX: 0.5,
		OriginY: 0.5,
		Z:       zMarker,
	})
	if err != nil {
		return fmt.Errorf("failed to create marker: %w", err)
	}

	log.Printf("[BalloonScene] machine=%d pump=%d balloon=%d marker=%d", machineID, pumpID, balloonID, markerID)

	s.pumpObj = entities.NewObjectHandle(em, rm, pumpID)
	s.balloonObj = entities.NewObjectHandle(em, rm, balloonID)
	s.markerObj = entities.NewObjectHandle(em, rm, markerID)
	return nil
}

// ScheduleDelayed 实现 balloon.Scheduler，回调由 TimerSystem 在同一帧循环中触发
func (s *BalloonScene) ScheduleDelayed(delay float64, fn func()) {
	entities.NewDelayedCall(s.entityManager, delay, fn)
}

// Update 推进一帧
func (s *BalloonScene) Update(deltaTime float64) {
	s.inputSystem.Update()
	s.timerSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.controller.OnTick()
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *BalloonScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.renderSystem.Draw(screen)

	if s.showDebug {
		s.drawDebugOverlay(screen)
	}
}

// SetDebug 开关调试信息覆盖层
func (s *BalloonScene) SetDebug(enabled bool) {
	s.showDebug = enabled
}

// ToggleDebug 切换调试信息覆盖层
func (s *BalloonScene) ToggleDebug() {
	s.showDebug = !s.showDebug
}

// Controller 返回场景的状态机（调试和测试用）
func (s *BalloonScene) Controller() *balloon.Controller {
	return s.controller
}

// Balloon 返回气球句柄（调试和测试用）
func (s *BalloonScene) Balloon() *entities.ObjectHandle {
	return s.balloonObj
}

// Marker 返回字母句柄（调试和测试用）
func (s *BalloonScene) Marker() *entities.ObjectHandle {
	return s.markerObj
}

// Pump 返回打气筒句柄（调试和测试用）
func (s *BalloonScene) Pump() *entities.ObjectHandle {
	return s.pumpObj
}

func (s *BalloonScene) drawDebugOverlay(screen *ebiten.Image) {
	lines := s.debugLines()

	if s.debugFont == nil {
		ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 10, 10)
		return
	}

	y := 10.0
	for _, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, y)
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(screen, line, s.debugFont, op)
		y += debugLineHeight
	}
}

func (s *BalloonScene) debugLines() []string {
	c := s.controller
	x, y := s.balloonObj.Position()
	vx, vy := s.balloonObj.Velocity()

	lines := []string{
		fmt.Sprintf("pumps: %d  cooldown: %v", c.PressCount(), c.CooldownActive()),
		fmt.Sprintf("scale: %.2f  appearance: %s", c.Scale(), c.Appearance()),
		fmt.Sprintf("phase: %s", c.Phase()),
		fmt.Sprintf("pos: (%.1f, %.1f)  vel: (%.1f, %.1f)", x, y, vx, vy),
		fmt.Sprintf("timers: %d  entities: %d", s.timerSystem.Pending(), s.entityManager.EntityCount()),
		fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS()),
	}
	if !utils.IsMobile() {
		lines = append(lines, "R: restart  F3: debug  F11: fullscreen")
	}
	return lines
}
