// Package balloon 实现打气球的交互状态机
//
// 玩家按打气筒给气球充气，达到按压阈值后气球自动漂浮：先上升，到达高度后向左漂移。
// 任何时候点击气球都会让它爆掉。
//
// Controller 独占全部逻辑状态，只通过 Object / Scheduler 接口向渲染层下发命令，
// 渲染层不回写任何状态。所有方法都在 ebiten 的 Update 中同步调用，不需要加锁。
package balloon

import (
	"log"

	"github.com/decker502/pumpballoon/pkg/config"
)

// 气球的纹理键，由场景在加载资源时注册
const (
	TextureBalloon      = "balloon"
	TextureBalloonBurst = "balloonBurst"
)

// FloatPhase 漂浮阶段，只会向前推进：NotFloating → Rising → DriftingLeft
type FloatPhase int

const (
	NotFloating FloatPhase = iota
	Rising
	DriftingLeft
)

func (p FloatPhase) String() string {
	switch p {
	case NotFloating:
		return "NotFloating"
	case Rising:
		return "Rising"
	case DriftingLeft:
		return "DriftingLeft"
	default:
		return "Unknown"
	}
}

// Appearance 气球外观
type Appearance int

const (
	Intact Appearance = iota
	Burst
)

func (a Appearance) String() string {
	if a == Burst {
		return "Burst"
	}
	return "Intact"
}

// Object 是渲染层中一个可交互对象的句柄
type Object interface {
	SetScale(f float64)
	Scale() float64
	SetPosition(x, y float64)
	Position() (x, y float64)
	SetVisible(visible bool)
	SetTexture(key string)
	SetVelocity(vx, vy float64)
}

// Scheduler 在 delay 秒后、于同一逻辑线程上调用 fn 恰好一次
type Scheduler interface {
	ScheduleDelayed(delay float64, fn func())
}

// Parts 控制器驱动的三个场景对象
type Parts struct {
	Balloon Object
	Marker  Object // 气球上的字母
	Pump    Object
}

// Controller 打气 → 漂浮 → 爆炸 状态机
type Controller struct {
	pumpCfg  config.PumpConfig
	floatCfg config.FloatConfig

	balloon   Object
	marker    Object
	pump      Object
	scheduler Scheduler

	// 打气筒的静止位置，冷却结束时复位到这里
	pumpRestX, pumpRestY float64

	pumpPressCount int
	pumpCooldown   bool
	isFloating     bool
	phase          FloatPhase
	isPopped       bool
	appearance     Appearance
	scale          float64
}

// NewController 创建控制器，并把气球缩放和字母位置同步到初始状态
func NewController(pumpCfg config.PumpConfig, floatCfg config.FloatConfig, parts Parts, scheduler Scheduler) *Controller {
	c := &Controller{
		pumpCfg:    pumpCfg,
		floatCfg:   floatCfg,
		balloon:    parts.Balloon,
		marker:     parts.Marker,
		pump:       parts.Pump,
		scheduler:  scheduler,
		phase:      NotFloating,
		appearance: Intact,
		scale:      pumpCfg.InitialScale,
	}

	c.pumpRestX, c.pumpRestY = c.pump.Position()
	c.balloon.SetScale(c.scale)
	c.balloon.SetTexture(TextureBalloon)
	x, y := c.balloon.Position()
	c.marker.SetPosition(x, y)
	c.marker.SetVisible(true)

	return c
}

// OnPumpPressed 处理打气筒按压
//
// 冷却中或已经在漂浮时按压被忽略。爆掉的气球不再变大，但按压仍然计数。
func (c *Controller) OnPumpPressed() {
	if c.pumpCooldown || c.isFloating {
		return
	}

	c.pumpCooldown = true
	c.pump.SetPosition(c.pumpRestX, c.pumpRestY+c.pumpCfg.Nudge)

	if !c.isPopped && c.scale < c.pumpCfg.MaxScale {
		c.scale += c.pumpCfg.Increment
		if c.scale > c.pumpCfg.MaxScale {
			c.scale = c.pumpCfg.MaxScale
		}
		c.balloon.SetScale(c.scale)
		log.Printf("[Balloon] Pump pressed, balloon scaled to %.2f", c.scale)
	}

	c.scheduler.ScheduleDelayed(c.pumpCfg.Cooldown, c.endPumpCooldown)

	c.pumpPressCount++
	log.Printf("[Balloon] Pump counter: %d", c.pumpPressCount)

	if c.pumpPressCount == c.pumpCfg.PressThreshold {
		c.isFloating = true
		c.phase = Rising
		log.Printf("[Balloon] Threshold reached, balloon starts rising")
	}
}

func (c *Controller) endPumpCooldown() {
	c.pump.SetPosition(c.pumpRestX, c.pumpRestY)
	c.pumpCooldown = false
}

// OnObjectPressed 处理气球被点击：第一次点击爆掉气球并隐藏字母，之后的点击无效
//
// 不修改漂浮阶段，也不改已经下发的速度，爆掉的气球会继续沿原路径移动。
func (c *Controller) OnObjectPressed() {
	if c.appearance == Burst {
		return
	}

	c.appearance = Burst
	c.isPopped = true
	c.balloon.SetTexture(TextureBalloonBurst)
	c.marker.SetVisible(false)
	log.Printf("[Balloon] Balloon burst (phase=%s)", c.phase)
}

// OnTick 每帧调用一次，漂浮时下发速度并让字母跟随气球
func (c *Controller) OnTick() {
	if !c.isFloating {
		return
	}

	switch c.phase {
	case Rising:
		c.balloon.SetVelocity(0, c.floatCfg.RiseVelocity)
		if _, y := c.balloon.Position(); y <= c.floatCfg.RiseStopY {
			c.balloon.SetVelocity(0, 0)
			c.phase = DriftingLeft
			log.Printf("[Balloon] Reached y=%.1f, drifting left", y)
		}
	case DriftingLeft:
		c.balloon.SetVelocity(c.floatCfg.DriftVelocity, 0)
	}

	x, y := c.balloon.Position()
	c.marker.SetPosition(x, y)
}

// PressCount 返回被接受的打气次数
func (c *Controller) PressCount() int { return c.pumpPressCount }

// CooldownActive 返回打气筒是否处于冷却中
func (c *Controller) CooldownActive() bool { return c.pumpCooldown }

// IsFloating 返回气球是否已开始漂浮
func (c *Controller) IsFloating() bool { return c.isFloating }

// Phase 返回当前漂浮阶段
func (c *Controller) Phase() FloatPhase { return c.phase }

// IsPopped 返回气球是否已爆
func (c *Controller) IsPopped() bool { return c.isPopped }

// Appearance 返回气球外观
func (c *Controller) Appearance() Appearance { return c.appearance }

// Scale 返回气球当前缩放
func (c *Controller) Scale() float64 { return c.scale }
