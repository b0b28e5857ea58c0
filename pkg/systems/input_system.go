package systems

import (
	"github.com/decker502/pumpballoon/pkg/components"
	"github.com/decker502/pumpballoon/pkg/ecs"
	"github.com/decker502/pumpballoon/pkg/utils"
)

// PointerSource 返回本帧是否刚发生点击/触摸以及位置
type PointerSource func() (pressed bool, x, y int)

// InputSystem 把点击/触摸分发给可点击实体
//
// 每次点击只分发给命中的最上层实体（Z 最大，Z 相同时后创建的优先）。
type InputSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerSource
}

// NewInputSystem 创建输入系统，pointer 为 nil 时使用鼠标/触摸输入
func NewInputSystem(em *ecs.EntityManager, pointer PointerSource) *InputSystem {
	if pointer == nil {
		pointer = utils.IsJustTouchedOrClicked
	}
	return &InputSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// Update 处理本帧输入
func (s *InputSystem) Update() {
	pressed, x, y := s.pointer()
	if !pressed {
		return
	}

	target, ok := s.HitTest(float64(x), float64(y))
	if !ok {
		return
	}

	clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, target)
	if clickable.OnPress != nil {
		clickable.OnPress()
	}
}

// HitTest 返回位于 (x, y) 的最上层可点击实体
func (s *InputSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ClickableComponent](s.entityManager)

	best := ecs.InvalidEntity
	bestZ := 0
	for _, id := range entities {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled {
			continue
		}

		originX, originY, z := 0.5, 0.5, 0
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			if !sprite.Visible {
				continue
			}
			originX, originY, z = sprite.OriginX, sprite.OriginY, sprite.Z
		}

		scaleX, scaleY := 1.0, 1.0
		if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			scaleX, scaleY = sc.ScaleX, sc.ScaleY
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		left, top, w, h := utils.AnchoredRect(pos.X, pos.Y, clickable.Width, clickable.Height, scaleX, scaleY, originX, originY)

		if !utils.PointInRect(x, y, left, top, w, h) {
			continue
		}

		// 结果按 ID 升序，>= 让后创建的实体在同层时胜出
		if best == ecs.InvalidEntity || z >= bestZ {
			best = id
			bestZ = z
		}
	}

	return best, best != ecs.InvalidEntity
}
