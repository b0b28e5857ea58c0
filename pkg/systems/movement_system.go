package systems

import (
	"github.com/decker502/pumpballoon/pkg/components"
	"github.com/decker502/pumpballoon/pkg/ecs"
	"github.com/decker502/pumpballoon/pkg/utils"
)

// MovementSystem 把速度积分到位置上
//
// 可选的世界边界：拥有启用的 WorldBoundsComponent 的实体被限制在 [0, width] x [0, height] 内，
// 撞到哪条轴就把那条轴的速度清零。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	worldWidth    float64
	worldHeight   float64
}

// NewMovementSystem 创建移动系统
//
// 参数:
//   - em: 实体管理器
//   - worldWidth, worldHeight: 世界边界尺寸（逻辑屏幕像素）
func NewMovementSystem(em *ecs.EntityManager, worldWidth, worldHeight float64) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		worldWidth:    worldWidth,
		worldHeight:   worldHeight,
	}
}

// Update 推进所有运动实体
func (s *MovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.entityManager)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		if bounds, ok := ecs.GetComponent[*components.WorldBoundsComponent](s.entityManager, id); ok && bounds.Enabled {
			s.clampToWorld(id, pos, vel, bounds)
		}
	}
}

func (s *MovementSystem) clampToWorld(id ecs.EntityID, pos *components.PositionComponent, vel *components.VelocityComponent, bounds *components.WorldBoundsComponent) {
	scale := 1.0
	if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		scale = sc.Uniform()
	}

	originX, originY := 0.5, 0.5
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		originX, originY = sprite.OriginX, sprite.OriginY
	}

	left, top, w, h := utils.AnchoredRect(pos.X, pos.Y, bounds.Width, bounds.Height, scale, scale, originX, originY)
	minX := pos.X - left
	maxX := s.worldWidth - (w - minX)
	minY := pos.Y - top
	maxY := s.worldHeight - (h - minY)

	if pos.X < minX {
		pos.X = minX
		vel.VX = 0
	} else if pos.X > maxX {
		pos.X = maxX
		vel.VX = 0
	}

	if pos.Y < minY {
		pos.Y = minY
		vel.VY = 0
	} else if pos.Y > maxY {
		pos.Y = maxY
		vel.VY = 0
	}
}
