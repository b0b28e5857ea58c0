package entities

import (
	"github.com/decker502/pumpballoon/pkg/components"
	"github.com/decker502/pumpballoon/pkg/ecs"
)

// ObjectHandle 把一个 ECS 实体包装成可被控制器驱动的对象
//
// 所有方法在实体缺少对应组件时静默忽略（Getter 返回零值），
// 因此同一个句柄类型既能驱动会动的气球，也能驱动静止的打气筒。
type ObjectHandle struct {
	em       *ecs.EntityManager
	textures TextureLookup
	id       ecs.EntityID
}

// NewObjectHandle 创建实体句柄
func NewObjectHandle(em *ecs.EntityManager, textures TextureLookup, id ecs.EntityID) *ObjectHandle {
	return &ObjectHandle{em: em, textures: textures, id: id}
}

// ID 返回底层实体ID
func (h *ObjectHandle) ID() ecs.EntityID {
	return h.id
}

func (h *ObjectHandle) SetScale(f float64) {
	if sc, ok := ecs.GetComponent[*components.ScaleComponent](h.em, h.id); ok {
		sc.SetUniform(f)
	}
}

func (h *ObjectHandle) Scale() float64 {
	if sc, ok := ecs.GetComponent[*components.ScaleComponent](h.em, h.id); ok {
		return sc.Uniform()
	}
	return 0
}

func (h *ObjectHandle) SetPosition(x, y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](h.em, h.id); ok {
		pos.X, pos.Y = x, y
	}
}

func (h *ObjectHandle) Position() (float64, float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](h.em, h.id); ok {
		return pos.X, pos.Y
	}
	return 0, 0
}

func (h *ObjectHandle) SetVisible(visible bool) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](h.em, h.id); ok {
		sprite.Visible = visible
	}
}

// SetTexture 切换图片，点击区域保持创建时的尺寸
func (h *ObjectHandle) SetTexture(key string) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](h.em, h.id)
	if !ok || sprite.TextureKey == key {
		return
	}
	sprite.TextureKey = key
	if h.textures != nil {
		sprite.Image = h.textures.GetImage(key)
	}
}

func (h *ObjectHandle) SetVelocity(vx, vy float64) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](h.em, h.id); ok {
		vel.VX, vel.VY = vx, vy
	}
}

// Velocity 返回当前速度，主要用于调试覆盖层和测试
func (h *ObjectHandle) Velocity() (float64, float64) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](h.em, h.id); ok {
		return vel.VX, vel.VY
	}
	return 0, 0
}

// OnPress 绑定点击回调
func (h *ObjectHandle) OnPress(fn func()) {
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](h.em, h.id); ok {
		clickable.OnPress = fn
	}
}
