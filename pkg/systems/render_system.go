package systems

import (
	"sort"

	"github.com/decker502/pumpballoon/pkg/components"
	"github.com/decker502/pumpballoon/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 按 Z 顺序绘制所有可见精灵
//
// 变换顺序：先把锚点移到原点，再缩放，最后平移到实体位置。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// DrawOrder 返回本帧要绘制的实体，按 Z 升序（同 Z 按创建顺序）
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager)

	visible := make([]ecs.EntityID, 0, len(entities))
	zIndex := make(map[ecs.EntityID]int, len(entities))
	for _, id := range entities {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !sprite.Visible {
			continue
		}
		visible = append(visible, id)
		zIndex[id] = sprite.Z
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return zIndex[visible[i]] < zIndex[visible[j]]
	})
	return visible
}

// Draw 绘制所有可见实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.DrawOrder() {
		s.drawEntity(screen, id)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if sprite.Image == nil {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	scaleX, scaleY := 1.0, 1.0
	if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		scaleX, scaleY = sc.ScaleX, sc.ScaleY
	}

	bounds := sprite.Image.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())*sprite.OriginX, -float64(bounds.Dy())*sprite.OriginY)
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(sprite.Image, op)
}
