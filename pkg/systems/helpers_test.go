package systems

import (
	"github.com/decker502/pumpballoon/pkg/components"
	"github.com/decker502/pumpballoon/pkg/ecs"
)

// newTestSprite 创建一个带位置、缩放、精灵和点击区域的测试实体（不需要真实图片）
func newTestSprite(em *ecs.EntityManager, x, y, size float64, z int) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	em.AddComponent(id, &components.SpriteComponent{OriginX: 0.5, OriginY: 0.5, Z: z, Visible: true})
	em.AddComponent(id, &components.ClickableComponent{Width: size, Height: size, IsEnabled: true})
	return id
}

// scriptedPointer 每次调用返回队列中的下一次点击，队列耗尽后返回未点击
type scriptedPointer struct {
	clicks [][2]int
}

func (p *scriptedPointer) next() (bool, int, int) {
	if len(p.clicks) == 0 {
		return false, 0, 0
	}
	c := p.clicks[0]
	p.clicks = p.clicks[1:]
	return true, c[0], c[1]
}
