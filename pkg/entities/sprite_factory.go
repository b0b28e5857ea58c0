package entities

import (
	"fmt"

	"github.com/decker502/pumpballoon/pkg/components"
	"github.com/decker502/pumpballoon/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// TextureLookup 按纹理键取图片，game.ResourceManager 实现了该接口
type TextureLookup interface {
	GetImage(key string) *ebiten.Image
}

// SpriteSpec 描述一个场景精灵
type SpriteSpec struct {
	Texture string
	X, Y    float64
	// ScaleX/ScaleY 为 0 时按 1 处理
	ScaleX, ScaleY float64
	// OriginX/OriginY 锚点，默认应传 0.5（中心）
	OriginX, OriginY float64
	Z                int

	// Clickable 为 true 时添加与图片等大的点击区域
	Clickable bool
	// Movable 为 true 时添加速度组件
	Movable bool
	// CollideWorldBounds 为 true 时限制在世界边界内（需要 Movable）
	CollideWorldBounds bool
}

// NewSpriteEntity 按描述创建精灵实体
//
// 参数:
//   - em: EntityManager 实例
//   - textures: 纹理来源，spec.Texture 必须已注册
//   - spec: 精灵描述
//
// 返回: 创建的实体ID；纹理不存在时返回错误且不创建实体
func NewSpriteEntity(em *ecs.EntityManager, textures TextureLookup, spec SpriteSpec) (ecs.EntityID, error) {
	img := textures.GetImage(spec.Texture)
	if img == nil {
		return ecs.InvalidEntity, fmt.Errorf("texture %q not loaded", spec.Texture)
	}

	scaleX, scaleY := spec.ScaleX, spec.ScaleY
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: spec.X, Y: spec.Y})
	em.AddComponent(id, &components.ScaleComponent{ScaleX: scaleX, ScaleY: scaleY})
	em.AddComponent(id, &components.SpriteComponent{
		Image:      img,
		TextureKey: spec.Texture,
		OriginX:    spec.OriginX,
		OriginY:    spec.OriginY,
		Z:          spec.Z,
		Visible:    true,
	})

	bounds := img.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	if spec.Clickable {
		em.AddComponent(id, &components.ClickableComponent{
			Width:     width,
			Height:    height,
			IsEnabled: true,
		})
	}

	if spec.Movable {
		em.AddComponent(id, &components.VelocityComponent{})
		if spec.CollideWorldBounds {
			em.AddComponent(id, &components.WorldBoundsComponent{
				Enabled: true,
				Width:   width,
				Height:  height,
			})
		}
	}

	return id, nil
}

// DisplayScale 返回把图片显示为 width x height 所需的缩放
func DisplayScale(img *ebiten.Image, width, height float64) (scaleX, scaleY float64) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return 1, 1
	}
	return width / float64(bounds.Dx()), height / float64(bounds.Dy())
}
