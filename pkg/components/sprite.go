package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
type SpriteComponent struct {
	Image *ebiten.Image

	// TextureKey 当前图像对应的资源键，如 "balloon"、"balloonBurst"
	TextureKey string

	// OriginX/OriginY 图像锚点（0..1），0.5/0.5 表示以中心对齐位置
	OriginX float64
	OriginY float64

	// Z 绘制层级，越大越靠上；点击也优先分发给 Z 更大的实体
	Z int

	// Visible 为 false 时既不绘制也不响应点击
	Visible bool
}
