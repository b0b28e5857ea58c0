package components

// ClickableComponent 标记实体可以被鼠标点击或触摸
//
// Width/Height 是未缩放的点击区域尺寸，实际判定区域会乘以 ScaleComponent，
// 并按 SpriteComponent 的锚点对齐。
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素，未缩放)
	Height    float64 // 可点击区域的高度(像素，未缩放)
	IsEnabled bool    // 是否可以被点击
	OnPress   func()  // 按下时的回调
}
