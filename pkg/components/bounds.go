package components

// WorldBoundsComponent 让实体与世界边界碰撞
//
// Width/Height 是未缩放的碰撞尺寸，碰撞时按 ScaleComponent 和精灵锚点换算成实际边缘。
// 碰到边界的轴速度被清零。
type WorldBoundsComponent struct {
	Enabled bool
	Width   float64
	Height  float64
}
