package components

// PositionComponent 存储实体在逻辑屏幕上的位置(像素)
// 对于带精灵的实体，该点就是精灵原点(Origin)所在的位置
type PositionComponent struct {
	X float64
	Y float64
}
