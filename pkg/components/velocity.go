package components

// VelocityComponent 存储实体的线速度(像素/秒)
// 由 MovementSystem 每帧积分到 PositionComponent 上
type VelocityComponent struct {
	VX float64
	VY float64
}
