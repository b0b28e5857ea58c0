package components

// ScaleComponent 存储实体级别的缩放因子
//
// 渲染和点击判定都使用同一个缩放：
//   - 绘制尺寸 = 图片尺寸 * Scale
//   - 点击区域 = ClickableComponent 尺寸 * Scale
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小）
	ScaleY float64
}

// Uniform 返回等比缩放时的缩放值（取 X 轴）
func (s *ScaleComponent) Uniform() float64 {
	return s.ScaleX
}

// SetUniform 同时设置两个轴的缩放
func (s *ScaleComponent) SetUniform(f float64) {
	s.ScaleX = f
	s.ScaleY = f
}
