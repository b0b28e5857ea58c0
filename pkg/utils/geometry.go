package utils

// PointInRect 检查点 (px, py) 是否落在左上角为 (left, top)、尺寸为 w x h 的矩形内（含边界）
func PointInRect(px, py, left, top, w, h float64) bool {
	return px >= left && px <= left+w && py >= top && py <= top+h
}

// AnchoredRect 根据锚点、缩放和未缩放尺寸计算实体占据的矩形
// originX/originY 为 0..1 的锚点，返回左上角和缩放后的尺寸
func AnchoredRect(x, y, width, height, scaleX, scaleY, originX, originY float64) (left, top, w, h float64) {
	w = width * scaleX
	h = height * scaleY
	return x - w*originX, y - h*originY, w, h
}
