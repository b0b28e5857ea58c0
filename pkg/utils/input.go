// Package utils 提供输入、几何和占位纹理等通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查本帧是否刚发生点击或触摸
// 返回是否点击以及点击位置，触摸优先（移动设备上没有鼠标）
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsFullscreenToggleRequested 检查本帧是否按下了全屏切换键 (F11)
func IsFullscreenToggleRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF11)
}

// IsRestartRequested 检查本帧是否按下了重开键 (R)
func IsRestartRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// IsDebugToggleRequested 检查本帧是否按下了调试信息切换键 (F3)
func IsDebugToggleRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
