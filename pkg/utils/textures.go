package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 占位纹理的尺寸，接近原图比例，场景里的缩放参数按这些尺寸调好
const (
	BalloonTextureSize = 300
	PumpTextureWidth   = 120
	PumpTextureHeight  = 260
	MachineTextureSize = 360
	OutletTextureSize  = 120
	LetterTextureSize  = 100
	BackgroundSize     = 256
)

var (
	balloonGreen = color.RGBA{R: 76, G: 175, B: 80, A: 255}
	balloonShine = color.RGBA{R: 200, G: 240, B: 200, A: 255}
	stringGray   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	metalGray    = color.RGBA{R: 140, G: 150, B: 160, A: 255}
	metalDark    = color.RGBA{R: 70, G: 80, B: 90, A: 255}
	pumpRed      = color.RGBA{R: 210, G: 60, B: 50, A: 255}
	letterWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	skyTop       = color.RGBA{R: 200, G: 230, B: 255, A: 255}
	groundGreen  = color.RGBA{R: 180, G: 220, B: 160, A: 255}
)

// GeneratePlaceholderTexture 为纹理键生成一张程序绘制的占位图
// 未知的键返回一个洋红色方块，便于发现漏配的纹理
func GeneratePlaceholderTexture(key string) *ebiten.Image {
	switch key {
	case "bg":
		return drawBackground()
	case "balloon":
		return drawBalloon()
	case "balloonBurst":
		return drawBurstBalloon()
	case "pump":
		return drawPump()
	case "machine":
		return drawMachine()
	case "outlet":
		return drawOutlet()
	case "letter":
		return drawLetterA()
	default:
		img := ebiten.NewImage(64, 64)
		img.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
		return img
	}
}

func drawBackground() *ebiten.Image {
	img := ebiten.NewImage(BackgroundSize, BackgroundSize)
	img.Fill(skyTop)
	ground := float32(BackgroundSize) * 0.8
	vector.DrawFilledRect(img, 0, ground, BackgroundSize, BackgroundSize-ground, groundGreen, false)
	return img
}

func drawBalloon() *ebiten.Image {
	img := ebiten.NewImage(BalloonTextureSize, BalloonTextureSize)
	s := float32(BalloonTextureSize)
	cx, cy, r := s/2, s*0.42, s*0.38

	vector.StrokeLine(img, cx, cy+r, cx, s, 3, stringGray, true)
	vector.DrawFilledCircle(img, cx, cy, r, balloonGreen, true)
	vector.DrawFilledCircle(img, cx-r*0.4, cy-r*0.4, r*0.15, balloonShine, true)
	// 扎口
	vector.DrawFilledRect(img, cx-8, cy+r-4, 16, 10, balloonGreen, true)
	return img
}

func drawBurstBalloon() *ebiten.Image {
	img := ebiten.NewImage(BalloonTextureSize, BalloonTextureSize)
	s := float32(BalloonTextureSize)
	cx, cy := s/2, s*0.42

	vector.StrokeLine(img, cx, cy+s*0.1, cx, s, 3, stringGray, true)
	// 碎片向四周散开
	shards := [][4]float32{
		{-0.30, -0.25, -0.10, -0.05},
		{0.30, -0.20, 0.08, -0.04},
		{-0.25, 0.20, -0.06, 0.05},
		{0.28, 0.25, 0.07, 0.06},
		{0, -0.35, 0, -0.10},
	}
	for _, sh := range shards {
		vector.StrokeLine(img, cx+sh[2]*s, cy+sh[3]*s, cx+sh[0]*s, cy+sh[1]*s, 10, balloonGreen, true)
	}
	vector.DrawFilledCircle(img, cx, cy+s*0.1, 10, balloonGreen, true)
	return img
}

func drawPump() *ebiten.Image {
	img := ebiten.NewImage(PumpTextureWidth, PumpTextureHeight)
	w, h := float32(PumpTextureWidth), float32(PumpTextureHeight)

	// 把手
	vector.DrawFilledRect(img, 0, 0, w, h*0.12, pumpRed, true)
	// 活塞杆
	vector.DrawFilledRect(img, w*0.45, h*0.12, w*0.1, h*0.4, metalDark, true)
	// 气筒
	vector.DrawFilledRect(img, w*0.25, h*0.5, w*0.5, h*0.5, metalGray, true)
	return img
}

func drawMachine() *ebiten.Image {
	img := ebiten.NewImage(MachineTextureSize, MachineTextureSize)
	s := float32(MachineTextureSize)

	vector.DrawFilledRect(img, 0, s*0.2, s, s*0.8, metalGray, true)
	vector.StrokeRect(img, 2, s*0.2+2, s-4, s*0.8-4, 4, metalDark, true)
	vector.DrawFilledCircle(img, s*0.5, s*0.6, s*0.15, metalDark, true)
	return img
}

func drawOutlet() *ebiten.Image {
	img := ebiten.NewImage(OutletTextureSize, OutletTextureSize)
	s := float32(OutletTextureSize)

	vector.DrawFilledRect(img, 0, s*0.35, s, s*0.3, metalDark, true)
	vector.DrawFilledRect(img, 0, s*0.25, s*0.2, s*0.5, metalGray, true)
	return img
}

func drawLetterA() *ebiten.Image {
	img := ebiten.NewImage(LetterTextureSize, LetterTextureSize)
	s := float32(LetterTextureSize)
	stroke := s * 0.12

	vector.StrokeLine(img, s*0.15, s*0.9, s*0.5, s*0.1, stroke, letterWhite, true)
	vector.StrokeLine(img, s*0.85, s*0.9, s*0.5, s*0.1, stroke, letterWhite, true)
	vector.StrokeLine(img, s*0.3, s*0.6, s*0.7, s*0.6, stroke, letterWhite, true)
	return img
}
