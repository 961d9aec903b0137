package app

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenPointerInput 指针输入的 Ebitengine 实现
// 同时支持鼠标和触摸，优先使用触摸；滚轮用于滚动属性区域
type ebitenPointerInput struct {
	// 触摸释放后 AppendTouchIDs 为空，保留最后位置以便判定点击
	lastX, lastY int
}

func (e *ebitenPointerInput) CursorPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		e.lastX, e.lastY = ebiten.TouchPosition(touchIDs[0])
		return e.lastX, e.lastY
	}
	if e.lastX != 0 || e.lastY != 0 {
		// 刚释放的触摸：本帧仍使用最后位置，下一帧回到鼠标
		x, y := e.lastX, e.lastY
		e.lastX, e.lastY = 0, 0
		return x, y
	}
	return ebiten.CursorPosition()
}

func (e *ebitenPointerInput) ScrollDelta() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

func (e *ebitenPointerInput) IsPointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
