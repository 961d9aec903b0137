package systems

import (
	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/ecs"
)

// ScrollInput 滚轮输入接口
// 用于依赖注入，支持测试时 mock
type ScrollInput interface {
	CursorPosition() (int, int)
	// ScrollDelta 本帧滚轮的垂直增量（向上为正，与 ebiten.Wheel 一致）
	ScrollDelta() float64
}

// ScrollSystem 滚轮滚动系统
// 指针所在（且未被裁剪）的 ScrollComponent 视口接收滚动
// 偏移的上下限由 LayoutSystem 在下一次布局时限制
type ScrollSystem struct {
	entityManager *ecs.EntityManager
	input         ScrollInput
}

// NewScrollSystem 创建滚动系统
func NewScrollSystem(em *ecs.EntityManager, input ScrollInput) *ScrollSystem {
	return &ScrollSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 把滚轮增量应用到指针下的视口
func (s *ScrollSystem) Update(deltaTime float64) {
	delta := s.input.ScrollDelta()
	if delta == 0 {
		return
	}
	cx, cy := s.input.CursorPosition()
	x, y := float64(cx), float64(cy)

	for _, id := range ecs.GetEntitiesWith2[*components.ScrollComponent, *components.RectComponent](s.entityManager) {
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if !rect.Contains(x, y) {
			continue
		}
		if clip, clipped := ClipBounds(s.entityManager, id); clipped && !clip.Contains(x, y) {
			continue
		}

		scroll, _ := ecs.GetComponent[*components.ScrollComponent](s.entityManager, id)
		step := scroll.Step
		if step <= 0 {
			step = components.DefaultScrollStep
		}
		// 滚轮向上（正）时内容向下移动
		scroll.Offset -= delta * step
	}
}
