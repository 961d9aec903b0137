package systems

import (
	"testing"

	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/ecs"
	"github.com/stretchr/testify/assert"
)

func TestScrollSystem_WheelUnderCursor(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RectComponent{X: 0, Y: 0, Width: 100, Height: 100})
	scroll := &components.ScrollComponent{}
	ecs.AddComponent(em, id, scroll)

	input := &mockPointerInput{x: 50, y: 50}
	sys := NewScrollSystem(em, input)

	sys.Update(frame)
	assert.Equal(t, 0.0, scroll.Offset, "没有滚轮输入")

	input.wheel = -2
	sys.Update(frame)
	assert.Equal(t, 2*components.DefaultScrollStep, scroll.Offset, "向下滚动两格")

	scroll.Step = 10
	input.wheel = 1
	sys.Update(frame)
	assert.Equal(t, 2*components.DefaultScrollStep-10, scroll.Offset)

	// 指针不在视口内
	input.x = 300
	sys.Update(frame)
	assert.Equal(t, 2*components.DefaultScrollStep-10, scroll.Offset)
}
