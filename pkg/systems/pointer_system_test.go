package systems

import (
	"testing"

	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/ecs"
	"github.com/stretchr/testify/assert"
)

// mockPointerInput 用于测试的 mock 指针输入
type mockPointerInput struct {
	x, y    int
	pressed bool
	wheel   float64
}

func (m *mockPointerInput) CursorPosition() (int, int) {
	return m.x, m.y
}

func (m *mockPointerInput) IsPointerPressed() bool {
	return m.pressed
}

func (m *mockPointerInput) ScrollDelta() float64 {
	return m.wheel
}

// recordingHandler 记录收到的事件
type recordingHandler struct {
	events []string
}

func (r *recordingHandler) OnPointerEnter(ecs.EntityID) { r.events = append(r.events, "enter") }
func (r *recordingHandler) OnPointerExit(ecs.EntityID)  { r.events = append(r.events, "exit") }
func (r *recordingHandler) OnPointerDown(ecs.EntityID)  { r.events = append(r.events, "down") }
func (r *recordingHandler) OnPointerUp(ecs.EntityID)    { r.events = append(r.events, "up") }
func (r *recordingHandler) OnPointerClick(ecs.EntityID) { r.events = append(r.events, "click") }

func setupPointer() (*ecs.EntityManager, *PointerSystem, *mockPointerInput, *recordingHandler) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RectComponent{X: 10, Y: 10, Width: 100, Height: 40})
	ecs.AddComponent(em, id, &components.PointerReceiverComponent{IsEnabled: true})

	input := &mockPointerInput{}
	sys := NewPointerSystem(em, input)
	h := &recordingHandler{}
	sys.AddHandler(h)
	return em, sys, input, h
}

func TestPointerSystem_ClickInside(t *testing.T) {
	_, sys, input, h := setupPointer()

	input.x, input.y = 50, 20
	sys.Update(frame)
	input.pressed = true
	sys.Update(frame)
	sys.Update(frame) // 按住不重复发送 down
	input.pressed = false
	sys.Update(frame)
	input.x = 500
	sys.Update(frame)

	assert.Equal(t, []string{"enter", "down", "up", "click", "exit"}, h.events)
}

// TestPointerSystem_ReleaseOutside 在外部释放：up 仍发送给按下的实体，但没有 click
func TestPointerSystem_ReleaseOutside(t *testing.T) {
	_, sys, input, h := setupPointer()

	input.x, input.y = 50, 20
	input.pressed = true
	sys.Update(frame)
	input.x = 300
	sys.Update(frame)
	input.pressed = false
	sys.Update(frame)

	assert.Equal(t, []string{"enter", "down", "exit", "up"}, h.events)
}

// TestPointerSystem_PressOutsideThenEnter 在外部按下后拖入释放，不算点击
func TestPointerSystem_PressOutsideThenEnter(t *testing.T) {
	_, sys, input, h := setupPointer()

	input.x, input.y = 300, 300
	input.pressed = true
	sys.Update(frame)
	input.x, input.y = 50, 20
	sys.Update(frame)
	input.pressed = false
	sys.Update(frame)

	assert.Equal(t, []string{"enter"}, h.events)
}

func TestPointerSystem_Disabled(t *testing.T) {
	em, sys, input, h := setupPointer()
	for _, id := range ecs.GetEntitiesWith1[*components.PointerReceiverComponent](em) {
		r, _ := ecs.GetComponent[*components.PointerReceiverComponent](em, id)
		r.IsEnabled = false
	}

	input.x, input.y = 50, 20
	input.pressed = true
	sys.Update(frame)
	input.pressed = false
	sys.Update(frame)

	assert.Empty(t, h.events)
}

func TestNoopPointerHandler(t *testing.T) {
	var h PointerHandler = NoopPointerHandler{}
	assert.NotPanics(t, func() {
		h.OnPointerEnter(1)
		h.OnPointerExit(1)
		h.OnPointerDown(1)
		h.OnPointerUp(1)
		h.OnPointerClick(1)
	})
}

// TestPointerSystem_ClippedByAncestor 被 Clip 祖先裁掉的部分不接收事件
func TestPointerSystem_ClippedByAncestor(t *testing.T) {
	em := ecs.NewEntityManager()
	viewport := em.CreateEntity()
	ecs.AddComponent(em, viewport, &components.RectComponent{X: 0, Y: 0, Width: 100, Height: 50, Clip: true})

	row := em.CreateEntity()
	ecs.AddComponent(em, row, &components.RectComponent{X: 0, Y: 40, Width: 100, Height: 40, Parent: viewport})
	ecs.AddComponent(em, row, &components.PointerReceiverComponent{IsEnabled: true})

	input := &mockPointerInput{}
	sys := NewPointerSystem(em, input)
	h := &recordingHandler{}
	sys.AddHandler(h)

	// 行的下半部分在视口外
	input.x, input.y = 50, 60
	sys.Update(frame)
	input.pressed = true
	sys.Update(frame)
	input.pressed = false
	sys.Update(frame)
	assert.Empty(t, h.events, "视口外不可见的部分不应响应")

	// 可见部分正常响应
	input.y = 45
	sys.Update(frame)
	input.pressed = true
	sys.Update(frame)
	input.pressed = false
	sys.Update(frame)
	assert.Equal(t, []string{"enter", "down", "up", "click"}, h.events)
}
