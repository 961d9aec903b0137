package systems

import (
	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/ecs"
)

// PointerInput 指针输入接口（鼠标或触摸）
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	CursorPosition() (int, int)
	IsPointerPressed() bool
}

// PointerHandler 指针事件接收者
type PointerHandler interface {
	OnPointerEnter(entityID ecs.EntityID)
	OnPointerExit(entityID ecs.EntityID)
	OnPointerDown(entityID ecs.EntityID)
	OnPointerUp(entityID ecs.EntityID)
	OnPointerClick(entityID ecs.EntityID)
}

// NoopPointerHandler 空实现，嵌入后只需覆盖关心的事件
type NoopPointerHandler struct{}

func (NoopPointerHandler) OnPointerEnter(ecs.EntityID) {}
func (NoopPointerHandler) OnPointerExit(ecs.EntityID)  {}
func (NoopPointerHandler) OnPointerDown(ecs.EntityID)  {}
func (NoopPointerHandler) OnPointerUp(ecs.EntityID)    {}
func (NoopPointerHandler) OnPointerClick(ecs.EntityID) {}

// PointerSystem 指针事件系统
// 轮询指针位置和按下状态，对带 PointerReceiverComponent 的实体合成事件
//
// 事件规则：
//   - Enter/Exit：指针进入/离开实体矩形（只计算 Clip 祖先内的可见部分）
//   - Down：按下瞬间指针位于实体内
//   - Up：释放瞬间发送给接收了 Down 的实体（无论指针在哪里）
//   - Click：释放时指针仍在接收了 Down 的实体内
type PointerSystem struct {
	entityManager *ecs.EntityManager
	input         PointerInput
	handlers      []PointerHandler
	wasPressed    bool
}

// NewPointerSystem 创建指针事件系统
func NewPointerSystem(em *ecs.EntityManager, input PointerInput) *PointerSystem {
	return &PointerSystem{
		entityManager: em,
		input:         input,
	}
}

// AddHandler 注册事件接收者（按注册顺序分发）
func (s *PointerSystem) AddHandler(h PointerHandler) {
	s.handlers = append(s.handlers, h)
}

// Update 检测指针状态变化并分发事件
func (s *PointerSystem) Update(deltaTime float64) {
	cx, cy := s.input.CursorPosition()
	x, y := float64(cx), float64(cy)
	pressed := s.input.IsPointerPressed()
	justPressed := pressed && !s.wasPressed
	justReleased := !pressed && s.wasPressed
	s.wasPressed = pressed

	entities := ecs.GetEntitiesWith2[*components.PointerReceiverComponent, *components.RectComponent](s.entityManager)
	for _, id := range entities {
		receiver, _ := ecs.GetComponent[*components.PointerReceiverComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)

		inside := receiver.IsEnabled && rect.Contains(x, y)
		if inside {
			// 被视口裁剪掉的部分不可见，也不接收事件
			if clip, clipped := ClipBounds(s.entityManager, id); clipped {
				inside = clip.Contains(x, y)
			}
		}

		if inside && !receiver.IsHovered {
			receiver.IsHovered = true
			s.dispatch(id, PointerHandler.OnPointerEnter)
		} else if !inside && receiver.IsHovered {
			receiver.IsHovered = false
			s.dispatch(id, PointerHandler.OnPointerExit)
		}

		if justPressed && inside {
			receiver.IsPressed = true
			s.dispatch(id, PointerHandler.OnPointerDown)
		}

		if justReleased && receiver.IsPressed {
			receiver.IsPressed = false
			s.dispatch(id, PointerHandler.OnPointerUp)
			if inside {
				s.dispatch(id, PointerHandler.OnPointerClick)
			}
		}
	}
}

func (s *PointerSystem) dispatch(id ecs.EntityID, event func(PointerHandler, ecs.EntityID)) {
	for _, h := range s.handlers {
		event(h, id)
	}
}
