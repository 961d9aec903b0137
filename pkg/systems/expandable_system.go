package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/ecs"
	"github.com/gonewx/uikit/pkg/tween"
)

// ExpandableSystem 可展开元素系统
//
// 职责：
//   - Init 时把元素高度设为折叠高度并创建补间控制器
//   - ToggleExpand 切换展开状态并请求新的目标高度（可选：指示器颜色）
//   - 每帧推进所有高度/颜色补间
//   - 实体被销毁时取消仍在进行的补间
type ExpandableSystem struct {
	NoopPointerHandler
	entityManager *ecs.EntityManager
}

// NewExpandableSystem 创建可展开元素系统
func NewExpandableSystem(em *ecs.EntityManager) *ExpandableSystem {
	s := &ExpandableSystem{entityManager: em}
	em.OnDestroy(s.cancel)
	return s
}

// Init 初始化可展开元素
// 实体必须同时拥有 ExpandableComponent 和 RectComponent
func (s *ExpandableSystem) Init(entityID ecs.EntityID) error {
	exp, ok := ecs.GetComponent[*components.ExpandableComponent](s.entityManager, entityID)
	if !ok {
		return fmt.Errorf("entity %d: ExpandableComponent: %w", entityID, ErrMissingComponent)
	}
	rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, entityID)
	if !ok {
		return fmt.Errorf("entity %d: RectComponent: %w", entityID, ErrMissingComponent)
	}

	// 以折叠状态开始
	exp.Expanded = false
	rect.Height = exp.CollapsedHeight

	heightTween, err := tween.NewFloatController(exp.EaseSettings, rect.HeightProperty())
	if err != nil {
		return fmt.Errorf("entity %d: height tween: %w", entityID, err)
	}
	exp.HeightTween = heightTween

	exp.IndicatorTween = nil
	if exp.IndicatorEntity != ecs.NoEntity {
		img, ok := ecs.GetComponent[*components.ImageComponent](s.entityManager, exp.IndicatorEntity)
		if !ok {
			return fmt.Errorf("entity %d: indicator %d ImageComponent: %w", entityID, exp.IndicatorEntity, ErrMissingComponent)
		}
		img.Color = exp.CollapsedColor
		colorTween, err := tween.NewColorController(exp.EaseSettings, img.ColorProperty())
		if err != nil {
			return fmt.Errorf("entity %d: indicator tween: %w", entityID, err)
		}
		exp.IndicatorTween = colorTween
	}

	log.Printf("[ExpandableSystem] Initialized entity %d (collapsed=%.1f, expanded=%.1f, ease=%s, duration=%.3fs)",
		entityID, exp.CollapsedHeight, exp.ExpandedHeight, exp.EaseSettings.Function, exp.EaseSettings.Duration)
	return nil
}

// InitAll 初始化所有可展开元素
func (s *ExpandableSystem) InitAll() error {
	for _, id := range ecs.GetEntitiesWith1[*components.ExpandableComponent](s.entityManager) {
		if err := s.Init(id); err != nil {
			return err
		}
	}
	return nil
}

// ToggleExpand 切换展开/折叠
// 动画进行中再次调用时，从当前高度平滑转向新目标
func (s *ExpandableSystem) ToggleExpand(entityID ecs.EntityID) {
	exp, ok := ecs.GetComponent[*components.ExpandableComponent](s.entityManager, entityID)
	if !ok || exp.HeightTween == nil {
		log.Printf("[ExpandableSystem] ToggleExpand ignored: entity %d is not initialized", entityID)
		return
	}

	exp.Expanded = !exp.Expanded
	exp.HeightTween.Request(exp.TargetHeight())
	if exp.IndicatorTween != nil {
		exp.IndicatorTween.Request(exp.TargetIndicatorColor())
	}
	log.Printf("[ExpandableSystem] Entity %d expanded=%v -> height %.1f", entityID, exp.Expanded, exp.TargetHeight())
}

// SetExpanded 设置展开状态（状态相同时不做任何事）
func (s *ExpandableSystem) SetExpanded(entityID ecs.EntityID, expanded bool) {
	exp, ok := ecs.GetComponent[*components.ExpandableComponent](s.entityManager, entityID)
	if !ok || exp.Expanded == expanded {
		return
	}
	s.ToggleExpand(entityID)
}

// ToggleAll 切换所有可展开元素
func (s *ExpandableSystem) ToggleAll() {
	for _, id := range ecs.GetEntitiesWith1[*components.ExpandableComponent](s.entityManager) {
		s.ToggleExpand(id)
	}
}

// OnPointerClick 点击切换（仅 ToggleOnClick 的元素）
func (s *ExpandableSystem) OnPointerClick(entityID ecs.EntityID) {
	exp, ok := ecs.GetComponent[*components.ExpandableComponent](s.entityManager, entityID)
	if ok && exp.ToggleOnClick {
		s.ToggleExpand(entityID)
	}
}

// Update 推进所有补间
func (s *ExpandableSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ExpandableComponent](s.entityManager) {
		exp, _ := ecs.GetComponent[*components.ExpandableComponent](s.entityManager, id)
		if exp.HeightTween != nil {
			exp.HeightTween.Update(deltaTime)
		}
		if exp.IndicatorTween != nil {
			exp.IndicatorTween.Update(deltaTime)
		}
	}
}

// cancel 实体销毁时停止补间，避免继续写入已移除的组件
func (s *ExpandableSystem) cancel(entityID ecs.EntityID) {
	exp, ok := ecs.GetComponent[*components.ExpandableComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	if exp.HeightTween != nil {
		exp.HeightTween.Cancel()
	}
	if exp.IndicatorTween != nil {
		exp.IndicatorTween.Cancel()
	}
}
