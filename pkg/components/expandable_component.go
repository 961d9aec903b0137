package components

import (
	"github.com/gonewx/uikit/pkg/config"
	"github.com/gonewx/uikit/pkg/ecs"
	"github.com/gonewx/uikit/pkg/tween"
	"github.com/gonewx/uikit/pkg/utils"
)

// 可展开元素默认高度（像素）
const (
	DefaultCollapsedHeight = 48.0
	DefaultExpandedHeight  = 144.0
)

// ExpandableComponent 可展开/折叠组件
// ToggleExpand 时在 CollapsedHeight 和 ExpandedHeight 之间平滑过渡
//
// 元素初始化时高度被设为 CollapsedHeight（折叠状态）。
type ExpandableComponent struct {
	// CollapsedHeight 折叠时的最小高度，元素以此高度开始
	CollapsedHeight float64

	// ExpandedHeight 展开时的最大高度
	ExpandedHeight float64

	// EaseSettings 展开/折叠动画的缓动配置
	EaseSettings config.EaseSettings

	// Expanded 当前是否展开（false 即折叠）
	Expanded bool

	// ToggleOnClick 点击自身时切换展开状态
	ToggleOnClick bool

	// ===== 可选：指示器颜色随展开状态过渡 =====
	// IndicatorEntity 指示器实体（需要 ImageComponent），ecs.NoEntity 表示不启用
	IndicatorEntity ecs.EntityID
	// CollapsedColor 折叠时指示器颜色
	CollapsedColor utils.Color
	// ExpandedColor 展开时指示器颜色
	ExpandedColor utils.Color

	// HeightTween 高度补间控制器（由 ExpandableSystem.Init 创建）
	HeightTween *tween.Controller[float64]
	// IndicatorTween 指示器颜色补间控制器（未启用指示器时为 nil）
	IndicatorTween *tween.Controller[utils.Color]
}

// TargetHeight 返回当前状态对应的目标高度
func (e *ExpandableComponent) TargetHeight() float64 {
	if e.Expanded {
		return e.ExpandedHeight
	}
	return e.CollapsedHeight
}

// TargetIndicatorColor 返回当前状态对应的指示器颜色
func (e *ExpandableComponent) TargetIndicatorColor() utils.Color {
	if e.Expanded {
		return e.ExpandedColor
	}
	return e.CollapsedColor
}
