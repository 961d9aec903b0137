package components

import (
	"fmt"
	"strings"

	"github.com/gonewx/uikit/pkg/config"
	"github.com/gonewx/uikit/pkg/ecs"
	"github.com/gonewx/uikit/pkg/tween"
	"github.com/gonewx/uikit/pkg/utils"
)

// PointerEventType PointerColorComponent 可以响应的指针事件类型
type PointerEventType int

const (
	// PointerHover 指针悬停在元素上
	PointerHover PointerEventType = iota
	// PointerToggleSelect 点击切换的选中状态
	PointerToggleSelect
	// PointerPressed 指针按下未释放
	PointerPressed
)

var pointerEventNames = map[PointerEventType]string{
	PointerHover:        "Hover",
	PointerToggleSelect: "ToggleSelect",
	PointerPressed:      "Pressed",
}

func (t PointerEventType) String() string {
	if name, ok := pointerEventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PointerEventType(%d)", int(t))
}

// ParsePointerEventType 按名称解析事件类型（大小写不敏感）
func ParsePointerEventType(name string) (PointerEventType, error) {
	for t, n := range pointerEventNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown pointer event type %q", name)
}

// PointerEventSetting 某类事件发生时图片应当变成的颜色
type PointerEventSetting struct {
	EventType PointerEventType
	Color     utils.Color
}

// PointerColorComponent 根据指针事件改变目标图片颜色
//
// EventPriorities 按顺序排列优先级，下标 0 最高；
// 没有任何条件满足时回到 DefaultColor。
type PointerColorComponent struct {
	// TargetEntity 被着色的图片实体；ecs.NoEntity 表示使用自身
	TargetEntity ecs.EntityID

	// DefaultColor 没有条件满足时的颜色
	DefaultColor utils.Color

	// EventPriorities 有序的事件颜色设置
	EventPriorities []PointerEventSetting

	// EaseSettings 颜色过渡的缓动配置
	EaseSettings config.EaseSettings

	// 指针状态
	Hovered  bool // 指针是否悬停
	Selected bool // 是否被点击切换为选中
	Pressed  bool // 指针是否按下

	// ColorTween 颜色补间控制器（由 PointerColorSystem.Init 创建）
	ColorTween *tween.Controller[utils.Color]
}

// ResolveColor 扫描优先级列表，返回第一个条件满足的颜色
func (p *PointerColorComponent) ResolveColor() utils.Color {
	for _, setting := range p.EventPriorities {
		if setting.EventType == PointerHover && p.Hovered ||
			setting.EventType == PointerToggleSelect && p.Selected ||
			setting.EventType == PointerPressed && p.Pressed {
			return setting.Color
		}
	}
	return p.DefaultColor
}

// PointerReceiverComponent 标记实体接收指针事件
// 状态由 PointerSystem 维护
type PointerReceiverComponent struct {
	// IsEnabled 是否响应指针
	IsEnabled bool
	// IsHovered 指针当前是否在区域内
	IsHovered bool
	// IsPressed 是否由本实体接收了按下事件且尚未释放
	IsPressed bool
}
