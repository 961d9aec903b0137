package components

import (
	"fmt"
	"strings"

	"github.com/gonewx/uikit/pkg/ecs"
)

// MarginReference 边距的参照范围
type MarginReference int

const (
	// MarginScreen 边距相对屏幕上下边缘
	MarginScreen MarginReference = iota
	// MarginParent 边距相对父容器上下边缘
	MarginParent
)

func (m MarginReference) String() string {
	switch m {
	case MarginScreen:
		return "screen"
	case MarginParent:
		return "parent"
	default:
		return fmt.Sprintf("MarginReference(%d)", int(m))
	}
}

// ParseMarginReference 解析 "screen" / "parent"
func ParseMarginReference(s string) (MarginReference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "screen":
		return MarginScreen, nil
	case "parent":
		return MarginParent, nil
	default:
		return 0, fmt.Errorf("unknown margin reference %q (want screen or parent)", s)
	}
}

// 默认边距（像素）
const (
	DefaultTopMargin    = 48.0
	DefaultBottomMargin = 48.0
)

// PanelSizerComponent 让面板保持在上下边距之内
//
// 面板高度 = 其他元素高度（标题栏等）+ 属性区域高度。
// 属性区域高度被锁定为 min(内容自然高度, 最大高度 - 其他元素高度)，
// 超出部分由属性区域视口裁剪（滚动）。每帧直接计算，不使用补间。
type PanelSizerComponent struct {
	// TopMargin 距离参照范围顶部的边距
	TopMargin float64
	// BottomMargin 距离参照范围底部的边距
	BottomMargin float64

	// PropertiesEntity 包含全部属性的顶层区域（高度被锁定）
	PropertiesEntity ecs.EntityID
	// ContentEntity 被属性区域视口遮罩的内容（提供自然高度）
	ContentEntity ecs.EntityID

	// MarginReference 边距参照范围（屏幕或父容器）
	MarginReference MarginReference
	// Reposition 是否上下移动面板使其保持在边距内
	Reposition bool
}
