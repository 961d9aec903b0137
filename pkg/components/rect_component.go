package components

import (
	"github.com/gonewx/uikit/pkg/ecs"
	"github.com/gonewx/uikit/pkg/tween"
)

// RectComponent 矩形区域组件
// 所有坐标均为屏幕空间（y 轴向下），X/Y 为左上角
type RectComponent struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	// Parent 父级实体（ecs.NoEntity 表示根节点）
	// 布局系统按父子关系排列子元素，绘制时子元素位于父元素之上
	Parent ecs.EntityID

	// Clip 是否裁剪超出自身区域的子元素（属性区域视口）
	Clip bool
}

// Top 顶边 Y 坐标
func (r *RectComponent) Top() float64 {
	return r.Y
}

// Bottom 底边 Y 坐标
func (r *RectComponent) Bottom() float64 {
	return r.Y + r.Height
}

// Contains 判断点是否落在矩形内（含边界）
func (r *RectComponent) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// HeightProperty 返回高度的补间写回目标
func (r *RectComponent) HeightProperty() tween.Property[float64] {
	return tween.PointerProperty[float64]{Ptr: &r.Height}
}
