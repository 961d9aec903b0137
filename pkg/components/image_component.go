package components

import (
	"github.com/gonewx/uikit/pkg/tween"
	"github.com/gonewx/uikit/pkg/utils"
)

// ImageComponent 纯色图片组件
// Color 通道范围 0.0~1.0，由渲染层填充到所在实体的 RectComponent 区域
type ImageComponent struct {
	Color utils.Color
}

// ColorProperty 返回颜色的补间写回目标
func (i *ImageComponent) ColorProperty() tween.Property[utils.Color] {
	return tween.PointerProperty[utils.Color]{Ptr: &i.Color}
}

// LabelComponent 文字标签组件
type LabelComponent struct {
	Text string
	// OffsetX/OffsetY 相对 RectComponent 左上角的偏移（像素）
	OffsetX float64
	OffsetY float64
}
