package components

// StackComponent 垂直堆叠布局
// 子元素（RectComponent.Parent 指向本实体）按创建顺序自上而下排列，宽度撑满
type StackComponent struct {
	Padding float64 // 内边距
	Spacing float64 // 子元素间距

	// FitHeight 是否让自身高度等于子元素总高度（内容自适应）
	FitHeight bool
}

// PinComponent 固定在父元素上的小部件（例如展开指示器）
// OffsetX 为负数时从父元素右边缘计算
type PinComponent struct {
	OffsetX float64
	OffsetY float64
}

// DefaultScrollStep 滚轮每格滚动的像素
const DefaultScrollStep = 24.0

// ScrollComponent 可滚动的堆叠视口
// 子元素整体上移 Offset 像素；LayoutSystem 把 Offset 限制在 [0, 内容高度-视口高度]
type ScrollComponent struct {
	Offset float64
	Step   float64 // 每格滚轮的像素，0 表示 DefaultScrollStep
}
