package systems

import (
	"math"
	"sort"

	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/ecs"
)

// LayoutSystem 垂直堆叠布局系统
//
// 两遍处理：
//  1. 自下而上：FitHeight 的容器高度 = 子元素高度之和 + 间距 + 内边距
//  2. 自上而下：按顺序摆放子元素，宽度撑满父容器（带 ScrollComponent 时整体上移滚动偏移）
//
// 最后把 PinComponent 元素贴到父元素上。
type LayoutSystem struct {
	entityManager *ecs.EntityManager
}

// NewLayoutSystem 创建布局系统
func NewLayoutSystem(em *ecs.EntityManager) *LayoutSystem {
	return &LayoutSystem{entityManager: em}
}

// Update 重新计算布局
func (s *LayoutSystem) Update(deltaTime float64) {
	stacks := ecs.GetEntitiesWith2[*components.StackComponent, *components.RectComponent](s.entityManager)
	defer s.placePins()
	if len(stacks) == 0 {
		return
	}

	children := s.childrenByParent()
	depth := make(map[ecs.EntityID]int, len(stacks))
	for _, id := range stacks {
		depth[id] = s.depthOf(id)
	}

	// 自下而上：深的先算
	sort.SliceStable(stacks, func(i, j int) bool { return depth[stacks[i]] > depth[stacks[j]] })
	for _, id := range stacks {
		stack, _ := ecs.GetComponent[*components.StackComponent](s.entityManager, id)
		if !stack.FitHeight {
			continue
		}
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		rect.Height = s.contentHeight(stack, children[id])
	}

	// 自上而下：浅的先摆
	sort.SliceStable(stacks, func(i, j int) bool { return depth[stacks[i]] < depth[stacks[j]] })
	for _, id := range stacks {
		stack, _ := ecs.GetComponent[*components.StackComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)

		y := rect.Y + stack.Padding
		if scroll, ok := ecs.GetComponent[*components.ScrollComponent](s.entityManager, id); ok {
			maxOffset := math.Max(0, s.contentHeight(stack, children[id])-rect.Height)
			scroll.Offset = math.Min(math.Max(scroll.Offset, 0), maxOffset)
			y -= scroll.Offset
		}
		for _, child := range children[id] {
			cr, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, child)
			if ecs.HasComponent[*components.PinComponent](s.entityManager, child) {
				continue
			}
			cr.X = rect.X + stack.Padding
			cr.Y = y
			cr.Width = rect.Width - 2*stack.Padding
			y += cr.Height + stack.Spacing
		}
	}
}

// placePins 按偏移摆放固定部件
func (s *LayoutSystem) placePins() {
	for _, id := range ecs.GetEntitiesWith2[*components.PinComponent, *components.RectComponent](s.entityManager) {
		pin, _ := ecs.GetComponent[*components.PinComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		parent, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, rect.Parent)
		if !ok {
			continue
		}
		rect.X = parent.X + pin.OffsetX
		if pin.OffsetX < 0 {
			rect.X = parent.X + parent.Width + pin.OffsetX
		}
		rect.Y = parent.Y + pin.OffsetY
	}
}

func (s *LayoutSystem) contentHeight(stack *components.StackComponent, children []ecs.EntityID) float64 {
	h := 2 * stack.Padding
	n := 0
	for _, child := range children {
		if ecs.HasComponent[*components.PinComponent](s.entityManager, child) {
			continue
		}
		cr, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, child)
		if n > 0 {
			h += stack.Spacing
		}
		h += cr.Height
		n++
	}
	return h
}

// childrenByParent 按父实体分组（组内按实体ID即创建顺序排列）
func (s *LayoutSystem) childrenByParent() map[ecs.EntityID][]ecs.EntityID {
	result := make(map[ecs.EntityID][]ecs.EntityID)
	for _, id := range ecs.GetEntitiesWith1[*components.RectComponent](s.entityManager) {
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if rect.Parent != ecs.NoEntity {
			result[rect.Parent] = append(result[rect.Parent], id)
		}
	}
	return result
}

// depthOf 返回实体在父子树中的深度（根为 0）
func (s *LayoutSystem) depthOf(id ecs.EntityID) int {
	return Depth(s.entityManager, id)
}

// Depth 沿 RectComponent.Parent 计算深度，遇到环时停止
func Depth(em *ecs.EntityManager, id ecs.EntityID) int {
	d := 0
	seen := map[ecs.EntityID]bool{id: true}
	for {
		rect, ok := ecs.GetComponent[*components.RectComponent](em, id)
		if !ok || rect.Parent == ecs.NoEntity || seen[rect.Parent] {
			return d
		}
		id = rect.Parent
		seen[id] = true
		d++
	}
}

// ClipRect 屏幕空间的裁剪区域
type ClipRect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Empty 区域是否为空
func (c ClipRect) Empty() bool {
	return c.MaxX <= c.MinX || c.MaxY <= c.MinY
}

// Contains 判断点是否落在区域内（含边界，与 RectComponent.Contains 一致）
func (c ClipRect) Contains(x, y float64) bool {
	return x >= c.MinX && x <= c.MaxX && y >= c.MinY && y <= c.MaxY
}

// ClipBounds 返回所有 Clip 祖先矩形的交集
// 没有 Clip 祖先时 ok 为 false，实体不受裁剪
func ClipBounds(em *ecs.EntityManager, id ecs.EntityID) (clip ClipRect, ok bool) {
	rect, found := ecs.GetComponent[*components.RectComponent](em, id)
	if !found {
		return ClipRect{}, false
	}

	seen := map[ecs.EntityID]bool{id: true}
	for parentID := rect.Parent; parentID != ecs.NoEntity && !seen[parentID]; {
		seen[parentID] = true
		parent, found := ecs.GetComponent[*components.RectComponent](em, parentID)
		if !found {
			break
		}
		if parent.Clip {
			r := ClipRect{MinX: parent.X, MinY: parent.Y, MaxX: parent.X + parent.Width, MaxY: parent.Y + parent.Height}
			if ok {
				clip.MinX = math.Max(clip.MinX, r.MinX)
				clip.MinY = math.Max(clip.MinY, r.MinY)
				clip.MaxX = math.Min(clip.MaxX, r.MaxX)
				clip.MaxY = math.Min(clip.MaxY, r.MaxY)
			} else {
				clip, ok = r, true
			}
		}
		parentID = parent.Parent
	}
	return clip, ok
}
