package app

import (
	"image"
	"sort"

	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/ecs"
	"github.com/gonewx/uikit/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 绘制纯色矩形和文字标签
//
// 绘制顺序：父元素先于子元素，同层按实体ID。
// 祖先带 Clip 标记时，子元素只在其矩形内可见。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 绘制所有带 RectComponent 的实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith1[*components.RectComponent](s.entityManager)
	depth := make(map[ecs.EntityID]int, len(ids))
	for _, id := range ids {
		depth[id] = systems.Depth(s.entityManager, id)
	}
	sort.SliceStable(ids, func(i, j int) bool {
		if depth[ids[i]] != depth[ids[j]] {
			return depth[ids[i]] < depth[ids[j]]
		}
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		dst, visible := s.target(screen, id)
		if !visible {
			continue
		}

		if img, ok := ecs.GetComponent[*components.ImageComponent](s.entityManager, id); ok && img.Color.A > 0 {
			vector.DrawFilledRect(dst,
				float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height),
				img.Color.ToRGBA(), true)
		}
		if label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, id); ok && label.Text != "" {
			ebitenutil.DebugPrintAt(dst, label.Text, int(rect.X+label.OffsetX), int(rect.Y+label.OffsetY))
		}
	}
}

// target 返回裁剪后的绘制目标
// SubImage 保持原坐标系，因此子元素仍按屏幕坐标绘制
func (s *RenderSystem) target(screen *ebiten.Image, id ecs.EntityID) (*ebiten.Image, bool) {
	bounds, clipped := systems.ClipBounds(s.entityManager, id)
	if !clipped {
		return screen, true
	}
	clip := screen.Bounds().Intersect(image.Rect(
		int(bounds.MinX), int(bounds.MinY), int(bounds.MaxX), int(bounds.MaxY)))
	if clip.Empty() {
		return nil, false
	}
	return screen.SubImage(clip).(*ebiten.Image), true
}
