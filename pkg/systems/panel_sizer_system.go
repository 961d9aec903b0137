package systems

import (
	"log"
	"math"

	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/ecs"
)

// PanelSizerSystem 面板尺寸系统
// 每帧把属性区域高度锁定在边距允许的范围内，并可选地把面板推回边距之内
//
// 坐标系 y 轴向下：上边界 = 参照顶部 + TopMargin，下边界 = 参照底部 - BottomMargin。
type PanelSizerSystem struct {
	entityManager *ecs.EntityManager
	screenWidth   float64
	screenHeight  float64

	// 父容器缺失时只提示一次
	warnedNoParent map[ecs.EntityID]bool
}

// NewPanelSizerSystem 创建面板尺寸系统
func NewPanelSizerSystem(em *ecs.EntityManager, screenWidth, screenHeight float64) *PanelSizerSystem {
	return &PanelSizerSystem{
		entityManager:  em,
		screenWidth:    screenWidth,
		screenHeight:   screenHeight,
		warnedNoParent: make(map[ecs.EntityID]bool),
	}
}

// SetScreenSize 更新屏幕尺寸（窗口大小变化时调用）
func (s *PanelSizerSystem) SetScreenSize(width, height float64) {
	s.screenWidth = width
	s.screenHeight = height
}

// limits 返回面板允许的上下边界
func (s *PanelSizerSystem) limits(panelID ecs.EntityID, sizer *components.PanelSizerComponent, panel *components.RectComponent) (top, bottom float64) {
	boundsTop, boundsBottom := 0.0, s.screenHeight

	if sizer.MarginReference == components.MarginParent {
		parent, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, panel.Parent)
		if ok {
			boundsTop, boundsBottom = parent.Top(), parent.Bottom()
		} else if !s.warnedNoParent[panelID] {
			s.warnedNoParent[panelID] = true
			log.Printf("[PanelSizerSystem] Panel %d uses parent margins but has no parent rect, falling back to screen", panelID)
		}
	}

	return boundsTop + sizer.TopMargin, boundsBottom - sizer.BottomMargin
}

// MaxHeight 面板允许的最大高度
func (s *PanelSizerSystem) MaxHeight(panelID ecs.EntityID) float64 {
	sizer, ok := ecs.GetComponent[*components.PanelSizerComponent](s.entityManager, panelID)
	if !ok {
		return 0
	}
	panel, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, panelID)
	if !ok {
		return 0
	}
	top, bottom := s.limits(panelID, sizer, panel)
	return bottom - top
}

// AllowedPropertiesHeight 属性区域允许的最大高度（最大高度减去面板其他元素）
func (s *PanelSizerSystem) AllowedPropertiesHeight(panelID ecs.EntityID) float64 {
	sizer, ok := ecs.GetComponent[*components.PanelSizerComponent](s.entityManager, panelID)
	if !ok {
		return 0
	}
	panel, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, panelID)
	if !ok {
		return 0
	}
	props, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, sizer.PropertiesEntity)
	if !ok {
		return 0
	}
	chrome := panel.Height - props.Height
	return math.Max(0, s.MaxHeight(panelID)-chrome)
}

// Update 对所有面板执行尺寸策略
func (s *PanelSizerSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PanelSizerComponent, *components.RectComponent](s.entityManager) {
		s.resize(id)
	}
}

func (s *PanelSizerSystem) resize(panelID ecs.EntityID) {
	sizer, _ := ecs.GetComponent[*components.PanelSizerComponent](s.entityManager, panelID)
	panel, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, panelID)
	props, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, sizer.PropertiesEntity)
	if !ok {
		return
	}
	content, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, sizer.ContentEntity)
	if !ok {
		return
	}

	top, bottom := s.limits(panelID, sizer, panel)
	maxHeight := bottom - top

	chrome := panel.Height - props.Height
	allowed := math.Max(0, maxHeight-chrome)

	props.Height = math.Min(content.Height, allowed)
	panel.Height = chrome + props.Height

	if !sizer.Reposition || panel.Height > maxHeight {
		return
	}

	exceedingTop := panel.Top() < top
	exceedingBottom := panel.Bottom() > bottom
	switch {
	case exceedingTop && !exceedingBottom:
		panel.Y = top
	case exceedingBottom && !exceedingTop:
		panel.Y = bottom - panel.Height
	}
}
