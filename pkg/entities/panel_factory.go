package entities

import (
	"fmt"

	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/config"
	"github.com/gonewx/uikit/pkg/ecs"
	"github.com/gonewx/uikit/pkg/utils"
)

// 展开指示器尺寸（像素）
const (
	indicatorSize    = 10.0
	indicatorOffsetX = -18.0
	indicatorOffsetY = 19.0
)

// PanelEntities 面板创建后的各实体ID
type PanelEntities struct {
	Container  ecs.EntityID // 父容器（未配置时为 ecs.NoEntity）
	Panel      ecs.EntityID
	Header     ecs.EntityID
	Properties ecs.EntityID // 属性区域视口（高度由 PanelSizerSystem 锁定）
	Content    ecs.EntityID // 视口内的内容（高度 = 所有行之和）
	Footer     ecs.EntityID // 未配置时为 ecs.NoEntity
	Rows       []ecs.EntityID
}

// NewPanel 根据配置创建面板及其所有行
//
// 实体结构：
//
//	container? -> panel(stack, fit) -> header
//	                                -> properties(stack, clip, scroll) -> content(stack, fit) -> rows
//	                                -> footer?
//
// 创建后需要调用 ExpandableSystem.InitAll / PointerColorSystem.InitAll。
// 未经 config.ParseUIConfig 填充的空指针字段使用默认边距和缓动。
func NewPanel(em *ecs.EntityManager, cfg config.PanelConfig) (*PanelEntities, error) {
	marginRef, err := components.ParseMarginReference(cfg.MarginReference)
	if err != nil {
		return nil, fmt.Errorf("panel %q: %w", cfg.Title, err)
	}

	result := &PanelEntities{}

	if cfg.Container != nil {
		result.Container = em.CreateEntity()
		ecs.AddComponent(em, result.Container, &components.RectComponent{
			X:      cfg.Container.X,
			Y:      cfg.Container.Y,
			Width:  cfg.Container.Width,
			Height: cfg.Container.Height,
		})
		ecs.AddComponent(em, result.Container, &components.ImageComponent{Color: cfg.Container.Color})
	}

	// 面板
	result.Panel = em.CreateEntity()
	ecs.AddComponent(em, result.Panel, &components.RectComponent{
		X:      cfg.X,
		Y:      cfg.Y,
		Width:  cfg.Width,
		Parent: result.Container,
	})
	ecs.AddComponent(em, result.Panel, &components.ImageComponent{Color: cfg.Color})
	ecs.AddComponent(em, result.Panel, &components.StackComponent{
		Padding:   cfg.Padding,
		Spacing:   cfg.Spacing,
		FitHeight: true,
	})

	// 标题栏
	result.Header = em.CreateEntity()
	ecs.AddComponent(em, result.Header, &components.RectComponent{Height: cfg.HeaderHeight, Parent: result.Panel})
	ecs.AddComponent(em, result.Header, &components.ImageComponent{Color: cfg.HeaderColor})
	ecs.AddComponent(em, result.Header, &components.LabelComponent{Text: cfg.Title, OffsetX: 8, OffsetY: 4})

	// 属性区域视口
	result.Properties = em.CreateEntity()
	ecs.AddComponent(em, result.Properties, &components.RectComponent{Parent: result.Panel, Clip: true})
	ecs.AddComponent(em, result.Properties, &components.ImageComponent{Color: cfg.PropertiesColor})
	ecs.AddComponent(em, result.Properties, &components.StackComponent{})
	ecs.AddComponent(em, result.Properties, &components.ScrollComponent{})

	// 内容
	result.Content = em.CreateEntity()
	ecs.AddComponent(em, result.Content, &components.RectComponent{Parent: result.Properties})
	ecs.AddComponent(em, result.Content, &components.StackComponent{Spacing: cfg.Spacing, FitHeight: true})

	if cfg.FooterHeight > 0 {
		result.Footer = em.CreateEntity()
		ecs.AddComponent(em, result.Footer, &components.RectComponent{Height: cfg.FooterHeight, Parent: result.Panel})
		ecs.AddComponent(em, result.Footer, &components.ImageComponent{Color: cfg.HeaderColor})
	}

	for i, rowCfg := range cfg.Rows {
		row, err := NewRow(em, result.Content, rowCfg)
		if err != nil {
			return nil, fmt.Errorf("panel %q row %d: %w", cfg.Title, i, err)
		}
		result.Rows = append(result.Rows, row)
	}

	ecs.AddComponent(em, result.Panel, &components.PanelSizerComponent{
		TopMargin:        marginOrDefault(cfg.TopMargin),
		BottomMargin:     marginOrDefault(cfg.BottomMargin),
		PropertiesEntity: result.Properties,
		ContentEntity:    result.Content,
		MarginReference:  marginRef,
		Reposition:       cfg.Reposition,
	})

	return result, nil
}

// NewRow 创建可展开的行
// 行自身的图片由指针着色，展开指示器是固定在行右侧的子实体
func NewRow(em *ecs.EntityManager, parent ecs.EntityID, cfg config.RowConfig) (ecs.EntityID, error) {
	row := em.CreateEntity()
	ecs.AddComponent(em, row, &components.RectComponent{Height: cfg.CollapsedHeight, Parent: parent})
	ecs.AddComponent(em, row, &components.LabelComponent{Text: cfg.Label, OffsetX: 12, OffsetY: 16})

	rowColor := utils.ColorTransparent
	if cfg.PointerColor != nil {
		rowColor = cfg.PointerColor.Default
	}
	ecs.AddComponent(em, row, &components.ImageComponent{Color: rowColor})

	expandable := &components.ExpandableComponent{
		CollapsedHeight: cfg.CollapsedHeight,
		ExpandedHeight:  cfg.ExpandedHeight,
		EaseSettings:    easeOrDefault(cfg.Ease),
		ToggleOnClick:   cfg.ToggleOnClick,
	}

	if cfg.Indicator != nil {
		indicator := em.CreateEntity()
		ecs.AddComponent(em, indicator, &components.RectComponent{
			Width:  indicatorSize,
			Height: indicatorSize,
			Parent: row,
		})
		ecs.AddComponent(em, indicator, &components.PinComponent{OffsetX: indicatorOffsetX, OffsetY: indicatorOffsetY})
		ecs.AddComponent(em, indicator, &components.ImageComponent{Color: cfg.Indicator.Collapsed})

		expandable.IndicatorEntity = indicator
		expandable.CollapsedColor = cfg.Indicator.Collapsed
		expandable.ExpandedColor = cfg.Indicator.Expanded
	}
	ecs.AddComponent(em, row, expandable)

	if cfg.PointerColor != nil || cfg.ToggleOnClick {
		ecs.AddComponent(em, row, &components.PointerReceiverComponent{IsEnabled: true})
	}

	if cfg.PointerColor != nil {
		priorities := make([]components.PointerEventSetting, 0, len(cfg.PointerColor.Rules))
		for _, rule := range cfg.PointerColor.Rules {
			eventType, err := components.ParsePointerEventType(rule.Event)
			if err != nil {
				return ecs.NoEntity, err
			}
			priorities = append(priorities, components.PointerEventSetting{EventType: eventType, Color: rule.Color})
		}
		ecs.AddComponent(em, row, &components.PointerColorComponent{
			DefaultColor:    cfg.PointerColor.Default,
			EventPriorities: priorities,
			EaseSettings:    easeOrDefault(cfg.PointerColor.Ease),
		})
	}

	return row, nil
}

func marginOrDefault(m *float64) float64 {
	if m == nil {
		return config.DefaultMargin
	}
	return *m
}

func easeOrDefault(e *config.EaseSettings) config.EaseSettings {
	if e == nil {
		return config.DefaultEaseSettings()
	}
	return *e
}

// NewPanels 创建配置中的所有面板
func NewPanels(em *ecs.EntityManager, cfg *config.UIConfig) ([]*PanelEntities, error) {
	panels := make([]*PanelEntities, 0, len(cfg.Panels))
	for _, panelCfg := range cfg.Panels {
		p, err := NewPanel(em, panelCfg)
		if err != nil {
			return nil, err
		}
		panels = append(panels, p)
	}
	return panels, nil
}
