package game

import (
	"fmt"
	"log"

	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/config"
	"github.com/gonewx/uikit/pkg/ecs"
	"github.com/gonewx/uikit/pkg/entities"
	"github.com/gonewx/uikit/pkg/systems"
)

// Showcase 面板展示世界
// 持有实体管理器和全部系统，由宿主每帧调用 Update
//
// 每帧的系统顺序：
//  1. 指针事件（着色、点击展开）和滚轮
//  2. 高度/颜色补间
//  3. 布局（内容高度）
//  4. 面板尺寸锁定
//  5. 再次布局（按锁定后的尺寸摆放）
type Showcase struct {
	entityManager *ecs.EntityManager
	layoutConfig  *config.UIConfig
	settings      *SettingsManager
	panels        []*entities.PanelEntities
	rows          []ecs.EntityID

	pointerSystem      *systems.PointerSystem
	scrollSystem       *systems.ScrollSystem
	expandableSystem   *systems.ExpandableSystem
	pointerColorSystem *systems.PointerColorSystem
	layoutSystem       *systems.LayoutSystem
	panelSizerSystem   *systems.PanelSizerSystem
}

// NewShowcase 根据布局配置创建展示世界
//
// settings 的覆盖项应当已经通过 ApplyTo 写入 layoutConfig。
// input 为 nil 时不处理指针事件；input 同时实现 systems.ScrollInput 时启用滚轮滚动。
func NewShowcase(layoutConfig *config.UIConfig, settings *SettingsManager, input systems.PointerInput) (*Showcase, error) {
	em := ecs.NewEntityManager()

	panels, err := entities.NewPanels(em, layoutConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build panels: %w", err)
	}

	s := &Showcase{
		entityManager:      em,
		layoutConfig:       layoutConfig,
		settings:           settings,
		panels:             panels,
		expandableSystem:   systems.NewExpandableSystem(em),
		pointerColorSystem: systems.NewPointerColorSystem(em),
		layoutSystem:       systems.NewLayoutSystem(em),
		panelSizerSystem: systems.NewPanelSizerSystem(em,
			float64(layoutConfig.Screen.Width), float64(layoutConfig.Screen.Height)),
	}
	for _, p := range panels {
		s.rows = append(s.rows, p.Rows...)
	}

	if input != nil {
		s.pointerSystem = systems.NewPointerSystem(em, input)
		s.pointerSystem.AddHandler(s.pointerColorSystem)
		s.pointerSystem.AddHandler(s.expandableSystem)
		if scroll, ok := input.(systems.ScrollInput); ok {
			s.scrollSystem = systems.NewScrollSystem(em, scroll)
		}
	}

	if err := s.expandableSystem.InitAll(); err != nil {
		return nil, err
	}
	if err := s.pointerColorSystem.InitAll(); err != nil {
		return nil, err
	}

	// 第一帧之前先算一次布局，避免首帧闪烁
	s.layout()

	log.Printf("[Showcase] Built %d panels with %d rows", len(panels), len(s.rows))
	return s, nil
}

// Update 推进一帧
func (s *Showcase) Update(deltaTime float64) {
	if s.pointerSystem != nil {
		s.pointerSystem.Update(deltaTime)
	}
	if s.scrollSystem != nil {
		s.scrollSystem.Update(deltaTime)
	}
	s.expandableSystem.Update(deltaTime)
	s.pointerColorSystem.Update(deltaTime)
	s.layout()
	s.entityManager.RemoveMarkedEntities()
}

func (s *Showcase) layout() {
	s.layoutSystem.Update(0)
	s.panelSizerSystem.Update(0)
	s.layoutSystem.Update(0)
}

// ToggleAll 切换所有行
func (s *Showcase) ToggleAll() {
	s.expandableSystem.ToggleAll()
}

// ToggleRow 切换第 index 行（跨面板按顺序编号，从 0 开始）
func (s *Showcase) ToggleRow(index int) bool {
	if index < 0 || index >= len(s.rows) {
		return false
	}
	s.expandableSystem.ToggleExpand(s.rows[index])
	return true
}

// MarginReference 返回有父容器的面板当前使用的边距参照
func (s *Showcase) MarginReference() components.MarginReference {
	for _, p := range s.panels {
		if p.Container == ecs.NoEntity {
			continue
		}
		sizer, _ := ecs.GetComponent[*components.PanelSizerComponent](s.entityManager, p.Panel)
		return sizer.MarginReference
	}
	return components.MarginScreen
}

// HasContainer 是否有面板配置了父容器
func (s *Showcase) HasContainer() bool {
	for _, p := range s.panels {
		if p.Container != ecs.NoEntity {
			return true
		}
	}
	return false
}

// FlipMarginReference 在屏幕和父容器参照之间切换并保存偏好
// 没有父容器的面板始终使用屏幕参照；所有面板都没有父容器时不做任何事
func (s *Showcase) FlipMarginReference() error {
	if !s.HasContainer() {
		log.Printf("[Showcase] No panel has a container, margin reference stays %s", components.MarginScreen)
		return nil
	}

	next := components.MarginParent
	if s.MarginReference() == components.MarginParent {
		next = components.MarginScreen
	}

	for _, p := range s.panels {
		if p.Container == ecs.NoEntity {
			continue
		}
		sizer, _ := ecs.GetComponent[*components.PanelSizerComponent](s.entityManager, p.Panel)
		sizer.MarginReference = next
	}
	log.Printf("[Showcase] Margin reference -> %s", next)

	if err := s.settings.SetMarginReference(next.String()); err != nil {
		return err
	}
	return s.settings.Save()
}

// Reposition 返回当前是否自动移回边距内（以第一个面板为准）
func (s *Showcase) Reposition() bool {
	if len(s.panels) == 0 {
		return false
	}
	sizer, _ := ecs.GetComponent[*components.PanelSizerComponent](s.entityManager, s.panels[0].Panel)
	return sizer.Reposition
}

// FlipReposition 切换所有面板的自动移回并保存偏好
func (s *Showcase) FlipReposition() error {
	next := !s.Reposition()
	for _, p := range s.panels {
		sizer, _ := ecs.GetComponent[*components.PanelSizerComponent](s.entityManager, p.Panel)
		sizer.Reposition = next
	}
	log.Printf("[Showcase] Reposition -> %v", next)

	s.settings.SetReposition(next)
	return s.settings.Save()
}

// SetScreenSize 更新屏幕尺寸
func (s *Showcase) SetScreenSize(width, height int) {
	s.panelSizerSystem.SetScreenSize(float64(width), float64(height))
}

// EntityManager 返回实体管理器（用于渲染）
func (s *Showcase) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Panels 返回所有面板
func (s *Showcase) Panels() []*entities.PanelEntities {
	return s.panels
}

// RowCount 返回行数
func (s *Showcase) RowCount() int {
	return len(s.rows)
}

// LayoutConfig 返回布局配置
func (s *Showcase) LayoutConfig() *config.UIConfig {
	return s.layoutConfig
}
