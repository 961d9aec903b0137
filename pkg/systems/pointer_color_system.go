package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/ecs"
	"github.com/gonewx/uikit/pkg/tween"
)

// PointerColorSystem 指针颜色系统
// 根据指针状态和优先级列表，把目标图片颜色平滑过渡到对应颜色
type PointerColorSystem struct {
	entityManager *ecs.EntityManager
}

// NewPointerColorSystem 创建指针颜色系统
func NewPointerColorSystem(em *ecs.EntityManager) *PointerColorSystem {
	s := &PointerColorSystem{entityManager: em}
	em.OnDestroy(s.cancel)
	return s
}

// Init 初始化：目标图片颜色设为默认色，创建补间控制器，并按当前状态更新一次颜色
func (s *PointerColorSystem) Init(entityID ecs.EntityID) error {
	pc, ok := ecs.GetComponent[*components.PointerColorComponent](s.entityManager, entityID)
	if !ok {
		return fmt.Errorf("entity %d: PointerColorComponent: %w", entityID, ErrMissingComponent)
	}
	if pc.TargetEntity == ecs.NoEntity {
		pc.TargetEntity = entityID
	}
	img, ok := ecs.GetComponent[*components.ImageComponent](s.entityManager, pc.TargetEntity)
	if !ok {
		return fmt.Errorf("entity %d: target %d ImageComponent: %w", entityID, pc.TargetEntity, ErrMissingComponent)
	}

	img.Color = pc.DefaultColor
	colorTween, err := tween.NewColorController(pc.EaseSettings, img.ColorProperty())
	if err != nil {
		return fmt.Errorf("entity %d: color tween: %w", entityID, err)
	}
	pc.ColorTween = colorTween

	s.UpdateColor(entityID)
	return nil
}

// InitAll 初始化所有指针颜色实体
func (s *PointerColorSystem) InitAll() error {
	for _, id := range ecs.GetEntitiesWith1[*components.PointerColorComponent](s.entityManager) {
		if err := s.Init(id); err != nil {
			return err
		}
	}
	return nil
}

// UpdateColor 按优先级选出颜色并请求过渡
func (s *PointerColorSystem) UpdateColor(entityID ecs.EntityID) {
	pc, ok := ecs.GetComponent[*components.PointerColorComponent](s.entityManager, entityID)
	if !ok || pc.ColorTween == nil {
		return
	}
	pc.ColorTween.Request(pc.ResolveColor())
}

func (s *PointerColorSystem) setFlag(entityID ecs.EntityID, apply func(pc *components.PointerColorComponent)) {
	pc, ok := ecs.GetComponent[*components.PointerColorComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	apply(pc)
	s.UpdateColor(entityID)
}

// OnPointerEnter 指针进入
func (s *PointerColorSystem) OnPointerEnter(entityID ecs.EntityID) {
	s.setFlag(entityID, func(pc *components.PointerColorComponent) { pc.Hovered = true })
}

// OnPointerExit 指针离开
func (s *PointerColorSystem) OnPointerExit(entityID ecs.EntityID) {
	s.setFlag(entityID, func(pc *components.PointerColorComponent) { pc.Hovered = false })
}

// OnPointerDown 指针按下
func (s *PointerColorSystem) OnPointerDown(entityID ecs.EntityID) {
	s.setFlag(entityID, func(pc *components.PointerColorComponent) { pc.Pressed = true })
}

// OnPointerUp 指针释放
func (s *PointerColorSystem) OnPointerUp(entityID ecs.EntityID) {
	s.setFlag(entityID, func(pc *components.PointerColorComponent) { pc.Pressed = false })
}

// OnPointerClick 点击切换选中状态
func (s *PointerColorSystem) OnPointerClick(entityID ecs.EntityID) {
	s.setFlag(entityID, func(pc *components.PointerColorComponent) { pc.Selected = !pc.Selected })
}

// Update 推进所有颜色补间
func (s *PointerColorSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.PointerColorComponent](s.entityManager) {
		pc, _ := ecs.GetComponent[*components.PointerColorComponent](s.entityManager, id)
		if pc.ColorTween != nil {
			pc.ColorTween.Update(deltaTime)
		}
	}
}

func (s *PointerColorSystem) cancel(entityID ecs.EntityID) {
	pc, ok := ecs.GetComponent[*components.PointerColorComponent](s.entityManager, entityID)
	if ok && pc.ColorTween != nil {
		pc.ColorTween.Cancel()
		log.Printf("[PointerColorSystem] Cancelled color tween of destroyed entity %d", entityID)
	}
}
