// Package tween 提供可中断的数值补间控制器
//
// 每个被动画驱动的属性（高度、颜色）持有一个 Controller。
// 外部调用 Request(target) 发起补间，宿主循环每帧调用 Update(deltaTime) 推进；
// 控制器把插值结果写回属性所有者，完成时精确写入目标值。
//
// 控制器不持有线程或定时器，所有推进都由调用方的帧循环驱动（单线程协作式）。
package tween

import (
	"errors"
	"fmt"

	"github.com/gonewx/uikit/pkg/config"
	"github.com/gonewx/uikit/pkg/utils"
)

// DurationEpsilon 小于等于该值的时长视为 0，下一帧直接到达目标值（避免除零）
const DurationEpsilon = 1e-6

var (
	// ErrNilProperty 未提供写回目标
	ErrNilProperty = errors.New("tween property is nil")
	// ErrNilLerp 未提供插值函数
	ErrNilLerp = errors.New("tween lerp function is nil")
)

// State 补间状态
type State int

const (
	// StateIdle 无活动补间
	StateIdle State = iota
	// StateRunning 补间进行中
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// LerpFunc 值类型的线性混合
// progress 为缓动后的混合因子，可能超出 [0, 1]（Back/Elastic 曲线）
type LerpFunc[T any] func(from, to T, progress float64) T

// Controller 单个属性的补间控制器
//
// 不变式：
//   - 同一时刻最多一个补间在推进（Request 同步丢弃进行中的补间）
//   - 自然完成时属性精确等于目标值
//   - 中途重新定向时以当前插值结果作为新的起点
type Controller[T comparable] struct {
	settings config.EaseSettings
	easing   utils.EasingFunction // 配置时解析一次，避免每帧查表
	lerp     LerpFunc[T]
	property Property[T]

	state   State
	start   T
	target  T
	current T
	elapsed float64

	onComplete func(T)
}

// NewController 创建补间控制器
//
// 参数：
//   - settings: 缓动配置（时长 + 缓动类型），非法时返回错误
//   - property: 写回目标，不能为 nil
//   - lerp: 值类型的混合函数，不能为 nil
func NewController[T comparable](settings config.EaseSettings, property Property[T], lerp LerpFunc[T]) (*Controller[T], error) {
	if property == nil {
		return nil, ErrNilProperty
	}
	if lerp == nil {
		return nil, ErrNilLerp
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ease settings: %w", err)
	}
	easing, err := utils.GetEasingFunction(settings.Function)
	if err != nil {
		return nil, err
	}

	current := property.Get()
	return &Controller[T]{
		settings: settings,
		easing:   easing,
		lerp:     lerp,
		property: property,
		state:    StateIdle,
		start:    current,
		target:   current,
		current:  current,
	}, nil
}

// NewFloatController 创建标量补间控制器
func NewFloatController(settings config.EaseSettings, property Property[float64]) (*Controller[float64], error) {
	return NewController[float64](settings, property, utils.Lerp)
}

// NewColorController 创建颜色补间控制器
// 缓动结果作为混合因子逐通道插值
func NewColorController(settings config.EaseSettings, property Property[utils.Color]) (*Controller[utils.Color], error) {
	return NewController[utils.Color](settings, property, utils.LerpColor)
}

// Request 发起补间到 target
//
// 进行中时取当前插值结果作为新起点并丢弃剩余帧；空闲时取属性当前值作为起点。
// 多次调用以最后一次为准，两次调用之间没有 Update 时等价于调用一次。
// 即使 target 与当前值相同，也会进入 Running 并在下一帧完成。
func (c *Controller[T]) Request(target T) {
	if c.state == StateIdle {
		c.current = c.property.Get()
	}
	c.start = c.current
	c.target = target
	c.elapsed = 0
	c.state = StateRunning
}

// Update 推进一帧
// 空闲时不做任何事；负的 deltaTime 按 0 处理
func (c *Controller[T]) Update(deltaTime float64) {
	if c.state != StateRunning {
		return
	}
	if deltaTime > 0 {
		c.elapsed += deltaTime
	}

	duration := c.settings.Duration
	if duration <= DurationEpsilon || c.start == c.target || c.elapsed >= duration {
		c.finish()
		return
	}

	progress := c.easing(0, 1, c.elapsed/duration)
	c.write(c.lerp(c.start, c.target, progress))
}

// Cancel 停止补间但不写入目标值
// 仅用于属性所有者被销毁的场景；正常流程总会以精确目标值结束
func (c *Controller[T]) Cancel() {
	c.state = StateIdle
	c.elapsed = 0
}

// Snap 立即写入目标值并结束补间
func (c *Controller[T]) Snap(target T) {
	c.target = target
	c.state = StateRunning
	c.finish()
}

// OnComplete 注册完成回调（自然完成或 Snap 时调用，Cancel 不调用）
func (c *Controller[T]) OnComplete(fn func(T)) {
	c.onComplete = fn
}

func (c *Controller[T]) finish() {
	c.write(c.target)
	c.state = StateIdle
	if c.onComplete != nil {
		c.onComplete(c.target)
	}
}

func (c *Controller[T]) write(v T) {
	c.current = v
	c.property.Set(v)
}

// State 返回当前状态
func (c *Controller[T]) State() State {
	return c.state
}

// IsRunning 补间是否进行中
func (c *Controller[T]) IsRunning() bool {
	return c.state == StateRunning
}

// Start 返回当前（或最近一次）补间的起点
func (c *Controller[T]) Start() T {
	return c.start
}

// Target 返回当前（或最近一次）补间的目标值
func (c *Controller[T]) Target() T {
	return c.target
}

// Value 返回控制器最近一次写入的值
func (c *Controller[T]) Value() T {
	return c.current
}

// Elapsed 返回当前补间已经过的时间（秒）
func (c *Controller[T]) Elapsed() float64 {
	return c.elapsed
}

// Progress 返回归一化时间进度（0.0 到 1.0，未经缓动）
func (c *Controller[T]) Progress() float64 {
	if c.state != StateRunning {
		return 1.0
	}
	if c.settings.Duration <= DurationEpsilon {
		return 1.0
	}
	return utils.Clamp01(c.elapsed / c.settings.Duration)
}

// Settings 返回控制器使用的缓动配置
func (c *Controller[T]) Settings() config.EaseSettings {
	return c.settings
}
