package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonewx/uikit/pkg/utils"
	"gopkg.in/yaml.v3"
)

// 缓动配置默认值（与编辑器中新建组件时的默认值一致）
const (
	DefaultEaseDuration = 1.0
	DefaultEaseFunction = utils.InOutQuad
)

// ErrInvalidDuration 缓动时长非法（负数、NaN 或无穷大）
// 时长为 0 是合法的快速路径：下一帧立即到达目标值
var ErrInvalidDuration = errors.New("invalid ease duration")

// EaseSettings 可复用的缓动配置
//
// 配置完成后不可变；按值传递给每个 tween.Controller，多个控制器可共享同一份配置。
//
// YAML 示例：
//
//	ease:
//	  duration: 0.25
//	  function: EaseOutCubic
type EaseSettings struct {
	// Duration 缓动持续时间（秒）
	Duration float64 `yaml:"duration"`

	// Function 缓动函数类型
	Function utils.Ease `yaml:"function"`
}

// DefaultEaseSettings 返回默认缓动配置（1 秒，EaseInOutQuad）
func DefaultEaseSettings() EaseSettings {
	return EaseSettings{
		Duration: DefaultEaseDuration,
		Function: DefaultEaseFunction,
	}
}

// NewEaseSettings 创建并校验缓动配置
func NewEaseSettings(duration float64, function utils.Ease) (EaseSettings, error) {
	s := EaseSettings{Duration: duration, Function: function}
	if err := s.Validate(); err != nil {
		return EaseSettings{}, err
	}
	return s, nil
}

// Validate 校验配置
//
// 返回：
//   - utils.ErrUnknownEase: 缓动类型不在枚举内
//   - ErrInvalidDuration: 时长为负数、NaN 或无穷大
func (s EaseSettings) Validate() error {
	if !s.Function.Valid() {
		return fmt.Errorf("%w: %d", utils.ErrUnknownEase, int(s.Function))
	}
	if math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0) || s.Duration < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, s.Duration)
	}
	return nil
}

// UnmarshalYAML 解析缓动配置，未给出的字段使用默认值
func (s *EaseSettings) UnmarshalYAML(value *yaml.Node) error {
	type plain EaseSettings
	parsed := plain(DefaultEaseSettings())
	if err := value.Decode(&parsed); err != nil {
		return err
	}

	settings := EaseSettings(parsed)
	if err := settings.Validate(); err != nil {
		return err
	}
	*s = settings
	return nil
}
