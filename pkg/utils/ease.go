package utils

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ease 缓动类型枚举（封闭集合）
// 通过 GetEasingFunction 解析为具体函数，调用方应在配置时解析一次并缓存结果
type Ease int

const (
	InQuad Ease = iota
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InSine
	OutSine
	InOutSine
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	Linear
	Spring
	InBounce
	OutBounce
	InOutBounce
	InBack
	OutBack
	InOutBack
	InElastic
	OutElastic
	InOutElastic

	easeCount
)

// ErrUnknownEase 未知的缓动类型
// 这是配置错误，不会降级为线性缓动
var ErrUnknownEase = errors.New("unknown easing function")

var easeNames = [easeCount]string{
	InQuad:       "EaseInQuad",
	OutQuad:      "EaseOutQuad",
	InOutQuad:    "EaseInOutQuad",
	InCubic:      "EaseInCubic",
	OutCubic:     "EaseOutCubic",
	InOutCubic:   "EaseInOutCubic",
	InQuart:      "EaseInQuart",
	OutQuart:     "EaseOutQuart",
	InOutQuart:   "EaseInOutQuart",
	InQuint:      "EaseInQuint",
	OutQuint:     "EaseOutQuint",
	InOutQuint:   "EaseInOutQuint",
	InSine:       "EaseInSine",
	OutSine:      "EaseOutSine",
	InOutSine:    "EaseInOutSine",
	InExpo:       "EaseInExpo",
	OutExpo:      "EaseOutExpo",
	InOutExpo:    "EaseInOutExpo",
	InCirc:       "EaseInCirc",
	OutCirc:      "EaseOutCirc",
	InOutCirc:    "EaseInOutCirc",
	Linear:       "Linear",
	Spring:       "Spring",
	InBounce:     "EaseInBounce",
	OutBounce:    "EaseOutBounce",
	InOutBounce:  "EaseInOutBounce",
	InBack:       "EaseInBack",
	OutBack:      "EaseOutBack",
	InOutBack:    "EaseInOutBack",
	InElastic:    "EaseInElastic",
	OutElastic:   "EaseOutElastic",
	InOutElastic: "EaseInOutElastic",
}

var easeCurves = [easeCount]Curve{
	InQuad:       EaseInQuad,
	OutQuad:      EaseOutQuad,
	InOutQuad:    EaseInOutQuad,
	InCubic:      EaseInCubic,
	OutCubic:     EaseOutCubic,
	InOutCubic:   EaseInOutCubic,
	InQuart:      EaseInQuart,
	OutQuart:     EaseOutQuart,
	InOutQuart:   EaseInOutQuart,
	InQuint:      EaseInQuint,
	OutQuint:     EaseOutQuint,
	InOutQuint:   EaseInOutQuint,
	InSine:       EaseInSine,
	OutSine:      EaseOutSine,
	InOutSine:    EaseInOutSine,
	InExpo:       EaseInExpo,
	OutExpo:      EaseOutExpo,
	InOutExpo:    EaseInOutExpo,
	InCirc:       EaseInCirc,
	OutCirc:      EaseOutCirc,
	InOutCirc:    EaseInOutCirc,
	Linear:       EaseLinear,
	Spring:       EaseSpring,
	InBounce:     EaseInBounce,
	OutBounce:    EaseOutBounce,
	InOutBounce:  EaseInOutBounce,
	InBack:       EaseInBack,
	OutBack:      EaseOutBack,
	InOutBack:    EaseInOutBack,
	InElastic:    EaseInElastic,
	OutElastic:   EaseOutElastic,
	InOutElastic: EaseInOutElastic,
}

// String 返回缓动类型名称（与配置文件中的写法一致）
func (e Ease) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Ease(%d)", int(e))
	}
	return easeNames[e]
}

// Valid 判断缓动类型是否属于已知枚举
func (e Ease) Valid() bool {
	return e >= 0 && e < easeCount
}

// Curve 返回该缓动类型对应的归一化曲线
func (e Ease) Curve() (Curve, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEase, int(e))
	}
	return easeCurves[e], nil
}

// AllEases 返回全部缓动类型（按枚举顺序）
func AllEases() []Ease {
	all := make([]Ease, 0, easeCount)
	for e := Ease(0); e < easeCount; e++ {
		all = append(all, e)
	}
	return all
}

// ParseEase 按名称解析缓动类型
// 大小写不敏感，允许省略 "Ease" 前缀：
//   - "EaseInOutQuad" / "easeInOutQuad" / "InOutQuad" / "in_out_quad"
//   - "Linear" / "linear"
func ParseEase(name string) (Ease, error) {
	key := normalizeEaseName(name)
	if key == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownEase)
	}
	for e := Ease(0); e < easeCount; e++ {
		if normalizeEaseName(easeNames[e]) == key {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEase, name)
}

func normalizeEaseName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	return strings.TrimPrefix(key, "ease")
}

// GetEasingFunction 将缓动类型解析为求值函数
//
// 返回的函数满足：
//   - value == 0 时精确返回 start
//   - value == 1 时精确返回 end
//   - 其他位置为 start + (end-start) * curve(value)，value 不做钳制
//
// 未知类型返回 ErrUnknownEase（快速失败）。
func GetEasingFunction(e Ease) (EasingFunction, error) {
	curve, err := e.Curve()
	if err != nil {
		return nil, err
	}
	return func(start, end, value float64) float64 {
		switch value {
		case 0:
			return start
		case 1:
			return end
		}
		return Lerp(start, end, curve(value))
	}, nil
}

// MustGetEasingFunction 与 GetEasingFunction 相同，未知类型直接 panic
// 仅用于静态配置表等编程错误场景
func MustGetEasingFunction(e Ease) EasingFunction {
	fn, err := GetEasingFunction(e)
	if err != nil {
		panic(err)
	}
	return fn
}

// UnmarshalYAML 从名称解析缓动类型
func (e *Ease) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("ease must be a string: %w", err)
	}
	parsed, err := ParseEase(name)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalYAML 以名称形式输出缓动类型
func (e Ease) MarshalYAML() (interface{}, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEase, int(e))
	}
	return e.String(), nil
}
