package utils

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEaseLinear 测试线性缓动函数
func TestEaseLinear(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
		{"四分之一", 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EaseLinear(tt.input), 0.001)
		})
	}
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EaseOutCubic(tt.input), 0.001)
		})
	}

	t.Run("整体快于线性", func(t *testing.T) {
		for p := 0.0; p <= 1.0; p += 0.1 {
			assert.GreaterOrEqual(t, EaseOutCubic(p), EaseLinear(p)-0.001, "p=%v", p)
		}
	})
}

// TestCurveMidpoints 测试各曲线中点取值
func TestCurveMidpoints(t *testing.T) {
	tests := []struct {
		name     string
		curve    Curve
		expected float64
	}{
		{"InQuad", EaseInQuad, 0.25},
		{"OutQuad", EaseOutQuad, 0.75},
		{"InOutQuad", EaseInOutQuad, 0.5},
		{"InCubic", EaseInCubic, 0.125},
		{"InOutCubic", EaseInOutCubic, 0.5},
		{"InQuart", EaseInQuart, 0.0625},
		{"OutQuart", EaseOutQuart, 0.9375},
		{"InQuint", EaseInQuint, 0.03125},
		{"OutQuint", EaseOutQuint, 0.96875},
		{"InOutSine", EaseInOutSine, 0.5},
		{"InOutExpo", EaseInOutExpo, 0.5},
		{"InOutCirc", EaseInOutCirc, 0.5},
		{"InOutBounce", EaseInOutBounce, 0.5},
		{"InOutElastic", EaseInOutElastic, 0.5},
		{"OutBounce", EaseOutBounce, 0.765625}, // 7.5625 * (0.5 - 1.5/2.75)^2 + 0.75
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.curve(0.5), 1e-9)
		})
	}
}

// TestCurveOvershoot 回退/弹性曲线允许越过 [0, 1]
func TestCurveOvershoot(t *testing.T) {
	assert.Less(t, EaseInBack(0.2), 0.0, "InBack 开始阶段应向反方向回拉")
	assert.Greater(t, EaseOutBack(0.8), 1.0, "OutBack 结束前应冲过终点")
	assert.Greater(t, EaseOutElastic(0.1), 1.0, "OutElastic 应在早期冲过终点")
}

// TestGetEasingFunction_EndpointAnchoring 所有曲线在 0 和 1 处精确锚定
func TestGetEasingFunction_EndpointAnchoring(t *testing.T) {
	for _, e := range AllEases() {
		t.Run(e.String(), func(t *testing.T) {
			fn, err := GetEasingFunction(e)
			require.NoError(t, err)

			assert.Equal(t, 0.0, fn(0, 1, 0))
			assert.Equal(t, 1.0, fn(0, 1, 1))
			assert.Equal(t, 48.0, fn(48, 144, 0))
			assert.Equal(t, 144.0, fn(48, 144, 1))
		})
	}
}

// TestGetEasingFunction_MapsRange 求值函数把曲线映射到 [start, end]
func TestGetEasingFunction_MapsRange(t *testing.T) {
	fn, err := GetEasingFunction(Linear)
	require.NoError(t, err)
	assert.Equal(t, 50.0, fn(0, 100, 0.5))
	assert.Equal(t, 75.0, fn(100, 50, 0.5))

	quad, err := GetEasingFunction(InQuad)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, quad(0, 100, 0.5), 1e-9)

	// 超出 1 的输入不做钳制
	assert.InDelta(t, 150.0, fn(0, 100, 1.5), 1e-9)
}

// TestGetEasingFunction_Unknown 未知类型快速失败，不降级为线性
func TestGetEasingFunction_Unknown(t *testing.T) {
	for _, e := range []Ease{-1, easeCount, 999} {
		fn, err := GetEasingFunction(e)
		assert.Nil(t, fn)
		assert.True(t, errors.Is(err, ErrUnknownEase), "Ease(%d) 应返回 ErrUnknownEase", int(e))
	}

	assert.Panics(t, func() { MustGetEasingFunction(Ease(999)) })
	assert.NotPanics(t, func() { MustGetEasingFunction(OutCubic) })
}

// TestAllEases 枚举是封闭集合
func TestAllEases(t *testing.T) {
	all := AllEases()
	assert.Len(t, all, 32)

	seen := make(map[string]bool)
	for _, e := range all {
		assert.True(t, e.Valid())
		assert.False(t, seen[e.String()], "重复名称 %s", e)
		seen[e.String()] = true
	}
	assert.Equal(t, "Ease(99)", Ease(99).String())
}

// TestParseEase 测试名称解析
func TestParseEase(t *testing.T) {
	tests := []struct {
		input    string
		expected Ease
	}{
		{"EaseInOutQuad", InOutQuad},
		{"easeInOutQuad", InOutQuad},
		{"InOutQuad", InOutQuad},
		{"in_out_quad", InOutQuad},
		{"Linear", Linear},
		{"linear", Linear},
		{" spring ", Spring},
		{"EaseOutBounce", OutBounce},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := ParseEase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, e)
		})
	}

	for _, bad := range []string{"", "Ease", "EaseInOutWobble"} {
		_, err := ParseEase(bad)
		assert.ErrorIs(t, err, ErrUnknownEase, "输入 %q", bad)
	}
}

// TestEaseYAML 测试缓动类型的 YAML 读写
func TestEaseYAML(t *testing.T) {
	var doc struct {
		Function Ease `yaml:"function"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("function: easeOutCubic\n"), &doc))
	assert.Equal(t, OutCubic, doc.Function)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "function: EaseOutCubic\n", string(out))

	err = yaml.Unmarshal([]byte("function: Wobble\n"), &doc)
	assert.ErrorIs(t, err, ErrUnknownEase)
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		t        float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"四分之一", 0.0, 100.0, 0.25, 25.0},
		{"负数范围", -50.0, 50.0, 0.5, 0.0},
		{"逆向范围", 100.0, 0.0, 0.5, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Lerp(tt.a, tt.b, tt.t), 0.001)
		})
	}
}

// TestCurvesAreFinite 曲线在 [0, 1] 内不产生 NaN/Inf
func TestCurvesAreFinite(t *testing.T) {
	for _, e := range AllEases() {
		curve, err := e.Curve()
		require.NoError(t, err)
		for p := 0.0; p <= 1.0; p += 0.05 {
			v := curve(p)
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s(%v) = %v", e, p, v)
		}
	}
}
