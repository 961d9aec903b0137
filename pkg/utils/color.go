package utils

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color 四通道浮点颜色
//
// 插值与通道取值范围无关：LerpColor 对每个通道独立做线性插值，
// 因此 0~255 的输入同样适用。渲染（ToRGBA）时约定通道范围为 0.0~1.0。
type Color struct {
	R, G, B, A float64
}

// 常用颜色
var (
	ColorWhite       = Color{R: 1, G: 1, B: 1, A: 1}
	ColorBlack       = Color{A: 1}
	ColorTransparent = Color{}
)

// LerpColor 颜色线性插值
// t 被限制在 [0, 1]，超调曲线（Back/Elastic）作用在颜色上时会饱和在端点
func LerpColor(a, b Color, t float64) Color {
	t = Clamp01(t)
	return Color{
		R: Lerp(a.R, b.R, t),
		G: Lerp(a.G, b.G, t),
		B: Lerp(a.B, b.B, t),
		A: Lerp(a.A, b.A, t),
	}
}

// ToRGBA 转换为 image/color 的 RGBA（预乘 Alpha）
func (c Color) ToRGBA() color.RGBA {
	a := Clamp01(c.A)
	return color.RGBA{
		R: toByte(Clamp01(c.R) * a),
		G: toByte(Clamp01(c.G) * a),
		B: toByte(Clamp01(c.B) * a),
		A: toByte(a),
	}
}

func toByte(v float64) uint8 {
	return uint8(v*255 + 0.5)
}

// Hex 以 #rrggbbaa 形式输出颜色
func (c Color) Hex() string {
	cf := colorful.Color{R: Clamp01(c.R), G: Clamp01(c.G), B: Clamp01(c.B)}
	return fmt.Sprintf("%s%02x", cf.Hex(), toByte(Clamp01(c.A)))
}

// ParseHexColor 解析十六进制颜色
// 支持 "#rgb"、"#rrggbb"（不透明）和 "#rrggbbaa"
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}

	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: cf.R, G: cf.G, B: cf.B, A: alpha}, nil
}

// UnmarshalYAML 支持两种写法：
//
//	color: "#3a7bd5"
//	color: {r: 0.2, g: 0.4, b: 0.8, a: 1}
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		parsed, err := ParseHexColor(value.Value)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	raw := struct {
		R float64  `yaml:"r"`
		G float64  `yaml:"g"`
		B float64  `yaml:"b"`
		A *float64 `yaml:"a"`
	}{}
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}
	*c = Color{R: raw.R, G: raw.G, B: raw.B, A: 1}
	if raw.A != nil {
		c.A = *raw.A
	}
	return nil
}

// MarshalYAML 以十六进制字符串输出
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}
