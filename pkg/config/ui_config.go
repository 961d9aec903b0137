package config

import (
	"fmt"
	"os"

	"github.com/gonewx/uikit/pkg/utils"
	"gopkg.in/yaml.v3"
)

// UIConfig 面板展示布局配置（data/ui.yaml）
type UIConfig struct {
	Screen     ScreenConfig  `yaml:"screen"`
	Background utils.Color   `yaml:"background"`
	Panels     []PanelConfig `yaml:"panels"`
}

// ScreenConfig 逻辑屏幕尺寸
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ContainerConfig 可选的父容器（margin_reference: parent 时作为边距参照）
type ContainerConfig struct {
	X      float64     `yaml:"x"`
	Y      float64     `yaml:"y"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Color  utils.Color `yaml:"color"`
}

// PanelConfig 单个面板
type PanelConfig struct {
	Title string  `yaml:"title"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`

	HeaderHeight float64 `yaml:"header_height"`
	FooterHeight float64 `yaml:"footer_height"`
	Padding      float64 `yaml:"padding"`
	Spacing      float64 `yaml:"spacing"`

	// 边距（像素），nil 表示使用默认值 48
	TopMargin    *float64 `yaml:"top_margin"`
	BottomMargin *float64 `yaml:"bottom_margin"`

	// MarginReference "screen" 或 "parent"
	MarginReference string `yaml:"margin_reference"`
	Reposition      bool   `yaml:"reposition"`

	Container *ContainerConfig `yaml:"container"`

	Color           utils.Color `yaml:"color"`
	HeaderColor     utils.Color `yaml:"header_color"`
	PropertiesColor utils.Color `yaml:"properties_color"`

	Rows []RowConfig `yaml:"rows"`
}

// RowConfig 面板中的一行（可展开 + 指针着色）
type RowConfig struct {
	Label           string        `yaml:"label"`
	CollapsedHeight float64       `yaml:"collapsed_height"`
	ExpandedHeight  float64       `yaml:"expanded_height"`
	ToggleOnClick   bool          `yaml:"toggle_on_click"`
	Ease            *EaseSettings `yaml:"ease"`

	Indicator    *IndicatorConfig    `yaml:"indicator"`
	PointerColor *PointerColorConfig `yaml:"pointer_color"`
}

// IndicatorConfig 展开指示器颜色
type IndicatorConfig struct {
	Collapsed utils.Color `yaml:"collapsed"`
	Expanded  utils.Color `yaml:"expanded"`
}

// PointerColorConfig 指针颜色规则
type PointerColorConfig struct {
	Default utils.Color         `yaml:"default"`
	Ease    *EaseSettings       `yaml:"ease"`
	Rules   []PointerRuleConfig `yaml:"rules"`
}

// PointerRuleConfig 单条规则，按书写顺序决定优先级
type PointerRuleConfig struct {
	Event string      `yaml:"event"`
	Color utils.Color `yaml:"color"`
}

// 布局默认值
const (
	DefaultScreenWidth  = 1024
	DefaultScreenHeight = 768
	DefaultMargin       = 48.0
	DefaultRowCollapsed = 48.0
	DefaultRowExpanded  = 144.0
)

// LoadUIConfig 从 YAML 文件加载布局配置
func LoadUIConfig(path string) (*UIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ui config file %s: %w", path, err)
	}
	cfg, err := ParseUIConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseUIConfig 解析布局配置，填充默认值并校验
func ParseUIConfig(data []byte) (*UIConfig, error) {
	var cfg UIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ui config YAML: %w", err)
	}
	applyUIDefaults(&cfg)
	if err := validateUIConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid ui config: %w", err)
	}
	return &cfg, nil
}

func applyUIDefaults(cfg *UIConfig) {
	if cfg.Screen.Width == 0 {
		cfg.Screen.Width = DefaultScreenWidth
	}
	if cfg.Screen.Height == 0 {
		cfg.Screen.Height = DefaultScreenHeight
	}

	for i := range cfg.Panels {
		p := &cfg.Panels[i]
		if p.TopMargin == nil {
			m := DefaultMargin
			p.TopMargin = &m
		}
		if p.BottomMargin == nil {
			m := DefaultMargin
			p.BottomMargin = &m
		}
		if p.MarginReference == "" {
			p.MarginReference = "screen"
		}
		for j := range p.Rows {
			r := &p.Rows[j]
			if r.CollapsedHeight == 0 {
				r.CollapsedHeight = DefaultRowCollapsed
			}
			if r.ExpandedHeight == 0 {
				r.ExpandedHeight = DefaultRowExpanded
			}
			if r.Ease == nil {
				ease := DefaultEaseSettings()
				r.Ease = &ease
			}
			if r.PointerColor != nil && r.PointerColor.Ease == nil {
				ease := DefaultEaseSettings()
				r.PointerColor.Ease = &ease
			}
		}
	}
}

func validateUIConfig(cfg *UIConfig) error {
	if cfg.Screen.Width < 0 || cfg.Screen.Height < 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}

	for i, p := range cfg.Panels {
		if p.Width <= 0 {
			return fmt.Errorf("panel %d: width must be positive, got %v", i, p.Width)
		}
		if *p.TopMargin < 0 || *p.BottomMargin < 0 {
			return fmt.Errorf("panel %d: margins cannot be negative", i)
		}
		if p.MarginReference != "screen" && p.MarginReference != "parent" {
			return fmt.Errorf("panel %d: margin_reference must be screen or parent, got %q", i, p.MarginReference)
		}
		if p.MarginReference == "parent" && p.Container == nil {
			return fmt.Errorf("panel %d: margin_reference parent requires a container", i)
		}
		for j, r := range p.Rows {
			if r.CollapsedHeight < 0 || r.ExpandedHeight < 0 {
				return fmt.Errorf("panel %d, row %d: heights cannot be negative", i, j)
			}
		}
	}
	return nil
}
