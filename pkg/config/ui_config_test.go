package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/uikit/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUI = `
screen:
  width: 800
  height: 600
background: "#101014"
panels:
  - title: Inspector
    x: 40
    y: 60
    width: 300
    header_height: 40
    reposition: true
    color: "#2b2d33"
    rows:
      - label: Transform
        toggle_on_click: true
        ease: {duration: 0.3, function: EaseOutCubic}
        indicator: {collapsed: "#555555", expanded: "#ff9900"}
        pointer_color:
          default: "#3a3d44"
          rules:
            - {event: Pressed, color: "#ffffff"}
            - {event: Hover, color: {r: 0.5, g: 0.5, b: 0.5}}
      - label: Renderer
        collapsed_height: 32
        expanded_height: 200
`

func TestParseUIConfig(t *testing.T) {
	cfg, err := ParseUIConfig([]byte(sampleUI))
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Screen.Width)
	require.Len(t, cfg.Panels, 1)
	p := cfg.Panels[0]
	assert.Equal(t, "Inspector", p.Title)
	assert.Equal(t, 48.0, *p.TopMargin, "缺省边距")
	assert.Equal(t, 48.0, *p.BottomMargin)
	assert.Equal(t, "screen", p.MarginReference)
	assert.True(t, p.Reposition)

	require.Len(t, p.Rows, 2)
	first := p.Rows[0]
	assert.Equal(t, 48.0, first.CollapsedHeight)
	assert.Equal(t, 144.0, first.ExpandedHeight)
	assert.Equal(t, EaseSettings{Duration: 0.3, Function: utils.OutCubic}, *first.Ease)
	require.NotNil(t, first.Indicator)
	assert.InDelta(t, 1.0, first.Indicator.Expanded.R, 1e-9)
	assert.InDelta(t, 0.6, first.Indicator.Expanded.G, 1e-9)
	assert.InDelta(t, 0.0, first.Indicator.Expanded.B, 1e-9)
	require.NotNil(t, first.PointerColor)
	assert.Equal(t, DefaultEaseSettings(), *first.PointerColor.Ease)
	require.Len(t, first.PointerColor.Rules, 2)
	assert.Equal(t, "Pressed", first.PointerColor.Rules[0].Event)
	assert.Equal(t, utils.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}, first.PointerColor.Rules[1].Color)

	second := p.Rows[1]
	assert.Equal(t, 32.0, second.CollapsedHeight)
	assert.Equal(t, DefaultEaseSettings(), *second.Ease)
	assert.Nil(t, second.PointerColor)
}

func TestParseUIConfig_Defaults(t *testing.T) {
	cfg, err := ParseUIConfig([]byte("panels: []\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultScreenWidth, cfg.Screen.Width)
	assert.Equal(t, DefaultScreenHeight, cfg.Screen.Height)
}

func TestParseUIConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"非法 YAML", "panels: [\n"},
		{"宽度为 0", "panels:\n  - title: a\n"},
		{"负边距", "panels:\n  - width: 10\n    top_margin: -1\n"},
		{"未知参照", "panels:\n  - width: 10\n    margin_reference: window\n"},
		{"parent 缺少容器", "panels:\n  - width: 10\n    margin_reference: parent\n"},
		{"负高度", "panels:\n  - width: 10\n    rows:\n      - collapsed_height: -5\n"},
		{"未知缓动", "panels:\n  - width: 10\n    rows:\n      - ease: {function: EaseSideways}\n"},
		{"非法颜色", "background: \"#zz\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUIConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadUIConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleUI), 0o644))

	cfg, err := LoadUIConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Panels, 1)

	_, err = LoadUIConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadUIConfig_DefaultLayout(t *testing.T) {
	cfg, err := LoadUIConfig(filepath.Join("..", "..", "data", "ui.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Panels)
	for _, p := range cfg.Panels {
		assert.NotEmpty(t, p.Rows, p.Title)
	}
}
