package game

import (
	"testing"

	"github.com/gonewx/uikit/pkg/config"
	"github.com/gonewx/uikit/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	// 使用临时目录作为 HOME，避免污染真实用户数据
	t.Setenv("HOME", t.TempDir())

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 默认不覆盖任何配置
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.EaseOverride != "" || settings.DurationOverride != 0 || settings.MarginReference != "" {
		t.Errorf("DefaultSettings() should not override anything, got %+v", settings)
	}
	if settings.Reposition != nil {
		t.Error("Reposition: got non-nil, want nil")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	// 降级模式下保存不报错
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode: %v", err)
	}
	if sm.GetSettings().Fullscreen {
		t.Error("Load() in degraded mode should reset to defaults")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_uikit_settings")

	sm1, err := NewSettingsManager(gdataManager)
	require.NoError(t, err)

	require.NoError(t, sm1.SetEaseOverride("out_back"))
	require.NoError(t, sm1.SetDurationOverride(0.4))
	require.NoError(t, sm1.SetMarginReference("Parent"))
	sm1.SetReposition(true)
	sm1.SetFullscreen(true)
	require.NoError(t, sm1.Save())

	sm2, err := NewSettingsManager(gdataManager)
	require.NoError(t, err)

	settings := sm2.GetSettings()
	assert.Equal(t, "EaseOutBack", settings.EaseOverride)
	assert.Equal(t, 0.4, settings.DurationOverride)
	assert.Equal(t, "parent", settings.MarginReference)
	require.NotNil(t, settings.Reposition)
	assert.True(t, *settings.Reposition)
	assert.True(t, settings.Fullscreen)
}

func TestSettersRejectInvalidValues(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	assert.ErrorIs(t, sm.SetEaseOverride("EaseSideways"), utils.ErrUnknownEase)
	assert.ErrorIs(t, sm.SetDurationOverride(-1), config.ErrInvalidDuration)
	assert.Error(t, sm.SetMarginReference("window"))

	// 清除覆盖
	require.NoError(t, sm.SetEaseOverride("linear"))
	require.NoError(t, sm.SetEaseOverride(""))
	assert.Empty(t, sm.GetSettings().EaseOverride)
}

func TestApplyTo(t *testing.T) {
	cfg, err := config.ParseUIConfig([]byte(`
panels:
  - width: 100
    rows:
      - ease: {duration: 0.3, function: EaseOutCubic}
      - label: default ease
  - width: 100
    margin_reference: parent
    container: {x: 0, y: 0, width: 200, height: 200}
`))
	require.NoError(t, err)

	sm, _ := NewSettingsManager(nil)
	require.NoError(t, sm.SetEaseOverride("EaseInOutBack"))
	require.NoError(t, sm.SetMarginReference("parent"))
	sm.SetReposition(true)
	require.NoError(t, sm.ApplyTo(cfg))

	first := cfg.Panels[0]
	assert.Equal(t, "screen", first.MarginReference, "没有父容器的面板保持屏幕参照")
	assert.True(t, first.Reposition)
	assert.Equal(t, config.EaseSettings{Duration: 0.3, Function: utils.InOutBack}, *first.Rows[0].Ease)
	assert.Equal(t, config.EaseSettings{Duration: 1.0, Function: utils.InOutBack}, *first.Rows[1].Ease)
	assert.Equal(t, "parent", cfg.Panels[1].MarginReference)

	require.NoError(t, sm.SetDurationOverride(0.5))
	require.NoError(t, sm.ApplyTo(cfg))
	assert.Equal(t, 0.5, cfg.Panels[0].Rows[1].Ease.Duration)
}

func TestApplyTo_InvalidStoredOverride(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.GetSettings().EaseOverride = "bogus"

	err := sm.ApplyTo(&config.UIConfig{})
	assert.ErrorIs(t, err, utils.ErrUnknownEase)
}
