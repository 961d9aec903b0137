package game

import (
	"fmt"
	"log"

	"github.com/gonewx/uikit/pkg/components"
	"github.com/gonewx/uikit/pkg/config"
	"github.com/gonewx/uikit/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ShowcaseSettings 展示程序的本地偏好
// 空值表示不覆盖布局文件中的配置
type ShowcaseSettings struct {
	// 缓动覆盖
	EaseOverride     string  `yaml:"easeOverride"`     // 所有行使用的缓动名称，例如 "EaseOutBack"
	DurationOverride float64 `yaml:"durationOverride"` // 所有行使用的时长（秒），0 表示不覆盖

	// 面板尺寸覆盖
	MarginReference string `yaml:"marginReference"` // "screen" / "parent"
	Reposition      *bool  `yaml:"reposition"`

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置（不覆盖任何配置）
func DefaultSettings() *ShowcaseSettings {
	return &ShowcaseSettings{}
}

// SettingsManager 设置管理器
// 负责偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager     // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ShowcaseSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "showcase"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded ShowcaseSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ShowcaseSettings {
	return sm.settings
}

// SetEaseOverride 设置缓动覆盖（空字符串清除覆盖）
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetEaseOverride(name string) error {
	if name == "" {
		sm.settings.EaseOverride = ""
		return nil
	}
	ease, err := utils.ParseEase(name)
	if err != nil {
		return err
	}
	sm.settings.EaseOverride = ease.String()
	return nil
}

// SetDurationOverride 设置时长覆盖（0 清除覆盖）
func (sm *SettingsManager) SetDurationOverride(duration float64) error {
	if _, err := config.NewEaseSettings(duration, config.DefaultEaseFunction); err != nil {
		return err
	}
	sm.settings.DurationOverride = duration
	return nil
}

// SetMarginReference 设置边距参照（空字符串清除覆盖）
func (sm *SettingsManager) SetMarginReference(ref string) error {
	if ref == "" {
		sm.settings.MarginReference = ""
		return nil
	}
	parsed, err := components.ParseMarginReference(ref)
	if err != nil {
		return err
	}
	sm.settings.MarginReference = parsed.String()
	return nil
}

// SetReposition 设置是否自动移回边距内
func (sm *SettingsManager) SetReposition(enabled bool) {
	sm.settings.Reposition = &enabled
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ApplyTo 把覆盖项写入布局配置
//
// 缓动覆盖作用于每一行的展开动画；边距参照覆盖只作用于配置了父容器的面板，
// 没有父容器的面板保持屏幕参照。
func (sm *SettingsManager) ApplyTo(cfg *config.UIConfig) error {
	s := sm.settings

	var ease *utils.Ease
	if s.EaseOverride != "" {
		parsed, err := utils.ParseEase(s.EaseOverride)
		if err != nil {
			return fmt.Errorf("ease override: %w", err)
		}
		ease = &parsed
	}

	for i := range cfg.Panels {
		panel := &cfg.Panels[i]
		if s.MarginReference != "" && (s.MarginReference == "screen" || panel.Container != nil) {
			panel.MarginReference = s.MarginReference
		}
		if s.Reposition != nil {
			panel.Reposition = *s.Reposition
		}

		for j := range panel.Rows {
			row := &panel.Rows[j]
			settings := config.DefaultEaseSettings()
			if row.Ease != nil {
				settings = *row.Ease
			}
			if ease != nil {
				settings.Function = *ease
			}
			if s.DurationOverride > 0 {
				settings.Duration = s.DurationOverride
			}
			if err := settings.Validate(); err != nil {
				return fmt.Errorf("panel %d row %d: %w", i, j, err)
			}
			row.Ease = &settings
		}
	}
	return nil
}
