// Package app 提供面板展示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/uikit/pkg/config"
	"github.com/gonewx/uikit/pkg/embedded"
	"github.com/gonewx/uikit/pkg/game"
	"github.com/gonewx/uikit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "uikit_showcase"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LayoutPath 布局文件路径，为空则使用内置 data/ui.yaml
	LayoutPath string

	// 以下覆盖项优先于已保存的偏好（不会被保存）
	Ease            string  // 缓动名称
	Duration        float64 // 时长（秒），0 表示不覆盖
	MarginReference string  // "screen" / "parent"
	Reposition      *bool   // nil 表示不覆盖
}

// App 是展示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	showcase                 *game.Showcase
	renderer                 *RenderSystem
	settings                 *game.SettingsManager
	background               color.Color
	screenWidth              int
	screenHeight             int
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化展示程序
//
// 使用内置布局时，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	layoutConfig, err := loadLayout(cfg.LayoutPath)
	if err != nil {
		return nil, err
	}

	settings, err := game.NewSettingsManager(openStorage())
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}
	if err := applyOverrides(settings, cfg); err != nil {
		return nil, err
	}
	if err := settings.ApplyTo(layoutConfig); err != nil {
		return nil, fmt.Errorf("偏好应用失败: %w", err)
	}

	showcase, err := game.NewShowcase(layoutConfig, settings, &ebitenPointerInput{})
	if err != nil {
		return nil, fmt.Errorf("面板创建失败: %w", err)
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	bg := layoutConfig.Background
	if bg.A == 0 {
		bg = utils.ColorBlack
	}

	return &App{
		showcase:     showcase,
		renderer:     NewRenderSystem(showcase.EntityManager()),
		settings:     settings,
		background:   bg.ToRGBA(),
		screenWidth:  layoutConfig.Screen.Width,
		screenHeight: layoutConfig.Screen.Height,
		verbose:      cfg.Verbose,
	}, nil
}

// loadLayout 读取布局文件，路径为空时使用内置布局
func loadLayout(path string) (*config.UIConfig, error) {
	if path != "" {
		log.Printf("[App] Loading layout from %s", path)
		return config.LoadUIConfig(path)
	}

	data, err := embedded.DefaultLayout()
	if err != nil {
		return nil, fmt.Errorf("内置布局读取失败: %w", err)
	}
	return config.ParseUIConfig(data)
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级为仅内存设置）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir unavailable: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// applyOverrides 把命令行覆盖项写入内存中的设置
func applyOverrides(settings *game.SettingsManager, cfg Config) error {
	if cfg.Ease != "" {
		if err := settings.SetEaseOverride(cfg.Ease); err != nil {
			return fmt.Errorf("--ease: %w", err)
		}
	}
	if cfg.Duration != 0 {
		if err := settings.SetDurationOverride(cfg.Duration); err != nil {
			return fmt.Errorf("--duration: %w", err)
		}
	}
	if cfg.MarginReference != "" {
		if err := settings.SetMarginReference(cfg.MarginReference); err != nil {
			return fmt.Errorf("--margin-reference: %w", err)
		}
	}
	if cfg.Reposition != nil {
		settings.SetReposition(*cfg.Reposition)
	}
	return nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.screenWidth, a.screenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	a.handleKeys()

	deltaTime := 1.0 / 60.0
	a.showcase.Update(deltaTime)
	return nil
}

// rowKeys 数字键 1~9 对应第 0~8 行
var rowKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// handleKeys 键盘快捷键
//
//	Space 切换所有行，1~9 切换单行，M 切换边距参照，R 切换自动移回，F11 全屏
func (a *App) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.showcase.ToggleAll()
	}

	for i, key := range rowKeys {
		if inpututil.IsKeyJustPressed(key) {
			a.showcase.ToggleRow(i)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if err := a.showcase.FlipMarginReference(); err != nil {
			log.Printf("[App] Warning: failed to save margin reference: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := a.showcase.FlipReposition(); err != nil {
			log.Printf("[App] Warning: failed to save reposition: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(ebiten.IsFullscreen())
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save fullscreen: %v", err)
		}
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background)
	a.renderer.Draw(screen)

	if !utils.IsMobile() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"Space: toggle all  1-9: toggle row  Wheel: scroll  M: margins=%s  R: reposition=%v  F11: fullscreen",
			a.showcase.MarginReference(), a.showcase.Reposition()), 8, 8)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

// ScreenSize 返回逻辑屏幕尺寸
func (a *App) ScreenSize() (int, int) {
	return a.screenWidth, a.screenHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
