package main

import (
	"log"
	"os"

	"github.com/gonewx/uikit/internal/cli"
	"github.com/gonewx/uikit/pkg/app"
	"github.com/gonewx/uikit/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	if err := cli.NewRootCommand(run).Execute(); err != nil {
		os.Exit(1)
	}
}

// run 创建应用并进入 Ebitengine 主循环
func run(opts cli.Options) error {
	application, err := app.NewApp(app.Config{
		Verbose:         opts.Verbose,
		LayoutPath:      opts.LayoutPath,
		Ease:            opts.Ease,
		Duration:        opts.Duration,
		MarginReference: opts.MarginReference,
		Reposition:      opts.Reposition,
	})
	if err != nil {
		return err
	}

	width, height := application.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("UIKit - Tween Panels")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(application); err != nil {
		log.Printf("[Main] Game loop exited with error: %v", err)
		return err
	}
	return nil
}
