//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	make prepare-mobile && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.uikit -o build/android/uikit.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	make prepare-mobile && ebitenmobile bind -target ios -tags mobile -o build/ios/UIKit.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/uikit/pkg/app"
	"github.com/gonewx/uikit/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 移动端没有命令行参数，使用内置布局和已保存的偏好
	showcase, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("展示程序初始化失败: %v", err)
	}

	mobile.SetGame(showcase)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
