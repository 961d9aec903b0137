//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// prepare-mobile 会把根目录的 data/ui.yaml 复制到此目录：
//
//	make prepare-mobile
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/ui.yaml
var dataFS embed.FS
