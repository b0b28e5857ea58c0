//go:build !mobile

// Package mobile 在桌面构建中只保留空壳，真正的 ebitenmobile 入口见 mobile.go（-tags mobile）
package mobile

// Dummy 与移动端构建导出相同的符号，使 ./... 在两种构建下都能编译
func Dummy() {}
