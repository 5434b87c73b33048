// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyInput 键盘状态查询
// 系统和场景只依赖这个接口，测试中用 FakeKeyInput 替代真实键盘
type KeyInput interface {
	// IsPressed 按键当前是否按下
	IsPressed(key ebiten.Key) bool
	// IsJustPressed 按键是否在本帧刚刚按下
	IsJustPressed(key ebiten.Key) bool
}

// KeyboardInput 读取 Ebitengine 的真实键盘状态
type KeyboardInput struct{}

// IsPressed 实现 KeyInput
func (KeyboardInput) IsPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// IsJustPressed 实现 KeyInput
func (KeyboardInput) IsJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// FakeKeyInput 可编程的键盘状态
// Pressed 表示持续按下的键，Just 表示本帧刚按下的键（调用 EndFrame 清空）
type FakeKeyInput struct {
	Pressed map[ebiten.Key]bool
	Just    map[ebiten.Key]bool
}

// NewFakeKeyInput 创建空的键盘状态
func NewFakeKeyInput() *FakeKeyInput {
	return &FakeKeyInput{
		Pressed: make(map[ebiten.Key]bool),
		Just:    make(map[ebiten.Key]bool),
	}
}

// Hold 按住按键
func (f *FakeKeyInput) Hold(keys ...ebiten.Key) {
	for _, k := range keys {
		f.Pressed[k] = true
	}
}

// Release 松开按键
func (f *FakeKeyInput) Release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(f.Pressed, k)
	}
}

// Tap 本帧按下一次
func (f *FakeKeyInput) Tap(key ebiten.Key) {
	f.Just[key] = true
}

// EndFrame 清空单帧按键
func (f *FakeKeyInput) EndFrame() {
	clear(f.Just)
}

// IsPressed 实现 KeyInput
func (f *FakeKeyInput) IsPressed(key ebiten.Key) bool {
	return f.Pressed[key]
}

// IsJustPressed 实现 KeyInput
func (f *FakeKeyInput) IsJustPressed(key ebiten.Key) bool {
	return f.Just[key]
}
