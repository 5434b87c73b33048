package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestFakeKeyInput(t *testing.T) {
	in := NewFakeKeyInput()
	var _ KeyInput = in

	in.Hold(ebiten.KeyArrowLeft, ebiten.KeyArrowUp)
	in.Tap(ebiten.KeySpace)

	if !in.IsPressed(ebiten.KeyArrowLeft) || !in.IsPressed(ebiten.KeyArrowUp) {
		t.Error("Held keys should report pressed")
	}
	if !in.IsJustPressed(ebiten.KeySpace) {
		t.Error("Tapped key should report just pressed")
	}

	in.EndFrame()
	in.Release(ebiten.KeyArrowLeft)

	if in.IsJustPressed(ebiten.KeySpace) {
		t.Error("Tap should only last one frame")
	}
	if in.IsPressed(ebiten.KeyArrowLeft) {
		t.Error("Released key should not report pressed")
	}
	if !in.IsPressed(ebiten.KeyArrowUp) {
		t.Error("Other held keys should stay pressed")
	}
}
