//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 桌面端默认不是移动模式，可通过环境变量模拟
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("UIKIT_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}

	t.Setenv("UIKIT_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when UIKIT_MOBILE_EMULATE=1")
	}
}
