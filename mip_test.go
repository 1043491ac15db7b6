package retro3d

import (
	"math"
	"testing"
)

func TestNormalizeDepthEndpoints(t *testing.T) {
	if got := normalizeDepth(Near); math.Abs(got) > 1e-9 {
		t.Errorf("normalizeDepth(Near) = %v, want 0", got)
	}
	if got := normalizeDepth(Far); math.Abs(got-1) > 1e-9 {
		t.Errorf("normalizeDepth(Far) = %v, want 1", got)
	}
}

func TestPickMipLevelClampsToRange(t *testing.T) {
	if got := pickMipLevel(0, 0); got != 0 {
		t.Errorf("pickMipLevel(0,0) = %d, want 0", got)
	}
	if got := pickMipLevel(1, 0); got != MipLevels-1 {
		t.Errorf("pickMipLevel(1,0) = %d, want %d", got, MipLevels-1)
	}
	if got := pickMipLevel(10, 10); got != MipLevels-1 {
		t.Errorf("pickMipLevel(10,10) = %d, want clamped to %d", got, MipLevels-1)
	}
}

func TestFocalDimensionsWiderFovGivesSmallerFocal(t *testing.T) {
	fw1, fh1 := focalDimensions(100, 100, math.Pi/2, math.Pi/2)
	fw2, fh2 := focalDimensions(100, 100, math.Pi, math.Pi)
	if fw2 >= fw1 || fh2 >= fh1 {
		t.Errorf("wider FOV should shrink focal length: fw1=%v fw2=%v fh1=%v fh2=%v", fw1, fw2, fh1, fh2)
	}
}
