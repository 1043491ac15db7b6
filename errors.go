package retro3d

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Update for caller-triggerable contract
// violations in externally-owned world data (§7).
var (
	// ErrInvalidSector is returned when a Sector.ID does not match its
	// slice index, or a SectorIndex names a sector outside the slice.
	ErrInvalidSector = errors.New("sector index out of range or misordered")

	// ErrInvalidSprite is returned when a Sprite.SectorIndex names a
	// sector outside the given sectors slice.
	ErrInvalidSprite = errors.New("sprite references an invalid sector")

	// ErrViewportTooSmall is returned by SetViewport for non-positive
	// dimensions.
	ErrViewportTooSmall = errors.New("viewport dimensions must be positive")
)

// debugAssertions gates programmer-error checks that are fatal
// invariant violations rather than recoverable conditions (§7, §10).
// It is a plain constant set to true, with no build-tag variant, so the
// checks are always compiled in.
const debugAssertions = true

// assertf panics with a formatted message if cond is false and
// debugAssertions is enabled. Used for contract violations that the
// caller's own bookkeeping should have already prevented (e.g. an
// out-of-range framebuffer index reached after clipping should have
// ruled it out).
func assertf(cond bool, format string, args ...any) {
	if !debugAssertions || cond {
		return
	}
	panic(fmt.Sprintf(format, args...))
}
