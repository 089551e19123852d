package parameter

// Default world dimensions
const (
	DefaultWorldWidth  = 1024
	DefaultWorldHeight = 640
)

// Level geometry (offsets relative to world edges or center)
const (
	// IndestructibleHealth marks ground and walls, no damage path applies to it
	IndestructibleHealth = 999

	GroundHeight = 120
	TunnelWidth  = 60
	// TunnelGap is the distance from the tunnel bottom to the world bottom
	TunnelGap     = 180
	TopWallHeight = 40

	// CenterOffsetY shifts the level center down from the world midpoint
	CenterOffsetY = 20

	PlatformHalfWidth = 160
	PlatformWidth     = 320
	PlatformHeight    = 120
	PlatformHealth    = 200

	LedgeWidth   = 60
	LedgeHeight  = 40
	LedgeHealth  = 100
	LedgeOffsetX = 220
	LedgeOffsetY = 40
)

// Playable bounds for monsters
const (
	BoundsMarginX = 10
	BoundsTop     = 40
	BoundsBottom  = 10
)
