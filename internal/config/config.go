// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	TileCount           = 40
	TileDimension       = 8.0
	TileBorderThickness = 1.0

	TurretPosition      = 350.0
	TurretHeadThickness = 2.5
	TurretHeadLength    = 75.0
	TurretRotationSpeed = 1.0

	BulletTextFontSizeAspect = 0.5
	BulletRadiusFactor       = 5.0
	BulletFireForce          = 100.0
	BulletMassFactor         = 1.0

	AutoMultiplyInterval = 1.0 // seconds between automatic Multiply triggers
)

// Z-index. Children inherit the parent z, so a negative local z puts the
// head and platform behind their turret.
const (
	TileZ           = 10.0
	BulletBallZ     = -1.0
	BulletTextZ     = 20.0
	TurretHeadZ     = -1.0
	TurretPlatformZ = -1.0
)

var (
	BackgroundColor   = color.RGBA{245, 245, 240, 255}
	TileBorderColor   = color.RGBA{0, 0, 0, 255}
	TurretHeadColor   = color.RGBA{64, 64, 64, 255}
	BulletTextColor   = color.RGBA{0, 0, 0, 255}
	ParticipantColors = [4]color.RGBA{
		{220, 60, 60, 255},  // A
		{50, 100, 255, 255}, // B
		{50, 190, 80, 255},  // C
		{255, 200, 0, 255},  // D
	}
	ParticipantNames = [4]string{"Red", "Blue", "Green", "Yellow"}
)
