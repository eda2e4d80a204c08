package simulation

import (
	"github.com/neondrift/racesim/pkg/simulation/mathf"
)

const (
	cameraLerp         float32 = 0.1
	cameraDistance     float32 = 8.0
	cameraHeight       float32 = 3.0
	cameraLookAhead    float32 = 5.0
	cameraTargetHeight float32 = 1.0
	shakeDecay         float32 = 0.9
	shakeFloor         float32 = 0.01
	wallShake          float32 = 0.3
)

// Camera is the per-player chase view. It lives outside the determinism
// contract: shake draws from the host RNG and nothing in the tick reads
// camera state back.
type Camera struct {
	PosX, PosY, PosZ          float32
	TargetX, TargetY, TargetZ float32

	ShakeIntensity float32
	ShakeOffsetX   float32
	ShakeOffsetY   float32
}

// NewCamera starts behind and above the grid.
func NewCamera() Camera {
	return Camera{PosY: 5.0, PosZ: -10.0}
}

// Follow eases the camera toward a chase position behind the car.
func (c *Camera) Follow(car *Car) {
	sinR := mathf.SinDeg(car.RotationY)
	cosR := mathf.CosDeg(car.RotationY)

	wantPosX := car.X - sinR*cameraDistance
	wantPosY := car.Y + cameraHeight
	wantPosZ := car.Z - cosR*cameraDistance

	wantTargetX := car.X + sinR*cameraLookAhead
	wantTargetY := car.Y + cameraTargetHeight
	wantTargetZ := car.Z + cosR*cameraLookAhead

	c.PosX += (wantPosX - c.PosX) * cameraLerp
	c.PosY += (wantPosY - c.PosY) * cameraLerp
	c.PosZ += (wantPosZ - c.PosZ) * cameraLerp

	c.TargetX += (wantTargetX - c.TargetX) * cameraLerp
	c.TargetY += (wantTargetY - c.TargetY) * cameraLerp
	c.TargetZ += (wantTargetZ - c.TargetZ) * cameraLerp
}

// AddShake bumps the shake amplitude, saturating at 1.
func (c *Camera) AddShake(intensity float32) {
	c.ShakeIntensity = mathf.Min(c.ShakeIntensity+intensity, 1.0)
}

// UpdateShake jitters the view offsets from one random draw and decays
// the amplitude.
func (c *Camera) UpdateShake(randVal uint32) {
	if c.ShakeIntensity > shakeFloor {
		rx := float32(randVal&0xFF)/128.0 - 1.0
		ry := float32((randVal>>8)&0xFF)/128.0 - 1.0
		c.ShakeOffsetX = rx * c.ShakeIntensity * 0.3
		c.ShakeOffsetY = ry * c.ShakeIntensity * 0.2
		c.ShakeIntensity *= shakeDecay
	} else {
		c.ShakeIntensity = 0
		c.ShakeOffsetX = 0
		c.ShakeOffsetY = 0
	}
}
