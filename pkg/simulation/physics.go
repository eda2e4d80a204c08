package simulation

import (
	"github.com/neondrift/racesim/pkg/simulation/mathf"
)

// stepCar integrates one control sample into the car state over dt seconds.
// Order matters: longitudinal, boost, drift/steer, then world integration.
func stepCar(car *Car, in Input, dt float32, obs Observer, carIdx int) {
	in = clampInput(in)

	// brake counteracts throttle; deep brake reverses at double rate
	accelInput := in.Throttle - in.Brake*brakeFactor
	switch {
	case accelInput > 0.01:
		car.VelocityForward += car.Acceleration * accelInput * dt
	case accelInput < -0.01:
		car.VelocityForward += car.Acceleration * accelInput * reverseAccelMult * dt
	default:
		car.VelocityForward *= coastFriction
	}

	// boost: full meter cost up front, fixed tick window
	if in.Boost && car.BoostMeter >= BoostCost && !car.Boosting {
		car.Boosting = true
		car.BoostTimer = BoostDuration
		car.BoostMeter -= BoostCost
		emit(obs, carIdx, EventBoostStart)
	}
	if car.BoostTimer > 0 {
		car.BoostTimer--
		if car.BoostTimer == 0 {
			car.Boosting = false
		}
	}

	maxSpeed := car.MaxSpeed
	if car.Boosting {
		maxSpeed *= BoostMultiplier
	}
	forwardCap := maxSpeed
	if in.SpeedLimit > 0 && car.MaxSpeed*in.SpeedLimit < forwardCap {
		forwardCap = car.MaxSpeed * in.SpeedLimit
	}
	car.VelocityForward = mathf.Clamp(car.VelocityForward,
		-maxSpeed*reverseSpeedLimit, forwardCap)

	speedFactor := mathf.Min(mathf.Abs(car.VelocityForward)/car.MaxSpeed, 1.0)

	// drift while braking hard with steer held past the threshold at speed
	if in.Brake > DriftThreshold && mathf.Abs(in.Steer) > DriftThreshold &&
		speedFactor > driftSpeedGate {
		if !car.Drifting {
			car.Drifting = true
			emit(obs, carIdx, EventDriftStart)
		}
		driftPower := in.Steer * car.DriftFactor
		car.VelocityLateral += driftPower * driftLateralRate * dt
		car.AngularVelocity = driftPower * driftYawRate
		car.VelocityForward *= driftSpeedBleed
		car.BoostMeter = mathf.Min(car.BoostMeter+driftBoostRegen, 1.0)
	} else {
		car.Drifting = false
		car.AngularVelocity = in.Steer * car.Handling * steerYawRate * speedFactor
		car.VelocityLateral *= lateralDecay
	}

	car.RotationY = mathf.NormalizeDeg(car.RotationY + car.AngularVelocity*dt)

	// forward is (-sin, -cos) at heading 0, right is (cos, -sin)
	sinR := mathf.SinDeg(car.RotationY)
	cosR := mathf.CosDeg(car.RotationY)
	forwardX, forwardZ := -sinR, -cosR
	rightX, rightZ := cosR, -sinR

	car.X += (forwardX*car.VelocityForward + rightX*car.VelocityLateral) * dt
	car.Z += (forwardZ*car.VelocityForward + rightZ*car.VelocityLateral) * dt

	// wall pushback accumulated by the collision pass, halved every tick
	car.X += car.PushbackX
	car.Z += car.PushbackZ
	car.PushbackX *= pushbackDecay
	car.PushbackZ *= pushbackDecay
}

// Speed returns the car's planar speed.
func (c *Car) Speed() float32 {
	return mathf.Hypot(c.VelocityForward, c.VelocityLateral)
}
