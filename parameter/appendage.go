package parameter

import "time"

// Hands
const (
	// HandSideOffset is the lateral offset of each hand from the eye
	HandSideOffset = 0.7

	// HandDownOffset is the vertical offset of both hands below the eye
	HandDownOffset = -0.4

	// HandForwardOffset is the distance of both hands in front of the eye
	HandForwardOffset = 1.0

	// HandCount is the number of independent appendages
	HandCount = 2
)

// Projectiles
const (
	// DefaultProjectileSpeed is the launch speed before any weapon is equipped
	DefaultProjectileSpeed = 30.0

	// DefaultProjectileDamage is the weapon damage stat before any weapon is equipped
	DefaultProjectileDamage = 1

	// ProjectileLifetime is the age after which a projectile is destroyed
	ProjectileLifetime = 1 * time.Second

	// ShotRange bounds the instant aim-ray hit test
	ShotRange = 100.0
)

// Grapple
const (
	// GrappleRange is the farthest static surface a hand can attach to
	GrappleRange = 30.0

	// MaxRopeLength caps the rope length chosen at attach time
	MaxRopeLength = 20.0

	// RopeDamping multiplies player velocity when the rope pulls back
	RopeDamping = 0.8

	// SwingForce scales the tangential swing force while attached
	SwingForce = 2.0

	// ReleaseImpulse scales the impulse applied on release
	ReleaseImpulse = 30.0
)
