package constants

import "time"

// Simulation Loop Timing
const (
	// TickInterval is the simulation/render cadence (~60 ticks per second)
	TickInterval = 16 * time.Millisecond

	// MaxStepSeconds caps a single simulation step to absorb stalls
	// (suspend, terminal resize) without teleporting the creature
	MaxStepSeconds = 0.1
)

// Animation
const (
	// DefaultFrameSeconds is the display duration of one animation frame
	// when a variant does not declare its own
	DefaultFrameSeconds = 0.1
)

// Movement
const (
	// WalkSpeed is the creature travel speed in pixels per second
	WalkSpeed = 50.0

	// ArriveEpsilon is the distance at which a movement target counts as reached
	ArriveEpsilon = 5.0

	// PlayMargin keeps random play targets this far from the canvas edges
	PlayMargin = 100
)

// Hunger
const (
	HungerInitial = 50
	HungerMax     = 100
	HungerMin     = 0

	// FeedAmount is the hunger restored by a single feed command
	FeedAmount = 20

	// HungerDecaySeconds is the interval between single-point hunger drops
	HungerDecaySeconds = 5.0
)

// Feed Bounce Perturbation
const (
	// BounceSeconds is the duration of the fixed-shape bounce offset curve
	BounceSeconds = 0.5

	// BounceAmplitude is the vertical lift in pixels at the bounce peak
	BounceAmplitude = 12.0
)
