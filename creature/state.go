package creature

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/dino-pet/asset"
	"github.com/lixenwraith/dino-pet/constants"
)

// Facing is the creature sprite's horizontal orientation.
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

// Mode is the creature's observable behavior state.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeMoving
	ModeBouncing
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeMoving:
		return "moving"
	case ModeBouncing:
		return "bouncing"
	default:
		return "unknown"
	}
}

// cursor tracks one part's animation playback position.
type cursor struct {
	index   int
	elapsed float64 // seconds accumulated in the current frame
}

// State is the mutable runtime state of one creature. The simulation
// loop is its only mutator and the compositor its only reader, invoked
// strictly sequentially per tick, so no locking is needed. Hatching a
// new creature replaces the whole (Model, State) pair between ticks.
type State struct {
	model *asset.Model

	x, y   float64
	vx, vy float64
	facing Facing
	scale  float64

	moving  bool
	targetX float64
	targetY float64

	variants map[string]string  // part -> active variant name
	cursors  map[string]*cursor // part -> animation cursor

	hunger      int
	hungerClock float64 // seconds accumulated toward the next decay point

	bounceRemaining float64

	canvasW, canvasH float64

	rng *rand.Rand
}

// New hatches a creature for the given model, centered on the canvas.
// Each part starts on its first variant in sorted name order and frame 0.
func New(model *asset.Model, canvasW, canvasH int) *State {
	s := &State{
		model:    model,
		x:        float64(canvasW) / 2,
		y:        float64(canvasH) / 2,
		scale:    1.0,
		variants: make(map[string]string),
		cursors:  make(map[string]*cursor),
		hunger:   constants.HungerInitial,
		canvasW:  float64(canvasW),
		canvasH:  float64(canvasH),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, partName := range model.RenderOrder() {
		part, err := model.Part(partName)
		if err != nil {
			continue
		}
		names := part.VariantNames()
		if len(names) == 0 {
			continue
		}
		s.variants[partName] = names[0]
		s.cursors[partName] = &cursor{}
	}
	return s
}

// ===== COMMANDS =====
// Applied between ticks via the command queue, at most once per event.

// Feed raises hunger by FeedAmount, clamped to HungerMax, and starts the
// bounce perturbation. The bounce is independent of movement state.
func (s *State) Feed() {
	s.hunger += constants.FeedAmount
	if s.hunger > constants.HungerMax {
		s.hunger = constants.HungerMax
	}
	s.bounceRemaining = constants.BounceSeconds
}

// Play picks a random target inside canvas bounds and walks toward it.
// This is the only source of randomness in the whole pipeline.
func (s *State) Play() {
	s.MoveTo(s.randomCoord(s.canvasW), s.randomCoord(s.canvasH))
}

// MoveTo aims the creature at a target position at walk speed.
func (s *State) MoveTo(x, y float64) {
	s.targetX = x
	s.targetY = y
	s.moving = true
}

// SetVariant switches a part's active variant and resets its animation
// cursor to frame 0. An unknown part or variant is a strict no-op; the
// caller validates, this never destroys current state on a miss.
func (s *State) SetVariant(partName, variantName string) {
	part, err := s.model.Part(partName)
	if err != nil {
		return
	}
	if _, err := part.Variant(variantName); err != nil {
		return
	}
	s.variants[partName] = variantName
	if cur, ok := s.cursors[partName]; ok {
		cur.index = 0
		cur.elapsed = 0
	} else {
		s.cursors[partName] = &cursor{}
	}
}

// SetScale sets the render scale factor applied to every frame.
func (s *State) SetScale(factor float64) {
	if factor > 0 {
		s.scale = factor
	}
}

// randomCoord returns a coordinate within [PlayMargin, extent-PlayMargin],
// degrading to the full extent on small canvases.
func (s *State) randomCoord(extent float64) float64 {
	lo, hi := float64(constants.PlayMargin), extent-constants.PlayMargin
	if hi <= lo {
		lo, hi = 0, extent
	}
	if hi <= lo {
		return extent / 2
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// ===== SIMULATION STEP =====

// Step advances the creature by dt elapsed wall-clock seconds: movement
// integration, animation cursors, facing, hunger decay, bounce timer.
// It never fails; missing per-part data only skips that part.
func (s *State) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > constants.MaxStepSeconds {
		dt = constants.MaxStepSeconds
	}

	if s.moving {
		dx := s.targetX - s.x
		dy := s.targetY - s.y
		dist := math.Hypot(dx, dy)
		if dist < constants.ArriveEpsilon {
			s.vx, s.vy = 0, 0
			s.moving = false
		} else {
			s.vx = dx / dist * constants.WalkSpeed
			s.vy = dy / dist * constants.WalkSpeed
			s.x += s.vx * dt
			s.y += s.vy * dt
			s.clampToCanvas()
			s.advanceCursors(dt)
		}
	}

	// Zero horizontal velocity retains the prior facing
	if s.vx > 0 {
		s.facing = FacingRight
	} else if s.vx < 0 {
		s.facing = FacingLeft
	}

	// Hunger decays one point per interval and touches nothing else
	s.hungerClock += dt
	for s.hungerClock >= constants.HungerDecaySeconds {
		s.hungerClock -= constants.HungerDecaySeconds
		if s.hunger > constants.HungerMin {
			s.hunger--
		}
	}

	if s.bounceRemaining > 0 {
		s.bounceRemaining -= dt
		if s.bounceRemaining < 0 {
			s.bounceRemaining = 0
		}
	}
}

// advanceCursors moves each part's animation forward by dt. A frame
// advances every FrameSeconds, wrapping modulo the variant's frame count.
func (s *State) advanceCursors(dt float64) {
	for partName, cur := range s.cursors {
		part, err := s.model.Part(partName)
		if err != nil {
			continue
		}
		variant, err := part.Variant(s.variants[partName])
		if err != nil {
			continue
		}
		n := variant.FrameCount()
		if n <= 1 {
			continue
		}
		duration := variant.FrameSeconds
		if duration <= 0 {
			duration = constants.DefaultFrameSeconds
		}
		cur.elapsed += dt
		for cur.elapsed >= duration {
			cur.elapsed -= duration
			cur.index = (cur.index + 1) % n
		}
	}
}

func (s *State) clampToCanvas() {
	s.x = math.Max(0, math.Min(s.canvasW, s.x))
	s.y = math.Max(0, math.Min(s.canvasH, s.y))
}

// SetCanvasSize re-fits the creature to a resized canvas.
func (s *State) SetCanvasSize(w, h int) {
	s.canvasW = float64(w)
	s.canvasH = float64(h)
	s.clampToCanvas()
	s.targetX = math.Max(0, math.Min(s.canvasW, s.targetX))
	s.targetY = math.Max(0, math.Min(s.canvasH, s.targetY))
}

// ===== READ-ONLY VIEW =====

// Position returns the creature's logical canvas position.
func (s *State) Position() (x, y float64) {
	return s.x, s.y
}

// RenderPosition returns the anchor position for compositing: the
// logical position lifted by the bounce offset curve while bouncing.
func (s *State) RenderPosition() (x, y float64) {
	return s.x, s.y - s.bounceOffset()
}

// bounceOffset is a fixed half-sine lift over BounceSeconds, not a
// physics solve.
func (s *State) bounceOffset() float64 {
	if s.bounceRemaining <= 0 {
		return 0
	}
	progress := 1 - s.bounceRemaining/constants.BounceSeconds
	return constants.BounceAmplitude * math.Sin(math.Pi*progress)
}

// Facing returns the current horizontal orientation.
func (s *State) Facing() Facing {
	return s.facing
}

// Scale returns the render scale factor.
func (s *State) Scale() float64 {
	return s.scale
}

// Mode reports the observable behavior state. Bouncing is a transient
// overlay that masks idle/moving for its duration.
func (s *State) Mode() Mode {
	switch {
	case s.bounceRemaining > 0:
		return ModeBouncing
	case s.moving:
		return ModeMoving
	default:
		return ModeIdle
	}
}

// Hunger returns the current hunger value in [HungerMin, HungerMax].
func (s *State) Hunger() int {
	return s.hunger
}

// ActiveVariant returns the active variant name for a part, empty when
// the part is unknown.
func (s *State) ActiveVariant(partName string) string {
	return s.variants[partName]
}

// FrameIndex returns the current animation frame index for a part.
func (s *State) FrameIndex(partName string) int {
	if cur, ok := s.cursors[partName]; ok {
		return cur.index
	}
	return 0
}
