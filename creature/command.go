package creature

// Command is a discrete external request applied to the creature between
// ticks. Commands come from the presentation layer (key presses) and are
// never applied mid-step.
type Command interface {
	apply(*State)
}

type feedCommand struct{}

func (feedCommand) apply(s *State) { s.Feed() }

type playCommand struct{}

func (playCommand) apply(s *State) { s.Play() }

type setVariantCommand struct {
	part    string
	variant string
}

func (c setVariantCommand) apply(s *State) { s.SetVariant(c.part, c.variant) }

// Queue buffers commands from the UI until the simulation drains them.
// Draining once per tick preserves at-most-one-application per source
// event and keeps the step/render sequence strictly single-writer.
type Queue struct {
	ch chan Command
}

// NewQueue creates a command queue.
func NewQueue() *Queue {
	return &Queue{ch: make(chan Command, 64)}
}

// Feed enqueues a feed command.
func (q *Queue) Feed() {
	q.push(feedCommand{})
}

// Play enqueues a play command.
func (q *Queue) Play() {
	q.push(playCommand{})
}

// SetVariant enqueues a variant switch for one part.
func (q *Queue) SetVariant(part, variant string) {
	q.push(setVariantCommand{part: part, variant: variant})
}

// push drops the command when the queue is saturated; the input goroutine
// must never block on the simulation.
func (q *Queue) push(c Command) {
	select {
	case q.ch <- c:
	default:
	}
}

// Drain applies all pending commands to the state.
func (q *Queue) Drain(s *State) {
	for {
		select {
		case c := <-q.ch:
			c.apply(s)
		default:
			return
		}
	}
}
