package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dino-pet/asset"
	"github.com/lixenwraith/dino-pet/audio"
	"github.com/lixenwraith/dino-pet/constants"
	"github.com/lixenwraith/dino-pet/creature"
	"github.com/lixenwraith/dino-pet/display"
	"github.com/lixenwraith/dino-pet/render"
)

// App owns the screen, the current (model, state) pair, and the command
// queue. Hatching replaces the pair between ticks; the old creature is
// never partially rendered after replacement begins.
type App struct {
	screen tcell.Screen
	sound  *audio.Player

	model *asset.Model
	state *creature.State
	queue *creature.Queue

	canvas     *render.Canvas
	background render.RGBA

	assetPath string
	addPath   string
	scale     float64

	partNames []string
	partIndex int // part selected for variant cycling

	width, height int
	lastTick      time.Time
}

// NewApp initializes the terminal and hatches the first creature.
func NewApp(assetPath, addPath string, scale float64) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &App{
		screen:     screen,
		sound:      audio.NewPlayer(),
		queue:      creature.NewQueue(),
		background: render.SkyBlue,
		assetPath:  assetPath,
		addPath:    addPath,
		scale:      scale,
	}
	a.width, a.height = screen.Size()
	a.canvas = render.NewCanvas(a.canvasSize())

	if err := a.hatch(); err != nil {
		screen.Fini()
		return nil, err
	}
	return a, nil
}

// canvasSize maps the terminal game area (everything between the status
// and help rows) to pixel dimensions under half-block rendering.
func (a *App) canvasSize() (int, int) {
	return display.CanvasSize(a.width, a.height-2)
}

// hatch loads the asset path and atomically swaps in a fresh (model,
// state) pair. Load-time rejections surface to the caller; nothing
// partially constructed ever reaches the tick loop.
func (a *App) hatch() error {
	model, err := asset.Load(a.assetPath)
	if err != nil {
		return err
	}
	if a.addPath != "" {
		if err := asset.AddParts(model, a.addPath); err != nil {
			return err
		}
	}

	state := creature.New(model, a.canvas.Width, a.canvas.Height)
	state.SetScale(a.scale)

	a.model = model
	a.state = state
	a.partNames = model.RenderOrder()
	a.partIndex = 0
	a.lastTick = time.Now()

	log.Printf("hatched %q: %d parts", model.Name, model.PartCount())
	a.sound.Hatch()
	return nil
}

// selectedPart returns the part currently targeted by variant cycling.
func (a *App) selectedPart() string {
	if len(a.partNames) == 0 {
		return ""
	}
	return a.partNames[a.partIndex%len(a.partNames)]
}

// cycleVariant enqueues a switch to the selected part's next variant in
// sorted order. Validation happens here, against the model; the state
// treats an unknown variant as a no-op either way.
func (a *App) cycleVariant() {
	partName := a.selectedPart()
	if partName == "" {
		return
	}
	part, err := a.model.Part(partName)
	if err != nil {
		return
	}
	names := part.VariantNames()
	if len(names) < 2 {
		return
	}
	current := a.state.ActiveVariant(partName)
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	a.queue.SetVariant(partName, next)
}

func (a *App) handleResize() {
	newWidth, newHeight := a.screen.Size()
	if newWidth == a.width && newHeight == a.height {
		return
	}
	a.width = newWidth
	a.height = newHeight
	a.canvas.Resize(a.canvasSize())
	a.state.SetCanvasSize(a.canvas.Width, a.canvas.Height)
	a.screen.Sync()
}

// handleInput reacts to one terminal event, returning false to quit.
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune && ev.Key() != tcell.KeyTab {
			return true
		}
		if ev.Key() == tcell.KeyTab {
			if len(a.partNames) > 0 {
				a.partIndex = (a.partIndex + 1) % len(a.partNames)
			}
			return true
		}
		switch ev.Rune() {
		case 'f':
			a.queue.Feed()
			a.sound.Feed()
		case 'p':
			a.queue.Play()
			a.sound.Play()
		case 'v':
			a.cycleVariant()
		case 'h':
			if err := a.hatch(); err != nil {
				log.Printf("hatch failed: %v", err)
			}
		case 'q':
			return false
		}

	case *tcell.EventResize:
		a.handleResize()
	}
	return true
}

// tick runs one loop iteration: drain commands, advance the simulation
// by elapsed wall-clock time, composite, present.
func (a *App) tick() {
	now := time.Now()
	dt := now.Sub(a.lastTick).Seconds()
	a.lastTick = now

	a.queue.Drain(a.state)
	a.state.Step(dt)

	render.Compose(a.canvas, a.background, a.model, a.state)
	display.DrawCanvas(a.screen, a.canvas, 0, 1)

	partName := a.selectedPart()
	display.DrawStatusBar(a.screen, 0, display.Status{
		Name:    a.model.Name,
		Hunger:  a.state.Hunger(),
		Mode:    a.state.Mode().String(),
		Part:    partName,
		Variant: a.state.ActiveVariant(partName),
	})
	display.DrawHelpBar(a.screen, a.height-1)

	a.screen.Show()
}

func (a *App) run() {
	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.tick()
		}
	}
}

func (a *App) cleanup() {
	a.sound.Close()
	a.screen.Fini()
}

func main() {
	assetPath := flag.String("asset", "", "PNG file or directory describing the creature")
	addPath := flag.String("add", "", "optional extra parts merged in after hatching")
	scale := flag.Float64("scale", 1.0, "nearest-neighbor render scale factor")
	debug := flag.Bool("debug", false, "log diagnostics to dino-pet.log")
	flag.Parse()

	if *assetPath == "" {
		fmt.Fprintln(os.Stderr, "usage: dino-pet -asset <png-or-directory> [-add <path>] [-scale <factor>]")
		os.Exit(2)
	}

	// The terminal belongs to tcell; logs go to a file or nowhere
	if *debug {
		f, err := os.Create("dino-pet.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	app, err := NewApp(*assetPath, *addPath, *scale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hatch: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
