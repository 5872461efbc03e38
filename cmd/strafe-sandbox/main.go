package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/veylan/strafe/audio"
	"github.com/veylan/strafe/event"
	"github.com/veylan/strafe/parameter"
	"github.com/veylan/strafe/physics"
	"github.com/veylan/strafe/sim"
	"github.com/veylan/strafe/vmath"
)

// Arena margin keeps the border row/column free for the frame
const arenaMargin = 1

type app struct {
	sim   *sim.Simulation
	sound *audio.SoundManager
	rng   *rand.Rand

	quit       bool
	muted      bool
	collisions uint64
	lastHit    physics.Contact
	lastHitAt  time.Time
}

func main() {
	// Panic Recovery: restore the terminal before reporting the crash
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nSTRAFE-SANDBOX CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	a := &app{
		sim:   sim.New(),
		sound: audio.NewSoundManager(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// tcell.Screen satisfies the facade's Target contract directly
	if err := a.sim.Initialize(screen); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Simulation init failed: %v\n", err)
		os.Exit(1)
	}

	if err := a.sound.Initialize(); err != nil {
		// Continue without audio; blips are a garnish
		a.muted = true
	}
	defer a.sound.Cleanup()

	a.sim.SubscribeCollisions(func(c physics.Contact) {
		a.collisions++
		a.lastHit = c
		a.lastHitAt = time.Now()
		speed := c.B.Velocity.Sub(c.A.Velocity).Dot(c.Normal)
		a.sound.PlayImpact(speed)
	})

	a.seedArena(screen)
	a.sim.Start()

	// Input goroutine feeds the control queue; the frame loop drains it
	queue := event.NewQueue()
	go pollInput(screen, queue)

	router := event.NewRouter[*app](queue)
	registerControls(router)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	for !a.quit {
		<-ticker.C

		router.DrainQueue(a)
		if a.quit {
			break
		}

		now := time.Now()
		delta := now.Sub(last).Seconds()
		last = now

		a.sim.OnFrame(delta)
		a.reflectAtWalls(screen)
		a.draw(screen)
	}

	a.sim.Stop()
}

// pollInput translates key presses into control events. Runs off the
// frame goroutine, hence the lock-free queue
func pollInput(screen tcell.Screen, queue *event.Queue) {
	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC:
				queue.Push(event.Event{Type: event.TypeQuitRequest, Time: time.Now()})
				return
			case tev.Rune() == ' ':
				queue.Push(event.Event{Type: event.TypeSpawnRequest, Time: time.Now()})
			case tev.Rune() == 'p':
				queue.Push(event.Event{Type: event.TypePauseToggle, Time: time.Now()})
			case tev.Rune() == 'c':
				queue.Push(event.Event{Type: event.TypeClearRequest, Time: time.Now()})
			case tev.Rune() == 'q':
				queue.Push(event.Event{Type: event.TypeQuitRequest, Time: time.Now()})
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// registerControls wires control events to app mutations. Handlers run on
// the frame goroutine during DrainQueue
func registerControls(router *event.Router[*app]) {
	router.Register(event.FuncHandler[*app]{
		Types: []event.Type{event.TypeSpawnRequest},
		Fn: func(a *app, _ event.Event) {
			if target := a.sim.Target(); target != nil {
				w, h := target.Size()
				a.spawnBall(w, h)
			}
		},
	})
	router.Register(event.FuncHandler[*app]{
		Types: []event.Type{event.TypePauseToggle},
		Fn: func(a *app, _ event.Event) {
			if a.sim.Running() {
				a.sim.Pause()
			} else {
				a.sim.Resume()
			}
		},
	})
	router.Register(event.FuncHandler[*app]{
		Types: []event.Type{event.TypeClearRequest},
		Fn:    func(a *app, _ event.Event) { a.sim.Clear() },
	})
	router.Register(event.FuncHandler[*app]{
		Types: []event.Type{event.TypeQuitRequest},
		Fn:    func(a *app, _ event.Event) { a.quit = true },
	})
}

// seedArena places a static obstacle mid-screen and a few moving balls
func (a *app) seedArena(screen tcell.Screen) {
	w, h := screen.Size()

	obstacle := physics.DefaultDescriptor()
	obstacle.Position = vmath.V(float64(w)/2, float64(h)/2)
	obstacle.Shape = physics.Circle(2)
	obstacle.Static = true
	a.sim.AddBody(obstacle)

	for i := 0; i < 6; i++ {
		a.spawnBall(w, h)
	}
}

func (a *app) spawnBall(w, h int) {
	d := physics.DefaultDescriptor()
	d.Position = vmath.V(
		float64(arenaMargin+1)+a.rng.Float64()*float64(w-2*arenaMargin-2),
		float64(arenaMargin+1)+a.rng.Float64()*float64(h-3),
	)
	d.Velocity = vmath.FromAngle(a.rng.Float64()*2*3.14159265, 4+a.rng.Float64()*8)
	d.Restitution = 0.7 + a.rng.Float64()*0.3
	a.sim.AddBody(d)
}

// reflectAtWalls bounces bodies off the arena edges. Boundary handling
// lives in the demo, not the world: the core only knows circle pairs
func (a *app) reflectAtWalls(screen tcell.Screen) {
	w, h := screen.Size()
	minX, maxX := float64(arenaMargin), float64(w-arenaMargin-1)
	minY, maxY := float64(arenaMargin), float64(h-2)

	for _, b := range a.sim.Bodies() {
		if b.Static() {
			continue
		}
		if b.Position.X < minX {
			b.Position.X = minX
			b.Velocity = vmath.ReflectAxisX(b.Velocity)
		} else if b.Position.X > maxX {
			b.Position.X = maxX
			b.Velocity = vmath.ReflectAxisX(b.Velocity)
		}
		if b.Position.Y < minY {
			b.Position.Y = minY
			b.Velocity = vmath.ReflectAxisY(b.Velocity)
		} else if b.Position.Y > maxY {
			b.Position.Y = maxY
			b.Velocity = vmath.ReflectAxisY(b.Velocity)
		}
	}
}

func (a *app) draw(screen tcell.Screen) {
	w, h := screen.Size()
	screen.Clear()

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < w; x++ {
		screen.SetContent(x, 0, '-', nil, border)
		screen.SetContent(x, h-2, '-', nil, border)
	}
	for y := 0; y < h-1; y++ {
		screen.SetContent(0, y, '|', nil, border)
		screen.SetContent(w-1, y, '|', nil, border)
	}

	flash := time.Since(a.lastHitAt) < 120*time.Millisecond
	for _, b := range a.sim.Bodies() {
		x, y := int(b.Position.X), int(b.Position.Y)
		ch := 'o'
		style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
		switch {
		case b.Static():
			ch = '#'
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		case b.Shape.Radius >= 1.5:
			ch = 'O'
		}
		if flash && (b == a.lastHit.A || b == a.lastHit.B) {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		screen.SetContent(x, y, ch, nil, style)
	}

	state := "running"
	if !a.sim.Running() {
		state = "paused"
	}
	hud := fmt.Sprintf(" bodies:%d hits:%d t:%5.1fs [%s]  space=spawn p=pause c=clear q=quit",
		len(a.sim.Bodies()), a.collisions, a.sim.Elapsed().Seconds(), state)
	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range hud {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, r, nil, hudStyle)
	}

	screen.Show()
}
