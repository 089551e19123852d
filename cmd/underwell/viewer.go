package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/underwell/audio"
	"github.com/lixenwraith/underwell/command"
	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/event"
	"github.com/lixenwraith/underwell/render"
)

const (
	// hudRows are reserved above the pit
	hudRows = 3

	noticeDuration = 4 * time.Second
)

// viewer is the terminal driver: it owns the screen, feeds commands to the scheduler and draws snapshots
type viewer struct {
	screen tcell.Screen
	sched  *engine.Scheduler
	sounds *audio.SoundManager
	proj   render.Projection

	worldW, worldH float64

	tool command.Tool

	// dragFrom is the select-tool press position, valid while dragging
	dragFrom   [2]float64
	dragging   bool
	notices    chan string
	notice     string
	noticeTill time.Time
}

// runTerminal drives the world from the terminal until the player quits
func runTerminal(world *engine.World) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mUNDERWELL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	v := &viewer{
		screen:  screen,
		worldW:  world.Width(),
		worldH:  world.Height(),
		tool:    command.ToolBuilder,
		notices: make(chan string, 8),
	}
	v.resize()

	if world.Config.Audio {
		v.sounds = audio.NewSoundManager(0.6)
		if err := v.sounds.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer v.sounds.Cleanup()
			world.Subscribe(v.sounds.HandleEvent)
		}
	}

	// Listeners run on the scheduler goroutine, notices cross over by channel
	world.Subscribe(func(ev event.GameEvent) {
		if msg := notice(ev); msg != "" {
			select {
			case v.notices <- msg:
			default:
			}
		}
	})

	sched, frameDone := engine.NewScheduler(world, engine.NewTimeProvider())
	v.sched = sched
	sched.Start()
	defer sched.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handle(ev) {
				return nil
			}
		case msg := <-v.notices:
			v.notice = msg
			v.noticeTill = time.Now().Add(noticeDuration)
		case <-frameDone:
			v.draw()
		}
	}
}

// handle applies one terminal event, returns false to quit
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()

	case *tcell.EventKey:
		b, ok := keyBinding(ev.Key(), ev.Rune())
		if !ok {
			return true
		}
		switch {
		case b.quit:
			return false
		case b.setTool:
			v.tool = b.tool
			v.dragging = false
		case b.mute:
			if v.sounds != nil {
				v.sounds.SetMuted(!v.sounds.Muted())
			}
		case b.cmd != nil:
			v.dispatch(b.cmd)
		}

	case *tcell.EventMouse:
		v.mouse(ev)
	}
	return true
}

// mouse places with the active tool on press; the select tool drags blocks between press and release
// Shift-click with the welder places a repair station instead of welding
func (v *viewer) mouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y, inPit := v.proj.ToWorld(col, row)
	pressed := ev.Buttons()&tcell.Button1 != 0

	if v.tool == command.ToolSelect {
		switch {
		case pressed && !v.dragging && inPit:
			v.dragFrom = [2]float64{x, y}
			v.dragging = true
		case !pressed && v.dragging:
			v.dragging = false
			if inPit {
				v.dispatch(command.MoveBlock{FromX: v.dragFrom[0], FromY: v.dragFrom[1], ToX: x, ToY: y})
			}
		}
		return
	}

	if !pressed || !inPit {
		return
	}
	dropped := ev.Modifiers()&tcell.ModShift != 0
	if cmd, ok := v.tool.Command(x, y, dropped); ok {
		v.dispatch(cmd)
	}
}

func (v *viewer) dispatch(cmd command.Command) {
	v.sched.Do(func(w *engine.World) {
		res := command.Dispatch(w, cmd)
		log.Printf("command %s applied=%v healed=%.0f running=%v", res.Command, res.Applied, res.Healed, res.Running)
	})
}

func (v *viewer) resize() {
	cols, rows := v.screen.Size()
	v.proj = render.NewProjection(v.worldW, v.worldH, cols, rows, hudRows)
}

func style(fg colorful.Color) tcell.Style {
	r, g, b := fg.RGB255()
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))).
		Background(tcell.NewRGBColor(2, 16, 22))
}

func (v *viewer) draw() {
	var snap engine.Snapshot
	v.sched.Do(func(w *engine.World) {
		snap = w.Snapshot()
	})

	v.screen.Clear()
	cols, rows := v.screen.Size()
	bg := style(render.ColorText)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			v.screen.SetContent(col, row, ' ', nil, bg)
		}
	}

	for _, s := range render.BuildScene(&snap) {
		v.drawShape(s)
	}

	now := time.Now()
	lines := render.HUDLines(&snap, v.tool.Label(), now)
	if v.notice != "" && now.Before(v.noticeTill) {
		lines = append(lines, v.notice)
	} else {
		lines = append(lines, "1-8 tools  s start  p pause  r reset  c clear  m mute  q quit  shift-click welder: station")
	}
	for i, line := range lines {
		if i >= hudRows {
			break
		}
		v.text(0, i, render.FitLine(line, cols), style(render.ColorText))
	}

	v.screen.Show()
}

func (v *viewer) drawShape(s render.Shape) {
	st := style(s.Fill)

	switch s.Kind {
	case render.ShapeRect:
		if s.W <= 0 || s.H <= 0 {
			return
		}
		c0, r0, c1, r1 := v.proj.Rect(s.X, s.Y, s.W, s.H)
		glyph := s.Glyph
		if glyph == 0 {
			glyph = '▀'
		}
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				v.screen.SetContent(col, row, glyph, nil, st)
			}
		}
	case render.ShapeCircle:
		col, row := v.proj.ToCell(s.X, s.Y)
		v.screen.SetContent(col, row, s.Glyph, nil, st)
	}

	if s.Label != "" {
		col, row := v.proj.ToCell(s.X, s.Y)
		if row > hudRows {
			row--
		}
		v.text(col, row, s.Label, style(render.ColorText))
	}
}

func (v *viewer) text(col, row int, s string, st tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(col, row, r, nil, st)
		col++
	}
}
