// Command underwell-window runs the pit defense simulation in a desktop window
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/underwell/audio"
	"github.com/lixenwraith/underwell/command"
	"github.com/lixenwraith/underwell/engine"
	"github.com/lixenwraith/underwell/manifest"
	"github.com/lixenwraith/underwell/parameter"
	"github.com/lixenwraith/underwell/persistence"
	"github.com/lixenwraith/underwell/render"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	seedFlag   = flag.Int64("seed", 0, "RNG seed, zero picks one")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

// toolKeys selects tools in toolbar order
var toolKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8}

// Game adapts the scheduler to ebiten's update/draw loop
// ebiten calls Update at the tick rate; the scheduler's accumulator absorbs drift
type Game struct {
	world *engine.World
	sched *engine.Scheduler
	tool  command.Tool

	dragX, dragY float64
	dragging     bool
}

func (g *Game) Update() error {
	for i, k := range toolKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.tool = command.Tools()[i]
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.dispatch(command.Start{})
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.dispatch(command.TogglePause{})
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.dispatch(command.Reset{})
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.dispatch(command.Clear{})
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.tool == command.ToolSelect {
			g.dragX, g.dragY, g.dragging = x, y, true
		} else {
			dropped := ebiten.IsKeyPressed(ebiten.KeyShift)
			if cmd, ok := g.tool.Command(x, y, dropped); ok {
				g.dispatch(cmd)
			}
		}
	}
	if g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		g.dispatch(command.MoveBlock{FromX: g.dragX, FromY: g.dragY, ToX: x, ToY: y})
	}

	g.sched.Frame()
	return nil
}

func (g *Game) dispatch(cmd command.Command) {
	g.sched.Do(func(w *engine.World) {
		command.Dispatch(w, cmd)
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	var snap engine.Snapshot
	g.sched.Do(func(w *engine.World) {
		snap = w.Snapshot()
	})

	screen.Fill(render.RGBA(render.ColorBackgroundBottom))
	vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), 48, render.RGBA(render.ColorBackgroundTop), false)

	for _, s := range render.BuildScene(&snap) {
		clr := render.RGBA(s.Fill)
		switch s.Kind {
		case render.ShapeRect:
			if s.W > 0 && s.H > 0 {
				vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), clr, true)
			}
		case render.ShapeCircle:
			vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.R), clr, true)
		}
		if s.Label != "" {
			ebitenutil.DebugPrintAt(screen, s.Label, int(s.X)-3, int(s.Y)+12)
		}
	}

	hud := render.HUDLines(&snap, g.tool.Label(), g.world.Clock.Now())
	ebitenutil.DebugPrint(screen, strings.Join(hud, "\n"))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.world.Width()), int(g.world.Height())
}

func main() {
	flag.Parse()

	cfg := engine.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = engine.LoadConfig(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "underwell-window: %v\n", err)
			os.Exit(1)
		}
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	var scores engine.ScoreKeeper
	if cfg.ScoreFile != "" {
		store, err := persistence.Open(cfg.ScoreFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "underwell-window: %v\n", err)
			os.Exit(1)
		}
		scores = store
	}

	world := manifest.NewGame(cfg, scores)

	if cfg.Audio && !*muteFlag {
		sounds := audio.NewSoundManager(0.6)
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sounds.Cleanup()
			world.Subscribe(sounds.HandleEvent)
		}
	}

	sched, _ := engine.NewScheduler(world, world.Clock)
	g := &Game{world: world, sched: sched, tool: command.ToolBuilder}

	ebiten.SetTPS(parameter.TickRate)
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Underwell Pit")
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
