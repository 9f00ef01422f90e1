package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/rockfall/chamber"
	"github.com/plus3/rockfall/sim"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	ScreenWidth  = 480
	ScreenHeight = 720
	CellSize     = 16
	VisibleRows  = (ScreenHeight - 2*CellSize) / CellSize
	OffsetX      = 2 * CellSize
)

var (
	wallColor    = color.RGBA{90, 90, 90, 255}
	rockColor    = color.RGBA{169, 169, 169, 255}
	lastColor    = color.RGBA{255, 179, 186, 255}
	floorColor   = color.RGBA{120, 100, 80, 255}
	surfaceColor = color.RGBA{40, 60, 90, 255}
)

type Game struct {
	Sim     *sim.Simulation
	PerTick int
	Limit   int64
	Paused  bool

	spaceDown bool
}

func main() {
	input := flag.String("input", "input.txt", "Path to the jet pattern file.")
	perTick := flag.Int("speed", 1, "Rocks dropped per frame.")
	limit := flag.Int64("rocks", 2022, "Stop after this many rocks.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("Failed to read jet pattern")
	}
	moves, err := sim.ParseMoves(string(data))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse jet pattern")
	}

	simulation, err := sim.New(sim.Config{Moves: moves})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up simulation")
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Rockfall")

	game := &Game{
		Sim:     simulation,
		PerTick: max(*perTick, 1),
		Limit:   *limit,
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("Viewer stopped")
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	space := ebiten.IsKeyPressed(ebiten.KeySpace)
	if space && !g.spaceDown {
		g.Paused = !g.Paused
	}
	g.spaceDown = space

	if g.Paused {
		return nil
	}
	for i := 0; i < g.PerTick && g.Sim.Rocks() < g.Limit; i++ {
		g.Sim.Step()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	c := g.Sim.Chamber()
	top := c.TowerHeight()
	bottom := max(top-VisibleRows+1, 0)

	// Screen row of chamber row y.
	screenY := func(y int) float32 {
		return float32(ScreenHeight - CellSize - (y-bottom+1)*CellSize)
	}

	vector.DrawFilledRect(screen, OffsetX-CellSize, 0, CellSize, ScreenHeight, wallColor, false)
	vector.DrawFilledRect(screen, OffsetX+chamber.Width*CellSize, 0, CellSize, ScreenHeight, wallColor, false)

	surface := c.Surface()
	for d, mask := range surface {
		y := top + 1 - d
		if y < bottom || y > top {
			continue
		}
		for x := range chamber.Width {
			if mask&(1<<x) != 0 {
				vector.DrawFilledRect(screen, float32(OffsetX+x*CellSize), screenY(y), CellSize, CellSize, surfaceColor, false)
			}
		}
	}

	last := make(map[chamber.Coord]bool)
	if rock := g.Sim.LastRock(); rock.Shape != nil {
		for _, p := range rock.Shape.Cells(rock.Anchor) {
			last[p] = true
		}
	}

	for y := bottom; y <= top; y++ {
		for x := range chamber.Width {
			p := chamber.Coord{X: x, Y: y}
			if !c.Occupied(p) {
				continue
			}
			clr := rockColor
			switch {
			case y == 0:
				clr = floorColor
			case last[p]:
				clr = lastColor
			}
			vector.DrawFilledRect(screen, float32(OffsetX+x*CellSize)+1, screenY(y)+1, CellSize-2, CellSize-2, clr, false)
		}
	}

	status := fmt.Sprintf("rocks %d\nheight %d\n%s", g.Sim.Rocks(), g.Sim.Height(), g.Sim.Phase())
	if cycle, ok := g.Sim.Cycle(); ok {
		status += fmt.Sprintf("\ncycle: %s", cycle)
	}
	if g.Paused {
		status += "\n[paused]"
	}
	ebitenutil.DebugPrintAt(screen, status, OffsetX+(chamber.Width+2)*CellSize, CellSize)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
