// Package seabattle provides the Sea Battle game for the platform: it drives a
// core.Match from keyboard input and paces the computer's shots.
package seabattle

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	platformcore "github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/config"
	"github.com/vovakirdan/seabattle/internal/games/seabattle/core"
	"github.com/vovakirdan/seabattle/internal/registry"
)

// Game IDs.
const (
	GameID      = "seabattle"
	WatchGameID = "seabattle_watch"
)

const logLines = 4

// logEntry is one line of the shot log.
type logEntry struct {
	text  string
	color platformcore.Color
}

// Game implements Sea Battle against the computer, or computer against
// computer in watch mode.
type Game struct {
	watch bool

	cfg   config.SeaBattleConfig
	rng   *rand.Rand
	match *core.Match
	queue *core.TargetQueue // nil in watch mode

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Pacing, in ticks
	thinkTicks  int
	resultTicks int
	waitTicks   int

	tick       uint64
	finishTick uint64
	cursor     core.Coord

	message      string
	messageColor platformcore.Color
	log          []logEntry

	setupErr error
	gameOver bool
	paused   bool
	tooSmall bool
}

var configPath string

// SetConfigPath sets a custom config file used by subsequent Resets.
// Empty means the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game where the player fires at the computer's fleet.
func New() *Game {
	return &Game{}
}

// NewWatch creates a game where two automated fleets fight each other.
func NewWatch() *Game {
	return &Game{watch: true}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(WatchGameID, func() registry.Game {
		return NewWatch()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.watch {
		return WatchGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.watch {
		return "Sea Battle (Watch)"
	}
	return "Sea Battle"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.watch {
		return "Two computer fleets fight it out"
	}
	return "Sink the enemy fleet before it sinks yours"
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.watch {
		return "P: Pause | R: New match | Q: Quit"
	}
	return "Arrows: Aim | Space: Fire | ':' Type target | P: Pause | R: New | Q: Quit"
}

// Rules converts a configuration into match rules.
func Rules(cfg config.SeaBattleConfig) core.Rules {
	tieBreak, _ := core.ParseTieBreak(cfg.Rules.TieBreak)
	return core.Rules{
		Size:                 cfg.Board.Size,
		MaxPlacementAttempts: cfg.Placement.MaxAttempts,
		MaxBoardRestarts:     cfg.Placement.MaxRestarts,
		MaxTargetRetries:     cfg.Targeting.MaxRetries,
		TieBreak:             tieBreak,
	}
}

// Reset loads the configuration and starts a new match.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	g.tick = 0
	g.finishTick = 0
	g.log = nil
	g.setupErr = nil
	g.gameOver = false
	g.paused = false

	conf, err := config.LoadSeaBattle(configPath)
	if err != nil {
		conf = config.DefaultSeaBattleConfig()
		g.setMessage(fmt.Sprintf("%v; using defaults", err), platformcore.ColorOrange)
	} else {
		g.setMessage("", platformcore.ColorDefault)
	}
	g.cfg = conf
	g.thinkTicks = cfg.Ticks(conf.CPUThink())
	g.resultTicks = cfg.Ticks(conf.ResultDelay())

	var input core.InputSource
	g.queue = nil
	if !g.watch {
		g.queue = core.NewTargetQueue()
		input = g.queue
	}

	g.match = core.NewMatch(Rules(conf), g.rng, input)
	if err := g.match.Start(); err != nil {
		g.setupErr = err
		g.gameOver = true
		g.setMessage(err.Error(), platformcore.ColorBrightRed)
		g.checkScreenSize()
		return
	}

	size := conf.Board.Size
	g.cursor = core.C(size/2, size/2)
	if g.watch {
		g.waitTicks = g.thinkTicks
	} else {
		g.waitTicks = 0
		if g.message == "" {
			g.setMessage(Greeting(size), platformcore.ColorCyan)
		}
	}

	g.checkScreenSize()
}

// Resize keeps the running match and only re-checks the layout.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for both boards.
func (g *Game) checkScreenSize() {
	minW, minH := layoutSize(g.cfg.Board.Size)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall || g.setupErr != nil {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	if !g.watch {
		g.moveCursor(in)
	}

	if g.humanTurn() {
		if in.Has(platformcore.ActionFire) {
			g.queue.Push(g.cursor.Row+1, g.cursor.Col+1)
		}
		if g.queue.Len() > 0 {
			g.advance()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if g.waitTicks > 0 {
		g.waitTicks--
		return platformcore.StepResult{State: g.State()}
	}
	g.advance()

	return platformcore.StepResult{State: g.State()}
}

// humanTurn reports whether the match is waiting on the keyboard.
func (g *Game) humanTurn() bool {
	return !g.watch && g.match.CurrentSide() == core.SideHuman
}

// moveCursor moves the aiming cursor, wrapping at the edges.
func (g *Game) moveCursor(in platformcore.InputFrame) {
	size := g.cfg.Board.Size
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Row = platformcore.Wrap(g.cursor.Row-1, size)
	case in.Has(platformcore.ActionDown):
		g.cursor.Row = platformcore.Wrap(g.cursor.Row+1, size)
	case in.Has(platformcore.ActionLeft):
		g.cursor.Col = platformcore.Wrap(g.cursor.Col-1, size)
	case in.Has(platformcore.ActionRight):
		g.cursor.Col = platformcore.Wrap(g.cursor.Col+1, size)
	}
}

// advance plays one turn of the match and updates messages and pacing.
func (g *Game) advance() {
	result, err := g.match.AdvanceTurn()

	if last, ok := result.LastRejection(); ok && result.Side == core.SideHuman && !g.watch {
		g.setMessage(RejectionMessage(last.Err), platformcore.ColorBrightRed)
	}

	switch {
	case core.Awaiting(err):
		return
	case errors.Is(err, core.ErrMatchFinished):
		g.gameOver = true
		return
	case err != nil:
		g.setupErr = err
		g.gameOver = true
		g.setMessage(err.Error(), platformcore.ColorBrightRed)
		return
	}

	line := fmt.Sprintf("%s fired at %s. %s", g.sideName(result.Side), result.Target.Label(), OutcomeMessage(result.Outcome))
	color := outcomeColor(result.Outcome)
	g.setMessage(line, color)
	g.appendLog(line, color)

	if result.Side == core.SideHuman && !g.watch {
		g.cursor = result.Target
	}

	if g.match.Finished() {
		g.gameOver = true
		g.finishTick = g.tick
		g.setMessage(g.verdict(), platformcore.ColorBrightYellow)
		return
	}

	next := g.match.CurrentSide()
	g.waitTicks = 0
	if g.watch || next == core.SideAutomated {
		g.waitTicks = g.thinkTicks
		if result.Side == core.SideAutomated || g.watch {
			g.waitTicks += g.resultTicks
		}
	}
}

// SubmitTarget takes a typed "row col" pair from the platform prompt.
func (g *Game) SubmitTarget(input string) {
	if g.watch || g.gameOver || g.paused || g.setupErr != nil {
		return
	}
	if !g.humanTurn() {
		g.setMessage(msgNotYourTurn, platformcore.ColorBrightRed)
		return
	}
	row, col, err := ParseTarget(input)
	if err != nil {
		g.setMessage(err.Error(), platformcore.ColorBrightRed)
		return
	}
	// At most one typed target is pending; a newer one replaces it.
	g.queue.Clear()
	g.queue.Push(row, col)
	if c := core.FromOneIndexed(row, col); !g.match.Board(core.SideAutomated).IsOutOfBounds(c) {
		g.cursor = c
	}
}

// sideName names a side the way the log shows it.
func (g *Game) sideName(side core.Side) string {
	switch {
	case side == core.SideAutomated:
		return "Computer"
	case g.watch:
		return "Autopilot"
	default:
		return "You"
	}
}

// verdict is the closing line of a finished match.
func (g *Game) verdict() string {
	winner := g.match.Winner()
	if g.watch {
		return fmt.Sprintf("%s wins the battle!", g.sideName(winner))
	}
	if winner == core.SideHuman {
		return "You sank the whole enemy fleet. Victory!"
	}
	return "Your fleet is at the bottom of the sea. Defeat."
}

func (g *Game) setMessage(text string, color platformcore.Color) {
	g.message = text
	g.messageColor = color
}

func (g *Game) appendLog(text string, color platformcore.Color) {
	g.log = append(g.log, logEntry{text: text, color: color})
	if len(g.log) > logLines {
		g.log = g.log[len(g.log)-logLines:]
	}
}

// Match exposes the underlying match.
func (g *Game) Match() *core.Match {
	return g.match
}

// Message returns the current status line.
func (g *Game) Message() string {
	return g.message
}

// Score returns the score of a finished match. Watch mode never scores.
func (g *Game) Score() int {
	if g.watch || g.match == nil {
		return 0
	}
	return g.match.Score()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// MatchSummary describes the finished match for the history table.
func (g *Game) MatchSummary() (registry.MatchSummary, bool) {
	if g.match == nil || !g.match.Finished() {
		return registry.MatchSummary{}, false
	}

	var elapsed time.Duration
	if g.tickRate > 0 {
		elapsed = time.Duration(g.finishTick) * time.Second / time.Duration(g.tickRate)
	}

	return registry.MatchSummary{
		Winner:     g.match.Winner().String(),
		HumanShots: g.match.Shots(core.SideHuman),
		CPUShots:   g.match.Shots(core.SideAutomated),
		Turns:      g.match.Turn(),
		Duration:   elapsed,
	}, true
}
