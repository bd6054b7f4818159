// Package config loads demo scenarios: board size and obstacles, the route
// endpoints, the strategy odds and the random-walk settings.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridroute/board"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/strategy"
	"github.com/katalvlaran/gridroute/walk"
)

// ErrSchema is returned when a document does not match scenario.schema.json.
var ErrSchema = errors.New("config: scenario does not match schema")

// StrategyAuto lets DrawFlags pick the strategy.
const StrategyAuto = "auto"

type Scenario struct {
	Rows            int    `yaml:"rows"`
	Cols            int    `yaml:"cols"`
	Seed            int64  `yaml:"seed"`
	ObstaclePercent int    `yaml:"obstacle_percent"`
	Margin          int    `yaml:"margin"`
	Tanks           bool   `yaml:"tanks"`
	Map             string `yaml:"map,omitempty"`
	Start           Point  `yaml:"start"`
	Goal            Point  `yaml:"goal"`
	Odds            Odds   `yaml:"odds"`
	Walk            Walk   `yaml:"walk"`
	Strategy        string `yaml:"strategy"`
}

type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

type Odds struct {
	BFSPercent      int `yaml:"bfs_percent"`
	DijkstraPercent int `yaml:"dijkstra_percent"`
}

type Walk struct {
	MaxSteps int    `yaml:"max_steps"`
	Mode     string `yaml:"mode"`
}

// Coord converts p to a grid coordinate.
func (p Point) Coord() grid.Coord { return grid.Coord{Row: p.Row, Col: p.Col} }

// Load reads a scenario file. An empty path returns the defaults.
func Load(path string) (Scenario, error) {
	if strings.TrimSpace(path) == "" {
		s := Defaults()
		s.Normalize()
		return s, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	return Parse(b)
}

// Parse decodes a scenario document on top of the defaults.
func Parse(data []byte) (Scenario, error) {
	s := Defaults()
	if err := validateSchema(data); err != nil {
		return s, fmt.Errorf("scenario.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("scenario.yaml: %w", err)
	}
	s.Normalize()
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("scenario.yaml: %w", err)
	}
	return s, nil
}

// Defaults is the demo setup: a 10×10 board with 10% obstacles, tanks in the
// corners, a route from (0,0) to (5,5), and BFS/Dijkstra odds of 50%/80%.
func Defaults() Scenario {
	return Scenario{
		Rows:            10,
		Cols:            10,
		ObstaclePercent: board.DefaultObstaclePercent,
		Margin:          board.DefaultMargin,
		Tanks:           true,
		Start:           Point{Row: 0, Col: 0},
		Goal:            Point{Row: 5, Col: 5},
		Odds: Odds{
			BFSPercent:      strategy.DefaultOdds.BFSPercent,
			DijkstraPercent: strategy.DefaultOdds.DijkstraPercent,
		},
		Walk: Walk{
			MaxSteps: walk.DefaultMaxSteps,
			Mode:     strategy.WalkMulti.String(),
		},
		Strategy: StrategyAuto,
	}
}

func (s *Scenario) Normalize() {
	if s == nil {
		return
	}
	s.Strategy = strings.ToLower(strings.TrimSpace(s.Strategy))
	if s.Strategy == "" {
		s.Strategy = StrategyAuto
	}
	s.Walk.Mode = strings.ToLower(strings.TrimSpace(s.Walk.Mode))
	if s.Walk.Mode == "" {
		s.Walk.Mode = strategy.WalkMulti.String()
	}
	if s.Walk.MaxSteps <= 0 {
		s.Walk.MaxSteps = walk.DefaultMaxSteps
	}
	s.Map = strings.Trim(s.Map, "\n")
}

func (s Scenario) Validate() error {
	rows, cols := s.Rows, s.Cols
	var markers *board.Board
	if s.Map != "" {
		b, err := board.Parse(s.Map)
		if err != nil {
			return fmt.Errorf("map: %w", err)
		}
		rows, cols, markers = b.Rows(), b.Cols(), b
	}
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("rows and cols must be > 0 (got %dx%d)", rows, cols)
	}
	if s.ObstaclePercent < 0 || s.ObstaclePercent > 100 {
		return fmt.Errorf("obstacle_percent must be in [0,100]")
	}
	if s.Margin < 0 {
		return fmt.Errorf("margin must be >= 0")
	}
	if err := s.StrategyOdds().Validate(); err != nil {
		return err
	}
	if s.Walk.MaxSteps <= 0 {
		return fmt.Errorf("walk.max_steps must be > 0")
	}
	if _, err := strategy.ParseWalkMode(s.Walk.Mode); err != nil {
		return err
	}
	if s.Strategy != StrategyAuto {
		if _, err := strategy.ParseKind(s.Strategy); err != nil {
			return err
		}
	}
	checks := []struct {
		name   string
		marker rune
		p      Point
	}{
		{"start", board.SymbolStart, s.Start},
		{"goal", board.SymbolGoal, s.Goal},
	}
	for _, c := range checks {
		if markers != nil {
			if _, ok := markers.Marker(c.marker); ok {
				continue
			}
		}
		if c.p.Row < 0 || c.p.Row >= rows || c.p.Col < 0 || c.p.Col >= cols {
			return fmt.Errorf("%s %v outside %dx%d board", c.name, c.p.Coord(), rows, cols)
		}
	}
	return nil
}

// StrategyOdds returns the odds section in the form strategy.DrawFlags takes.
func (s Scenario) StrategyOdds() strategy.Odds {
	return strategy.Odds{BFSPercent: s.Odds.BFSPercent, DijkstraPercent: s.Odds.DijkstraPercent}
}

// ForcedKind returns the configured strategy, or false when it is "auto".
func (s Scenario) ForcedKind() (strategy.Kind, bool) {
	if s.Strategy == StrategyAuto {
		return 0, false
	}
	k, err := strategy.ParseKind(s.Strategy)
	if err != nil {
		return 0, false
	}
	return k, true
}

// SelectorOptions maps the walk section onto strategy options.
func (s Scenario) SelectorOptions() []strategy.Option {
	mode, err := strategy.ParseWalkMode(s.Walk.Mode)
	if err != nil {
		mode = strategy.WalkMulti
	}
	maxSteps := s.Walk.MaxSteps
	if maxSteps <= 0 {
		maxSteps = walk.DefaultMaxSteps
	}
	return []strategy.Option{strategy.WithWalkMode(mode), strategy.WithMaxSteps(maxSteps)}
}

// Board builds the scenario board: the literal map when one is set,
// otherwise a generated board drawing obstacles from rng. A nil rng seeds
// a fresh source from Seed.
func (s Scenario) Board(rng *rand.Rand) (*board.Board, error) {
	if s.Map != "" {
		return board.Parse(s.Map)
	}
	opts := []board.Option{
		board.WithObstaclePercent(s.ObstaclePercent),
		board.WithMargin(s.Margin),
		board.WithTanks(s.Tanks),
	}
	if rng != nil {
		opts = append(opts, board.WithRand(rng))
	} else {
		opts = append(opts, board.WithRand(walk.NewRand(s.Seed)))
	}
	return board.Generate(s.Rows, s.Cols, opts...)
}

// Endpoints returns the route endpoints on b. S and G markers in a literal
// map take precedence over the start and goal fields.
func (s Scenario) Endpoints(b *board.Board) (start, goal grid.Coord) {
	start, goal = s.Start.Coord(), s.Goal.Coord()
	if b == nil {
		return start, goal
	}
	if c, ok := b.Marker(board.SymbolStart); ok {
		start = c
	}
	if c, ok := b.Marker(board.SymbolGoal); ok {
		goal = c
	}
	return start, goal
}
