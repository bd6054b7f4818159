package strategy

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridroute/walk"
)

// Odds are the percentage chances DrawFlags uses for each flag.
type Odds struct {
	BFSPercent      int
	DijkstraPercent int
}

// DefaultOdds: BFS half of the time, Dijkstra 80% of the time.
var DefaultOdds = Odds{BFSPercent: 50, DijkstraPercent: 80}

// Validate checks both percentages are within [0,100].
func (o Odds) Validate() error {
	if o.BFSPercent < 0 || o.BFSPercent > 100 {
		return fmt.Errorf("%w: bfs=%d", ErrInvalidOdds, o.BFSPercent)
	}
	if o.DijkstraPercent < 0 || o.DijkstraPercent > 100 {
		return fmt.Errorf("%w: dijkstra=%d", ErrInvalidOdds, o.DijkstraPercent)
	}
	return nil
}

// DrawFlags samples the two selector flags independently:
// useBFS with probability odds.BFSPercent/100, then useDijkstra with
// probability odds.DijkstraPercent/100. A nil rng uses walk.NewRand(0).
func DrawFlags(rng *rand.Rand, odds Odds) (useBFS, useDijkstra bool) {
	if rng == nil {
		rng = walk.NewRand(0)
	}
	useBFS = rng.Intn(100) < odds.BFSPercent
	useDijkstra = rng.Intn(100) < odds.DijkstraPercent
	return useBFS, useDijkstra
}
