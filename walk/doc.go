// Package walk produces unguided random routes on a grid.Grid. It is the
// exploratory baseline the two shortest-path searches are compared against.
//
// What:
//
//   - Step moves one cell: it picks uniformly among the admissible
//     4-neighbours (not among all four directions), or stays put when there
//     are none.
//   - StepPath is the single-step route [start, Step(start)].
//   - Walk repeats Step from the running position, appending every cell it
//     lands on, until the goal is reached, a step goes nowhere, or the step
//     budget runs out.
//
// Outcomes:
//
//   - OutcomeReached:  the last cell is the goal.
//   - OutcomeStuck:    the walker had no admissible move.
//   - OutcomeGaveUp:   MaxSteps moves were made without reaching the goal.
//   - OutcomeRejected: start is blocked or out of bounds; the path is empty.
//
// Walks may revisit cells; there is no cycle detection. Callers that need to
// know whether the goal was reached check Result.Outcome (or Path.Reaches).
//
// Determinism:
//
//   - Randomness comes only from the *rand.Rand argument. A nil source means
//     the fixed default stream (seed 1); no global or time-based seeding.
//   - *rand.Rand is not goroutine-safe; give each goroutine its own.
//
// Complexity:
//
//   - Step:  O(1).
//   - Walk:  O(MaxSteps) time, O(MaxSteps) memory for the path.
package walk
