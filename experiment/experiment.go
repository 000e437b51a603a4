// Package experiment benchmarks the search strategies over seeded worlds
// and renders the results as a markdown comparison table.
package experiment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/dynamic"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Run executes one episode: generate the world from cfg.Seed, then search
// from (0,0) to the opposite corner with the configured algorithm and the
// generated patrols forecast in. A no-path outcome is a valid measurement
// (Found=false), not an error; errors report invalid configuration only.
func Run(cfg Episode) (Row, error) {
	// 1) Build the world. Same seed, same world.
	g, err := grid.Random(cfg.Width, cfg.Height, cfg.Seed)
	if err != nil {
		return Row{}, err
	}
	fc, err := dynamic.Random(g, cfg.Seed, cfg.Obstacles)
	if err != nil {
		return Row{}, err
	}

	start := grid.Cell{X: 0, Y: 0}
	goal := grid.Cell{X: g.Width() - 1, Y: g.Height() - 1}

	// 2) Time the search call alone; world generation is not measured.
	began := time.Now()
	res, err := search.FindPath(g, start, goal,
		search.WithAlgorithm(cfg.Algorithm),
		search.WithForecaster(fc))
	elapsed := float64(time.Since(began).Microseconds()) / 1e3

	row := Row{Algorithm: cfg.Algorithm, Seed: cfg.Seed, TimeMS: elapsed}
	if err != nil {
		if errors.Is(err, search.ErrNoPath) {
			return row, nil
		}

		return Row{}, err
	}

	// 3) Record the plan's shape.
	row.Found = true
	row.PathLen = res.Plan.Len()
	row.PathCost = res.Plan.Cost()
	row.Expanded = res.Expanded

	return row, nil
}

// Sweep runs every algorithm against every seed on width×height worlds,
// one independent episode per (algorithm, seed) pair. Rows come back
// grouped by algorithm in the canonical order, seeds in input order.
func Sweep(width, height int, seeds []int64) ([]Row, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}

	rows := make([]Row, 0, len(seeds)*len(search.Algorithms()))
	for _, alg := range search.Algorithms() {
		for _, seed := range seeds {
			row, err := Run(Episode{
				Width:     width,
				Height:    height,
				Seed:      seed,
				Algorithm: alg,
			})
			if err != nil {
				return nil, fmt.Errorf("sweep %s seed=%d: %w", alg, seed, err)
			}
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// Summarize aggregates rows per algorithm, in the canonical algorithm
// order. Time averages over every episode; path length and cost average
// over found episodes only.
func Summarize(rows []Row) []Summary {
	summaries := make([]Summary, 0, len(search.Algorithms()))
	for _, alg := range search.Algorithms() {
		s := Summary{Algorithm: alg}
		var found int
		var timeSum, lenSum, costSum float64
		for _, r := range rows {
			if r.Algorithm != alg {
				continue
			}
			s.Episodes++
			timeSum += r.TimeMS
			if r.Found {
				found++
				lenSum += float64(r.PathLen)
				costSum += float64(r.PathCost)
			}
		}
		if s.Episodes == 0 {
			continue
		}
		s.FoundPct = 100 * float64(found) / float64(s.Episodes)
		s.AvgTimeMS = timeSum / float64(s.Episodes)
		if found > 0 {
			s.AvgPathLen = lenSum / float64(found)
			s.AvgPathCost = costSum / float64(found)
		}
		summaries = append(summaries, s)
	}

	return summaries
}

// Report renders summaries as a markdown table, one row per algorithm.
func Report(summaries []Summary) string {
	var b strings.Builder
	b.WriteString("| Algorithm | Found% | Avg Time (ms) | Avg Path Len | Avg Path Cost |\n")
	b.WriteString("|-----------|--------|---------------|--------------|---------------|\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "| %s | %.1f | %.3f | %.1f | %.1f |\n",
			s.Algorithm, s.FoundPct, s.AvgTimeMS, s.AvgPathLen, s.AvgPathCost)
	}

	return b.String()
}
