package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime"
	"sync"
	"time"

	"sandsim/internal/sand"
)

type job struct {
	scan sand.ScanOrder
	seed int64
}

type summary struct {
	runs     int
	meanBias float64
	meanAbs  float64
	worst    float64
	sand     int
	ticks    int
}

func main() {
	seeds := flag.Int("seeds", 32, "poured piles per scan order")
	frames := flag.Int("frames", 400, "frames to hold the brush down")
	settle := flag.Int("settle", 2000, "maximum ticks to let a pile settle")
	width := flag.Int("width", 240, "grid width in cells")
	height := flag.Int("height", 160, "grid height in cells")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	cfg := sand.DefaultConfig()
	cfg.TileSize = 1
	cfg.WindowWidth = *width
	cfg.WindowHeight = *height

	orders := []sand.ScanOrder{sand.ScanLeftToRight, sand.ScanRandomRows}
	fmt.Printf("Pouring %d piles per scan order on %dx%d (%d workers)\n", *seeds, *width, *height, *workers)

	jobs := make(chan job)
	results := make(chan sand.PourResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				run := cfg
				run.Scan = j.scan
				res, err := sand.Pour(run, j.seed, *frames, *settle)
				if err != nil {
					log.Fatalf("pour seed %d: %v", j.seed, err)
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, order := range orders {
			for s := 1; s <= *seeds; s++ {
				jobs <- job{scan: order, seed: int64(s)}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	sums := map[sand.ScanOrder]*summary{}
	for res := range results {
		s, ok := sums[res.Scan]
		if !ok {
			s = &summary{}
			sums[res.Scan] = s
		}
		s.add(res)
	}

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	report(os.Stdout, orders, sums)
}

func (s *summary) add(res sand.PourResult) {
	s.runs++
	s.meanBias += res.Bias
	s.meanAbs += math.Abs(res.Bias)
	s.sand += res.Sand
	s.ticks += res.SettleTicks
	if math.Abs(res.Bias) > math.Abs(s.worst) {
		s.worst = res.Bias
	}
}

// report prints one line per scan order in the order given, skipping orders
// without runs.
func report(w io.Writer, orders []sand.ScanOrder, sums map[sand.ScanOrder]*summary) {
	for _, order := range orders {
		s, ok := sums[order]
		if !ok || s.runs == 0 {
			continue
		}
		n := float64(s.runs)
		fmt.Fprintf(w, "%-7s runs=%d meanBias=%+.3f mean|bias|=%.3f worst=%+.3f sand/run=%.0f settleTicks/run=%.0f\n",
			order, s.runs, s.meanBias/n, s.meanAbs/n, s.worst, float64(s.sand)/n, float64(s.ticks)/n)
	}
}
