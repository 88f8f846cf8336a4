// Command bench runs headless self-play games in parallel and reports
// throughput. Each worker goroutine owns its own Arena, pair of
// MCTSPlayers, and RNG seed, matching §5's concurrency model: the search
// itself is single-threaded per turn, and parallelism across games is the
// driver's responsibility, not the engine's. No human interaction, no
// rendering, no ELO scoring — those are out of scope (§1).
package main

import (
	"flag"
	"log"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/jbrot/santorini-ai/ai"
	"github.com/jbrot/santorini-ai/arena"
	"github.com/jbrot/santorini-ai/board"
)

func main() {
	games := flag.Int("games", 100, "number of self-play games to run")
	workers := flag.Int("workers", 4, "number of parallel worker goroutines")
	budget := flag.Uint("budget", 500, "MCTS rollout budget per move")
	puct := flag.Bool("puct", false, "use the PUCT tree policy instead of UCB1")
	flag.Parse()

	cfg := ai.DefaultConfig()
	cfg.Budget = uint32(*budget)
	cfg.UsePUCT = *puct
	if !cfg.IsValid() {
		log.Fatal("bench: invalid config")
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	type job struct{ seed uint64 }
	jobs := make(chan job, *games)
	for i := 0; i < *games; i++ {
		jobs <- job{seed: uint64(i) + 1}
	}
	close(jobs)

	var (
		mu        sync.Mutex
		errs      *multierror.Error
		p1Wins    int
		p2Wins    int
		completed int
	)

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range jobs {
				p1 := ai.NewMCTSPlayer(cfg, j.seed*2, nil)
				p2 := ai.NewMCTSPlayer(cfg, j.seed*2+1, nil)
				a := arena.New(p1, p2)

				result, err := a.Play()

				mu.Lock()
				if err != nil {
					errs = multierror.Append(errs, err)
				} else {
					completed++
					if result.Winner() == board.PlayerOne {
						p1Wins++
					} else {
						p2Wins++
					}
				}
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	logger.Printf("completed %d/%d games in %s (%.2f games/sec)", completed, *games, elapsed, float64(completed)/elapsed.Seconds())
	logger.Printf("player one wins: %d  player two wins: %d", p1Wins, p2Wins)
	if errs != nil {
		logger.Printf("worker errors: %v", errs)
		os.Exit(1)
	}
}
