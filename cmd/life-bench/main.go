package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"life-gl/internal/loop"
	"life-gl/internal/sims/life"
)

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	var out []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return errors.Wrapf(err, "[intList.Set] invalid entry %q", part)
		}
		if v < 1 {
			return errors.Errorf("[intList.Set] entry must be positive, got %d", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return errors.New("[intList.Set] empty list")
	}
	*l = out
	return nil
}

type scenario struct {
	size    int
	workers int
}

func (s scenario) String() string {
	return fmt.Sprintf("size=%d workers=%d", s.size, s.workers)
}

type scenarioResult struct {
	scenario
	steps      int
	elapsed    time.Duration
	fps        float64
	population int
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	parallel := flag.Int("parallel", 1, "scenarios evaluated at the same time")
	seed := flag.Int64("seed", 42, "seed for the initial population")
	sizes := intList{64, 128, 256}
	workers := intList{1, runtime.NumCPU()}
	flag.Var(&sizes, "sizes", "comma-separated grid sizes")
	flag.Var(&workers, "workers", "comma-separated goroutine counts per step")
	flag.Parse()

	if *steps < 1 || *parallel < 1 {
		log.Fatal("steps and parallel must be positive")
	}

	var scenarios []scenario
	for _, size := range sizes {
		for _, w := range workers {
			scenarios = append(scenarios, scenario{size: size, workers: w})
		}
	}

	fmt.Printf("Benchmarking %d scenarios (%d at a time, %d steps)\n", len(scenarios), *parallel, *steps)

	var (
		eg      errgroup.Group
		mu      sync.Mutex
		results []scenarioResult
	)
	eg.SetLimit(*parallel)
	for _, sc := range scenarios {
		eg.Go(func() error {
			res := runScenario(sc, *steps, *seed)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	sortResults(results)
	for _, res := range results {
		fmt.Printf("%-22s %6d gens in %8s  %10.1f fps  alive=%d\n",
			res.scenario, res.steps, res.elapsed.Round(time.Millisecond), res.fps, res.population)
	}
}

// runScenario drives a headless loop for the given number of ticks.
func runScenario(sc scenario, steps int, seed int64) scenarioResult {
	sim := life.NewWithConfig(life.Config{Width: sc.size, Height: sc.size, Seed: seed, Workers: sc.workers})
	sim.Reset(seed)

	l := loop.New(loop.Discard, loop.Discard)
	l.Start(sim)
	var fps float64
	for i := 0; i < steps; i++ {
		fps = l.Tick()
	}
	return scenarioResult{
		scenario:   sc,
		steps:      steps,
		elapsed:    l.Elapsed(),
		fps:        fps,
		population: sim.Population(),
	}
}

func sortResults(results []scenarioResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].size != results[j].size {
			return results[i].size < results[j].size
		}
		return results[i].workers < results[j].workers
	})
}
