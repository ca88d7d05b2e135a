package workload

import (
	"fmt"
	"math/rand"
	"sort"
)

// GeneratorConfig holds the bounds for synthetic process-set generation.
// Arrivals are drawn uniformly from [0, ArrivalMax]; bursts from
// [BurstMin, BurstMax]; priorities from [PriorityMin, PriorityMax].
type GeneratorConfig struct {
	Seed        int64
	Count       int
	ArrivalMax  int64
	BurstMin    int64
	BurstMax    int64
	PriorityMin int
	PriorityMax int
}

// Validate checks the generator bounds before any sampling happens.
func (cfg *GeneratorConfig) Validate() error {
	if cfg.Count <= 0 {
		return fmt.Errorf("generator: count must be positive, got %d", cfg.Count)
	}
	if cfg.ArrivalMax < 0 {
		return fmt.Errorf("generator: arrival max must be >= 0, got %d", cfg.ArrivalMax)
	}
	if cfg.BurstMin <= 0 || cfg.BurstMax < cfg.BurstMin {
		return fmt.Errorf("generator: burst range [%d, %d] must satisfy 0 < min <= max", cfg.BurstMin, cfg.BurstMax)
	}
	if cfg.PriorityMax < cfg.PriorityMin {
		return fmt.Errorf("generator: priority range [%d, %d] must satisfy min <= max", cfg.PriorityMin, cfg.PriorityMax)
	}
	return nil
}

// Generate creates a process set from the config. Deterministic given the
// same config and seed. Returns specs sorted by arrival time with
// sequential pids starting at 1.
func Generate(cfg GeneratorConfig) ([]ProcessSpec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	specs := make([]ProcessSpec, cfg.Count)
	for i := range specs {
		specs[i] = ProcessSpec{
			Arrival:  rng.Int63n(cfg.ArrivalMax + 1),
			Burst:    cfg.BurstMin + rng.Int63n(cfg.BurstMax-cfg.BurstMin+1),
			Priority: cfg.PriorityMin + rng.Intn(cfg.PriorityMax-cfg.PriorityMin+1),
		}
	}

	// pids are assigned after the arrival sort so that FIFO's stable
	// tie-break (admission order) matches ascending pid order
	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Arrival < specs[j].Arrival
	})
	for i := range specs {
		specs[i].PID = i + 1
	}
	return specs, nil
}
