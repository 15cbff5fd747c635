// Package params supplies Poseidon parameter tables for the BLS12-377
// scalar field. The embedded tables were derived offline with the Grain
// LFSR procedure and are registered at init time; callers look them up by
// rate and schedule and share the returned pointer across sponges.
package params

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/core"
)

// Schedule names a family of round schedules sharing one derivation.
type Schedule string

const (
	// ScheduleStandard is the general-purpose schedule: S-box exponent 17
	// with 8 full and 31 partial rounds.
	ScheduleStandard Schedule = "standard"
	// ScheduleWeights trades a higher exponent (257) for fewer partial
	// rounds (13), which suits circuits hashing short weight vectors.
	ScheduleWeights Schedule = "weights"
)

// ErrNoDefaultParameters is returned when no table is registered for the
// requested rate and schedule.
var ErrNoDefaultParameters = errors.New("no default Poseidon parameters registered")

// defaultTable is the embedded form of one generated parameter set. The
// ark and mds limbs are in Montgomery form, ready to use without decoding.
type defaultTable struct {
	rate          int
	capacity      int
	fullRounds    int
	partialRounds int
	alpha         uint64
	ark           [][]fr.Element
	mds           [][]fr.Element
}

// build wraps an embedded table in the core representation. The constant
// slices are shared, not copied; registered tables are read-only.
func (t *defaultTable) build() *core.PoseidonParameters {
	return &core.PoseidonParameters{
		RoundConstants: t.ark,
		MDSMatrix:      t.mds,
		Alpha:          t.alpha,
		RoundsFull:     t.fullRounds,
		RoundsPartial:  t.partialRounds,
		Rate:           t.rate,
		Capacity:       t.capacity,
	}
}

type tableKey struct {
	rate     int
	schedule Schedule
}

var (
	registryMu sync.RWMutex
	registry   = make(map[tableKey]*core.PoseidonParameters)
)

func init() {
	embedded := []struct {
		schedule Schedule
		table    *defaultTable
	}{
		{ScheduleStandard, &poseidonBls377Rate2},
		{ScheduleStandard, &poseidonBls377Rate4},
		{ScheduleStandard, &poseidonBls377Rate8},
		{ScheduleWeights, &poseidonBls377Rate2Weights},
		{ScheduleWeights, &poseidonBls377Rate4Weights},
		{ScheduleWeights, &poseidonBls377Rate8Weights},
	}
	for _, e := range embedded {
		p := e.table.build()
		if err := p.Validate(); err != nil {
			panic(fmt.Sprintf("embedded poseidon table rate=%d schedule=%s: %v", e.table.rate, e.schedule, err))
		}
		registry[tableKey{e.table.rate, e.schedule}] = p
	}
}

// Default returns the shared standard-schedule parameters for a rate.
func Default(rate int) (*core.PoseidonParameters, error) {
	return DefaultWithSchedule(rate, ScheduleStandard)
}

// DefaultWithSchedule returns the shared parameters for a rate and
// schedule. Every call returns the same pointer; callers must treat the
// table as read-only.
func DefaultWithSchedule(rate int, schedule Schedule) (*core.PoseidonParameters, error) {
	registryMu.RLock()
	p, ok := registry[tableKey{rate, schedule}]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("rate %d, schedule %q: %w", rate, schedule, ErrNoDefaultParameters)
	}
	return p, nil
}

// Register installs a parameter set under the given schedule, keyed by the
// set's own rate, replacing any previous entry. The table is validated
// once here and shared by pointer with every later lookup.
func Register(schedule Schedule, p *core.PoseidonParameters) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid parameters for schedule %q: %w", schedule, err)
	}
	registryMu.Lock()
	registry[tableKey{p.Rate, schedule}] = p
	registryMu.Unlock()
	return nil
}

// Rates lists the rates registered under a schedule in ascending order.
func Rates(schedule Schedule) []int {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var rates []int
	for key := range registry {
		if key.schedule == schedule {
			rates = append(rates, key.rate)
		}
	}
	sort.Ints(rates)
	return rates
}
