package params

import (
	"errors"
	"testing"

	"github.com/newmokha/poseidon-sponge/internal/poseidon-sponge/core"
)

// mustElement parses a decimal element, failing the test on bad input.
func mustElement(t testing.TB, s string) core.Element {
	t.Helper()
	e, err := core.NewElementFromString(s)
	if err != nil {
		t.Fatalf("bad element literal %q: %v", s, err)
	}
	return e
}

// newCustomParameters builds a small well-formed table for registry tests.
func newCustomParameters(rate int) *core.PoseidonParameters {
	width := rate + 1
	ark := make([][]core.Element, 3)
	for r := range ark {
		ark[r] = make([]core.Element, width)
		for i := range ark[r] {
			ark[r][i] = core.NewElement(uint64(r + i + 1))
		}
	}
	mds := make([][]core.Element, width)
	for j := range mds {
		mds[j] = make([]core.Element, width)
		for k := range mds[j] {
			mds[j][k] = core.NewElement(uint64(j*width + k + 1))
		}
	}
	return &core.PoseidonParameters{
		RoundConstants: ark,
		MDSMatrix:      mds,
		Alpha:          3,
		RoundsFull:     2,
		RoundsPartial:  1,
		Rate:           rate,
		Capacity:       1,
	}
}

// TestEmbeddedTablesValidate checks every registered default table passes
// structural validation and has the expected shape.
func TestEmbeddedTablesValidate(t *testing.T) {
	shapes := []struct {
		rate     int
		schedule Schedule
		alpha    uint64
		rounds   int
	}{
		{2, ScheduleStandard, 17, 39},
		{4, ScheduleStandard, 17, 39},
		{8, ScheduleStandard, 17, 39},
		{2, ScheduleWeights, 257, 21},
		{4, ScheduleWeights, 257, 21},
		{8, ScheduleWeights, 257, 21},
	}
	for _, tt := range shapes {
		p, err := DefaultWithSchedule(tt.rate, tt.schedule)
		if err != nil {
			t.Fatalf("rate %d %s: %v", tt.rate, tt.schedule, err)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("rate %d %s: Validate: %v", tt.rate, tt.schedule, err)
		}
		if p.Rate != tt.rate || p.Capacity != 1 {
			t.Errorf("rate %d %s: got rate %d capacity %d", tt.rate, tt.schedule, p.Rate, p.Capacity)
		}
		if p.Alpha != tt.alpha {
			t.Errorf("rate %d %s: alpha = %d, want %d", tt.rate, tt.schedule, p.Alpha, tt.alpha)
		}
		if p.Rounds() != tt.rounds {
			t.Errorf("rate %d %s: rounds = %d, want %d", tt.rate, tt.schedule, p.Rounds(), tt.rounds)
		}
	}
}

// TestDefaultSharesOneTable checks repeated lookups return one pointer, so
// all sponges share the same constants.
func TestDefaultSharesOneTable(t *testing.T) {
	first, err := Default(2)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Default(2)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("Default(2) returned distinct pointers")
	}

	viaSchedule, err := DefaultWithSchedule(2, ScheduleStandard)
	if err != nil {
		t.Fatal(err)
	}
	if first != viaSchedule {
		t.Error("Default and DefaultWithSchedule disagree for the standard schedule")
	}
}

// TestDefaultUnknownLookups checks missing rates and schedules return the
// sentinel error.
func TestDefaultUnknownLookups(t *testing.T) {
	if _, err := Default(3); !errors.Is(err, ErrNoDefaultParameters) {
		t.Errorf("Default(3) error = %v, want ErrNoDefaultParameters", err)
	}
	if _, err := Default(0); !errors.Is(err, ErrNoDefaultParameters) {
		t.Errorf("Default(0) error = %v, want ErrNoDefaultParameters", err)
	}
	if _, err := DefaultWithSchedule(2, Schedule("turbo")); !errors.Is(err, ErrNoDefaultParameters) {
		t.Errorf("unknown schedule error = %v, want ErrNoDefaultParameters", err)
	}
}

// TestEmbeddedTableKnownEntries pins the first derived constant of each
// table and the first matrix entry of the rate-2 table against the Grain
// LFSR reference values.
func TestEmbeddedTableKnownEntries(t *testing.T) {
	tests := []struct {
		rate     int
		schedule Schedule
		ark00    string
	}{
		{2, ScheduleStandard, "1370773116404421539888881648821194629032979299946048429076387284005101684675"},
		{4, ScheduleStandard, "1938618153915392443680844598029810201246194507135996901458264098669274389515"},
		{8, ScheduleStandard, "2806882019829952968543507592167502510188638053153774646465991640201889135551"},
		{2, ScheduleWeights, "1437553550906659983785289949566121426573444168096671364956005111200187784882"},
	}
	for _, tt := range tests {
		p, err := DefaultWithSchedule(tt.rate, tt.schedule)
		if err != nil {
			t.Fatalf("rate %d %s: %v", tt.rate, tt.schedule, err)
		}
		want := mustElement(t, tt.ark00)
		if got := p.RoundConstants[0][0]; !got.Equal(&want) {
			t.Errorf("rate %d %s: ark[0][0] = %s, want %s", tt.rate, tt.schedule, got.String(), tt.ark00)
		}
	}

	p, err := Default(2)
	if err != nil {
		t.Fatal(err)
	}
	wantMDS := mustElement(t, "6093452032963406658309134825240609333033222270199073508119142384975416392638")
	if got := p.MDSMatrix[0][0]; !got.Equal(&wantMDS) {
		t.Errorf("rate 2 mds[0][0] = %s, want %s", got.String(), wantMDS.String())
	}
}

// TestCanonicalDigests checks one-shot digests of the embedded tables
// against precomputed known-answer vectors.
func TestCanonicalDigests(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		schedule Schedule
		inputs   []core.Element
		want     string
	}{
		{
			"rate 2 pair", 2, ScheduleStandard, core.Elements(1, 2),
			"2583689449389277015190969270607405416361985601581282452547069127520564162726",
		},
		{
			"rate 2 empty", 2, ScheduleStandard, nil,
			"933733638681902971366883597456330506627704278683959399109999726127624278648",
		},
		{
			"rate 2 spanning blocks", 2, ScheduleStandard, core.Elements(1, 2, 3, 4, 5),
			"7590688815654470098639318114224940694643287506594671679740150304196208857146",
		},
		{
			"rate 4 triple", 4, ScheduleStandard, core.Elements(1, 2, 3),
			"7323771819455564955439390163212720689361418682502960931642524067860009273967",
		},
		{
			"rate 8 five", 8, ScheduleStandard, core.Elements(1, 2, 3, 4, 5),
			"6132651200637471324779761187221571041057538620989828918231946654104424412451",
		},
		{
			"rate 2 weights pair", 2, ScheduleWeights, core.Elements(1, 2),
			"6548738638393587061636231727776146805948448443749620576014983611585543865863",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DefaultWithSchedule(tt.rate, tt.schedule)
			if err != nil {
				t.Fatal(err)
			}
			hash := core.NewPoseidonHash(p)
			want := mustElement(t, tt.want)
			if got := hash.Evaluate(tt.inputs); !got.Equal(&want) {
				t.Errorf("digest = %s, want %s", got.String(), tt.want)
			}
		})
	}
}

// TestCanonicalPermutation checks a single rate-2 permutation of the state
// [0, 1, 2] against the precomputed vector.
func TestCanonicalPermutation(t *testing.T) {
	p, err := Default(2)
	if err != nil {
		t.Fatal(err)
	}

	state := core.NewSpongeState(p.Capacity, p.Rate)
	state.SetElement(1, core.NewElement(1))
	state.SetElement(2, core.NewElement(2))
	core.Permute(p, state)

	want := []string{
		"5216689414924665093360873839860275524502896137518464311352057312432357118847",
		"2583689449389277015190969270607405416361985601581282452547069127520564162726",
		"338464239194185133612030781462324263310360412887310290151781798017857562721",
	}
	for i, w := range want {
		expected := mustElement(t, w)
		if got := state.Element(i); !got.Equal(&expected) {
			t.Errorf("state[%d] = %s, want %s", i, got.String(), w)
		}
	}
}

// TestRegister checks custom tables can be installed and looked up, and
// malformed tables are rejected before touching the registry.
func TestRegister(t *testing.T) {
	const custom = Schedule("custom")

	p := newCustomParameters(5)
	if err := Register(custom, p); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := DefaultWithSchedule(5, custom)
	if err != nil {
		t.Fatalf("lookup after Register: %v", err)
	}
	if got != p {
		t.Error("lookup returned a different pointer than was registered")
	}

	if rates := Rates(custom); len(rates) != 1 || rates[0] != 5 {
		t.Errorf("Rates(custom) = %v, want [5]", rates)
	}

	bad := newCustomParameters(5)
	bad.Alpha = 4
	if err := Register(custom, bad); err == nil {
		t.Error("Register accepted an even alpha")
	}
	if again, _ := DefaultWithSchedule(5, custom); again != p {
		t.Error("failed Register replaced the previous entry")
	}
}

// TestRates checks the embedded schedules expose their rates in order.
func TestRates(t *testing.T) {
	for _, schedule := range []Schedule{ScheduleStandard, ScheduleWeights} {
		rates := Rates(schedule)
		if len(rates) != 3 || rates[0] != 2 || rates[1] != 4 || rates[2] != 8 {
			t.Errorf("Rates(%s) = %v, want [2 4 8]", schedule, rates)
		}
	}

	if rates := Rates(Schedule("missing")); len(rates) != 0 {
		t.Errorf("Rates(missing) = %v, want empty", rates)
	}
}
