package poseidonsponge

import (
	"errors"
	"testing"
)

func TestHasherCreation(t *testing.T) {
	t.Run("NilConfigUsesDefaults", func(t *testing.T) {
		hasher, err := NewHasher(nil)
		if err != nil {
			t.Fatalf("NewHasher(nil): %v", err)
		}
		if hasher == nil {
			t.Fatal("NewHasher returned nil hasher")
		}
	})

	t.Run("UnknownRate", func(t *testing.T) {
		_, err := NewHasher(DefaultConfig().WithRate(3))
		if err == nil {
			t.Fatal("NewHasher accepted an unregistered rate")
		}
		if !errors.Is(err, &HashError{Code: ErrNoParameters}) {
			t.Errorf("error = %v, want code ErrNoParameters", err)
		}
	})

	t.Run("UnknownSchedule", func(t *testing.T) {
		_, err := NewHasher(DefaultConfig().WithSchedule("turbo"))
		if !errors.Is(err, &HashError{Code: ErrNoParameters}) {
			t.Errorf("error = %v, want code ErrNoParameters", err)
		}
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		_, err := NewHasher(DefaultConfig().WithRate(-1))
		if !errors.Is(err, &HashError{Code: ErrInvalidConfig}) {
			t.Errorf("error = %v, want code ErrInvalidConfig", err)
		}

		_, err = NewHasher(DefaultConfig().WithOutputs(0))
		if !errors.Is(err, &HashError{Code: ErrInvalidConfig}) {
			t.Errorf("error = %v, want code ErrInvalidConfig", err)
		}
	})

	t.Run("NilParameters", func(t *testing.T) {
		_, err := NewHasherWithParameters(nil)
		if !errors.Is(err, &HashError{Code: ErrInvalidConfig}) {
			t.Errorf("error = %v, want code ErrInvalidConfig", err)
		}

		_, err = NewSpongeWithParameters(nil)
		if !errors.Is(err, &HashError{Code: ErrInvalidConfig}) {
			t.Errorf("error = %v, want code ErrInvalidConfig", err)
		}
	})

	t.Run("MalformedParameters", func(t *testing.T) {
		_, err := NewHasherWithParameters(&Parameters{Rate: 2, Capacity: 1, Alpha: 4})
		if !errors.Is(err, &HashError{Code: ErrInvalidConfig}) {
			t.Errorf("error = %v, want code ErrInvalidConfig", err)
		}
	})
}

func TestHasherDigests(t *testing.T) {
	t.Run("CanonicalRate2", func(t *testing.T) {
		hasher, err := NewHasher(nil)
		if err != nil {
			t.Fatal(err)
		}

		digest := hasher.Evaluate(Elements(1, 2))
		const want = "2583689449389277015190969270607405416361985601581282452547069127520564162726"
		if digest.String() != want {
			t.Errorf("digest = %s, want %s", digest.String(), want)
		}
	})

	t.Run("WeightsSchedule", func(t *testing.T) {
		hasher, err := NewHasher(DefaultConfig().WithSchedule("weights"))
		if err != nil {
			t.Fatal(err)
		}

		digest := hasher.Evaluate(Elements(1, 2))
		const want = "6548738638393587061636231727776146805948448443749620576014983611585543865863"
		if digest.String() != want {
			t.Errorf("digest = %s, want %s", digest.String(), want)
		}
	})

	t.Run("BytesMatchElement", func(t *testing.T) {
		hasher, err := NewHasher(nil)
		if err != nil {
			t.Fatal(err)
		}

		inputs := Elements(7, 11, 13)
		raw := hasher.EvaluateToBytes(inputs)
		if len(raw) != 32 {
			t.Fatalf("EvaluateToBytes returned %d bytes, want 32", len(raw))
		}

		var back Element
		back.SetBytes(raw)
		digest := hasher.Evaluate(inputs)
		if !back.Equal(&digest) {
			t.Error("byte digest does not decode to the element digest")
		}
	})
}

func TestSpongeSessions(t *testing.T) {
	t.Run("DuplexInterleaving", func(t *testing.T) {
		sponge, err := NewSponge(nil)
		if err != nil {
			t.Fatal(err)
		}

		sponge.Absorb(Elements(1, 2, 3))
		first := sponge.Squeeze(2)
		sponge.Absorb(Elements(4))
		second := sponge.Squeeze(1)

		if len(first) != 2 || len(second) != 1 {
			t.Fatalf("squeeze lengths = %d, %d", len(first), len(second))
		}

		// The same session replayed must give identical outputs.
		replay, err := NewSponge(nil)
		if err != nil {
			t.Fatal(err)
		}
		replay.Absorb(Elements(1, 2, 3))
		rFirst := replay.Squeeze(2)
		replay.Absorb(Elements(4))
		rSecond := replay.Squeeze(1)

		for i := range first {
			if !first[i].Equal(&rFirst[i]) {
				t.Errorf("replay diverged at first[%d]", i)
			}
		}
		if !second[0].Equal(&rSecond[0]) {
			t.Error("replay diverged after reabsorbing")
		}
	})

	t.Run("MatchesHasher", func(t *testing.T) {
		sponge, err := NewSponge(nil)
		if err != nil {
			t.Fatal(err)
		}
		hasher, err := NewHasher(nil)
		if err != nil {
			t.Fatal(err)
		}

		inputs := Elements(21, 22, 23)
		sponge.Absorb(inputs)
		out := sponge.Squeeze(1)

		digest := hasher.Evaluate(inputs)
		if !out[0].Equal(&digest) {
			t.Error("sponge session digest differs from the one-shot hasher")
		}
	})

	t.Run("WiderRate", func(t *testing.T) {
		sponge, err := NewSponge(DefaultConfig().WithRate(4))
		if err != nil {
			t.Fatal(err)
		}

		sponge.Absorb(Elements(1, 2, 3))
		out := sponge.Squeeze(1)
		const want = "7323771819455564955439390163212720689361418682502960931642524067860009273967"
		if out[0].String() != want {
			t.Errorf("rate-4 digest = %s, want %s", out[0].String(), want)
		}
	})
}
