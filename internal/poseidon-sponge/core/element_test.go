package core

import "testing"

// TestNewElementFromString tests decimal and hex parsing along with
// rejection of malformed input.
func TestNewElementFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint64
		wantErr bool
	}{
		{"decimal", "42", 42, false},
		{"hex", "0x2a", 42, false},
		{"zero", "0", 0, false},
		{"modulus wraps to zero", "8444461749428370424248824938781546531375899335154063827935233455917409239041", 0, false},
		{"garbage", "not-a-number", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewElementFromString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewElementFromString(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewElementFromString(%q): %v", tt.input, err)
			}
			if want := NewElement(tt.want); !got.Equal(&want) {
				t.Errorf("NewElementFromString(%q) = %s, want %d", tt.input, got.String(), tt.want)
			}
		})
	}
}

// TestElementConstants checks the zero and one constructors and the field
// modulus.
func TestElementConstants(t *testing.T) {
	if z := Zero(); !z.IsZero() {
		t.Errorf("Zero() = %s", z.String())
	}
	if o, w := One(), NewElement(1); !o.Equal(&w) {
		t.Errorf("One() = %s", o.String())
	}

	m := Modulus()
	if m.BitLen() != 253 {
		t.Errorf("modulus bit length = %d, want 253", m.BitLen())
	}
	const want = "8444461749428370424248824938781546531375899335154063827935233455917409239041"
	if m.String() != want {
		t.Errorf("modulus = %s, want %s", m.String(), want)
	}
}

// TestElements checks the variadic constructor preserves order and length.
func TestElements(t *testing.T) {
	got := Elements(9, 8, 7)
	if len(got) != 3 {
		t.Fatalf("Elements returned %d values, want 3", len(got))
	}
	for i, v := range []uint64{9, 8, 7} {
		if want := NewElement(v); !got[i].Equal(&want) {
			t.Errorf("Elements[%d] = %s, want %d", i, got[i].String(), v)
		}
	}
	if empty := Elements(); len(empty) != 0 {
		t.Errorf("Elements() returned %d values, want none", len(empty))
	}
}

// TestElementToBytes checks the 32-byte big-endian encoding round-trips.
func TestElementToBytes(t *testing.T) {
	e := NewElement(258)
	raw := ElementToBytes(e)

	if len(raw) != 32 {
		t.Fatalf("encoded length = %d, want 32", len(raw))
	}
	if raw[30] != 0x01 || raw[31] != 0x02 {
		t.Errorf("tail bytes = %x %x, want 01 02", raw[30], raw[31])
	}
	for i := 0; i < 30; i++ {
		if raw[i] != 0 {
			t.Errorf("byte %d = %x, want 0", i, raw[i])
		}
	}

	var back Element
	back.SetBytes(raw)
	if !back.Equal(&e) {
		t.Errorf("round trip = %s, want %s", back.String(), e.String())
	}
}
