package ptr

import "testing"

func TestTo(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		s := "SME (30 DAYS)"
		p := To(s)
		if p == nil {
			t.Fatal("Expected non-nil pointer")
		}
		if *p != s {
			t.Errorf("Expected %q, got %q", s, *p)
		}
		if p == &s {
			t.Error("Expected different address")
		}
	})

	t.Run("custom type", func(t *testing.T) {
		type Network string
		n := Network("MTN")
		if p := To(n); *p != n {
			t.Errorf("Expected %q, got %q", n, *p)
		}
	})
}

func TestFloat64(t *testing.T) {
	p := Float64(345)
	if p == nil || *p != 345 {
		t.Errorf("Expected 345, got %v", p)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *float64
		want bool
	}{
		{"both absent", nil, nil, true},
		{"one absent", Float64(0), nil, false},
		{"other absent", nil, Float64(0), false},
		{"equal", Float64(310), Float64(310), true},
		{"different", Float64(310), Float64(425), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMin(t *testing.T) {
	if got := Min(nil, nil); got != nil {
		t.Errorf("Expected nil, got %v", *got)
	}
	if got := Min(nil, Float64(350)); got == nil || *got != 350 {
		t.Errorf("Expected 350, got %v", got)
	}
	if got := Min(Float64(350), nil); got == nil || *got != 350 {
		t.Errorf("Expected 350, got %v", got)
	}
	if got := Min(Float64(400), Float64(350)); *got != 350 {
		t.Errorf("Expected 350, got %v", *got)
	}
	if got := Min(Float64(0), Float64(350)); *got != 0 {
		t.Errorf("Expected 0 to be kept as a real price, got %v", *got)
	}
}
