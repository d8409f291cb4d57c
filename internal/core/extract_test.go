package core

import "testing"

func TestExtractAmountCents(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"Gastei R$12,50 no mercado", 1250, true},
		{"Gastei 12.50 no mercado", 1250, true},
		{"12,50 reais de uber", 1250, true},
		{"paguei 50 reais na padaria", 5000, true},
		{"$ 7 de estacionamento", 700, true},
		{"R$ 19.995 de consulta", 2000, true}, // half-up on the third decimal
		{"sem valor aqui", 0, false},
		{"", 0, false},
		{"gastei zero: 0 reais", 0, false},
		{"custou 0,00", 0, false},
	}
	for _, tc := range cases {
		got, ok := ExtractAmountCents(tc.in)
		if ok != tc.ok {
			t.Fatalf("%q: ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && got != tc.cents {
			t.Fatalf("%q: got %d cents, want %d", tc.in, got, tc.cents)
		}
	}
}

func TestExtractAmountCentsFirstTokenWins(t *testing.T) {
	// Only the first number in scan order is taken.
	got, ok := ExtractAmountCents("gastei 10 reais e depois 25 reais")
	if !ok || got != 1000 {
		t.Fatalf("got %d (ok=%v), want 1000", got, ok)
	}
}
