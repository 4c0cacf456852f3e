package diplomacy

import (
	"errors"
	"reflect"
	"testing"
)

func mustParse(t *testing.T, text string) []Order {
	t.Helper()
	orders, err := ParseNotation(text)
	if err != nil {
		t.Fatalf("ParseNotation: %v", err)
	}
	return orders
}

func TestParseNotation_SingleOrders(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Order
	}{
		{
			name:  "explicit hold",
			input: "Italy:\nA Venice Hold",
			want:  Order{Power: Italy, Unit: Army, Location: "ven", Kind: KindHold},
		},
		{
			name:  "implicit hold",
			input: "Italy:\nA Venice",
			want:  Order{Power: Italy, Unit: Army, Location: "ven", Kind: KindHold},
		},
		{
			name:  "attack",
			input: "England:\nA Brest - London",
			want:  Order{Power: England, Unit: Army, Location: "bre", Kind: KindAttack, Destination: "lon"},
		},
		{
			name:  "attack via convoy",
			input: "England:\nA Brest - London via Convoy",
			want:  Order{Power: England, Unit: Army, Location: "bre", Kind: KindAttack, Destination: "lon"},
		},
		{
			name:  "multi-word locations",
			input: "France:\nF Mid-Atlantic Ocean - North Atlantic Ocean",
			want:  Order{Power: France, Unit: Fleet, Location: "mid", Kind: KindAttack, Destination: "nat"},
		},
		{
			name:  "coast qualified",
			input: "Russia:\nF St Petersburg(sc) - Gulf of Bothnia",
			want:  Order{Power: Russia, Unit: Fleet, Location: "stp-sc", Kind: KindAttack, Destination: "bot"},
		},
		{
			name:  "bulgaria east coast",
			input: "Turkey:\nF Black Sea - Bulgaria(ec)",
			want:  Order{Power: Turkey, Unit: Fleet, Location: "bla", Kind: KindAttack, Destination: "bul-ec"},
		},
		{
			name:  "extra whitespace",
			input: "  Germany:  \n\tA   Ruhr   -   Belgium  ",
			want:  Order{Power: Germany, Unit: Army, Location: "ruh", Kind: KindAttack, Destination: "bel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.input)
			if len(got) != 1 {
				t.Fatalf("expected 1 order, got %d", len(got))
			}
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("got %+v, want %+v", got[0], tt.want)
			}
		})
	}
}

func TestParseNotation_SupportMove(t *testing.T) {
	orders := mustParse(t, "Italy:\nF Rome Supports A Apulia - Venice\nA Apulia - Venice")
	want := Order{
		Power: Italy, Unit: Fleet, Location: "rom", Kind: KindSupport,
		Assisted: &Order{Power: Italy, Unit: Army, Location: "apu", Kind: KindAttack, Destination: "ven"},
	}
	if !reflect.DeepEqual(orders[0], want) {
		t.Errorf("got %+v, want %+v", orders[0], want)
	}
}

func TestParseNotation_SupportHoldWithoutKeyword(t *testing.T) {
	orders := mustParse(t, "England:\nF English Channel Hold\nGermany:\nF Belgium Supports F English Channel")
	got := orders[1]
	if got.Kind != KindSupport {
		t.Fatalf("expected support, got %v", got.Kind)
	}
	if got.Assisted == nil {
		t.Fatal("expected assisted order")
	}
	want := Order{Power: England, Unit: Fleet, Location: "eng", Kind: KindHold}
	if !reflect.DeepEqual(*got.Assisted, want) {
		t.Errorf("assisted: got %+v, want %+v", *got.Assisted, want)
	}
}

func TestParseNotation_Convoy(t *testing.T) {
	orders := mustParse(t, "England:\nA Brest - London\nF English Channel Convoys A Brest - London")
	want := Order{
		Power: England, Unit: Fleet, Location: "eng", Kind: KindConvoy,
		Assisted: &Order{Power: England, Unit: Army, Location: "bre", Kind: KindAttack, Destination: "lon"},
	}
	if !reflect.DeepEqual(orders[1], want) {
		t.Errorf("got %+v, want %+v", orders[1], want)
	}
}

func TestParseNotation_AssistedCountryIsHeaderScoped(t *testing.T) {
	// The supporting order appears before the header of the unit it supports.
	input := `Austria:
A Tyrolia Supports A Venice
A Trieste - Venice
Italy:
A Venice Hold
F Rome Supports A Trieste - Venice`

	orders := mustParse(t, input)
	if len(orders) != 4 {
		t.Fatalf("expected 4 orders, got %d", len(orders))
	}

	if orders[0].Power != Austria || orders[0].Assisted.Power != Italy {
		t.Errorf("tyr support: power %s, assisted power %s", orders[0].Power, orders[0].Assisted.Power)
	}
	if orders[3].Power != Italy || orders[3].Assisted.Power != Austria {
		t.Errorf("rom support: power %s, assisted power %s", orders[3].Power, orders[3].Assisted.Power)
	}
}

func TestParseNotation_HeadersAndBlankLines(t *testing.T) {
	input := "\n\nGermany:\n\nA Berlin Hold\n   \nA Munich Hold\n\nFrance:\nA Paris Hold\n"
	orders := mustParse(t, input)
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	wantPowers := []Power{Germany, Germany, France}
	for i, o := range orders {
		if o.Power != wantPowers[i] {
			t.Errorf("order %d: power %s, want %s", i, o.Power, wantPowers[i])
		}
		if o.Kind != KindHold {
			t.Errorf("order %d: kind %v, want hold", i, o.Kind)
		}
	}
}

func TestParseNotation_Empty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "Italy:\n"} {
		orders, err := ParseNotation(input)
		if err != nil {
			t.Fatalf("ParseNotation(%q): %v", input, err)
		}
		if len(orders) != 0 {
			t.Errorf("ParseNotation(%q): expected no orders, got %d", input, len(orders))
		}
	}
}

func TestParseNotation_HoldOrderCount(t *testing.T) {
	input := `Austria:
A Vienna
A Budapest Hold
F Trieste
Russia:
F St Petersburg(sc) Hold
A Moscow
A Warsaw Hold
F Sevastopol`

	orders := mustParse(t, input)
	if len(orders) != 7 {
		t.Fatalf("expected 7 orders, got %d", len(orders))
	}
	for _, o := range orders {
		if o.Kind != KindHold {
			t.Errorf("%s: expected hold, got %v", o.Describe(), o.Kind)
		}
	}
}

func TestParseNotation_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		line     int
	}{
		{"order before header", "A Venice Hold\nItaly:", ErrMissingContext, 1},
		{"unknown location", "Italy:\nA Atlantis Hold", ErrUnknownToken, 2},
		{"unknown destination", "Italy:\nA Venice - Atlantis", ErrUnknownToken, 2},
		{"unknown unit", "Italy:\nX Venice Hold", ErrUnknownToken, 2},
		{"missing destination", "Italy:\nA Venice -", ErrUnknownToken, 2},
		{"missing location", "Italy:\nA", ErrUnknownToken, 2},
		{"lowercase header is an order", "Italy:\nitaly:\nA Venice", ErrUnknownToken, 2},
		{"unknown header before any header", "Atlantis:\nItaly:\nA Venice", ErrMissingContext, 1},
		{"support of support", "Italy:\nA Venice Hold\nA Rome Hold\nF Naples Supports A Rome Supports A Venice", ErrMalformedAssistedOrder, 4},
		{"convoy of convoy", "Italy:\nF Ionian Sea Hold\nF Tyrrhenian Sea Convoys F Ionian Sea Convoys A Naples - Tunis", ErrMalformedAssistedOrder, 3},
		{"empty support", "Italy:\nF Rome Supports", ErrMalformedAssistedOrder, 2},
		{"supported unit not ordered", "Italy:\nF Rome Supports A Apulia - Venice", ErrMissingContext, 2},
		{"bare via convoy", "England:\nA Brest - via Convoy", ErrUnknownToken, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNotation(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("expected %v, got %v", tt.sentinel, err)
			}
			var le *LineError
			if !errors.As(err, &le) {
				t.Fatalf("expected LineError, got %T", err)
			}
			if le.Line != tt.line {
				t.Errorf("line: got %d, want %d", le.Line, tt.line)
			}
		})
	}
}

func TestParseNotation_UnknownTokenNamesLocation(t *testing.T) {
	_, err := ParseNotation("Italy:\nA Venice - Atlantis Ocean")
	var ute *UnknownTokenError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnknownTokenError, got %v", err)
	}
	if ute.Table != TableLocation || ute.Raw != "Atlantis Ocean" {
		t.Errorf("got table %q raw %q", ute.Table, ute.Raw)
	}
	if got := err.Error(); got != `notation: line 2: unknown location "Atlantis Ocean"` {
		t.Errorf("unexpected message: %s", got)
	}
}

func TestParseNotation_UnknownAssistedLocation(t *testing.T) {
	_, err := ParseNotation("Italy:\nF Rome Supports A Atlantis")
	var ute *UnknownTokenError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnknownTokenError, got %v", err)
	}
	if ute.Raw != "Atlantis" {
		t.Errorf("raw: got %q", ute.Raw)
	}
}

func TestParseNotation_TrailingTokensAfterHoldIgnored(t *testing.T) {
	orders := mustParse(t, "Italy:\nA Venice Hold please")
	want := Order{Power: Italy, Unit: Army, Location: "ven", Kind: KindHold}
	if !reflect.DeepEqual(orders[0], want) {
		t.Errorf("got %+v, want %+v", orders[0], want)
	}
}

func TestParseNotation_LastHeaderWinsForRepeatedLocation(t *testing.T) {
	// Two units listed at the same location: the later header owns it.
	input := "Austria:\nA Trieste Hold\nItaly:\nA Trieste Hold\nF Venice Supports A Trieste"
	orders := mustParse(t, input)
	if orders[0].Power != Austria {
		t.Errorf("first order power: got %s, want austria", orders[0].Power)
	}
	if got := orders[2].Assisted.Power; got != Italy {
		t.Errorf("assisted power: got %s, want italy", got)
	}
}

func TestOrderTypeIndex(t *testing.T) {
	tests := []struct {
		tokens []string
		want   int
	}{
		{[]string{"A", "Venice", "Hold"}, 2},
		{[]string{"A", "Venice"}, 2},
		{[]string{"F", "Mid-Atlantic", "Ocean", "-", "Spain(nc)"}, 3},
		{[]string{"F", "Rome", "Supports", "A", "Apulia", "-", "Venice"}, 2},
		{[]string{"-", "Venice"}, 2},
	}
	for _, tt := range tests {
		if got := orderTypeIndex(tt.tokens); got != tt.want {
			t.Errorf("orderTypeIndex(%v) = %d, want %d", tt.tokens, got, tt.want)
		}
	}
}
