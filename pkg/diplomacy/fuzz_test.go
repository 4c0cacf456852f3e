package diplomacy

import (
	"errors"
	"strings"
	"testing"
)

// FuzzParseNotation verifies the parser never panics and only fails with the
// documented error kinds.
func FuzzParseNotation(f *testing.F) {
	f.Add("Italy:\nA Venice Hold")
	f.Add("Italy:\nF Rome Supports A Apulia - Venice\nA Apulia - Venice")
	f.Add("England:\nF English Channel Convoys A Brest - London\nA Brest - London via Convoy")
	f.Add("Germany:\n-\nSupports")
	f.Add("A - - -")
	f.Add("Italy:\nF Rome Supports")

	f.Fuzz(func(t *testing.T, input string) {
		orders, err := ParseNotation(input)
		if err != nil {
			if !errors.Is(err, ErrUnknownToken) &&
				!errors.Is(err, ErrMissingContext) &&
				!errors.Is(err, ErrMalformedAssistedOrder) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}

		for _, o := range orders {
			if !o.Power.Valid() || !o.Location.Valid() {
				t.Fatalf("invalid order %+v", o)
			}
			if (o.Kind == KindAttack) != (o.Destination != "") {
				t.Fatalf("destination mismatch in %+v", o)
			}
			isAssisting := o.Kind == KindSupport || o.Kind == KindConvoy
			if isAssisting != (o.Assisted != nil) {
				t.Fatalf("assisted mismatch in %+v", o)
			}
			if a := o.Assisted; a != nil && (a.Assisted != nil || (a.Kind != KindHold && a.Kind != KindAttack)) {
				t.Fatalf("assisted order nested too deep: %+v", o)
			}
		}

		edn := FormatEDN(orders)
		if !strings.HasPrefix(edn, "{") || !strings.HasSuffix(edn, "}") {
			t.Fatalf("malformed EDN: %s", edn)
		}
	})
}
