package diplomacy

import "testing"

func TestFormatDSON(t *testing.T) {
	tests := []struct {
		name   string
		orders []Order
		want   string
	}{
		{
			name:   "hold",
			orders: []Order{{Power: Austria, Unit: Army, Location: "vie", Kind: KindHold}},
			want:   "A vie H",
		},
		{
			name:   "move",
			orders: []Order{{Power: Austria, Unit: Army, Location: "bud", Kind: KindAttack, Destination: "rum"}},
			want:   "A bud - rum",
		},
		{
			name: "support hold",
			orders: []Order{{Power: Austria, Unit: Army, Location: "tyr", Kind: KindSupport,
				Assisted: &Order{Power: Austria, Unit: Army, Location: "vie", Kind: KindHold}}},
			want: "A tyr S A vie H",
		},
		{
			name: "support move",
			orders: []Order{{Power: Austria, Unit: Army, Location: "gal", Kind: KindSupport,
				Assisted: &Order{Power: Austria, Unit: Army, Location: "bud", Kind: KindAttack, Destination: "rum"}}},
			want: "A gal S A bud - rum",
		},
		{
			name: "convoy with renamed provinces",
			orders: []Order{{Power: France, Unit: Fleet, Location: "mid", Kind: KindConvoy,
				Assisted: &Order{Power: France, Unit: Army, Location: "bre", Kind: KindAttack, Destination: "spa"}}},
			want: "F mao C A bre - spa",
		},
		{
			name:   "split coast",
			orders: []Order{{Power: England, Unit: Fleet, Location: "nrg", Kind: KindAttack, Destination: "stp-nc"}},
			want:   "F nrg - stp/nc",
		},
		{
			name: "multiple orders",
			orders: []Order{
				{Power: Italy, Unit: Fleet, Location: "tyn", Kind: KindAttack, Destination: "wes"},
				{Power: England, Unit: Fleet, Location: "nat", Kind: KindHold},
			},
			want: "F tys - wes ; F nao H",
		},
		{
			name:   "empty",
			orders: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDSON(tt.orders)
			if got != tt.want {
				t.Errorf("FormatDSON:\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}
