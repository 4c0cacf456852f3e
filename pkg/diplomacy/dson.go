package diplomacy

import "strings"

// dsonProvinces lists the provinces whose DSON id differs from the DATC code.
var dsonProvinces = map[string]string{
	"mid": "mao",
	"nat": "nao",
	"tyn": "tys",
}

// FormatDSON serializes orders in the compact DSON line format used by
// engines and bots. Multiple orders are separated by " ; ".
//
//	A ven H ; A bre - lon ; F rom S A apu - ven ; F eng C A bre - lon
func FormatDSON(orders []Order) string {
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		parts = append(parts, formatSingleDSON(o))
	}
	return strings.Join(parts, " ; ")
}

// formatSingleDSON formats one Order to its DSON text representation.
func formatSingleDSON(o Order) string {
	var b strings.Builder
	b.Grow(32)

	writeDSONUnit(&b, o.Unit, o.Location)

	switch o.Kind {
	case KindHold:
		b.WriteString(" H")

	case KindAttack:
		b.WriteString(" - ")
		writeDSONLocation(&b, o.Destination)

	case KindSupport:
		b.WriteString(" S ")
		if o.Assisted == nil {
			break
		}
		writeDSONUnit(&b, o.Assisted.Unit, o.Assisted.Location)
		if o.Assisted.Kind == KindAttack {
			b.WriteString(" - ")
			writeDSONLocation(&b, o.Assisted.Destination)
		} else {
			b.WriteString(" H")
		}

	case KindConvoy:
		b.WriteString(" C ")
		if o.Assisted == nil {
			break
		}
		writeDSONUnit(&b, o.Assisted.Unit, o.Assisted.Location)
		b.WriteString(" - ")
		writeDSONLocation(&b, o.Assisted.Destination)
	}

	return b.String()
}

// writeDSONUnit writes "A vie" or "F stp/nc" to the builder.
func writeDSONUnit(b *strings.Builder, ut UnitType, loc Location) {
	b.WriteString(ut.Letter())
	b.WriteByte(' ')
	writeDSONLocation(b, loc)
}

// writeDSONLocation writes a DSON location like "vie" or "stp/nc".
func writeDSONLocation(b *strings.Builder, loc Location) {
	prov := loc.Province()
	if id, ok := dsonProvinces[prov]; ok {
		prov = id
	}
	b.WriteString(prov)
	if coast := loc.Coast(); coast != NoCoast {
		b.WriteByte('/')
		b.WriteString(string(coast))
	}
}
