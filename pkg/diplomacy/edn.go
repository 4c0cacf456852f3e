package diplomacy

import "strings"

// ednResultPlaceholder is paired with every order in the EDN orders map. The
// rules engine fills in these fields during adjudication.
const ednResultPlaceholder = "#{[:interfered? :interferer :rule]}"

// OrderVector flattens an order into its field tags: power, unit, location
// and kind, followed by the assisted order's tags for supports and convoys,
// or the destination for attacks.
func OrderVector(o Order) []string {
	v := make([]string, 0, 9)
	return appendOrderVector(v, o)
}

func appendOrderVector(v []string, o Order) []string {
	v = append(v, string(o.Power), o.Unit.String(), string(o.Location), o.Kind.String())
	if o.Assisted != nil {
		v = appendOrderVector(v, *o.Assisted)
	}
	if o.Destination != "" {
		v = append(v, string(o.Destination))
	}
	return v
}

// FormatEDN renders orders as a Clojure EDN map from order vector to the
// result placeholder set, one entry per line in input order:
//
//	{[:italy :army :ven :hold] #{[:interfered? :interferer :rule]}
//	[:italy :fleet :rom :support :italy :army :apu :attack :ven] #{[:interfered? :interferer :rule]}}
func FormatEDN(orders []Order) string {
	var b strings.Builder
	b.Grow(len(orders) * 80)

	b.WriteByte('{')
	for i, o := range orders {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeEDNVector(&b, OrderVector(o))
		b.WriteByte(' ')
		b.WriteString(ednResultPlaceholder)
	}
	b.WriteByte('}')
	return b.String()
}

// writeEDNVector writes tags as a vector of keywords: [:a :b :c].
func writeEDNVector(b *strings.Builder, tags []string) {
	b.WriteByte('[')
	for i, tag := range tags {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(':')
		b.WriteString(tag)
	}
	b.WriteByte(']')
}
