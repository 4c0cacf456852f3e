package diplomacy

import (
	"encoding/json"
	"fmt"
)

// OrderKind represents the type of order a unit can be given.
type OrderKind int

const (
	KindHold    OrderKind = iota // Unit holds position
	KindAttack                   // Unit moves to another location
	KindSupport                  // Unit supports another unit's hold or attack
	KindConvoy                   // Fleet convoys an army across sea
)

func (k OrderKind) String() string {
	switch k {
	case KindHold:
		return "hold"
	case KindAttack:
		return "attack"
	case KindSupport:
		return "support"
	case KindConvoy:
		return "convoy"
	default:
		return "unknown"
	}
}

// ParseOrderKind converts a kind tag ("hold", "attack", ...) to an OrderKind.
func ParseOrderKind(s string) (OrderKind, bool) {
	switch s {
	case "hold":
		return KindHold, true
	case "attack":
		return KindAttack, true
	case "support":
		return KindSupport, true
	case "convoy":
		return KindConvoy, true
	}
	return KindHold, false
}

// orderKeywords is the lookup table for order-type tokens in standard notation.
var orderKeywords = map[string]OrderKind{
	"Hold":     KindHold,
	"-":        KindAttack,
	"Supports": KindSupport,
	"Convoys":  KindConvoy,
}

// Order represents a single order issued to a unit.
//
// Destination is set only for attacks. Assisted is set only for supports and
// convoys and names the order being supported or convoyed; an assisted order
// is always a hold or an attack and never carries an Assisted order itself.
type Order struct {
	Power    Power
	Unit     UnitType
	Location Location
	Kind     OrderKind

	Destination Location
	Assisted    *Order
}

// Describe returns the order in standard notation using location codes,
// e.g. "F rom Supports A apu - ven".
func (o *Order) Describe() string {
	base := fmt.Sprintf("%s %s", o.Unit.Letter(), o.Location)
	switch o.Kind {
	case KindHold:
		return base + " Hold"
	case KindAttack:
		return fmt.Sprintf("%s - %s", base, o.Destination)
	case KindSupport, KindConvoy:
		verb := "Supports"
		if o.Kind == KindConvoy {
			verb = "Convoys"
		}
		if o.Assisted == nil {
			return fmt.Sprintf("%s %s ???", base, verb)
		}
		return fmt.Sprintf("%s %s %s", base, verb, o.Assisted.Describe())
	default:
		return base + " ???"
	}
}

// orderJSON is the wire shape of an Order.
type orderJSON struct {
	Power       string     `json:"power"`
	Unit        string     `json:"unit"`
	Location    string     `json:"location"`
	Kind        string     `json:"kind"`
	Destination string     `json:"destination,omitempty"`
	Assisted    *orderJSON `json:"assisted,omitempty"`
}

func (o Order) toJSON() *orderJSON {
	j := &orderJSON{
		Power:       string(o.Power),
		Unit:        o.Unit.String(),
		Location:    string(o.Location),
		Kind:        o.Kind.String(),
		Destination: string(o.Destination),
	}
	if o.Assisted != nil {
		j.Assisted = o.Assisted.toJSON()
	}
	return j
}

func (j *orderJSON) toOrder(depth int) (Order, error) {
	power, ok := ParsePower(j.Power)
	if !ok {
		return Order{}, fmt.Errorf("invalid power %q", j.Power)
	}
	unit, ok := ParseUnitType(j.Unit)
	if !ok {
		return Order{}, fmt.Errorf("invalid unit %q", j.Unit)
	}
	kind, ok := ParseOrderKind(j.Kind)
	if !ok {
		return Order{}, fmt.Errorf("invalid kind %q", j.Kind)
	}
	o := Order{
		Power:       power,
		Unit:        unit,
		Location:    Location(j.Location),
		Kind:        kind,
		Destination: Location(j.Destination),
	}
	if !o.Location.Valid() {
		return Order{}, fmt.Errorf("invalid location %q", j.Location)
	}
	if o.Destination != "" && !o.Destination.Valid() {
		return Order{}, fmt.Errorf("invalid destination %q", j.Destination)
	}
	if j.Assisted != nil {
		if depth > 0 {
			return Order{}, &MalformedAssistedOrderError{Kind: kind}
		}
		aux, err := j.Assisted.toOrder(depth + 1)
		if err != nil {
			return Order{}, fmt.Errorf("assisted: %w", err)
		}
		if aux.Kind != KindHold && aux.Kind != KindAttack {
			return Order{}, &MalformedAssistedOrderError{Kind: aux.Kind}
		}
		o.Assisted = &aux
	}
	return o, nil
}

// MarshalJSON encodes the order with string tags for every field.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.toJSON())
}

// UnmarshalJSON decodes an order written by MarshalJSON, rejecting unknown
// tags and assisted orders nested more than one level deep.
func (o *Order) UnmarshalJSON(data []byte) error {
	var j orderJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	decoded, err := j.toOrder(0)
	if err != nil {
		return err
	}
	*o = decoded
	return nil
}
