package diplomacy

import "strings"

// Power represents one of the seven great powers.
type Power string

const (
	Austria Power = "austria"
	England Power = "england"
	France  Power = "france"
	Germany Power = "germany"
	Italy   Power = "italy"
	Russia  Power = "russia"
	Turkey  Power = "turkey"
	Neutral Power = ""
)

// AllPowers returns the seven great powers in standard order.
func AllPowers() []Power {
	return []Power{Austria, England, France, Germany, Italy, Russia, Turkey}
}

// Valid reports whether p is one of the seven great powers.
func (p Power) Valid() bool {
	switch p {
	case Austria, England, France, Germany, Italy, Russia, Turkey:
		return true
	}
	return false
}

// powerHeaders maps DATC country header lines ("Germany:") to powers.
var powerHeaders = map[string]Power{
	"Austria:": Austria,
	"England:": England,
	"France:":  France,
	"Germany:": Germany,
	"Italy:":   Italy,
	"Russia:":  Russia,
	"Turkey:":  Turkey,
}

// headerPower returns the power named by a header line. A header is a line of
// exactly one token, a capitalized power name followed by a colon.
func headerPower(tokens []string) (Power, bool) {
	if len(tokens) != 1 {
		return Neutral, false
	}
	p, ok := powerHeaders[tokens[0]]
	return p, ok
}

// ParsePower converts a lowercase power id ("italy") to a Power.
func ParsePower(s string) (Power, bool) {
	p := Power(strings.ToLower(s))
	return p, p.Valid()
}

// UnitType represents the type of a military unit.
type UnitType int

const (
	Army UnitType = iota
	Fleet
)

func (u UnitType) String() string {
	if u == Army {
		return "army"
	}
	return "fleet"
}

// Letter returns the single-letter notation for the unit type ("A" or "F").
func (u UnitType) Letter() string {
	if u == Army {
		return "A"
	}
	return "F"
}

// unitLetters is the lookup table for the unit-type token of an order.
var unitLetters = map[string]UnitType{
	"A": Army,
	"F": Fleet,
}

// ParseUnitType converts "army"/"fleet" to a UnitType.
func ParseUnitType(s string) (UnitType, bool) {
	switch s {
	case "army":
		return Army, true
	case "fleet":
		return Fleet, true
	}
	return Army, false
}
