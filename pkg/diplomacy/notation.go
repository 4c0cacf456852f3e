package diplomacy

import (
	"fmt"
	"strings"
)

// DATC standard notation, one order per line under a country header:
//
//	Italy:
//	A Venice Hold
//	A Brest - London
//	F Rome Supports A Apulia - Venice
//	F Belgium Supports F English Channel
//	F English Channel Convoys A Brest - London
//
// Every line is split into words before it is looked at; nothing below works
// on the raw line text.

// notationLine is a non-blank input line split into words.
type notationLine struct {
	num    int // 1-based line number in the input
	tokens []string
}

// ParseNotation parses DATC standard-notation orders into one Order per
// non-header line, in input order.
//
// Parsing takes two passes. The first records which power's header precedes
// each ordered unit's location; the second builds the orders, using that
// record to find the power of every supported or convoyed unit, since
// supports and convoys name a location but never a country.
func ParseNotation(text string) ([]Order, error) {
	lines := splitNotationLines(text)

	owners, err := collectOwners(lines)
	if err != nil {
		return nil, err
	}

	p := notationParser{owners: owners}
	orders := make([]Order, 0, len(lines))
	current := Neutral
	for _, l := range lines {
		if power, ok := headerPower(l.tokens); ok {
			current = power
			continue
		}
		o, err := p.parseOrder(l.tokens, current, 0)
		if err != nil {
			return nil, &LineError{Line: l.num, Err: err}
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// splitNotationLines splits text on newlines and tokenizes each line,
// dropping lines with no words.
func splitNotationLines(text string) []notationLine {
	raw := strings.Split(text, "\n")
	lines := make([]notationLine, 0, len(raw))
	for i, r := range raw {
		tokens := strings.Fields(r)
		if len(tokens) == 0 {
			continue
		}
		lines = append(lines, notationLine{num: i + 1, tokens: tokens})
	}
	return lines
}

// collectOwners maps each ordered unit's raw location name to the power whose
// header most recently preceded it.
func collectOwners(lines []notationLine) (map[string]Power, error) {
	owners := make(map[string]Power, len(lines))
	current := Neutral
	for _, l := range lines {
		if power, ok := headerPower(l.tokens); ok {
			current = power
			continue
		}
		if current == Neutral {
			return nil, &LineError{Line: l.num, Err: &MissingContextError{}}
		}
		owners[rawLocation(l.tokens, orderTypeIndex(l.tokens))] = current
	}
	return owners, nil
}

// orderTypeIndex returns the index of the first order-type keyword after the
// unit token, or len(tokens) when there is none (an implicit Hold).
func orderTypeIndex(tokens []string) int {
	for i := 1; i < len(tokens); i++ {
		if _, ok := orderKeywords[tokens[i]]; ok {
			return i
		}
	}
	return len(tokens)
}

// rawLocation joins the words between the unit token and the order type.
func rawLocation(tokens []string, typeIdx int) string {
	if typeIdx <= 1 {
		return ""
	}
	return strings.Join(tokens[1:typeIdx], " ")
}

type notationParser struct {
	owners map[string]Power
}

// parseOrder builds an Order from a line's words. A Neutral power means the
// order is assisted and its power comes from the owners map. depth counts
// how many orders enclose this one.
func (p *notationParser) parseOrder(tokens []string, power Power, depth int) (Order, error) {
	if len(tokens) == 0 {
		return Order{}, &MalformedAssistedOrderError{Empty: true}
	}
	if power == Neutral && depth == 0 {
		return Order{}, &MissingContextError{}
	}

	typeIdx := orderTypeIndex(tokens)

	unit, ok := unitLetters[tokens[0]]
	if !ok {
		return Order{}, &UnknownTokenError{Table: TableUnitType, Raw: tokens[0]}
	}
	rawLoc := rawLocation(tokens, typeIdx)
	loc, err := LookupLocation(rawLoc)
	if err != nil {
		return Order{}, err
	}
	kind := KindHold
	if typeIdx < len(tokens) {
		// orderTypeIndex only stops on a keyword, so this lookup cannot miss.
		kind, ok = orderKeywords[tokens[typeIdx]]
		if !ok {
			return Order{}, &UnknownTokenError{Table: TableOrderType, Raw: tokens[typeIdx]}
		}
	}

	if power == Neutral {
		owner, ok := p.owners[rawLoc]
		if !ok {
			return Order{}, &MissingContextError{RawLocation: rawLoc}
		}
		power = owner
	}

	o := Order{Power: power, Unit: unit, Location: loc, Kind: kind}
	var rest []string
	if typeIdx < len(tokens) {
		rest = tokens[typeIdx+1:]
	}

	switch kind {
	case KindHold:
		return o, nil

	case KindAttack:
		// The route hint in "A Brest - London via Convoy" carries no meaning
		// for the rules engine and is dropped.
		if n := len(rest); n > 2 && rest[n-2] == "via" && rest[n-1] == "Convoy" {
			rest = rest[:n-2]
		}
		o.Destination, err = LookupLocation(strings.Join(rest, " "))
		if err != nil {
			return Order{}, err
		}
		return o, nil

	case KindSupport, KindConvoy:
		if depth > 0 {
			return Order{}, &MalformedAssistedOrderError{Kind: kind}
		}
		// A supported unit without an order type is holding:
		// "F Belgium Supports F English Channel".
		aux, err := p.parseOrder(rest, Neutral, depth+1)
		if err != nil {
			return Order{}, fmt.Errorf("%s: %w", kind, err)
		}
		o.Assisted = &aux
		return o, nil

	default:
		return Order{}, fmt.Errorf("unhandled order kind %v", kind)
	}
}
