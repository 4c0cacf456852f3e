package diplomacy

import "strings"

// LocationCount is the number of entries in the location catalogue: 75
// provinces plus the six coast-qualified variants of the split-coast provinces.
const LocationCount = 81

// Coast represents a specific coast of a province with split coasts.
type Coast string

const (
	NoCoast    Coast = ""
	NorthCoast Coast = "nc"
	SouthCoast Coast = "sc"
	EastCoast  Coast = "ec"
)

// Location is a short location code such as "bre" or "stp-nc".
type Location string

// Province returns the province part of the code ("stp" for "stp-nc").
func (l Location) Province() string {
	if i := strings.IndexByte(string(l), '-'); i >= 0 {
		return string(l[:i])
	}
	return string(l)
}

// Coast returns the coast qualifier of the code, or NoCoast.
func (l Location) Coast() Coast {
	if i := strings.IndexByte(string(l), '-'); i >= 0 {
		return Coast(l[i+1:])
	}
	return NoCoast
}

// Valid reports whether l is in the location catalogue.
func (l Location) Valid() bool {
	_, ok := StandardCatalogue().byCode[l]
	return ok
}

// LocationEntry pairs a location code with its full DATC name.
type LocationEntry struct {
	Code Location
	Name string // as written in DATC standard notation, e.g. "St Petersburg(nc)"
}

// Catalogue is the closed set of locations recognised in standard notation.
type Catalogue struct {
	entries []LocationEntry
	byName  map[string]Location
	byCode  map[Location]string
}

// Lookup returns the location code for a full DATC location name.
func (c *Catalogue) Lookup(name string) (Location, bool) {
	loc, ok := c.byName[name]
	return loc, ok
}

// Name returns the full DATC name for a location code.
func (c *Catalogue) Name(code Location) (string, bool) {
	name, ok := c.byCode[code]
	return name, ok
}

// Entries returns the catalogue entries in declaration order.
// Callers must not mutate the returned slice.
func (c *Catalogue) Entries() []LocationEntry {
	return c.entries
}

// LookupLocation translates a full DATC location name to its code using the
// standard catalogue.
func LookupLocation(name string) (Location, error) {
	loc, ok := StandardCatalogue().Lookup(name)
	if !ok {
		return "", &UnknownTokenError{Table: TableLocation, Raw: name}
	}
	return loc, nil
}
