package diplomacy

import "sync"

var (
	stdCatalogueOnce sync.Once
	stdCatalogueInst *Catalogue
)

// StandardCatalogue returns the location catalogue of the standard map as
// named by the DATC. The catalogue is built once and cached; subsequent calls
// return the same pointer. Callers must not mutate it.
func StandardCatalogue() *Catalogue {
	stdCatalogueOnce.Do(func() {
		stdCatalogueInst = buildStandardCatalogue()
	})
	return stdCatalogueInst
}

func buildStandardCatalogue() *Catalogue {
	c := &Catalogue{
		entries: make([]LocationEntry, 0, LocationCount),
		byName:  make(map[string]Location, LocationCount),
		byCode:  make(map[Location]string, LocationCount),
	}

	loc := func(code Location, name string) {
		c.entries = append(c.entries, LocationEntry{Code: code, Name: name})
		c.byName[name] = code
		c.byCode[code] = name
	}

	loc("adr", "Adriatic Sea")
	loc("aeg", "Aegean Sea")
	loc("alb", "Albania")
	loc("ank", "Ankara")
	loc("apu", "Apulia")
	loc("arm", "Armenia")
	loc("bal", "Baltic Sea")
	loc("bar", "Barents Sea")
	loc("bel", "Belgium")
	loc("ber", "Berlin")
	loc("bla", "Black Sea")
	loc("boh", "Bohemia")
	loc("bre", "Brest")
	loc("bud", "Budapest")
	loc("bul", "Bulgaria")
	loc("bul-ec", "Bulgaria(ec)")
	loc("bul-sc", "Bulgaria(sc)")
	loc("bur", "Burgundy")
	loc("cly", "Clyde")
	loc("con", "Constantinople")
	loc("den", "Denmark")
	loc("eas", "Eastern Mediterranean")
	loc("edi", "Edinburgh")
	loc("eng", "English Channel")
	loc("fin", "Finland")
	loc("gal", "Galicia")
	loc("gas", "Gascony")
	loc("gre", "Greece")
	loc("gol", "Gulf of Lyon")
	loc("bot", "Gulf of Bothnia")
	loc("hel", "Helgoland Bight")
	loc("hol", "Holland")
	loc("ion", "Ionian Sea")
	loc("iri", "Irish Sea")
	loc("kie", "Kiel")
	loc("lvp", "Liverpool")
	loc("lvn", "Livonia")
	loc("lon", "London")
	loc("mar", "Marseilles")
	loc("mid", "Mid-Atlantic Ocean")
	loc("mos", "Moscow")
	loc("mun", "Munich")
	loc("nap", "Naples")
	loc("nat", "North Atlantic Ocean")
	loc("naf", "North Africa")
	loc("nth", "North Sea")
	loc("nwy", "Norway")
	loc("nrg", "Norwegian Sea")
	loc("par", "Paris")
	loc("pic", "Picardy")
	loc("pie", "Piedmont")
	loc("por", "Portugal")
	loc("pru", "Prussia")
	loc("rom", "Rome")
	loc("ruh", "Ruhr")
	loc("rum", "Rumania")
	loc("ser", "Serbia")
	loc("sev", "Sevastopol")
	loc("sil", "Silesia")
	loc("ska", "Skagerrak")
	loc("smy", "Smyrna")
	loc("spa", "Spain")
	loc("spa-nc", "Spain(nc)")
	loc("spa-sc", "Spain(sc)")
	loc("stp", "St Petersburg")
	loc("stp-nc", "St Petersburg(nc)")
	loc("stp-sc", "St Petersburg(sc)")
	loc("swe", "Sweden")
	loc("syr", "Syria")
	loc("tri", "Trieste")
	loc("tun", "Tunis")
	loc("tus", "Tuscany")
	loc("tyr", "Tyrolia")
	loc("tyn", "Tyrrhenian Sea")
	loc("ukr", "Ukraine")
	loc("ven", "Venice")
	loc("vie", "Vienna")
	loc("wal", "Wales")
	loc("war", "Warsaw")
	loc("wes", "Western Mediterranean")
	loc("yor", "Yorkshire")

	return c
}
