package itinerary

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	LangEN = "en"
	LangAR = "ar"
)

// Dictionary is the process-wide translation data for place and airport
// names, loaded once at startup and never mutated afterwards. All
// lookups on an empty dictionary pass the input through unchanged.
type Dictionary struct {
	Places      map[string]string `json:"places"`
	Airports    map[string]string `json:"airports"`
	Flags       map[string]string `json:"flags"`
	CityCountry map[string]string `json:"city_country"`

	placesToAR   map[string]string
	placesToEN   map[string]string
	airportsToAR map[string]string
	airportKeys  []string
	flags        map[string]string
	cityCountry  map[string]string
}

// NewDictionary builds a ready-to-use dictionary from raw maps. Keys
// are matched case-insensitively; the place dictionary is bidirectional.
func NewDictionary(places, airports, flags, cityCountry map[string]string) *Dictionary {
	d := &Dictionary{
		Places:      places,
		Airports:    airports,
		Flags:       flags,
		CityCountry: cityCountry,
	}
	d.index()
	return d
}

// EmptyDictionary returns a dictionary with no entries, suitable for
// environments where the data file is absent.
func EmptyDictionary() *Dictionary {
	return NewDictionary(nil, nil, nil, nil)
}

// LoadDictionary reads the translation data file for the alternate
// language from dir. A missing or malformed file is not an error: the
// empty dictionary is returned and every lookup degrades to
// pass-through.
func LoadDictionary(dir string) *Dictionary {
	path := filepath.Join(dir, "ar.json")
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Translation dictionary not found at %s, names will pass through unchanged: %v", path, err)
		return EmptyDictionary()
	}

	var d Dictionary
	if err := json.Unmarshal(data, &d); err != nil {
		log.Printf("⚠️ Translation dictionary at %s is malformed, names will pass through unchanged: %v", path, err)
		return EmptyDictionary()
	}
	d.index()
	log.Printf("✅ Translation dictionary loaded: %d places, %d airports", len(d.Places), len(d.Airports))
	return &d
}

func (d *Dictionary) index() {
	d.placesToAR = make(map[string]string, len(d.Places))
	d.placesToEN = make(map[string]string, len(d.Places))
	for en, ar := range d.Places {
		d.placesToAR[strings.ToLower(en)] = ar
		d.placesToEN[strings.ToLower(ar)] = en
	}

	d.airportsToAR = make(map[string]string, len(d.Airports))
	d.airportKeys = make([]string, 0, len(d.Airports))
	for en, ar := range d.Airports {
		key := strings.ToLower(en)
		d.airportsToAR[key] = ar
		d.airportKeys = append(d.airportKeys, key)
	}
	// containment matching iterates the keys; sort them so resolution
	// stays deterministic across runs
	sort.Strings(d.airportKeys)

	d.flags = make(map[string]string, len(d.Flags))
	for country, flag := range d.Flags {
		d.flags[strings.ToLower(country)] = flag
	}

	d.cityCountry = make(map[string]string, len(d.CityCountry))
	for city, country := range d.CityCountry {
		d.cityCountry[strings.ToLower(city)] = country
	}
}

// PlaceName translates a city or country name into the target language.
// The dictionary is bidirectional; unknown names pass through unchanged.
func (d *Dictionary) PlaceName(name, lang string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return name
	}
	switch lang {
	case LangAR:
		if v, ok := d.placesToAR[key]; ok {
			return v
		}
	default:
		if v, ok := d.placesToEN[key]; ok {
			return v
		}
	}
	return name
}

// Flag returns the flag emoji for a country, or the empty string when
// the country is unknown.
func (d *Dictionary) Flag(country string) string {
	return d.flags[strings.ToLower(strings.TrimSpace(country))]
}

// CountryForCity reverse-looks-up the country a city belongs to.
func (d *Dictionary) CountryForCity(city string) (string, bool) {
	country, ok := d.cityCountry[strings.ToLower(strings.TrimSpace(city))]
	return country, ok
}
