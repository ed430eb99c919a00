package itinerary

import (
	"regexp"
	"strings"

	"github.com/rihlaty/travel-ops/models"
)

// TranslationSource is the uniform lookup the resolver works against.
// Translation containers come in two shapes (per-language bundles and
// flat per-day field maps); both adapt into this interface once, at
// ingestion, so resolution logic never cares which shape it got.
type TranslationSource interface {
	Lookup(lang, field string) (string, bool)
}

type bundleSource models.LocalizationBundle

func (b bundleSource) Lookup(lang, field string) (string, bool) {
	fields, ok := b[lang]
	if !ok {
		return "", false
	}
	v, ok := fields[field]
	return v, ok
}

// BundleSource adapts a canonical record's localization bundle.
func BundleSource(b models.LocalizationBundle) TranslationSource {
	if b == nil {
		return nil
	}
	return bundleSource(b)
}

type daySource struct{ t *models.DayTranslations }

func (s daySource) Lookup(lang, field string) (string, bool) {
	switch field {
	case "title":
		v, ok := s.t.Title[lang]
		return v, ok
	case "description":
		v, ok := s.t.Description[lang]
		return v, ok
	}
	return "", false
}

// DaySource adapts an itinerary day's translation bundle.
func DaySource(t *models.DayTranslations) TranslationSource {
	if t == nil {
		return nil
	}
	return daySource{t}
}

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes HTML tags and non-breaking spaces so that a
// translation consisting only of markup counts as blank.
func StripMarkup(s string) string {
	s = markupPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.TrimSpace(s)
}

// ResolveText resolves one free-text field with the fixed precedence:
// explicit translation in the target language, then the original value,
// then the placeholder (which may be empty for fields without one).
// The target language equal to the source language skips straight to
// the original value unless an explicit override exists for it.
func ResolveText(src TranslationSource, lang, field, original, placeholder string) string {
	if src != nil {
		if v, ok := src.Lookup(lang, field); ok && StripMarkup(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	if StripMarkup(original) != "" {
		return strings.TrimSpace(original)
	}
	return placeholder
}

const airportFallbackAR = "المطار"

// AirportLabel resolves an airport display name. The source language
// passes through unchanged. For the alternate language the chain is:
// exact case-insensitive dictionary match, containment match against
// the dictionary keys, substitution of the generic word "airport" with
// its translation, and finally a fixed literal.
func AirportLabel(d *Dictionary, name, lang string) string {
	name = strings.TrimSpace(name)
	if lang != LangAR {
		return name
	}

	lower := strings.ToLower(name)
	if v, ok := d.airportsToAR[lower]; ok {
		return v
	}
	for _, key := range d.airportKeys {
		if strings.Contains(lower, key) {
			return d.airportsToAR[key]
		}
	}
	if idx := strings.Index(lower, "airport"); idx >= 0 {
		remainder := strings.TrimSpace(name[:idx] + name[idx+len("airport"):])
		if remainder == "" {
			return airportFallbackAR
		}
		return "مطار " + remainder
	}
	return airportFallbackAR
}

type vocabLabel struct{ en, ar string }

func (l vocabLabel) in(lang string) string {
	if lang == LangAR {
		return l.ar
	}
	return l.en
}

var roomTypeLabels = []struct {
	keyword string
	label   vocabLabel
}{
	{"single", vocabLabel{"Single room", "غرفة مفردة"}},
	{"twin", vocabLabel{"Twin room", "غرفة توأم"}},
	{"triple", vocabLabel{"Triple room", "غرفة ثلاثية"}},
	{"quad", vocabLabel{"Quadruple room", "غرفة رباعية"}},
	{"suite", vocabLabel{"Suite", "جناح"}},
	{"family", vocabLabel{"Family room", "غرفة عائلية"}},
	{"double", vocabLabel{"Double room", "غرفة مزدوجة"}},
}

var roomTypeDefault = vocabLabel{"Double room", "غرفة مزدوجة"}

// RoomTypeLabel classifies a free-form room-type string into the
// canonical label for the target language. Unrecognized values map to
// the fixed default.
func RoomTypeLabel(raw, lang string) string {
	k := strings.ToLower(raw)
	for _, rt := range roomTypeLabels {
		if strings.Contains(k, rt.keyword) {
			return rt.label.in(lang)
		}
	}
	return roomTypeDefault.in(lang)
}

// Vehicle phrasing is three-tiered: Sprinter-class vans, Coaster-class
// buses, and everything else as a private car.
var vehicleLabels = []struct {
	keyword string
	label   vocabLabel
}{
	{"sprinter", vocabLabel{"Private Sprinter car", "سيارة سبرنتر خاصة"}},
	{"coaster", vocabLabel{"Private Coaster bus", "باص كوستر خاص"}},
	{"bus", vocabLabel{"Private Coaster bus", "باص كوستر خاص"}},
}

var vehicleDefault = vocabLabel{"Private car", "سيارة خاصة"}

func VehicleLabel(raw, lang string) string {
	k := strings.ToLower(raw)
	for _, v := range vehicleLabels {
		if strings.Contains(k, v.keyword) {
			return v.label.in(lang)
		}
	}
	return vehicleDefault.in(lang)
}

var tourTypeLabels = []struct {
	keyword string
	label   vocabLabel
}{
	{"private", vocabLabel{"Private tour", "جولة خاصة"}},
	{"vip", vocabLabel{"VIP tour", "جولة VIP"}},
}

var tourTypeDefault = vocabLabel{"Group tour", "جولة جماعية"}

func TourTypeLabel(raw, lang string) string {
	k := strings.ToLower(raw)
	for _, t := range tourTypeLabels {
		if strings.Contains(k, t.keyword) {
			return t.label.in(lang)
		}
	}
	return tourTypeDefault.in(lang)
}

// genericDestinationBlurb is the synthesized placeholder used when a
// day has neither a translated nor an original description.
func genericDestinationBlurb(lang string) string {
	if lang == LangAR {
		return "يوم مخصص لاستكشاف الوجهة والاستمتاع بمعالمها."
	}
	return "A day to explore the destination and enjoy its sights."
}
