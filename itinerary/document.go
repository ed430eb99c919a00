package itinerary

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/rihlaty/travel-ops/models"
)

// Document is the fully resolved, ordered model handed to the renderer.
// Every section is independently omittable: a nil or empty section is
// simply not printed.
type Document struct {
	BookingID     uuid.UUID
	ReferenceCode string
	Lang          string
	RTL           bool

	Header         *HeaderSection
	Overview       OverviewSection
	Hotels         []HotelSection
	Transportation []string
	Days           []DaySection
	Price          *PriceSection
	Contact        *ContactInfo
	PackageMessage string

	// raw source-language values kept for filename composition
	clientName   string
	destinations []string
}

type HeaderSection struct {
	Brand   string
	Tagline string
}

type OverviewSection struct {
	ClientName  string
	Nationality string
	StartDate   string
	EndDate     string
	Adults      int
	Children    int
	Countries   []CountryFlag
	Summary     string
}

type CountryFlag struct {
	Name string
	Flag string
}

type HotelSection struct {
	Name        string
	City        string
	Country     string
	Stars       int
	CheckIn     string
	CheckOut    string
	Nights      int
	Image       *models.Image
	Description string
	Rooms       []RoomSection
}

type RoomSection struct {
	TypeLabel string
	Adults    int
	Children  int
}

type DaySection struct {
	Number      int
	Title       string
	Description string
	Activities  []string
	Highlights  []string
	TourType    string
	PickupTime  string
	Image       *models.Image
	IsArrival   bool
	IsDeparture bool
	IsRest      bool
}

type PriceSection struct {
	Lines    []PriceLine
	Total    float64
	Currency string
}

type PriceLine struct {
	Label  string
	Amount float64
}

const dateLayout = "02 Jan 2006"

func (e *Engine) buildDocument(ctx context.Context, b *models.Booking, days []models.ItineraryDay, lang string, opts Options) *Document {
	doc := &Document{
		BookingID:     b.ID,
		ReferenceCode: b.ReferenceCode,
		Lang:          lang,
		RTL:           lang == LangAR,
		clientName:    b.ClientName,
		destinations:  destinationList(b),
	}

	if !opts.HideHeader {
		doc.Header = &HeaderSection{Brand: e.Brand, Tagline: tagline(lang)}
	}
	doc.Overview = e.buildOverview(b, lang)
	doc.Hotels = e.buildHotels(b.HotelEntries, lang)
	doc.Transportation = TransportationLines(b.HotelEntries, e.Dict, lang)
	doc.Days = e.buildDays(ctx, days, lang)
	if !opts.HidePrice {
		doc.Price = buildPrice(b, lang)
	}
	if !opts.HideContact {
		contact := e.Contact
		doc.Contact = &contact
	}
	if !opts.HidePackageMessage {
		doc.PackageMessage = packageMessage(lang)
	}
	return doc
}

func (e *Engine) buildOverview(b *models.Booking, lang string) OverviewSection {
	ov := OverviewSection{
		ClientName:  b.ClientName,
		Nationality: e.Dict.PlaceName(b.Nationality, lang),
		Adults:      b.Adults,
		Children:    TotalChildren(b),
		Summary:     bookingSummary(b, lang),
	}
	if !b.StartDate.IsZero() {
		ov.StartDate = b.StartDate.Format(dateLayout)
	}
	if !b.EndDate.IsZero() {
		ov.EndDate = b.EndDate.Format(dateLayout)
	}

	for _, country := range visitedCountries(b, e.Dict) {
		ov.Countries = append(ov.Countries, CountryFlag{
			Name: e.Dict.PlaceName(country, lang),
			Flag: e.Dict.Flag(country),
		})
	}
	return ov
}

// visitedCountries unions the booking's stored country list with the
// countries its cities reverse-map to, preserving order and dropping
// duplicates.
func visitedCountries(b *models.Booking, d *Dictionary) []string {
	seen := make(map[string]bool)
	var countries []string
	add := func(c string) {
		key := strings.ToLower(strings.TrimSpace(c))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		countries = append(countries, strings.TrimSpace(c))
	}
	for _, c := range b.Countries {
		add(c)
	}
	for _, city := range b.Cities {
		if country, ok := d.CountryForCity(city); ok {
			add(country)
		}
	}
	return countries
}

func (e *Engine) buildHotels(entries []models.HotelEntry, lang string) []HotelSection {
	var sections []HotelSection
	for i := range entries {
		entry := &entries[i]
		snap := entry.Snapshot.Data()
		if snap.Name == "" {
			log.Printf("⚠️ Hotel entry %s has no snapshot, skipping its section", entry.ID)
			continue
		}

		nights, anomaly := EntryNights(entry, e.NightsFloor)
		if anomaly {
			log.Printf("⚠️ Hotel entry %s has an inverted date range (%s > %s), nights clamped to %d",
				entry.ID, entry.CheckIn.Format(dateLayout), entry.CheckOut.Format(dateLayout), nights)
		}

		section := HotelSection{
			Name:        snap.Name,
			City:        e.Dict.PlaceName(snap.City, lang),
			Country:     e.Dict.PlaceName(snap.Country, lang),
			Stars:       snap.Stars,
			Nights:      nights,
			Image:       PrimaryImage(snap.Images),
			Description: snap.Description,
		}
		if !entry.CheckIn.IsZero() {
			section.CheckIn = entry.CheckIn.Format(dateLayout)
		}
		if !entry.CheckOut.IsZero() {
			section.CheckOut = entry.CheckOut.Format(dateLayout)
		}

		for _, room := range entry.Rooms {
			raw := ""
			if room.RoomTypeIndex >= 0 && room.RoomTypeIndex < len(snap.RoomTypes) {
				raw = snap.RoomTypes[room.RoomTypeIndex]
			}
			section.Rooms = append(section.Rooms, RoomSection{
				TypeLabel: RoomTypeLabel(raw, lang),
				Adults:    room.Adults,
				Children:  RoomChildren(room),
			})
		}
		sections = append(sections, section)
	}
	return sections
}

func (e *Engine) buildDays(ctx context.Context, days []models.ItineraryDay, lang string) []DaySection {
	var sections []DaySection
	for i := range days {
		day := &days[i]

		var tour *models.Tour
		if day.TourInfo != nil {
			var err error
			tour, err = e.Tours.FindByID(ctx, day.TourInfo.TourID)
			if err != nil {
				log.Printf("⚠️ Tour lookup failed for day %d (tour %s), using stored day text: %v", day.Day, day.TourInfo.TourID, err)
			}
		}

		var tourBundle TranslationSource
		if tour != nil {
			tourBundle = BundleSource(tour.Translations.Data())
		}
		src := DaySource(day.Translations)

		title := ResolveText(src, lang, "title", day.Title, "")
		if title == "" && tour != nil {
			title = ResolveText(tourBundle, lang, "name", tour.Name, "")
		}

		desc := ResolveText(src, lang, "description", day.Description, "")
		if desc == "" && tour != nil {
			desc = ResolveText(tourBundle, lang, "description", tour.Description, "")
		}
		if desc == "" && !day.IsRest && !day.IsArrival && !day.IsDeparture {
			desc = genericDestinationBlurb(lang)
		}

		section := DaySection{
			Number:      day.Day,
			Title:       title,
			Description: desc,
			Activities:  dayActivities(day, lang),
			Image:       PrimaryImage(day.Images),
			IsArrival:   day.IsArrival,
			IsDeparture: day.IsDeparture,
			IsRest:      day.IsRest,
		}
		if day.TourInfo != nil {
			section.PickupTime = day.TourInfo.PickupTime
		}
		if tour != nil {
			section.TourType = TourTypeLabel(tour.Type, lang)
			section.Highlights = tourHighlights(tour, tourBundle, lang)
			if section.Image == nil {
				section.Image = PrimaryImage([]models.Image(tour.Images))
			}
		}
		sections = append(sections, section)
	}
	return sections
}

func dayActivities(day *models.ItineraryDay, lang string) []string {
	if day.Translations != nil {
		if acts, ok := day.Translations.Activities[lang]; ok && len(acts) > 0 {
			return acts
		}
	}
	return day.Activities
}

// tourHighlights prefers the translated highlights block, stored
// newline-joined in the bundle, over the canonical list.
func tourHighlights(tour *models.Tour, bundle TranslationSource, lang string) []string {
	if bundle != nil {
		if v, ok := bundle.Lookup(lang, "highlights"); ok && StripMarkup(v) != "" {
			var highlights []string
			for _, line := range strings.Split(v, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					highlights = append(highlights, line)
				}
			}
			return highlights
		}
	}
	return []string(tour.Highlights)
}

func buildPrice(b *models.Booking, lang string) *PriceSection {
	pricing := b.Pricing.Data()

	transportationLabel, toursLabel := "Transportation", "Tours"
	if lang == LangAR {
		transportationLabel, toursLabel = "المواصلات", "الجولات"
	}

	var lines []PriceLine
	var sum float64
	for _, hc := range pricing.HotelCosts {
		lines = append(lines, PriceLine{Label: hc.HotelName, Amount: hc.Amount})
		sum += hc.Amount
	}
	if pricing.TransportationCost > 0 {
		lines = append(lines, PriceLine{Label: transportationLabel, Amount: pricing.TransportationCost})
		sum += pricing.TransportationCost
	}
	if pricing.ToursCost > 0 {
		lines = append(lines, PriceLine{Label: toursLabel, Amount: pricing.ToursCost})
		sum += pricing.ToursCost
	}

	total := sum
	if b.FinalPrice != nil {
		total = *b.FinalPrice
	}
	if total == 0 && len(lines) == 0 {
		return nil
	}
	return &PriceSection{Lines: lines, Total: total, Currency: b.Currency}
}

func bookingSummary(b *models.Booking, lang string) string {
	if lang == LangAR {
		if b.SummaryAR != nil && StripMarkup(*b.SummaryAR) != "" {
			return strings.TrimSpace(*b.SummaryAR)
		}
	}
	if b.SummaryEN != nil && StripMarkup(*b.SummaryEN) != "" {
		return strings.TrimSpace(*b.SummaryEN)
	}
	return ""
}

func tagline(lang string) string {
	if lang == LangAR {
		return "برنامج سياحي مُعد خصيصاً لكم"
	}
	return "Your tailor-made travel program"
}

func packageMessage(lang string) string {
	if lang == LangAR {
		return "شكراً لاختياركم لنا، نتمنى لكم رحلة ممتعة."
	}
	return "Thank you for choosing us. We wish you a wonderful trip."
}

func destinationList(b *models.Booking) []string {
	if len(b.Countries) > 0 {
		return []string(b.Countries)
	}
	return []string(b.Cities)
}

var filenamePattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Filename composes the suggested download name from the sanitized
// client name, the sanitized destination list and the language code.
// Letters from any script are kept so Arabic client names survive.
func (d *Document) Filename() string {
	parts := append([]string{d.clientName}, d.destinations...)
	joined := strings.ToLower(strings.Join(parts, "-"))
	joined = filenamePattern.ReplaceAllString(joined, "-")
	joined = strings.Trim(joined, "-")
	if joined == "" {
		joined = "itinerary"
	}
	return fmt.Sprintf("%s-%s.pdf", joined, d.Lang)
}
