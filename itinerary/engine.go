package itinerary

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/rihlaty/travel-ops/models"
)

// Stores are the read-only collaborators the engine consumes. A nil
// record with a nil error means "not found"; only the booking lookup
// treats that as fatal.
type BookingStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}

type HotelStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Hotel, error)
}

type TourStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tour, error)
}

type AirportStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Airport, error)
}

// Renderer turns the templated document into a binary artifact.
type Renderer interface {
	RenderPDF(ctx context.Context, html, lang string) ([]byte, error)
}

// Options are the caller-facing visibility toggles, honored by the
// document model builder and nowhere earlier.
type Options struct {
	HideHeader         bool
	HidePrice          bool
	HideContact        bool
	HidePackageMessage bool
}

// ContactInfo is the agency contact block printed on documents.
type ContactInfo struct {
	Phone   string
	Email   string
	Address string
}

// Engine composes and renders itinerary documents. It holds no mutable
// state of its own; every pipeline run works on the booking aggregate
// it fetched.
type Engine struct {
	Bookings BookingStore
	Hotels   HotelStore
	Tours    TourStore
	Airports AirportStore

	Dict     *Dictionary
	Renderer Renderer

	Brand       string
	Contact     ContactInfo
	NightsFloor int
}

type EngineConfig struct {
	Bookings BookingStore
	Hotels   HotelStore
	Tours    TourStore
	Airports AirportStore
	Dict     *Dictionary
	Renderer Renderer
	Brand    string
	Contact  ContactInfo
}

func NewEngine(cfg EngineConfig) *Engine {
	dict := cfg.Dict
	if dict == nil {
		dict = EmptyDictionary()
	}
	return &Engine{
		Bookings:    cfg.Bookings,
		Hotels:      cfg.Hotels,
		Tours:       cfg.Tours,
		Airports:    cfg.Airports,
		Dict:        dict,
		Renderer:    cfg.Renderer,
		Brand:       cfg.Brand,
		Contact:     cfg.Contact,
		NightsFloor: DefaultNightsFloor,
	}
}

// Compose runs the pipeline up to the finished document model:
// fetch, concurrent enrichment, normalization, localization, derived
// fields, assembly. Rendering is left to Render.
func (e *Engine) Compose(ctx context.Context, bookingID uuid.UUID, lang string, opts Options) (*Document, error) {
	booking, err := e.Bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("fetch booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	e.EnrichHotelEntries(ctx, booking.HotelEntries)
	days := NormalizeItinerary(booking)

	return e.buildDocument(ctx, booking, days, lang, opts), nil
}

// Render composes the document, templates it to HTML and hands it to
// the external rendering process. It returns the artifact and a
// suggested filename. A failed render yields no partial artifact.
func (e *Engine) Render(ctx context.Context, bookingID uuid.UUID, lang string, opts Options) ([]byte, string, error) {
	started := time.Now()

	doc, err := e.Compose(ctx, bookingID, lang, opts)
	if err != nil {
		return nil, "", err
	}

	html, err := RenderHTML(doc)
	if err != nil {
		return nil, "", &RenderError{Stage: "template", Err: err}
	}

	pdf, err := e.Renderer.RenderPDF(ctx, html, lang)
	if err != nil {
		return nil, "", err
	}

	filename := doc.Filename()
	log.Printf("✅ Rendered document %s (%d bytes) in %s", filename, len(pdf), time.Since(started).Round(time.Millisecond))
	return pdf, filename, nil
}
