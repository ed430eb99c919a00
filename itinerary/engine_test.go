package itinerary

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/rihlaty/travel-ops/models"
)

type fakeBookingStore struct {
	bookings map[uuid.UUID]*models.Booking
}

func (s *fakeBookingStore) FindByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.bookings[id], nil
}

type fakeHotelStore struct {
	hotels map[uuid.UUID]*models.Hotel
	err    error
}

func (s *fakeHotelStore) FindByID(_ context.Context, id uuid.UUID) (*models.Hotel, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.hotels[id], nil
}

type fakeTourStore struct {
	tours map[uuid.UUID]*models.Tour
}

func (s *fakeTourStore) FindByID(_ context.Context, id uuid.UUID) (*models.Tour, error) {
	return s.tours[id], nil
}

type fakeAirportStore struct {
	airports map[uuid.UUID]*models.Airport
}

func (s *fakeAirportStore) FindByID(_ context.Context, id uuid.UUID) (*models.Airport, error) {
	return s.airports[id], nil
}

type fakeRenderer struct {
	pdf []byte
	err error
}

func (r *fakeRenderer) RenderPDF(_ context.Context, _, _ string) ([]byte, error) {
	return r.pdf, r.err
}

func testDictionary() *Dictionary {
	return NewDictionary(
		map[string]string{"Turkey": "تركيا", "Istanbul": "إسطنبول"},
		map[string]string{"Istanbul Airport": "مطار إسطنبول"},
		map[string]string{"Turkey": "🇹🇷"},
		map[string]string{"Istanbul": "Turkey"},
	)
}

func newTestEngine(bookings map[uuid.UUID]*models.Booking, hotels map[uuid.UUID]*models.Hotel, tours map[uuid.UUID]*models.Tour) *Engine {
	return NewEngine(EngineConfig{
		Bookings: &fakeBookingStore{bookings: bookings},
		Hotels:   &fakeHotelStore{hotels: hotels},
		Tours:    &fakeTourStore{tours: tours},
		Airports: &fakeAirportStore{},
		Dict:     testDictionary(),
		Renderer: &fakeRenderer{pdf: []byte("%PDF-fake")},
		Brand:    "Rihlaty Travel",
		Contact:  ContactInfo{Phone: "+90 555 000 0000", Email: "office@rihlaty.example", Address: "Istanbul"},
	})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompose_BookingNotFound(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	_, err := engine.Compose(context.Background(), uuid.New(), LangEN, Options{})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCompose_HidePriceOmitsPriceSection(t *testing.T) {
	finalPrice := 2500.0
	booking := &models.Booking{
		ID:         uuid.New(),
		ClientName: "Omar",
		FinalPrice: &finalPrice,
		Currency:   "USD",
	}
	engine := newTestEngine(map[uuid.UUID]*models.Booking{booking.ID: booking}, nil, nil)

	withPrice, err := engine.Compose(context.Background(), booking.ID, LangEN, Options{})
	require.NoError(t, err)
	require.NotNil(t, withPrice.Price)
	assert.Equal(t, 2500.0, withPrice.Price.Total)

	hidden, err := engine.Compose(context.Background(), booking.ID, LangEN, Options{HidePrice: true})
	require.NoError(t, err)
	assert.Nil(t, hidden.Price)
}

func TestCompose_SectionsOmittedIndependently(t *testing.T) {
	booking := &models.Booking{ID: uuid.New(), ClientName: "Sara"}
	engine := newTestEngine(map[uuid.UUID]*models.Booking{booking.ID: booking}, nil, nil)

	doc, err := engine.Compose(context.Background(), booking.ID, LangEN, Options{
		HideHeader:         true,
		HideContact:        true,
		HidePackageMessage: true,
	})
	require.NoError(t, err)

	assert.Nil(t, doc.Header)
	assert.Nil(t, doc.Contact)
	assert.Empty(t, doc.PackageMessage)
	assert.Empty(t, doc.Hotels)
	assert.Empty(t, doc.Days)
	assert.Empty(t, doc.Transportation)
	assert.Nil(t, doc.Price)
	assert.Equal(t, "Sara", doc.Overview.ClientName)
}

func TestCompose_HotelSectionEnrichedAndResolved(t *testing.T) {
	hotelID := uuid.New()
	hotel := &models.Hotel{
		ID:          hotelID,
		Name:        "Bay View",
		City:        "Istanbul",
		Country:     "Turkey",
		Stars:       5,
		Description: "Sea-front property.",
		Images:      datatypes.NewJSONSlice([]models.Image{{URL: "https://img/fresh.jpg"}}),
		RoomTypes:   datatypes.NewJSONSlice([]string{"Deluxe Twin", "Executive Suite"}),
	}

	booking := &models.Booking{
		ID:         uuid.New(),
		ClientName: "Omar",
		Cities:     datatypes.NewJSONSlice([]string{"Istanbul"}),
		HotelEntries: []models.HotelEntry{{
			ID:      uuid.New(),
			HotelID: &hotelID,
			CheckIn: date(2025, time.June, 1), CheckOut: date(2025, time.June, 4),
			Snapshot: datatypes.NewJSONType(models.ReferenceSnapshot{Name: "Bay View (2023)"}),
			Rooms: datatypes.NewJSONSlice([]models.RoomAllocation{
				{RoomTypeIndex: 0, Adults: 2, ChildrenUnder3: 1},
			}),
		}},
	}

	engine := newTestEngine(
		map[uuid.UUID]*models.Booking{booking.ID: booking},
		map[uuid.UUID]*models.Hotel{hotelID: hotel},
		nil,
	)

	doc, err := engine.Compose(context.Background(), booking.ID, LangEN, Options{})
	require.NoError(t, err)
	require.Len(t, doc.Hotels, 1)

	section := doc.Hotels[0]
	// non-empty snapshot name is what the client agreed to
	assert.Equal(t, "Bay View (2023)", section.Name)
	// empty snapshot fields are filled from the canonical record
	assert.Equal(t, "Istanbul", section.City)
	assert.Equal(t, 5, section.Stars)
	assert.Equal(t, 3, section.Nights)
	require.NotNil(t, section.Image)
	assert.Equal(t, "https://img/fresh.jpg", section.Image.URL)

	require.Len(t, section.Rooms, 1)
	assert.Equal(t, "Twin room", section.Rooms[0].TypeLabel)
	assert.Equal(t, 2, section.Rooms[0].Adults)
	assert.Equal(t, 1, section.Rooms[0].Children)

	// country flag derived from the city reverse lookup
	require.Len(t, doc.Overview.Countries, 1)
	assert.Equal(t, "Turkey", doc.Overview.Countries[0].Name)
	assert.Equal(t, "🇹🇷", doc.Overview.Countries[0].Flag)
}

func TestCompose_DayResolutionWithTourFallbacks(t *testing.T) {
	tourID := uuid.New()
	tour := &models.Tour{
		ID:          tourID,
		Name:        "Bosphorus Cruise",
		Type:        "Private boat",
		Description: "A cruise along the strait.",
		Highlights:  datatypes.NewJSONSlice([]string{"Dolmabahce Palace", "Maiden's Tower"}),
		Images:      datatypes.NewJSONSlice([]models.Image{{URL: "https://img/cruise.jpg"}}),
		Translations: datatypes.NewJSONType(models.LocalizationBundle{
			LangAR: {"name": "جولة البوسفور", "description": "رحلة بحرية في المضيق."},
		}),
	}

	booking := &models.Booking{
		ID:         uuid.New(),
		ClientName: "Sara",
		ItineraryDays: datatypes.NewJSONSlice([]models.ItineraryDay{
			{Day: 1, Title: "Arrival", IsArrival: true},
			{Day: 2, TourInfo: &models.TourRef{TourID: tourID, PickupTime: "09:00"}},
		}),
	}

	engine := newTestEngine(map[uuid.UUID]*models.Booking{booking.ID: booking}, nil,
		map[uuid.UUID]*models.Tour{tourID: tour})

	doc, err := engine.Compose(context.Background(), booking.ID, LangAR, Options{})
	require.NoError(t, err)
	require.Len(t, doc.Days, 2)

	assert.Equal(t, 1, doc.Days[0].Number)
	assert.True(t, doc.Days[0].IsArrival)

	tourDay := doc.Days[1]
	assert.Equal(t, "جولة البوسفور", tourDay.Title)
	assert.Equal(t, "رحلة بحرية في المضيق.", tourDay.Description)
	assert.Equal(t, []string{"Dolmabahce Palace", "Maiden's Tower"}, tourDay.Highlights)
	assert.Equal(t, "09:00", tourDay.PickupTime)
	require.NotNil(t, tourDay.Image)
	assert.Equal(t, "https://img/cruise.jpg", tourDay.Image.URL)
}

func TestCompose_IsDeterministic(t *testing.T) {
	hotelID := uuid.New()
	booking := &models.Booking{
		ID:          uuid.New(),
		ClientName:  "Omar",
		Nationality: "Kuwait",
		Countries:   datatypes.NewJSONSlice([]string{"Turkey"}),
		HotelEntries: []models.HotelEntry{{
			HotelID:          &hotelID,
			CheckIn:          date(2025, time.June, 1),
			CheckOut:         date(2025, time.June, 4),
			Snapshot:         datatypes.NewJSONType(models.ReferenceSnapshot{Name: "Bay View"}),
			AirportName:      "Istanbul Airport",
			VehicleClass:     "Sprinter",
			IncludeReception: true,
		}},
	}
	hotel := &models.Hotel{ID: hotelID, Name: "Bay View", City: "Istanbul"}

	engine := newTestEngine(map[uuid.UUID]*models.Booking{booking.ID: booking},
		map[uuid.UUID]*models.Hotel{hotelID: hotel}, nil)

	first, err := engine.Compose(context.Background(), booking.ID, LangAR, Options{})
	require.NoError(t, err)
	second, err := engine.Compose(context.Background(), booking.ID, LangAR, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_ReturnsArtifactAndFilename(t *testing.T) {
	restore := templatePath
	templatePath = filepath.Join("..", "templates", "itinerary.html")
	defer func() { templatePath = restore }()

	booking := &models.Booking{
		ID:         uuid.New(),
		ClientName: "Ahmed Al-Saleh",
		Countries:  datatypes.NewJSONSlice([]string{"Turkey", "Georgia"}),
	}
	engine := newTestEngine(map[uuid.UUID]*models.Booking{booking.ID: booking}, nil, nil)

	pdf, filename, err := engine.Render(context.Background(), booking.ID, LangAR, Options{})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "ahmed-al-saleh-turkey-georgia-ar.pdf", filename)
}

func TestRender_SurfacesRenderFailureWithoutArtifact(t *testing.T) {
	restore := templatePath
	templatePath = filepath.Join("..", "templates", "itinerary.html")
	defer func() { templatePath = restore }()

	booking := &models.Booking{ID: uuid.New(), ClientName: "Sara"}
	engine := newTestEngine(map[uuid.UUID]*models.Booking{booking.ID: booking}, nil, nil)
	engine.Renderer = &fakeRenderer{err: &RenderError{Stage: "print", Err: errors.New("chrome exploded")}}

	pdf, _, err := engine.Render(context.Background(), booking.ID, LangEN, Options{})
	assert.Nil(t, pdf)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "print", renderErr.Stage)
}

func TestDocumentFilename_Sanitizes(t *testing.T) {
	doc := &Document{Lang: LangEN, clientName: "M. & Mme Dupont!!", destinations: []string{"Turkey"}}
	assert.Equal(t, "m-mme-dupont-turkey-en.pdf", doc.Filename())

	arabic := &Document{Lang: LangAR, clientName: "محمد العلي", destinations: []string{"تركيا"}}
	assert.Equal(t, "محمد-العلي-تركيا-ar.pdf", arabic.Filename())

	empty := &Document{Lang: LangAR, clientName: "!!"}
	assert.Equal(t, "itinerary-ar.pdf", empty.Filename())
}
