package itinerary

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/rihlaty/travel-ops/models"
)

func TestMergeSnapshot(t *testing.T) {
	hotel := &models.Hotel{
		Name:        "Bay View",
		City:        "Istanbul",
		Country:     "Turkey",
		Stars:       5,
		Description: "Sea-front property.",
		Images:      datatypes.NewJSONSlice([]models.Image{{URL: "fresh-1"}, {URL: "fresh-2"}}),
		RoomTypes:   datatypes.NewJSONSlice([]string{"Twin", "Suite"}),
	}

	t.Run("images always refreshed when canonical has any", func(t *testing.T) {
		snap := models.ReferenceSnapshot{
			Name:   "Bay View (2023)",
			Images: []models.Image{{URL: "stale"}},
		}
		MergeSnapshot(&snap, hotel)

		require.Len(t, snap.Images, 2)
		assert.Equal(t, "fresh-1", snap.Images[0].URL)
	})

	t.Run("canonical without images keeps snapshot images", func(t *testing.T) {
		bare := &models.Hotel{Name: "Bay View"}
		snap := models.ReferenceSnapshot{Images: []models.Image{{URL: "stale"}}}
		MergeSnapshot(&snap, bare)

		require.Len(t, snap.Images, 1)
		assert.Equal(t, "stale", snap.Images[0].URL)
	})

	t.Run("non-empty snapshot fields never overwritten", func(t *testing.T) {
		snap := models.ReferenceSnapshot{
			Name:  "Bay View (2023)",
			Stars: 4,
		}
		MergeSnapshot(&snap, hotel)

		assert.Equal(t, "Bay View (2023)", snap.Name)
		assert.Equal(t, 4, snap.Stars)
	})

	t.Run("empty snapshot fields filled from canonical", func(t *testing.T) {
		snap := models.ReferenceSnapshot{Name: "Bay View (2023)"}
		MergeSnapshot(&snap, hotel)

		assert.Equal(t, "Istanbul", snap.City)
		assert.Equal(t, "Turkey", snap.Country)
		assert.Equal(t, 5, snap.Stars)
		assert.Equal(t, "Sea-front property.", snap.Description)
		assert.Equal(t, []string{"Twin", "Suite"}, snap.RoomTypes)
	})
}

func TestEnrichHotelEntries(t *testing.T) {
	knownID, missingID := uuid.New(), uuid.New()
	hotel := &models.Hotel{
		ID:   knownID,
		Name: "Bay View",
		City: "Istanbul",
	}

	engine := newTestEngine(nil, map[uuid.UUID]*models.Hotel{knownID: hotel}, nil)

	entries := []models.HotelEntry{
		{HotelID: &knownID, Snapshot: datatypes.NewJSONType(models.ReferenceSnapshot{Name: "Bay View (2023)"})},
		{HotelID: &missingID, Snapshot: datatypes.NewJSONType(models.ReferenceSnapshot{Name: "Gone Hotel", City: "Tbilisi"})},
		{Snapshot: datatypes.NewJSONType(models.ReferenceSnapshot{Name: "Manual Entry"})},
	}

	engine.EnrichHotelEntries(context.Background(), entries)

	first := entries[0].Snapshot.Data()
	assert.Equal(t, "Bay View (2023)", first.Name)
	assert.Equal(t, "Istanbul", first.City, "empty snapshot field filled from canonical record")

	second := entries[1].Snapshot.Data()
	assert.Equal(t, "Gone Hotel", second.Name, "missing canonical record leaves the snapshot untouched")
	assert.Equal(t, "Tbilisi", second.City)

	third := entries[2].Snapshot.Data()
	assert.Equal(t, "Manual Entry", third.Name, "entries without a hotel reference are left alone")
}

func TestEnrichHotelEntries_LookupFailureDegradesOnly(t *testing.T) {
	hotelID := uuid.New()
	engine := newTestEngine(nil, nil, nil)
	engine.Hotels = &fakeHotelStore{err: errors.New("connection refused")}

	entries := []models.HotelEntry{
		{HotelID: &hotelID, Snapshot: datatypes.NewJSONType(models.ReferenceSnapshot{Name: "Bay View (2023)", Stars: 4})},
	}

	engine.EnrichHotelEntries(context.Background(), entries)

	snap := entries[0].Snapshot.Data()
	assert.Equal(t, "Bay View (2023)", snap.Name)
	assert.Equal(t, 4, snap.Stars)
}

func TestEnrichHotelEntries_FillsAirportName(t *testing.T) {
	airportID := uuid.New()
	engine := newTestEngine(nil, nil, nil)
	engine.Airports = &fakeAirportStore{airports: map[uuid.UUID]*models.Airport{
		airportID: {ID: airportID, Name: "Istanbul Airport", City: "Istanbul"},
	}}

	entries := []models.HotelEntry{
		{AirportID: &airportID},
		{AirportID: &airportID, AirportName: "Sabiha Gokcen"},
	}

	engine.EnrichHotelEntries(context.Background(), entries)

	assert.Equal(t, "Istanbul Airport", entries[0].AirportName)
	assert.Equal(t, "Sabiha Gokcen", entries[1].AirportName, "a stored display name is not overwritten")
}
