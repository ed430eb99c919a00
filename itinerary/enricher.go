package itinerary

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/rihlaty/travel-ops/models"
)

// EnrichHotelEntries refreshes every entry's snapshot from its
// canonical hotel record. Entries are fetched concurrently and
// independently; the call returns only after all of them finished,
// successfully or degraded, so later stages never observe partial
// enrichment. A failed lookup is logged and leaves that entry's
// snapshot untouched.
func (e *Engine) EnrichHotelEntries(ctx context.Context, entries []models.HotelEntry) {
	g, ctx := errgroup.WithContext(ctx)
	for i := range entries {
		entry := &entries[i]
		g.Go(func() error {
			e.enrichEntry(ctx, entry)
			return nil
		})
	}
	_ = g.Wait()
}

func (e *Engine) enrichEntry(ctx context.Context, entry *models.HotelEntry) {
	e.fillAirportName(ctx, entry)

	if entry.HotelID == nil {
		return
	}
	hotel, err := e.Hotels.FindByID(ctx, *entry.HotelID)
	if err != nil {
		log.Printf("⚠️ Hotel lookup failed for entry %s (hotel %s), keeping snapshot: %v", entry.ID, entry.HotelID, err)
		return
	}
	if hotel == nil {
		log.Printf("⚠️ Hotel %s referenced by entry %s no longer exists, keeping snapshot", entry.HotelID, entry.ID)
		return
	}

	snap := entry.Snapshot.Data()
	MergeSnapshot(&snap, hotel)
	entry.Snapshot = datatypes.NewJSONType(snap)
}

// fillAirportName resolves the canonical airport name for entries that
// reference an airport without carrying its display name. Lookup
// failure degrades the same way a hotel lookup does.
func (e *Engine) fillAirportName(ctx context.Context, entry *models.HotelEntry) {
	if entry.AirportID == nil || strings.TrimSpace(entry.AirportName) != "" {
		return
	}
	airport, err := e.Airports.FindByID(ctx, *entry.AirportID)
	if err != nil {
		log.Printf("⚠️ Airport lookup failed for entry %s (airport %s): %v", entry.ID, entry.AirportID, err)
		return
	}
	if airport == nil {
		return
	}
	entry.AirportName = airport.Name
}

// MergeSnapshot applies canonical hotel data to a snapshot field by
// field. Images are volatile and always refreshed when the canonical
// record has any. Every other field is filled only when the snapshot
// holds no value: a non-empty snapshot value is what the client was
// shown at booking time and is never overwritten.
func MergeSnapshot(snap *models.ReferenceSnapshot, hotel *models.Hotel) {
	if len(hotel.Images) > 0 {
		snap.Images = []models.Image(hotel.Images)
	}
	if strings.TrimSpace(snap.Name) == "" {
		snap.Name = hotel.Name
	}
	if strings.TrimSpace(snap.City) == "" {
		snap.City = hotel.City
	}
	if strings.TrimSpace(snap.Country) == "" {
		snap.Country = hotel.Country
	}
	if snap.Stars == 0 {
		snap.Stars = hotel.Stars
	}
	if strings.TrimSpace(snap.Description) == "" {
		snap.Description = hotel.Description
	}
	if len(snap.RoomTypes) == 0 {
		snap.RoomTypes = []string(hotel.RoomTypes)
	}
}
