package itinerary

import (
	"fmt"
	"math"
	"time"

	"github.com/rihlaty/travel-ops/models"
)

// DefaultNightsFloor is the minimum nights value an inverted date range
// clamps to.
const DefaultNightsFloor = 1

// Nights computes the stay length as the day difference rounded up.
// An inverted range clamps to floor and reports an anomaly instead of
// going negative; callers log it and carry on.
func Nights(checkIn, checkOut time.Time, floor int) (int, bool) {
	if floor < DefaultNightsFloor {
		floor = DefaultNightsFloor
	}
	if checkOut.Before(checkIn) {
		return floor, true
	}
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	return n, false
}

// EntryNights returns the effective nights for a hotel entry. Stored
// nights are only trusted when the entry carries no dates.
func EntryNights(e *models.HotelEntry, floor int) (int, bool) {
	if e.CheckIn.IsZero() && e.CheckOut.IsZero() {
		return e.Nights, false
	}
	return Nights(e.CheckIn, e.CheckOut, floor)
}

// TotalChildren is the booking-level child aggregate: the sum of the
// three stored age bands. Room-level allocations are not reconciled
// against it.
func TotalChildren(b *models.Booking) int {
	return b.ChildrenUnder3 + b.Children3To6 + b.Children6To12
}

// RoomChildren is the informational per-room child aggregate.
func RoomChildren(r models.RoomAllocation) int {
	return r.ChildrenUnder3 + r.Children3To6 + r.Children6To12
}

// TransportationLines builds the narrative block: one sentence per
// hotel entry that includes reception and/or farewell, phrased by
// vehicle class. Entries with no snapshot contribute nothing.
func TransportationLines(entries []models.HotelEntry, d *Dictionary, lang string) []string {
	var lines []string
	for i := range entries {
		e := &entries[i]
		snap := e.Snapshot.Data()
		if snap.Name == "" {
			continue
		}
		if !e.IncludeReception && !e.IncludeFarewell {
			continue
		}

		airport := AirportLabel(d, e.AirportName, lang)
		vehicle := VehicleLabel(e.VehicleClass, lang)

		var line string
		switch {
		case e.IncludeReception && e.IncludeFarewell:
			if lang == LangAR {
				line = fmt.Sprintf("الاستقبال والتوديع بين %s و%s بواسطة %s", airport, snap.Name, vehicle)
			} else {
				line = fmt.Sprintf("Reception & farewell between %s and %s by %s", airport, snap.Name, vehicle)
			}
		case e.IncludeReception:
			if lang == LangAR {
				line = fmt.Sprintf("الاستقبال من %s إلى %s بواسطة %s", airport, snap.Name, vehicle)
			} else {
				line = fmt.Sprintf("Reception from %s to %s by %s", airport, snap.Name, vehicle)
			}
		case e.IncludeFarewell:
			if lang == LangAR {
				line = fmt.Sprintf("التوديع من %s إلى %s بواسطة %s", snap.Name, airport, vehicle)
			} else {
				line = fmt.Sprintf("Farewell from %s to %s by %s", snap.Name, airport, vehicle)
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// PrimaryImage picks the display image for any image list: the first
// image flagged primary wins, then the first image, then none.
func PrimaryImage(images []models.Image) *models.Image {
	for i := range images {
		if images[i].IsPrimary {
			return &images[i]
		}
	}
	if len(images) > 0 {
		return &images[0]
	}
	return nil
}
