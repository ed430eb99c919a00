package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"

	"github.com/rihlaty/travel-ops/database"
	"github.com/rihlaty/travel-ops/itinerary"
	"github.com/rihlaty/travel-ops/models"
	"github.com/rihlaty/travel-ops/services"
)

// BackfillSnapshots walks hotel entries whose snapshots are missing
// fields and fills them from the canonical records, persisting the
// result. Unlike the per-request enrichment this writes back, so the
// next authoring edit shows complete data.
func BackfillSnapshots() {
	log.Println("Running job: BackfillSnapshots...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var entries []models.HotelEntry
	if err := database.DB.Where("hotel_id IS NOT NULL").Find(&entries).Error; err != nil {
		log.Printf("🔥 Failed to list hotel entries: %v", err)
		return
	}

	hotels := services.GormHotelStore{}
	updated := 0
	for i := range entries {
		entry := &entries[i]

		hotel, err := hotels.FindByID(ctx, *entry.HotelID)
		if err != nil || hotel == nil {
			continue
		}

		before := entry.Snapshot.Data()
		after := before
		itinerary.MergeSnapshot(&after, hotel)

		if snapshotsEqual(before, after) {
			continue
		}
		entry.Snapshot = datatypes.NewJSONType(after)
		if err := database.DB.Model(entry).Update("snapshot", entry.Snapshot).Error; err != nil {
			log.Printf("🔥 Failed to persist snapshot for entry %s: %v", entry.ID, err)
			continue
		}
		updated++
	}

	log.Printf("Backfilled %d snapshot(s).", updated)
}

func snapshotsEqual(a, b models.ReferenceSnapshot) bool {
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	return string(ja) == string(jb)
}
