package jobs

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/rihlaty/travel-ops/database"
	"github.com/rihlaty/travel-ops/models"
)

const purgeRetentionDays = 30

// PurgeDeletedBookings permanently removes bookings that were
// soft-deleted more than the retention window ago, together with their
// embedded hotel entries.
func PurgeDeletedBookings() {
	log.Println("Running job: PurgeDeletedBookings...")

	cutoff := time.Now().AddDate(0, 0, -purgeRetentionDays)

	var ids []uuid.UUID
	err := database.DB.Unscoped().Model(&models.Booking{}).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Pluck("id", &ids).Error
	if err != nil {
		log.Printf("🔥 Failed to list purgeable bookings: %v", err)
		return
	}
	if len(ids) == 0 {
		log.Println("No bookings due for purge.")
		return
	}

	if err := database.DB.Unscoped().Where("booking_id IN ?", ids).Delete(&models.HotelEntry{}).Error; err != nil {
		log.Printf("🔥 Failed to purge hotel entries: %v", err)
		return
	}
	if err := database.DB.Unscoped().Where("id IN ?", ids).Delete(&models.Booking{}).Error; err != nil {
		log.Printf("🔥 Failed to purge bookings: %v", err)
		return
	}

	log.Printf("Purged %d booking(s) past the %d-day retention window.", len(ids), purgeRetentionDays)
}
