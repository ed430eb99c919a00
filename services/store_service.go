package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rihlaty/travel-ops/database"
	"github.com/rihlaty/travel-ops/models"
)

// GORM-backed implementations of the itinerary engine's store
// interfaces. A soft-deleted record is indistinguishable from a missing
// one: GORM's deleted_at scope filters it out and the store returns
// (nil, nil).

type GormBookingStore struct{}

func (GormBookingStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := database.DB.WithContext(ctx).
		Preload("HotelEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("hotel_entries.position ASC")
		}).
		First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

type GormHotelStore struct{}

func (GormHotelStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Hotel, error) {
	var hotel models.Hotel
	err := database.DB.WithContext(ctx).First(&hotel, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

type GormTourStore struct{}

func (GormTourStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Tour, error) {
	var tour models.Tour
	err := database.DB.WithContext(ctx).First(&tour, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

type GormAirportStore struct{}

func (GormAirportStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Airport, error) {
	var airport models.Airport
	err := database.DB.WithContext(ctx).First(&airport, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &airport, nil
}
