package repository

import (
	"context"

	"github.com/motorhouse/garage-invoicing/internal/domain/entity"
	"github.com/motorhouse/garage-invoicing/internal/domain/enum"
	"github.com/motorhouse/garage-invoicing/internal/domain/repository"
	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// CreateSubmission writes the whole booking aggregate in one transaction
func (r *bookingRepository) CreateSubmission(ctx context.Context, sub *repository.BookingSubmission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub.Customer).Error; err != nil {
			return err
		}

		sub.Vehicle.CustomerID = sub.Customer.ID
		if err := tx.Create(sub.Vehicle).Error; err != nil {
			return err
		}

		sub.Booking.CustomerID = sub.Customer.ID
		sub.Booking.VehicleID = sub.Vehicle.ID
		if err := tx.Create(sub.Booking).Error; err != nil {
			return err
		}

		for i := range sub.Items {
			sub.Items[i].BookingID = sub.Booking.ID
		}
		if len(sub.Items) > 0 {
			if err := tx.Create(&sub.Items).Error; err != nil {
				return err
			}
		}

		for i := range sub.MiscItems {
			sub.MiscItems[i].BookingID = sub.Booking.ID
		}
		if len(sub.MiscItems) > 0 {
			if err := tx.Create(&sub.MiscItems).Error; err != nil {
				return err
			}
		}

		if sub.Invoice != nil {
			sub.Invoice.BookingID = sub.Booking.ID
			if err := tx.Create(sub.Invoice).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// List returns all bookings with customer, vehicle and invoice, newest first
func (r *bookingRepository) List(ctx context.Context) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Invoice").
		Order("booking_date DESC, id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Cancel flips the booking and its invoice to canceled atomically. Cancelling
// an already-canceled booking is a no-op.
func (r *bookingRepository) Cancel(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entity.Booking{}).
			Where("id = ?", id).
			Update("status", enum.BookingStatusCanceled).Error
		if err != nil {
			return err
		}
		return tx.Model(&entity.Invoice{}).
			Where("booking_id = ?", id).
			Update("status", enum.InvoiceStatusCanceled).Error
	})
}

// Count returns the total number of bookings
func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Booking{}).Count(&count).Error
	return count, err
}
