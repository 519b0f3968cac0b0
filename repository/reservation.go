package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dzoniops/booking-service/models"
)

type ReservationRepository interface {
	// Create stores the reservation with its booked dates.
	Create(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id int64) (*models.Reservation, error)
	// Update saves the reservation columns. With replaceDates the stored
	// booked dates are swapped for reservation.BookedDates.
	Update(ctx context.Context, reservation *models.Reservation, replaceDates bool) error
	AddFeedback(ctx context.Context, feedback *models.Feedback) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error)
	// ListOverlapping returns the non-cancelled reservations whose
	// [check_in, check_out] intersects [from, to]. roomID 0 matches every room.
	ListOverlapping(ctx context.Context, roomID int64, from, to time.Time) ([]models.Reservation, error)
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	DeleteCheckedInBefore(ctx context.Context, cutoff time.Time) (int64, error)
	// WithinRoomLock runs fn in a transaction that serializes writers of one room.
	WithinRoomLock(ctx context.Context, roomID int64, fn func(tx ReservationRepository) error) error
	// WithinTx runs fn in one transaction. Both repositories handed to fn
	// are bound to it.
	WithinTx(ctx context.Context, fn func(tx ReservationRepository, catalog CatalogRepository) error) error
}

type GormReservationRepository struct {
	db *gorm.DB
}

func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

func (r *GormReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *GormReservationRepository) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.WithContext(ctx).
		Preload("BookedDates", func(db *gorm.DB) *gorm.DB { return db.Order("date") }).
		Preload("Feedback").
		First(&res, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *GormReservationRepository) Update(
	ctx context.Context,
	reservation *models.Reservation,
	replaceDates bool,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(reservation).Error; err != nil {
			return err
		}
		if !replaceDates {
			return nil
		}
		if err := tx.Where("reservation_id = ?", reservation.ID).Delete(&models.BookedDate{}).Error; err != nil {
			return err
		}
		for i := range reservation.BookedDates {
			reservation.BookedDates[i].ID = 0
			reservation.BookedDates[i].ReservationId = reservation.ID
		}
		if len(reservation.BookedDates) == 0 {
			return nil
		}
		return tx.Create(&reservation.BookedDates).Error
	})
}

func (r *GormReservationRepository) AddFeedback(ctx context.Context, feedback *models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *GormReservationRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.DeleteByIDs(ctx, []int64{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormReservationRepository) List(
	ctx context.Context,
	filter models.ReservationFilter,
) ([]models.Reservation, error) {
	var reservations []models.Reservation

	q := r.db.WithContext(ctx).Model(&models.Reservation{})
	if filter.UserId != 0 {
		q = q.Where("user_id = ?", filter.UserId)
	}
	if filter.PropertyId != 0 {
		q = q.Where("property_id = ?", filter.PropertyId)
	}
	if filter.RoomId != 0 {
		q = q.Where("room_id = ?", filter.RoomId)
	}
	if filter.PropertyIds != nil {
		if len(filter.PropertyIds) == 0 {
			return []models.Reservation{}, nil
		}
		q = q.Where("property_id IN ?", filter.PropertyIds)
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}

	err := q.Preload("BookedDates").
		Preload("Feedback").
		Order("check_in DESC, id DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *GormReservationRepository) ListOverlapping(
	ctx context.Context,
	roomID int64,
	from, to time.Time,
) ([]models.Reservation, error) {
	var reservations []models.Reservation

	q := r.db.WithContext(ctx).
		Where("check_in <= ? AND check_out >= ?", to, from).
		Where("LOWER(status) NOT LIKE ?", "cancel%")
	if roomID != 0 {
		q = q.Where("room_id = ?", roomID)
	}
	if err := q.Preload("BookedDates").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *GormReservationRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reservation_id IN ?", ids).Delete(&models.BookedDate{}).Error; err != nil {
			return fmt.Errorf("delete booked dates: %w", err)
		}
		if err := tx.Where("reservation_id IN ?", ids).Delete(&models.Feedback{}).Error; err != nil {
			return fmt.Errorf("delete feedback: %w", err)
		}
		res := tx.Where("id IN ?", ids).Delete(&models.Reservation{})
		if res.Error != nil {
			return fmt.Errorf("delete reservations: %w", res.Error)
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}

func (r *GormReservationRepository) DeleteCheckedInBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("check_in < ?", cutoff).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	return r.DeleteByIDs(ctx, ids)
}

func (r *GormReservationRepository) WithinRoomLock(
	ctx context.Context,
	roomID int64,
	fn func(tx ReservationRepository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// SQLite serializes writers on its own.
		if tx.Dialector.Name() == "postgres" {
			var locked []models.Room
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Select("id").
				Where("id = ?", roomID).
				Find(&locked).Error
			if err != nil {
				return fmt.Errorf("lock room %d: %w", roomID, err)
			}
			if len(locked) == 0 {
				// room lives in a remote catalog
				if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", roomID).Error; err != nil {
					return fmt.Errorf("lock room %d: %w", roomID, err)
				}
			}
		}
		return fn(&GormReservationRepository{db: tx})
	})
}

func (r *GormReservationRepository) WithinTx(
	ctx context.Context,
	fn func(tx ReservationRepository, catalog CatalogRepository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormReservationRepository{db: tx}, &GormCatalogRepository{db: tx})
	})
}
