package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotel-reservations/models"

	"gorm.io/gorm"
)

// ReservationView is a reservation row joined with its room's name for
// display.
type ReservationView struct {
	models.Reservation
	RoomName string `json:"roomName" gorm:"column:room_name"`
}

// ReservationSearch holds the optional search filters. A zero-value field
// means "not filtered". All present filters combine with AND.
type ReservationSearch struct {
	Code      string
	FirstName string
	LastName  string
	RoomCode  string
	StartDate *time.Time
	EndDate   *time.Time
}

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// Create inserts a reservation under a freshly assigned code, 1 + the current
// maximum (1 for an empty table). Code assignment and insert run in one
// transaction, so the counter is as safe as the store's isolation level. No
// overlap constraint is enforced here: callers check availability first, and
// the window between that check and this insert is not closed.
func (s *ReservationService) Create(roomCode string, checkIn, checkOut time.Time, firstName, lastName string, adults, kids int, rate float64) (int, error) {
	var newCode int
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var maxCode int
		if err := tx.Model(&models.Reservation{}).
			Select("COALESCE(MAX(code), 0)").
			Scan(&maxCode).Error; err != nil {
			return err
		}
		newCode = maxCode + 1

		reservation := models.Reservation{
			Code:      newCode,
			Room:      roomCode,
			CheckIn:   checkIn,
			Checkout:  checkOut,
			Rate:      rate,
			FirstName: firstName,
			LastName:  lastName,
			Adults:    adults,
			Kids:      kids,
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return newCode, nil
}

// Cancel deletes the reservation with the given code. True iff exactly one
// row was removed; cancelling an unknown code is false, not an error.
func (s *ReservationService) Cancel(code int) (bool, error) {
	result := s.DB.Where("code = ?", code).Delete(&models.Reservation{})
	if result.Error != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Exists reports whether a reservation with the given code is on the books.
func (s *ReservationService) Exists(code int) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Reservation{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return count > 0, nil
}

// Search returns reservations matching every present filter. The code filter
// is an exact match (a non-numeric code matches nothing); name and room
// filters are case-insensitive containment; the date pair, when both are
// given, keeps reservations overlapping [StartDate, EndDate). Rows come back
// ordered by code so output is stable; the ordering is not contractual.
func (s *ReservationService) Search(filter ReservationSearch) ([]ReservationView, error) {
	query := s.DB.Model(&models.Reservation{}).
		Select("reservations.*, rooms.room_name").
		Joins("JOIN rooms ON rooms.room_code = reservations.room")

	if filter.Code != "" {
		code, err := strconv.Atoi(filter.Code)
		if err != nil {
			return []ReservationView{}, nil
		}
		query = query.Where("reservations.code = ?", code)
	}
	if filter.FirstName != "" {
		query = query.Where("LOWER(reservations.first_name) LIKE ?", "%"+strings.ToLower(filter.FirstName)+"%")
	}
	if filter.LastName != "" {
		query = query.Where("LOWER(reservations.last_name) LIKE ?", "%"+strings.ToLower(filter.LastName)+"%")
	}
	if filter.RoomCode != "" {
		query = query.Where("LOWER(reservations.room) LIKE ?", "%"+strings.ToLower(filter.RoomCode)+"%")
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.Where("reservations.check_in < ? AND reservations.checkout > ?", *filter.EndDate, *filter.StartDate)
	}

	var views []ReservationView
	if err := query.Order("reservations.code").Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return views, nil
}
