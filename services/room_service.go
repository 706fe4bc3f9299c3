package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"hotel-reservations/models"
	"hotel-reservations/utils"

	"gorm.io/gorm"
)

// popularityWindowDays is the trailing window the popularity score is
// computed over.
const popularityWindowDays = 180

// RoomView is a room plus its usage-derived catalog fields.
type RoomView struct {
	models.Room

	// Fraction of the trailing 180-day window the room was booked. Future
	// nights of reservations that overlap the window count in full, so the
	// score is not capped at 1.
	PopularityScore float64 `json:"popularityScore"`

	// Earliest future check-in; falls back to asOf itself when the room has
	// no upcoming reservation, so "free today" and "nothing on the books"
	// are indistinguishable here.
	NextAvailableCheckin time.Time `json:"nextAvailableCheckin"`

	LastStayLength   int        `json:"lastStayLength"`
	LastCheckoutDate *time.Time `json:"lastCheckoutDate,omitempty"`
}

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// ListRooms returns every room ordered by popularity score descending.
// All date comparisons are relative to asOf rather than an implicit now.
func (s *RoomService) ListRooms(asOf time.Time) ([]RoomView, error) {
	asOf = utils.DateOnly(asOf)
	windowStart := asOf.AddDate(0, 0, -popularityWindowDays)

	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var reservations []models.Reservation
	if err := s.DB.Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	type roomUsage struct {
		daysBooked   int
		nextCheckIn  *time.Time
		lastCheckout *time.Time
		lastStayLen  int
	}
	usage := make(map[string]*roomUsage, len(rooms))
	statsFor := func(room string) *roomUsage {
		u, ok := usage[room]
		if !ok {
			u = &roomUsage{}
			usage[room] = u
		}
		return u
	}

	for _, res := range reservations {
		u := statsFor(res.Room)

		checkIn := utils.DateOnly(res.CheckIn)
		checkout := utils.DateOnly(res.Checkout)

		if checkout.After(windowStart) {
			from := checkIn
			if from.Before(windowStart) {
				from = windowStart
			}
			u.daysBooked += utils.DaysBetween(from, checkout)
		}

		if checkIn.After(asOf) && (u.nextCheckIn == nil || checkIn.Before(*u.nextCheckIn)) {
			ci := checkIn
			u.nextCheckIn = &ci
		}

		if checkout.Before(asOf) && (u.lastCheckout == nil || checkout.After(*u.lastCheckout)) {
			co := checkout
			u.lastCheckout = &co
			u.lastStayLen = utils.DaysBetween(checkIn, checkout)
		}
	}

	views := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		view := RoomView{Room: room, NextAvailableCheckin: asOf}
		if u, ok := usage[room.RoomCode]; ok {
			view.PopularityScore = math.Round(float64(u.daysBooked)/popularityWindowDays*100) / 100
			if u.nextCheckIn != nil {
				view.NextAvailableCheckin = *u.nextCheckIn
			}
			view.LastStayLength = u.lastStayLen
			view.LastCheckoutDate = u.lastCheckout
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].PopularityScore > views[j].PopularityScore
	})
	return views, nil
}

// GetRoomDetails returns the room with the given code, or ErrNotFound.
func (s *RoomService) GetRoomDetails(roomCode string) (*models.Room, error) {
	var room models.Room
	err := s.DB.Where("room_code = ?", roomCode).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &room, nil
}

// GetRoomPrice returns the room's base nightly rate only.
func (s *RoomService) GetRoomPrice(roomCode string) (float64, error) {
	room, err := s.GetRoomDetails(roomCode)
	if err != nil {
		return 0, err
	}
	return room.BasePrice, nil
}
