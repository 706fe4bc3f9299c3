package services

import (
	"fmt"
	"sort"
	"time"

	"hotel-reservations/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AlternativeRoom is a catalog row offered in place of an unavailable room.
// NextAvailableFrom is nil for fully free rooms and carries the earliest
// upcoming checkout for occupied bed-type matches.
type AlternativeRoom struct {
	RoomCode          string     `json:"roomCode"`
	RoomName          string     `json:"roomName"`
	Beds              int        `json:"beds,omitempty"`
	BedType           string     `json:"bedType"`
	MaxOcc            int        `json:"maxOcc"`
	BasePrice         float64    `json:"basePrice"`
	NextAvailableFrom *time.Time `json:"nextAvailableFrom,omitempty"`
}

type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// IsAvailable reports whether the room is free over [checkIn, checkOut).
// A reservation overlaps iff its CheckIn < checkOut and its Checkout > checkIn.
// Store errors fail closed: an unknown state is treated as unavailable.
func (s *AvailabilityService) IsAvailable(roomCode string, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Reservation{}).
		Where("room = ? AND check_in < ? AND checkout > ?", roomCode, checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return count == 0, nil
}

// FindAlternatives suggests rooms for the requested window.
//
// Tier 1: rooms with sufficient capacity and no overlapping reservation,
// closest capacity fit first, then cheapest. When any exist only tier 1 is
// returned.
//
// Tier 2 (fallback): occupied rooms matching the bed type exactly, reporting
// the earliest checkout after checkIn as NextAvailableFrom; soonest five.
// Tier 2 deliberately ignores the guest count and has no "any" bed-type
// fallback.
func (s *AvailabilityService) FindAlternatives(checkIn, checkOut time.Time, totalGuests int, bedType string) ([]AlternativeRoom, error) {
	overlapping := s.DB.Model(&models.Reservation{}).
		Select("room").
		Where("check_in < ? AND checkout > ?", checkOut, checkIn)

	var free []models.Room
	err := s.DB.Model(&models.Room{}).
		Where("max_occ >= ?", totalGuests).
		Where("room_code NOT IN (?)", overlapping).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "ABS(max_occ - ?), base_price ASC",
			Vars:               []interface{}{totalGuests},
			WithoutParentheses: true,
		}}).
		Find(&free).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if len(free) > 0 {
		alts := make([]AlternativeRoom, 0, len(free))
		for _, room := range free {
			alts = append(alts, AlternativeRoom{
				RoomCode:  room.RoomCode,
				RoomName:  room.RoomName,
				Beds:      room.Beds,
				BedType:   room.BedType,
				MaxOcc:    room.MaxOcc,
				BasePrice: room.BasePrice,
			})
		}
		return alts, nil
	}

	var candidates []models.Reservation
	err = s.DB.
		Joins("JOIN rooms ON rooms.room_code = reservations.room").
		Where("rooms.bed_type = ? AND reservations.checkout > ?", bedType, checkIn).
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if len(candidates) == 0 {
		return []AlternativeRoom{}, nil
	}

	earliest := make(map[string]time.Time)
	for _, res := range candidates {
		if from, ok := earliest[res.Room]; !ok || res.Checkout.Before(from) {
			earliest[res.Room] = res.Checkout
		}
	}

	codes := make([]string, 0, len(earliest))
	for code := range earliest {
		codes = append(codes, code)
	}
	var rooms []models.Room
	if err := s.DB.Where("room_code IN ?", codes).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	alts := make([]AlternativeRoom, 0, len(rooms))
	for _, room := range rooms {
		from := earliest[room.RoomCode]
		alts = append(alts, AlternativeRoom{
			RoomCode:          room.RoomCode,
			RoomName:          room.RoomName,
			BedType:           room.BedType,
			MaxOcc:            room.MaxOcc,
			BasePrice:         room.BasePrice,
			NextAvailableFrom: &from,
		})
	}
	sort.Slice(alts, func(i, j int) bool {
		return alts[i].NextAvailableFrom.Before(*alts[j].NextAvailableFrom)
	})
	if len(alts) > 5 {
		alts = alts[:5]
	}
	return alts, nil
}
