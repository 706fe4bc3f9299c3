package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAvailable_OverlapRules(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db, "GAR", "Garden Terrace", 1, "Queen", 2, 125)
	seedReservation(t, db, 1, "GAR", date(2024, time.July, 10), date(2024, time.July, 15), 125, "Ana", "Reyes")

	svc := NewAvailabilityService(db)

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"inside existing stay", date(2024, time.July, 12), date(2024, time.July, 14), false},
		{"straddles existing stay", date(2024, time.July, 8), date(2024, time.July, 20), false},
		{"overlaps the start", date(2024, time.July, 9), date(2024, time.July, 11), false},
		{"overlaps the end", date(2024, time.July, 14), date(2024, time.July, 18), false},
		{"ends on existing check-in", date(2024, time.July, 5), date(2024, time.July, 10), true},
		{"starts on existing checkout", date(2024, time.July, 15), date(2024, time.July, 20), true},
		{"entirely before", date(2024, time.July, 1), date(2024, time.July, 5), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.IsAvailable("GAR", tc.checkIn, tc.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsAvailable_OtherRoomUnaffected(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db, "GAR", "Garden Terrace", 1, "Queen", 2, 125)
	seedRoom(t, db, "WIL", "Willow Den", 1, "Double", 2, 110)
	seedReservation(t, db, 1, "GAR", date(2024, time.July, 10), date(2024, time.July, 15), 125, "Ana", "Reyes")

	svc := NewAvailabilityService(db)
	available, err := svc.IsAvailable("WIL", date(2024, time.July, 10), date(2024, time.July, 15))
	require.NoError(t, err)
	assert.True(t, available)
}

func TestFindAlternatives_Tier1CapacityFitOrder(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db, "GAR", "Garden Terrace", 1, "Queen", 2, 125)
	seedRoom(t, db, "WIL", "Willow Den", 1, "Double", 2, 110)
	seedRoom(t, db, "HAR", "Harbor View", 2, "Double", 4, 155)
	seedRoom(t, db, "ORC", "Orchard Suite", 3, "Queen", 6, 215)
	// GAR is taken over the requested window.
	seedReservation(t, db, 1, "GAR", date(2024, time.July, 10), date(2024, time.July, 15), 125, "Ana", "Reyes")

	svc := NewAvailabilityService(db)
	alts, err := svc.FindAlternatives(date(2024, time.July, 12), date(2024, time.July, 14), 2, "Queen")
	require.NoError(t, err)
	require.Len(t, alts, 3)

	// Closest capacity fit first, free rooms only, bed type irrelevant in tier 1.
	assert.Equal(t, "WIL", alts[0].RoomCode)
	assert.Equal(t, "HAR", alts[1].RoomCode)
	assert.Equal(t, "ORC", alts[2].RoomCode)
	for _, alt := range alts {
		assert.Nil(t, alt.NextAvailableFrom)
	}
}

func TestFindAlternatives_Tier1PriceBreaksCapacityTies(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db, "MAP", "Maple Loft", 1, "King", 2, 175)
	seedRoom(t, db, "WIL", "Willow Den", 1, "Double", 2, 110)

	svc := NewAvailabilityService(db)
	alts, err := svc.FindAlternatives(date(2024, time.July, 12), date(2024, time.July, 14), 2, "King")
	require.NoError(t, err)
	require.Len(t, alts, 2)

	assert.Equal(t, "WIL", alts[0].RoomCode)
	assert.Equal(t, "MAP", alts[1].RoomCode)
}

func TestFindAlternatives_Tier2BedTypeFallback(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db, "GAR", "Garden Terrace", 1, "Queen", 2, 125)
	seedRoom(t, db, "ORC", "Orchard Suite", 3, "Queen", 6, 215)
	seedRoom(t, db, "HAR", "Harbor View", 2, "Double", 4, 155)
	seedReservation(t, db, 1, "GAR", date(2024, time.August, 1), date(2024, time.August, 5), 125, "Ana", "Reyes")
	seedReservation(t, db, 2, "GAR", date(2024, time.August, 20), date(2024, time.August, 25), 125, "Ana", "Reyes")
	seedReservation(t, db, 3, "ORC", date(2024, time.August, 1), date(2024, time.August, 3), 215, "Joe", "Ivers")
	seedReservation(t, db, 4, "HAR", date(2024, time.August, 1), date(2024, time.August, 9), 155, "Max", "Low")

	svc := NewAvailabilityService(db)
	// No room holds 99 guests, so tier 1 is empty and the bed-type fallback runs.
	alts, err := svc.FindAlternatives(date(2024, time.August, 1), date(2024, time.August, 10), 99, "Queen")
	require.NoError(t, err)
	require.Len(t, alts, 2)

	// Queen rooms only, soonest checkout first; GAR reports its earliest
	// upcoming checkout, not the later stay's.
	assert.Equal(t, "ORC", alts[0].RoomCode)
	require.NotNil(t, alts[0].NextAvailableFrom)
	assert.Equal(t, date(2024, time.August, 3), date(alts[0].NextAvailableFrom.Year(), alts[0].NextAvailableFrom.Month(), alts[0].NextAvailableFrom.Day()))

	assert.Equal(t, "GAR", alts[1].RoomCode)
	require.NotNil(t, alts[1].NextAvailableFrom)
	assert.Equal(t, date(2024, time.August, 5), date(alts[1].NextAvailableFrom.Year(), alts[1].NextAvailableFrom.Month(), alts[1].NextAvailableFrom.Day()))
}

func TestFindAlternatives_Tier2NoBedTypeMatch(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db, "HAR", "Harbor View", 2, "Double", 4, 155)
	seedReservation(t, db, 1, "HAR", date(2024, time.August, 1), date(2024, time.August, 9), 155, "Max", "Low")

	svc := NewAvailabilityService(db)
	alts, err := svc.FindAlternatives(date(2024, time.August, 1), date(2024, time.August, 10), 99, "Queen")
	require.NoError(t, err)
	assert.Empty(t, alts)
}

func TestFindAlternatives_Tier2CapsAtFive(t *testing.T) {
	db := setupTestDB(t)
	codes := []string{"R1", "R2", "R3", "R4", "R5", "R6", "R7"}
	for i, code := range codes {
		seedRoom(t, db, code, "Room "+code, 1, "Queen", 2, 100)
		seedReservation(t, db, i+1, code,
			date(2024, time.August, 1),
			date(2024, time.August, 2+i),
			100, "Guest", "Guest")
	}

	svc := NewAvailabilityService(db)
	alts, err := svc.FindAlternatives(date(2024, time.August, 1), date(2024, time.August, 30), 99, "Queen")
	require.NoError(t, err)
	require.Len(t, alts, 5)
	assert.Equal(t, "R1", alts[0].RoomCode)
	assert.Equal(t, "R5", alts[4].RoomCode)
}
