package services

import (
	"runtime"
	"testing"
	"time"

	"hotel-reservations/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	if runtime.GOOS == "windows" {
		t.Skip("skipping sqlite test on windows because CGO is disabled")
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open sqlite db")

	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Reservation{}))
	return db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedRoom(t *testing.T, db *gorm.DB, code, name string, beds int, bedType string, maxOcc int, basePrice float64) {
	t.Helper()
	room := models.Room{
		RoomCode:  code,
		RoomName:  name,
		Beds:      beds,
		BedType:   bedType,
		MaxOcc:    maxOcc,
		BasePrice: basePrice,
	}
	require.NoError(t, db.Create(&room).Error)
}

func seedReservation(t *testing.T, db *gorm.DB, code int, room string, checkIn, checkOut time.Time, rate float64, firstName, lastName string) {
	t.Helper()
	res := models.Reservation{
		Code:      code,
		Room:      room,
		CheckIn:   checkIn,
		Checkout:  checkOut,
		Rate:      rate,
		FirstName: firstName,
		LastName:  lastName,
		Adults:    2,
	}
	require.NoError(t, db.Create(&res).Error)
}
