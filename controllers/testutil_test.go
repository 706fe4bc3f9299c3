package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"runtime"
	"testing"

	"hotel-reservations/models"
	"hotel-reservations/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// setupControllerTest wires the handlers against an in-memory store. With
// broken set, the underlying connection is closed first so every query fails
// like an unreachable store.
func setupControllerTest(t *testing.T, broken bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if runtime.GOOS == "windows" {
		t.Skip("skipping sqlite test on windows because CGO is disabled")
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Reservation{}))

	if broken {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	}

	roomService := services.NewRoomService(db)
	availabilityService := services.NewAvailabilityService(db)
	reservationService := services.NewReservationService(db)

	rc := NewRoomController(roomService, availabilityService)
	resc := NewReservationController(reservationService, availabilityService, roomService)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/rooms", rc.GetRooms)
	api.GET("/rooms/:code/availability", rc.CheckAvailability)
	api.GET("/reservations", resc.SearchReservations)
	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var body envelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return resp, body
}
