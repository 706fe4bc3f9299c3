package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	rooms        *services.RoomService
	availability *services.AvailabilityService
}

func NewRoomController(rooms *services.RoomService, availability *services.AvailabilityService) *RoomController {
	return &RoomController{rooms: rooms, availability: availability}
}

// ----------------------------------------------------
// 1. List Rooms (GET /api/rooms)
// ----------------------------------------------------

// GetRooms returns the catalog ordered by popularity. A store failure
// degrades to an empty list; it is logged, not surfaced.
func (rc *RoomController) GetRooms(c *gin.Context) {
	views, err := rc.rooms.ListRooms(time.Now())
	if err != nil {
		log.Printf("❌ ListRooms failed: %v", err)
		utils.JSONSuccess(c, http.StatusOK, []services.RoomView{})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// ----------------------------------------------------
// 2. Room Details (GET /api/rooms/:code)
// ----------------------------------------------------

func (rc *RoomController) GetRoomByCode(c *gin.Context) {
	code := c.Param("code")

	room, err := rc.rooms.GetRoomDetails(code)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			log.Printf("❌ GetRoomDetails(%s) failed: %v", code, err)
		}
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 3. Room Price (GET /api/rooms/:code/price)
// ----------------------------------------------------

func (rc *RoomController) GetRoomPrice(c *gin.Context) {
	code := c.Param("code")

	price, err := rc.rooms.GetRoomPrice(code)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			log.Printf("❌ GetRoomPrice(%s) failed: %v", code, err)
		}
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"roomCode": code, "basePrice": price})
}

// ----------------------------------------------------
// 4. Availability (GET /api/rooms/:code/availability)
// ----------------------------------------------------

// CheckAvailability reports whether the room is free over the requested
// window. A store failure reads as unavailable.
func (rc *RoomController) CheckAvailability(c *gin.Context) {
	code := c.Param("code")

	checkIn, checkOut, ok := parseStayWindow(c)
	if !ok {
		return
	}

	available, err := rc.availability.IsAvailable(code, checkIn, checkOut)
	if err != nil {
		log.Printf("❌ IsAvailable(%s) failed: %v", code, err)
		available = false
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"roomCode": code, "available": available})
}

// ----------------------------------------------------
// 5. Alternatives (GET /api/rooms/alternatives)
// ----------------------------------------------------

func (rc *RoomController) FindAlternatives(c *gin.Context) {
	checkIn, checkOut, ok := parseStayWindow(c)
	if !ok {
		return
	}

	guests, err := strconv.Atoi(c.DefaultQuery("guests", "1"))
	if err != nil || guests < 1 {
		utils.JSONError(c, http.StatusBadRequest, "guests must be a positive integer")
		return
	}
	bedType := c.Query("bedType")

	alts, err := rc.availability.FindAlternatives(checkIn, checkOut, guests, bedType)
	if err != nil {
		log.Printf("❌ FindAlternatives failed: %v", err)
		utils.JSONSuccess(c, http.StatusOK, []services.AlternativeRoom{})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, alts)
}

// parseStayWindow reads the checkIn/checkOut query params, answering 400 on
// a missing or malformed date.
func parseStayWindow(c *gin.Context) (time.Time, time.Time, bool) {
	checkIn, err := utils.ParseDate(c.Query("checkIn"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkIn must be a YYYY-MM-DD date")
		return time.Time{}, time.Time{}, false
	}
	checkOut, err := utils.ParseDate(c.Query("checkOut"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOut must be a YYYY-MM-DD date")
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}
