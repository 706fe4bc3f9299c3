package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	reservations *services.ReservationService
	availability *services.AvailabilityService
	rooms        *services.RoomService
	pricing      services.PricingService
}

func NewReservationController(
	reservations *services.ReservationService,
	availability *services.AvailabilityService,
	rooms *services.RoomService,
) *ReservationController {
	return &ReservationController{
		reservations: reservations,
		availability: availability,
		rooms:        rooms,
	}
}

type createReservationRequest struct {
	RoomCode  string `json:"roomCode" binding:"required"`
	CheckIn   string `json:"checkIn" binding:"required"`
	CheckOut  string `json:"checkOut" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName" binding:"required"`
	Adults    int    `json:"adults"`
	Kids      int    `json:"kids"`
}

// ----------------------------------------------------
// 1. Create Reservation (POST /api/reservations)
// ----------------------------------------------------

// CreateReservation books a room: availability is checked first (a store
// failure reads as unavailable), the rate is snapshotted from the room's
// base price, and the assigned code plus the stay total come back. When the
// room is occupied the response carries alternative rooms instead.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkIn must be a YYYY-MM-DD date")
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOut must be a YYYY-MM-DD date")
		return
	}
	if !checkOut.After(checkIn) {
		utils.JSONError(c, http.StatusBadRequest, "checkOut must be after checkIn")
		return
	}
	if req.Adults < 1 {
		req.Adults = 1
	}

	req.RoomCode = strings.TrimSpace(req.RoomCode)
	room, err := rc.rooms.GetRoomDetails(req.RoomCode)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			log.Printf("❌ GetRoomDetails(%s) failed: %v", req.RoomCode, err)
		}
		utils.JSONError(c, http.StatusNotFound, "Room not found")
		return
	}

	available, err := rc.availability.IsAvailable(room.RoomCode, checkIn, checkOut)
	if err != nil {
		log.Printf("❌ IsAvailable(%s) failed: %v", room.RoomCode, err)
		available = false
	}
	if !available {
		alts, altErr := rc.availability.FindAlternatives(checkIn, checkOut, req.Adults+req.Kids, room.BedType)
		if altErr != nil {
			log.Printf("❌ FindAlternatives failed: %v", altErr)
			alts = []services.AlternativeRoom{}
		}
		c.JSON(http.StatusConflict, gin.H{
			"success":      false,
			"error":        "Room is not available for the requested dates",
			"alternatives": alts,
		})
		return
	}

	code, err := rc.reservations.Create(
		room.RoomCode, checkIn, checkOut,
		req.FirstName, req.LastName,
		req.Adults, req.Kids,
		room.BasePrice,
	)
	if err != nil {
		log.Printf("❌ Create reservation failed: %v", err)
		utils.JSONError(c, http.StatusServiceUnavailable, "Reservation could not be created")
		return
	}

	total := rc.pricing.TotalCost(checkIn, checkOut, room.BasePrice)
	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"code":      code,
		"roomCode":  room.RoomCode,
		"rate":      room.BasePrice,
		"totalCost": total,
	})
}

// ----------------------------------------------------
// 2. Search Reservations (GET /api/reservations)
// ----------------------------------------------------

// SearchReservations filters by any combination of code, names, room and a
// date window; no filters returns everything. Store failure degrades to an
// empty list.
func (rc *ReservationController) SearchReservations(c *gin.Context) {
	filter := services.ReservationSearch{
		Code:      c.Query("code"),
		FirstName: c.Query("firstName"),
		LastName:  c.Query("lastName"),
		RoomCode:  c.Query("roomCode"),
	}

	if raw := c.Query("startDate"); raw != "" {
		start, err := utils.ParseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "startDate must be a YYYY-MM-DD date")
			return
		}
		filter.StartDate = &start
	}
	if raw := c.Query("endDate"); raw != "" {
		end, err := utils.ParseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "endDate must be a YYYY-MM-DD date")
			return
		}
		filter.EndDate = &end
	}

	views, err := rc.reservations.Search(filter)
	if err != nil {
		log.Printf("❌ Search reservations failed: %v", err)
		utils.JSONSuccess(c, http.StatusOK, []services.ReservationView{})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// ----------------------------------------------------
// 3. Cancel Reservation (DELETE /api/reservations/:code)
// ----------------------------------------------------

func (rc *ReservationController) CancelReservation(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Reservation code must be an integer")
		return
	}

	exists, err := rc.reservations.Exists(code)
	if err != nil {
		log.Printf("❌ Exists check for reservation %d failed: %v", code, err)
	}
	if !exists {
		utils.JSONError(c, http.StatusNotFound, "Reservation not found")
		return
	}

	cancelled, err := rc.reservations.Cancel(code)
	if err != nil {
		log.Printf("❌ Cancel reservation %d failed: %v", code, err)
	}
	if !cancelled {
		utils.JSONError(c, http.StatusNotFound, "Reservation not found")
		return
	}

	log.Printf("✅ Reservation %d cancelled.", code)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"code": code, "cancelled": true})
}

// ----------------------------------------------------
// 4. Quote a Stay (GET /api/reservations/quote)
// ----------------------------------------------------

// QuoteStay prices a stay without booking it. The nightly rate comes from
// the rate query param, or from the room's base price when roomCode is
// given instead.
func (rc *ReservationController) QuoteStay(c *gin.Context) {
	checkIn, checkOut, ok := parseStayWindow(c)
	if !ok {
		return
	}

	var rate float64
	if roomCode := c.Query("roomCode"); roomCode != "" {
		price, err := rc.rooms.GetRoomPrice(roomCode)
		if err != nil {
			if !errors.Is(err, services.ErrNotFound) {
				log.Printf("❌ GetRoomPrice(%s) failed: %v", roomCode, err)
			}
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		rate = price
	} else {
		parsed, err := strconv.ParseFloat(c.Query("rate"), 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Provide roomCode or a numeric rate")
			return
		}
		rate = parsed
	}

	total := rc.pricing.TotalCost(checkIn, checkOut, rate)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"rate":      rate,
		"nights":    utils.DaysBetween(checkIn, checkOut),
		"totalCost": total,
	})
}
