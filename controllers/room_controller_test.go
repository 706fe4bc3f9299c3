package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"hotel-reservations/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRooms_StoreFailureDegradesToEmptyList(t *testing.T) {
	router := setupControllerTest(t, true)

	resp, body := performRequest(t, router, http.MethodGet, "/api/rooms")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, body.Success)

	var views []services.RoomView
	require.NoError(t, json.Unmarshal(body.Data, &views))
	assert.Empty(t, views)
}

func TestCheckAvailability_StoreFailureFailsClosed(t *testing.T) {
	router := setupControllerTest(t, true)

	resp, body := performRequest(t, router, http.MethodGet,
		"/api/rooms/GAR/availability?checkIn=2024-07-01&checkOut=2024-07-03")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, body.Success)

	var result struct {
		RoomCode  string `json:"roomCode"`
		Available bool   `json:"available"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Equal(t, "GAR", result.RoomCode)
	assert.False(t, result.Available)
}

func TestCheckAvailability_HealthyStoreReportsFree(t *testing.T) {
	router := setupControllerTest(t, false)

	resp, body := performRequest(t, router, http.MethodGet,
		"/api/rooms/GAR/availability?checkIn=2024-07-01&checkOut=2024-07-03")
	require.Equal(t, http.StatusOK, resp.Code)

	var result struct {
		Available bool `json:"available"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.True(t, result.Available)
}
