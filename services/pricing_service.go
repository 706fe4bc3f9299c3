package services

import (
	"time"

	"hotel-reservations/utils"
)

// weekendSurcharge is the multiplier applied to Saturday and Sunday nights.
const weekendSurcharge = 1.10

type PricingService struct{}

// TotalCost sums the nightly rate over [checkIn, checkOut), charging weekend
// nights at 110% of the base rate. The result is not rounded; callers round
// for display.
func (PricingService) TotalCost(checkIn, checkOut time.Time, baseRate float64) float64 {
	total := 0.0
	for day := utils.DateOnly(checkIn); day.Before(utils.DateOnly(checkOut)); day = day.AddDate(0, 0, 1) {
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
			total += baseRate * weekendSurcharge
		default:
			total += baseRate
		}
	}
	return total
}
