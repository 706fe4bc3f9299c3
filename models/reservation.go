package models

import (
	"time"
)

// Reservation rows are created and deleted, never updated in place.
// Code is assigned sequentially at creation (1 + current max).
// Rate is snapshotted from Room.BasePrice at booking time and is NOT
// recomputed if the room's base price later changes.
type Reservation struct {
	Code int    `json:"code" gorm:"column:code;primaryKey;autoIncrement:false"`
	Room string `json:"room" gorm:"column:room;type:varchar(50);index"`

	CheckIn  time.Time `json:"checkIn" gorm:"column:check_in;type:date"`
	Checkout time.Time `json:"checkout" gorm:"column:checkout;type:date"`

	Rate float64 `json:"rate" gorm:"column:rate"`

	LastName  string `json:"lastName" gorm:"column:last_name;type:varchar(100)"`
	FirstName string `json:"firstName" gorm:"column:first_name;type:varchar(100)"`
	Adults    int    `json:"adults" gorm:"column:adults;default:1"`
	Kids      int    `json:"kids" gorm:"column:kids;default:0"`

	RoomRef Room `json:"-" gorm:"foreignKey:Room;references:RoomCode"`
}
