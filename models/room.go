package models

import (
	"gorm.io/datatypes"
)

// Room is immutable reference data; the inventory is seeded at startup and
// never modified through the API.
type Room struct {
	RoomCode string `json:"roomCode" gorm:"column:room_code;primaryKey;type:varchar(50)"`
	RoomName string `json:"roomName" gorm:"column:room_name;type:varchar(100)"`

	Beds      int     `json:"beds" gorm:"column:beds"`
	BedType   string  `json:"bedType" gorm:"column:bed_type;type:varchar(50);index"`
	MaxOcc    int     `json:"maxOcc" gorm:"column:max_occ"`
	BasePrice float64 `json:"basePrice" gorm:"column:base_price"`

	Amenities datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`
}
