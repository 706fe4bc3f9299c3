package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-reservations/models"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedRooms inserts the reference room inventory when the table is empty.
// Reservations are never seeded.
func SeedRooms(db *gorm.DB) {
	var count int64
	db.Model(&models.Room{}).Count(&count)
	if count > 0 {
		log.Println("Rooms already seeded")
		return
	}

	rooms := []models.Room{
		{RoomCode: "GAR", RoomName: "Garden Terrace", Beds: 1, BedType: "Queen", MaxOcc: 2, BasePrice: 125.00,
			Amenities: datatypes.JSON([]byte(`["wifi","terrace"]`))},
		{RoomCode: "HAR", RoomName: "Harbor View", Beds: 2, BedType: "Double", MaxOcc: 4, BasePrice: 155.00,
			Amenities: datatypes.JSON([]byte(`["wifi","seaview"]`))},
		{RoomCode: "MAP", RoomName: "Maple Loft", Beds: 1, BedType: "King", MaxOcc: 2, BasePrice: 175.00,
			Amenities: datatypes.JSON([]byte(`["wifi","fireplace"]`))},
		{RoomCode: "ORC", RoomName: "Orchard Suite", Beds: 3, BedType: "Queen", MaxOcc: 6, BasePrice: 215.00,
			Amenities: datatypes.JSON([]byte(`["wifi","kitchenette","terrace"]`))},
		{RoomCode: "PIN", RoomName: "Pine Corner", Beds: 2, BedType: "Twin", MaxOcc: 3, BasePrice: 95.00,
			Amenities: datatypes.JSON([]byte(`["wifi"]`))},
		{RoomCode: "WIL", RoomName: "Willow Den", Beds: 1, BedType: "Double", MaxOcc: 2, BasePrice: 110.00,
			Amenities: datatypes.JSON([]byte(`["wifi","desk"]`))},
	}

	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Rooms seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Room{},
		&models.Reservation{},
	); err != nil {
		return err
	}

	SeedRooms(DB)
	return nil
}
