package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/inalogystics/DeskBookingService/internal/config"
	"github.com/inalogystics/DeskBookingService/pkg/logger"
)

type deskSeed struct {
	Number          string
	Floor           int
	Zone            string
	X, Y            float64
	HasMonitor      bool
	HasStandingDesk bool
	IsShared        bool
}

type parkingSeed struct {
	SpotNumber   string
	Location     string
	IsAccessible bool
	HasCharger   bool
}

// Посев плана этажа: 26 столов и 10 парковочных мест.
// Повторный запуск безопасен, существующие строки не трогаются.
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	desks := buildDesks()
	inserted := 0
	for _, d := range desks {
		result, err := db.Exec(`
			INSERT INTO desks (desk_number, floor, zone, x, y, has_monitor, has_standing_desk, is_shared, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
			ON CONFLICT (desk_number) DO NOTHING`,
			d.Number, d.Floor, d.Zone, d.X, d.Y, d.HasMonitor, d.HasStandingDesk, d.IsShared,
		)
		if err != nil {
			log.Fatal("Failed to seed desk %s: %v", d.Number, err)
		}
		if n, _ := result.RowsAffected(); n > 0 {
			inserted++
		}
	}
	log.Info("Seeded desks: %d inserted, %d already present", inserted, len(desks)-inserted)

	spots := buildParkingSpaces()
	inserted = 0
	for _, p := range spots {
		result, err := db.Exec(`
			INSERT INTO parking_spaces (spot_number, location, is_accessible, has_charger)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (spot_number) DO NOTHING`,
			p.SpotNumber, p.Location, p.IsAccessible, p.HasCharger,
		)
		if err != nil {
			log.Fatal("Failed to seed parking space %s: %v", p.SpotNumber, err)
		}
		if n, _ := result.RowsAffected(); n > 0 {
			inserted++
		}
	}
	log.Info("Seeded parking spaces: %d inserted, %d already present", inserted, len(spots)-inserted)
}

func buildDesks() []deskSeed {
	desks := make([]deskSeed, 0, 26)

	// D01-D16: open space, два ряда по восемь столов
	for i := 1; i <= 16; i++ {
		row := (i - 1) / 8
		col := (i - 1) % 8
		desks = append(desks, deskSeed{
			Number:          fmt.Sprintf("D%02d", i),
			Floor:           1,
			Zone:            "Open Space",
			X:               10.0 + float64(col)*10.0,
			Y:               20.0 + float64(row)*25.0,
			HasMonitor:      i%2 == 1,
			HasStandingDesk: i%4 == 0,
			IsShared:        true,
		})
	}

	// D17-D22: тихая зона
	for i := 17; i <= 22; i++ {
		col := i - 17
		desks = append(desks, deskSeed{
			Number:          fmt.Sprintf("D%02d", i),
			Floor:           1,
			Zone:            "Quiet Zone",
			X:               15.0 + float64(col)*12.0,
			Y:               70.0,
			HasMonitor:      true,
			HasStandingDesk: false,
			IsShared:        true,
		})
	}

	// D23-D26: закрепленные столы, бронировать нельзя
	for i := 23; i <= 26; i++ {
		col := i - 23
		desks = append(desks, deskSeed{
			Number:          fmt.Sprintf("D%02d", i),
			Floor:           1,
			Zone:            "Private Office",
			X:               20.0 + float64(col)*15.0,
			Y:               90.0,
			HasMonitor:      true,
			HasStandingDesk: true,
			IsShared:        false,
		})
	}

	return desks
}

func buildParkingSpaces() []parkingSeed {
	return []parkingSeed{
		{SpotNumber: "G12", Location: "Garage", IsAccessible: false, HasCharger: false},
		{SpotNumber: "G13", Location: "Garage", IsAccessible: false, HasCharger: true},
		{SpotNumber: "G14", Location: "Garage", IsAccessible: true, HasCharger: false},
		{SpotNumber: "G15", Location: "Garage", IsAccessible: false, HasCharger: false},
		{SpotNumber: "G60", Location: "Garage", IsAccessible: false, HasCharger: true},
		{SpotNumber: "PH66", Location: "Parking House", IsAccessible: false, HasCharger: false},
		{SpotNumber: "PH67", Location: "Parking House", IsAccessible: false, HasCharger: false},
		{SpotNumber: "PH68", Location: "Parking House", IsAccessible: true, HasCharger: false},
		{SpotNumber: "PH69", Location: "Parking House", IsAccessible: false, HasCharger: true},
		{SpotNumber: "PH70", Location: "Parking House", IsAccessible: false, HasCharger: false},
	}
}
