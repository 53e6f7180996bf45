package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fieldcrm/internal/database"
	"fieldcrm/internal/domain"
)

func main() {
	rand.Seed(time.Now().UnixNano())

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "fieldcrm.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM fuel_entries")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM daily_notes")
	db.Exec("DELETE FROM follow_ups")
	db.Exec("DELETE FROM visits")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM users")

	// ================== USER ==================
	log.Println("Creating test user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("test123"), bcrypt.DefaultCost)
	user := domain.User{
		Email:        "test@example.com",
		PasswordHash: string(hash),
		Name:         "Test Salesman",
	}
	db.Create(&user)
	log.Println("User created: test@example.com / test123")

	// ================== CUSTOMERS ==================
	log.Println("Creating customers...")
	regions := []string{"North", "South", "East", "West", "Central"}
	tiers := []domain.PriceTier{domain.PriceTierStandard, domain.PriceTierDiscounted}
	customers := make([]domain.Customer, 0, 12)
	for i := 0; i < 12; i++ {
		c := domain.Customer{
			UserID:    &user.ID,
			Name:      fmt.Sprintf("Market %d", i+1),
			Region:    regions[i%len(regions)],
			Phone:     fmt.Sprintf("+90 555 000 %04d", i+1),
			Address:   fmt.Sprintf("Main Street %d", i+10),
			PriceTier: tiers[i%len(tiers)],
			VisitDays: []string{
				domain.WeekdayNames[i%7],
				domain.WeekdayNames[(i+2)%7],
			},
			Alerts: nil,
		}
		if i%4 == 0 {
			c.Alerts = []string{"call_before_visit"}
		}
		db.Create(&c)
		customers = append(customers, c)
	}

	// ================== VISITS ==================
	log.Println("Creating visit history...")
	today := time.Now().UTC()
	paymentTypes := []domain.PaymentType{
		domain.PaymentCash, domain.PaymentCard, domain.PaymentTransfer,
	}
	for d := 0; d < 14; d++ {
		date := today.AddDate(0, 0, -d).Format("2006-01-02")
		for i, c := range customers {
			if (i+d)%3 != 0 {
				continue
			}
			v := domain.Visit{
				UserID:     &user.ID,
				CustomerID: c.ID,
				Date:       date,
			}
			switch (i + d) % 4 {
			case 0, 1:
				v.Status = domain.VisitVisited
				v.Completed = true
				now := time.Now().UTC()
				v.CompletedAt = &now
				amount := float64(100 + rand.Intn(400))
				v.PaymentCollected = true
				v.PaymentAmount = &amount
				pt := paymentTypes[rand.Intn(len(paymentTypes))]
				v.PaymentType = &pt
				dur := 5 + rand.Intn(40)
				v.DurationMinutes = &dur
				rating := 3 + rand.Intn(3)
				v.QualityRating = &rating
			case 2:
				v.Status = domain.VisitNotVisited
				reason := "closed"
				v.VisitSkipReason = &reason
			default:
				v.Status = domain.VisitPending
			}
			db.Create(&v)
		}
	}

	// ================== FOLLOW-UPS ==================
	log.Println("Creating follow-ups...")
	for i, c := range customers {
		if i%2 != 0 {
			continue
		}
		due := today.AddDate(0, 0, i%5-2).Format("2006-01-02")
		f := domain.FollowUp{
			UserID:     &user.ID,
			CustomerID: c.ID,
			DueDate:    due,
			Status:     domain.FollowUpPending,
			Reason:     "collect outstanding payment",
		}
		if i%4 == 0 {
			f.Status = domain.FollowUpDone
			now := time.Now().UTC()
			f.CompletedAt = &now
		}
		db.Create(&f)
	}

	// ================== VEHICLE ==================
	log.Println("Creating vehicle and fuel entries...")
	vehicle := domain.Vehicle{
		UserID: &user.ID,
		Name:   "Delivery Van",
		Plate:  "34 ABC 123",
	}
	db.Create(&vehicle)
	for d := 0; d < 3; d++ {
		db.Create(&domain.FuelEntry{
			UserID:     &user.ID,
			VehicleID:  vehicle.ID,
			Date:       today.AddDate(0, 0, -d*4).Format("2006-01-02"),
			Liters:     30 + rand.Float64()*20,
			TotalCost:  900 + rand.Float64()*600,
			DistanceKM: 120 + rand.Float64()*80,
		})
	}

	// ================== DAILY NOTE ==================
	db.Create(&domain.DailyNote{
		UserID:  &user.ID,
		Date:    today.Format("2006-01-02"),
		Content: "Start from the north route, market 4 asked for a call first.",
	})

	log.Println("Seed completed!")
	log.Println("Test account: test@example.com / test123")
}
