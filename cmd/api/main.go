package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fieldcrm/internal/database"
	"fieldcrm/internal/middleware"
	"fieldcrm/internal/modules/analytics"
	"fieldcrm/internal/modules/auth"
	"fieldcrm/internal/modules/customer"
	"fieldcrm/internal/modules/followup"
	"fieldcrm/internal/modules/note"
	"fieldcrm/internal/modules/report"
	"fieldcrm/internal/modules/vehicle"
	"fieldcrm/internal/modules/visit"
	jwtsvc "fieldcrm/internal/pkg/jwt"
	"fieldcrm/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	followUpRepo := repository.NewFollowUpRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	fuelRepo := repository.NewFuelRepository(db)
	noteRepo := repository.NewDailyNoteRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	customerService := customer.NewService(customerRepo, visitRepo, followUpRepo)
	customerHandler := customer.NewHandler(customerService)

	visitService := visit.NewService(visitRepo, customerRepo)
	visitHandler := visit.NewHandler(visitService)

	followUpService := followup.NewService(followUpRepo, customerRepo)
	followUpHandler := followup.NewHandler(followUpService)

	vehicleService := vehicle.NewService(vehicleRepo, fuelRepo)
	vehicleHandler := vehicle.NewHandler(vehicleService)

	noteService := note.NewService(noteRepo)
	noteHandler := note.NewHandler(noteService)

	analyticsService := analytics.NewService(visitRepo, followUpRepo, customerRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	reportService := report.NewService(visitRepo, fuelRepo, customerRepo)
	reportHandler := report.NewHandler(reportService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			customerHandler.RegisterRoutes(protected)
			visitHandler.RegisterRoutes(protected)
			followUpHandler.RegisterRoutes(protected)
			vehicleHandler.RegisterRoutes(protected)
			noteHandler.RegisterRoutes(protected)
			analyticsHandler.RegisterRoutes(protected)
			reportHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
