package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/desadigital/absensi-backend-go/internal/config"
	appHTTP "github.com/desadigital/absensi-backend-go/internal/handler/http"
	"github.com/desadigital/absensi-backend-go/internal/pkg/clock"
	"github.com/desadigital/absensi-backend-go/internal/pkg/database"
	"github.com/desadigital/absensi-backend-go/internal/pkg/email"
	"github.com/desadigital/absensi-backend-go/internal/pkg/jwt"
	"github.com/desadigital/absensi-backend-go/internal/repository/postgresql"
	announcementService "github.com/desadigital/absensi-backend-go/internal/service/announcement"
	attendanceService "github.com/desadigital/absensi-backend-go/internal/service/attendance"
	serviceAuth "github.com/desadigital/absensi-backend-go/internal/service/auth"
	settingsService "github.com/desadigital/absensi-backend-go/internal/service/settings"
	userService "github.com/desadigital/absensi-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	clk := clock.New()
	authService := serviceAuth.NewAuthService(db, userRepo, jwtService, jwtRepo, emailService, cfg.App.FrontendURL)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, settingsRepo, clk, cfg.Location())
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, clk)
	userSvc := userService.NewUserService(db, userRepo, emailService, cfg.App.FrontendURL)

	authHandler := appHTTP.NewAuthHandler(jwtService, authService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	announcementHandler := appHTTP.NewAnnouncementHandler(announcementSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		settingsHandler,
		announcementHandler,
		userHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
