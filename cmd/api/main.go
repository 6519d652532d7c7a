package main

import (
	"fmt"
	"net/http"

	"github.com/loomworks-hr/attendance-core-go/internal/config"
	appHTTP "github.com/loomworks-hr/attendance-core-go/internal/handler/http"
	"github.com/loomworks-hr/attendance-core-go/internal/pkg/database"
	"github.com/loomworks-hr/attendance-core-go/internal/pkg/jwt"
	"github.com/loomworks-hr/attendance-core-go/internal/repository/postgresql"
	accessService "github.com/loomworks-hr/attendance-core-go/internal/service/access"
	attendanceService "github.com/loomworks-hr/attendance-core-go/internal/service/attendance"
	shiftService "github.com/loomworks-hr/attendance-core-go/internal/service/shift"
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
	positionRepo := postgresql.NewPositionRepository(db)
	flexRequestRepo := postgresql.NewFlexibleShiftRequestRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	shiftSvc := shiftService.NewShiftService(userRepo, flexRequestRepo)
	attendanceSvc := attendanceService.NewAttendanceService(sessionRepo, shiftSvc)
	accessSvc := accessService.NewAccessService(userRepo, positionRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(shiftSvc, attendanceSvc)
	accessHandler := appHTTP.NewAccessHandler(accessSvc, userRepo)

	router := appHTTP.NewRouter(jwtSvc, attendanceHandler, accessHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
