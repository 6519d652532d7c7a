package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/loomworks-hr/attendance-core-go/internal/handler/http/middleware"
	"github.com/loomworks-hr/attendance-core-go/internal/pkg/jwt"
)

func NewRouter(jwtService jwt.Service, attendanceHandler AttendanceHandler, accessHandler AccessHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-core"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(middleware.RequestID)
	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(jwtauth.Authenticator(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/shift", attendanceHandler.GetEffectiveShift)
				r.Get("/daily", attendanceHandler.GetDailySummary)
				r.Post("/status", attendanceHandler.CalculateStatus)
				r.Post("/arrival", attendanceHandler.CalculateArrival)
				r.Post("/punch-in/validate", attendanceHandler.ValidatePunchIn)
			})

			r.Route("/access", func(r chi.Router) {
				r.Get("/users", accessHandler.GetAccessibleUsers)
				r.Get("/users/{userID}/can-access", accessHandler.CanAccessUser)
				r.Get("/permissions/{capability}", accessHandler.CheckPermission)
				r.Get("/scope", accessHandler.GetDataScope)
				r.Get("/subordinates", accessHandler.GetSubordinates)
			})
		})
	})

	return r
}
