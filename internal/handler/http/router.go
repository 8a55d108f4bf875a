package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	frontendURL string,
	env string,
	attendanceHandler AttendanceHandler,
	shiftHandler ShiftHandler,
	holidayHandler HolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kedai-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendance", func(r chi.Router) {
			r.Get("/settings", attendanceHandler.Settings)

			r.Route("/{staffID}", func(r chi.Router) {
				r.Get("/clock-in/validation", attendanceHandler.ValidateClockIn)
				r.Get("/clock-out/overtime", attendanceHandler.ClockOutOvertime)
				r.Get("/late-limit", attendanceHandler.LateLimit)
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", shiftHandler.ListDefinitions)
			r.Get("/staff/{staffID}", shiftHandler.GetStaffWeek)
		})

		r.Get("/holidays", holidayHandler.ListByYear)
	})

	return r
}
