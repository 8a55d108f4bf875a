package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/kedai-hq/backoffice-backend-go/internal/config"
	"github.com/kedai-hq/backoffice-backend-go/internal/fixtures"
	appHTTP "github.com/kedai-hq/backoffice-backend-go/internal/handler/http"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/cron"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/database"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/timeutil"
	"github.com/kedai-hq/backoffice-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kedai-hq/backoffice-backend-go/internal/service/attendance"
	shiftService "github.com/kedai-hq/backoffice-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	shiftRepo := postgresql.NewShiftRepository(db)
	settingRepo := postgresql.NewSystemSettingRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceLogRepo := postgresql.NewAttendanceLogRepository(db)

	if err := shiftRepo.EnsureDefaultDefinitions(context.Background(), fixtures.DefaultShiftDefinitions()); err != nil {
		log.Fatal("Failed to seed default shift definitions: ", err)
	}

	clock := timeutil.NewBruneiClock(timeutil.SystemClock())

	shiftSvc := shiftService.NewShiftService(shiftRepo, clock)
	attendanceSvc := attendanceService.NewAttendanceService(
		shiftSvc,
		settingRepo,
		holidayRepo,
		attendanceLogRepo,
		clock,
	)

	scheduler := cron.NewScheduler()
	reminderJobs := cron.NewReminderJobs(shiftRepo, shiftSvc, attendanceSvc, attendanceLogRepo, clock)
	reminderJobs.RegisterJobs(scheduler, cfg.Cron.ReminderInterval)
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidayRepo, clock)

	router := appHTTP.NewRouter(
		cfg.App.FrontendURL,
		cfg.App.Env,
		attendanceHandler,
		shiftHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
