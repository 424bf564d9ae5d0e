package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"studyplan/config"
	"studyplan/database"
	"studyplan/router"

	// Auth + Health
	authCtrlImp "studyplan/pkg/auth/controllerImp"
	healthCtrlImp "studyplan/pkg/health/controllerImp"

	// Planner
	plannerCtrlImp "studyplan/pkg/planner/controllerImp"
	plannerRepoImp "studyplan/pkg/planner/repositoryImp"
	plannerSvc "studyplan/pkg/planner/serviceImp"

	// Generator + Scheduler
	"studyplan/pkg/ai"
	"studyplan/pkg/schedule"

	// Resource notes
	"studyplan/pkg/resource"
	resourceCtrlImp "studyplan/pkg/resource/controllerImp"

	// Reminders
	"studyplan/pkg/reminder"
	reminderCtrlImp "studyplan/pkg/reminder/controllerImp"

	"studyplan/pkg/planner/repository"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite cache) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Scheduling rules (built-in table + optional overrides)
	rules, err := schedule.LoadFromFiles(cfg.BufferCSV, cfg.BufferXLSX)
	if err != nil {
		log.Fatalf("schedule rules: %v", err)
	}

	// 5) Generator (mock fallback when unconfigured)
	var gen ai.Client
	if cfg.GeminiAPIKey != "" {
		gen = ai.NewGemini(cfg.GeminiEndpoint, cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		log.Printf("[ai] GEMINI_API_KEY not set, using mock generator")
		gen = ai.NewMock()
	}

	// 6) Stores: remote document store + durable local cache
	var remote repository.RemoteStore
	if cfg.RemoteStoreEndpoint != "" {
		remote = plannerRepoImp.NewRemoteHTTP(cfg.RemoteStoreEndpoint, cfg.RemoteStoreAPIKey)
	} else {
		log.Printf("[sync] REMOTE_STORE_ENDPOINT not set, running local-only")
		remote = plannerRepoImp.NewRemoteDisabled()
	}
	kv := plannerRepoImp.NewKV(db)
	local := plannerRepoImp.NewLocalStore(kv)

	// 7) Resource notes extractor
	ext := resource.New(cfg.ResourceDomains)
	resCtrl := resourceCtrlImp.New(ext)

	// 8) Planner service + controller
	pSvc := plannerSvc.NewPlannerService(gen, rules, remote, local, ext)
	pCtrl := plannerCtrlImp.New(pSvc)

	// 9) Reminders
	rem := reminder.New(db, local)
	if err := rem.Start(cfg.ReminderCron); err != nil {
		log.Printf("reminder warn: %v", err)
	}
	defer rem.Stop()
	remCtrl := reminderCtrlImp.New(rem)

	// 10) Auth + Health
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 11) Router
	r := router.New(e, pCtrl, resCtrl, remCtrl, authCtrl, hCtrl)

	// 12) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
