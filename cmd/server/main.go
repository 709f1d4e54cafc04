package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Akr1040317/CollegeApp-sub000/internal/advisor"
	"github.com/Akr1040317/CollegeApp-sub000/internal/ai"
	"github.com/Akr1040317/CollegeApp-sub000/internal/api"
	"github.com/Akr1040317/CollegeApp-sub000/internal/auth"
	"github.com/Akr1040317/CollegeApp-sub000/internal/config"
	"github.com/Akr1040317/CollegeApp-sub000/internal/db"
	"github.com/Akr1040317/CollegeApp-sub000/internal/files"
	"github.com/Akr1040317/CollegeApp-sub000/internal/metrics"
	"github.com/Akr1040317/CollegeApp-sub000/internal/search"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
	"github.com/Akr1040317/CollegeApp-sub000/internal/wizard"
	"github.com/Akr1040317/CollegeApp-sub000/internal/workers"
)

func main() {
	cfg := config.Load()

	pg := db.Connect(cfg.PostgresDSN)
	db.Migrate(pg)
	db.Seed(pg)

	metrics.Register()

	es := search.Connect(cfg.ElasticURL)
	st := store.New(pg)
	emailer := &ai.LogEmailer{}

	llm := ai.NewLLMClient(cfg.LLMAPIURL, cfg.LLMAPIKey, cfg.LLMModel)
	adv := advisor.New(llm, st)

	srv := &api.Server{
		Store:     st,
		Auth:      auth.NewService(pg, cfg.JWTSecret, emailer),
		Flow:      wizard.NewFlow(st),
		Advisor:   adv,
		ES:        es,
		Files:     files.New(cfg.StorageDir),
		JWTSecret: cfg.JWTSecret,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	syncer := &workers.SyncWorker{DB: pg, ES: es}
	go syncer.Run(ctx)
	go syncer.RetryDLQ(ctx)

	reminders := &workers.ReminderWorker{DB: pg, Email: emailer, Interval: time.Hour}
	go reminders.Run(ctx)

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Router(cfg.CORSOrigins)); err != nil {
		log.Fatalf("listener failed: %v", err)
	}
}
