package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"traveldesk/internal/config"
	"traveldesk/internal/domain"
	"traveldesk/internal/modules/pipeline"
	"traveldesk/internal/modules/reminder"
	"traveldesk/internal/modules/scoring"
	"traveldesk/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	ctx := context.Background()
	repo := repository.NewLeadRepository()
	scorer := scoring.NewService(scoring.DefaultWeights(), nil)
	svc := pipeline.NewService(repo, scorer, nil, nil, cfg.DefaultCurrency)

	// ================== LEADS ==================
	log.Println("Creating demo leads...")

	seeds := []pipeline.CreateLeadRequest{
		{
			ClientName:     "Aisha Nurlanova",
			ClientEmail:    "aisha@mail.kz",
			ClientPhone:    "+7 701 111 22 33",
			Destination:    "Maldives",
			Temperature:    domain.TemperatureHot,
			EstimatedValue: 120000,
			TravelerCount:  2,
			TravelFrom:     time.Now().AddDate(0, 2, 0),
			TravelTo:       time.Now().AddDate(0, 2, 10),
			Author:         "agent.zhanar",
		},
		{
			ClientName:     "Bekzat Omarov",
			ClientEmail:    "bekzat@gmail.com",
			Destination:    "Tokyo & Kyoto",
			Temperature:    domain.TemperatureWarm,
			EstimatedValue: 45000,
			TravelerCount:  4,
			Author:         "agent.zhanar",
		},
		{
			ClientName:     "Dina Serikova",
			ClientEmail:    "dina@yandex.kz",
			Destination:    "Santorini",
			Temperature:    domain.TemperatureHot,
			EstimatedValue: 80000,
			TravelerCount:  2,
		},
		{
			ClientName:     "Marat Aliyev",
			Destination:    "Patagonia trek",
			Temperature:    domain.TemperatureCold,
			EstimatedValue: 15000,
			TravelerCount:  1,
		},
		{
			ClientName:     "Saule Bekova",
			ClientEmail:    "saule@mail.kz",
			Destination:    "Paris",
			Temperature:    domain.TemperatureWarm,
			EstimatedValue: 30000,
			TravelerCount:  3,
		},
	}

	leads := make([]*domain.Lead, 0, len(seeds))
	for _, req := range seeds {
		lead, err := svc.CreateLead(ctx, req)
		if err != nil {
			log.Fatal("seed lead failed:", err)
		}
		leads = append(leads, lead)
		log.Printf("Lead created: %s -> %s (ai_score=%d)", lead.ClientName, lead.Destination, lead.AIScore)
	}

	// Walk a few leads down the pipeline.
	if _, err := svc.MoveLead(ctx, leads[0].ID, domain.StageQuoting); err != nil {
		log.Fatal(err)
	}
	if _, err := svc.MoveLead(ctx, leads[2].ID, domain.StageNegotiating); err != nil {
		log.Fatal(err)
	}
	if _, err := svc.MoveLead(ctx, leads[4].ID, domain.StageBooked); err != nil {
		log.Fatal(err)
	}

	// Quote and a first installment for the booked lead.
	if _, err := svc.SetQuote(ctx, leads[4].ID, decimal.NewFromInt(30000)); err != nil {
		log.Fatal(err)
	}
	if _, err := svc.RecordPayment(ctx, leads[4].ID, decimal.NewFromInt(10000)); err != nil {
		log.Fatal(err)
	}
	booked, err := svc.GetLead(ctx, leads[4].ID)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Booked: %s, paid %s of %s %s (outstanding %s)",
		booked.ClientName, booked.Payment.Paid, booked.Payment.Total,
		booked.Payment.Currency, booked.Payment.Outstanding())

	// Tasks, one of them already overdue.
	if _, err := svc.AddTask(ctx, leads[0].ID, pipeline.AddTaskRequest{
		Description: "Send Maldives quote",
		DueDate:     time.Now().Add(-36 * time.Hour),
		Priority:    domain.TaskPriorityHigh,
	}); err != nil {
		log.Fatal(err)
	}
	if _, err := svc.AddTask(ctx, leads[1].ID, pipeline.AddTaskRequest{
		Description: "Check JR Pass availability",
		DueDate:     time.Now().Add(72 * time.Hour),
	}); err != nil {
		log.Fatal(err)
	}

	if _, err := svc.LogActivity(ctx, leads[2].ID, pipeline.LogActivityRequest{
		Type:    domain.ActivityCall,
		Content: "Discussed catamaran day trip, client comparing with Mykonos",
		Author:  "agent.zhanar",
	}); err != nil {
		log.Fatal(err)
	}

	// Backdate two leads so the staleness term shows up in the demo.
	// The seed tool writes the store directly; going through the
	// service would bump UpdatedAt back to now.
	for _, idx := range []int{1, 3} {
		stale, err := repo.GetByID(ctx, leads[idx].ID)
		if err != nil || stale == nil {
			log.Fatal("backdate lookup failed")
		}
		stale.UpdatedAt = time.Now().Add(-72 * time.Hour)
		if err := repo.Update(ctx, stale); err != nil {
			log.Fatal(err)
		}
	}

	// ================== VIEWS ==================
	columns := pipeline.DefaultColumns()
	board, err := svc.Board(ctx, columns)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("\n=== Kanban board ===")
	for _, group := range board {
		fmt.Printf("%-14s (%d)\n", group.Title, len(group.Leads))
		for _, lead := range group.Leads {
			fmt.Printf("    %-18s %-16s score=%d\n", lead.ClientName, lead.Destination, scorer.Score(lead))
		}
	}

	timeline, err := svc.Timeline(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("\n=== Priority timeline ===")
	for i, lead := range timeline {
		fmt.Printf("%d. %-18s %-16s score=%d\n", i+1, lead.ClientName, lead.Destination, scorer.Score(lead))
	}

	table, err := svc.Table(ctx, pipeline.SortByEstimatedValue, pipeline.SortDesc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("\n=== Table by estimated value ===")
	for _, lead := range table {
		fmt.Printf("%-18s %10.0f %s  %s\n", lead.ClientName, lead.EstimatedValue, lead.Payment.Currency, lead.Status)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("\n=== Stage counts ===")
	for _, col := range columns {
		fmt.Printf("%-14s %d\n", col.Title, stats[col.Stage])
	}

	// ================== REMINDERS ==================
	sweeper := reminder.NewService(repo, reminder.LogNotifier{}, nil)
	if cfg.ReminderEnabled {
		if err := sweeper.Start(cfg.ReminderSpec); err != nil {
			log.Fatal("reminder schedule failed:", err)
		}
		defer sweeper.Stop()
	}
	sent, err := sweeper.Sweep(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Reminder sweep done, %d notification(s)", sent)

	// Flag anything the agents have not touched recently.
	all, err := repo.List(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, lead := range all {
		if time.Since(lead.UpdatedAt) > cfg.StaleWarnAfter {
			log.Printf("Stale lead: %s (%s), last touched %s ago",
				lead.ClientName, lead.Destination, time.Since(lead.UpdatedAt).Round(time.Hour))
		}
	}

	log.Println("Seed complete.")
}
