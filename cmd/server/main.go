package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/mixology/internal/alcohol"
	"github.com/KirkDiggler/mixology/internal/clients/cocktaildb"
	"github.com/KirkDiggler/mixology/internal/common/clock"
	"github.com/KirkDiggler/mixology/internal/common/uuid"
	"github.com/KirkDiggler/mixology/internal/config"
	"github.com/KirkDiggler/mixology/internal/handlers/discord"
	"github.com/KirkDiggler/mixology/internal/handlers/rest"
	"github.com/KirkDiggler/mixology/internal/repositories/state"
	"github.com/KirkDiggler/mixology/internal/services/bar"
	"github.com/KirkDiggler/mixology/internal/services/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize Redis client
	redisClient, err := config.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	stateRepo, err := state.NewRedis(&state.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create state repository: %v", err)
	}

	uuidGenerator := uuid.New()

	// Only one process may own the snapshot; a second one would overwrite it on save
	lease, err := state.AcquireLease(ctx, &state.LeaseConfig{
		Repository: stateRepo,
		Owner:      uuidGenerator.NewUUID(),
		TTL:        cfg.LockTTL,
	})
	if err != nil {
		log.Fatalf("Failed to lock saved state: %v", err)
	}

	table, err := config.AlcoholTable(cfg)
	if err != nil {
		log.Fatalf("Failed to load alcohol table: %v", err)
	}
	calculator, err := alcohol.NewCalculator(table)
	if err != nil {
		log.Fatalf("Failed to create alcohol calculator: %v", err)
	}

	cocktailClient, err := cocktaildb.New(&cocktaildb.Config{
		BaseURL:    cfg.CocktailDBURL,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
	})
	if err != nil {
		log.Fatalf("Failed to create cocktail client: %v", err)
	}

	searchSvc, err := search.New(&search.Config{
		Client:   cocktailClient,
		Debounce: cfg.SuggestDebounce,
	})
	if err != nil {
		log.Fatalf("Failed to create search service: %v", err)
	}

	barSvc, err := bar.New(&bar.Config{
		StateRepo:     stateRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuidGenerator,
		Calculator:    calculator,
		WarningDelay:  cfg.WarningDelay,
	})
	if err != nil {
		log.Fatalf("Failed to create bar service: %v", err)
	}

	if err := barSvc.Load(ctx); err != nil {
		log.Fatalf("Failed to load saved state: %v", err)
	}

	handler, err := rest.New(&rest.Config{
		BarService:    barSvc,
		SearchService: searchSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create API handler: %v", err)
	}

	// Both surfaces share barSvc; the bot only runs when a token is configured
	var bot *discord.Bot
	if cfg.DiscordToken != "" {
		bot, err = discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ApplicationID: cfg.ApplicationID,
			GuildID:       cfg.GuildID,
			BarService:    barSvc,
			SearchService: searchSvc,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord bot: %v", err)
		}
		if err := bot.Start(); err != nil {
			log.Fatalf("Failed to start Discord bot: %v", err)
		}
	} else {
		log.Println("DISCORD_TOKEN not set, running the HTTP API only")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: rest.NewRouter(handler, cfg.CORSOrigins),
	}

	// Start server in a goroutine
	go func() {
		log.Printf("API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	lockLost := false
	select {
	case <-quit:
	case <-lease.Lost():
		log.Println("Another process took over the saved state, shutting down without saving")
		lockLost = true
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if bot != nil {
		if err := bot.Stop(); err != nil {
			log.Printf("Error stopping bot: %v", err)
		}
	}

	if !lockLost {
		if err := barSvc.Save(ctx); err != nil {
			log.Printf("Error saving state: %v", err)
		}
	}

	if err := lease.Release(ctx); err != nil {
		log.Printf("Error releasing state lock: %v", err)
	}

	log.Println("Server has been shut down")
}
