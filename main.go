package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"payment-router/client"
	"payment-router/config"
	"payment-router/handler"
	"payment-router/health"
	"payment-router/repository"
	"payment-router/router"
	"payment-router/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	repo, err := repository.NewRepository(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("repository error: %v", err)
	}

	instanceID := uuid.New().String()
	queue := repository.NewQueue(repo.Client(), instanceID)
	lease := repository.NewLease(repo.Client(), instanceID, cfg.LeaseTTL)

	c := client.NewClient(cfg.DefaultProcessorURL, cfg.FallbackProcessorURL)
	r := router.NewRouter(repo, repo, c, cfg.PreferFastest, cfg.RemoteTimeout)
	pool := worker.NewPool(queue, r, cfg.WorkerCount, cfg.MaxInflight, cfg.DequeueTimeout, cfg.RetryIncrement, cfg.MaxRetries)
	monitor := health.NewMonitor(lease, repo, c, cfg.AcquireInterval, cfg.RenewInterval, cfg.DefaultHealthInterval, cfg.FallbackHealthInterval)

	h := handler.NewHandler(queue, repo)
	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			switch string(ctx.Path()) {
			case "/payments":
				h.PostPayments(ctx)
			case "/payments-summary":
				h.GetSummary(ctx)
			case "/purge-payments":
				h.PurgePayments(ctx)
			default:
				ctx.SetStatusCode(fasthttp.StatusNotFound)
			}
		},
	}

	go func() {
		log.Printf("instance %s listening on port %s", instanceID, cfg.Port)
		if err := server.ListenAndServe(fmt.Sprintf(":%s", cfg.Port)); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	pool.Start(ctx)
	go monitor.Run(ctx)

	<-ctx.Done()
	log.Println("Shutdown signal received")
	if err := server.Shutdown(); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}
	pool.Wait()
	log.Println("Application closed")
}
