package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pancakelab/cmd"
	httpin "pancakelab/internal/adapters/in/http"
	"pancakelab/internal/adapters/out/rabbitmq"
	"pancakelab/internal/core/ports"
	"pancakelab/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	app := cmd.NewCompositionRoot(configs, logger)

	var publisher ports.EventPublisher
	if configs.AMQPURL != "" {
		p, dialErr := rabbitmq.Dial(configs.AMQPURL, configs.AMQPExchange, logger)
		if dialErr != nil {
			log.Fatalf("Error connecting to RabbitMQ: %v", dialErr)
		}
		defer p.Close()
		publisher = p
	}

	jobManager := jobs.NewJobManager(app.CreateJobs(publisher)...)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := httpin.NewRouter(app.CreateServer(), logger)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, e, configs.HTTPPort); err != nil {
		e.Logger.Fatal(err)
	}
	logger.Info("Server stopped")
}

// run serves until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, e *echo.Echo, port string) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
