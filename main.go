package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/joho/godotenv"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/dzoniops/booking-service/client"
	"github.com/dzoniops/booking-service/config"
	"github.com/dzoniops/booking-service/db"
	"github.com/dzoniops/booking-service/notify"
	"github.com/dzoniops/booking-service/repository"
	"github.com/dzoniops/booking-service/server"
	"github.com/dzoniops/booking-service/services"
	"github.com/dzoniops/booking-service/telemetry"
	"github.com/dzoniops/booking-service/utils"
)

func main() {
	if err := serve(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// serve wires the service and blocks until a signal or a fatal actor error.
func serve() error {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Setup logging.
	logger := telemetry.NewLogger(os.Stderr, cfg.LogLevel)

	shutdownTracer, err := telemetry.InitTracer(os.Stdout)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	gdb, err := db.InitDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("init db: %w", err)
	}
	utils.InitValidator()

	// Setup metrics.
	reg := prometheus.NewRegistry()
	metrics := services.NewMetrics(reg)

	localCatalog := repository.NewGormCatalogRepository(gdb)
	var catalog services.Catalog = localCatalog
	if cfg.CatalogAddr != "" {
		remote, err := client.Dial(cfg.CatalogAddr, logger, reg)
		if err != nil {
			return fmt.Errorf("dial catalog %s: %w", cfg.CatalogAddr, err)
		}
		defer remote.Close()
		catalog = remote
		level.Info(logger).Log("msg", "using remote catalog", "addr", cfg.CatalogAddr)
	}

	var outbox notify.Outbox
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		outbox = notify.NewRedisOutbox(rdb, cfg.OutboxKey)
		level.Info(logger).Log("msg", "using redis outbox", "addr", cfg.RedisAddr, "key", cfg.OutboxKey)
	} else {
		outbox = notify.NewChannelOutbox(1024)
	}

	store := repository.NewGormReservationRepository(gdb)
	reservations := services.NewReservationService(store, catalog,
		services.WithPublisher(outbox),
		services.WithMetrics(metrics),
		services.WithLogger(logger),
		services.WithRetentionDays(cfg.RetentionDays),
	)
	dashboard := services.NewDashboard(reservations, services.SystemClock)

	var authFn auth.AuthFunc = server.AnonymousAuth
	if cfg.AuthDisabled {
		level.Warn(logger).Log("msg", "authentication disabled, every caller is an admin")
	} else {
		authFn = server.NewJWTAuthenticator(cfg.JWTSecret).AuthFunc
	}

	grpcSrv := server.New(
		logger,
		reg,
		authFn,
		&server.ReservationServer{
			Reservations: reservations,
			Dashboard:    dashboard,
			Exporter:     services.NewExporter(dashboard),
		},
		&server.CatalogServer{Catalog: localCatalog},
	)

	dispatcher := notify.NewDispatcher(
		outbox,
		notify.NewLogMailer(logger),
		cfg.NotifyWorkers,
		logger,
		notify.WithObserver(metrics.Notified),
	)

	g := &run.Group{}
	g.Add(func() error {
		l, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
		if err != nil {
			return err
		}
		level.Info(logger).Log("msg", "starting gRPC server", "addr", l.Addr().String())
		return grpcSrv.Serve(l)
	}, func(err error) {
		grpcSrv.GracefulStop()
		grpcSrv.Stop()
	})

	httpSrv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.MetricsPort)}
	g.Add(func() error {
		m := http.NewServeMux()
		// Create HTTP handler for Prometheus metrics.
		m.Handle("/metrics", promhttp.HandlerFor(
			reg,
			promhttp.HandlerOpts{
				// Opt into OpenMetrics e.g. to support exemplars.
				EnableOpenMetrics: true,
			},
		))
		httpSrv.Handler = m
		level.Info(logger).Log("msg", "starting HTTP server", "addr", httpSrv.Addr)
		return httpSrv.ListenAndServe()
	}, func(error) {
		if err := httpSrv.Close(); err != nil {
			level.Error(logger).Log("msg", "failed to stop web server", "err", err)
		}
	})

	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	g.Add(func() error {
		return dispatcher.Run(dispatchCtx)
	}, func(error) {
		stopDispatch()
	})

	if cfg.ExpirySweepInterval > 0 {
		sweepCtx, stopSweep := context.WithCancel(context.Background())
		g.Add(func() error {
			return reservations.RunExpirySweep(sweepCtx, cfg.ExpirySweepInterval)
		}, func(error) {
			stopSweep()
		})
	}

	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))

	if err := g.Run(); err != nil {
		var sig run.SignalError
		if errors.As(err, &sig) {
			level.Info(logger).Log("msg", "shutting down", "signal", sig.Signal)
			return nil
		}
		level.Error(logger).Log("err", err)
		return err
	}
	return nil
}
