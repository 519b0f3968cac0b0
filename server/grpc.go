package server

import (
	"runtime/debug"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	pb "github.com/dzoniops/booking-service/api/booking/v1"
	"github.com/dzoniops/booking-service/telemetry"
)

// New builds the gRPC server with the interceptor chain and registers the
// reservation, catalog and health services on it. The server metrics are
// registered on reg.
func New(
	logger log.Logger,
	reg prometheus.Registerer,
	authFn auth.AuthFunc,
	reservations *ReservationServer,
	catalog *CatalogServer,
) *grpc.Server {
	rpcLogger := log.With(logger, "service", "gRPC/server", "component", "booking")

	srvMetrics := grpcprom.NewServerMetrics(
		grpcprom.WithServerHandlingTimeHistogram(
			grpcprom.WithHistogramBuckets(telemetry.HandlingTimeBuckets),
		),
	)
	reg.MustRegister(srvMetrics)

	panicsTotal := promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "grpc_req_panics_recovered_total",
		Help: "Total number of gRPC requests recovered from internal panic.",
	})
	grpcPanicRecoveryHandler := func(p any) (err error) {
		panicsTotal.Inc()
		level.Error(rpcLogger).
			Log("msg", "recovered from panic", "panic", p, "stack", debug.Stack())
		return status.Errorf(codes.Internal, "%s", p)
	}
	exemplar := grpcprom.WithExemplarFromContext(telemetry.ExemplarFromContext)

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			// Tracing first so the later exemplars see the span.
			otelgrpc.UnaryServerInterceptor(),
			srvMetrics.UnaryServerInterceptor(exemplar),
			logging.UnaryServerInterceptor(
				telemetry.InterceptorLogger(rpcLogger),
				logging.WithFieldsFromContext(telemetry.LogTraceID),
			),
			selector.UnaryServerInterceptor(auth.UnaryServerInterceptor(authFn), selector.MatchFunc(AllButHealthZ)),
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(grpcPanicRecoveryHandler)),
		),
		grpc.ChainStreamInterceptor(
			otelgrpc.StreamServerInterceptor(),
			srvMetrics.StreamServerInterceptor(exemplar),
			logging.StreamServerInterceptor(
				telemetry.InterceptorLogger(rpcLogger),
				logging.WithFieldsFromContext(telemetry.LogTraceID),
			),
			selector.StreamServerInterceptor(auth.StreamServerInterceptor(authFn), selector.MatchFunc(AllButHealthZ)),
			recovery.StreamServerInterceptor(
				recovery.WithRecoveryHandler(grpcPanicRecoveryHandler),
			),
		),
	)

	pb.RegisterReservationServiceServer(grpcSrv, reservations)
	if catalog != nil {
		pb.RegisterCatalogServiceServer(grpcSrv, catalog)
	}
	healthpb.RegisterHealthServer(grpcSrv, health.NewServer())
	srvMetrics.InitializeMetrics(grpcSrv)
	return grpcSrv
}
