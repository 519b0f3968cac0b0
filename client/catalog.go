package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/timeout"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/dzoniops/booking-service/api"
	pb "github.com/dzoniops/booking-service/api/booking/v1"
	"github.com/dzoniops/booking-service/models"
	"github.com/dzoniops/booking-service/services"
	"github.com/dzoniops/booking-service/telemetry"
)

const callTimeout = 500 * time.Millisecond

// CatalogClient reads rooms and properties from a remote catalog service.
type CatalogClient struct {
	conn   *grpc.ClientConn
	client pb.CatalogServiceClient
}

var _ services.Catalog = (*CatalogClient)(nil)

// Dial connects to the catalog at url. Client metrics are registered on reg.
// Extra dial options are appended after the defaults.
func Dial(url string, logger log.Logger, reg prometheus.Registerer, opts ...grpc.DialOption) (*CatalogClient, error) {
	rpcLogger := log.With(logger, "service", "gRPC/client", "component", "catalog-client")

	clMetrics := grpcprom.NewClientMetrics(
		grpcprom.WithClientHandlingTimeHistogram(
			grpcprom.WithHistogramBuckets(telemetry.HandlingTimeBuckets),
		),
	)
	reg.MustRegister(clMetrics)
	exemplar := grpcprom.WithExemplarFromContext(telemetry.ExemplarFromContext)

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(
			timeout.UnaryClientInterceptor(callTimeout),
			otelgrpc.UnaryClientInterceptor(),
			clMetrics.UnaryClientInterceptor(exemplar),
			logging.UnaryClientInterceptor(
				telemetry.InterceptorLogger(rpcLogger),
				logging.WithFieldsFromContext(telemetry.LogTraceID),
			),
		),
		grpc.WithChainStreamInterceptor(
			otelgrpc.StreamClientInterceptor(),
			clMetrics.StreamClientInterceptor(exemplar),
			logging.StreamClientInterceptor(
				telemetry.InterceptorLogger(rpcLogger),
				logging.WithFieldsFromContext(telemetry.LogTraceID),
			),
		),
	}, opts...)

	conn, err := grpc.Dial(url, opts...)
	if err != nil {
		return nil, err
	}
	return &CatalogClient{conn: conn, client: pb.NewCatalogServiceClient(conn)}, nil
}

func (c *CatalogClient) Close() error {
	return c.conn.Close()
}

func (c *CatalogClient) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	res, err := c.client.GetRoom(ctx, &pb.IdRequest{Id: id})
	if err != nil {
		return nil, fromStatus(err, "room", id)
	}
	return api.RoomFromPb(res), nil
}

func (c *CatalogClient) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	res, err := c.client.GetProperty(ctx, &pb.IdRequest{Id: id})
	if err != nil {
		return nil, fromStatus(err, "property", id)
	}
	return api.PropertyFromPb(res), nil
}

func (c *CatalogClient) RecordRating(ctx context.Context, propertyID int64, rating float64) error {
	_, err := c.client.RecordRating(ctx, &pb.RecordRatingRequest{PropertyId: propertyID, Rating: rating})
	if err != nil {
		return fromStatus(err, "property", propertyID)
	}
	return nil
}

func (c *CatalogClient) PropertiesOwnedBy(ctx context.Context, ownerID int64) ([]int64, error) {
	res, err := c.client.PropertiesOwnedBy(ctx, &pb.OwnerRequest{OwnerId: ownerID})
	if err != nil {
		return nil, fromStatus(err, "owner", ownerID)
	}
	if res.Ids == nil {
		return []int64{}, nil
	}
	return res.Ids, nil
}

// fromStatus turns a remote NotFound into the local NotFound kind; other
// failures surface as Internal.
func fromStatus(err error, what string, id int64) error {
	if status.Code(err) == codes.NotFound {
		return &services.Error{Kind: services.NotFound, Msg: fmt.Sprintf("%s %d not found", what, id), Err: err}
	}
	return &services.Error{Kind: services.Internal, Msg: fmt.Sprintf("catalog %s %d", what, id), Err: err}
}
