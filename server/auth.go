package server

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/dzoniops/booking-service/models"
)

type actorKey struct{}

func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(models.Actor)
	return actor, ok
}

// Claims carried by access tokens. The subject is the numeric user id.
type Claims struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	Approved bool        `json:"approved"`
	jwt.RegisteredClaims
}

// JWTAuthenticator resolves the caller from an HS256 bearer token.
type JWTAuthenticator struct {
	secret []byte
}

func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: []byte(secret)}
}

// AuthFunc plugs into the auth interceptor.
func (a *JWTAuthenticator) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, err
	}
	actor, err := a.Parse(token)
	if err != nil {
		return nil, status.Errorf(codes.Unauthenticated, "invalid auth token: %v", err)
	}
	return WithActor(ctx, actor), nil
}

func (a *JWTAuthenticator) Parse(token string) (models.Actor, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return models.Actor{}, err
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Actor{}, fmt.Errorf("subject %q is not a user id", claims.Subject)
	}
	return models.Actor{
		ID:       id,
		Username: claims.Username,
		Role:     claims.Role,
		Approved: claims.Approved,
	}, nil
}

// Issue signs a token for actor valid for ttl.
func (a *JWTAuthenticator) Issue(actor models.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: actor.Username,
		Role:     actor.Role,
		Approved: actor.Approved,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(actor.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// AnonymousAuth lets every call through as an administrator. Only for local
// runs with authentication disabled.
func AnonymousAuth(ctx context.Context) (context.Context, error) {
	return WithActor(ctx, models.Actor{Username: "anonymous", Role: models.RoleAdmin}), nil
}

// AllButHealthZ excludes the health service from authentication.
func AllButHealthZ(_ context.Context, callMeta interceptors.CallMeta) bool {
	return healthpb.Health_ServiceDesc.ServiceName != callMeta.Service
}
