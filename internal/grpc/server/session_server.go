// Package server реализует gRPC-сервер сессий.
//
// SessionServer делегирует вход и проверку токена сервису аутентификации.
// Отказ в аутентификации отдается как codes.Unauthenticated без деталей.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/magabrotheeeer/health-subscriptions/internal/grpc/sessionpb"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/jwt"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/sl"
)

// AuthService описывает бизнес-логику, нужную серверу.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error)
	ValidateToken(ctx context.Context, token string) (string, error)
}

// SessionServer реализует sessionpb.SessionServer.
type SessionServer struct {
	authService AuthService
	log         *slog.Logger
}

// NewSessionServer создает новый экземпляр SessionServer.
func NewSessionServer(authService AuthService, logger *slog.Logger) *SessionServer {
	return &SessionServer{
		authService: authService,
		log:         logger,
	}
}

// Login проверяет учетные данные и выдает токен.
func (s *SessionServer) Login(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.server.Login"

	fields := in.GetFields()
	username := fields[sessionpb.FieldUsername].GetStringValue()
	password := fields[sessionpb.FieldPassword].GetStringValue()
	if username == "" || password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}

	token, expiresAt, err := s.authService.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, apperr.ErrAuthentication) {
			s.log.Info("login rejected", slog.String("op", op))
			return nil, status.Error(codes.Unauthenticated, "invalid username or password")
		}
		s.log.Error("login failed", slog.String("op", op), sl.Err(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	out, err := structpb.NewStruct(map[string]any{
		sessionpb.FieldToken:     token,
		sessionpb.FieldExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		s.log.Error("failed to build response", slog.String("op", op), sl.Err(err))
		return nil, status.Error(codes.Internal, "internal error")
	}
	return out, nil
}

// Validate проверяет токен и возвращает UUID пользователя.
func (s *SessionServer) Validate(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	userUID, err := s.authService.ValidateToken(ctx, in.GetValue())
	if err != nil {
		s.log.Debug("token rejected", slog.String("op", "grpc.server.Validate"))
		return nil, status.Error(codes.Unauthenticated, jwt.ErrInvalidToken.Error())
	}
	return wrapperspb.String(userUID), nil
}
