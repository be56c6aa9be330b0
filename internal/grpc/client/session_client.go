// Package client реализует gRPC-клиент сервиса сессий для HTTP-приложения.
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/magabrotheeeer/health-subscriptions/internal/grpc/sessionpb"
	"github.com/magabrotheeeer/health-subscriptions/internal/lib/apperr"
	authservice "github.com/magabrotheeeer/health-subscriptions/internal/services/auth"
)

// SessionClient обращается к удаленному сервису сессий.
// Ошибки Unauthenticated переводятся в ошибки apperr.ErrAuthentication.
type SessionClient struct {
	conn   *grpc.ClientConn
	client sessionpb.SessionClient
}

// NewSessionClient создает клиента для адреса addr.
func NewSessionClient(addr string, opts ...grpc.DialOption) (*SessionClient, error) {
	const op = "grpc.client.NewSessionClient"

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &SessionClient{conn: conn, client: sessionpb.NewSessionClient(conn)}, nil
}

// Close закрывает соединение.
func (c *SessionClient) Close() error {
	return c.conn.Close()
}

// Login выполняет вход через удаленный сервис.
func (c *SessionClient) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	const op = "grpc.client.Login"

	in, err := structpb.NewStruct(map[string]any{
		sessionpb.FieldUsername: username,
		sessionpb.FieldPassword: password,
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	out, err := c.client.Login(ctx, in)
	if err != nil {
		switch status.Code(err) {
		case codes.Unauthenticated:
			return "", time.Time{}, authservice.ErrInvalidCredentials
		case codes.InvalidArgument:
			return "", time.Time{}, apperr.Validation("%s", status.Convert(err).Message())
		}
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	fields := out.GetFields()
	expiresAt, err := time.Parse(time.RFC3339, fields[sessionpb.FieldExpiresAt].GetStringValue())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: bad expires_at: %w", op, err)
	}
	return fields[sessionpb.FieldToken].GetStringValue(), expiresAt, nil
}

// ValidateToken проверяет токен через удаленный сервис.
func (c *SessionClient) ValidateToken(ctx context.Context, token string) (string, error) {
	const op = "grpc.client.ValidateToken"

	out, err := c.client.Validate(ctx, wrapperspb.String(token))
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			return "", authservice.ErrInvalidSession
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return out.GetValue(), nil
}
