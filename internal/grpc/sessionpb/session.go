// Package sessionpb описывает gRPC-сервис сессий healthsub.auth.v1.Session.
//
// Сообщения сервиса являются well-known типами protobuf, поэтому
// дескриптор сервиса объявлен вручную без генерации кода.
// Login принимает Struct {username, password} и возвращает Struct {token, expires_at}.
// Validate принимает StringValue с токеном и возвращает StringValue с UUID пользователя.
package sessionpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName полное имя gRPC-сервиса.
const ServiceName = "healthsub.auth.v1.Session"

// Полные имена методов.
const (
	LoginFullMethodName    = "/" + ServiceName + "/Login"
	ValidateFullMethodName = "/" + ServiceName + "/Validate"
)

// Поля сообщений Login.
const (
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldToken     = "token"
	FieldExpiresAt = "expires_at"
)

// SessionServer серверная часть сервиса.
type SessionServer interface {
	Login(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Validate(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// SessionClient клиентская часть сервиса.
type SessionClient interface {
	Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Validate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type sessionClient struct {
	cc grpc.ClientConnInterface
}

// NewSessionClient создает клиента поверх соединения cc.
func NewSessionClient(cc grpc.ClientConnInterface) SessionClient {
	return &sessionClient{cc: cc}
}

func (c *sessionClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, LoginFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionClient) Validate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, ValidateFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterSessionServer регистрирует реализацию сервиса на сервере s.
func RegisterSessionServer(s grpc.ServiceRegistrar, srv SessionServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func loginHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LoginFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SessionServer).Login(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func validateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ValidateFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SessionServer).Validate(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// ServiceDesc дескриптор сервиса для grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SessionServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: loginHandler},
		{MethodName: "Validate", Handler: validateHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "healthsub/auth/v1/session.proto",
}
