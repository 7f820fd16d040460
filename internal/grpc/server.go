package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health key reported for the campus API.
const ServiceName = "campus.backend"

// Server is the internal gRPC endpoint. It only exposes grpc.health.v1.Health,
// guarded by the service token.
type Server struct {
	*grpc.Server
	health *health.Server
}

func NewServer(serviceToken string) (*Server, error) {
	unary, err := NewServiceAuthUnaryInterceptor(serviceToken)
	if err != nil {
		return nil, err
	}
	stream, err := NewServiceAuthStreamInterceptor(serviceToken)
	if err != nil {
		return nil, err
	}
	srv := grpc.NewServer(grpc.UnaryInterceptor(unary), grpc.StreamInterceptor(stream))
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return &Server{Server: srv, health: hs}, nil
}

func (s *Server) MarkServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every service to NOT_SERVING and drains in-flight calls.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.GracefulStop()
}
