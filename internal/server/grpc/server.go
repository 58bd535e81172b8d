// Package grpc exposes the account and press kit services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/presskit/internal/logging"
	pb "github.com/dmitrijs2005/presskit/internal/proto"
	"github.com/dmitrijs2005/presskit/internal/server/metrics"
	"github.com/dmitrijs2005/presskit/internal/server/services"
	"google.golang.org/grpc"
)

// Services bundles the business services the transport calls into.
type Services struct {
	Accounts  *services.AccountService
	PressKits *services.PressKitService
	Media     *services.MediaService
}

type GRPCServer struct {
	pb.UnimplementedPressKitServiceServer
	address   string
	services  Services
	notifier  TokenNotifier
	logger    logging.Logger
	metrics   metrics.Recorder
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, svc Services, n TokenNotifier, rec metrics.Recorder, secretKey string) (*GRPCServer, error) {
	logger := l.With("module", "grpc_server")
	if n == nil {
		n = NewLogNotifier(l)
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &GRPCServer{
		address:   a,
		services:  svc,
		notifier:  n,
		logger:    logger,
		metrics:   rec,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Server builds a grpc.Server with the interceptors installed and the service
// registered.
func (s *GRPCServer) Server() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.observeInterceptor, s.accessTokenInterceptor))
	pb.RegisterPressKitServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.Server()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
