package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/presskit/internal/common"
	pb "github.com/dmitrijs2005/presskit/internal/proto"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	gs "github.com/dmitrijs2005/presskit/internal/server/grpc"
)

var _ Client = (*GRPCClient)(nil)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.PressKitServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	s.mu.RLock()
	token := s.accessToken
	s.mu.RUnlock()

	return invoker(withAccessToken(ctx, token), method, req, reply, cc, opts...)
}

func NewPressKitClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewPressKitServiceClient(conn)
	return nil
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, req *pb.RegisterRequest) (*models.AccountView, error) {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	account := gs.AccountFromProto(resp.GetAccount())
	return &account, nil
}

// Login authenticates and keeps the returned access token for later calls.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.SetAccessToken(resp.GetAccessToken())
	return &LoginResult{AccessToken: resp.GetAccessToken(), Account: gs.AccountFromProto(resp.GetAccount())}, nil
}

func (s *GRPCClient) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := s.client.RequestPasswordReset(ctx, &pb.RequestPasswordResetRequest{Email: email})
	return s.mapError(err)
}

func (s *GRPCClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	_, err := s.client.ResetPassword(ctx, &pb.ResetPasswordRequest{Token: token, NewPassword: newPassword})
	return s.mapError(err)
}

func (s *GRPCClient) RequestVerification(ctx context.Context) error {
	_, err := s.client.RequestVerification(ctx, &pb.Empty{})
	return s.mapError(err)
}

func (s *GRPCClient) accountResult(resp *pb.AccountResponse, err error) (*models.AccountView, error) {
	if err != nil {
		return nil, s.mapError(err)
	}
	account := gs.AccountFromProto(resp.GetAccount())
	return &account, nil
}

func (s *GRPCClient) ConfirmVerification(ctx context.Context, token string) (*models.AccountView, error) {
	return s.accountResult(s.client.ConfirmVerification(ctx, &pb.ConfirmVerificationRequest{Token: token}))
}

func (s *GRPCClient) Profile(ctx context.Context) (*models.AccountView, error) {
	return s.accountResult(s.client.GetProfile(ctx, &pb.Empty{}))
}

func (s *GRPCClient) kitResult(resp *pb.PressKitResponse, err error) (*models.PressKit, error) {
	if err != nil {
		return nil, s.mapError(err)
	}
	return gs.PressKitFromProto(resp.GetPressKit()), nil
}

func (s *GRPCClient) CreatePressKit(ctx context.Context, title string) (*models.PressKit, error) {
	return s.kitResult(s.client.CreatePressKit(ctx, &pb.CreatePressKitRequest{Title: title}))
}

func (s *GRPCClient) ListPressKits(ctx context.Context) ([]*models.PressKit, error) {
	resp, err := s.client.ListPressKits(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	kits := make([]*models.PressKit, 0, len(resp.GetPressKits()))
	for _, k := range resp.GetPressKits() {
		kits = append(kits, gs.PressKitFromProto(k))
	}
	return kits, nil
}

func (s *GRPCClient) GetPressKit(ctx context.Context, id string) (*models.PressKit, error) {
	return s.kitResult(s.client.GetPressKit(ctx, &pb.PressKitIDRequest{Id: id}))
}

func (s *GRPCClient) PublishPressKit(ctx context.Context, id string) (*models.PressKit, error) {
	return s.kitResult(s.client.PublishPressKit(ctx, &pb.PressKitIDRequest{Id: id}))
}

func (s *GRPCClient) UnpublishPressKit(ctx context.Context, id string) (*models.PressKit, error) {
	return s.kitResult(s.client.UnpublishPressKit(ctx, &pb.PressKitIDRequest{Id: id}))
}

func (s *GRPCClient) DeletePressKit(ctx context.Context, id string) error {
	_, err := s.client.DeletePressKit(ctx, &pb.PressKitIDRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) PresignLogoUpload(ctx context.Context, id string) (*Upload, error) {
	resp, err := s.client.PresignLogoUpload(ctx, &pb.PressKitIDRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &Upload{Key: resp.GetKey(), URL: resp.GetUrl()}, nil
}

// SetLogo points the kit's logo at an uploaded object key.
func (s *GRPCClient) SetLogo(ctx context.Context, id, key string) (*models.PressKit, error) {
	return s.kitResult(s.client.SetCustomization(ctx, &pb.SetCustomizationRequest{
		Id:            id,
		Customization: &pb.CustomizationPatch{LogoUrl: &key},
	}))
}

func (s *GRPCClient) GetPublishedPressKit(ctx context.Context, slug string) (*models.PressKit, error) {
	return s.kitResult(s.client.GetPublishedPressKit(ctx, &pb.GetPublishedPressKitRequest{Slug: slug}))
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument, codes.FailedPrecondition, codes.Aborted, codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
