// Package client talks to the press kit gRPC service and keeps the local
// session database.
package client

import (
	"context"

	pb "github.com/dmitrijs2005/presskit/internal/proto"
	"github.com/dmitrijs2005/presskit/internal/server/models"
)

// LoginResult is what a successful login hands back.
type LoginResult struct {
	AccessToken string
	Account     models.AccountView
}

// Upload is a presigned PUT target and the object key it writes.
type Upload struct {
	Key string
	URL string
}

// Client is the subset of the remote API the command-line client uses.
type Client interface {
	Close() error
	SetAccessToken(token string)

	Register(ctx context.Context, req *pb.RegisterRequest) (*models.AccountView, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	RequestVerification(ctx context.Context) error
	ConfirmVerification(ctx context.Context, token string) (*models.AccountView, error)
	Profile(ctx context.Context) (*models.AccountView, error)

	CreatePressKit(ctx context.Context, title string) (*models.PressKit, error)
	ListPressKits(ctx context.Context) ([]*models.PressKit, error)
	GetPressKit(ctx context.Context, id string) (*models.PressKit, error)
	PublishPressKit(ctx context.Context, id string) (*models.PressKit, error)
	UnpublishPressKit(ctx context.Context, id string) (*models.PressKit, error)
	DeletePressKit(ctx context.Context, id string) error
	PresignLogoUpload(ctx context.Context, id string) (*Upload, error)
	SetLogo(ctx context.Context, id, key string) (*models.PressKit, error)
	GetPublishedPressKit(ctx context.Context, slug string) (*models.PressKit, error)
}
