package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/presskit/internal/common"
	pb "github.com/dmitrijs2005/presskit/internal/proto"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"github.com/dmitrijs2005/presskit/internal/server/services"
)

var _ pb.PressKitServiceServer = (*GRPCServer)(nil)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AccountResponse, error) {

	account, err := s.services.Accounts.CreateAccount(ctx, services.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		ArtistName: req.ArtistName,
		Bio:        req.Bio,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "account_id", account.ID)
	return &pb.AccountResponse{Account: AccountToProto(s.services.Accounts.Project(account))}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	account, token, err := s.services.Accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.LoginResponse{AccessToken: token, Account: AccountToProto(s.services.Accounts.Project(account))}, nil
}

// RequestPasswordReset answers the same way whether or not the email is
// registered.
func (s *GRPCServer) RequestPasswordReset(ctx context.Context, req *pb.RequestPasswordResetRequest) (*pb.Empty, error) {

	token, err := s.services.Accounts.IssueResetToken(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &pb.Empty{}, nil
		}
		return nil, toStatus(err)
	}

	if err := s.notifier.Notify(ctx, req.Email, TokenPasswordReset, token); err != nil {
		s.logger.Error(ctx, "reset token delivery failed", "error", err)
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.Empty, error) {
	if err := s.services.Accounts.ConsumeResetToken(ctx, req.Token, req.NewPassword); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ConfirmVerification(ctx context.Context, req *pb.ConfirmVerificationRequest) (*pb.AccountResponse, error) {
	account, err := s.services.Accounts.ConfirmVerification(ctx, req.Token)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AccountResponse{Account: AccountToProto(s.services.Accounts.Project(account))}, nil
}

// GetPublishedPressKit serves a published kit to a visitor and counts the view.
func (s *GRPCServer) GetPublishedPressKit(ctx context.Context, req *pb.GetPublishedPressKitRequest) (*pb.PressKitResponse, error) {

	kit, err := s.services.PressKits.GetPublished(ctx, req.Slug)
	if err != nil {
		return nil, toStatus(err)
	}

	count, err := s.services.PressKits.RecordView(ctx, kit.ID)
	if err != nil {
		// the kit may be deleted between the read and the increment
		return nil, toStatus(err)
	}
	kit.ViewCount = count

	return &pb.PressKitResponse{PressKit: PressKitToProto(kit)}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, _ *pb.Empty) (*pb.AccountResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.services.Accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AccountResponse{Account: AccountToProto(s.services.Accounts.Project(account))}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.AccountResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.services.Accounts.UpdateProfile(ctx, accountID, services.ProfileInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ArtistName:      req.ArtistName,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageUrl,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AccountResponse{Account: AccountToProto(s.services.Accounts.Project(account))}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.Empty, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Accounts.ChangePassword(ctx, accountID, req.CurrentPassword, req.NewPassword); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) RequestVerification(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.services.Accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	token, err := s.services.Accounts.IssueVerificationToken(ctx, accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.notifier.Notify(ctx, account.Email, TokenVerification, token); err != nil {
		s.logger.Error(ctx, "verification token delivery failed", "error", err)
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Accounts.DeleteAccount(ctx, accountID); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) PresignProfileImageUpload(ctx context.Context, _ *pb.Empty) (*pb.UploadResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	upload, err := s.services.Media.PresignProfileImageUpload(ctx, accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	return uploadToProto(upload), nil
}

func (s *GRPCServer) CreatePressKit(ctx context.Context, req *pb.CreatePressKitRequest) (*pb.PressKitResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	in := services.CreatePressKitInput{
		Title:       req.GetTitle(),
		Template:    req.GetTemplate(),
		Sections:    sectionInputs(req.GetSections()),
		SocialLinks: socialLinkInputs(req.GetSocialLinks()),
	}
	if req.GetCustomization() != nil {
		c := customizationInput(req.GetCustomization())
		in.Customization = &c
	}

	kit, err := s.services.PressKits.Create(ctx, accountID, in)
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Press kit created", "press_kit_id", kit.ID, "slug", kit.Slug)
	return &pb.PressKitResponse{PressKit: PressKitToProto(kit)}, nil
}

// ownedKitCall runs fn with the caller's account id and wraps the result.
func (s *GRPCServer) ownedKitCall(ctx context.Context, fn func(accountID string) (*models.PressKit, error)) (*pb.PressKitResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	kit, err := fn(accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PressKitResponse{PressKit: PressKitToProto(kit)}, nil
}

func (s *GRPCServer) GetPressKit(ctx context.Context, req *pb.PressKitIDRequest) (*pb.PressKitResponse, error) {
	return s.ownedKitCall(ctx, func(accountID string) (*models.PressKit, error) {
		return s.services.PressKits.Get(ctx, accountID, req.GetId())
	})
}

func (s *GRPCServer) ListPressKits(ctx context.Context, _ *pb.Empty) (*pb.ListPressKitsResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	kits, err := s.services.PressKits.ListByOwner(ctx, accountID)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ListPressKitsResponse{PressKits: make([]*pb.PressKit, 0, len(kits))}
	for _, k := range kits {
		resp.PressKits = append(resp.PressKits, PressKitToProto(k))
	}
	return resp, nil
}

func (s *GRPCServer) RenamePressKit(ctx context.Context, req *pb.RenamePressKitRequest) (*pb.PressKitResponse, error) {
	return s.ownedKitCall(ctx, func(accountID string) (*models.PressKit, error) {
		return s.services.PressKits.Rename(ctx, accountID, req.GetId(), req.Title)
	})
}

func (s *GRPCServer) SetSections(ctx context.Context, req *pb.SetSectionsRequest) (*pb.PressKitResponse, error) {
	return s.ownedKitCall(ctx, func(accountID string) (*models.PressKit, error) {
		return s.services.PressKits.SetSections(ctx, accountID, req.GetId(), sectionInputs(req.GetSections()))
	})
}

func (s *GRPCServer) SetSocialLinks(ctx context.Context, req *pb.SetSocialLinksRequest) (*pb.PressKitResponse, error) {
	return s.ownedKitCall(ctx, func(accountID string) (*models.PressKit, error) {
		return s.services.PressKits.SetSocialLinks(ctx, accountID, req.GetId(), socialLinkInputs(req.GetSocialLinks()))
	})
}

func (s *GRPCServer) SetCustomization(ctx context.Context, req *pb.SetCustomizationRequest) (*pb.PressKitResponse, error) {
	return s.ownedKitCall(ctx, func(accountID string) (*models.PressKit, error) {
		return s.services.PressKits.SetCustomization(ctx, accountID, req.GetId(), customizationInput(req.GetCustomization()))
	})
}

func (s *GRPCServer) PublishPressKit(ctx context.Context, req *pb.PressKitIDRequest) (*pb.PressKitResponse, error) {
	return s.ownedKitCall(ctx, func(accountID string) (*models.PressKit, error) {
		return s.services.PressKits.Publish(ctx, accountID, req.GetId())
	})
}

func (s *GRPCServer) UnpublishPressKit(ctx context.Context, req *pb.PressKitIDRequest) (*pb.PressKitResponse, error) {
	return s.ownedKitCall(ctx, func(accountID string) (*models.PressKit, error) {
		return s.services.PressKits.Unpublish(ctx, accountID, req.GetId())
	})
}

func (s *GRPCServer) DeletePressKit(ctx context.Context, req *pb.PressKitIDRequest) (*pb.Empty, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.PressKits.Delete(ctx, accountID, req.GetId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) PresignLogoUpload(ctx context.Context, req *pb.PressKitIDRequest) (*pb.UploadResponse, error) {
	accountID, err := accountIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	upload, err := s.services.Media.PresignLogoUpload(ctx, accountID, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return uploadToProto(upload), nil
}
