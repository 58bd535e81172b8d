package grpc

import (
	"encoding/json"
	"time"

	pb "github.com/dmitrijs2005/presskit/internal/proto"
	"github.com/dmitrijs2005/presskit/internal/server/models"
	"github.com/dmitrijs2005/presskit/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

// AccountToProto converts an account view into its wire form.
func AccountToProto(a models.AccountView) *pb.Account {
	out := &pb.Account{
		Id:              a.ID,
		Email:           a.Email,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		ArtistName:      a.ArtistName,
		DisplayName:     a.DisplayName,
		Bio:             a.Bio,
		ProfileImageUrl: a.ProfileImageURL,
		IsVerified:      a.IsVerified,
		CreatedAt:       timestamp(a.CreatedAt),
		UpdatedAt:       timestamp(a.UpdatedAt),
	}
	if a.LastLoginAt != nil {
		out.LastLoginAt = timestamppb.New(*a.LastLoginAt)
	}
	return out
}

// AccountFromProto is the inverse of AccountToProto.
func AccountFromProto(a *pb.Account) models.AccountView {
	out := models.AccountView{
		ID:              a.GetId(),
		Email:           a.GetEmail(),
		FirstName:       a.GetFirstName(),
		LastName:        a.GetLastName(),
		ArtistName:      a.GetArtistName(),
		DisplayName:     a.GetDisplayName(),
		Bio:             a.GetBio(),
		ProfileImageURL: a.GetProfileImageUrl(),
		IsVerified:      a.GetIsVerified(),
		CreatedAt:       fromTimestamp(a.GetCreatedAt()),
		UpdatedAt:       fromTimestamp(a.GetUpdatedAt()),
	}
	if a.GetLastLoginAt() != nil {
		t := a.GetLastLoginAt().AsTime()
		out.LastLoginAt = &t
	}
	return out
}

// PressKitToProto converts a press kit into its wire form.
func PressKitToProto(k *models.PressKit) *pb.PressKit {
	if k == nil {
		return nil
	}
	out := &pb.PressKit{
		Id:          k.ID,
		OwnerId:     k.OwnerID,
		Title:       k.Title,
		Slug:        k.Slug,
		Template:    k.Template,
		IsPublished: k.IsPublished,
		Customization: &pb.Customization{
			PrimaryColor:   k.Customization.PrimaryColor,
			SecondaryColor: k.Customization.SecondaryColor,
			FontFamily:     k.Customization.FontFamily,
			LogoUrl:        k.Customization.LogoURL,
		},
		Sections:     make([]*pb.Section, 0, len(k.Sections)),
		SocialLinks:  make([]*pb.SocialLink, 0, len(k.SocialLinks)),
		ViewCount:    k.ViewCount,
		ShareableUrl: k.ShareableURL,
		CreatedAt:    timestamp(k.CreatedAt),
		UpdatedAt:    timestamp(k.UpdatedAt),
	}
	for _, s := range k.Sections {
		out.Sections = append(out.Sections, &pb.Section{
			Id:        s.ID,
			Type:      string(s.Type),
			Title:     s.Title,
			Content:   s.Content,
			IsVisible: s.IsVisible,
			Order:     int32(s.Order),
		})
	}
	for _, l := range k.SocialLinks {
		out.SocialLinks = append(out.SocialLinks, &pb.SocialLink{Id: l.ID, Platform: l.Platform, Url: l.URL})
	}
	return out
}

// PressKitFromProto is the inverse of PressKitToProto.
func PressKitFromProto(k *pb.PressKit) *models.PressKit {
	if k == nil {
		return nil
	}
	c := k.GetCustomization()
	out := &models.PressKit{
		ID:          k.GetId(),
		OwnerID:     k.GetOwnerId(),
		Title:       k.GetTitle(),
		Slug:        k.GetSlug(),
		Template:    k.GetTemplate(),
		IsPublished: k.GetIsPublished(),
		Customization: models.Customization{
			PrimaryColor:   c.GetPrimaryColor(),
			SecondaryColor: c.GetSecondaryColor(),
			FontFamily:     c.GetFontFamily(),
			LogoURL:        c.GetLogoUrl(),
		},
		Sections:     make([]models.Section, 0, len(k.GetSections())),
		SocialLinks:  make([]models.SocialLink, 0, len(k.GetSocialLinks())),
		ViewCount:    k.GetViewCount(),
		ShareableURL: k.GetShareableUrl(),
		CreatedAt:    fromTimestamp(k.GetCreatedAt()),
		UpdatedAt:    fromTimestamp(k.GetUpdatedAt()),
	}
	for _, s := range k.GetSections() {
		out.Sections = append(out.Sections, models.Section{
			ID:        s.GetId(),
			Type:      models.SectionType(s.GetType()),
			Title:     s.GetTitle(),
			Content:   json.RawMessage(s.GetContent()),
			IsVisible: s.GetIsVisible(),
			Order:     int(s.GetOrder()),
		})
	}
	for _, l := range k.GetSocialLinks() {
		out.SocialLinks = append(out.SocialLinks, models.SocialLink{ID: l.GetId(), Platform: l.GetPlatform(), URL: l.GetUrl()})
	}
	return out
}

func sectionInputs(in []*pb.SectionInput) []services.SectionInput {
	out := make([]services.SectionInput, 0, len(in))
	for _, s := range in {
		si := services.SectionInput{
			ID:        s.GetId(),
			Type:      s.GetType(),
			Title:     s.GetTitle(),
			Content:   json.RawMessage(s.GetContent()),
			IsVisible: s.IsVisible,
		}
		if s.Order != nil {
			order := int(*s.Order)
			si.Order = &order
		}
		out = append(out, si)
	}
	return out
}

func socialLinkInputs(in []*pb.SocialLink) []services.SocialLinkInput {
	out := make([]services.SocialLinkInput, 0, len(in))
	for _, l := range in {
		out = append(out, services.SocialLinkInput{ID: l.GetId(), Platform: l.GetPlatform(), URL: l.GetUrl()})
	}
	return out
}

func customizationInput(c *pb.CustomizationPatch) services.CustomizationInput {
	if c == nil {
		return services.CustomizationInput{}
	}
	return services.CustomizationInput{
		PrimaryColor:   c.PrimaryColor,
		SecondaryColor: c.SecondaryColor,
		FontFamily:     c.FontFamily,
		LogoURL:        c.LogoUrl,
	}
}

func uploadToProto(u *services.Upload) *pb.UploadResponse {
	return &pb.UploadResponse{Key: u.Key, Url: u.URL}
}
