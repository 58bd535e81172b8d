package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/presskit/internal/common"
	sc "github.com/dmitrijs2005/presskit/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PresignExpiry is how long presigned media URLs stay valid.
const PresignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Upload is a presigned PUT target. Key is what gets stored as the logo or
// profile image reference once the client has uploaded.
type Upload struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// MediaService hands out presigned S3 URLs for press kit logos and profile
// images. The bytes never pass through the server.
type MediaService struct {
	kits   *PressKitService
	config *sc.Config
}

func NewMediaService(kits *PressKitService, config *sc.Config) *MediaService {
	return &MediaService{kits: kits, config: config}
}

func storageKey(prefix string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("%s/%d/%02d/%02d/%v", prefix, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *MediaService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

func (s *MediaService) presignPut(ctx context.Context, key string) (*Upload, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return nil, err
	}

	return &Upload{Key: key, URL: req.URL}, nil
}

// PresignLogoUpload returns an upload target for the logo of a press kit the
// caller owns.
func (s *MediaService) PresignLogoUpload(ctx context.Context, ownerID, pressKitID string) (*Upload, error) {
	kit, err := s.kits.Get(ctx, ownerID, pressKitID)
	if err != nil {
		return nil, err
	}
	return s.presignPut(ctx, storageKey("presskits/"+kit.ID+"/logo"))
}

// PresignProfileImageUpload returns an upload target for an account's
// profile image.
func (s *MediaService) PresignProfileImageUpload(ctx context.Context, accountID string) (*Upload, error) {
	if !validID(accountID) {
		return nil, common.ErrorNotFound
	}
	return s.presignPut(ctx, storageKey("accounts/"+accountID+"/profile"))
}

// PresignDownload returns a GET URL for a stored object key.
func (s *MediaService) PresignDownload(ctx context.Context, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, "..") {
		return "", common.NewValidationError("key", "is not a valid object key")
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
