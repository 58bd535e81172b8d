package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPresign replaces the AWS seams for the duration of the test and
// records the last presigned key.
func stubPresign(t *testing.T) *string {
	t.Helper()
	origLoad, origNewS3, origNewPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	origPut, origGet := presignPutObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
	})

	var lastKey string
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		lastKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "https://s3.local/put/" + *in.Bucket + "/" + *in.Key}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		lastKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "https://s3.local/get/" + *in.Key}, nil
	}
	return &lastKey
}

func Test_getPresignClient_AppliesConfig(t *testing.T) {
	f := newFixture(t)
	svc := NewMediaService(f.kits, testConfig())

	origLoad, origNewS3, origNewPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }

	pc, err := svc.getPresignClient(context.Background())
	require.NoError(t, err)
	require.NotNil(t, pc)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = svc.getPresignClient(context.Background())
	assert.EqualError(t, err, "load-fail")
}

func TestPresignLogoUpload(t *testing.T) {
	lastKey := stubPresign(t)
	f := newFixture(t)
	svc := NewMediaService(f.kits, testConfig())
	owner := f.register(t, "jane@x.io")
	other := f.register(t, "mallory@x.io")
	k := f.createKit(t, owner.ID, "Midnight Echo")
	ctx := context.Background()

	up, err := svc.PresignLogoUpload(ctx, owner.ID, k.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(up.Key, "presskits/"+k.ID+"/logo/"), up.Key)
	assert.Equal(t, *lastKey, up.Key)
	assert.Equal(t, "https://s3.local/put/presskit-media/"+up.Key, up.URL)

	_, err = svc.PresignLogoUpload(ctx, other.ID, k.ID)
	assert.ErrorIs(t, err, common.ErrorForbidden)
}

func TestPresignProfileImageUpload(t *testing.T) {
	stubPresign(t)
	f := newFixture(t)
	svc := NewMediaService(f.kits, testConfig())
	a := f.register(t, "jane@x.io")

	up, err := svc.PresignProfileImageUpload(context.Background(), a.ID)
	require.NoError(t, err)
	prefix := "accounts/" + a.ID + "/profile/" + time.Now().UTC().Format("2006/01")
	assert.True(t, strings.HasPrefix(up.Key, prefix), up.Key)

	_, err = svc.PresignProfileImageUpload(context.Background(), "bad")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPresignDownload(t *testing.T) {
	stubPresign(t)
	f := newFixture(t)
	svc := NewMediaService(f.kits, testConfig())

	url, err := svc.PresignDownload(context.Background(), " presskits/k/logo/x ")
	require.NoError(t, err)
	assert.Equal(t, "https://s3.local/get/presskits/k/logo/x", url)

	_, err = svc.PresignDownload(context.Background(), "  ")
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = svc.PresignDownload(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestPresign_ErrorsPropagate(t *testing.T) {
	stubPresign(t)
	f := newFixture(t)
	svc := NewMediaService(f.kits, testConfig())
	a := f.register(t, "jane@x.io")

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-put-fail")
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-get-fail")
	}

	_, err := svc.PresignProfileImageUpload(context.Background(), a.ID)
	assert.EqualError(t, err, "presign-put-fail")
	_, err = svc.PresignDownload(context.Background(), "k")
	assert.EqualError(t, err, "presign-get-fail")

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = svc.PresignDownload(context.Background(), "k")
	assert.EqualError(t, err, "load-fail")
}
