// Package s3 stores room images in an S3 compatible bucket and hands back their public URLs.
package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
)

const (
	otelAttrKey    = "key"
	otelAttrBucket = "bucket"
	otelAttrSize   = "size"

	region = "auto"
)

type S3 interface {
	// Upload writes data under key and returns the URL clients load it from.
	Upload(ctx context.Context, key, contentType string, data []byte) (url string, err error)
	// Remove deletes the object behind a URL returned by Upload. URLs that point elsewhere, such
	// as inline data URLs, are left alone and reported as not removed.
	Remove(ctx context.Context, url string) (removed bool, err error)
}

type s3Impl struct {
	client *s3.Client
	bucket string
	links  Links
	otel   otel.Otel
}

// Links converts between object keys and the URLs they are served from.
type Links struct {
	PublicDomain string
	APIEndpoint  string
	Bucket       string
}

// URL is where key is served from: the public domain when set, the path-style API URL otherwise.
func (l Links) URL(key string) string {
	if base := strings.TrimSuffix(l.PublicDomain, "/"); base != "" {
		return base + "/" + key
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(l.APIEndpoint, "/"), l.Bucket, key)
}

// Key reverses URL. The second result is false for URLs outside the bucket.
func (l Links) Key(raw string) (string, bool) {
	target, err := url.Parse(raw)
	if err != nil || target.Host == "" {
		return "", false
	}

	for _, base := range []string{l.PublicDomain, strings.TrimSuffix(l.APIEndpoint, "/") + "/" + l.Bucket} {
		prefix, err := url.Parse(strings.TrimSuffix(base, "/"))
		if err != nil || prefix.Host == "" || prefix.Host != target.Host {
			continue
		}

		key, ok := strings.CutPrefix(target.Path, prefix.Path+"/")
		if ok && key != "" {
			return key, true
		}
	}

	return "", false
}

func (svc *s3Impl) Upload(ctx context.Context, key, contentType string, data []byte) (link string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key = path.Clean(strings.TrimPrefix(key, "/"))

	scope.SetAttributes(map[string]any{
		otelAttrKey:    key,
		otelAttrBucket: svc.bucket,
		otelAttrSize:   len(data),
	})

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return svc.links.URL(key), nil
}

func (svc *s3Impl) Remove(ctx context.Context, link string) (removed bool, err error) {
	key, ok := svc.links.Key(link)
	if !ok {
		return false, nil
	}

	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrKey:    key,
		otelAttrBucket: svc.bucket,
	})

	if _, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return false, fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return true, nil
}

// New returns nil when object storage is disabled or cannot be configured; room images are
// then stored inline.
func New(cfg *config.Config, otel otel.Otel) S3 {
	settings := cfg.External.S3

	if !settings.Enable {
		log.Info().Msg("S3 disabled, room images are stored inline")

		return nil
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load S3 configuration, room images are stored inline")

		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(settings.APIEndpoint)
		o.UsePathStyle = true
	})

	log.Info().Str("bucket", settings.BucketName).Str("endpoint", settings.APIEndpoint).Msg("S3 storage enabled")

	return &s3Impl{
		client: client,
		bucket: settings.BucketName,
		links: Links{
			PublicDomain: settings.PublicDomain,
			APIEndpoint:  settings.APIEndpoint,
			Bucket:       settings.BucketName,
		},
		otel: otel,
	}
}
