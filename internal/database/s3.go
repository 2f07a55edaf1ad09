package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"dashboard-api/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// s3API 是 S3Store 用到的 *s3.Client 方法
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

var (
	defaultLoadAWSConfig = awsconfig.LoadDefaultConfig
	defaultNewS3Client   = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}

	loadDefaultAWSConfig  = defaultLoadAWSConfig
	newS3ClientFromConfig = defaultNewS3Client
)

// S3Options 設定 S3（或 MinIO 等相容服務）上的文件位置
type S3Options struct {
	Bucket    string
	Key       string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3Store 把整份文件存成一個物件。
// 同一程序內以 mu 序列化；跨程序的寫入以 ETag 條件寫入（If-Match / If-None-Match）防止覆蓋，
// 衝突時回傳 ErrConcurrentUpdate。
type S3Store struct {
	client s3API
	bucket string
	key    string
	mu     sync.Mutex
}

func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}
	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("NewS3Store: %w", err)
	}
	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Store(client, opts.Bucket, opts.Key), nil
}

func newS3Store(client s3API, bucket, key string) *S3Store {
	if key == "" {
		key = "data.json"
	}
	return &S3Store{client: client, bucket: bucket, key: key}
}

func (s *S3Store) ReadAll(ctx context.Context) (*model.Dataset, error) {
	d, _, err := s.get(ctx)
	return d, err
}

func (s *S3Store) WriteAll(ctx context.Context, d *model.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(ctx, d, nil, false)
}

func (s *S3Store) Update(ctx context.Context, fn func(d *model.Dataset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, etag, err := s.get(ctx)
	if err != nil {
		return err
	}
	if err := fn(d); err != nil {
		return err
	}
	return s.put(ctx, d, etag, true)
}

func (s *S3Store) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("S3Store.Ping: %w", err)
	}
	return nil
}

func (s *S3Store) Close() error { return nil }

// get 回傳文件與其 ETag；物件不存在時回傳空文件與 nil ETag
func (s *S3Store) get(ctx context.Context) (*model.Dataset, *string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return &model.Dataset{}, nil, nil
		}
		return nil, nil, fmt.Errorf("S3Store.get: %w", err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("S3Store.get: %w", err)
	}
	d := &model.Dataset{}
	if err := json.Unmarshal(b, d); err != nil {
		return nil, nil, fmt.Errorf("S3Store.get: %w", err)
	}
	return d, out.ETag, nil
}

func (s *S3Store) put(ctx context.Context, d *model.Dataset, etag *string, conditional bool) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("S3Store.put: %w", err)
	}
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        strings.NewReader(string(b)),
		ContentType: aws.String("application/json"),
	}
	if conditional {
		if etag != nil {
			in.IfMatch = etag
		} else {
			in.IfNoneMatch = aws.String("*")
		}
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "PreconditionFailed" || apiErr.ErrorCode() == "ConditionalRequestConflict") {
			return ErrConcurrentUpdate
		}
		return fmt.Errorf("S3Store.put: %w", err)
	}
	return nil
}
