package s3

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/ctxkit/core/static"
)

// Compile-time check that Source implements static.Source.
var _ static.Source = (*Source)(nil)

// Client is the subset of the S3 API used by Source.
type Client interface {
	HeadObject(ctx context.Context, params *s3aws.HeadObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3aws.ListObjectsV2Input, optFns ...func(*s3aws.Options)) (*s3aws.ListObjectsV2Output, error)
}

// Source serves objects of one bucket to static.Send. Object keys are the
// names Send asks for, so static.Options.Root acts as the key prefix.
//
// S3 has no directories: a name is reported as a directory when it is the
// bucket root or when objects exist under "name/".
type Source struct {
	client Client
	bucket string
}

// Option configures New.
type Option func(*options)

type options struct {
	client        Client
	httpClient    *http.Client
	configOptions []func(*config.LoadOptions) error
	clientOptions []func(*s3aws.Options)
}

// WithClient sets a pre-configured client, typically a mock in tests.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithHTTPClient sets the HTTP client used for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithConfigOption adds an AWS config load option.
func WithConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithClientOption adds an S3 client option.
func WithClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// New creates a Source for cfg.Bucket. Credentials fall back to the
// default AWS chain (environment, shared config, IAM role) when the
// static keys are empty.
func New(ctx context.Context, cfg Config, opts ...Option) (*Source, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}
		awsOptions = append(awsOptions, o.configOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range o.clientOptions {
				opt(so)
			}
		})
	}

	return &Source{client: client, bucket: cfg.Bucket}, nil
}

// Stat returns the object's size and modification time.
func (s *Source) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if name == "" {
		return objectInfo{name: ".", dir: true}, nil
	}

	out, err := s.client.HeadObject(ctx, &s3aws.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err == nil {
		return objectInfo{
			name:    path.Base(name),
			size:    aws.ToInt64(out.ContentLength),
			modTime: aws.ToTime(out.LastModified),
		}, nil
	}

	err = classifyError(err, "stat", name)
	if !isNotExist(err) {
		return nil, err
	}

	dir, lerr := s.isDir(ctx, name)
	if lerr != nil {
		return nil, lerr
	}
	if !dir {
		return nil, err
	}
	return objectInfo{name: path.Base(name), dir: true}, nil
}

// Open streams the object body. The caller must close it.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, classifyError(err, "open", name)
	}
	return out.Body, nil
}

func (s *Source) isDir(ctx context.Context, name string) (bool, error) {
	prefix := strings.TrimSuffix(name, "/") + "/"
	out, err := s.client.ListObjectsV2(ctx, &s3aws.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return false, classifyError(err, "list", prefix)
	}
	return len(out.Contents) > 0 || aws.ToInt32(out.KeyCount) > 0, nil
}

type objectInfo struct {
	name    string
	size    int64
	modTime time.Time
	dir     bool
}

func (i objectInfo) Name() string       { return i.name }
func (i objectInfo) Size() int64        { return i.size }
func (i objectInfo) ModTime() time.Time { return i.modTime }
func (i objectInfo) IsDir() bool        { return i.dir }
func (i objectInfo) Sys() any           { return nil }

func (i objectInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}
