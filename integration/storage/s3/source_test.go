package s3_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ctxkit/core/httperr"
	"github.com/dmitrymomot/ctxkit/core/request"
	"github.com/dmitrymomot/ctxkit/core/response"
	"github.com/dmitrymomot/ctxkit/core/static"
	"github.com/dmitrymomot/ctxkit/integration/storage/s3"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) HeadObject(ctx context.Context, in *s3aws.HeadObjectInput, _ ...func(*s3aws.Options)) (*s3aws.HeadObjectOutput, error) {
	args := m.Called(ctx, aws.ToString(in.Key))
	out, _ := args.Get(0).(*s3aws.HeadObjectOutput)
	return out, args.Error(1)
}

func (m *mockClient) GetObject(ctx context.Context, in *s3aws.GetObjectInput, _ ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error) {
	args := m.Called(ctx, aws.ToString(in.Key))
	out, _ := args.Get(0).(*s3aws.GetObjectOutput)
	return out, args.Error(1)
}

func (m *mockClient) ListObjectsV2(ctx context.Context, in *s3aws.ListObjectsV2Input, _ ...func(*s3aws.Options)) (*s3aws.ListObjectsV2Output, error) {
	args := m.Called(ctx, aws.ToString(in.Prefix))
	out, _ := args.Get(0).(*s3aws.ListObjectsV2Output)
	return out, args.Error(1)
}

var modTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func head(size int64) *s3aws.HeadObjectOutput {
	return &s3aws.HeadObjectOutput{ContentLength: aws.Int64(size), LastModified: aws.Time(modTime)}
}

func get(body string) *s3aws.GetObjectOutput {
	return &s3aws.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}
}

func newSource(t *testing.T, client *mockClient) *s3.Source {
	t.Helper()
	src, err := s3.New(context.Background(), s3.Config{Bucket: "site", Region: "us-east-1"}, s3.WithClient(client))
	require.NoError(t, err)
	return src
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := s3.New(context.Background(), s3.Config{Region: "us-east-1"})
	assert.ErrorIs(t, err, s3.ErrInvalidConfig)

	_, err = s3.New(context.Background(), s3.Config{Bucket: "site"})
	assert.ErrorIs(t, err, s3.ErrInvalidConfig)
}

func TestSource_Stat(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("object", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("HeadObject", mock.Anything, "public/app.js").Return(head(42), nil)

		info, err := newSource(t, client).Stat(ctx, "public/app.js")
		require.NoError(t, err)
		assert.Equal(t, "app.js", info.Name())
		assert.Equal(t, int64(42), info.Size())
		assert.Equal(t, modTime, info.ModTime())
		assert.False(t, info.IsDir())
		client.AssertExpectations(t)
	})

	t.Run("root", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}

		info, err := newSource(t, client).Stat(ctx, "")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		client.AssertNotCalled(t, "HeadObject", mock.Anything, mock.Anything)
	})

	t.Run("prefix is a directory", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("HeadObject", mock.Anything, "docs").Return(nil, &types.NotFound{})
		client.On("ListObjectsV2", mock.Anything, "docs/").
			Return(&s3aws.ListObjectsV2Output{KeyCount: aws.Int32(1)}, nil)

		info, err := newSource(t, client).Stat(ctx, "docs")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.True(t, info.Mode().IsDir())
		client.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("HeadObject", mock.Anything, "nope.txt").Return(nil, &types.NotFound{})
		client.On("ListObjectsV2", mock.Anything, "nope.txt/").
			Return(&s3aws.ListObjectsV2Output{KeyCount: aws.Int32(0)}, nil)

		_, err := newSource(t, client).Stat(ctx, "nope.txt")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("access denied", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("HeadObject", mock.Anything, "secret.txt").
			Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"})

		_, err := newSource(t, client).Stat(ctx, "secret.txt")
		assert.ErrorIs(t, err, fs.ErrPermission)
		client.AssertNotCalled(t, "ListObjectsV2", mock.Anything, mock.Anything)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("HeadObject", mock.Anything, "app.js").Return(nil, &types.NoSuchBucket{})

		_, err := newSource(t, client).Stat(ctx, "app.js")
		assert.ErrorIs(t, err, s3.ErrBucketNotFound)
	})

	t.Run("transport failure keeps cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection reset")
		client := &mockClient{}
		client.On("HeadObject", mock.Anything, "app.js").Return(nil, cause)

		_, err := newSource(t, client).Stat(ctx, "app.js")
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestSource_Open(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	client.On("GetObject", mock.Anything, "app.js").Return(get("console.log(1)"), nil)
	client.On("GetObject", mock.Anything, "gone.js").Return(nil, &types.NoSuchKey{})

	src := newSource(t, client)

	rc, err := src.Open(context.Background(), "app.js")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "console.log(1)", string(data))

	_, err = src.Open(context.Background(), "gone.js")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSource_Send(t *testing.T) {
	t.Parallel()

	send := func(t *testing.T, client *mockClient, target string, opts static.Options) (*response.Response, string, error) {
		t.Helper()
		opts.Source = newSource(t, client)
		req := request.New(httptest.NewRequest(http.MethodGet, target, nil))
		res := response.New()
		name, err := static.Send(context.Background(), req, res, opts)
		return res, name, err
	}

	t.Run("serves object under root prefix", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("HeadObject", mock.Anything, "public/app.js").Return(head(14), nil)
		client.On("GetObject", mock.Anything, "public/app.js").Return(get("console.log(1)"), nil)

		res, name, err := send(t, client, "/app.js", static.Options{Root: "public"})
		require.NoError(t, err)
		assert.Equal(t, "app.js", name)
		assert.Equal(t, "14", res.Header().Get("Content-Length"))
		assert.Equal(t, "text/javascript; charset=utf-8", res.Header().Get("Content-Type"))
		assert.Equal(t, modTime.Format(http.TimeFormat), res.Header().Get("Last-Modified"))

		body, ok := res.Body().(io.Reader)
		require.True(t, ok)
		data, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "console.log(1)", string(data))
		require.NoError(t, res.Destroy())
		client.AssertExpectations(t)
	})

	t.Run("directory prefix serves index", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("HeadObject", mock.Anything, "docs").Return(nil, &types.NotFound{})
		client.On("ListObjectsV2", mock.Anything, "docs/").
			Return(&s3aws.ListObjectsV2Output{KeyCount: aws.Int32(1)}, nil)
		client.On("HeadObject", mock.Anything, "docs/index.html").Return(head(14), nil)
		client.On("GetObject", mock.Anything, "docs/index.html").Return(get("<h1>docs</h1>\n"), nil)

		res, name, err := send(t, client, "/docs", static.Options{Root: "/", Index: "index.html", Format: true})
		require.NoError(t, err)
		assert.Equal(t, "docs/index.html", name)
		assert.Equal(t, "text/html; charset=utf-8", res.Header().Get("Content-Type"))
		require.NoError(t, res.Destroy())
	})

	t.Run("missing object is not found", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("HeadObject", mock.Anything, "public/nope.js").Return(nil, &types.NotFound{})
		client.On("ListObjectsV2", mock.Anything, "public/nope.js/").
			Return(&s3aws.ListObjectsV2Output{}, nil)

		res, _, err := send(t, client, "/nope.js", static.Options{Root: "public"})
		assert.ErrorIs(t, err, httperr.ErrNotFound)
		assert.Nil(t, res.Body())
	})

	t.Run("access denied is forbidden", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("HeadObject", mock.Anything, "public/app.js").
			Return(nil, &smithy.GenericAPIError{Code: "AccessDenied"})

		_, _, err := send(t, client, "/app.js", static.Options{Root: "public"})
		assert.ErrorIs(t, err, httperr.ErrForbidden)
	})

	t.Run("traversal never reaches the bucket", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}

		_, _, err := send(t, client, "/%2e%2e/secret", static.Options{Root: "public"})
		assert.ErrorIs(t, err, httperr.ErrForbidden)
		client.AssertNotCalled(t, "HeadObject", mock.Anything, mock.Anything)
	})
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, s3.Config{}.Enabled())
	assert.True(t, s3.Config{Bucket: "site"}.Enabled())
}
