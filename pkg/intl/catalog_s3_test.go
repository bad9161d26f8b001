package intl_test

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/intl"
)

type mockAPIError struct {
	code string
}

func (e *mockAPIError) Error() string                 { return e.code }
func (e *mockAPIError) ErrorCode() string             { return e.code }
func (e *mockAPIError) ErrorMessage() string          { return "mock " + e.code }
func (e *mockAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// mockS3 serves objects one per page to exercise pagination.
type mockS3 struct {
	objects map[string]string
	listErr error
	getErr  error
}

func (m *mockS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	var keys []string
	for k := range m.objects {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	start := 0
	if token := aws.ToString(in.ContinuationToken); token != "" {
		start = slices.Index(keys, token)
	}
	if start < 0 || start >= len(keys) {
		return &s3.ListObjectsV2Output{}, nil
	}

	out := &s3.ListObjectsV2Output{
		Contents: []types.Object{{Key: aws.String(keys[start])}},
	}
	if start+1 < len(keys) {
		out.IsTruncated = aws.Bool(true)
		out.NextContinuationToken = aws.String(keys[start+1])
	}
	return out, nil
}

func (m *mockS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	data, ok := m.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(data))}, nil
}

func TestLoadMessagesS3(t *testing.T) {
	t.Parallel()

	objects := map[string]string{
		"locales/":            "",
		"locales/en.json":     `{"greeting": "Hello"}`,
		"locales/en/nav.yaml": "home: Home\n",
		"locales/es.json":     `{"greeting": "Hola"}`,
		"locales/notes.txt":   "ignored",
		"other/en.json":       `{"greeting": "Wrong"}`,
	}

	t.Run("reads every page under the prefix", func(t *testing.T) {
		t.Parallel()

		messages, err := intl.LoadMessagesS3(context.Background(), &mockS3{objects: objects}, "bucket", "locales/")
		require.NoError(t, err)

		assert.Equal(t, "Hello", messages["en"]["greeting"])
		assert.Equal(t, "Hola", messages["es"]["greeting"])
		got, ok := intl.Lookup(messages["en"], "nav.home")
		require.True(t, ok)
		assert.Equal(t, "Home", got)
		assert.Len(t, messages, 2)
	})

	t.Run("config option", func(t *testing.T) {
		t.Parallel()

		cfg, err := intl.NewConfig(intl.WithMessagesS3(context.Background(), &mockS3{objects: objects}, "bucket", "locales"))
		require.NoError(t, err)
		assert.Equal(t, "Hola", cfg.Messages["es"]["greeting"])
	})

	t.Run("prefix without a trailing slash stays in its folder", func(t *testing.T) {
		t.Parallel()

		withSibling := map[string]string{
			"locales/en.json":     `{"greeting": "Hello"}`,
			"locales-old/fr.json": `{"greeting": "Bonjour"}`,
			"loc.json":            `{"greeting": "Wrong"}`,
		}
		messages, err := intl.LoadMessagesS3(context.Background(), &mockS3{objects: withSibling}, "bucket", "locales")
		require.NoError(t, err)
		assert.Equal(t, intl.Messages{"en": {"greeting": "Hello"}}, messages)

		messages, err = intl.LoadMessagesS3(context.Background(), &mockS3{objects: withSibling}, "bucket", "loc")
		require.NoError(t, err)
		assert.Empty(t, messages)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			client *mockS3
			want   error
		}{
			{"access denied", &mockS3{listErr: &mockAPIError{code: "AccessDenied"}}, intl.ErrAccessDenied},
			{"missing bucket", &mockS3{listErr: &mockAPIError{code: "NoSuchBucket"}}, intl.ErrCatalogNotFound},
			{"missing key", &mockS3{objects: objects, getErr: &types.NoSuchKey{}}, intl.ErrCatalogNotFound},
			{"transport failure", &mockS3{listErr: errors.New("connection reset")}, intl.ErrCatalogFetch},
			{"invalid catalog", &mockS3{objects: map[string]string{"locales/en.json": "{"}}, intl.ErrInvalidFile},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				_, err := intl.LoadMessagesS3(context.Background(), tt.client, "bucket", "locales/")
				require.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestNewS3Client(t *testing.T) {
	t.Parallel()

	client := intl.NewS3Client(intl.S3Config{
		Region:    "eu-west-1",
		Endpoint:  "http://localhost:9000",
		PathStyle: true,
	})
	opts := client.Options()
	assert.Equal(t, "eu-west-1", opts.Region)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
}
