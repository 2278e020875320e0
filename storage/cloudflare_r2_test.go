package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutObject struct {
	input *s3.PutObjectInput
	body  string
	etag  *string
	err   error
}

func (f *fakePutObject) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	raw, _ := io.ReadAll(params.Body)
	f.body = string(raw)
	return &s3.PutObjectOutput{ETag: f.etag}, nil
}

func TestCloudflareR2Uploader_Upload(t *testing.T) {
	client := &fakePutObject{etag: aws.String(`"abc123"`)}
	uploader := newCloudflareR2Uploader(client, "snapshots", "https://cdn.example.com/")

	res, err := uploader.Upload(context.Background(), "exports/2025-06-01/x.json", "application/json", strings.NewReader(`{"ok":true}`))
	require.NoError(t, err)

	assert.Equal(t, "snapshots", aws.ToString(client.input.Bucket))
	assert.Equal(t, "exports/2025-06-01/x.json", aws.ToString(client.input.Key))
	assert.Equal(t, "application/json", aws.ToString(client.input.ContentType))
	assert.Equal(t, `{"ok":true}`, client.body)

	assert.Equal(t, "abc123", res.ETag)
	assert.Equal(t, "https://cdn.example.com/exports/2025-06-01/x.json", res.Location)
}

func TestCloudflareR2Uploader_UploadError(t *testing.T) {
	uploader := newCloudflareR2Uploader(&fakePutObject{err: errors.New("access denied")}, "snapshots", "https://cdn.example.com")

	_, err := uploader.Upload(context.Background(), "k.json", "application/json", strings.NewReader("{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key: k.json")
	assert.Contains(t, err.Error(), "access denied")
}

func TestCloudflareR2Uploader_GetPublicURL(t *testing.T) {
	uploader := newCloudflareR2Uploader(nil, "b", "https://cdn.example.com/base")
	assert.Equal(t, "https://cdn.example.com/base/a/b.json", uploader.GetPublicURL("/a/b.json"))
	assert.Equal(t, "", uploader.GetPublicURL(""))

	assert.Equal(t, "", newCloudflareR2Uploader(nil, "b", "").GetPublicURL("a.json"))
}

func TestCloudflareR2UploaderConfig(t *testing.T) {
	assert.False(t, CloudflareR2UploaderConfig{}.Enabled())

	partial := CloudflareR2UploaderConfig{AccountID: "acc", BucketName: "b"}
	assert.True(t, partial.Enabled())
	assert.ErrorIs(t, partial.validate(), ErrInvalidR2Config)

	_, err := NewCloudflareR2Uploader(context.Background(), partial)
	assert.ErrorIs(t, err, ErrInvalidR2Config)

	full := CloudflareR2UploaderConfig{
		AccountID:       "acc",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "b",
		PublicBaseURL:   "https://cdn.example.com",
	}
	assert.NoError(t, full.validate())
}
