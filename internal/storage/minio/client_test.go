package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"testing"
	"time"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error

	putInfo minioLib.UploadInfo
	putErr  error
	putKey  string

	removeErr error

	presignURL *url.URL
	presignErr error
	presignKey string
	presignTTL time.Duration
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	return f.makeBucketErr
}
func (f *fakeMinio) PutObject(_ context.Context, _ string, key string, _ io.Reader, _ int64, _ minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey = key
	return f.putInfo, f.putErr
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}
func (f *fakeMinio) PresignedGetObject(_ context.Context, _ string, key string, ttl time.Duration, _ url.Values) (*url.URL, error) {
	f.presignKey = key
	f.presignTTL = ttl
	return f.presignURL, f.presignErr
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "documents")
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, "documents", c.bucket)
}

func TestNewClientWithAPI_CreateBucket(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: false}
	c, err := NewClientWithAPI(ctx, api, "documents")
	require.NoError(t, err)
	assert.Equal(t, "documents", c.bucket)
}

func TestNewClientWithAPI_BucketExistsError(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExistsErr: errors.New("boom")}
	c, err := NewClientWithAPI(ctx, api, "documents")
	assert.Nil(t, c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ensure bucket exists")
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "documents")
	require.NoError(t, err)

	err = c.Upload(ctx, "uid/1_aadhaar.pdf", bytes.NewReader([]byte("data")), 4, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "uid/1_aadhaar.pdf", api.putKey)
}

func TestClient_Upload_Error(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true, putErr: errors.New("put failed")}
	c, err := NewClientWithAPI(ctx, api, "documents")
	require.NoError(t, err)

	err = c.Upload(ctx, "k", bytes.NewReader(nil), 0, "application/pdf")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload object")
}

func TestClient_Delete_Error(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true, removeErr: errors.New("remove failed")}
	c, err := NewClientWithAPI(ctx, api, "documents")
	require.NoError(t, err)

	err = c.Delete(ctx, "k")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete object")
}

func TestClient_SignedURL(t *testing.T) {
	ctx := context.Background()
	signed, _ := url.Parse("https://minio.local/documents/a/b.pdf?X-Amz-Expires=600")
	api := &fakeMinio{bucketExists: true, presignURL: signed}
	c, err := NewClientWithAPI(ctx, api, "documents")
	require.NoError(t, err)

	got, err := c.SignedURL(ctx, "a/b.pdf", 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, signed.String(), got)
	assert.Equal(t, "a/b.pdf", api.presignKey)
	assert.Equal(t, 10*time.Minute, api.presignTTL)
}

func TestClient_SignedURL_Error(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true, presignErr: errors.New("presign failed")}
	c, err := NewClientWithAPI(ctx, api, "documents")
	require.NoError(t, err)

	got, err := c.SignedURL(ctx, "a/b.pdf", time.Minute)
	assert.Empty(t, got)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to presign object")
}
