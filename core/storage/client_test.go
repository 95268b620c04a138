package storage_test

import (
	"context"
	"testing"

	"asset-bridge/core/storage"
	"asset-bridge/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		for _, endpoint := range []string{"http://localhost:9000", "https://s3.amazonaws.com/"} {
			client, err := storage.NewClient(storage.Config{Endpoint: endpoint, AccessKey: "k", SecretKey: "s"})
			assert.NoError(t, err, endpoint)
			assert.NotNil(t, client)
		}
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "assets").Return(true, nil)

		created, err := storage.EnsureBucket(ctx, m, "assets", "")
		require.NoError(t, err)
		assert.False(t, created)
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "assets").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "assets", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		created, err := storage.EnsureBucket(ctx, m, "assets", "eu-west-1")
		require.NoError(t, err)
		assert.True(t, created)
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "assets").Return(false, assert.AnError)

		_, err := storage.EnsureBucket(ctx, m, "assets", "")
		require.ErrorIs(t, err, assert.AnError)
	})
}
