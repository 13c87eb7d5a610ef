package clients

import (
	"context"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	config "github.com/shopsmart/storefront-backend/internal/cfg"
	"github.com/shopsmart/storefront-backend/pkg/e"
)

func NewMinIOClient(cfg *config.MinIOCfg) (*minio.Client, error) {
	minioClient, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioRootUser, cfg.MinioRootPassword, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return minioClient, nil
}

// EnsureBuckets проверяет и при необходимости создаёт все бакеты приложения
// (логотипы магазинов и изображения товаров).
func EnsureBuckets(ctx context.Context, client *minio.Client, buckets ...string) error {
	for _, bucket := range buckets {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return e.Wrap(whereami.WhereAmI(), err)
			}
		}
	}

	return nil
}
