package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopsmart/storefront-backend/internal/cfg"
	"github.com/shopsmart/storefront-backend/internal/domain"
	"github.com/shopsmart/storefront-backend/internal/infrastructure"
	"github.com/shopsmart/storefront-backend/internal/usecase"
	"github.com/shopsmart/storefront-backend/pkg/jitter"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

const cleanupAttempts = 3

// MinioInfrastructure управляет загрузкой и очисткой изображений в MinIO.
// Политика fail-open: каждая загрузка получает свой таймаут, сбой одной
// не отменяет остальные, результат каждой возвращается явно.
type MinioInfrastructure struct {
	minioRepo   usecase.ImageRepository
	minioCfg    *cfg.MinIOCfg
	uploadCfg   *cfg.UploadCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewMinioInfrastructure(
	minioRepo usecase.ImageRepository,
	minioCfg *cfg.MinIOCfg,
	uploadCfg *cfg.UploadCfg,
	logger logger.Logger,
	shutdownCtx context.Context,
) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:   minioRepo,
		minioCfg:    minioCfg,
		uploadCfg:   uploadCfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
	}
}

// UploadLogo загружает логотип магазина в бакет логотипов.
func (m *MinioInfrastructure) UploadLogo(ctx context.Context, storeName string, file *usecase.ImageFile) usecase.UploadResult {
	return m.uploadOne(ctx, m.minioCfg.LogoBucket, storeName, file)
}

// UploadProductImages загружает изображения товаров параллельно с ограничением
// одновременных операций. Результаты возвращаются по позициям входа:
// i-й результат отвечает i-му файлу, сбои не сдвигают индексы.
func (m *MinioInfrastructure) UploadProductImages(ctx context.Context, storeRef string, files []*usecase.ImageFile) []usecase.UploadResult {
	results := make([]usecase.UploadResult, len(files))
	sem := make(chan struct{}, m.uploadCfg.Concurrency)

	var uploadWg sync.WaitGroup
	for i, file := range files {
		if file == nil {
			continue
		}

		uploadWg.Add(1)
		go func(i int, file *usecase.ImageFile) {
			defer uploadWg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = m.uploadOne(ctx, m.minioCfg.ProductBucket, storeRef, file)
		}(i, file)
	}

	uploadWg.Wait()

	return results
}

// uploadOne загружает один объект со своим таймаутом.
func (m *MinioInfrastructure) uploadOne(ctx context.Context, bucket, prefix string, file *usecase.ImageFile) usecase.UploadResult {
	uploadCtx, cancel := context.WithTimeout(ctx, m.uploadCfg.Timeout)
	defer cancel()

	imageID := uuid.NewString()
	ext, err := infrastructure.GetExtensionFromMIME(file.MimeType)
	if err != nil {
		return usecase.NewUploadResult(bucket, "", nil, fmt.Errorf("invalid mime type %s for %s: %w", file.MimeType, file.Name, err))
	}

	objKey := fmt.Sprintf("%s/%s.%s", usecase.Slugify(prefix), imageID, ext)
	image := domain.NewImage(imageID, bucket, objKey, file.Data, file.Size, file.MimeType)

	key, err := m.minioRepo.Upload(uploadCtx, image)
	if err != nil {
		return usecase.NewUploadResult(bucket, objKey, nil, fmt.Errorf("upload %s failed: %w", file.Name, err))
	}

	url := m.objectURL(bucket, key)

	return usecase.NewUploadResult(bucket, key, &url, nil)
}

// CleanupObjects запускает фоновое удаление объектов, оставшихся
// без владельца после отката транзакции.
func (m *MinioInfrastructure) CleanupObjects(results []usecase.UploadResult) {
	orphans := make([]usecase.UploadResult, 0, len(results))
	for _, res := range results {
		if !res.Failed() && res.Key != "" {
			orphans = append(orphans, res)
		}
	}

	if len(orphans) == 0 {
		return
	}

	m.wg.Add(1)
	go m.cleanupUploadedObjects(orphans)
}

// cleanupUploadedObjects удаляет объекты с экспоненциальной задержкой и джиттером.
func (m *MinioInfrastructure) cleanupUploadedObjects(orphans []usecase.UploadResult) {
	defer m.wg.Done()
	const op = "MinioInfrastructure.cleanupUploadedObjects"
	m.logger.Infof("%s: Cleaning up %d orphaned objects", op, len(orphans))

	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, orphan := range orphans {
		for attempt := 0; attempt < cleanupAttempts; attempt++ {
			if err := m.minioRepo.Delete(ctx, orphan.Bucket, orphan.Key); err == nil {
				break
			}

			select {
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", orphan.Key)
				return
			default:
			}

			if attempt < cleanupAttempts-1 {
				sleepTime := jitter.Backoff(time.Second, 10*time.Second, attempt, jitter.DefaultFactor)

				select {
				case <-time.After(sleepTime):
				case <-ctx.Done():
					m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", orphan.Key)
					return
				}
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

func (m *MinioInfrastructure) objectURL(bucket, key string) string {
	return m.minioCfg.PublicBaseURL + "/" + bucket + "/" + key
}
