package usecase

import "context"

// Transactor выполняет fn в границах одной транзакции БД.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ImagesInfra управляет загрузкой изображений в объектное хранилище.
// Политика — fail-open: неудачная загрузка логируется и возвращает
// результат без URL, создание сущности из-за неё не блокируется.
type ImagesInfra interface {
	UploadLogo(ctx context.Context, storeName string, file *ImageFile) UploadResult
	UploadProductImages(ctx context.Context, storeRef string, files []*ImageFile) []UploadResult
	// CleanupObjects запускает фоновое удаление загруженных объектов,
	// оставшихся без владельца после отката транзакции.
	CleanupObjects(results []UploadResult)
	WaitForCleanup(ctx context.Context) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
