package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

const (
	// Presigned URL有効期限
	PresignedDownloadExpiry = 1 * time.Hour

	// 最大ファイルサイズ
	MaxFileSize int64 = 1 * 1024 * 1024 * 1024 // 1GB
)

// ObjectInfo はオブジェクト情報を表します
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}

// StorageService はオブジェクトストレージ操作を提供します
type StorageService struct {
	client     *minio.Client
	bucketName string
}

// NewStorageService は新しいStorageServiceを作成します
func NewStorageService(client *MinIOClient) *StorageService {
	return &StorageService{
		client:     client.Client(),
		bucketName: client.BucketName(),
	}
}

// PutObject はオブジェクトをアップロードします
func (s *StorageService) PutObject(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucketName, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

// GetObject はオブジェクトを取得します
func (s *StorageService) GetObject(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	object, err := s.client.GetObject(ctx, s.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return object, nil
}

// ObjectExists はオブジェクトが存在するか確認します
func (s *StorageService) ObjectExists(ctx context.Context, objectKey string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucketName, objectKey, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}
	return true, nil
}

// GetObjectInfo はオブジェクト情報を取得します
func (s *StorageService) GetObjectInfo(ctx context.Context, objectKey string) (*ObjectInfo, error) {
	info, err := s.client.StatObject(ctx, s.bucketName, objectKey, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object info: %w", err)
	}

	return &ObjectInfo{
		Key:          info.Key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}, nil
}

// DeleteObject はオブジェクトを削除します
func (s *StorageService) DeleteObject(ctx context.Context, objectKey string) error {
	err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// DeleteObjects は複数オブジェクトを一括削除します
func (s *StorageService) DeleteObjects(ctx context.Context, objectKeys []string) error {
	objectsCh := make(chan minio.ObjectInfo, len(objectKeys))

	go func() {
		defer close(objectsCh)
		for _, key := range objectKeys {
			objectsCh <- minio.ObjectInfo{Key: key}
		}
	}()

	errorCh := s.client.RemoveObjects(ctx, s.bucketName, objectsCh, minio.RemoveObjectsOptions{})

	var errs []error
	for e := range errorCh {
		if e.Err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", e.ObjectName, e.Err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to delete some objects: %v", errs)
	}

	return nil
}

// GenerateDownloadURL はダウンロード用Presigned URLを生成します（ファイル名付き）
func (s *StorageService) GenerateDownloadURL(ctx context.Context, objectKey string, filename string) (string, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, objectKey, PresignedDownloadExpiry, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned get URL: %w", err)
	}

	return presignedURL.String(), nil
}
