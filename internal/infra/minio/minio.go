package minio

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"vidtube-go/internal/config"
	"vidtube-go/internal/media"
	"vidtube-go/pkg/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Host 基于 MinIO 的媒体托管，对象名即 publicId（不带扩展名），对象所在 bucket 公开可读
type Host struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// New 创建 MinIO 客户端并确保 bucket 存在且公开可读
func New(cfg *config.MinIOConfig) (*Host, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("MinIO bucket created", zap.String("bucket", cfg.Bucket))
	}

	// 视频和图片由前端直接访问
	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, cfg.Bucket)
	if err := client.SetBucketPolicy(ctx, cfg.Bucket, policy); err != nil {
		return nil, fmt.Errorf("failed to set public policy for %s: %w", cfg.Bucket, err)
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
	)

	return &Host{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
	}, nil
}

func publicBaseURL(cfg *config.MinIOConfig) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
}

// Upload 上传本地文件，返回公开 URL 与 publicId
func (h *Host) Upload(ctx context.Context, localPath string) (*media.Asset, error) {
	publicID := uuid.NewString()

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(localPath)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := h.client.FPutObject(ctx, h.bucket, publicID, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "upload %s to minio", filepath.Base(localPath))
	}

	asset := &media.Asset{
		URL:      fmt.Sprintf("%s/%s/%s", h.baseURL, h.bucket, publicID),
		PublicID: publicID,
	}
	logger.Debug("Media uploaded", zap.String("public_id", publicID), zap.String("content_type", contentType))
	return asset, nil
}

// Delete 删除托管资源，publicId 为空时忽略
func (h *Host) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	if err := h.client.RemoveObject(ctx, h.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "delete %s from minio", publicID)
	}
	return nil
}
