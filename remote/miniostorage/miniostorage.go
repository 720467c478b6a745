package miniostorage

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/tenrok/includefile/remote"
)

// Убеждаемся в том, что мы всегда реализуем интерфейс remote.Storage.
var _ remote.Storage = (*MinioStorage)(nil)

func init() {
	remote.Register("minio", &MinioStorage{})
	remote.Register("s3", &MinioStorage{})
}

type MinioStorage struct {
	client *minio.Client
	cfg    *Config
}

func (s *MinioStorage) NewStorage(ctx context.Context, connString string) (remote.Storage, error) {
	cfg, err := NewConfig(connString)
	if err != nil {
		return nil, err
	}

	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretKey, cfg.Token),
		Region: cfg.Region,
		Secure: cfg.Secure,
	}

	client, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, err
	}

	return &MinioStorage{client: client, cfg: cfg}, nil
}

// Get стягивает объект во временный файл и возвращает путь к нему.
func (s *MinioStorage) Get(ctx context.Context, name string, opts ...remote.Option) (string, error) {
	o := &remote.Options{}
	for _, opt := range opts {
		opt(o)
	}

	name = path.Join(s.cfg.Prefix, name)

	// Создаём временный файл, чтобы зафиксировать уникальное имя
	tmpfile, err := os.CreateTemp(o.TempDir, "miniostorage")
	if err != nil {
		return "", err
	}
	tmpfile.Close()

	if err := s.client.FGetObject(ctx, s.cfg.BucketName, name, tmpfile.Name(), minio.GetObjectOptions{}); err != nil {
		os.Remove(tmpfile.Name())
		return "", err
	}

	return tmpfile.Name(), nil
}

func (s *MinioStorage) Stat(ctx context.Context, name string) (remote.FileInfo, error) {
	name = path.Join(s.cfg.Prefix, name)

	info, err := s.client.StatObject(ctx, s.cfg.BucketName, name, minio.StatObjectOptions{})
	if err != nil {
		return nil, err
	}
	return newMinioFileInfo(info), nil
}

func (s *MinioStorage) Exists(ctx context.Context, name string) (bool, error) {
	name = path.Join(s.cfg.Prefix, name)

	_, err := s.client.StatObject(ctx, s.cfg.BucketName, name, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if strings.Contains(err.Error(), "The specified key does not exist.") {
		return false, nil
	}
	return false, err
}

// Close ничего не делает: у клиента MinIO нет удерживаемых соединений,
// требующих явного закрытия.
func (s *MinioStorage) Close() error { return nil }
