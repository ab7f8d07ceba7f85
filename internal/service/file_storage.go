package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"teleradiology-api/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrFileNotFound = errors.New("file not found")

type FileInfo struct {
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type,omitempty"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// FileStorage keeps uploaded files grouped by category.
type FileStorage interface {
	Save(ctx context.Context, category, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, category, name string) (io.ReadCloser, *FileInfo, error)
	Delete(ctx context.Context, category, name string) error
	List(ctx context.Context, category string) ([]FileInfo, error)
}

// NewFileStorage picks the backend from STORAGE_DRIVER.
func NewFileStorage(ctx context.Context, cfg config.StorageConfig) (FileStorage, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "local":
		return NewLocalStorage(cfg.UploadDir)
	case "minio":
		return NewMinioStorage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

type localStorage struct {
	root string
}

func NewLocalStorage(root string) (FileStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &localStorage{root: root}, nil
}

func (s *localStorage) path(category, name string) string {
	return filepath.Join(s.root, filepath.Base(category), filepath.Base(name))
}

func (s *localStorage) Save(_ context.Context, category, name string, r io.Reader, _ int64, _ string) error {
	dir := filepath.Join(s.root, filepath.Base(category))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.path(category, name))
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	return f.Close()
}

func (s *localStorage) Open(_ context.Context, category, name string) (io.ReadCloser, *FileInfo, error) {
	f, err := os.Open(s.path(category, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, ErrFileNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return f, &FileInfo{Category: category, Name: name, Size: st.Size(), ModifiedAt: st.ModTime()}, nil
}

func (s *localStorage) Delete(_ context.Context, category, name string) error {
	err := os.Remove(s.path(category, name))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrFileNotFound
	}
	return err
}

func (s *localStorage) List(_ context.Context, category string) ([]FileInfo, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, filepath.Base(category)))
	if errors.Is(err, fs.ErrNotExist) {
		return []FileInfo{}, nil
	}
	if err != nil {
		return nil, err
	}
	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{Category: category, Name: e.Name(), Size: info.Size(), ModifiedAt: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].ModifiedAt.After(files[j].ModifiedAt) })
	return files, nil
}

type minioStorage struct {
	client *minio.Client
	bucket string
}

func NewMinioStorage(ctx context.Context, cfg config.StorageConfig) (FileStorage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	s := &minioStorage{client: client, bucket: cfg.MinioBucket}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare bucket %s: %w", cfg.MinioBucket, err)
	}
	return s, nil
}

func (s *minioStorage) ensureBucket(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !found {
		return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func objectKey(category, name string) string {
	return category + "/" + name
}

func (s *minioStorage) Save(ctx context.Context, category, name string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey(category, name), r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *minioStorage) Open(ctx context.Context, category, name string) (io.ReadCloser, *FileInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectKey(category, name), minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, err
	}
	st, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, err
	}
	return obj, &FileInfo{
		Category:    category,
		Name:        name,
		Size:        st.Size,
		ContentType: st.ContentType,
		ModifiedAt:  st.LastModified,
	}, nil
}

func (s *minioStorage) Delete(ctx context.Context, category, name string) error {
	if _, err := s.client.StatObject(ctx, s.bucket, objectKey(category, name), minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return ErrFileNotFound
		}
		return err
	}
	return s.client.RemoveObject(ctx, s.bucket, objectKey(category, name), minio.RemoveObjectOptions{})
}

func (s *minioStorage) List(ctx context.Context, category string) ([]FileInfo, error) {
	files := []FileInfo{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: category + "/"}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		files = append(files, FileInfo{
			Category:    category,
			Name:        strings.TrimPrefix(obj.Key, category+"/"),
			Size:        obj.Size,
			ContentType: obj.ContentType,
			ModifiedAt:  obj.LastModified,
		})
	}
	return files, nil
}
