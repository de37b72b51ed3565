package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/rafaelleal24/estudos/internal/adapters/config"
	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/port"
	"github.com/rafaelleal24/estudos/internal/core/serviceerrors"
)

// DiskImageStorage writes product images into a local directory that is
// served under PublicPath.
type DiskImageStorage struct {
	config config.UploadConfig
}

func NewDiskImageStorage(cfg config.UploadConfig) (*DiskImageStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	cfg.PublicPath = strings.TrimRight(cfg.PublicPath, "/")
	return &DiskImageStorage{config: cfg}, nil
}

var _ port.ImageStoragePort = (*DiskImageStorage)(nil)

func (s *DiskImageStorage) Save(ctx context.Context, upload *domain.ImageUpload) (string, error) {
	if upload == nil || upload.Content == nil || upload.Size == 0 {
		return "", serviceerrors.NewInvalidRequestError("Selecione uma imagem para o produto")
	}
	if upload.Size > s.config.MaxSize {
		return "", s.tooLarge()
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !s.config.AllowsExtension(ext) {
		return "", serviceerrors.NewInvalidRequestError("Formato de imagem não suportado")
	}

	content, err := io.ReadAll(io.LimitReader(upload.Content, s.config.MaxSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(content)) > s.config.MaxSize {
		return "", s.tooLarge()
	}
	if len(content) == 0 {
		return "", serviceerrors.NewInvalidRequestError("Selecione uma imagem para o produto")
	}
	if mime := mimetype.Detect(content); !strings.HasPrefix(mime.String(), "image/") {
		return "", serviceerrors.NewInvalidRequestError("O arquivo enviado não é uma imagem válida")
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(s.config.Dir, name)
	if err := writeFile(dst, content); err != nil {
		return "", err
	}

	return s.config.PublicPath + "/" + name, nil
}

// Delete removes a file previously returned by Save. Unknown references are ignored.
func (s *DiskImageStorage) Delete(_ context.Context, reference string) error {
	name, ok := strings.CutPrefix(reference, s.config.PublicPath+"/")
	if !ok || name == "" || name != filepath.Base(name) {
		return fmt.Errorf("not a stored image: %q", reference)
	}

	err := os.Remove(filepath.Join(s.config.Dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	return nil
}

func (s *DiskImageStorage) HealthCheck() error {
	info, err := os.Stat(s.config.Dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.config.Dir)
	}
	return nil
}

func (s *DiskImageStorage) tooLarge() error {
	return serviceerrors.NewInvalidRequestError(
		fmt.Sprintf("A imagem deve ter no máximo %d KB", s.config.MaxSize/1024))
}

func writeFile(dst string, content []byte) error {
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if _, err := io.Copy(f, bytes.NewReader(content)); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return f.Close()
}
