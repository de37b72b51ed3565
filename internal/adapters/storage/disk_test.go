package storage_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rafaelleal24/estudos/internal/adapters/config"
	"github.com/rafaelleal24/estudos/internal/adapters/storage"
	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/serviceerrors"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newStorage(t *testing.T, maxSize int64) (*storage.DiskImageStorage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := storage.NewDiskImageStorage(config.UploadConfig{
		Dir:               dir,
		PublicPath:        "/imagens/",
		MaxSize:           maxSize,
		AllowedExtensions: []string{".png", ".jpg"},
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	return s, dir
}

func upload(name string, content []byte) *domain.ImageUpload {
	return &domain.ImageUpload{Filename: name, Size: int64(len(content)), Content: bytes.NewReader(content)}
}

func TestDiskImageStorage_Save(t *testing.T) {
	s, dir := newStorage(t, 1024)

	ref, err := s.Save(context.Background(), upload("Foto.PNG", pngHeader))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(ref, "/imagens/") || !strings.HasSuffix(ref, ".png") {
		t.Fatalf("unexpected reference %q", ref)
	}

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(ref, "/imagens/")))
	if err != nil {
		t.Fatalf("expected file on disk, got %v", err)
	}
	if !bytes.Equal(stored, pngHeader) {
		t.Fatal("stored content differs from upload")
	}

	other, _ := s.Save(context.Background(), upload("Foto.PNG", pngHeader))
	if other == ref {
		t.Fatal("expected a distinct name per upload")
	}
}

func TestDiskImageStorage_SaveRejects(t *testing.T) {
	s, dir := newStorage(t, 10)

	cases := []struct {
		name   string
		upload *domain.ImageUpload
	}{
		{"nil upload", nil},
		{"empty file", upload("a.png", nil)},
		{"too large", upload("a.png", pngHeader)},
		{"extension not allowed", upload("a.exe", pngHeader[:8])},
		{"content is not an image", upload("a.png", []byte("hello"))},
		{"declared size understates content", &domain.ImageUpload{Filename: "a.png", Size: 1, Content: bytes.NewReader(pngHeader)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Save(context.Background(), tc.upload)
			if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
				t.Fatalf("expected KindInvalidRequest, got %v", err)
			}
		})
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("expected nothing written, found %d files", len(entries))
	}
}

func TestDiskImageStorage_Delete(t *testing.T) {
	s, dir := newStorage(t, 1024)
	ctx := context.Background()

	ref, err := s.Save(ctx, upload("a.png", pngHeader))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := s.Delete(ctx, ref); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatal("expected file removed")
	}

	if err := s.Delete(ctx, ref); err != nil {
		t.Fatalf("expected deleting twice to be a no-op, got %v", err)
	}

	if err := s.Delete(ctx, "/imagens/../../etc/passwd"); err == nil {
		t.Fatal("expected traversal reference to be refused")
	}
	if err := s.Delete(ctx, "/outro/a.png"); err == nil {
		t.Fatal("expected foreign reference to be refused")
	}
}

func TestDiskImageStorage_HealthCheck(t *testing.T) {
	s, dir := newStorage(t, 1024)

	if err := s.HealthCheck(); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}

	_ = os.RemoveAll(dir)
	if err := s.HealthCheck(); err == nil {
		t.Fatal("expected error once the directory is gone")
	}
}
