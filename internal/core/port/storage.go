package port

import (
	"context"

	"github.com/rafaelleal24/estudos/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ImageStoragePort persists uploaded images and returns the public reference.
// Rejected uploads are reported as serviceerrors.KindInvalidRequest.
type ImageStoragePort interface {
	Save(ctx context.Context, upload *domain.ImageUpload) (string, error)
	Delete(ctx context.Context, reference string) error
}
