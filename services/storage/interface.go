package storage

import (
	"context"
	"sync"

	"github.com/minio/minio-go/v7"

	"petclinic/models"
)

// PetStore is the blob-store adapter for pets. Each pet is one JSON object;
// no partition hint is needed for single-record lookups.
type PetStore interface {
	Create(ctx context.Context, pet models.Pet) (*models.Pet, error)
	Get(ctx context.Context, id string) (*models.Pet, error)
	List(ctx context.Context, limit int, species string) ([]models.Pet, error)
	Delete(ctx context.Context, id string) error
}

type minioPetStore struct {
	initOnce sync.Once
	client   *minio.Client
	bucket   string
	initErr  error
}

// NewMinioPetStore constructs a MinIO-backed PetStore. As with the
// appointment repository, the client and bucket are provisioned lazily on
// first operation rather than at process start.
func NewMinioPetStore() PetStore {
	return &minioPetStore{}
}
