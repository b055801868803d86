package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"petclinic/config"
	"petclinic/models"
	"petclinic/utils"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

func objectKey(id string) string { return id + ".json" }

// store lazily resolves the MinIO client, creating the bucket if absent.
func (s *minioPetStore) store(ctx context.Context) (*minio.Client, error) {
	s.initOnce.Do(func() {
		cfg := config.AppConfig
		var missing []string
		if cfg.BlobEndpoint == "" {
			missing = append(missing, "BLOB_ENDPOINT")
		}
		if cfg.BlobAccessKey == "" {
			missing = append(missing, "BLOB_ACCESS_KEY")
		}
		if cfg.BlobSecretKey == "" {
			missing = append(missing, "BLOB_SECRET_KEY")
		}
		if len(missing) > 0 {
			s.initErr = &utils.ConfigError{Missing: missing}
			return
		}

		client, err := minio.New(cfg.BlobEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.BlobAccessKey, cfg.BlobSecretKey, ""),
			Secure: cfg.BlobUseSSL,
		})
		if err != nil {
			s.initErr = &utils.StoreError{Op: "init blob client", Err: err}
			return
		}

		initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		exists, err := client.BucketExists(initCtx, cfg.BlobBucket)
		if err != nil {
			s.initErr = &utils.StoreError{Op: "check bucket", Err: err}
			return
		}
		if !exists {
			if err := client.MakeBucket(initCtx, cfg.BlobBucket, minio.MakeBucketOptions{}); err != nil {
				s.initErr = &utils.StoreError{Op: "create bucket", Err: err}
				return
			}
		}
		s.client = client
		s.bucket = cfg.BlobBucket
	})
	return s.client, s.initErr
}

func (s *minioPetStore) Create(ctx context.Context, pet models.Pet) (*models.Pet, error) {
	client, err := s.store(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	pet.ID = uuid.New().String()
	pet.CreatedAt = now
	pet.UpdatedAt = now

	body, err := json.Marshal(pet)
	if err != nil {
		return nil, &utils.StoreError{Op: "encode pet", Err: err}
	}

	// Species rides along as object metadata so list filtering can skip
	// downloads for non-matching pets.
	opts := minio.PutObjectOptions{
		ContentType:  "application/json",
		UserMetadata: map[string]string{"Species": strings.ToLower(pet.Species)},
	}
	_, err = client.PutObject(ctx, s.bucket, objectKey(pet.ID), bytes.NewReader(body), int64(len(body)), opts)
	if err != nil {
		return nil, &utils.StoreError{Op: "create pet", Err: err}
	}
	return &pet, nil
}

func (s *minioPetStore) Get(ctx context.Context, id string) (*models.Pet, error) {
	client, err := s.store(ctx)
	if err != nil {
		return nil, err
	}

	obj, err := client.GetObject(ctx, s.bucket, objectKey(id), minio.GetObjectOptions{})
	if err != nil {
		return nil, &utils.StoreError{Op: "get pet", Err: err}
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, &utils.NotFoundError{Resource: "Pet", ID: id}
		}
		return nil, &utils.StoreError{Op: "get pet", Err: err}
	}

	var pet models.Pet
	if err := json.Unmarshal(body, &pet); err != nil {
		return nil, &utils.StoreError{Op: "decode pet", Err: err}
	}
	return &pet, nil
}

func (s *minioPetStore) List(ctx context.Context, limit int, species string) ([]models.Pet, error) {
	client, err := s.store(ctx)
	if err != nil {
		return nil, err
	}

	if limit < 1 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}
	wantSpecies := strings.ToLower(species)

	pets := []models.Pet{}
	for obj := range client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{WithMetadata: true}) {
		if obj.Err != nil {
			return nil, &utils.StoreError{Op: "list pets", Err: obj.Err}
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		if wantSpecies != "" && !metadataSpeciesMatch(obj, wantSpecies) {
			continue
		}

		id := strings.TrimSuffix(obj.Key, ".json")
		pet, err := s.Get(ctx, id)
		if err != nil {
			if utils.IsNotFound(err) {
				// Object deleted between list and read.
				continue
			}
			return nil, err
		}
		if wantSpecies != "" && strings.ToLower(pet.Species) != wantSpecies {
			continue
		}
		pets = append(pets, *pet)
		if len(pets) >= limit {
			break
		}
	}
	return pets, nil
}

func (s *minioPetStore) Delete(ctx context.Context, id string) error {
	client, err := s.store(ctx)
	if err != nil {
		return err
	}

	// RemoveObject succeeds on absent keys, so probe first to report 404s.
	if _, err := client.StatObject(ctx, s.bucket, objectKey(id), minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return &utils.NotFoundError{Resource: "Pet", ID: id}
		}
		return &utils.StoreError{Op: "stat pet", Err: err}
	}
	if err := client.RemoveObject(ctx, s.bucket, objectKey(id), minio.RemoveObjectOptions{}); err != nil {
		return &utils.StoreError{Op: "delete pet", Err: err}
	}
	return nil
}

// metadataSpeciesMatch filters on listing metadata when present. Objects
// without the metadata entry pass through; the record check after download
// settles those.
func metadataSpeciesMatch(obj minio.ObjectInfo, wantSpecies string) bool {
	for key, value := range obj.UserMetadata {
		if strings.EqualFold(key, "Species") || strings.EqualFold(key, "X-Amz-Meta-Species") {
			return strings.ToLower(value) == wantSpecies
		}
	}
	return true
}
