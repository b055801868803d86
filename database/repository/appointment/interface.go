package appointmentRepo

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	"petclinic/models"
)

// ListOptions bounds and filters a list query. Limit is clamped to
// [1,1000] with a default of 100; Offset skips records; Date, when set,
// restricts results to a single partition.
type ListOptions struct {
	Limit  int
	Offset int
	Date   string
}

// Repository is the document-store adapter for appointments. The store
// partitions by appointment_date, so single-record operations require the
// date alongside the id.
type Repository interface {
	Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	GetByIDAndDate(ctx context.Context, id, date string) (*models.Appointment, error)
	List(ctx context.Context, opts ListOptions) ([]models.Appointment, error)
	Delete(ctx context.Context, id, date string) error
}

type mongoAppointmentRepo struct {
	initOnce sync.Once
	coll     *mongo.Collection
	initErr  error
}

// NewMongoAppointmentRepo constructs a MongoDB-backed Repository. No
// connection is made here; the client and collection are provisioned on
// first operation.
func NewMongoAppointmentRepo() Repository {
	return &mongoAppointmentRepo{}
}
