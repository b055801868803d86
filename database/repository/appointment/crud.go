package appointmentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"petclinic/config"
	"petclinic/database"
	"petclinic/models"
	"petclinic/utils"
)

const (
	opTimeout    = 5 * time.Second
	defaultLimit = 100
	maxLimit     = 1000
)

// collection lazily resolves the backing collection, provisioning the
// unique (id, appointment_date) index on first use. The index mirrors the
// store's partitioned addressing: lookups always carry both keys.
func (r *mongoAppointmentRepo) collection(ctx context.Context) (*mongo.Collection, error) {
	r.initOnce.Do(func() {
		client, err := database.Client(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		coll := client.Database(config.AppConfig.MongoDatabase).Collection(config.AppConfig.MongoCollection)

		initCtx, cancel := context.WithTimeout(ctx, opTimeout)
		defer cancel()
		_, err = coll.Indexes().CreateOne(initCtx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}, {Key: "appointment_date", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			r.initErr = &utils.StoreError{Op: "ensure indexes", Err: err}
			return
		}
		r.coll = coll
	})
	return r.coll, r.initErr
}

func (r *mongoAppointmentRepo) Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now().UTC().Format(time.RFC3339)
	appt.ID = uuid.New().String()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, appt); err != nil {
		return nil, &utils.StoreError{Op: "create appointment", Err: err}
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) GetByIDAndDate(ctx context.Context, id, date string) (*models.Appointment, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"id": id, "appointment_date": date}
	var appt models.Appointment
	if err := coll.FindOne(ctx, filter).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &utils.NotFoundError{Resource: "Appointment", ID: id}
		}
		return nil, &utils.StoreError{Op: "get appointment", Err: err}
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) List(ctx context.Context, opts ListOptions) ([]models.Appointment, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	limit := ClampLimit(opts.Limit)
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	filter := bson.M{}
	findOpts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	if opts.Date != "" {
		filter["appointment_date"] = opts.Date
		findOpts.SetSort(bson.D{{Key: "appointment_time", Value: 1}})
	}

	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, &utils.StoreError{Op: "list appointments", Err: err}
	}
	defer cursor.Close(ctx)

	appts := []models.Appointment{}
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, &utils.StoreError{Op: "decode appointments", Err: err}
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) Delete(ctx context.Context, id, date string) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"id": id, "appointment_date": date})
	if err != nil {
		return &utils.StoreError{Op: "delete appointment", Err: err}
	}
	if res.DeletedCount == 0 {
		return &utils.NotFoundError{Resource: "Appointment", ID: id}
	}
	return nil
}

// ClampLimit normalizes a requested page size: non-positive values fall
// back to the default, values above the cap are clamped.
func ClampLimit(limit int) int {
	if limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
