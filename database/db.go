package database

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"petclinic/config"
	"petclinic/utils"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	clientErr  error
)

// Client returns the shared MongoDB client, connecting on first use.
// Construction is deferred past process startup so that the server can come
// up without touching the network; a missing MONGO_URI surfaces as a
// ConfigError on the first operation instead of failing startup. The
// sync.Once guard makes concurrent first use construct exactly one client.
func Client(ctx context.Context) (*mongo.Client, error) {
	clientOnce.Do(func() {
		uri := config.AppConfig.MongoURI
		if uri == "" {
			clientErr = &utils.ConfigError{Missing: []string{"MONGO_URI"}}
			return
		}

		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		c, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
		if err != nil {
			clientErr = &utils.StoreError{Op: "connect", Err: err}
			return
		}
		if err := c.Ping(connectCtx, nil); err != nil {
			clientErr = &utils.StoreError{Op: "ping", Err: err}
			return
		}
		client = c
	})
	return client, clientErr
}
