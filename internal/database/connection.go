package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Connect initializes the MongoDB client from the provided configuration.
// It pins the Stable API version, retries with exponential backoff and
// verifies the connection with a ping before handing the client out.
func Connect(ctx context.Context, cfg DatabaseConfig) (*mongo.Client, error) {
	var client *mongo.Client
	var err error

	log.WithFields(logrus.Fields{
		"db_host": cfg.Host,
		"db_name": cfg.Name,
	}).Info("Initializing database connection")

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOpts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(serverAPI).
		SetMaxPoolSize(25).
		SetMaxConnIdleTime(5 * time.Minute)

	// Retry logic: max 5 attempts with exponential backoff
	maxRetries := 5
	retryDelays := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Info("Attempting database connection")

		client, err = mongo.Connect(ctx, clientOpts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err = client.Ping(pingCtx, readpref.Primary())
			cancel()
			if err == nil {
				log.WithFields(logrus.Fields{
					"db_host": cfg.Host,
					"attempt": attempt,
				}).Info("Database initialized successfully")
				return client, nil
			}
			// Ping failed; drop the half-open client before retrying
			_ = client.Disconnect(ctx)
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxRetries {
			delay := retryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// Disconnect tears the client down on process shutdown.
func Disconnect(ctx context.Context, client *mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.WithError(err).Warn("Error disconnecting from database")
	}
}
