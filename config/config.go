package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds everything the handlers need: environment settings plus
// the shared Mongo client.
type Config struct {
	DBUser string `env:"DB_USER,required"`
	DBPass string `env:"DB_PASS,required"`
	DBHost string `env:"DB_HOST" envDefault:"cluster0.hhpkb.mongodb.net"`
	DBName string `env:"DB_NAME" envDefault:"pet_adopt_nest"`

	AccessTokenKey  string `env:"ACCESS_TOKEN_KEY,required"`
	StripeSecretKey string `env:"STRIPE_SECRET_KEY,required"`

	Port     string `env:"PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MongoClient *mongo.Client `env:"-"`
}

// Parse reads configuration from the environment without connecting
// anywhere.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Load parses the environment and connects to MongoDB, pinging the
// deployment before returning.
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	uri := fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		cfg.DBUser, cfg.DBPass, cfg.DBHost,
	)

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	cfg.MongoClient = client
	return cfg, nil
}

// Collection is a shorthand for a collection in the configured database.
func (c *Config) Collection(name string) *mongo.Collection {
	return c.MongoClient.Database(c.DBName).Collection(name)
}
