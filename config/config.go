package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Document store (appointments).
	MongoURI        string `mapstructure:"MONGO_URI"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`
	MongoCollection string `mapstructure:"MONGO_COLLECTION"`

	// Blob store (pets).
	BlobEndpoint  string `mapstructure:"BLOB_ENDPOINT"`
	BlobAccessKey string `mapstructure:"BLOB_ACCESS_KEY"`
	BlobSecretKey string `mapstructure:"BLOB_SECRET_KEY"`
	BlobBucket    string `mapstructure:"BLOB_BUCKET"`
	BlobUseSSL    bool   `mapstructure:"BLOB_USE_SSL"`
}

var AppConfig Config

// LoadConfig resolves configuration once at startup from an optional
// config.yaml plus environment variables. Store credentials are only
// checked on first store use, so an incomplete config is not fatal here.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_DATABASE", "petclinic")
	viper.SetDefault("MONGO_COLLECTION", "appointments")
	viper.SetDefault("BLOB_ENDPOINT", "")
	viper.SetDefault("BLOB_ACCESS_KEY", "")
	viper.SetDefault("BLOB_SECRET_KEY", "")
	viper.SetDefault("BLOB_BUCKET", "pets")
	viper.SetDefault("BLOB_USE_SSL", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
