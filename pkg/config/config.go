package config

import "os"

type Config struct {
	Port            string
	Env             string
	PostgresConnStr string
	BaseURL         string
	MediaRoot       string
	StorageDriver   string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		BaseURL:         getEnv("BASE_URL", "http://127.0.0.1/medias"),
		MediaRoot:       getEnv("MEDIA_ROOT", "./medias"),
		StorageDriver:   getEnv("STORAGE_DRIVER", "local"),
		S3Region:        getEnv("S3_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:     getEnv("S3_SECRET_KEY", ""),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
