package config

import "os"

// Config holds the service configuration, read from the environment
// with local-development defaults.
type Config struct {
	MongoURI   string
	DBName     string
	HTTPPort   string
	ModelsDir  string
	UploadsDir string
}

func Load() *Config {
	return &Config{
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:     getEnv("DB_NAME", "asd_db"),
		HTTPPort:   getEnv("PORT", "8000"),
		ModelsDir:  getEnv("MODELS_DIR", "models"),
		UploadsDir: getEnv("UPLOADS_DIR", "uploads"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
