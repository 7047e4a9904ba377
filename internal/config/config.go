package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	RedisAddr     string
	RedisPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioPublicURL string
	MediaBucket    string

	GenerationBaseURL string
	GenerationAPIKey  string
	ImageModel        string
	VideoModel        string
	VideoModelAlt     string
	PollInterval      time.Duration

	SafetyEndpoint    string
	SafetyAPIKey      string
	SeverityThreshold int
	ReviewStrict      bool
	GeminiAPIKey      string
	ReviewModel       string

	InstagramBaseURL     string
	InstagramAccessToken string
	InstagramAccountID   string
	PublishPollAttempts  int
	PublishPollInterval  time.Duration

	SlackWebhookURL string
	JWTPublicKey    string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	required := []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"MEDIA_BUCKET",
	}
	for _, key := range required {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("GENERATION_BASE_URL", "https://queue.fal.run")
	viper.SetDefault("IMAGE_MODEL", "fal-ai/nano-banana-pro")
	viper.SetDefault("VIDEO_MODEL", "fal-ai/kling-video/v2/master")
	viper.SetDefault("VIDEO_MODEL_ALT", "fal-ai/sora-2/text-to-video")
	viper.SetDefault("GENERATION_POLL_INTERVAL", 15)
	viper.SetDefault("SEVERITY_THRESHOLD", 2)
	viper.SetDefault("REVIEW_STRICT", true)
	viper.SetDefault("REVIEW_MODEL", "gemini-2.0-flash")
	viper.SetDefault("INSTAGRAM_BASE_URL", "https://graph.facebook.com/v21.0")
	viper.SetDefault("PUBLISH_POLL_ATTEMPTS", 10)
	viper.SetDefault("PUBLISH_POLL_INTERVAL", 30)

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		MinioPublicURL: viper.GetString("MINIO_PUBLIC_URL"),
		MediaBucket:    viper.GetString("MEDIA_BUCKET"),

		GenerationBaseURL: viper.GetString("GENERATION_BASE_URL"),
		GenerationAPIKey:  viper.GetString("GENERATION_API_KEY"),
		ImageModel:        viper.GetString("IMAGE_MODEL"),
		VideoModel:        viper.GetString("VIDEO_MODEL"),
		VideoModelAlt:     viper.GetString("VIDEO_MODEL_ALT"),
		PollInterval:      time.Duration(viper.GetInt("GENERATION_POLL_INTERVAL")) * time.Second,

		SafetyEndpoint:    viper.GetString("SAFETY_ENDPOINT"),
		SafetyAPIKey:      viper.GetString("SAFETY_API_KEY"),
		SeverityThreshold: viper.GetInt("SEVERITY_THRESHOLD"),
		ReviewStrict:      viper.GetBool("REVIEW_STRICT"),
		GeminiAPIKey:      viper.GetString("GEMINI_API_KEY"),
		ReviewModel:       viper.GetString("REVIEW_MODEL"),

		InstagramBaseURL:     viper.GetString("INSTAGRAM_BASE_URL"),
		InstagramAccessToken: viper.GetString("INSTAGRAM_ACCESS_TOKEN"),
		InstagramAccountID:   viper.GetString("INSTAGRAM_ACCOUNT_ID"),
		PublishPollAttempts:  viper.GetInt("PUBLISH_POLL_ATTEMPTS"),
		PublishPollInterval:  time.Duration(viper.GetInt("PUBLISH_POLL_INTERVAL")) * time.Second,

		SlackWebhookURL: viper.GetString("SLACK_WEBHOOK_URL"),
		JWTPublicKey:    viper.GetString("JWT_PUBLIC_KEY"),
	}, nil
}
