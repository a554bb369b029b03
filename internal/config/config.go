package config

import (
	"github.com/spf13/viper"
)

// Configuration comes from environment variables so the same binaries work
// under docker-compose with LocalStack and in a real deployment.

type Config struct {
	DBHost             string `mapstructure:"DB_HOST"`
	DBPort             string `mapstructure:"DB_PORT"`
	DBUser             string `mapstructure:"DB_USER"`
	DBPassword         string `mapstructure:"DB_PASSWORD"`
	DBName             string `mapstructure:"DB_NAME"`
	ServerPort         string `mapstructure:"SERVER_PORT"`
	SuperadminKey      string `mapstructure:"SUPERADMIN_KEY"`
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	ConsoleStateDir    string `mapstructure:"CONSOLE_STATE_DIR"`
	AWSRegion          string `mapstructure:"AWS_REGION"`
	WelcomeSQSQueueURL string `mapstructure:"WELCOME_SQS_QUEUE_URL"`
	SESSenderAddress   string `mapstructure:"SES_SENDER_ADDRESS"`
	AWSEndpoint        string `mapstructure:"AWS_ENDPOINT"`
	OTLPEndpoint       string `mapstructure:"OTLP_ENDPOINT"`
	IsLocalDev         bool   `mapstructure:"IS_LOCAL_DEV"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (config Config, err error) {
	viper.SetDefault("DB_HOST", "db")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "hrms_lite")
	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("SUPERADMIN_KEY", "change-me-superadmin-key")
	viper.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("CONSOLE_STATE_DIR", "")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("WELCOME_SQS_QUEUE_URL", "http://localstack:4566/000000000000/welcome-queue")
	viper.SetDefault("SES_SENDER_ADDRESS", "no-reply@hrms-lite.local")
	viper.SetDefault("AWS_ENDPOINT", "http://localstack:4566")
	viper.SetDefault("OTLP_ENDPOINT", "jaeger:4317")
	viper.SetDefault("IS_LOCAL_DEV", false)

	// Read in environment variables that match the keys.
	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	return
}
