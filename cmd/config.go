package cmd

import "time"

// Config carries everything the application needs from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RabbitMQURL string

	JWTSecret string
	JWTTTL    time.Duration

	StaleOrderThreshold time.Duration

	LogLevel    string
	Environment string
}
