package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	DatabaseURL         string
	RedisURL            string
	APIToken            string // opaque bearer secret presented by both interactive and scheduled callers
	FrontendURLEndsWith string
	DevPassword         string
	SendinblueAPIKey    string // SENDINBLUE_API_KEY for reminder digests (Brevo)
	MailFrom            string // MAIL_FROM sender email (default noreply@propdesk.local)
	ReminderRecipients  []string
	ReminderChunkSize   int    // recipients per outbound reminder message (default 50)
	ReminderCron        string // cron expression for the staleness sweep (default daily 08:00)
	AssignmentUnique    bool   // reject duplicate (deal, inventory) assignment pairs
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL_DEV")
	if env == "production" {
		dbURL = viper.GetString("DATABASE_URL_PROD")
	} else if env == "test" {
		dbURL = viper.GetString("DATABASE_URL_TEST")
	}
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL_DEV")
	}

	chunkSize := viper.GetInt("REMINDER_CHUNK_SIZE")
	if chunkSize == 0 {
		chunkSize = 50
	}

	return &Config{
		Env:                 env,
		Port:                port,
		DatabaseURL:         dbURL,
		RedisURL:            viper.GetString("REDIS_URL"),
		APIToken:            viper.GetString("API_TOKEN"),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		SendinblueAPIKey:    viper.GetString("SENDINBLUE_API_KEY"),
		MailFrom:            viper.GetString("MAIL_FROM"),
		ReminderRecipients:  splitRecipients(viper.GetString("REMINDER_RECIPIENTS")),
		ReminderChunkSize:   chunkSize,
		ReminderCron:        reminderCron(viper.GetString("REMINDER_CRON")),
		AssignmentUnique:    strings.EqualFold(viper.GetString("ASSIGNMENT_ENFORCE_UNIQUE"), "true"),
	}, nil
}

func reminderCron(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "0 8 * * *"
	}
	return s
}

func splitRecipients(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
