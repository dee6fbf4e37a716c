package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	Conf *viper.Viper

	JWTSecret        string
	AccessTokenTTL   time.Duration
	SessionTTL       time.Duration
	SchedulerURL     string
	SchedulerTimeout time.Duration
)

func init() {
	Conf = newConf()
}

func newConf() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("ACCESS_TOKEN_TTL", 24*time.Hour)
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("SCHEDULER_URL", "http://localhost:5000")
	v.SetDefault("SCHEDULER_TIMEOUT", 20*time.Second)
	v.SetDefault("CLEANUP_CRON", "@daily")
	v.SetDefault("TOKEN_BLACKLIST_TTL_DAYS", 7)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.AutomaticEnv()
	return v
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] .env not found, using system environment")
		} else {
			log.Println("[INFO] .env loaded")
		}
	} else {
		log.Println("[INFO] running on Railway, using system environment")
	}

	JWTSecret = strings.TrimSpace(Conf.GetString("JWT_SECRET"))
	AccessTokenTTL = Conf.GetDuration("ACCESS_TOKEN_TTL")
	SessionTTL = Conf.GetDuration("SESSION_TTL")
	SchedulerURL = strings.TrimRight(Conf.GetString("SCHEDULER_URL"), "/")
	SchedulerTimeout = Conf.GetDuration("SCHEDULER_TIMEOUT")

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set")
	} else {
		log.Println("[INFO] JWT_SECRET loaded")
	}
	log.Printf("[INFO] scheduler=%s timeout=%s", SchedulerURL, SchedulerTimeout)
}

func GetEnv(key string, defaultValue ...string) string {
	if Conf.IsSet(key) {
		return Conf.GetString(key)
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

func GetInt(key string) int { return Conf.GetInt(key) }

func GetDuration(key string) time.Duration { return Conf.GetDuration(key) }
