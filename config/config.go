package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort        string
	MetricsPort        string
	AppEnv             string
	MongoDBConfig      MongoDBConfig
	StorageConfig      StorageConfig
	KafkaConfig        KafkaConfig
	TracingConfig      TracingConfig
	MailConfig         MailConfig
	CORSAllowedOrigins []string
	StrictReferences   bool
}

type MongoDBConfig struct {
	URI                  string
	DBHost               string
	DBPort               string
	DBName               string
	CategoriesCollection string
	FeaturesCollection   string
	TemplatesCollection  string
	PrototypesCollection string
	ProjectsCollection   string
}

// ConnectionURI prefers MONGODB_URI and falls back to DB_HOST and DB_PORT.
func (c MongoDBConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	return fmt.Sprintf("mongodb://%s:%s", c.DBHost, c.DBPort)
}

type StorageConfig struct {
	UploadDir   string
	MediaPrefix string
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

func (c KafkaConfig) Enabled() bool {
	return c.BrokerAddress != "" && c.BrokerTopic != ""
}

type TracingConfig struct {
	CollectorHost string
}

type MailConfig struct {
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	Sender          string
	NotifyRecipient string
}

func (c MailConfig) Enabled() bool {
	return c.SMTPHost != ""
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "8080"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		AppEnv:      os.Getenv("APP_ENV"),
		MongoDBConfig: MongoDBConfig{
			URI:                  os.Getenv("MONGODB_URI"),
			DBHost:               getEnv("DB_HOST", "localhost"),
			DBPort:               getEnv("DB_PORT", "27017"),
			DBName:               getEnv("DB_NAME", "builder"),
			CategoriesCollection: getEnv("CATEGORIES_COLLECTION", "categories"),
			FeaturesCollection:   getEnv("FEATURES_COLLECTION", "features"),
			TemplatesCollection:  getEnv("TEMPLATES_COLLECTION", "templates"),
			PrototypesCollection: getEnv("PROTOTYPES_COLLECTION", "prototypes"),
			ProjectsCollection:   getEnv("PROJECTS_COLLECTION", "projects"),
		},
		StorageConfig: StorageConfig{
			UploadDir:   getEnv("UPLOAD_DIR", "./static/uploads"),
			MediaPrefix: getEnv("MEDIA_PREFIX", "/media"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		MailConfig: MailConfig{
			SMTPHost:        os.Getenv("SMTP_HOST"),
			SMTPUsername:    os.Getenv("SMTP_USERNAME"),
			SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
			Sender:          os.Getenv("NOTIFY_SENDER"),
			NotifyRecipient: os.Getenv("NOTIFY_RECIPIENT"),
		},
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}
	conf.MailConfig.SMTPPort = smtpPort

	strict, err := strconv.ParseBool(getEnv("STRICT_REFERENCES", "false"))
	if err == nil {
		conf.StrictReferences = strict
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
