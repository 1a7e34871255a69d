package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (lida via Viper a partir do ambiente e, opcionalmente, de ficheiro).
type Config struct {
	App     AppConfig
	DB      DBConfig
	Store   StoreConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Alerts  AlertsConfig
	Email   EmailConfig
	Uploads UploadsConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	SwaggerFile string // vazio ou inexistente = sem /docs
}

// DBConfig configuração do PostgreSQL.
// Se DatabaseURL não estiver vazio, é usado como connection string completa.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32 // DB_MAX_CONNS
	ForceIPv4   bool  // DB_FORCE_IPV4: resolve o host para IPv4 antes de ligar
}

// ConnectionString devolve o DSN a usar: DATABASE_URL se definido, senão o construído por DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devolve a connection string com URL encoding para caracteres especiais na password.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Drivers de persistência suportados.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// StoreConfig escolhe o backend das coleções.
type StoreConfig struct {
	Driver string // postgres | memory
}

// JWTConfig configuração de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por vírgulas; "*" por omissão
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AlertsConfig janela de aviso de vistorias/seguros e destinatário.
type AlertsConfig struct {
	DaysBefore int
	Recipient  string
}

// Fornecedores de email.
const (
	EmailProviderResend = "resend"
	EmailProviderSMTP   = "smtp"
)

// EmailConfig transporte dos alertas por email.
type EmailConfig struct {
	Provider     string
	ResendAPIKey string
	Sender       string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
}

// Drivers de armazenamento de fotos.
const (
	UploadDriverLocal = "local"
	UploadDriverMinIO = "minio"
)

// UploadsConfig armazenamento de fotografias de equipamentos e viaturas.
type UploadsConfig struct {
	Driver         string
	Dir            string
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
}

// Load lê a configuração das variáveis de ambiente (e opcionalmente de ficheiro).
// As env vars têm prioridade. Nomes esperados: APP_ENV, DB_HOST, JWT_SECRET, ALERT_DAYS_BEFORE, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "armazem-api"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "armazem"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 10)),
			ForceIPv4:   getBool(v, "DB_FORCE_IPV4", true),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", StoreDriverPostgres)),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 7*24*60),
			Issuer:     getString(v, "JWT_ISSUER", "armazem-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			CORSOrigins: getString(v, "CORS_ORIGINS", "*"),
		},
		Alerts: AlertsConfig{
			DaysBefore: getInt(v, "ALERT_DAYS_BEFORE", 7),
			Recipient:  getString(v, "ALERT_EMAIL", ""),
		},
		Email: EmailConfig{
			Provider:     strings.ToLower(getString(v, "EMAIL_PROVIDER", EmailProviderResend)),
			ResendAPIKey: getString(v, "RESEND_API_KEY", ""),
			Sender:       getString(v, "SENDER_EMAIL", "onboarding@resend.dev"),
			SMTPHost:     getString(v, "SMTP_HOST", ""),
			SMTPPort:     getInt(v, "SMTP_PORT", 587),
			SMTPUser:     getString(v, "SMTP_USER", ""),
			SMTPPassword: getString(v, "SMTP_PASSWORD", ""),
		},
		Uploads: UploadsConfig{
			Driver:         strings.ToLower(getString(v, "UPLOAD_DRIVER", UploadDriverLocal)),
			Dir:            getString(v, "UPLOAD_DIR", "./uploads"),
			MinIOEndpoint:  getString(v, "MINIO_ENDPOINT", ""),
			MinIOAccessKey: getString(v, "MINIO_ACCESS_KEY", ""),
			MinIOSecretKey: getString(v, "MINIO_SECRET_KEY", ""),
			MinIOBucket:    getString(v, "MINIO_BUCKET", "armazem"),
			MinIOUseSSL:    getBool(v, "MINIO_USE_SSL", false),
		},
	}

	if cfg.Store.Driver != StoreDriverPostgres && cfg.Store.Driver != StoreDriverMemory {
		return nil, fmt.Errorf("STORE_DRIVER inválido: %q", cfg.Store.Driver)
	}
	if cfg.Alerts.DaysBefore < 0 {
		return nil, fmt.Errorf("ALERT_DAYS_BEFORE não pode ser negativo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
