package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	ReportFormatXLSX = "xlsx"
	ReportFormatCSV  = "csv"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Mongo    Mongo    `mapstructure:",squash"`
	Pipeline Pipeline `mapstructure:",squash"`
	Report   Report   `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	DataDir     string `mapstructure:"data_dir" validate:"required"`
	OutputDir   string `mapstructure:"output_dir" validate:"required"`
	MetricsFile string `mapstructure:"metrics_file"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver" validate:"oneof=postgres mysql"`
	Host     string `mapstructure:"database_host" validate:"required"`
	Port     int    `mapstructure:"database_port" validate:"gt=0"`
	Name     string `mapstructure:"database_name" validate:"required"`
	User     string `mapstructure:"database_user" validate:"required"`
	Password string `mapstructure:"database_password"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type Mongo struct {
	URI        string        `mapstructure:"mongo_uri"`
	Host       string        `mapstructure:"mongo_host" validate:"required_without=URI"`
	Port       int           `mapstructure:"mongo_port"`
	User       string        `mapstructure:"mongo_user"`
	Password   string        `mapstructure:"mongo_password"`
	Database   string        `mapstructure:"mongo_database" validate:"required"`
	Collection string        `mapstructure:"mongo_collection" validate:"required"`
	Timeout    time.Duration `mapstructure:"mongo_timeout"`
}

type Pipeline struct {
	SessionGap       time.Duration `mapstructure:"session_gap" validate:"gt=0"`
	BatchSize        int           `mapstructure:"batch_size" validate:"gt=0"`
	EventsSkipHeader bool          `mapstructure:"events_skip_header"`
	EventsLimit      int           `mapstructure:"events_limit" validate:"gte=0"`
	ClearData        bool          `mapstructure:"clear_data"`
}

type Report struct {
	UserID                int64         `mapstructure:"report_user_id"`
	CampaignIDs           []string      `mapstructure:"report_campaign_ids"`
	Lookback              time.Duration `mapstructure:"report_lookback" validate:"gt=0"`
	AsOf                  string        `mapstructure:"report_as_of"`
	LastSessions          int           `mapstructure:"report_last_sessions" validate:"gt=0"`
	FatigueMinImpressions int           `mapstructure:"report_fatigue_min_impressions" validate:"gt=0"`
	TopCategories         int           `mapstructure:"report_top_categories" validate:"gt=0"`
	Format                string        `mapstructure:"report_format" validate:"oneof=xlsx csv"`
	DateFrom              string        `mapstructure:"report_date_from"`
	DateTo                string        `mapstructure:"report_date_to"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATA_DIR", "data/raw")
	viper.SetDefault("OUTPUT_DIR", "output")
	viper.SetDefault("METRICS_FILE", "")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", 5432)
	viper.SetDefault("DATABASE_NAME", "adtech_db")
	viper.SetDefault("DATABASE_USER", "adtech_user")
	viper.SetDefault("DATABASE_PASSWORD", "adtech_pass")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_HOST", "localhost")
	viper.SetDefault("MONGO_PORT", 27017)
	viper.SetDefault("MONGO_USER", "")
	viper.SetDefault("MONGO_PASSWORD", "")
	viper.SetDefault("MONGO_DATABASE", "adtech")
	viper.SetDefault("MONGO_COLLECTION", "users_engagement")
	viper.SetDefault("MONGO_TIMEOUT", "10s")

	viper.SetDefault("SESSION_GAP", "30m")       // inatividade que abre uma nova sessão
	viper.SetDefault("BATCH_SIZE", 1000)         // linhas por lote de inserção
	viper.SetDefault("EVENTS_SKIP_HEADER", true) // ad_events.csv traz um cabeçalho que não corresponde às colunas
	viper.SetDefault("EVENTS_LIMIT", 0)          // 0 = todos os eventos
	viper.SetDefault("CLEAR_DATA", false)

	viper.SetDefault("REPORT_USER_ID", 0)
	viper.SetDefault("REPORT_CAMPAIGN_IDS", "")
	viper.SetDefault("REPORT_LOOKBACK", "24h")
	viper.SetDefault("REPORT_AS_OF", "")
	viper.SetDefault("REPORT_LAST_SESSIONS", 5)
	viper.SetDefault("REPORT_FATIGUE_MIN_IMPRESSIONS", 5)
	viper.SetDefault("REPORT_TOP_CATEGORIES", 3)
	viper.SetDefault("REPORT_FORMAT", ReportFormatXLSX)
	viper.SetDefault("REPORT_DATE_FROM", "")
	viper.SetDefault("REPORT_DATE_TO", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// Finalize monta os DSNs e valida a configuração.
// Deve ser chamado novamente quando flags da linha de comando alteram valores.
func (c *Config) Finalize() error {
	c.Report.CampaignIDs = compact(c.Report.CampaignIDs)
	c.Database.DSN = c.Database.BuildDSN()
	if c.Mongo.URI == "" {
		c.Mongo.URI = c.Mongo.BuildURI()
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}
	return nil
}

// BuildDSN monta a string de conexão conforme o driver configurado
func (d Database) BuildDSN() string {
	address := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))

	if d.Driver == DriverMySQL {
		cfg := mysql.NewConfig()
		cfg.User = d.User
		cfg.Passwd = d.Password
		cfg.Net = "tcp"
		cfg.Addr = address
		cfg.DBName = d.Name
		cfg.ParseTime = true
		return cfg.FormatDSN()
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   address,
		Path:   d.Name,
	}
	if d.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{d.SSLMode}}.Encode()
	}
	return dsn.String()
}

// BuildURI monta a URI do MongoDB a partir de host, porta e credenciais
func (m Mongo) BuildURI() string {
	uri := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(m.Host, strconv.Itoa(m.Port)),
		Path:   "/",
	}
	if m.User != "" {
		uri.User = url.UserPassword(m.User, m.Password)
	}
	return uri.String()
}

// CampaignIDList converte REPORT_CAMPAIGN_IDS em inteiros
func (r Report) CampaignIDList() ([]int64, error) {
	ids := make([]int64, 0, len(r.CampaignIDs))
	for _, raw := range r.CampaignIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("id de campanha inválido %q: %w", raw, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AsOfTime retorna a âncora da janela móvel; sem REPORT_AS_OF usa o horário atual
func (r Report) AsOfTime(now time.Time) (time.Time, error) {
	if r.AsOf == "" {
		return now.UTC(), nil
	}
	asOf, err := time.Parse(time.RFC3339, r.AsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("REPORT_AS_OF inválido: %w", err)
	}
	return asOf.UTC(), nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
