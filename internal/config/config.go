package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Farmacia          Farmacia          `mapstructure:",squash"`
	Alertas           Alertas           `mapstructure:",squash"`
	Historico         Historico         `mapstructure:",squash"`
	AlertSnapshotSync AlertSnapshotSync `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Farmacia guarda a configuração do backend REST da farmácia consumido pelo BFF.
type Farmacia struct {
	BaseURL        string `mapstructure:"farmacia_base_url"`
	TimeoutSeconds int    `mapstructure:"farmacia_timeout_seconds"`

	// Credenciais de serviço usadas pelos agendadores, que rodam sem sessão
	// de usuário. Opcionais: sem elas o snapshot de alertas fica desabilitado.
	ServiceUsername string `mapstructure:"farmacia_service_username"`
	ServicePassword string `mapstructure:"farmacia_service_password"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Alertas struct {
	EstoqueLimitePadrao int `mapstructure:"alerta_estoque_limite_padrao"`
	ValidadeDiasPadrao  int `mapstructure:"alerta_validade_dias_padrao"`
}

// Historico limita o fan-out da visão agregada de movimentações de estoque.
type Historico struct {
	MaxMedicamentos int `mapstructure:"historico_max_medicamentos"`
	LimitePorMed    int `mapstructure:"historico_limite_por_medicamento"`
}

type AlertSnapshotSync struct {
	CronSchedule string `mapstructure:"alert_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"alert_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8010)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/farmacia_bff")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Endereço padrão do backend da farmácia em desenvolvimento
	viper.SetDefault("FARMACIA_BASE_URL", "http://localhost:8080")
	viper.SetDefault("FARMACIA_TIMEOUT_SECONDS", 30)
	viper.SetDefault("FARMACIA_SERVICE_USERNAME", "")
	viper.SetDefault("FARMACIA_SERVICE_PASSWORD", "")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("ALERTA_ESTOQUE_LIMITE_PADRAO", 10)
	viper.SetDefault("ALERTA_VALIDADE_DIAS_PADRAO", 30)

	viper.SetDefault("HISTORICO_MAX_MEDICAMENTOS", 30)
	viper.SetDefault("HISTORICO_LIMITE_POR_MEDICAMENTO", 10)

	viper.SetDefault("ALERT_SNAPSHOT_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("ALERT_SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
