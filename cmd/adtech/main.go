package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/adtech-pipeline/infrastructure/database/mongodb"
	"github.com/vfg2006/adtech-pipeline/infrastructure/database/sqldb"
	"github.com/vfg2006/adtech-pipeline/internal/config"
	"github.com/vfg2006/adtech-pipeline/pkg/log"
	"github.com/vfg2006/adtech-pipeline/pkg/metrics"
)

var (
	cfg             *config.Config
	pipelineMetrics *metrics.Pipeline
	runCtx          context.Context
)

var rootCmd = &cobra.Command{
	Use:   "adtech",
	Short: "Pipeline de dados de campanhas de anúncios",
	Long: `Carrega os arquivos de usuários, campanhas e eventos de anúncios em dois destinos:

  document store    - um documento de engajamento por usuário, com sessões e impressões
  banco relacional  - seis tabelas normalizadas

e gera os relatórios analíticos de cada um deles.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func main() {
	// Inicializa configuração de logs
	configureLogger()

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// setup carrega a configuração e prepara o contexto da execução
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.NewConfig()
	if err != nil {
		return err
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	pipelineMetrics = metrics.New()

	ctx, runID := log.WithRunID(cmd.Context())
	runCtx = ctx

	log.ForContext(runCtx).WithFields(log.Fields{
		"command": cmd.Name(),
		"driver":  cfg.Database.Driver,
	}).Infof("Execução %s iniciada", runID)

	return nil
}

// teardown grava as métricas da execução quando METRICS_FILE estiver configurado
func teardown(_ *cobra.Command, _ []string) error {
	if cfg == nil || cfg.App.MetricsFile == "" {
		return nil
	}

	if err := pipelineMetrics.WriteTextfile(cfg.App.MetricsFile); err != nil {
		return err
	}

	log.ForContext(runCtx).Infof("Métricas gravadas em %s", cfg.App.MetricsFile)
	return nil
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// sqlconn cria uma conexão com o banco relacional
func sqlconn(ctx context.Context, dbConfig config.Database) *sqldb.Connection {
	conn, err := sqldb.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao conectar ao banco relacional (%s)", dbConfig.Driver)
	}

	logrus.Infof("Conexão com %s estabelecida com sucesso", dbConfig.Driver)
	return conn
}

// mongoconn cria uma conexão com o MongoDB
func mongoconn(ctx context.Context, mongoConfig config.Mongo) *mongodb.Connection {
	conn, err := mongodb.NewConnection(ctx, mongoConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao MongoDB")
	}

	logrus.Info("Conexão com MongoDB estabelecida com sucesso")
	return conn
}

func closeMongo(conn *mongodb.Connection) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.Close(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao encerrar a conexão com o MongoDB")
	}
}
