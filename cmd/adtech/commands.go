package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/adtech-pipeline/infrastructure/database/mongodb"
	"github.com/vfg2006/adtech-pipeline/infrastructure/database/sqldb"
	"github.com/vfg2006/adtech-pipeline/infrastructure/dataset"
	"github.com/vfg2006/adtech-pipeline/infrastructure/exporter"
	"github.com/vfg2006/adtech-pipeline/infrastructure/repository"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/internal/usecases/engagement"
	"github.com/vfg2006/adtech-pipeline/internal/usecases/reporting"
	"github.com/vfg2006/adtech-pipeline/internal/usecases/sessionizing"
	"github.com/vfg2006/adtech-pipeline/internal/usecases/transforming"
	"github.com/vfg2006/adtech-pipeline/pkg/log"
)

var loadDocumentsCmd = &cobra.Command{
	Use:   "load-documents",
	Short: "Gera e grava os documentos de engajamento por usuário",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := readDataset(runCtx)
		if err != nil {
			return err
		}

		conn := mongoconn(runCtx, cfg.Mongo)
		defer closeMongo(conn)

		return loadDocuments(runCtx, conn, data)
	},
}

var loadRelationalFlags struct {
	clear bool
}

var loadRelationalCmd = &cobra.Command{
	Use:   "load-relational",
	Short: "Normaliza os arquivos e grava as tabelas relacionais",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("clear") {
			cfg.Pipeline.ClearData = loadRelationalFlags.clear
		}

		data, err := readDataset(runCtx)
		if err != nil {
			return err
		}

		conn := sqlconn(runCtx, cfg.Database)
		defer conn.Close()

		loadRelational(runCtx, conn, data)
		return nil
	},
}

var reportDocumentsFlags struct {
	userID      int64
	campaignIDs []string
	asOf        string
}

var reportDocumentsCmd = &cobra.Command{
	Use:   "report-documents",
	Short: "Executa as consultas sobre o document store e grava os resultados em JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("user-id") {
			cfg.Report.UserID = reportDocumentsFlags.userID
		}
		if cmd.Flags().Changed("campaign-ids") {
			cfg.Report.CampaignIDs = reportDocumentsFlags.campaignIDs
		}
		if cmd.Flags().Changed("as-of") {
			cfg.Report.AsOf = reportDocumentsFlags.asOf
		}
		if err := cfg.Finalize(); err != nil {
			return err
		}

		conn := mongoconn(runCtx, cfg.Mongo)
		defer closeMongo(conn)

		return reportDocuments(runCtx, conn)
	},
}

var reportRelationalFlags struct {
	format   string
	dateFrom string
	dateTo   string
}

var reportRelationalCmd = &cobra.Command{
	Use:   "report-relational",
	Short: "Executa as consultas analíticas do banco relacional",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("format") {
			cfg.Report.Format = reportRelationalFlags.format
		}
		if cmd.Flags().Changed("date-from") {
			cfg.Report.DateFrom = reportRelationalFlags.dateFrom
		}
		if cmd.Flags().Changed("date-to") {
			cfg.Report.DateTo = reportRelationalFlags.dateTo
		}
		if err := cfg.Finalize(); err != nil {
			return err
		}

		conn := sqlconn(runCtx, cfg.Database)
		defer conn.Close()

		return reportRelational(runCtx, conn)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Executa as duas cargas e os dois conjuntos de relatórios, nesta ordem",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := readDataset(runCtx)
		if err != nil {
			return err
		}

		mongoConn := mongoconn(runCtx, cfg.Mongo)
		defer closeMongo(mongoConn)

		sqlConn := sqlconn(runCtx, cfg.Database)
		defer sqlConn.Close()

		if err := loadDocuments(runCtx, mongoConn, data); err != nil {
			return err
		}

		loadRelational(runCtx, sqlConn, data)

		if err := reportDocuments(runCtx, mongoConn); err != nil {
			return err
		}

		return reportRelational(runCtx, sqlConn)
	},
}

func init() {
	loadRelationalCmd.Flags().BoolVar(&loadRelationalFlags.clear, "clear", false, "Limpa as tabelas e reinicia os contadores antes da carga")

	reportDocumentsCmd.Flags().Int64Var(&reportDocumentsFlags.userID, "user-id", 0, "Usuário dos relatórios de interações, sessões e categorias")
	reportDocumentsCmd.Flags().StringSliceVar(&reportDocumentsFlags.campaignIDs, "campaign-ids", nil, "Campanhas do relatório de cliques por hora (vazio = todas)")
	reportDocumentsCmd.Flags().StringVar(&reportDocumentsFlags.asOf, "as-of", "", "Fim da janela de cliques por hora, em RFC3339 (padrão: agora)")

	reportRelationalCmd.Flags().StringVarP(&reportRelationalFlags.format, "format", "f", "xlsx", "Formato de saída: xlsx ou csv")
	reportRelationalCmd.Flags().StringVar(&reportRelationalFlags.dateFrom, "date-from", "", "Data inicial dos eventos (AAAA-MM-DD)")
	reportRelationalCmd.Flags().StringVar(&reportRelationalFlags.dateTo, "date-to", "", "Data final dos eventos, inclusiva (AAAA-MM-DD)")

	rootCmd.AddCommand(loadDocumentsCmd, loadRelationalCmd, reportDocumentsCmd, reportRelationalCmd, runCmd)
}

func readDataset(ctx context.Context) (*domain.Dataset, error) {
	return dataset.NewReader(cfg.App.DataDir, cfg.Pipeline).Load(ctx)
}

func loadDocuments(ctx context.Context, conn *mongodb.Connection, data *domain.Dataset) error {
	service := engagement.NewService(
		sessionizing.New(cfg.Pipeline.SessionGap),
		repository.NewEngagementRepository(conn.Collection()),
		pipelineMetrics,
	)

	_, err := service.Load(ctx, data)
	return err
}

func loadRelational(ctx context.Context, conn *sqldb.Connection, data *domain.Dataset) {
	service := transforming.NewService(
		repository.NewLoadRepository(conn),
		repository.NewAdvertiserRepository(conn),
		cfg.Pipeline.BatchSize,
		pipelineMetrics,
	)

	summary := service.Import(ctx, data, cfg.Pipeline.ClearData)

	logger := log.ForContext(ctx)
	for _, result := range summary.Results {
		logger.WithFields(log.Fields{
			"table":    result.Table,
			"rows":     result.Rows,
			"inserted": result.Inserted,
			"failed":   result.Failed,
		}).Info("Resultado da carga")
	}
}

func reportDocuments(ctx context.Context, conn *mongodb.Connection) error {
	params, err := reporting.DocumentParamsFromConfig(cfg.Report, time.Now())
	if err != nil {
		return err
	}

	service := reporting.NewDocumentReportService(
		repository.NewEngagementRepository(conn.Collection()),
		exporter.NewFileWriter(cfg.App.OutputDir),
		pipelineMetrics,
	)

	return service.Run(ctx, params)
}

func reportRelational(ctx context.Context, conn *sqldb.Connection) error {
	filters, err := reporting.FiltersFromConfig(cfg.Report)
	if err != nil {
		return err
	}

	service := reporting.NewRelationalReportService(
		repository.NewReportRepository(conn),
		exporter.NewFileWriter(cfg.App.OutputDir),
		pipelineMetrics,
	)

	return service.Run(ctx, filters, cfg.Report.Format)
}
