package transforming

import (
	"context"

	"github.com/vfg2006/adtech-pipeline/infrastructure/repository"
	"github.com/vfg2006/adtech-pipeline/pkg/log"
	"github.com/vfg2006/adtech-pipeline/pkg/metrics"
)

const DefaultBatchSize = 1000

const (
	reasonDuplicate    = "duplicate"
	reasonInsertFailed = "insert_failed"
	reasonUnresolved   = "unresolved"
)

// Row é qualquer entidade relacional que sabe listar suas colunas na ordem da tabela
type Row interface {
	Values() []any
}

func toValues[T Row](rows []T) [][]any {
	values := make([][]any, len(rows))
	for i, row := range rows {
		values[i] = row.Values()
	}
	return values
}

// InsertResult resume a gravação de uma tabela
type InsertResult struct {
	Table    string
	Rows     int
	Inserted int64 // linhas novas; duplicadas ignoradas pelo banco não entram
	Failed   int
}

// BatchInserter grava as linhas em lotes; um lote com erro é desfeito e refeito linha a linha
type BatchInserter struct {
	repository repository.LoadRepository
	batchSize  int
	metrics    *metrics.Pipeline
}

func NewBatchInserter(loadRepository repository.LoadRepository, batchSize int, pipelineMetrics *metrics.Pipeline) *BatchInserter {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &BatchInserter{
		repository: loadRepository,
		batchSize:  batchSize,
		metrics:    pipelineMetrics,
	}
}

func (b *BatchInserter) Insert(ctx context.Context, table repository.Table, rows [][]any) InsertResult {
	logger := log.ForContext(ctx).WithField("table", table.Name)
	result := InsertResult{Table: table.Name, Rows: len(rows)}

	for start := 0; start < len(rows); start += b.batchSize {
		end := min(start+b.batchSize, len(rows))
		batch := rows[start:end]

		inserted, err := b.repository.InsertBatch(ctx, table, batch)
		if err == nil {
			result.Inserted += inserted
			continue
		}

		logger.WithError(err).WithField("batch", start/b.batchSize+1).Warn("Lote desfeito, inserindo linha a linha")

		for _, row := range batch {
			n, err := b.repository.InsertRow(ctx, table, row)
			if err != nil {
				result.Failed++
				logger.WithError(err).WithField("row", row[0]).Warn("Linha ignorada")
				continue
			}
			result.Inserted += n
		}
	}

	duplicates := int64(result.Rows-result.Failed) - result.Inserted
	b.metrics.RowsInserted.WithLabelValues(table.Name).Add(float64(result.Inserted))
	b.metrics.RowsSkipped.WithLabelValues(table.Name, reasonInsertFailed).Add(float64(result.Failed))
	if duplicates > 0 {
		b.metrics.RowsSkipped.WithLabelValues(table.Name, reasonDuplicate).Add(float64(duplicates))
	}

	logger.WithFields(log.Fields{
		"rows":     result.Rows,
		"inserted": result.Inserted,
		"failed":   result.Failed,
	}).Info("Tabela carregada")

	return result
}
