package reporting

//go:generate mockgen -source=writer.go -destination=mocks/writer.go -package=mocks

import "github.com/vfg2006/adtech-pipeline/infrastructure/exporter"

// Writer grava os artefatos dos relatórios e devolve o caminho de cada um
type Writer interface {
	WriteJSON(name string, v interface{}) (string, error)
	WriteCSV(name string, table exporter.Table) (string, error)
	WriteWorkbook(name string, tables []exporter.Table) (string, error)
}
