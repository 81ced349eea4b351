package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxSheetName é o limite de caracteres do nome de uma aba no Excel
const maxSheetName = 31

const defaultSheet = "Sheet1"

// Table é um resultado tabular pronto para exportação
type Table struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// FileWriter grava os artefatos dentro do diretório de saída
type FileWriter struct {
	dir string
}

func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

func (w *FileWriter) path(name string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "erro ao criar o diretório %s", w.dir)
	}
	return filepath.Join(w.dir, name), nil
}

// WriteJSON grava v como JSON indentado e retorna o caminho do arquivo
func (w *FileWriter) WriteJSON(name string, v interface{}) (string, error) {
	path, err := w.path(name)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrapf(err, "erro ao serializar %s", name)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", errors.Wrapf(err, "erro ao gravar %s", path)
	}

	return path, nil
}

// WriteCSV grava a tabela com cabeçalho e retorna o caminho do arquivo
func (w *FileWriter) WriteCSV(name string, table Table) (string, error) {
	path, err := w.path(name)
	if err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao criar %s", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Header); err != nil {
		return "", errors.Wrapf(err, "erro ao gravar %s", path)
	}

	for _, row := range table.Rows {
		record := make([]string, len(row))
		for i, value := range row {
			record[i] = FormatCell(value)
		}
		if err := writer.Write(record); err != nil {
			return "", errors.Wrapf(err, "erro ao gravar %s", path)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", errors.Wrapf(err, "erro ao gravar %s", path)
	}

	return path, nil
}

// WriteWorkbook grava uma pasta de trabalho com uma aba por tabela
func (w *FileWriter) WriteWorkbook(name string, tables []Table) (string, error) {
	path, err := w.path(name)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	for _, table := range tables {
		sheet := SheetName(table.Name)
		f.NewSheet(sheet)

		header := make([]interface{}, len(table.Header))
		for i, column := range table.Header {
			header[i] = column
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return "", errors.Wrapf(err, "erro ao gravar cabeçalho da aba %s", sheet)
		}

		for i, row := range table.Rows {
			cells := make([]interface{}, len(row))
			for j, value := range row {
				cells[j] = workbookCell(value)
			}

			axis, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return "", err
			}
			if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
				return "", errors.Wrapf(err, "erro ao gravar linha %d da aba %s", i+2, sheet)
			}
		}
	}

	if len(tables) > 0 && SheetName(tables[0].Name) != defaultSheet {
		f.DeleteSheet(defaultSheet)
		f.SetActiveSheet(0)
	}

	if err := f.SaveAs(path); err != nil {
		return "", errors.Wrapf(err, "erro ao salvar %s", path)
	}

	return path, nil
}

// SheetName ajusta o nome da aba ao limite do Excel
func SheetName(name string) string {
	runes := []rune(name)
	if len(runes) > maxSheetName {
		return string(runes[:maxSheetName])
	}
	return name
}

// FormatCell converte um valor de célula para texto
func FormatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func workbookCell(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return v
	}
}
