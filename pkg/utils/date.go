package utils

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts são os formatos aceitos nos arquivos CSV de origem
var timestampLayouts = []string{
	time.DateTime,
	"2006-01-02 15:04:05.999999",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04",
	time.DateOnly,
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseTimestamp converte um horário da origem para UTC
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("horário vazio")
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de horário não reconhecido: %q", value)
}

// ParseOptionalTimestamp retorna nil para valores vazios, "nan" ou inválidos
func ParseOptionalTimestamp(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "nan") || strings.EqualFold(value, "nat") {
		return nil
	}

	ts, err := ParseTimestamp(value)
	if err != nil {
		return nil
	}

	return &ts
}
