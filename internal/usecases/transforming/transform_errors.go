package transforming

import (
	"errors"
	"fmt"
)

// Erros específicos da carga relacional
var (
	// Erros de resolução de referências
	ErrAdvertiserNotResolved = errors.New("advertiser could not be resolved")
	ErrCampaignNotResolved   = errors.New("campaign could not be resolved")
	ErrUserNotFound          = errors.New("user not found in source")

	// Erros de dados
	ErrInvalidRow = errors.New("invalid row")

	// Erros de banco de dados
	ErrAdvertiserMapping = errors.New("error building advertiser mapping")
	ErrClearTables       = errors.New("error clearing relational tables")
)

// Etapas em que um TransformError pode ocorrer
const (
	StageAdvertisers = "advertisers"
	StageCampaigns   = "campaigns"
	StageUsers       = "users"
	StageEvents      = "ad_events"
	StageClicks      = "clicks"
)

// TransformError é um erro com o contexto da linha descartada
type TransformError struct {
	Err     error  // Erro base
	Stage   string // Etapa da transformação
	Key     string // Chave da linha envolvida (nome da campanha, id do evento...)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TransformError) Error() string {
	msg := e.Err.Error()
	if e.Key != "" {
		msg = fmt.Sprintf("%s [%s=%s]", msg, e.Stage, e.Key)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *TransformError) Unwrap() error {
	return e.Err
}

func NewTransformError(err error, stage, key, details string) *TransformError {
	return &TransformError{
		Err:     err,
		Stage:   stage,
		Key:     key,
		Details: details,
	}
}
