package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/adtech-pipeline/internal/config"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/pkg/log"
	"github.com/vfg2006/adtech-pipeline/pkg/utils"
)

const (
	UsersFile     = "users.csv"
	CampaignsFile = "campaigns.csv"
	EventsFile    = "ad_events.csv"
)

// EventColumns é a ordem das colunas de ad_events.csv. O cabeçalho do arquivo não
// corresponde a essas colunas, por isso a leitura é posicional.
var EventColumns = []string{
	"EventID", "AdvertiserName", "CampaignName", "CampaignStartDate", "CampaignEndDate",
	"TargetingCriteria1", "TargetingCriteria2", "TargetingCriteria3",
	"AdSlotSize", "UserID", "Device", "Location", "Timestamp",
	"BidAmount", "AdCost", "WasClicked", "ClickTimestamp",
	"AdRevenue", "Budget", "RemainingBudget",
}

const (
	colEventID = iota
	colAdvertiserName
	colCampaignName
	colCampaignStartDate
	colCampaignEndDate
	colTargeting1
	colTargeting2
	colTargeting3
	colAdSlotSize
	colUserID
	colDevice
	colLocation
	colTimestamp
	colBidAmount
	colAdCost
	colWasClicked
	colClickTimestamp
	colAdRevenue
	colBudget
	colRemainingBudget
)

var (
	userColumns     = []string{"UserID", "Age", "Gender", "Location", "Interests", "SignupDate"}
	campaignColumns = []string{
		"CampaignID", "AdvertiserName", "CampaignName", "CampaignStartDate", "CampaignEndDate",
		"TargetingCriteria", "AdSlotSize", "Budget", "RemainingBudget",
	}
)

// Reader lê as três fontes tabulares de um diretório
type Reader struct {
	dir              string
	skipEventsHeader bool
	eventsLimit      int
}

func NewReader(dataDir string, cfg config.Pipeline) *Reader {
	return &Reader{
		dir:              dataDir,
		skipEventsHeader: cfg.EventsSkipHeader,
		eventsLimit:      cfg.EventsLimit,
	}
}

// Load lê usuários, campanhas e eventos
func (r *Reader) Load(ctx context.Context) (*domain.Dataset, error) {
	users, err := r.ReadUsers(ctx)
	if err != nil {
		return nil, err
	}

	campaigns, err := r.ReadCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	events, err := r.ReadEvents(ctx)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"users":     len(users),
		"campaigns": len(campaigns),
		"events":    len(events),
	}).Info("Arquivos de origem carregados")

	return &domain.Dataset{
		Users:     users,
		Campaigns: campaigns,
		Events:    events,
	}, nil
}

func (r *Reader) ReadUsers(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0)
	skipped := newSkipCounter(ctx, UsersFile)

	err := r.readByHeader(UsersFile, userColumns, func(line int, get func(string) string) {
		userID, err := parseInt64(get("UserID"))
		if err != nil {
			skipped.add(line, err)
			return
		}

		users = append(users, domain.User{
			UserID:     userID,
			Age:        int(parseInt64OrZero(get("Age"))),
			Gender:     get("Gender"),
			Location:   get("Location"),
			SignupDate: get("SignupDate"),
			Interests:  get("Interests"),
		})
	})
	skipped.report()
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Reader) ReadCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns := make([]domain.Campaign, 0)
	skipped := newSkipCounter(ctx, CampaignsFile)

	err := r.readByHeader(CampaignsFile, campaignColumns, func(line int, get func(string) string) {
		campaignID, err := parseInt64(get("CampaignID"))
		if err != nil {
			skipped.add(line, err)
			return
		}

		budget, err := parseDecimal(get("Budget"))
		if err != nil {
			skipped.add(line, err)
			return
		}

		remaining, err := parseDecimal(get("RemainingBudget"))
		if err != nil {
			skipped.add(line, err)
			return
		}

		campaigns = append(campaigns, domain.Campaign{
			CampaignID:        campaignID,
			AdvertiserName:    get("AdvertiserName"),
			CampaignName:      get("CampaignName"),
			StartDate:         get("CampaignStartDate"),
			EndDate:           get("CampaignEndDate"),
			TargetingCriteria: get("TargetingCriteria"),
			AdSlotSize:        get("AdSlotSize"),
			Budget:            budget,
			RemainingBudget:   remaining,
		})
	})
	skipped.report()
	if err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (r *Reader) ReadEvents(ctx context.Context) ([]domain.Event, error) {
	path := filepath.Join(r.dir, EventsFile)
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	events := make([]domain.Event, 0)
	skipped := newSkipCounter(ctx, EventsFile)
	defer skipped.report()

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler %s na linha %d", path, line)
		}

		if line == 1 && r.skipEventsHeader {
			continue
		}

		event, err := parseEvent(record)
		if err != nil {
			skipped.add(line, err)
			continue
		}

		events = append(events, event)
		if r.eventsLimit > 0 && len(events) >= r.eventsLimit {
			break
		}
	}

	return events, nil
}

func parseEvent(record []string) (domain.Event, error) {
	if len(record) < len(EventColumns) {
		return domain.Event{}, fmt.Errorf("esperadas %d colunas, encontradas %d", len(EventColumns), len(record))
	}

	field := func(i int) string {
		return strings.TrimSpace(record[i])
	}

	userID, err := parseInt64(field(colUserID))
	if err != nil {
		return domain.Event{}, err
	}

	timestamp, err := utils.ParseTimestamp(field(colTimestamp))
	if err != nil {
		return domain.Event{}, err
	}

	amounts := make([]decimal.Decimal, 0, 5)
	for _, col := range []int{colBidAmount, colAdCost, colAdRevenue, colBudget, colRemainingBudget} {
		amount, err := parseDecimal(field(col))
		if err != nil {
			return domain.Event{}, fmt.Errorf("coluna %s: %w", EventColumns[col], err)
		}
		amounts = append(amounts, amount)
	}

	return domain.Event{
		EventID:           field(colEventID),
		AdvertiserName:    field(colAdvertiserName),
		CampaignName:      field(colCampaignName),
		CampaignStartDate: field(colCampaignStartDate),
		CampaignEndDate:   field(colCampaignEndDate),
		TargetingCriteria: JoinTargeting(field(colTargeting1), field(colTargeting2), field(colTargeting3)),
		AdSlotSize:        field(colAdSlotSize),
		UserID:            userID,
		Device:            field(colDevice),
		Location:          field(colLocation),
		Timestamp:         timestamp,
		BidAmount:         amounts[0],
		AdCost:            amounts[1],
		AdRevenue:         amounts[2],
		Budget:            amounts[3],
		RemainingBudget:   amounts[4],
		WasClicked:        parseBool(field(colWasClicked)),
		ClickTimestamp:    utils.ParseOptionalTimestamp(field(colClickTimestamp)),
	}, nil
}

// JoinTargeting une as colunas de segmentação com ", ", ignorando células vazias
func JoinTargeting(parts ...string) string {
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, "nan") {
			continue
		}
		values = append(values, part)
	}
	return strings.Join(values, ", ")
}

// readByHeader lê um CSV com cabeçalho e entrega cada linha com acesso às colunas pelo nome
func (r *Reader) readByHeader(name string, required []string, fn func(line int, get func(string) string)) error {
	path := filepath.Join(r.dir, name)
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return errors.Wrapf(err, "erro ao ler o cabeçalho de %s", path)
	}

	index := make(map[string]int, len(header))
	for i, column := range header {
		index[strings.TrimSpace(strings.TrimPrefix(column, "\ufeff"))] = i
	}
	for _, column := range required {
		if _, ok := index[column]; !ok {
			return fmt.Errorf("coluna %s ausente em %s", column, path)
		}
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "erro ao ler %s na linha %d", path, line)
		}

		fn(line, func(column string) string {
			i := index[column]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		})
	}
}

func parseInt64(value string) (int64, error) {
	if id, err := strconv.ParseInt(value, 10, 64); err == nil {
		return id, nil
	}

	// exportações do pandas às vezes gravam inteiros como "123.0"
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, fmt.Errorf("inteiro inválido: %q", value)
	}
	return int64(f), nil
}

func parseInt64OrZero(value string) int64 {
	n, err := parseInt64(value)
	if err != nil {
		return 0
	}
	return n
}

func parseDecimal(value string) (decimal.Decimal, error) {
	if value == "" || strings.EqualFold(value, "nan") {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return b
}

// skipCounter acumula as linhas descartadas de um arquivo e registra um resumo
type skipCounter struct {
	logger log.Logger
	count  int
	first  string
}

func newSkipCounter(ctx context.Context, file string) *skipCounter {
	return &skipCounter{logger: log.ForContext(ctx).WithField("file", file)}
}

func (s *skipCounter) add(line int, err error) {
	s.count++
	if s.first == "" {
		s.first = fmt.Sprintf("linha %d: %v", line, err)
	}
	s.logger.WithField("row", line).WithError(err).Debug("Linha ignorada")
}

func (s *skipCounter) report() {
	if s.count == 0 {
		return
	}
	s.logger.WithFields(log.Fields{
		"skipped": s.count,
		"sample":  s.first,
	}).Warn("Linhas inválidas ignoradas")
}
