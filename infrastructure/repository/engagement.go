package repository

//go:generate mockgen -source=engagement.go -destination=mocks/engagement.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	sessionsPath    = "$ad_sessions"
	impressionsPath = "$ad_sessions.ad_impressions"
	impressionField = "ad_sessions.ad_impressions"
)

type EngagementRepository interface {
	// ReplaceAll substitui todo o conteúdo da coleção pelos documentos informados
	ReplaceAll(ctx context.Context, docs []domain.EngagementDocument) (int, error)

	UserInteractions(ctx context.Context, userID int64) ([]domain.Interaction, error)
	LastSessions(ctx context.Context, userID int64, limit int) ([]domain.SessionSummary, error)
	ClicksPerHour(ctx context.Context, campaignIDs []int64, from, to time.Time) ([]domain.HourlyClicks, error)
	FatiguedUsers(ctx context.Context, minImpressions int) ([]domain.FatiguedUser, error)
	TopCategories(ctx context.Context, userID int64, limit int) ([]domain.CategoryClicks, error)
}

type engagementRepository struct {
	collection *mongo.Collection
}

func NewEngagementRepository(collection *mongo.Collection) EngagementRepository {
	return &engagementRepository{
		collection: collection,
	}
}

// ReplaceAll não é atômico: se a inserção falhar após a remoção a coleção fica
// parcial até a próxima execução.
func (r *engagementRepository) ReplaceAll(ctx context.Context, docs []domain.EngagementDocument) (int, error) {
	if _, err := r.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return 0, fmt.Errorf("erro ao limpar a coleção %s: %w", r.collection.Name(), err)
	}

	if len(docs) == 0 {
		return 0, nil
	}

	payload := make([]interface{}, len(docs))
	for i := range docs {
		payload[i] = docs[i]
	}

	result, err := r.collection.InsertMany(ctx, payload)
	if err != nil {
		return 0, fmt.Errorf("erro ao inserir documentos em %s: %w", r.collection.Name(), err)
	}

	return len(result.InsertedIDs), nil
}

func (r *engagementRepository) UserInteractions(ctx context.Context, userID int64) ([]domain.Interaction, error) {
	result := make([]domain.Interaction, 0)
	if err := r.aggregate(ctx, interactionsPipeline(userID), &result); err != nil {
		return nil, fmt.Errorf("erro ao consultar interações do usuário %d: %w", userID, err)
	}
	return result, nil
}

func (r *engagementRepository) LastSessions(ctx context.Context, userID int64, limit int) ([]domain.SessionSummary, error) {
	result := make([]domain.SessionSummary, 0)
	if err := r.aggregate(ctx, lastSessionsPipeline(userID, limit), &result); err != nil {
		return nil, fmt.Errorf("erro ao consultar sessões do usuário %d: %w", userID, err)
	}
	return result, nil
}

func (r *engagementRepository) ClicksPerHour(ctx context.Context, campaignIDs []int64, from, to time.Time) ([]domain.HourlyClicks, error) {
	result := make([]domain.HourlyClicks, 0)
	if err := r.aggregate(ctx, clicksPerHourPipeline(campaignIDs, from, to), &result); err != nil {
		return nil, fmt.Errorf("erro ao consultar cliques por hora: %w", err)
	}
	return result, nil
}

func (r *engagementRepository) FatiguedUsers(ctx context.Context, minImpressions int) ([]domain.FatiguedUser, error) {
	result := make([]domain.FatiguedUser, 0)
	if err := r.aggregate(ctx, fatiguePipeline(minImpressions), &result); err != nil {
		return nil, fmt.Errorf("erro ao consultar usuários com fadiga de anúncio: %w", err)
	}
	return result, nil
}

func (r *engagementRepository) TopCategories(ctx context.Context, userID int64, limit int) ([]domain.CategoryClicks, error) {
	result := make([]domain.CategoryClicks, 0)
	if err := r.aggregate(ctx, topCategoriesPipeline(userID, limit), &result); err != nil {
		return nil, fmt.Errorf("erro ao consultar categorias do usuário %d: %w", userID, err)
	}
	return result, nil
}

func (r *engagementRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, result interface{}) error {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, result)
}

func unwindImpressions() []bson.D {
	return []bson.D{
		{{Key: "$unwind", Value: sessionsPath}},
		{{Key: "$unwind", Value: impressionsPath}},
	}
}

// hasClick é verdadeiro quando o sub-documento click existe na expressão informada
func hasClick(expr string) bson.D {
	return bson.D{{Key: "$ne", Value: bson.A{bson.D{{Key: "$type", Value: expr}}, "missing"}}}
}

func interactionsPipeline(userID int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
	}
	pipeline = append(pipeline, unwindImpressions()...)

	return append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: impressionField + ".timestamp", Value: 1},
			{Key: impressionField + ".impression_id", Value: 1},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "session_id", Value: sessionsPath + ".session_id"},
			{Key: "device", Value: sessionsPath + ".device"},
			{Key: "impression_id", Value: impressionsPath + ".impression_id"},
			{Key: "event_id", Value: impressionsPath + ".event_id"},
			{Key: "ad_id", Value: impressionsPath + ".ad_id"},
			{Key: "campaign_id", Value: impressionsPath + ".campaign_id"},
			{Key: "timestamp", Value: impressionsPath + ".timestamp"},
			{Key: "was_clicked", Value: impressionsPath + ".was_clicked"},
			{Key: "click", Value: impressionsPath + ".click"},
		}}},
	)
}

func lastSessionsPipeline(userID int64, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
		{{Key: "$unwind", Value: sessionsPath}},
		{{Key: "$sort", Value: bson.D{
			{Key: "ad_sessions.start_time", Value: -1},
			{Key: "ad_sessions.session_id", Value: 1},
		}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "session_id", Value: sessionsPath + ".session_id"},
			{Key: "device", Value: sessionsPath + ".device"},
			{Key: "start_time", Value: sessionsPath + ".start_time"},
			{Key: "num_ads", Value: bson.D{{Key: "$size", Value: impressionsPath}}},
			{Key: "num_clicks", Value: bson.D{{Key: "$size", Value: bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: impressionsPath},
				{Key: "as", Value: "imp"},
				{Key: "cond", Value: hasClick("$$imp.click")},
			}}}}}},
		}}},
	}
}

// clicksPerHourPipeline agrupa os cliques por campanha e hora do clique dentro de [from, to].
// Lista de campanhas vazia considera todas as campanhas.
func clicksPerHourPipeline(campaignIDs []int64, from, to time.Time) mongo.Pipeline {
	clickTimestamp := impressionField + ".click.click_timestamp"

	filter := bson.D{{Key: clickTimestamp, Value: bson.D{
		{Key: "$gte", Value: from},
		{Key: "$lte", Value: to},
	}}}
	if len(campaignIDs) > 0 {
		filter = append(bson.D{{Key: impressionField + ".campaign_id", Value: bson.D{{Key: "$in", Value: campaignIDs}}}}, filter...)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
	}
	pipeline = append(pipeline, unwindImpressions()...)

	return append(pipeline,
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "campaign_id", Value: impressionsPath + ".campaign_id"},
				{Key: "hour", Value: bson.D{{Key: "$dateTrunc", Value: bson.D{
					{Key: "date", Value: "$" + clickTimestamp},
					{Key: "unit", Value: "hour"},
				}}}},
			}},
			{Key: "clicks", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.campaign_id", Value: 1},
			{Key: "_id.hour", Value: 1},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "campaign_id", Value: "$_id.campaign_id"},
			{Key: "hour", Value: "$_id.hour"},
			{Key: "clicks", Value: 1},
		}}},
	)
}

// fatiguePipeline encontra usuários que viram o mesmo anúncio minImpressions vezes ou mais sem nenhum clique
func fatiguePipeline(minImpressions int) mongo.Pipeline {
	pipeline := mongo.Pipeline(unwindImpressions())

	return append(pipeline,
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "user_id", Value: "$user_id"},
				{Key: "ad_id", Value: impressionsPath + ".ad_id"},
			}},
			{Key: "impressions", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "clicks", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{
				hasClick(impressionsPath + ".click"), 1, 0,
			}}}}}},
		}}},
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "impressions", Value: bson.D{{Key: "$gte", Value: minImpressions}}},
			{Key: "clicks", Value: 0},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$_id.user_id"},
			{Key: "ad_ids", Value: bson.D{{Key: "$addToSet", Value: "$_id.ad_id"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "user_id", Value: "$_id"},
			{Key: "ad_ids", Value: bson.D{{Key: "$sortArray", Value: bson.D{
				{Key: "input", Value: "$ad_ids"},
				{Key: "sortBy", Value: 1},
			}}}},
			{Key: "num_ads", Value: bson.D{{Key: "$size", Value: "$ad_ids"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "num_ads", Value: -1},
			{Key: "user_id", Value: 1},
		}}},
	)
}

func topCategoriesPipeline(userID int64, limit int) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
	}
	pipeline = append(pipeline, unwindImpressions()...)

	return append(pipeline,
		bson.D{{Key: "$match", Value: bson.D{
			{Key: impressionField + ".click", Value: bson.D{{Key: "$exists", Value: true}}},
			{Key: impressionField + ".ad_category", Value: bson.D{{Key: "$ne", Value: nil}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: impressionsPath + ".ad_category"},
			{Key: "clicks", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "clicks", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "clicks", Value: 1},
		}}},
	)
}
