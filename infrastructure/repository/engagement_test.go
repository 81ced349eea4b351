package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageNames(pipeline mongo.Pipeline) []string {
	names := make([]string, 0, len(pipeline))
	for _, stage := range pipeline {
		names = append(names, stage[0].Key)
	}
	return names
}

func stageValue(t *testing.T, stage bson.D) bson.D {
	t.Helper()
	value, ok := stage[0].Value.(bson.D)
	require.True(t, ok, "estágio %s não é um documento", stage[0].Key)
	return value
}

func TestInteractionsPipeline(t *testing.T) {
	pipeline := interactionsPipeline(42)

	assert.Equal(t, []string{"$match", "$unwind", "$unwind", "$sort", "$project"}, stageNames(pipeline))
	assert.Equal(t, bson.D{{Key: "user_id", Value: int64(42)}}, stageValue(t, pipeline[0]))
	assert.Equal(t, "$ad_sessions", pipeline[1][0].Value)
	assert.Equal(t, "$ad_sessions.ad_impressions", pipeline[2][0].Value)

	project := stageValue(t, pipeline[4]).Map()
	assert.Equal(t, "$ad_sessions.session_id", project["session_id"])
	assert.Equal(t, "$ad_sessions.ad_impressions.click", project["click"])
}

func TestLastSessionsPipeline(t *testing.T) {
	pipeline := lastSessionsPipeline(7, 5)

	assert.Equal(t, []string{"$match", "$unwind", "$sort", "$limit", "$project"}, stageNames(pipeline))
	assert.Equal(t, bson.D{
		{Key: "ad_sessions.start_time", Value: -1},
		{Key: "ad_sessions.session_id", Value: 1},
	}, stageValue(t, pipeline[2]))
	assert.Equal(t, 5, pipeline[3][0].Value)

	project := stageValue(t, pipeline[4]).Map()
	assert.Equal(t, bson.D{{Key: "$size", Value: "$ad_sessions.ad_impressions"}}, project["num_ads"])
	assert.Contains(t, project, "num_clicks")
}

func TestClicksPerHourPipeline(t *testing.T) {
	to := time.Date(2024, 11, 9, 12, 0, 0, 0, time.UTC)
	from := to.Add(-24 * time.Hour)

	t.Run("filtra pelas campanhas informadas e pela janela", func(t *testing.T) {
		pipeline := clicksPerHourPipeline([]int64{11, 12, 13}, from, to)

		assert.Equal(t, []string{"$match", "$unwind", "$unwind", "$match", "$group", "$sort", "$project"}, stageNames(pipeline))

		match := stageValue(t, pipeline[3]).Map()
		assert.Equal(t, bson.D{{Key: "$in", Value: []int64{11, 12, 13}}}, match["ad_sessions.ad_impressions.campaign_id"])
		assert.Equal(t, bson.D{
			{Key: "$gte", Value: from},
			{Key: "$lte", Value: to},
		}, match["ad_sessions.ad_impressions.click.click_timestamp"])
	})

	t.Run("sem campanhas considera todas", func(t *testing.T) {
		pipeline := clicksPerHourPipeline(nil, from, to)

		match := stageValue(t, pipeline[3]).Map()
		assert.NotContains(t, match, "ad_sessions.ad_impressions.campaign_id")
		assert.Contains(t, match, "ad_sessions.ad_impressions.click.click_timestamp")
	})
}

func TestFatiguePipeline(t *testing.T) {
	pipeline := fatiguePipeline(5)

	assert.Equal(t, []string{"$unwind", "$unwind", "$group", "$match", "$group", "$project", "$sort"}, stageNames(pipeline))

	group := stageValue(t, pipeline[2]).Map()
	assert.Equal(t, bson.D{
		{Key: "user_id", Value: "$user_id"},
		{Key: "ad_id", Value: "$ad_sessions.ad_impressions.ad_id"},
	}, group["_id"])

	assert.Equal(t, bson.D{
		{Key: "impressions", Value: bson.D{{Key: "$gte", Value: 5}}},
		{Key: "clicks", Value: 0},
	}, stageValue(t, pipeline[3]))
}

func TestTopCategoriesPipeline(t *testing.T) {
	pipeline := topCategoriesPipeline(99, 3)

	assert.Equal(t, []string{"$match", "$unwind", "$unwind", "$match", "$group", "$sort", "$limit", "$project"}, stageNames(pipeline))
	assert.Equal(t, bson.D{
		{Key: "clicks", Value: -1},
		{Key: "_id", Value: 1},
	}, stageValue(t, pipeline[5]))
	assert.Equal(t, 3, pipeline[6][0].Value)
}

func TestHasClick(t *testing.T) {
	assert.Equal(t,
		bson.D{{Key: "$ne", Value: bson.A{bson.D{{Key: "$type", Value: "$$imp.click"}}, "missing"}}},
		hasClick("$$imp.click"),
	)
}
