package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Counters(t *testing.T) {
	m := New()

	m.RowsInserted.WithLabelValues("clicks").Add(3)
	m.RowsSkipped.WithLabelValues("ad_events", "campaign_not_resolved").Inc()
	m.DocumentsLoaded.Add(2)
	m.ReportRows.WithLabelValues("top_campaigns_by_ctr").Set(5)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RowsInserted.WithLabelValues("clicks")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RowsSkipped.WithLabelValues("ad_events", "campaign_not_resolved")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DocumentsLoaded))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.ReportRows.WithLabelValues("top_campaigns_by_ctr")))
}

func TestPipeline_WriteTextfile(t *testing.T) {
	m := New()
	m.DocumentsLoaded.Inc()
	m.ObserveStage("load_documents", time.Now().Add(-time.Second))

	path := filepath.Join(t.TempDir(), "adtech.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "adtech_documents_loaded_total 1")
	assert.Contains(t, string(content), `adtech_stage_duration_seconds_count{stage="load_documents"} 1`)
}
