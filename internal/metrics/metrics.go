package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"keywordlens/internal/db"
	"keywordlens/internal/models"
)

// Analysis outcome labels.
const (
	OutcomeAnalyzed = "analyzed"
	OutcomeSkipped  = "skipped"
)

var (
	keywordLookupDesc = prometheus.NewDesc(
		"keywordlens_keyword_lookups_total",
		"Total keyword lookups by outcome",
		[]string{"outcome"},
		nil,
	)

	distinctKeywordsDesc = prometheus.NewDesc(
		"keywordlens_distinct_keywords",
		"Distinct keywords looked up by outcome",
		[]string{"outcome"},
		nil,
	)

	analysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "keywordlens_analyses_total",
		Help: "Analyze actions by outcome",
	}, []string{"outcome"})

	analysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "keywordlens_analysis_duration_seconds",
		Help:    "Time spent producing one analysis",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	exportsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "keywordlens_exports_total",
		Help: "CSV exports served",
	})
)

// LookupTotalsSource supplies per-outcome lookup aggregates.
type LookupTotalsSource interface {
	GetLookupTotals(ctx context.Context) ([]models.LookupTotal, error)
}

// KeywordCollector is a custom Prometheus collector that reads keyword lookup
// aggregates from the database on each scrape. Individual keywords are never
// exposed as labels.
type KeywordCollector struct {
	source LookupTotalsSource
	log    *zap.Logger
}

// NewKeywordCollector creates a collector backed by source.
func NewKeywordCollector(source LookupTotalsSource, log *zap.Logger) *KeywordCollector {
	return &KeywordCollector{source: source, log: log}
}

// Describe sends the metric descriptors to the channel.
func (c *KeywordCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- keywordLookupDesc
	ch <- distinctKeywordsDesc
}

// Collect queries the per-outcome totals and emits a counter and a gauge for each.
func (c *KeywordCollector) Collect(ch chan<- prometheus.Metric) {
	totals, err := c.source.GetLookupTotals(context.Background())
	if err != nil {
		c.log.Error("failed to collect keyword lookup metrics", zap.Error(err))
		return
	}
	for _, t := range totals {
		ch <- prometheus.MustNewConstMetric(keywordLookupDesc, prometheus.CounterValue, float64(t.Total), t.Outcome)
		ch <- prometheus.MustNewConstMetric(distinctKeywordsDesc, prometheus.GaugeValue, float64(t.Distinct), t.Outcome)
	}
}

// Recorder provides async keyword lookup recording.
type Recorder struct {
	db  *db.DB
	log *zap.Logger
	wg  sync.WaitGroup
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the collectors and initializes the recorder.
// Must be called once at startup. A nil database disables lookup persistence.
func Init(database *db.DB, log *zap.Logger) {
	recorderOnce.Do(func() {
		prometheus.MustRegister(analysesTotal, analysisDuration, exportsTotal)
		if database == nil {
			return
		}
		recorder = &Recorder{db: database, log: log}
		prometheus.MustRegister(NewKeywordCollector(database, log))
	})
}

// RecordKeywordLookup asynchronously records a keyword lookup outcome.
func RecordKeywordLookup(keyword, outcome string) {
	if recorder == nil {
		return
	}
	recorder.wg.Add(1)
	go func() {
		defer recorder.wg.Done()
		if err := recorder.db.IncrementKeywordLookup(context.Background(), keyword, outcome); err != nil {
			recorder.log.Error("failed to record keyword lookup",
				zap.String("keyword_hash", db.HashKeyword(keyword)),
				zap.String("outcome", outcome),
				zap.Error(err),
			)
		}
	}()
}

// Flush waits for pending lookup writes. Called during shutdown.
func Flush() {
	if recorder == nil {
		return
	}
	recorder.wg.Wait()
}

// ObserveAnalysis counts a completed analysis and its duration.
func ObserveAnalysis(d time.Duration) {
	analysesTotal.WithLabelValues(OutcomeAnalyzed).Inc()
	analysisDuration.Observe(d.Seconds())
}

// RecordSkipped counts an analyze action that had no keyword.
func RecordSkipped() {
	analysesTotal.WithLabelValues(OutcomeSkipped).Inc()
}

// RecordExport counts a served CSV export.
func RecordExport() {
	exportsTotal.Inc()
}
