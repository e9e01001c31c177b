package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/logging"
	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply   string
	err     error
	delay   time.Duration
	calls   int
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		want     models.Analysis
		complete bool
	}{
		{
			name:     "both markers",
			reply:    "MOOD: happy\nSUMMARY: A sunny day at the beach.",
			want:     models.Analysis{Mood: "happy", Summary: "A sunny day at the beach."},
			complete: true,
		},
		{
			name:     "reversed order",
			reply:    "SUMMARY: Busy week.\nMOOD: overwhelmed",
			want:     models.Analysis{Mood: "overwhelmed", Summary: "Busy week."},
			complete: true,
		},
		{
			name:     "missing mood",
			reply:    "SUMMARY: Just a summary.",
			want:     models.Analysis{Mood: DefaultMood, Summary: "Just a summary."},
			complete: false,
		},
		{
			name:     "missing summary",
			reply:    "MOOD: sad",
			want:     models.Analysis{Mood: "sad", Summary: DefaultSummary},
			complete: false,
		},
		{
			name:     "missing both",
			reply:    "I think the writer is doing fine.",
			want:     models.Analysis{Mood: DefaultMood, Summary: DefaultSummary},
			complete: false,
		},
		{
			name:     "extra whitespace",
			reply:    "\n\n   MOOD:    grateful   \r\n\tSUMMARY:   Thankful for friends.  \r\n\n",
			want:     models.Analysis{Mood: "grateful", Summary: "Thankful for friends."},
			complete: true,
		},
		{
			name:     "extra lines",
			reply:    "Here is the analysis:\n\nMOOD: hopeful\nSome commentary\nSUMMARY: Looking forward to tomorrow.\nLet me know if you need more.",
			want:     models.Analysis{Mood: "hopeful", Summary: "Looking forward to tomorrow."},
			complete: true,
		},
		{
			name:     "first occurrence wins",
			reply:    "MOOD: anxious\nSUMMARY: First.\nMOOD: calm\nSUMMARY: Second.",
			want:     models.Analysis{Mood: "anxious", Summary: "First."},
			complete: true,
		},
		{
			name:     "empty marker value",
			reply:    "MOOD:\nSUMMARY: Something happened.",
			want:     models.Analysis{Mood: DefaultMood, Summary: "Something happened."},
			complete: false,
		},
		{
			name:     "lowercase marker is not a marker",
			reply:    "mood: happy\nsummary: nope",
			want:     models.Analysis{Mood: DefaultMood, Summary: DefaultSummary},
			complete: false,
		},
		{
			name:     "mood outside vocabulary is kept",
			reply:    "MOOD: nostalgic\nSUMMARY: Old photos.",
			want:     models.Analysis{Mood: "nostalgic", Summary: "Old photos."},
			complete: true,
		},
		{
			name:     "empty reply",
			reply:    "",
			want:     models.Analysis{Mood: DefaultMood, Summary: DefaultSummary},
			complete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, complete := ParseAnalysis(tt.reply)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.complete, complete)
		})
	}
}

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := BuildAnalysisPrompt("I had a wonderful day at the beach.")

	assert.Contains(t, prompt, "Journal Entry:\nI had a wonderful day at the beach.\n")
	for _, mood := range models.MoodVocabulary {
		assert.Contains(t, prompt, mood)
	}
	assert.True(t, strings.HasSuffix(prompt, "MOOD: [mood]\nSUMMARY: [summary]"))
}

func TestAnalyzeSuccess(t *testing.T) {
	gen := &fakeGenerator{reply: "MOOD: happy\nSUMMARY: A wonderful beach day."}
	analyzer := NewMoodAnalyzer(gen, logging.Discard())

	got := analyzer.Analyze(context.Background(), "I had a wonderful day at the beach.")

	assert.Equal(t, models.Analysis{Mood: "happy", Summary: "A wonderful beach day."}, got)
	require.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompts[0], "I had a wonderful day at the beach.")
}

func TestAnalyzeFailureFallsBack(t *testing.T) {
	tests := []struct {
		name string
		gen  TextGenerator
	}{
		{name: "network error", gen: &fakeGenerator{err: errors.New("dial tcp: connection refused")}},
		{name: "missing key", gen: &fakeGenerator{err: ErrMissingAPIKey}},
		{name: "empty reply", gen: &fakeGenerator{reply: "   \n  "}},
		{name: "no generator", gen: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewMoodAnalyzer(tt.gen, logging.Discard())
			got := analyzer.Analyze(context.Background(), "some text")
			assert.Equal(t, FallbackAnalysis(), got)
			assert.NotEmpty(t, got.Mood)
			assert.NotEmpty(t, got.Summary)
		})
	}
}

func TestAnalyzeTimeoutFallsBack(t *testing.T) {
	gen := &fakeGenerator{reply: "MOOD: happy\nSUMMARY: late", delay: time.Second}
	analyzer := NewMoodAnalyzer(gen, logging.Discard(), WithAnalysisTimeout(20*time.Millisecond))

	got := analyzer.Analyze(context.Background(), "text")

	assert.Equal(t, FallbackAnalysis(), got)
}

func TestAnalyzePreviewBlankSkipsModel(t *testing.T) {
	gen := &fakeGenerator{reply: "MOOD: happy\nSUMMARY: x"}
	analyzer := NewMoodAnalyzer(gen, logging.Discard())

	for _, text := range []string{"", "   ", "\n\t "} {
		got := analyzer.AnalyzePreview(context.Background(), text)
		assert.Equal(t, models.Analysis{Mood: "neutral", Summary: "No content to analyze"}, got)
	}
	assert.Equal(t, 0, gen.calls)

	got := analyzer.AnalyzePreview(context.Background(), "real text")
	assert.Equal(t, "happy", got.Mood)
	assert.Equal(t, 1, gen.calls)
}

func TestAnalyzeRecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg, nil)

	ok := NewMoodAnalyzer(&fakeGenerator{reply: "MOOD: sad\nSUMMARY: rain"}, logging.Discard(), WithAnalyzerMetrics(metrics))
	partial := NewMoodAnalyzer(&fakeGenerator{reply: "MOOD: sad"}, logging.Discard(), WithAnalyzerMetrics(metrics))
	failing := NewMoodAnalyzer(&fakeGenerator{err: errors.New("boom")}, logging.Discard(), WithAnalyzerMetrics(metrics))

	ok.Analyze(context.Background(), "a")
	partial.Analyze(context.Background(), "b")
	failing.Analyze(context.Background(), "c")
	failing.AnalyzePreview(context.Background(), " ")

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Analyses.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Analyses.WithLabelValues(OutcomePartial)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Analyses.WithLabelValues(OutcomeDegraded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Analyses.WithLabelValues(OutcomeSkipped)))
}
