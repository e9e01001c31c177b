package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// Substituted for a marker the model reply does not contain.
	DefaultMood    = "reflective"
	DefaultSummary = "A personal reflection and thoughts."

	// Returned whenever the model call itself fails.
	FallbackSummary = "A personal journal entry with thoughts and experiences."

	// Returned by the preview endpoint for blank text.
	PreviewMood    = "neutral"
	PreviewSummary = "No content to analyze"

	moodMarker    = "MOOD:"
	summaryMarker = "SUMMARY:"
)

var (
	// ErrEmptyCompletion is returned when the model answers with no text.
	ErrEmptyCompletion = errors.New("model returned an empty completion")

	errNoGenerator = errors.New("no text generator configured")
)

// TextGenerator produces a single completion for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// analysisResult keeps the failure reason next to the parsed pair until the
// analyzer boundary collapses it to defaults.
type analysisResult struct {
	analysis models.Analysis
	complete bool
	err      error
}

// MoodAnalyzer turns entry text into a mood label and summary. It never fails
// outward: any problem with the model call yields the fallback pair.
type MoodAnalyzer struct {
	generator TextGenerator
	timeout   time.Duration
	log       *logrus.Logger
	metrics   *Metrics
}

type AnalyzerOption func(*MoodAnalyzer)

// WithAnalysisTimeout bounds each model call. Zero means no extra bound.
func WithAnalysisTimeout(d time.Duration) AnalyzerOption {
	return func(a *MoodAnalyzer) {
		a.timeout = d
	}
}

func WithAnalyzerMetrics(m *Metrics) AnalyzerOption {
	return func(a *MoodAnalyzer) {
		a.metrics = m
	}
}

func NewMoodAnalyzer(generator TextGenerator, logger *logrus.Logger, opts ...AnalyzerOption) *MoodAnalyzer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	a := &MoodAnalyzer{
		generator: generator,
		log:       logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FallbackAnalysis is the pair used when the model cannot be reached or answers nothing.
func FallbackAnalysis() models.Analysis {
	return models.Analysis{Mood: DefaultMood, Summary: FallbackSummary}
}

// Analyze asks the model for a mood and summary of text.
func (a *MoodAnalyzer) Analyze(ctx context.Context, text string) models.Analysis {
	start := time.Now()
	res := a.run(ctx, text)
	elapsed := time.Since(start)

	if res.err != nil {
		a.log.WithError(res.err).WithFields(logrus.Fields{
			"content_length": len(text),
			"duration_ms":    elapsed.Milliseconds(),
		}).Warn("AI analysis failed, using default mood and summary")
		a.metrics.RecordAnalysis(OutcomeDegraded, elapsed)
		return FallbackAnalysis()
	}

	if !res.complete {
		a.log.WithFields(logrus.Fields{
			"mood":    res.analysis.Mood,
			"summary": res.analysis.Summary,
		}).Warn("AI analysis reply missing a marker, defaults substituted")
		a.metrics.RecordAnalysis(OutcomePartial, elapsed)
	} else {
		a.log.WithFields(logrus.Fields{
			"mood":        res.analysis.Mood,
			"duration_ms": elapsed.Milliseconds(),
		}).Debug("AI analysis complete")
		a.metrics.RecordAnalysis(OutcomeOK, elapsed)
	}
	return res.analysis
}

// AnalyzePreview is Analyze for the ad-hoc preview endpoint: blank text
// short-circuits to a neutral pair without calling the model.
func (a *MoodAnalyzer) AnalyzePreview(ctx context.Context, text string) models.Analysis {
	if strings.TrimSpace(text) == "" {
		a.metrics.RecordAnalysis(OutcomeSkipped, 0)
		return models.Analysis{Mood: PreviewMood, Summary: PreviewSummary}
	}
	return a.Analyze(ctx, text)
}

func (a *MoodAnalyzer) run(ctx context.Context, text string) analysisResult {
	if a.generator == nil {
		return analysisResult{err: errNoGenerator}
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	reply, err := a.generator.Generate(ctx, BuildAnalysisPrompt(text))
	if err != nil {
		return analysisResult{err: fmt.Errorf("generate analysis: %w", err)}
	}
	if strings.TrimSpace(reply) == "" {
		return analysisResult{err: ErrEmptyCompletion}
	}

	analysis, complete := ParseAnalysis(reply)
	return analysisResult{analysis: analysis, complete: complete}
}

// BuildAnalysisPrompt embeds text in the fixed instruction sent to the model.
func BuildAnalysisPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Analyze the following journal entry and provide the mood and a summary.\n\n")
	b.WriteString("Journal Entry:\n")
	b.WriteString(text)
	b.WriteString("\n\nInstructions:\n")
	b.WriteString("1.  **Mood**: Choose one of the following moods that best describes the entry: ")
	b.WriteString(strings.Join(models.MoodVocabulary, ", "))
	b.WriteString(".\n")
	b.WriteString("2.  **Summary**: Provide a brief, one to two-sentence summary of the entry.\n\n")
	b.WriteString("Respond in the following format:\n")
	b.WriteString(moodMarker + " [mood]\n")
	b.WriteString(summaryMarker + " [summary]")
	return b.String()
}

// ParseAnalysis reads a model reply of the form
//
//	MOOD: <mood>
//	SUMMARY: <summary>
//
// Lines may come in any order and be surrounded by other text; only the first
// line carrying each marker counts. Leading and trailing whitespace around a
// line and its value is ignored. A missing or empty value is replaced by its
// default; complete reports whether both values came from the reply.
func ParseAnalysis(reply string) (analysis models.Analysis, complete bool) {
	var mood, summary string
	var moodSeen, summarySeen bool

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case !moodSeen && strings.HasPrefix(line, moodMarker):
			mood = strings.TrimSpace(strings.TrimPrefix(line, moodMarker))
			moodSeen = true
		case !summarySeen && strings.HasPrefix(line, summaryMarker):
			summary = strings.TrimSpace(strings.TrimPrefix(line, summaryMarker))
			summarySeen = true
		}
		if moodSeen && summarySeen {
			break
		}
	}

	complete = mood != "" && summary != ""
	if mood == "" {
		mood = DefaultMood
	}
	if summary == "" {
		summary = DefaultSummary
	}
	return models.Analysis{Mood: mood, Summary: summary}, complete
}
