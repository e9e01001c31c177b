package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/models"
	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const (
	msgEntryNotFound = "Journal entry not found"
	msgEntryDeleted  = "Journal entry deleted successfully"
)

// Analyzer derives a mood and summary from text. Implementations never fail.
type Analyzer interface {
	Analyze(ctx context.Context, text string) models.Analysis
	AnalyzePreview(ctx context.Context, text string) models.Analysis
}

// JournalHandler serves the journal entry endpoints.
type JournalHandler struct {
	store    *services.EntryStore
	analyzer Analyzer
	metrics  *services.Metrics
	log      *logrus.Logger
	now      func() time.Time
}

func NewJournalHandler(store *services.EntryStore, analyzer Analyzer, metrics *services.Metrics, logger *logrus.Logger) *JournalHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &JournalHandler{
		store:    store,
		analyzer: analyzer,
		metrics:  metrics,
		log:      logger,
		now:      time.Now,
	}
}

// CreateEntry analyzes the content, then stores and returns the new entry.
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusUnprocessableEntity, "Title and content are required")
		return
	}

	// The model call is not abandoned when the client goes away.
	analysis := h.analyzer.Analyze(context.WithoutCancel(r.Context()), req.Content)

	entry := models.JournalEntry{
		ID:        services.NewEntryID(),
		Title:     req.Title,
		Content:   req.Content,
		Mood:      analysis.Mood,
		Summary:   analysis.Summary,
		CreatedAt: h.now().UTC(),
	}
	h.store.Append(entry)
	h.metrics.RecordEntryCreated()

	h.log.WithFields(logrus.Fields{
		"entry_id": entry.ID,
		"mood":     entry.Mood,
	}).Info("journal entry created")

	if err := writeJSON(w, http.StatusCreated, entry); err != nil {
		h.internalError(w, "Error creating journal entry", err)
	}
}

// ListEntries returns every entry, newest first.
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries := h.store.List()
	if err := writeJSON(w, http.StatusOK, entries); err != nil {
		h.internalError(w, "Error fetching journal entries", err)
	}
}

func (h *JournalHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "entryID")

	entry, err := h.store.Get(id)
	if errors.Is(err, services.ErrEntryNotFound) {
		writeError(w, http.StatusNotFound, msgEntryNotFound)
		return
	}
	if err != nil {
		h.internalError(w, "Error fetching journal entry", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entry); err != nil {
		h.internalError(w, "Error fetching journal entry", err)
	}
}

func (h *JournalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "entryID")

	err := h.store.Delete(id)
	if errors.Is(err, services.ErrEntryNotFound) {
		writeError(w, http.StatusNotFound, msgEntryNotFound)
		return
	}
	if err != nil {
		h.internalError(w, "Error deleting journal entry", err)
		return
	}
	h.metrics.RecordEntryDeleted()
	h.log.WithField("entry_id", id).Info("journal entry deleted")

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: msgEntryDeleted})
}

// AnalyzeText previews the analysis for text without storing anything.
// A body without "text" is treated as empty text.
func (h *JournalHandler) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	analysis := h.analyzer.AnalyzePreview(context.WithoutCancel(r.Context()), req.Text)
	if err := writeJSON(w, http.StatusOK, analysis); err != nil {
		h.internalError(w, "Error analyzing text", err)
	}
}

func (h *JournalHandler) internalError(w http.ResponseWriter, prefix string, err error) {
	h.log.WithError(err).Error(prefix)
	writeError(w, http.StatusInternalServerError, fmt.Sprintf("%s: %v", prefix, err))
}
