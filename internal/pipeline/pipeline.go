package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mjc-ai/haksabot/internal/events"
	"github.com/mjc-ai/haksabot/internal/history"
	"github.com/mjc-ai/haksabot/internal/prompt"
	"github.com/mjc-ai/haksabot/internal/retrieval"
	"github.com/mjc-ai/haksabot/internal/translate"
)

// DefaultSession keys history for requests that do not carry a session ID.
const DefaultSession = "default"

// Generator is the language model collaborator.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Result is the response envelope returned to the transport layer. Domain
// failures surface here as Success=false, never as an error.
type Result struct {
	Response string
	Success  bool
}

// Request states, logged as each stage completes. A request terminates in
// answered or failed; generation failure is the only aborting failure.
const (
	stateReceived     = "received"
	stateContextBuilt = "context-built"
	stateRetrieved    = "retrieved"
	stateComposed     = "composed"
	stateGenerating   = "generating"
	stateAnswered     = "answered"
	stateFailed       = "failed"
)

// Pipeline turns a raw user message into a grounded answer: translate in,
// read context, retrieve documents, compose the prompt, call the model,
// gate the output, record the turn, translate out.
type Pipeline struct {
	history   *history.Store
	retriever *retrieval.Retriever
	llm       Generator
	boundary  *translate.Boundary
	events    *events.Publisher
	topK      int
	logger    *slog.Logger
}

// New builds a pipeline. boundary and publisher may be nil: translation and
// telemetry are optional stages, retrieval degrades on its own.
func New(h *history.Store, r *retrieval.Retriever, llm Generator, boundary *translate.Boundary, publisher *events.Publisher, topK int, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		history:   h,
		retriever: r,
		llm:       llm,
		boundary:  boundary,
		events:    publisher,
		topK:      topK,
		logger:    logger,
	}
}

// Process handles one chat request end to end.
func (p *Pipeline) Process(ctx context.Context, message, sessionID string) Result {
	if sessionID == "" {
		sessionID = DefaultSession
	}
	requestID := uuid.New().String()[:8]

	log := p.logger.With("request_id", requestID, "session_id", sessionID)
	log.Info("chat request", "state", stateReceived, "message_len", len(message))

	// Translate before retrieval so queries are always working-language.
	working, lang, translated := p.boundary.Inbound(ctx, message)

	// Hold the session lock from context read through history append so
	// concurrent requests for the same session cannot interleave turns.
	release := p.history.Acquire(sessionID)
	defer release()

	contextWindow := p.history.Context(sessionID)
	log.Debug("context window built", "state", stateContextBuilt, "context_len", len(contextWindow))

	snippets := p.retriever.Search(ctx, working, p.topK)
	log.Debug("documents retrieved", "state", stateRetrieved, "snippets", len(snippets))

	bundle := prompt.Compose(working, snippets, contextWindow)
	log.Debug("prompt composed", "state", stateComposed, "mode", bundle.Mode.String(), "prompt_len", len(bundle.User))

	log.Debug("calling model", "state", stateGenerating)
	output, err := p.llm.Generate(ctx, bundle.System, bundle.User)

	response, ok := finalize(output, err)
	if !ok {
		log.Error("generation failed", "state", stateFailed, "error", err)
		p.publish(events.SubjectFailed, requestID, sessionID, lang, bundle.Mode, len(snippets), false)
		return Result{Response: p.boundary.Outbound(ctx, response, lang), Success: false}
	}

	// History always stores working-language text for both sides, so the
	// context window stays consistent across input languages.
	p.history.Append(sessionID, working, response)

	log.Info("chat answered", "state", stateAnswered, "mode", bundle.Mode.String(), "lang", lang, "translated", translated)
	p.publish(events.SubjectAnswered, requestID, sessionID, lang, bundle.Mode, len(snippets), true)

	return Result{Response: p.boundary.Outbound(ctx, response, lang), Success: true}
}

func (p *Pipeline) publish(subject, requestID, sessionID, lang string, mode prompt.Mode, snippets int, success bool) {
	if p.events == nil {
		return
	}
	evt := events.ChatEvent{
		RequestID: requestID,
		SessionID: sessionID,
		Lang:      lang,
		Mode:      mode.String(),
		Snippets:  snippets,
		Success:   success,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := p.events.Publish(subject, evt); err != nil {
		p.logger.Warn("failed to publish chat event", "subject", subject, "error", err)
	}
}
