// Package chat implements the policy router: the deterministic decision
// layer that runs in front of the model.
//
// Every message goes through a fixed check sequence: detect language, staff-
// topic gate, attribute-access gate, full-report short-circuit, narrow staff
// analytics, and only then the model gateway with a single language-
// consistency re-check. The router is the only component that mutates a
// Session; the caller must serialize calls per session.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/sahla-io/dukkan/internal/analytics"
	"github.com/sahla-io/dukkan/internal/catalog"
	"github.com/sahla-io/dukkan/internal/lang"
	"github.com/sahla-io/dukkan/internal/llm"
	dukkanotel "github.com/sahla-io/dukkan/internal/otel"
	"github.com/sahla-io/dukkan/internal/policy"
	"github.com/sahla-io/dukkan/internal/prompt"
	"github.com/sahla-io/dukkan/internal/session"
)

var tracer = dukkanotel.Tracer("github.com/sahla-io/dukkan/internal/chat")

// Keyword families for the staff short-circuits. Matching is the same
// lowercased-substring heuristic the gates use.
var (
	reportKeywords  = []string{"report", "analytics"}
	revenueKeywords = []string{
		"revenue", "total revenue",
		"إيرادات", "الإيرادات", "إجمالي الإيرادات", "المبيعات", "إجمالي المبيعات", "تقرير المبيعات",
	}
	unitsKeywordPairs = [][2]string{
		{"units", "sold"},
		{"وحدات", "مباعة"},
		{"الوحدات", "المباعة"},
	}
	bestSellerKeywords = []string{
		"best seller", "top seller", "most sold", "most selling",
		"الأكثر مبيعاً", "أفضل مبيعاً", "الأكثر مبيعا", "أكثر منتج",
	}
)

// Config holds the router's collaborators.
type Config struct {
	Store       *catalog.Store
	Provider    llm.Provider
	Model       string
	Temperature float64
	MaxTokens   int
	Now         func() time.Time // report clock; nil = time.Now
}

// Router decides, per message, between rejection, deterministic answer, and
// model-delegated answer.
type Router struct {
	store        *catalog.Store
	gate         *policy.Gate
	engine       *analytics.Engine
	provider     llm.Provider
	model        string
	temperature  float64
	maxTokens    int
	now          func() time.Time
	systemPrompt string
}

// NewRouter builds a router over the given catalog and provider. The system
// prompt is built once from the catalog snapshot; the store is immutable, so
// the memoized prompt cannot go stale.
func NewRouter(cfg Config) *Router {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Router{
		store:        cfg.Store,
		gate:         policy.NewGate(),
		engine:       analytics.NewEngine(cfg.Store),
		provider:     cfg.Provider,
		model:        cfg.Model,
		temperature:  cfg.Temperature,
		maxTokens:    cfg.MaxTokens,
		now:          now,
		systemPrompt: prompt.Build(cfg.Store),
	}
}

// Engine exposes the analytics engine (used by the report command).
func (r *Router) Engine() *analytics.Engine { return r.engine }

// Process runs one message through the policy pipeline and returns the
// response text. Every path returns text; no error escapes.
//
// Transcript recording policy: policy rejections and the full-report
// short-circuit are NOT recorded to the transcript; narrow analytics answers
// and model answers ARE recorded as a (user, assistant) pair. The report
// asymmetry mirrors the deterministic report being a document rather than a
// conversational turn.
func (r *Router) Process(ctx context.Context, sess *session.Session, message string) string {
	inputLang := lang.Detect(message)
	role := sess.Role()

	ctx, span := tracer.Start(ctx, "chat.process",
		trace.WithAttributes(
			dukkanotel.ChatRole.String(role.String()),
			dukkanotel.ChatLanguage.String(inputLang.String()),
		))
	defer span.End()

	if rejection, ok := r.gate.CheckTopic(message, role); ok {
		r.logDecision(ctx, sess, "topic_rejected", inputLang)
		return rejection
	}

	if rejection, ok := r.gate.CheckAttribute(message, role); ok {
		r.logDecision(ctx, sess, "attribute_rejected", inputLang)
		return rejection
	}

	if role == policy.RoleStaff && containsAny(strings.ToLower(message), reportKeywords) {
		r.logDecision(ctx, sess, "full_report", inputLang)
		return r.engine.Report(r.now())
	}

	if answer, ok := r.staffAnalyticsAnswer(role, message, inputLang); ok {
		r.logDecision(ctx, sess, "analytics", inputLang)
		sess.Append(session.SpeakerUser, message)
		sess.Append(session.SpeakerAssistant, answer)
		return answer
	}

	return r.delegate(ctx, sess, message, inputLang)
}

// staffAnalyticsAnswer returns a deterministic answer for staff questions in
// the revenue, units, and best-seller keyword families. Deterministic
// answers keep the numbers exact instead of trusting the model with math.
func (r *Router) staffAnalyticsAnswer(role policy.Role, message string, l lang.Language) (string, bool) {
	if role != policy.RoleStaff {
		return "", false
	}
	lower := strings.ToLower(message)

	if containsAny(lower, revenueKeywords) {
		return r.engine.RevenueAnswer(l), true
	}
	for _, pair := range unitsKeywordPairs {
		if strings.Contains(lower, pair[0]) && strings.Contains(lower, pair[1]) {
			return r.engine.UnitsAnswer(l), true
		}
	}
	if containsAny(lower, bestSellerKeywords) {
		return r.engine.BestSellerAnswer(l), true
	}
	return "", false
}

// delegate sends the message to the model gateway with the system prompt and
// the prior transcript. If the candidate response comes back in the wrong
// language, one corrective call is issued with a language directive wrapped
// around the same question; the corrected response replaces the candidate
// and adds no extra transcript turn.
func (r *Router) delegate(ctx context.Context, sess *session.Session, message string, inputLang lang.Language) string {
	prior := sess.Turns()
	sess.Append(session.SpeakerUser, message)

	response, err := r.complete(ctx, prior, message)
	if err != nil {
		r.logServiceError(ctx, sess, err)
		return policy.Apology(inputLang)
	}

	if lang.Detect(response) != inputLang {
		r.logDecision(ctx, sess, "language_retry", inputLang)
		response, err = r.complete(ctx, prior, correctionContent(inputLang, message))
		if err != nil {
			r.logServiceError(ctx, sess, err)
			return policy.Apology(inputLang)
		}
	}

	sess.Append(session.SpeakerAssistant, response)
	r.logDecision(ctx, sess, "model", inputLang)
	return response
}

// complete issues one gateway call: system prompt, prior turns, then the
// user content. Fail-fast; no retries here.
func (r *Router) complete(ctx context.Context, prior []session.Turn, userContent string) (string, error) {
	messages := make([]llm.Message, 0, len(prior)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: r.systemPrompt})
	for _, turn := range prior {
		messages = append(messages, llm.Message{Role: turn.Speaker, Content: turn.Text})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userContent})

	resp, err := r.provider.Generate(ctx, &llm.Request{
		Model:       r.model,
		Messages:    messages,
		Temperature: r.temperature,
		MaxTokens:   r.maxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// correctionContent wraps the original question in a single-language
// directive for the one-shot corrective call.
func correctionContent(l lang.Language, message string) string {
	directive := "Respond ONLY in English. Do not include any Arabic."
	if l == lang.Arabic {
		directive = "أعد الإجابة باللغة العربية فقط ولا تستخدم الإنجليزية."
	}
	return directive + "\nQuestion: " + message
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (r *Router) logDecision(ctx context.Context, sess *session.Session, decision string, l lang.Language) {
	trace.SpanFromContext(ctx).SetAttributes(dukkanotel.ChatDecision.String(decision))
	log.Debug().
		Str("session_id", sess.ID()).
		Str("role", sess.Role().String()).
		Str("language", l.String()).
		Str("decision", decision).
		Func(dukkanotel.LogTraceFields(ctx)).
		Msg("chat decision")
}

// logServiceError reports the gateway failure to the operator channel. The
// cause never reaches the end user.
func (r *Router) logServiceError(ctx context.Context, sess *session.Session, err error) {
	log.Error().
		Err(err).
		Str("session_id", sess.ID()).
		Func(dukkanotel.LogTraceFields(ctx)).
		Msg("model gateway failure")
}
