package chat

import (
	"log/slog"
	"strings"
	"time"

	"github.com/saravenpi/folio/internal/models"
)

const (
	DefaultTypingDelay = 2 * time.Second
	DefaultReplyDelay  = 2 * time.Second
)

// StageKind identifies which half of a scripted reply a Stage performs.
type StageKind int

const (
	// StageTyping turns the typing indicator on.
	StageTyping StageKind = iota
	// StageReply turns the indicator off and appends the bot reply.
	StageReply
)

func (k StageKind) String() string {
	if k == StageReply {
		return "reply"
	}
	return "typing"
}

// Stage is a delayed callback requested by the engine. The host is
// expected to call Engine.Fire with it once Delay has elapsed.
type Stage struct {
	Kind    StageKind
	Delay   time.Duration
	Session uint64
	Count   int
}

// Engine is the scripted chat responder. It is not safe for concurrent
// use; all calls are expected to come from a single event loop.
type Engine struct {
	transcript  []models.ChatMessage
	input       string
	typing      bool
	session     uint64
	typingDelay time.Duration
	replyDelay  time.Duration
	logger      *slog.Logger
}

type Option func(*Engine)

func WithDelays(typing, reply time.Duration) Option {
	return func(e *Engine) {
		e.typingDelay = typing
		e.replyDelay = reply
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		typingDelay: DefaultTypingDelay,
		replyDelay:  DefaultReplyDelay,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reply returns the canned response for the n-th user message.
func Reply(n int) string {
	switch {
	case n <= 1:
		return "Sorry, this is fake. Get pranked lol. If you want to reach me, try going through LinkedIn"
	case n == 2:
		return "Seriously, I'm not real."
	default:
		return "bruh why r u so desperate"
	}
}

// SetInput replaces the pending input buffer.
func (e *Engine) SetInput(s string) {
	e.input = s
}

func (e *Engine) Input() string {
	return e.input
}

// CanSend reports whether the pending input would be accepted by Submit.
func (e *Engine) CanSend() bool {
	return strings.TrimSpace(e.input) != ""
}

func (e *Engine) Typing() bool {
	return e.typing
}

func (e *Engine) Session() uint64 {
	return e.session
}

// Transcript returns a copy of the conversation, oldest first.
func (e *Engine) Transcript() []models.ChatMessage {
	out := make([]models.ChatMessage, len(e.transcript))
	copy(out, e.transcript)
	return out
}

// UserMessageCount counts the user entries currently in the transcript.
func (e *Engine) UserMessageCount() int {
	n := 0
	for _, m := range e.transcript {
		if m.Sender == models.SenderUser {
			n++
		}
	}
	return n
}

// Submit appends text as a user message and returns the typing stage to
// schedule. Blank text is ignored and ok is false.
func (e *Engine) Submit(text string) (Stage, bool) {
	if strings.TrimSpace(text) == "" {
		return Stage{}, false
	}

	e.transcript = append(e.transcript, models.ChatMessage{Text: text, Sender: models.SenderUser})
	n := e.UserMessageCount()
	e.input = ""

	e.logger.Debug("chat: message submitted", "session", e.session, "count", n)

	return Stage{
		Kind:    StageTyping,
		Delay:   e.typingDelay,
		Session: e.session,
		Count:   n,
	}, true
}

// SubmitInput submits the pending input buffer.
func (e *Engine) SubmitInput() (Stage, bool) {
	return e.Submit(e.input)
}

// Fire applies a stage whose delay has elapsed. A typing stage returns the
// reply stage that must follow it. Stages from an earlier session are
// dropped without touching state.
func (e *Engine) Fire(s Stage) (Stage, bool) {
	if s.Session != e.session {
		e.logger.Debug("chat: discarding stale stage", "kind", s.Kind, "stage_session", s.Session, "session", e.session)
		return Stage{}, false
	}

	switch s.Kind {
	case StageTyping:
		e.typing = true
		return Stage{
			Kind:    StageReply,
			Delay:   e.replyDelay,
			Session: s.Session,
			Count:   s.Count,
		}, true
	case StageReply:
		e.typing = false
		e.transcript = append(e.transcript, models.ChatMessage{Text: Reply(s.Count), Sender: models.SenderBot})
	}
	return Stage{}, false
}

// Reset clears the conversation and invalidates every outstanding stage.
func (e *Engine) Reset() {
	e.transcript = nil
	e.input = ""
	e.typing = false
	e.session++
	e.logger.Debug("chat: session reset", "session", e.session)
}
