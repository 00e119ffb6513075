package trace

import "sync"

// TraceLevel controls the verbosity of attempt tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelAttempts captures every construction attempt.
	TraceLevelAttempts TraceLevel = "attempts"
)

var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:     true,
	TraceLevelAttempts: true,
	"":                 true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// GenerationTrace collects attempt records during a run. Safe for use by
// concurrent workers.
type GenerationTrace struct {
	Config TraceConfig

	mu       sync.Mutex
	attempts []AttemptRecord
}

// NewGenerationTrace creates a GenerationTrace ready for recording.
func NewGenerationTrace(config TraceConfig) *GenerationTrace {
	return &GenerationTrace{
		Config:   config,
		attempts: make([]AttemptRecord, 0),
	}
}

// Enabled reports whether records are kept.
func (gt *GenerationTrace) Enabled() bool {
	return gt != nil && gt.Config.Level == TraceLevelAttempts
}

// RecordAttempt appends an attempt record. No-op unless Enabled.
func (gt *GenerationTrace) RecordAttempt(record AttemptRecord) {
	if !gt.Enabled() {
		return
	}
	gt.mu.Lock()
	gt.attempts = append(gt.attempts, record)
	gt.mu.Unlock()
}

// Attempts returns a copy of the records in recording order.
func (gt *GenerationTrace) Attempts() []AttemptRecord {
	if gt == nil {
		return nil
	}
	gt.mu.Lock()
	defer gt.mu.Unlock()
	return append([]AttemptRecord(nil), gt.attempts...)
}
