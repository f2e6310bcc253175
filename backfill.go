package companionsdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"go.uber.org/atomic"
)

// ──────────────────────────────────────────────
// Backfill/Migration Utility — idempotent batch annotator
// ──────────────────────────────────────────────

// KVStore is the minimal external key-value store the backfill utility
// persists through. Implementations live in the store/ package.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ErrKeyNotFound is returned by KVStore implementations for missing keys.
var ErrKeyNotFound = errors.New("companionsdk: key not found")

// BackfillStorageKey is the fixed key the annotated bundle is persisted
// under.
const BackfillStorageKey = "companion:detector:bundle"

// BackfillRequest is the explicit input to a backfill run. Habits and Goals
// are opaque host-app state carried through into the persisted snapshot
// unchanged.
type BackfillRequest struct {
	Bundle        *MigrationBundle
	Habits        json.RawMessage
	Goals         json.RawMessage
	Personality   *PersonalizationContext
	TargetVersion int
	StorageKey    string // default BackfillStorageKey
}

// BackfillResult mirrors the persisted snapshot back to the caller.
type BackfillResult struct {
	Messages         []Message     `json:"messages"`
	TrainingData     *TrainingData `json:"trainingData"`
	MigrationVersion int           `json:"_detectorMigrationVersion"`
}

// BackfillStats counts work across runs. Counters are atomic: re-invoking at
// the same target version from multiple goroutines is a supported no-op.
type BackfillStats struct {
	MessagesAnnotated atomic.Int64
	MessagesFailed    atomic.Int64
	RunsApplied       atomic.Int64
	RunsSkipped       atomic.Int64
}

// backfillSnapshot is the single document written to the store.
type backfillSnapshot struct {
	Messages         []Message               `json:"messages"`
	Habits           json.RawMessage         `json:"habits,omitempty"`
	Goals            json.RawMessage         `json:"goals,omitempty"`
	Personality      *PersonalizationContext `json:"personality,omitempty"`
	TrainingData     *TrainingData           `json:"trainingData,omitempty"`
	MigrationVersion int                     `json:"_detectorMigrationVersion"`
}

// Backfiller retrofits detection metadata onto historical assistant messages
// and persists the annotated bundle through a KVStore. Runs against the same
// storage key serialize on an internal mutex; callers migrating the same key
// from multiple processes must serialize externally.
type Backfiller struct {
	store KVStore
	mu    sync.Mutex
	Stats BackfillStats
}

// NewBackfiller creates a backfiller over the given store.
func NewBackfiller(store KVStore) *Backfiller {
	return &Backfiller{store: store}
}

// BackfillDetection annotates every assistant message lacking detection
// metadata, increments emotion counters for labeled results, stamps the
// target version, and persists the whole snapshot as one write.
//
// Idempotence: when the bundle already carries a version at or above the
// target, the input is returned unchanged and nothing is written.
// Per-message classification failures are isolated: the message gets an
// empty detection record and the batch continues.
func (b *Backfiller) BackfillDetection(ctx context.Context, req BackfillRequest) (*BackfillResult, error) {
	if req.Bundle == nil {
		return nil, errors.New("companionsdk: backfill: nil bundle")
	}
	key := req.StorageKey
	if key == "" {
		key = BackfillStorageKey
	}

	if req.Bundle.MigrationVersion >= req.TargetVersion {
		b.Stats.RunsSkipped.Inc()
		return &BackfillResult{
			Messages:         req.Bundle.Messages,
			TrainingData:     req.Bundle.TrainingData,
			MigrationVersion: req.Bundle.MigrationVersion,
		}, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	messages := append([]Message(nil), req.Bundle.Messages...)
	training := req.Bundle.TrainingData
	if training == nil {
		training = &TrainingData{}
	}
	if training.EmotionCounts == nil {
		training.EmotionCounts = map[string]int{}
	}

	annotated := 0
	for i := range messages {
		if messages[i].Role != RoleAssistant || messages[i].Detection != nil {
			continue
		}
		source := nearestPrecedingUser(messages, i)
		det := b.safeDetect(source)
		messages[i].Detection = det
		annotated++
		if det.Label.IsNone() {
			continue
		}
		b.Stats.MessagesAnnotated.Inc()
		training.EmotionCounts[det.Label.TrainingKey()]++
		if req.Personality != nil {
			if req.Personality.ConversationHistory.EmotionCounts == nil {
				req.Personality.ConversationHistory.EmotionCounts = map[string]int{}
			}
			req.Personality.ConversationHistory.EmotionCounts[det.Label.TrainingKey()]++
		}
	}

	snapshot := backfillSnapshot{
		Messages:         messages,
		Habits:           req.Habits,
		Goals:            req.Goals,
		Personality:      req.Personality,
		TrainingData:     training,
		MigrationVersion: req.TargetVersion,
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("companionsdk: backfill: marshal snapshot: %w", err)
	}
	if err := b.store.Set(ctx, key, string(raw)); err != nil {
		return nil, fmt.Errorf("companionsdk: backfill: persist snapshot: %w", err)
	}

	b.Stats.RunsApplied.Inc()
	log.Printf("[Backfill] annotated %d message(s), version %d -> %d",
		annotated, req.Bundle.MigrationVersion, req.TargetVersion)

	return &BackfillResult{
		Messages:         messages,
		TrainingData:     training,
		MigrationVersion: req.TargetVersion,
	}, nil
}

// nearestPrecedingUser returns the content of the closest user message
// before index i, or "".
func nearestPrecedingUser(messages []Message, i int) string {
	for j := i - 1; j >= 0; j-- {
		if messages[j].Role == RoleUser {
			return messages[j].Content
		}
	}
	return ""
}

// safeDetect classifies one source message, isolating any panic to an empty
// detection record so a single bad message never aborts the batch.
func (b *Backfiller) safeDetect(source string) (det *Detection) {
	defer func() {
		if r := recover(); r != nil {
			b.Stats.MessagesFailed.Inc()
			log.Printf("[Backfill] classification failed, recording empty detection: %v", r)
			det = &Detection{Label: LabelNone}
		}
	}()
	if source == "" {
		return &Detection{Label: LabelNone}
	}
	label, matched := labelWithTrigger(source)
	return &Detection{Label: label, Matched: matched}
}
