// Package diagnostic is the short self-assessment quiz offered next to the
// inspection simulator. One option per question, no phases.
package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"repse-simulator/internal/kvstore"
	"repse-simulator/internal/model"
)

// StorageKey holds the latest diagnostic and the user type it was taken as.
const StorageKey = "cumplimiento_repse_data"

type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Result is a scored diagnostic. The three issue lists hold question texts.
type Result struct {
	Score          int               `json:"score"`
	MaxScore       int               `json:"maxScore"`
	CriticalIssues []string          `json:"criticalIssues"`
	Warnings       []string          `json:"warnings"`
	Compliant      []string          `json:"compliant"`
	UserType       model.ProfileType `json:"userType"`
	CompletedAt    time.Time         `json:"completedAt"`
	Answers        map[string]string `json:"answers"`
}

// Percentage is Score over MaxScore, rounded; 0 when MaxScore is 0.
func (r *Result) Percentage() int {
	if r.MaxScore <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(r.Score) / float64(r.MaxScore)))
}

// Level classifies the unrounded percentage: 80 and above high, 50 and
// above medium. 79.6% is medium even though Percentage shows 80.
func (r *Result) Level() Level {
	switch {
	case r.MaxScore <= 0:
		return LevelLow
	case 100*r.Score >= 80*r.MaxScore:
		return LevelHigh
	case 100*r.Score >= 50*r.MaxScore:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Evaluate scores answers (question id to option value) for userType.
// Unanswered questions still count toward MaxScore. Answers for questions
// that do not apply are dropped.
func Evaluate(userType model.ProfileType, answers map[string]string, completedAt time.Time) (*Result, error) {
	if !userType.IsValid() {
		return nil, fmt.Errorf("unknown user type %q", userType)
	}
	r := &Result{
		CriticalIssues: []string{},
		Warnings:       []string{},
		Compliant:      []string{},
		UserType:       userType,
		CompletedAt:    completedAt.UTC(),
		Answers:        map[string]string{},
	}
	for _, q := range Questions(userType) {
		max := q.MaxScore()
		r.MaxScore += max
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := q.Option(value)
		if !ok {
			return nil, fmt.Errorf("question %s has no option %q", q.ID, value)
		}
		r.Answers[q.ID] = value
		r.Score += opt.Score
		switch {
		case opt.Critical:
			r.CriticalIssues = append(r.CriticalIssues, q.Text)
		case opt.Score > 0 && opt.Score < max:
			r.Warnings = append(r.Warnings, q.Text)
		case opt.Score == max:
			r.Compliant = append(r.Compliant, q.Text)
		}
	}
	return r, nil
}

// Data is the persisted document.
type Data struct {
	UserType         model.ProfileType `json:"userType,omitempty"`
	DiagnosticResult *Result           `json:"diagnosticResult"`
	LastUpdated      time.Time         `json:"lastUpdated"`
}

// Store persists the latest diagnostic.
type Store struct {
	kv     kvstore.Store
	logger *zap.Logger
}

func NewStore(kv kvstore.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger}
}

// Load returns the stored data, or an empty Data when nothing usable is
// stored.
func (s *Store) Load(ctx context.Context) Data {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.logger.Warn("Failed to read diagnostic", zap.Error(err))
		}
		return Data{}
	}
	var d Data
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		s.logger.Warn("Discarding corrupt diagnostic", zap.Error(err))
		return Data{}
	}
	return d
}

// Save stores r as the latest diagnostic.
func (s *Store) Save(ctx context.Context, r *Result) error {
	d := Data{UserType: r.UserType, DiagnosticResult: r, LastUpdated: time.Now().UTC()}
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode diagnostic: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("save diagnostic: %w", err)
	}
	return nil
}
