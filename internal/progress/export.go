package progress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
	"golang.org/x/mod/semver"
)

// ExportVersion is the format version written by Export. Import accepts any
// document with the same major version.
const ExportVersion = "v1.0.0"

// Export is a portable snapshot of a user's progress.
type Export struct {
	Version         string                          `json:"version"`
	UserID          string                          `json:"userId"`
	ExportedAt      time.Time                       `json:"exportedAt"`
	PerformanceData map[Subject]*PerformanceMetrics `json:"performanceData"`
	SessionHistory  []*Session                      `json:"sessionHistory"`
	Recommendations []string                        `json:"recommendations"`
}

// Export returns metrics, session history and recommendations.
func (t *Tracker) Export() Export {
	history := t.SessionHistory()
	if history == nil {
		history = []*Session{}
	}
	return Export{
		Version:         ExportVersion,
		UserID:          t.userID,
		ExportedAt:      t.now(),
		PerformanceData: t.AllPerformanceMetrics(),
		SessionHistory:  history,
		Recommendations: t.Recommendations(),
	}
}

// Import replaces the committed history and metrics with those in an
// exported document. The open session, if any, is kept.
func (t *Tracker) Import(ctx context.Context, data []byte) error {
	if err := validateExport(data); err != nil {
		return err
	}

	var exp Export
	if err := json.Unmarshal(data, &exp); err != nil {
		return fmt.Errorf("decode export: %w", err)
	}
	if semver.Major(exp.Version) != semver.Major(ExportVersion) {
		return fmt.Errorf("unsupported export version %s (want %s.x)", exp.Version, semver.Major(ExportVersion))
	}

	performance := make(map[Subject]*PerformanceMetrics, len(exp.PerformanceData))
	for sub, m := range exp.PerformanceData {
		m.Subject = sub
		if !m.consistent() {
			return fmt.Errorf("metrics for %s: per-difficulty totals do not match overall totals", sub)
		}
		if err := m.normalize(); err != nil {
			return fmt.Errorf("metrics for %s: %w", sub, err)
		}
		performance[sub] = m
	}

	t.performance = performance
	t.history = exp.SessionHistory
	t.saveProgress(ctx)

	t.log.Info("imported progress",
		zap.String("from_user", exp.UserID),
		zap.Int("sessions", len(exp.SessionHistory)))
	return nil
}

const exportSchemaJSON = `{
	"type": "object",
	"required": ["version", "performanceData", "sessionHistory"],
	"properties": {
		"version": {"type": "string", "pattern": "^v[0-9]+\\.[0-9]+\\.[0-9]+$"},
		"userId": {"type": "string"},
		"performanceData": {
			"type": ["object", "null"],
			"propertyNames": {"enum": ["mathematics", "finance", "agriculture"]},
			"additionalProperties": {
				"type": "object",
				"required": ["totalAttempts", "totalCorrect", "byDifficulty"],
				"properties": {
					"totalAttempts": {"type": "integer", "minimum": 0},
					"totalCorrect": {"type": "integer", "minimum": 0},
					"byDifficulty": {
						"type": "object",
						"propertyNames": {"enum": ["beginner", "intermediate", "advanced"]},
						"additionalProperties": {
							"type": "object",
							"required": ["attempts", "correct"],
							"properties": {
								"attempts": {"type": "integer", "minimum": 0},
								"correct": {"type": "integer", "minimum": 0}
							}
						}
					}
				}
			}
		},
		"sessionHistory": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["sessionId", "subject", "difficulty", "startedAt"],
				"properties": {
					"subject": {"enum": ["mathematics", "finance", "agriculture"]},
					"difficulty": {"enum": ["beginner", "intermediate", "advanced"]},
					"successRate": {"type": "number", "minimum": 0, "maximum": 100},
					"attempts": {"type": ["array", "null"]}
				}
			}
		},
		"recommendations": {"type": ["array", "null"], "items": {"type": "string"}}
	}
}`

var (
	exportSchemaOnce sync.Once
	exportSchema     *jsonschema.Schema
	exportSchemaErr  error
)

func compiledExportSchema() (*jsonschema.Schema, error) {
	exportSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(exportSchemaJSON))
		if err != nil {
			exportSchemaErr = fmt.Errorf("parse export schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://progress-export.json"
		if err := c.AddResource(url, doc); err != nil {
			exportSchemaErr = fmt.Errorf("add export schema: %w", err)
			return
		}
		exportSchema, exportSchemaErr = c.Compile(url)
	})
	return exportSchema, exportSchemaErr
}

func validateExport(data []byte) error {
	sch, err := compiledExportSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid export JSON: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("export does not match schema: %w", err)
	}
	return nil
}
