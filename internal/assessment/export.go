package assessment

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/balancer/internal/scoring"
)

// Document is the JSON shape of a session, written on demand at completion.
type Document struct {
	SessionID       string             `json:"sessionId,omitempty"`
	CatalogVersion  string             `json:"catalogVersion,omitempty"`
	CurrentSection  int                `json:"currentSection"`
	CurrentScenario int                `json:"currentScenario"`
	Answers         map[string]any     `json:"answers"`
	TimeStarted     time.Time          `json:"timeStarted"`
	TimeSpent       map[string]float64 `json:"timeSpent,omitempty"` // seconds per section id
	Completed       bool               `json:"completed"`
	Result          *scoring.Result    `json:"result,omitempty"`
}

// Export renders s. Answers appear in their natural JSON shape.
func Export(s State) Document {
	doc := Document{
		CurrentSection:  s.CurrentSection,
		CurrentScenario: s.CurrentScenario,
		Answers:         make(map[string]any, len(s.Answers)),
		TimeStarted:     s.TimeStarted,
		Completed:       s.Completed,
		Result:          s.Result,
	}
	for id, a := range s.Answers {
		doc.Answers[id] = a.Value()
	}
	if len(s.TimeSpent) > 0 {
		doc.TimeSpent = make(map[string]float64, len(s.TimeSpent))
		for id, d := range s.TimeSpent {
			doc.TimeSpent[id] = d.Seconds()
		}
	}
	return doc
}

// WriteJSON writes d as indented JSON.
func WriteJSON(w io.Writer, d Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode session document: %w", err)
	}
	return nil
}

// WriteFile writes d to path, creating parent directories as needed.
func WriteFile(path string, d Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := WriteJSON(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
