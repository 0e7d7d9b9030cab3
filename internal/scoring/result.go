package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Profile is the categorical label assigned to a final score range.
type Profile string

const (
	ProfileBalanced   Profile = "Balanced Performer"
	ProfileDeveloping Profile = "Developing Professional"
	ProfileEmerging   Profile = "Emerging Talent"
)

// Band groups a score or profile for display.
type Band int

const (
	BandLow  Band = iota // below ThresholdDeveloping
	BandMid              // ThresholdDeveloping up to ThresholdBalanced
	BandHigh             // ThresholdBalanced and above
)

// Band returns the display band for the profile.
func (p Profile) Band() Band {
	switch p {
	case ProfileBalanced:
		return BandHigh
	case ProfileDeveloping:
		return BandMid
	default:
		return BandLow
	}
}

// BandFor returns the display band for a score.
func BandFor(score float64) Band {
	switch {
	case score >= ThresholdBalanced:
		return BandHigh
	case score >= ThresholdDeveloping:
		return BandMid
	default:
		return BandLow
	}
}

// SectionScore is the score for one fixed section label.
type SectionScore struct {
	Label string
	Score float64
}

// DisplayLabel turns a camelCase label into words, e.g. "timeManagement" -> "Time Management".
func (s SectionScore) DisplayLabel() string {
	var b strings.Builder
	for i, r := range s.Label {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SectionScores keeps section scores in their fixed order.
type SectionScores []SectionScore

// Get returns the score for label.
func (ss SectionScores) Get(label string) (float64, bool) {
	for _, s := range ss {
		if s.Label == label {
			return s.Score, true
		}
	}
	return 0, false
}

// Map returns the scores keyed by label.
func (ss SectionScores) Map() map[string]float64 {
	m := make(map[string]float64, len(ss))
	for _, s := range ss {
		m[s.Label] = s.Score
	}
	return m
}

// MarshalJSON writes the scores as a JSON object, preserving order.
func (ss SectionScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range ss {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.Score)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of label to score in document order.
func (ss *SectionScores) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("section scores: expected object, got %v", tok)
	}

	var out SectionScores
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("section scores: expected key, got %v", tok)
		}
		var score float64
		if err := dec.Decode(&score); err != nil {
			return fmt.Errorf("section scores: %s: %w", label, err)
		}
		out = append(out, SectionScore{Label: label, Score: score})
	}
	*ss = out
	return nil
}

// Result is the outcome of a completed assessment. Immutable once built.
type Result struct {
	OverallScore    int           `json:"overallScore"`
	SectionScores   SectionScores `json:"sectionScores"`
	Profile         Profile       `json:"profile"`
	Strengths       []string      `json:"strengths"`
	Improvements    []string      `json:"improvements"`
	Recommendations []string      `json:"recommendations"`
}
