package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// validateCatalog performs structural checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(c *Catalog) error {
	var errs []string

	if !semver.IsValid(c.Version) {
		errs = append(errs, fmt.Sprintf("version %q is not a valid semantic version (want e.g. v1.0.0)", c.Version))
	}

	if len(c.Sections) < 2 {
		errs = append(errs, "catalog needs an introduction section and at least one more section")
	}
	if len(c.Sections) > 0 && len(c.Sections[0].Scenarios) > 0 {
		errs = append(errs, fmt.Sprintf("first section %q is the introduction and must not have scenarios", c.Sections[0].ID))
	}

	sectionIDs := make(map[string]bool, len(c.Sections))
	scenarioIDs := make(map[string]bool)
	questionIDs := make(map[string]bool)

	for _, sec := range c.Sections {
		if sectionIDs[sec.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section ID: %q", sec.ID))
		}
		sectionIDs[sec.ID] = true

		for _, sc := range sec.Scenarios {
			if scenarioIDs[sc.ID] {
				errs = append(errs, fmt.Sprintf("duplicate scenario ID: %q", sc.ID))
			}
			scenarioIDs[sc.ID] = true

			for _, q := range sc.Questions {
				if questionIDs[q.ID] {
					errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
				}
				questionIDs[q.ID] = true
				errs = append(errs, validateQuestion(q)...)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateQuestion(q Question) []string {
	var errs []string
	prefix := fmt.Sprintf("question %q", q.ID)

	if !q.Type.Valid() {
		return []string{fmt.Sprintf("%s: unknown type %q", prefix, q.Type)}
	}

	switch {
	case q.Type.HasOptions() && len(q.Options) == 0:
		errs = append(errs, fmt.Sprintf("%s: %s questions need options", prefix, q.Type))
	case !q.Type.HasOptions() && len(q.Options) > 0:
		errs = append(errs, fmt.Sprintf("%s: %s questions must not have options", prefix, q.Type))
	}

	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt] {
			errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, opt))
		}
		seen[opt] = true
	}
	return errs
}
