// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidDrugName reports a drug name outside the allowed charset.
var ErrInvalidDrugName = errors.New("invalid drug name")

// drugNamePattern is the allowed charset for drug names: the drugs table
// stores display names in upper case with digits and hyphens only.
var drugNamePattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

// CompileMatcher builds a case-insensitive, word-bounded matcher for a drug
// name: "ASPIRIN" matches "aspirin" and "(Aspirin)" but not "ASPIRINA" or
// "ACETYLASPIRIN". The name is validated before any pattern is built so an
// unexpected character never reaches the regexp engine.
func CompileMatcher(name string) (*regexp.Regexp, error) {
	if !drugNamePattern.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDrugName, name)
	}
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
}
