package detection

import (
	"strings"

	"github.com/turtacn/CrawlValue-Intelligence/pkg/errors"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// Signature identifies one known AI-crawler operator by its user-agent
// substrings.
type Signature struct {
	Company    string
	BotType    string
	Patterns   []string
	RiskLevel  common.RiskLevel
	Commercial bool
}

// compiledSignature carries the lowercase patterns pre-computed at registry
// construction so Lookup never re-folds case on the hot path.
type compiledSignature struct {
	sig      Signature
	patterns []string // lowercase, same order as sig.Patterns
}

// Registry is an ordered collection of crawler signatures.  Order is
// authoritative: Lookup walks the registry front to back and the first
// signature whose pattern matches wins, regardless of match length or
// position.  The registry is immutable after construction and safe for
// concurrent use.
type Registry struct {
	entries []compiledSignature
}

// NewRegistry builds a Registry from the given signatures.  Entries without a
// company name or without patterns are rejected; empty patterns would match
// every agent.
func NewRegistry(signatures []Signature) (*Registry, error) {
	if len(signatures) == 0 {
		return nil, errors.New(errors.ErrCodeRegistryEmpty, "signature registry requires at least one entry")
	}
	entries := make([]compiledSignature, 0, len(signatures))
	for _, sig := range signatures {
		if sig.Company == "" {
			return nil, errors.New(errors.ErrCodeSignatureInvalid, "signature company must not be empty")
		}
		if len(sig.Patterns) == 0 {
			return nil, errors.New(errors.ErrCodeSignatureInvalid, "signature has no patterns").
				WithDetail(sig.Company)
		}
		lowered := make([]string, len(sig.Patterns))
		for i, p := range sig.Patterns {
			if p == "" {
				return nil, errors.New(errors.ErrCodeSignatureInvalid, "signature pattern must not be empty").
					WithDetail(sig.Company)
			}
			lowered[i] = strings.ToLower(p)
		}
		entries = append(entries, compiledSignature{sig: sig, patterns: lowered})
	}
	return &Registry{entries: entries}, nil
}

// Len returns the number of signatures in the registry.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Lookup scans the registry for the first signature with a case-insensitive
// substring match against userAgent.  It returns the matched signature and
// the original (unfolded) pattern that hit, or ok=false when no signature
// matches.
func (r *Registry) Lookup(userAgent string) (Signature, string, bool) {
	if userAgent == "" {
		return Signature{}, "", false
	}
	ua := strings.ToLower(userAgent)
	for _, entry := range r.entries {
		for i, p := range entry.patterns {
			if strings.Contains(ua, p) {
				return entry.sig, entry.sig.Patterns[i], true
			}
		}
	}
	return Signature{}, "", false
}

//Personal.AI order the ending
