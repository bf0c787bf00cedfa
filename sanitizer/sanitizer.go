// FILE: lixenwraith/dailylog/sanitizer/sanitizer.go
// Package sanitizer rewrites runes that would break a one-line text log record,
// using composable filter/transform rules.
package sanitizer

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Matches runes not classified as printable by strconv.IsPrint
	FilterControl                         // Matches control characters (unicode.IsControl)
	FilterLineBreak                       // Matches '\n', '\r', U+0085, U+2028, U+2029
)

// Transform flags for character transformation
const (
	TransformStrip     uint64 = 1 << iota // Removes the character
	TransformHexEncode                    // Encodes the character's UTF-8 bytes as "<XXYY>"
	TransformSpace                        // Replaces the character with a single space
)

// PolicyPreset defines pre-configured sanitization policies
type PolicyPreset string

const (
	PolicyRaw   PolicyPreset = "raw"   // Passthrough
	PolicyTxt   PolicyPreset = "txt"   // Hex encode anything non-printable
	PolicyLine  PolicyPreset = "line"  // Hex encode line breaks only
	PolicyStrip PolicyPreset = "strip" // Line breaks become spaces, other controls are dropped
)

type rule struct {
	filter    uint64
	transform uint64
}

var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:  {},
	PolicyTxt:  {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyLine: {{filter: FilterLineBreak, transform: TransformHexEncode}},
	PolicyStrip: {
		{filter: FilterLineBreak, transform: TransformSpace},
		{filter: FilterControl, transform: TransformStrip},
	},
}

// filterOrder keeps filter evaluation deterministic
var filterOrder = []uint64{FilterLineBreak, FilterControl, FilterNonPrintable}

var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterLineBreak: func(r rune) bool {
		switch r {
		case '\n', '\r', '\u0085', '\u2028', '\u2029':
			return true
		}
		return false
	},
}

// Sanitizer provides chainable text sanitization.
// Rules are fixed once built; Sanitize is safe for concurrent use.
type Sanitizer struct {
	rules []rule
}

// New creates a passthrough Sanitizer
func New() *Sanitizer {
	return &Sanitizer{}
}

// Rule adds a custom rule (earliest rule applies first)
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy appends the rules of a preset
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Sanitize applies all configured rules to the input string
func (s *Sanitizer) Sanitize(data string) string {
	if len(s.rules) == 0 || !s.needsWork(data) {
		return data
	}

	var sb strings.Builder
	sb.Grow(len(data) + 8)
	for _, r := range data {
		matched := false
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				applyTransform(&sb, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// needsWork is the fast path for the common all-clean message
func (s *Sanitizer) needsWork(data string) bool {
	for _, r := range data {
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				return true
			}
		}
	}
	return false
}

func matchesFilter(r rune, filterMask uint64) bool {
	for _, flag := range filterOrder {
		if filterMask&flag != 0 && filterCheckers[flag](r) {
			return true
		}
	}
	return false
}

func applyTransform(sb *strings.Builder, r rune, transformMask uint64) {
	switch {
	case transformMask&TransformStrip != 0:
		// strip

	case transformMask&TransformSpace != 0:
		sb.WriteByte(' ')

	case transformMask&TransformHexEncode != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		sb.WriteByte('<')
		sb.WriteString(hex.EncodeToString(runeBytes[:n]))
		sb.WriteByte('>')

	default:
		sb.WriteRune(r)
	}
}
