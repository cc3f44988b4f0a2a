// pkg/core/match.go
package core

import (
	"fmt"
	"strings"
)

// MatchMode controls how a listing line is compared against the query
type MatchMode string

const (
	// MatchLine accepts a line when the query appears anywhere in it
	MatchLine MatchMode = "line"
	// MatchName accepts a line only when the parsed name contains the query
	MatchName MatchMode = "name"
)

// ParseMatchMode validates a mode name. The empty string selects MatchLine.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchLine:
		return MatchLine, nil
	case MatchName:
		return MatchName, nil
	default:
		return "", fmt.Errorf("unknown match mode %q (want %q or %q)", s, MatchLine, MatchName)
	}
}

// PreFilter reports whether a raw line can match before it is tokenized
func (m MatchMode) PreFilter(line, query string) bool {
	if m == MatchName {
		return true
	}
	return strings.Contains(line, query)
}

// Accept reports whether a parsed name is accepted for query
func (m MatchMode) Accept(name, query string) bool {
	if m == MatchName {
		return strings.Contains(name, query)
	}
	return true
}
