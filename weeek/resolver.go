// ABOUTME: Name-resolution strategies for turning human-supplied names into remote entities.
// ABOUTME: Provides exact-then-substring matching plus the distinct first-substring strategy, never unified.

package weeek

import (
	"strconv"
	"strings"
)

// Candidate is one entry in a resolution candidate set. IDs are formatted as
// strings so numeric board ids and opaque user ids share one representation
// in error messages.
type Candidate struct {
	ID   string
	Name string
}

// ResolveName matches query against the candidates' names, case-insensitively.
//
// When exactly one candidate's name equals the query, that candidate is
// returned alone; an exact match takes precedence over any substring matches.
// Otherwise every candidate whose name contains the query is returned, in the
// candidate set's original order. The caller decides how to react to each
// cardinality: zero means not found, many means ambiguous.
//
// Matching is exact-then-substring only; there is deliberately no
// edit-distance fuzziness.
func ResolveName(query string, candidates []Candidate) []Candidate {
	q := strings.ToLower(query)

	var exact []Candidate
	var partial []Candidate
	for _, c := range candidates {
		name := strings.ToLower(c.Name)
		if name == q {
			exact = append(exact, c)
		}
		if strings.Contains(name, q) {
			partial = append(partial, c)
		}
	}

	if len(exact) == 1 {
		return exact
	}
	return partial
}

// FirstSubstring returns the first candidate whose name contains the query,
// case-insensitively.
//
// This is the strategy the task-creation workflow uses for columns: first
// substring match wins, with no exact-over-substring precedence and no
// ambiguity detection. It differs from ResolveName on purpose; the two
// strategies have observably different outcomes and must stay separate.
func FirstSubstring(query string, candidates []Candidate) (Candidate, bool) {
	q := strings.ToLower(query)
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Name), q) {
			return c, true
		}
	}
	return Candidate{}, false
}

// resolveOne runs ResolveName and folds the zero/many cardinalities into the
// error taxonomy, leaving exactly-one as the success case.
func resolveOne(query, scope string, candidates []Candidate) (Candidate, error) {
	matches := ResolveName(query, candidates)
	switch len(matches) {
	case 0:
		return Candidate{}, newNotFoundError(query, scope)
	case 1:
		return matches[0], nil
	default:
		return Candidate{}, newAmbiguousError(query, scope, matches)
	}
}

// Candidate constructors for each entity kind.

func columnCandidates(cols []Column) []Candidate {
	out := make([]Candidate, len(cols))
	for i, col := range cols {
		out[i] = Candidate{ID: strconv.Itoa(col.ID), Name: col.Name}
	}
	return out
}

func projectCandidates(projects []Project) []Candidate {
	out := make([]Candidate, len(projects))
	for i, p := range projects {
		out[i] = Candidate{ID: strconv.Itoa(p.ID), Name: p.Name}
	}
	return out
}

func boardCandidates(boards []BoardSummary) []Candidate {
	out := make([]Candidate, len(boards))
	for i, b := range boards {
		out[i] = Candidate{ID: strconv.Itoa(b.ID), Name: b.Name}
	}
	return out
}

func userCandidates(users []User) []Candidate {
	out := make([]Candidate, len(users))
	for i, u := range users {
		out[i] = Candidate{ID: u.ID, Name: u.Name()}
	}
	return out
}
