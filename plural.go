package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

// Plural templates hold branches separated by unescaped "|"; "||" is a
// literal pipe. Every branch except the last must start with a {guard}:
//
//	{0} no apples | {1} one apple | {2..4} a few apples | many apples
//
// Guards are discrete sets {1, 2, 3}, inclusive ranges {2..4}, open ranges
// {..3} and {5..}. The final branch is the default, used when no guard
// matches the count.

type guardKind int

const (
	guardValues guardKind = iota
	guardRange
	guardRangeFrom
	guardRangeTo
)

type pluralGuard struct {
	kind   guardKind
	values []int64
	from   int64
	to     int64
}

func (g pluralGuard) matches(n int64) bool {
	switch g.kind {
	case guardValues:
		for _, value := range g.values {
			if value == n {
				return true
			}
		}
		return false
	case guardRange:
		return n >= g.from && n <= g.to
	case guardRangeFrom:
		return n >= g.from
	case guardRangeTo:
		return n <= g.to
	default:
		return false
	}
}

type pluralBranch struct {
	guard pluralGuard
	text  string
}

type pluralTemplate struct {
	branches      []pluralBranch
	defaultBranch string
}

// pick evaluates the guards in declaration order and returns the first match.
// A missing or non-comparable count falls through to the default branch.
func (t *pluralTemplate) pick(ctx *Context) string {
	if n, ok := ctx.Count(); ok {
		for _, branch := range t.branches {
			if branch.guard.matches(n) {
				return branch.text
			}
		}
	}
	return t.defaultBranch
}

// isPluralTemplate reports whether the template holds at least one unescaped
// branch separator.
func isPluralTemplate(template string) bool {
	for i := 0; i < len(template); i++ {
		if template[i] != '|' {
			continue
		}
		if i+1 < len(template) && template[i+1] == '|' {
			i++
			continue
		}
		return true
	}
	return false
}

// parsePluralTemplate splits the template into branches and parses each guard.
// Escaped pipes collapse to a literal "|" inside branch text.
func parsePluralTemplate(template string) (*pluralTemplate, error) {
	segments := splitBranches(template)

	parsed := &pluralTemplate{}
	for i, segment := range segments[:len(segments)-1] {
		branch, err := parseBranch(template, i, segment)
		if err != nil {
			return nil, err
		}
		parsed.branches = append(parsed.branches, branch)
	}

	last := segments[len(segments)-1]
	if guard, _, found := cutGuard(last); found {
		if _, err := parseGuard(guard); err == nil {
			return nil, &TemplateError{
				Template: template,
				Reason:   "final branch carries a guard, expected an unguarded default branch",
			}
		}
	}
	parsed.defaultBranch = last

	return parsed, nil
}

func splitBranches(template string) []string {
	var segments []string
	var current strings.Builder
	for i := 0; i < len(template); i++ {
		ch := template[i]
		if ch != '|' {
			current.WriteByte(ch)
			continue
		}
		if i+1 < len(template) && template[i+1] == '|' {
			current.WriteByte('|')
			i++
			continue
		}
		segments = append(segments, strings.TrimSpace(current.String()))
		current.Reset()
	}
	segments = append(segments, strings.TrimSpace(current.String()))
	return segments
}

// cutGuard splits "{guard} text" into its parts. found is false when the
// segment does not open with a brace or the brace never closes.
func cutGuard(segment string) (guard, text string, found bool) {
	if !strings.HasPrefix(segment, "{") {
		return "", "", false
	}
	end := strings.IndexByte(segment, '}')
	if end < 0 {
		return "", "", false
	}
	return segment[1:end], strings.TrimSpace(segment[end+1:]), true
}

func parseBranch(template string, index int, segment string) (pluralBranch, error) {
	guardSrc, text, found := cutGuard(segment)
	if !found {
		return pluralBranch{}, &TemplateError{
			Template: template,
			Reason:   fmt.Sprintf("branch %d: expected a {guard} prefix in %q", index+1, segment),
		}
	}
	guard, err := parseGuard(guardSrc)
	if err != nil {
		return pluralBranch{}, &TemplateError{
			Template: template,
			Reason:   fmt.Sprintf("branch %d: %v", index+1, err),
		}
	}
	return pluralBranch{guard: guard, text: text}, nil
}

func parseGuard(src string) (pluralGuard, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return pluralGuard{}, fmt.Errorf("empty guard")
	}

	if sep := strings.Index(src, ".."); sep >= 0 {
		low := strings.TrimSpace(src[:sep])
		high := strings.TrimSpace(src[sep+2:])
		switch {
		case low == "" && high == "":
			return pluralGuard{}, fmt.Errorf("range guard %q needs at least one bound", src)
		case low == "":
			to, err := parseGuardValue(high)
			if err != nil {
				return pluralGuard{}, err
			}
			return pluralGuard{kind: guardRangeTo, to: to}, nil
		case high == "":
			from, err := parseGuardValue(low)
			if err != nil {
				return pluralGuard{}, err
			}
			return pluralGuard{kind: guardRangeFrom, from: from}, nil
		default:
			from, err := parseGuardValue(low)
			if err != nil {
				return pluralGuard{}, err
			}
			to, err := parseGuardValue(high)
			if err != nil {
				return pluralGuard{}, err
			}
			if from > to {
				return pluralGuard{}, fmt.Errorf("range guard %q is inverted", src)
			}
			return pluralGuard{kind: guardRange, from: from, to: to}, nil
		}
	}

	parts := strings.Split(src, ",")
	values := make([]int64, 0, len(parts))
	for _, part := range parts {
		value, err := parseGuardValue(strings.TrimSpace(part))
		if err != nil {
			return pluralGuard{}, err
		}
		values = append(values, value)
	}
	return pluralGuard{kind: guardValues, values: values}, nil
}

func parseGuardValue(src string) (int64, error) {
	value, err := strconv.ParseInt(src, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("guard value %q is not an integer", src)
	}
	return value, nil
}
