package src

import (
	"fmt"
	"strings"
)

const PARENT = ".."
const INDEX_FILE = "index.html"

// Policy selects how a server treats URLs that climb above the document root.
type Policy int

const (
	// PolicyClamp drops any ".." that would leave the root and serves what remains.
	PolicyClamp Policy = iota
	// PolicyReject answers 404 for any URL whose walk leaves the root.
	PolicyReject
)

func (p Policy) String() string {
	switch p {
	case PolicyClamp:
		return "clamp"
	case PolicyReject:
		return "reject"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "clamp":
		return PolicyClamp, nil
	case "reject":
		return PolicyReject, nil
	}
	return PolicyClamp, fmt.Errorf("unknown traversal policy %q, expected clamp or reject", s)
}

// clampSegments pops on ".." but never below floor, so the first floor
// segments always survive. Everything else is pushed as is.
func clampSegments(segments []string, floor int) []string {
	stack := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg != PARENT {
			stack = append(stack, seg)
			continue
		}
		if len(stack) > floor {
			stack = stack[:len(stack)-1]
		}
	}
	return stack
}

// ClampPath normalizes a root-prefixed path such as "./www/a/../b.css". The first
// segment is the root and is never popped; excess ascent is silently dropped.
// A path without any "/" after the "./" prefix is returned unchanged.
func ClampPath(p string) string {
	prefix := ""
	rest := p
	if strings.HasPrefix(rest, "./") {
		prefix = "./"
		rest = rest[2:]
	}

	if !strings.Contains(rest, "/") {
		return p
	}

	return prefix + strings.Join(clampSegments(strings.Split(rest, "/"), 1), "/")
}

// Resolve maps a client URL path onto root using the clamp strategy. The result is
// always root followed by the clamped URL segments, and keeps a trailing "/" when
// the URL had one.
func Resolve(urlPath, root string) string {
	base := strings.TrimSuffix(root, "/")
	if base == "" || base == "." {
		base = "."
	}

	rel := strings.TrimPrefix(urlPath, "/")
	if rel == "" {
		return base + "/"
	}

	return base + "/" + strings.Join(clampSegments(strings.Split(rel, "/"), 0), "/")
}

// Join prefixes urlPath with root without any normalization. Used by the reject
// policy, where containment is decided by WithinDomain on the joined path.
func Join(urlPath, root string) string {
	return strings.TrimSuffix(root, "/") + "/" + strings.TrimPrefix(urlPath, "/")
}

func rootName(root string) string {
	trimmed := strings.TrimSuffix(root, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// WithinDomain reports whether the root-prefixed path p stays inside root.
//
// It walks the segments after root keeping a depth below the root. ".." climbs one
// level, any other named segment descends one. "." and empty segments do not move.
// One level above the root, a further ".." is refused and the only segment accepted
// is the root's own name, which re-enters it (./www/../www/a.css is allowed).
func WithinDomain(p, root string) bool {
	base := strings.TrimSuffix(root, "/")
	if !strings.HasPrefix(p, base) {
		return false
	}

	traversal := p[len(base):]
	if traversal == "" {
		return true
	}
	if !strings.HasPrefix(traversal, "/") {
		// "./wwwx/..." only shares a prefix with "./www"
		return false
	}

	name := rootName(base)
	depth := 0
	for _, seg := range strings.Split(traversal[1:], "/") {
		switch {
		case seg == "" || seg == ".":
			continue
		case seg == PARENT:
			if depth == -1 {
				return false
			}
			depth--
		case depth == -1:
			if seg != name {
				return false
			}
			depth++
		default:
			depth++
		}
	}

	return depth >= 0
}

// IndexPath appends the index file to resolved when the client asked for a directory
// with a trailing slash.
func IndexPath(resolved, urlPath string) string {
	if !strings.HasSuffix(urlPath, "/") {
		return resolved
	}
	if !strings.HasSuffix(resolved, "/") {
		resolved += "/"
	}
	return resolved + INDEX_FILE
}

// ContentPath turns a request URL into the on-disk path to open under the given
// policy. With PolicyReject an escaping URL yields ErrPathEscape.
func ContentPath(urlPath string, config Config) (string, error) {
	switch config.Policy {
	case PolicyReject:
		joined := Join(urlPath, config.Root)
		if !WithinDomain(joined, config.Root) {
			return "", fmt.Errorf("%s: %w", urlPath, ErrPathEscape)
		}
		return IndexPath(joined, urlPath), nil
	default:
		return IndexPath(Resolve(urlPath, config.Root), urlPath), nil
	}
}
