// Package parser scans Terraform-style source text for top-level resource
// declaration blocks and for textual cross-references between them. It is
// deliberately tolerant: the input is often machine-generated and may be
// truncated or partially invalid, so malformed blocks are skipped and
// counted instead of failing the whole parse.
package parser

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Identity is the deduplication key of a declared resource.
type Identity struct {
	Type string
	Name string
}

func (id Identity) String() string {
	return id.Type + "." + id.Name
}

// Block is one complete top-level declaration of the form
// resource "<type>" "<name>" { <body> }.
type Block struct {
	Type string
	Name string
	Body string
}

// Identity returns the block's deduplication key.
func (b Block) Identity() Identity {
	return Identity{Type: b.Type, Name: b.Name}
}

// Result carries the complete blocks found in one parse pass plus the
// number of declarations that had to be skipped (unterminated body or
// unparsable header).
type Result struct {
	Blocks  []Block
	Skipped int
}

// headerRE matches a resource declaration header anchored at the current
// scan position, up to and including the opening brace.
var headerRE = regexp.MustCompile(`^resource\s+"([a-zA-Z_][a-zA-Z0-9_-]*)"\s+"([a-zA-Z_][a-zA-Z0-9_.-]*)"\s*\{`)

// Parse scans source text in a single pass, tracking brace depth as integer
// state so nested attribute blocks are captured whole. Declarations are
// recognized only at zero depth. Empty or whitespace-only input yields an
// empty Result, never an error.
func Parse(src string) Result {
	logger := log.WithField("func", "parser.Parse")

	var res Result
	depth := 0
	i := 0
	for i < len(src) {
		switch c := src[i]; {
		case c == '"':
			i = skipString(src, i)
		case c == '#':
			i = skipLine(src, i)
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			i = skipLine(src, i)
		case c == '{':
			depth++
			i++
		case c == '}':
			if depth > 0 {
				depth--
			}
			i++
		case depth == 0 && c == 'r' && strings.HasPrefix(src[i:], "resource") && atWordStart(src, i):
			m := headerRE.FindStringSubmatch(src[i:])
			if m == nil {
				// A resource keyword we cannot parse a header out of.
				if isKeywordUse(src, i) {
					res.Skipped++
					logger.WithField("offset", i).Warn("Skipping declaration with unparsable header")
				}
				i += len("resource")
				continue
			}
			open := i + len(m[0]) - 1
			end, ok := scanBody(src, open)
			if !ok {
				res.Skipped++
				logger.WithFields(log.Fields{
					"type": m[1],
					"name": m[2],
				}).Warn("Skipping declaration with unterminated body")
				i += len(m[0])
				continue
			}
			res.Blocks = append(res.Blocks, Block{
				Type: m[1],
				Name: m[2],
				Body: src[open+1 : end],
			})
			i = end + 1
		default:
			i++
		}
	}

	logger.WithFields(log.Fields{
		"blocks":  len(res.Blocks),
		"skipped": res.Skipped,
	}).Debug("Parse complete")
	return res
}

// atWordStart reports whether position i begins a new word (not the tail of
// a longer identifier such as "my_resource").
func atWordStart(src string, i int) bool {
	if i == 0 {
		return true
	}
	p := src[i-1]
	return !(p == '_' || p >= 'a' && p <= 'z' || p >= 'A' && p <= 'Z' || p >= '0' && p <= '9')
}

// isKeywordUse reports whether the resource keyword at i is followed by
// whitespace or a quote, i.e. looks like an attempted declaration rather
// than an identifier prefix like "resourceful".
func isKeywordUse(src string, i int) bool {
	rest := src[i+len("resource"):]
	return rest != "" && (rest[0] == ' ' || rest[0] == '\t' || rest[0] == '"')
}

// scanBody scans from the opening brace at index open to its matching close,
// ignoring braces inside quoted strings and comments. Returns the index of
// the closing brace, or ok=false when the body never terminates.
func scanBody(src string, open int) (int, bool) {
	depth := 0
	i := open
	for i < len(src) {
		switch c := src[i]; {
		case c == '"':
			i = skipString(src, i)
		case c == '#':
			i = skipLine(src, i)
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			i = skipLine(src, i)
		case c == '{':
			depth++
			i++
		case c == '}':
			depth--
			if depth == 0 {
				return i, true
			}
			i++
		default:
			i++
		}
	}
	return 0, false
}

// skipString advances past a double-quoted string starting at i, honoring
// backslash escapes. An unterminated string consumes the rest of the input.
func skipString(src string, i int) int {
	i++ // opening quote
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		default:
			i++
		}
	}
	return i
}

// skipLine advances past the end of the current line.
func skipLine(src string, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

// Reference is a textual mention of another declared resource, in the shape
// <type>.<name>.<attribute>, e.g. aws_vpc.main.id.
type Reference struct {
	Type      string
	Name      string
	Attribute string
}

// Identity returns the referenced resource's deduplication key.
func (r Reference) Identity() Identity {
	return Identity{Type: r.Type, Name: r.Name}
}

// refRE matches <type>.<name>.<attribute> tokens. The type must carry a
// provider prefix (at least one underscore), which is what keeps ordinary
// attribute paths like var.foo.bar from matching. This is a textual
// heuristic, not semantic resolution: an unrelated string that happens to
// have this shape will over-match. Downstream consumers depend on that
// profile, so it stays as-is.
var refRE = regexp.MustCompile(`\b([a-z][a-z0-9]*(?:_[a-z0-9]+)+)\.([a-zA-Z_][a-zA-Z0-9_-]*)\.([a-zA-Z_][a-zA-Z0-9_-]*)`)

// ExtractReferences returns the distinct references in a block body that
// resolve to a declared identity, in order of first occurrence. References
// to the block's own identity are discarded; duplicate mentions collapse to
// the first one seen. Both bare and ${...}-interpolated forms match.
func ExtractReferences(body string, self Identity, declared map[Identity]bool) []Reference {
	matches := refRE.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[Identity]bool, len(matches))
	var refs []Reference
	for _, m := range matches {
		ref := Reference{Type: m[1], Name: m[2], Attribute: m[3]}
		id := ref.Identity()
		if id == self || seen[id] || !declared[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, ref)
	}
	return refs
}

// Containment parent detection: a block holding a vpc_id attribute that
// references a declared VPC belongs inside that VPC; failing that, a
// subnet_id attribute nests it inside the subnet. vpc_id wins over
// subnet_id, matching the original behavior.
var parentRules = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*vpc_id\s*=.*?(aws_vpc\.[a-zA-Z_][a-zA-Z0-9_-]*)`),
	regexp.MustCompile(`(?m)^\s*subnet_id\s*=.*?(aws_subnet\.[a-zA-Z_][a-zA-Z0-9_-]*)`),
}

// ParentFor inspects a block body for containment attributes and returns the
// parent identity key ("type.name") if one is found.
func ParentFor(body string) (string, bool) {
	for _, rule := range parentRules {
		if m := rule.FindStringSubmatch(body); m != nil {
			return m[1], true
		}
	}
	return "", false
}
