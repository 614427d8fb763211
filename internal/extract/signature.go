// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/gleamdoc/pkg/types"
)

// nameRe locates the declaration keyword, the function identifier, and the
// opening paren of the parameter list.
var nameRe = regexp.MustCompile(`pub fn (\w+)\(`)

// returnRe captures the return type: everything between the closing paren's
// "->" and the body-opening brace.
var returnRe = regexp.MustCompile(`\)\s*->\s*([^{]+)`)

// paramRe matches one parameter of shape "(label )?name: type". A label is
// present only when two identifier tokens precede the colon.
var paramRe = regexp.MustCompile(`^(?:(\w+)\s+)?(\w+)\s*:\s*(.+)`)

// signature is the parsed form of one exported declaration.
type signature struct {
	name       string
	parameters []types.Parameter
	returnType string
}

// parseSignature consumes a declaration starting at lines[start], which may
// wrap across several physical lines, and extracts the name, parameter list,
// and return type. It returns ok=false when the declaration does not match
// the expected grammar; callers drop such declarations without reporting.
func parseSignature(lines []string, start int) (signature, bool) {
	// Consume lines until one contains the body-opening brace. A brace on
	// the line that carries the "pub fn" keyword itself does not terminate
	// the scan: a one-line declaration ends at its own brace only via the
	// return-type regex below, never via this loop.
	var sigParts []string
	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		sigParts = append(sigParts, trimmed)
		if strings.Contains(lines[i], "{") && !strings.HasPrefix(trimmed, "pub fn") {
			break
		}
	}
	fullSig := strings.Join(sigParts, " ")

	m := nameRe.FindStringSubmatchIndex(fullSig)
	if m == nil {
		return signature{}, false
	}
	name := fullSig[m[2]:m[3]]
	paramsStart := m[1]

	// Find the matching close paren of the parameter list, tracking paren
	// nesting so parenthesized parameter types do not end the list early.
	depth := 1
	paramsEnd := paramsStart
	for i := paramsStart; i < len(fullSig); i++ {
		switch fullSig[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if fullSig[i] == ')' && depth == 0 {
			paramsEnd = i
			break
		}
	}

	paramsStr := strings.TrimSpace(fullSig[paramsStart:paramsEnd])

	rm := returnRe.FindStringSubmatch(fullSig[paramsEnd:])
	if rm == nil {
		return signature{}, false
	}
	returnType := strings.TrimSpace(rm[1])

	return signature{
		name:       name,
		parameters: parseParams(paramsStr),
		returnType: returnType,
	}, true
}

// parseParams splits the parameter-list substring at commas and matches each
// piece against paramRe. Parameters that do not match are dropped silently.
func parseParams(paramsStr string) []types.Parameter {
	parameters := []types.Parameter{}
	if paramsStr == "" {
		return parameters
	}

	for _, part := range splitParams(paramsStr) {
		pm := paramRe.FindStringSubmatch(part)
		if pm == nil {
			continue
		}
		p := types.Parameter{
			Name: pm[2],
			Type: strings.TrimSpace(pm[3]),
		}
		if pm[1] != "" {
			label := pm[1]
			p.Label = &label
		}
		parameters = append(parameters, p)
	}
	return parameters
}

// splitParams splits at commas that sit at bracket depth zero. Parens and
// angle brackets share one depth counter, so nested generics and grouped
// types both protect their interior commas. A "->" arrow is consumed as a
// single token so function-type parameters survive intact.
func splitParams(s string) []string {
	var parts []string
	var cur strings.Builder
	depth := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(' || c == '<':
			depth++
			cur.WriteByte(c)
		case c == ')' || c == '>':
			depth--
			cur.WriteByte(c)
		case c == '-' && i+1 < len(s) && s[i+1] == '>':
			cur.WriteString("->")
			i++
		case c == ',' && depth == 0:
			if p := strings.TrimSpace(cur.String()); p != "" {
				parts = append(parts, p)
			}
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if p := strings.TrimSpace(cur.String()); p != "" {
		parts = append(parts, p)
	}
	return parts
}
