// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

var (
	// examplesSectionRe removes an "## Examples" heading and everything
	// after it.
	examplesSectionRe = regexp.MustCompile(`(?s)## Examples.*`)

	// fencedBlockRe removes complete fenced code blocks.
	fencedBlockRe = regexp.MustCompile("(?s)```.*?```")

	// fenceTailRe removes a stray fence marker through end of line.
	fenceTailRe = regexp.MustCompile("```.*")

	// docPrefixRe strips the /// marker (and trailing spacing) from the
	// start of each documentation line.
	docPrefixRe = regexp.MustCompile(`(?m)^///\s*`)

	// helpfulPatterns match explanatory sentences, in priority order. Each
	// requires the match to run through two sentence-ending periods.
	helpfulPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)This function[^.]+\.[^.]*\.`),
		regexp.MustCompile(`(?i)Useful[^.]+\.[^.]*\.`),
		regexp.MustCompile(`(?i)This[^.]+\.[^.]*\.`),
	}
)

// maxExamples caps how many code examples are collected per function.
const maxExamples = 4

// cleanDocLine strips comment markers and surrounding whitespace from one
// raw documentation line.
func cleanDocLine(line string) string {
	return strings.TrimSpace(strings.ReplaceAll(line, declDocMarker, ""))
}

// purpose returns the first non-empty documentation line that is not a
// markdown heading, or the empty string.
func purpose(docLines []string) string {
	for _, line := range docLines {
		clean := cleanDocLine(line)
		if clean != "" && !strings.HasPrefix(clean, "##") {
			return clean
		}
	}
	return ""
}

// whyHelpful mines the documentation block for a sentence or two explaining
// why the function is useful. The Examples section and fenced code are
// removed first, then the helpful patterns are tried in order; if none
// yields a clean match the second documentation line is used as a fallback
// when it looks like prose (no heading, no fence, length in (10, 200)).
func whyHelpful(docText string, docLines []string) string {
	docForHelpful := examplesSectionRe.ReplaceAllString(docText, "")
	docForHelpful = fencedBlockRe.ReplaceAllString(docForHelpful, "")

	for _, pattern := range helpfulPatterns {
		match := pattern.FindString(docForHelpful)
		if match == "" {
			continue
		}
		helpful := strings.TrimSpace(match)
		helpful = strings.ReplaceAll(helpful, declDocMarker, "")
		helpful = fenceTailRe.ReplaceAllString(helpful, "")
		helpful = strings.Join(strings.Fields(helpful), " ")
		if len(helpful) > 10 && !strings.Contains(helpful, "```") {
			return helpful
		}
	}

	if len(docLines) > 1 {
		for _, line := range docLines[1:] {
			clean := cleanDocLine(line)
			if clean == "" || strings.HasPrefix(clean, "##") {
				continue
			}
			if strings.Contains(clean, "```") {
				continue
			}
			if len(clean) > 10 && len(clean) < 200 {
				return clean
			}
		}
	}

	return ""
}

// examples collects one-line code examples from fenced blocks tagged with
// fenceTag. A line containing the "// ->" evaluates-to marker nominates the
// previous line as a candidate; comments, imports, let bindings, and exact
// duplicates are excluded, and a leading pipe operator is stripped. Blocks
// and lines are scanned in source order, stopping at maxExamples.
func examples(docText, fenceTag string) []string {
	collected := []string{}

	docClean := docPrefixRe.ReplaceAllString(docText, "")
	blockRe := regexp.MustCompile("(?s)```" + regexp.QuoteMeta(fenceTag) + "\n(.*?)\n```")

	for _, block := range blockRe.FindAllStringSubmatch(docClean, -1) {
		lines := strings.Split(block[1], "\n")
		for i, raw := range lines {
			if i == 0 || !strings.Contains(strings.TrimSpace(raw), "// ->") {
				continue
			}

			candidate := strings.TrimSpace(lines[i-1])
			if candidate == "" ||
				strings.HasPrefix(candidate, "//") ||
				strings.HasPrefix(candidate, "import") {
				continue
			}
			if strings.HasPrefix(candidate, "|>") {
				candidate = strings.TrimSpace(candidate[2:])
			}
			if candidate == "" || strings.HasPrefix(candidate, "let ") {
				continue
			}
			if contains(collected, candidate) {
				continue
			}

			collected = append(collected, candidate)
			if len(collected) >= maxExamples {
				return collected
			}
		}
	}

	return collected
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
