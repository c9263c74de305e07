package usecase

import (
	"regexp"
	"strings"
)

// Entity patterns. Part and order ids are tight; the model pattern is
// intentionally broad and is treated as a hint downstream, never ground truth.
var (
	partIDPattern  = regexp.MustCompile(`(?i)\bps\d{6,}\b`)
	orderIDPattern = regexp.MustCompile(`(?i)\bord\d+\b`)
	emailPattern   = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	modelPattern   = regexp.MustCompile(`(?i)\b[a-z0-9]{3,}-?[a-z0-9]{2,}\b`)
)

// entities is everything the deterministic extractors pulled from one message.
type entities struct {
	partIDs  []string
	modelIDs []string
	email    string
	orderID  string
}

func extractEntities(text string) entities {
	return entities{
		partIDs:  extractPartIDs(text),
		modelIDs: extractModelIDs(text),
		email:    extractEmail(text),
		orderID:  extractOrderID(text),
	}
}

// extractPartIDs returns every distinct part id in the text, uppercased, in
// order of first occurrence.
func extractPartIDs(text string) []string {
	return dedupeUpper(partIDPattern.FindAllString(text, -1))
}

// extractModelIDs returns candidate appliance model tags. Prose words are
// filtered out by requiring a digit; part and order ids are excluded since
// they match the broad pattern too.
func extractModelIDs(text string) []string {
	var candidates []string
	for _, tok := range modelPattern.FindAllString(text, -1) {
		if !strings.ContainsAny(tok, "0123456789") {
			continue
		}
		if partIDPattern.MatchString(tok) || orderIDPattern.MatchString(tok) {
			continue
		}
		candidates = append(candidates, tok)
	}
	return dedupeUpper(candidates)
}

// extractEmail returns the first email address in the text, lowercased, or "".
func extractEmail(text string) string {
	return strings.ToLower(emailPattern.FindString(text))
}

// extractOrderID returns the first order id in the text, uppercased, or "".
func extractOrderID(text string) string {
	return strings.ToUpper(orderIDPattern.FindString(text))
}

func dedupeUpper(tokens []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		up := strings.ToUpper(tok)
		if _, ok := seen[up]; ok {
			continue
		}
		seen[up] = struct{}{}
		out = append(out, up)
	}
	return out
}
