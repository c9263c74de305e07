package usecase

import (
	"context"
	"fmt"
	"strings"

	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
)

var installCues = []string{"install", "installation", "replace", "how to", "fit", "step", "instructions"}

var compatibilityCues = []string{"compat", "fit", "work with", "model", "compatible"}

func containsAnyCue(text string, cues []string) bool {
	lower := strings.ToLower(text)
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// resolvePartCard is the deterministic fast path for a message that names a
// part id in catalog or issues mode. The first extracted part id is looked up
// exactly; a miss returns ok=false so the caller falls through to the
// model-assisted path instead of failing.
func (uc *implUseCase) resolvePartCard(ctx context.Context, text string, ents entities) (chat.Envelope, bool) {
	p, ok := uc.store.ProductByPartID(ents.partIDs[0])
	if !ok {
		uc.l.Debugf(ctx, "%s: part %s not in catalog, falling through", LogPrefixProcess, ents.partIDs[0])
		return chat.Envelope{}, false
	}

	card := chat.ProductCard{PartID: p.PartID, Title: p.Title}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", p.Title, p.PartID)
	if p.Brand != "" || p.Category != "" {
		fmt.Fprintf(&b, " is a %s part", strings.TrimSpace(p.Brand+" "+p.Category))
	}
	b.WriteString(".")

	if containsAnyCue(text, installCues) && len(p.InstallSteps) > 0 {
		b.WriteString("\nInstallation steps:")
		for i, step := range p.InstallSteps {
			fmt.Fprintf(&b, "\n%d. %s", i+1, step)
		}
	}

	if containsAnyCue(text, compatibilityCues) {
		matches := intersectModels(ents.modelIDs, p.CompatibleModels)
		if len(matches) > 0 {
			card.Compatibility = "match"
			card.Reasons = []string{"model tag found in the compatible models list"}
			fmt.Fprintf(&b, "\nVerified compatible with: %s.", strings.Join(matches, ", "))
		} else {
			card.Compatibility = "unknown"
			b.WriteString("\nI can't verify compatibility from what you've shared. What's the exact model tag on your appliance?")
		}
	}

	if p.ExternalURL != "" {
		fmt.Fprintf(&b, "\nMore details: %s", p.ExternalURL)
	}

	return chat.Envelope{
		Answer:     b.String(),
		FollowUp:   []string{"Check compatibility with your model", "See installation steps"},
		Products:   []chat.ProductCard{card},
		Orders:     []model.Order{},
		References: refStrings(productRef(p.PartID)),
	}, true
}

// intersectModels returns the extracted model ids that appear in the
// product's compatible-models list, compared case-insensitively.
func intersectModels(extracted, compatible []string) []string {
	known := make(map[string]struct{}, len(compatible))
	for _, m := range compatible {
		known[strings.ToUpper(m)] = struct{}{}
	}
	var matches []string
	for _, m := range extracted {
		if _, ok := known[m]; ok {
			matches = append(matches, m)
		}
	}
	return matches
}
