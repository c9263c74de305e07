package model

// Mode is the caller-declared interaction context. It restricts which intents
// and tools are legal for a request and drives every policy decision downstream.
type Mode string

const (
	ModeCatalog Mode = "catalog"
	ModeOrders  Mode = "orders"
	ModeIssues  Mode = "issues"
	ModeOther   Mode = "other"
)

// ParseMode maps a raw mode string to a Mode. Unknown or empty values fall
// back to ModeOther, the strict refusal-style guardrail state.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeCatalog, ModeOrders, ModeIssues:
		return Mode(s)
	default:
		return ModeOther
	}
}
