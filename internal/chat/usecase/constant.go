package usecase

const (
	LogPrefixProcess  = "internal.chat.usecase.Process"
	LogPrefixClassify = "internal.chat.usecase.classify"
	LogPrefixDispatch = "internal.chat.usecase.dispatch"
	LogPrefixCompose  = "internal.chat.usecase.compose"
)

// Generation tunables. The classifier runs cold and terse, the composer gets
// room to write, the repair pass is fully deterministic.
const (
	ClassifierTemperature = 0.1
	ClassifierMaxTokens   = 300
	ComposerTemperature   = 0.2
	ComposerMaxTokens     = 900
	RepairTemperature     = 0.0

	IntentCacheSize = 256
)

// Result caps.
const (
	SearchLimit      = 10 // products returned by a catalog search
	OrderToolLimit   = 10 // orders returned by the classifier-dispatched history tool
	OrdersDataCap    = 20 // orders attached to the envelope on the email path
	OrdersSummaryCap = 5  // orders summarized in the prose answer
)

// Tool names as they appear in reference tags.
const (
	ToolOrderByID      = "order_by_id"
	ToolOrderHistory   = "order_history_by_email"
	ToolSearchProducts = "search_products"
)

// scopeKeywords admits a message when any of them appears as a substring of
// the lowercased text. "compatib" covers compatible/compatibility.
var scopeKeywords = []string{
	"refrigerator", "dishwasher", "fridge", "freezer",
	"gasket", "rack", "filter", "valve", "hinge", "shelf",
	"install", "part", "model", "compatib", "order", "ice", "leak",
	"whirlpool", "kitchenaid", "maytag", "samsung", "frigidaire", "bosch",
}

const RefusalAnswer = "I can help with refrigerator and dishwasher parts, installation, compatibility, and order support. What part number or model can I help with today?"

// refusalFollowUps are the suggestions attached to an out-of-scope refusal,
// keyed by mode so the nudge matches what the caller was trying to do.
var refusalFollowUps = map[string][]string{
	"catalog": {
		"Search for a part by keyword",
		"Look up a part by its PS number",
		"Check compatibility with your model",
	},
	"issues": {
		"Troubleshoot a common issue",
		"Show install steps for a part",
		"Check compatibility with your model",
	},
	"other": {
		"Check compatibility with your model",
		"Show install steps for a part",
		"Troubleshoot a common issue",
	},
}

const FallbackAnswer = "Sorry, I ran into a problem answering that. Please try again in a moment."

const PromptClassifierSystem = `You are the intent router for a refrigerator and dishwasher parts support assistant.
Classify the user message into exactly one intent:
- "search_products": the user wants to find or browse parts by keyword.
- "order_history": the user wants their past orders and an email address is present.
- "none": anything else, including questions answerable without a tool.

Respond with only a JSON object, no prose, in this shape:
{"intent": "search_products|order_history|none", "query": "search keywords or empty", "email": "email or empty", "reason": "short justification"}`

// PromptClassifierUser is the format string for the classifier turn. Args:
// mode, message.
const PromptClassifierUser = "Mode: %s\nUser message: %s"

const PromptComposerSystem = `You are a support assistant for refrigerator and dishwasher parts.
Answer only from the context block provided. If the context does not contain the answer, say so and ask for the missing detail (part number, model tag, or email).
Keep answers short and practical. Never invent part numbers, prices, or order details.`

const PromptEnvelopeInstructions = `Respond with only a JSON object, no prose outside it, in this shape:
{"answer": "plain text answer",
 "follow_up": ["up to 3 short suggested next questions"],
 "products": [{"part_id": "PS...", "title": "...", "compatibility": "match|unknown|mismatch", "reasons": ["..."]}],
 "orders": [],
 "references": ["product:PS...", "model:...", "tool:..."]}
Include a product entry only for products present in the context. Leave lists empty when nothing applies.`

const PromptRepairSystem = `The user content was meant to be a single JSON object with fields "answer", "follow_up", "products", "orders", "references" but is malformed.
Rewrite it as exactly that valid JSON object, preserving the content. Output only the JSON object.`
