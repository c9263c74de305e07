package model

// Product is a catalog part record. Immutable after load.
type Product struct {
	PartID           string   `json:"part_id"`
	Title            string   `json:"title"`
	Brand            string   `json:"brand"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	CompatibleModels []string `json:"compatible_models,omitempty"`
	InstallSteps     []string `json:"install_steps,omitempty"`
	ExternalURL      string   `json:"external_url,omitempty"`
}

// ApplianceModel is an appliance model record, looked up by exact
// case-insensitive tag match only.
type ApplianceModel struct {
	Model string `json:"model"`
	Brand string `json:"brand,omitempty"`
	Type  string `json:"type,omitempty"` // "refrigerator" or "dishwasher"
}

// FAQ is a troubleshooting entry surfaced to the composer as context.
type FAQ struct {
	ID     string   `json:"id"`
	Topic  string   `json:"topic"`
	Checks []string `json:"checks"`
}
