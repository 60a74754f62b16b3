package model

// ConfigRequest carries generator control state from the client. All fields
// are pointers so an absent field means "control untouched — keep the current
// value", distinct from an explicit zero/false. The same shape serves both
// the generate call and the config setter.
type ConfigRequest struct {
	Length    *int  `json:"length"`
	Strength  *int  `json:"strength"` // ordinal 0-3
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// StrengthInfo is the render contract for the strength indicator.
type StrengthInfo struct {
	Ordinal int    `json:"ordinal"`
	Label   string `json:"label"`
	Color   string `json:"color"`
}

// GenerateResponse is the result of a generation call. Length is the length
// of the produced string, which can undercut the requested length when every
// character class is disabled.
type GenerateResponse struct {
	Password string       `json:"password"`
	Length   int          `json:"length"`
	Strength StrengthInfo `json:"strength"`
}

// ConfigResponse is a snapshot of the generator configuration.
type ConfigResponse struct {
	Length    int          `json:"length"`
	Strength  StrengthInfo `json:"strength"`
	Uppercase bool         `json:"uppercase"`
	Lowercase bool         `json:"lowercase"`
	Numbers   bool         `json:"numbers"`
	Symbols   bool         `json:"symbols"`
}

// StrengthLevelResponse describes one row of the strength profile table for
// UI rendering of the strength selector.
type StrengthLevelResponse struct {
	Ordinal       int    `json:"ordinal"`
	Name          string `json:"name"`
	Label         string `json:"label"`
	Color         string `json:"color"`
	LetterPercent int    `json:"letter_percent"`
	SymbolPercent int    `json:"symbol_percent"`
}
