package models

// Settings represents the application configuration
type Settings struct {
	UI     UISettings     `yaml:"ui"`
	Search SearchSettings `yaml:"search"`
	Demo   DemoSettings   `yaml:"demo"`
}

// UISettings controls list rendering preferences
type UISettings struct {
	CollapsedRows     int `yaml:"collapsed_rows"`
	ExpandedRowsMax   int `yaml:"expanded_rows_max"`
	LongTextThreshold int `yaml:"long_text_threshold"`
	PreviewTextLimit  int `yaml:"preview_text_limit"`
	PreviewHTMLLimit  int `yaml:"preview_html_limit"`
}

// SearchSettings controls filter dispatch behavior
type SearchSettings struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// DemoSettings controls the built-in demo backend
type DemoSettings struct {
	Items int `yaml:"items"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			CollapsedRows:     5,
			ExpandedRowsMax:   24,
			LongTextThreshold: 500,
			PreviewTextLimit:  800,
			PreviewHTMLLimit:  1200,
		},
		Search: SearchSettings{
			DebounceMS: 250,
		},
		Demo: DemoSettings{
			Items: 40,
		},
	}
}
