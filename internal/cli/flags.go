package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputDir    string
	BatchFile    string
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string

	// Dictionary flags
	DictPath string

	// Audio flags
	NoAudio       bool
	AudioProvider string
	AudioFallback string
	AudioFormat   string
	Locale        string

	// Translation flags
	Translator string

	// Maintenance flags
	ListProviders bool
	Archive       bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DeckName:      "Chinese Vocabulary",
		AudioProvider: "google",
		AudioFallback: "baidu",
		AudioFormat:   "mp3",
		Locale:        "zh-CN",
		Translator:    "openai",
	}
}
