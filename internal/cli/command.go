package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/hanzirecall/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hanzirecall [term]",
		Short: "Chinese Anki Flashcard Generator",
		Long: `hanzirecall generates Anki flashcard materials from Chinese vocabulary.

It looks terms up in a bundled CC-CEDICT dictionary, derives meaning, pinyin,
bopomofo, jyutping, colourised characters and script variants, and fetches
pronunciation audio from remote text-to-speech services.

Examples:
  hanzirecall 你好                # Generate materials for one term
  hanzirecall --batch hsk1.txt    # Process a vocabulary list from file
  hanzirecall --anki --deck-name "HSK 1"   # Also export the cards as .apkg`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "hanzirecall", "cards")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.hanzirecall.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", defaultOutputDir, "Output directory")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process terms from file (one per line, 'term = meaning' to override the meaning)")
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import file (APKG format by default, use --anki-csv for legacy CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate legacy CSV format instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")

	// Dictionary flags
	cmd.Flags().StringVar(&flags.DictPath, "dict", "", "Dictionary database path (default is the per-user bundled copy)")

	// Audio flags
	cmd.Flags().BoolVar(&flags.NoAudio, "no-audio", false, "Skip pronunciation audio fetching")
	cmd.Flags().StringVar(&flags.AudioProvider, "audio-provider", flags.AudioProvider, "Audio provider: google, baidu or espeak")
	cmd.Flags().StringVar(&flags.AudioFallback, "audio-fallback", flags.AudioFallback, "Fallback audio provider, empty string to disable")
	cmd.Flags().StringVarP(&flags.AudioFormat, "format", "f", flags.AudioFormat, "Audio format (wav or mp3)")
	cmd.Flags().StringVar(&flags.Locale, "locale", flags.Locale, "Speech locale: zh-CN, zh-TW or yue")

	// Translation flags
	cmd.Flags().StringVar(&flags.Translator, "translator", flags.Translator, "Translator for terms missing from the dictionary: openai or gemini")

	// Maintenance flags
	cmd.Flags().BoolVar(&flags.ListProviders, "list-providers", false, "List audio and translation providers with their availability")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the cards directory with a timestamp and exit")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("audio.provider", cmd.Flags().Lookup("audio-provider"))
	viper.BindPFlag("audio.fallback", cmd.Flags().Lookup("audio-fallback"))
	viper.BindPFlag("audio.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("audio.locale", cmd.Flags().Lookup("locale"))
	viper.BindPFlag("dictionary.path", cmd.Flags().Lookup("dict"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("translator"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("anki.deck_name", cmd.Flags().Lookup("deck-name"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".hanzirecall" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hanzirecall")
	}

	// Environment variables
	viper.SetEnvPrefix("HANZIRECALL")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	// First check environment variable
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation.gemini_key")
}

// FieldAliases returns per-role note field name overrides from the config
// file, keyed by role name. Config shape:
//
//	fields:
//	  hanzi: ["Word", "Vocab"]
//	  meaning: ["English"]
func FieldAliases() map[string][]string {
	return viper.GetStringMapStringSlice("fields")
}
