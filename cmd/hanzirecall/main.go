package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/hanzirecall/internal/archive"
	"codeberg.org/snonux/hanzirecall/internal/audio"
	"codeberg.org/snonux/hanzirecall/internal/cli"
	"codeberg.org/snonux/hanzirecall/internal/processor"
	"codeberg.org/snonux/hanzirecall/internal/providers"
	"codeberg.org/snonux/hanzirecall/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag
	if flags.Archive {
		home, _ := os.UserHomeDir()
		cardsDir := filepath.Join(home, ".local", "state", "hanzirecall", "cards")
		if cmd.Flags().Changed("output") {
			cardsDir = flags.OutputDir
		}
		archivePath, err := archive.ArchiveCards(cardsDir)
		if err != nil {
			return fmt.Errorf("failed to archive cards: %w", err)
		}
		fmt.Printf("Cards directory archived to: %s\n", archivePath)
		return nil
	}

	// Handle --list-providers flag
	if flags.ListProviders {
		lister := providers.NewLister(providerConfigs(flags))
		return lister.ListAvailable(cmd.Context())
	}

	if flags.BatchFile == "" && len(args) == 0 && !flags.GenerateAnki {
		return fmt.Errorf("nothing to do: pass a Chinese term, --batch FILE, or --anki")
	}

	// Create processor
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	// Handle batch processing
	if flags.BatchFile != "" {
		// Process batch file
		if err := proc.ProcessBatch(); err != nil {
			return err
		}
	} else if len(args) > 0 {
		// Process single word
		if err := proc.ProcessSingleWord(args[0]); err != nil {
			return err
		}
	}

	// Generate Anki file if requested
	if flags.GenerateAnki {
		fmt.Printf("\nGenerating Anki import file...\n")
		outputPath, err := proc.GenerateAnkiFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to generate Anki file: %v\n", err)
		} else {
			fmt.Printf("Anki package created: %s\n", outputPath)
		}
	}

	fmt.Printf("\nDone! Materials saved to: %s\n", flags.OutputDir)
	return nil
}

// providerConfigs builds the audio and translation configurations the
// provider lister probes, from flags plus any configured API keys.
func providerConfigs(flags *cli.Flags) (*audio.Config, *translation.Config) {
	audioConfig := audio.DefaultProviderConfig()
	audioConfig.Provider = flags.AudioProvider
	audioConfig.Fallback = flags.AudioFallback
	audioConfig.Locale = flags.Locale
	audioConfig.OutputFormat = flags.AudioFormat

	translationConfig := translation.DefaultConfig()
	if flags.Translator != "" {
		translationConfig.Provider = flags.Translator
	}
	translationConfig.OpenAIKey = cli.GetOpenAIKey()
	translationConfig.GeminiKey = cli.GetGeminiKey()

	return audioConfig, translationConfig
}
