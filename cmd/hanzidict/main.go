package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/hanzirecall/internal"
	"codeberg.org/snonux/hanzirecall/internal/dict"
)

var (
	dbPath      string
	sourceURL   string
	sourceFiles []string
	force       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hanzidict",
		Short: "Dictionary database builder for hanzirecall",
		Long: `hanzidict builds the offline dictionary database hanzirecall uses for
pinyin, jyutping, translation and segmentation lookups.

The build command downloads the public CC-CEDICT release, parses it and
compiles a SQLite database. Local exports can be compiled instead, and a
CC-Canto file can be added to carry jyutping readings.

Examples:
  hanzidict build                        # Download and compile to the default path
  hanzidict build --source-file cc.txt   # Compile a local CC-CEDICT export
  hanzidict info                         # Show database location and entry count
  hanzidict lookup 你好                   # Print the entries for a term`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "",
		"Path to the dictionary database (default ~/.hanzirecall/dict.db)")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Download CC-CEDICT and compile the lookup database",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVar(&sourceURL, "source", "",
		"CC-CEDICT download URL (default is the mdbg.net release)")
	buildCmd.Flags().StringArrayVar(&sourceFiles, "source-file", nil,
		"Compile local CC-CEDICT/CC-Canto files instead of downloading (repeatable)")
	buildCmd.Flags().BoolVar(&force, "force", false,
		"Rebuild even if the database already exists")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show the database location, entry count and longest headword",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}

	lookupCmd := &cobra.Command{
		Use:   "lookup TERM",
		Short: "Print the dictionary entries for a term",
		Args:  cobra.ExactArgs(1),
		RunE:  runLookup,
	}

	rootCmd.AddCommand(buildCmd, infoCmd, lookupCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func databasePath() string {
	if dbPath != "" {
		return dbPath
	}
	return dict.DefaultDatabasePath()
}

func runBuild(cmd *cobra.Command, args []string) error {
	path := databasePath()

	if force {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	} else if _, err := os.Stat(path); err == nil {
		fmt.Printf("Dictionary already exists at %s (use --force to rebuild)\n", path)
		return nil
	}

	if len(sourceFiles) == 0 {
		return dict.EnsureDictionary(path, sourceURL)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create dictionary directory: %w", err)
	}

	var entries []dict.Entry
	for _, src := range sourceFiles {
		parsed, stats, err := dict.ParseFile(src)
		if err != nil {
			return err
		}
		if stats.MalformedLines > 0 {
			fmt.Fprintf(os.Stderr, "Warning: %s: skipped %d malformed lines\n", src, stats.MalformedLines)
		}
		fmt.Printf("Parsed %d entries from %s\n", len(parsed), src)
		entries = append(entries, parsed...)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no dictionary entries found in source files")
	}

	fmt.Printf("Compiling %d entries...\n", len(entries))
	if err := dict.Compile(entries, path); err != nil {
		return err
	}
	fmt.Printf("Dictionary ready at %s\n", path)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := databasePath()

	store, err := dict.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.Count()
	if err != nil {
		return err
	}

	fmt.Printf("Database:         %s\n", path)
	fmt.Printf("Entries:          %d\n", count)
	fmt.Printf("Longest headword: %d characters\n", store.MaxWordLen())
	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	store, err := dict.Open(databasePath())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Lookup(args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no dictionary entries for %q", args[0])
	}

	for _, e := range entries {
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s [%s]", e.Traditional, e.Simplified, e.Pinyin)
		if e.Jyutping != "" {
			fmt.Fprintf(&b, " {%s}", e.Jyutping)
		}
		senses := e.Senses
		if len(e.Classifiers) > 0 {
			senses = append(senses[:len(senses):len(senses)], "CL:"+strings.Join(e.Classifiers, ","))
		}
		fmt.Printf("%s /%s/\n", b.String(), strings.Join(senses, "/"))
	}
	return nil
}
