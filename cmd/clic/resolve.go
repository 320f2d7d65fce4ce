package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meurig/clic/internal/config"
	"github.com/meurig/clic/internal/extractor"
	"github.com/meurig/clic/internal/manifest"
	"github.com/meurig/clic/internal/store"
	"github.com/meurig/clic/pkg/clic"
	"github.com/meurig/clic/pkg/title"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] <url>",
	Short: "Resolve a catalogue URL into a record or playlist",
	Long: `Resolve a Clic series or programme URL.

A programme resolves to a single record; a series with more than one
programme resolves to a playlist of child references.

Examples:
  clic resolve https://www.s4c.cymru/clic/programme/861514621
  clic resolve --json https://www.s4c.cymru/clic/series/864982911
  clic resolve --match "Pennod 3" https://www.s4c.cymru/clic/series/864982911
  clic resolve --save https://www.s4c.cymru/clic/programme/861514621`,
	Args: cobra.ExactArgs(1),
	RunE: runResolveCmd,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().Bool("save", false, "Persist the resolved record")
	resolveCmd.Flags().String("match", "", "Pick the best-matching playlist entry and resolve it")
	resolveCmd.Flags().StringSlice("region", nil, "Override geo regions tried for streaming manifests")
}

func runResolveCmd(cmd *cobra.Command, args []string) error {
	save, _ := cmd.Flags().GetBool("save")
	matchTitle, _ := cmd.Flags().GetString("match")
	regions, _ := cmd.Flags().GetStringSlice("region")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(regions) == 0 {
		regions = cfg.Extractor.Regions
	}

	log := newLogger(cfg)
	ext := newExtractor(cfg, regions, log)

	ctx := cmd.Context()
	sourceURL := args[0]
	result, err := ext.Resolve(ctx, sourceURL)
	if err != nil {
		return err
	}

	// A playlist plus --match collapses to the best-matching entry.
	if result.Playlist != nil && matchTitle != "" {
		entry, err := matchEntry(result.Playlist, matchTitle)
		if err != nil {
			return err
		}
		sourceURL = entry.URL
		result, err = ext.ResolveID(ctx, entry.Kind, entry.ID)
		if err != nil {
			return err
		}
	}

	if save && result.Record != nil {
		if err := saveRecord(cmd, cfg, result.Record, sourceURL); err != nil {
			return err
		}
	}

	if jsonOutput {
		printJSON(result)
		return nil
	}

	if result.Record != nil {
		printRecordHuman(result.Record)
	} else {
		printPlaylistHuman(result.Playlist)
	}
	return nil
}

func newExtractor(cfg *config.Config, regions []string, log *slog.Logger) *extractor.Extractor {
	clientOpts := []clic.Option{clic.WithLang(cfg.API.Lang), clic.WithLogger(log)}
	if cfg.API.CatalogueURL != "" {
		clientOpts = append(clientOpts, clic.WithCatalogueURL(cfg.API.CatalogueURL))
	}
	if cfg.API.PlayerURL != "" {
		clientOpts = append(clientOpts, clic.WithPlayerURL(cfg.API.PlayerURL))
	}

	api := clic.New(clientOpts...)
	formats := manifest.NewResolver(manifest.WithLogger(log))
	return extractor.New(api, formats,
		extractor.WithRegions(regions),
		extractor.WithLogger(log))
}

func matchEntry(playlist *extractor.Playlist, wanted string) (*extractor.Entry, error) {
	candidates := make([]string, len(playlist.Entries))
	for i, entry := range playlist.Entries {
		candidates[i] = entry.Title
	}

	m := title.Match(wanted, candidates)
	if m.Index < 0 {
		return nil, fmt.Errorf("no entry matches %q", wanted)
	}
	fmt.Fprintf(os.Stderr, "matched %q (%s confidence, %.2f)\n", m.Title, m.Confidence, m.Score)
	return &playlist.Entries[m.Index], nil
}

func saveRecord(cmd *cobra.Command, cfg *config.Config, record *extractor.Record, sourceURL string) error {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		return fmt.Errorf("database directory: %w", err)
	}
	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	if err := st.Save(cmd.Context(), record, sourceURL); err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	fmt.Fprintf(os.Stderr, "saved record %s\n", record.ID)
	return nil
}

func printRecordHuman(r *extractor.Record) {
	fmt.Printf("Title:      %s\n", r.Title)
	fmt.Printf("Series:     %s\n", r.Series)
	if r.SeasonNumber > 0 {
		fmt.Printf("Season:     %d\n", r.SeasonNumber)
	}
	if r.EpisodeNumber != nil {
		fmt.Printf("Episode:    %d (%s)\n", *r.EpisodeNumber, r.Episode)
	} else if r.Episode != "" {
		fmt.Printf("Episode:    %s\n", r.Episode)
	}
	if r.Duration > 0 {
		fmt.Printf("Duration:   %s\n", formatDuration(r.Duration))
	}
	if r.ReleaseDate != "" {
		fmt.Printf("Broadcast:  %s\n", r.ReleaseDate)
	}
	fmt.Printf("Formats:    %d\n", len(r.Formats))
	if len(r.Subtitles) > 0 {
		langs := make([]string, 0, len(r.Subtitles))
		for lang := range r.Subtitles {
			langs = append(langs, lang)
		}
		fmt.Printf("Subtitles:  %s\n", strings.Join(langs, ", "))
	}
	if r.Description != "" {
		fmt.Printf("\n%s\n", r.Description)
	}
}

func printPlaylistHuman(p *extractor.Playlist) {
	name := p.Title
	if name == "" {
		name = p.ID
	}
	fmt.Printf("Playlist %s (%d entries):\n\n", name, len(p.Entries))
	fmt.Printf("  # │ %-12s │ %s\n", "ID", "TITLE")
	fmt.Println("────┼──────────────┼─────────────────────────────────")

	for i, entry := range p.Entries {
		entryTitle := entry.Title
		if len(entryTitle) > 40 {
			entryTitle = entryTitle[:37] + "..."
		}
		fmt.Printf(" %2d │ %-12s │ %s\n", i+1, entry.ID, entryTitle)
	}
}

func formatDuration(seconds int) string {
	if seconds < 3600 {
		return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh%02dm", seconds/3600, (seconds%3600)/60)
}
