package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meurig/clic/pkg/title"
)

// parseOutput is the JSON-friendly result of the local heuristics.
type parseOutput struct {
	Series        string `json:"series"`
	Season        int    `json:"season"`
	Episode       string `json:"episode,omitempty"`
	EpisodeNumber *int   `json:"episode_number"`
	CleanTitle    string `json:"clean_title"`
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <series-title>",
	Short: "Run the title heuristics locally (no network)",
	Long: `Extract season, episode number and titles from catalogue metadata.

The season marker is read from the series title; the episode number is
taken from the programme title, the asset filename, or the thumbnail
URL, in that order.

Examples:
  clic parse "Rownd a Rownd - Cyfres 23"
  clic parse --programme "Pennod 5" "Pobol y Cwm: Cyfres 50"
  clic parse --mpg "rar_S23_E12_hd.mp4" "Rownd a Rownd"`,
	Args: cobra.ExactArgs(1),
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().String("programme", "", "Programme (episode) title")
	parseCmd.Flags().String("mpg", "", "Asset filename")
	parseCmd.Flags().String("thumbnail", "", "Thumbnail URL")
	// Note: --json is inherited from root as persistent flag
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	programmeTitle, _ := cmd.Flags().GetString("programme")
	mpg, _ := cmd.Flags().GetString("mpg")
	thumbnail, _ := cmd.Flags().GetString("thumbnail")

	out := parseLocal(args[0], programmeTitle, mpg, thumbnail)

	if jsonOutput {
		printJSON(out)
		return nil
	}

	fmt.Printf("Series:   %s\n", out.Series)
	fmt.Printf("Season:   %d\n", out.Season)
	if out.EpisodeNumber != nil {
		fmt.Printf("Episode:  %d\n", *out.EpisodeNumber)
	} else {
		fmt.Printf("Episode:  unknown\n")
	}
	if out.Episode != "" {
		fmt.Printf("Title:    %s\n", out.Episode)
	}
	fmt.Printf("Clean:    %s\n", out.CleanTitle)
	return nil
}

// parseLocal applies the same heuristic chain as a full resolution, minus
// everything that needs the network.
func parseLocal(seriesTitle, programmeTitle, mpg, thumbnail string) parseOutput {
	season, seriesName, _ := title.Season(seriesTitle)

	var episodeNumber *int
	if n, ok := title.EpisodeFromTitle(programmeTitle); ok {
		episodeNumber = &n
	} else if n, rest, ok := title.StripLeadingNumber(programmeTitle); ok {
		episodeNumber = &n
		programmeTitle = rest
	}

	episodeTitle := programmeTitle
	if episodeTitle == "" {
		episodeTitle = seriesName
	}

	if episodeNumber == nil {
		if n, ok := title.EpisodeFromText(mpg); ok {
			episodeNumber = &n
		}
	}
	if episodeNumber == nil {
		if n, ok := title.EpisodeFromThumbnail(thumbnail); ok {
			episodeNumber = &n
		}
	}
	if episodeNumber == nil && mpg != "" {
		if n, ok := title.EpisodeFromFilename(mpg); ok {
			episodeNumber = &n
		}
	}

	return parseOutput{
		Series:        seriesName,
		Season:        season,
		Episode:       episodeTitle,
		EpisodeNumber: episodeNumber,
		CleanTitle:    title.Clean(seriesName),
	}
}
