package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/alquran/filter"
	"github.com/s0up4200/alquran/quran"
)

var (
	editionFormat   string
	editionLanguage string
	editionType     string
	filterExpr      string
	preset          string
)

var editionsCmd = &cobra.Command{
	Use:   "editions",
	Short: "List editions",
	Long: `List the editions served by the API.

--format, --language and --type are sent to the API. --filter and --preset
are expr expressions evaluated locally against each edition, for example:

  alquran editions --filter 'isText() and language in ["en", "fr"]'
  alquran editions --filter 'mentions("asad") or isRTL()'`,
	Args: cobra.NoArgs,
	RunE: runEditions,
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages editions are available in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := api.GetLanguages(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), resp.Data, func() string {
			return formatter.FormatTokens("Languages", resp.Data)
		})
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List edition types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := api.GetEditionTypes(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), resp.Data, func() string {
			return formatter.FormatTokens("Edition types", resp.Data)
		})
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List edition formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := api.GetFormats(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), resp.Data, func() string {
			return formatter.FormatTokens("Formats", resp.Data)
		})
	},
}

func init() {
	editionsCmd.Flags().StringVar(&editionFormat, "format", "", "only editions in this format (text or audio)")
	editionsCmd.Flags().StringVarP(&editionLanguage, "language", "l", "", "only editions in this language code")
	editionsCmd.Flags().StringVarP(&editionType, "type", "t", "", "only editions of this type")
	editionsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	editionsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	editionsCmd.MarkFlagsMutuallyExclusive("filter", "preset")

	rootCmd.AddCommand(editionsCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(formatsCmd)
}

// editionQuery builds the server-side filters from flags
func editionQuery() (quran.EditionQuery, error) {
	var q quran.EditionQuery

	if editionFormat != "" {
		f, err := quran.ParseFormat(editionFormat)
		if err != nil {
			return q, err
		}
		q.Format = f
	}
	if editionLanguage != "" {
		l, err := quran.ParseLanguage(editionLanguage)
		if err != nil {
			return q, err
		}
		q.Language = l
	}
	if strings.TrimSpace(editionType) != "" {
		q.Type = quran.ParseEditionType(strings.TrimSpace(editionType))
	}

	return q, nil
}

// fetchEditions uses the dedicated listing endpoint when exactly one filter
// is set and the query endpoint otherwise
func fetchEditions(cmd *cobra.Command, q quran.EditionQuery) (*quran.EditionsResponse, error) {
	ctx := cmd.Context()
	switch {
	case q == quran.EditionQuery{Format: q.Format} && q.Format != "":
		return api.GetEditionsByFormat(ctx, q.Format)
	case q == quran.EditionQuery{Language: q.Language} && q.Language != "":
		return api.GetEditionsByLanguage(ctx, q.Language)
	case q == quran.EditionQuery{Type: q.Type} && q.Type != "":
		return api.GetEditionsByType(ctx, q.Type)
	default:
		return api.GetEditions(ctx, q)
	}
}

// selectFilter returns the compiled --filter or --preset, or nil when
// neither is given
func selectFilter() (filter.CompiledFilter, error) {
	if filterExpr != "" {
		f, err := presets.Compile(filterExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		return f, nil
	}

	if preset != "" {
		f, ok := presets.Preset(strings.ToLower(preset))
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config (have: %s)", preset, strings.Join(presets.Names(), ", "))
		}
		return f, nil
	}

	return nil, nil
}

func runEditions(cmd *cobra.Command, args []string) error {
	q, err := editionQuery()
	if err != nil {
		return err
	}

	f, err := selectFilter()
	if err != nil {
		return err
	}

	resp, err := fetchEditions(cmd, q)
	if err != nil {
		return err
	}

	editions := resp.Data
	if f != nil {
		editions, err = presets.Apply(cmd.Context(), f, editions)
		if err != nil {
			return err
		}
		logger.Debug().
			Str("filter", f.Expression()).
			Int("total", len(resp.Data)).
			Int("matched", len(editions)).
			Msg("Filtered editions")
	}

	return render(cmd.OutOrStdout(), editions, func() string {
		return formatter.FormatEditionList(editions)
	})
}
