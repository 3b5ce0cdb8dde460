package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/alquran/quran"
)

var (
	surahNumber int
	showAyahs   bool
)

var textCmd = &cobra.Command{
	Use:   "text <edition>",
	Short: "Fetch the complete text of an edition",
	Example: `  alquran text en.asad --surah 108 --ayahs
  alquran text quran-uthmani -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

var audioCmd = &cobra.Command{
	Use:     "audio <edition>",
	Short:   "Fetch the complete recitation of an audio edition",
	Example: `  alquran audio ar.alafasy --surah 1 --ayahs`,
	Args:    cobra.ExactArgs(1),
	RunE:    runAudio,
}

func init() {
	for _, c := range []*cobra.Command{textCmd, audioCmd} {
		c.Flags().IntVarP(&surahNumber, "surah", "s", 0, "only show this surah (1-114)")
		c.Flags().BoolVarP(&showAyahs, "ayahs", "a", false, "list every ayah (overrides output.show_ayahs)")
		rootCmd.AddCommand(c)
	}
}

func validateSurah() error {
	if surahNumber < 0 || surahNumber > 114 {
		return fmt.Errorf("surah must be between 1 and 114, got %d", surahNumber)
	}
	return nil
}

func wantAyahs(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("ayahs") {
		return showAyahs
	}
	return cfg.Output.ShowAyahs
}

func runText(cmd *cobra.Command, args []string) error {
	if err := validateSurah(); err != nil {
		return err
	}

	resp, err := api.GetQuranText(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	data := &resp.Data
	surahs := data.Surahs
	var payload any = data
	if surahNumber > 0 {
		s, ok := data.Surah(surahNumber)
		if !ok {
			return fmt.Errorf("surah %d not found in edition %s", surahNumber, data.Edition.Identifier)
		}
		surahs = []quran.Surah{*s}
		payload = s
	}

	logger.Debug().
		Str("edition", data.Edition.Identifier).
		Int("surahs", len(data.Surahs)).
		Int("ayahs", data.AyahCount()).
		Msg("Fetched text")

	return render(cmd.OutOrStdout(), payload, func() string {
		return formatter.FormatSurahs(data.Edition, surahs, wantAyahs(cmd))
	})
}

func runAudio(cmd *cobra.Command, args []string) error {
	if err := validateSurah(); err != nil {
		return err
	}

	resp, err := api.GetQuranAudio(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	data := &resp.Data
	surahs := data.Surahs
	var payload any = data
	if surahNumber > 0 {
		s, ok := data.Surah(surahNumber)
		if !ok {
			return fmt.Errorf("surah %d not found in edition %s", surahNumber, data.Edition.Identifier)
		}
		surahs = []quran.AudioSurah{*s}
		payload = s
	}

	logger.Debug().
		Str("edition", data.Edition.Identifier).
		Int("surahs", len(data.Surahs)).
		Int("ayahs", data.AyahCount()).
		Msg("Fetched audio")

	return render(cmd.OutOrStdout(), payload, func() string {
		return formatter.FormatAudioSurahs(data.Edition, surahs, wantAyahs(cmd))
	})
}
