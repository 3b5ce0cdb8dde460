package display

import (
	"fmt"
	"strings"

	"github.com/s0up4200/alquran/quran"
)

const (
	branch     = "├── "
	lastBranch = "╰── "
	pipe       = "│   "
	blank      = "    "
)

// ConsoleFormatter renders API results as trees for the terminal
type ConsoleFormatter struct {
	colors palette
}

// NewConsoleFormatter creates a formatter; color adds ANSI styling
func NewConsoleFormatter(color bool) *ConsoleFormatter {
	return &ConsoleFormatter{colors: palette{enabled: color}}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func treeParts(isLast bool) (prefix, indent string) {
	if isLast {
		return lastBranch, blank
	}
	return branch, pipe
}

// FormatEditionList renders editions with their language, format, type and
// direction
func (f *ConsoleFormatter) FormatEditionList(editions []quran.Edition) string {
	if len(editions) == 0 {
		return "No editions found\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", f.colors.bold("Editions"), len(editions))

	for i, e := range editions {
		isLast := i == len(editions)-1
		prefix, indent := treeParts(isLast)

		fmt.Fprintf(&sb, "%s%s  %s\n", prefix, f.colors.cyan(e.Identifier), e.EnglishName)
		if e.Name != "" && e.Name != e.EnglishName {
			fmt.Fprintf(&sb, "%s%s\n", indent, e.Name)
		}

		parts := []string{
			"Language: " + e.Language.String(),
			"Format: " + e.Format.String(),
			"Type: " + e.Type.String(),
		}
		if e.Direction != nil {
			parts = append(parts, "Direction: "+*e.Direction)
		}
		fmt.Fprintf(&sb, "%s%s\n", indent, f.colors.dim(strings.Join(parts, " | ")))

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatTokens renders a titled list of plain tokens such as language codes
func (f *ConsoleFormatter) FormatTokens(title string, tokens []string) string {
	if len(tokens) == 0 {
		return fmt.Sprintf("No %s found\n", strings.ToLower(title))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", f.colors.bold(title), len(tokens))
	for _, t := range tokens {
		fmt.Fprintf(&sb, "  • %s\n", t)
	}
	sb.WriteString("\n")
	return sb.String()
}

func (f *ConsoleFormatter) editionHeader(sb *strings.Builder, e quran.QuranEdition, surahs, ayahs int) {
	fmt.Fprintf(sb, "\n%s (%s)\n", f.colors.bold(e.EnglishName), f.colors.cyan(e.Identifier))
	fmt.Fprintf(sb, "%s\n\n", f.colors.dim(fmt.Sprintf("%s, %s, %s",
		plural(surahs, "surah"), plural(ayahs, "ayah"), e.Type.String())))
}

func (f *ConsoleFormatter) surahLine(number int, englishName, translation string, revelation quran.RevelationType, ayahs int) string {
	line := fmt.Sprintf("%d. %s", number, englishName)
	if translation != "" {
		line += fmt.Sprintf(" (%s)", translation)
	}
	return fmt.Sprintf("%s  %s", f.colors.bold(line), f.colors.dim(fmt.Sprintf("%s | %s", revelation, plural(ayahs, "ayah"))))
}

func sajdaNote(s quran.SajdaType) string {
	if !s.Required() {
		return ""
	}
	if d, ok := s.Detail(); ok && d.Obligatory {
		return " [sajda: obligatory]"
	}
	if d, ok := s.Detail(); ok && d.Recommended {
		return " [sajda: recommended]"
	}
	return " [sajda]"
}

// FormatSurahs renders text surahs; showAyahs adds one line per ayah
func (f *ConsoleFormatter) FormatSurahs(edition quran.QuranEdition, surahs []quran.Surah, showAyahs bool) string {
	if len(surahs) == 0 {
		return "No surahs found\n"
	}

	var total int
	for i := range surahs {
		total += surahs[i].AyahCount()
	}

	var sb strings.Builder
	f.editionHeader(&sb, edition, len(surahs), total)

	for i, s := range surahs {
		isLast := i == len(surahs)-1
		prefix, indent := treeParts(isLast)

		fmt.Fprintf(&sb, "%s%s\n", prefix, f.surahLine(s.Number, s.EnglishName, s.EnglishNameTranslation, s.RevelationType, len(s.Ayahs)))
		if showAyahs {
			for _, a := range s.Ayahs {
				fmt.Fprintf(&sb, "%s%s %s%s\n", indent, f.colors.dim(fmt.Sprintf("%3d", a.NumberInSurah)), a.Text, sajdaNote(a.Sajda))
			}
		}
		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatAudioSurahs renders audio surahs; showAyahs lists the primary
// recording of every ayah
func (f *ConsoleFormatter) FormatAudioSurahs(edition quran.QuranEdition, surahs []quran.AudioSurah, showAyahs bool) string {
	if len(surahs) == 0 {
		return "No surahs found\n"
	}

	var total int
	for i := range surahs {
		total += surahs[i].AyahCount()
	}

	var sb strings.Builder
	f.editionHeader(&sb, edition, len(surahs), total)

	for i, s := range surahs {
		isLast := i == len(surahs)-1
		prefix, indent := treeParts(isLast)

		fmt.Fprintf(&sb, "%s%s\n", prefix, f.surahLine(s.Number, s.EnglishName, s.EnglishNameTranslation, s.RevelationType, len(s.Ayahs)))
		if showAyahs {
			for _, a := range s.Ayahs {
				fmt.Fprintf(&sb, "%s%s %s%s\n", indent, f.colors.dim(fmt.Sprintf("%3d", a.NumberInSurah)), a.Audio, sajdaNote(a.Sajda))
				if n := len(a.AudioSecondary); n > 0 {
					fmt.Fprintf(&sb, "%s    %s\n", indent, f.colors.dim(fmt.Sprintf("+%d secondary", n)))
				}
			}
		}
		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}
