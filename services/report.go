package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"deal-checker/i18n"
	"deal-checker/models"
	"deal-checker/utils"
)

// ErrNoAnalysis marks a report without any analysis section.
var ErrNoAnalysis = errors.New("report contains no analysis")

// ReportBuilder turns raw analysis reports into display-ready reports.
type ReportBuilder struct {
	logger *utils.Logger
}

func NewReportBuilder(logger *utils.Logger) *ReportBuilder {
	return &ReportBuilder{logger: logger}
}

// Build derives the normalized report for lang. It returns nil when the raw
// report holds no analysis; callers then suppress the result view.
func (b *ReportBuilder) Build(raw *models.RawAnalysisReport, lang string) *models.NormalizedReport {
	if raw == nil {
		return nil
	}
	lang = i18n.Normalize(lang)

	analysis := ToAnalysis(SelectAnalysis(raw.Analysis, lang))
	if analysis == nil {
		b.logger.Debug("[report] %v for %q", ErrNoAnalysis, raw.Meta.URL)
		return nil
	}

	delta := ComputeDelta(raw.Data.Price, analysis.MarketPriceEstimate)
	if delta.Estimated != NormalizeAmount(analysis.MarketPriceEstimate) {
		b.logger.Debug("[report] implausible estimate %#v replaced by current price %d",
			analysis.MarketPriceEstimate, delta.Current)
	}

	title := raw.Meta.Title
	if title == "" {
		title = i18n.Lookup(lang).Vehicle
	}
	km := NormalizeAmount(raw.Data.Km)

	return &models.NormalizedReport{
		CurrentPrice:     delta.Current,
		EstimatedPrice:   delta.Estimated,
		NegotiationDelta: delta.Delta,
		DisplayEstimate:  i18n.FormatInt(lang, delta.Estimated),
		RatingBucket:     ClassifyRating(analysis.Rating),
		TaggedArguments:  TagArguments(analysis.Arguments),

		Lang:           lang,
		Title:          title,
		Image:          raw.Meta.Image,
		URL:            raw.Meta.URL,
		Km:             km,
		DisplayKm:      i18n.FormatInt(lang, km),
		FirstReg:       raw.Data.EZ,
		Power:          raw.Data.Power,
		RatingLabel:    RatingLabel(analysis.Rating),
		Script:         analysis.Script,
		DisplayCurrent: FormatEuro(lang, delta.Current),
		DisplayDelta:   FormatDelta(lang, delta.Delta),
	}
}

const printWidth = 54

// Print writes a terminal rendering of the report.
func (b *ReportBuilder) Print(w io.Writer, r *models.NormalizedReport) {
	ui := i18n.Lookup(r.Lang)
	sep := strings.Repeat("═", printWidth)
	thin := strings.Repeat("─", printWidth)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  🚗 %s\033[0m\n", strings.ToUpper(ui.ResultTitle))
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(w, "  \033[1m%s\033[0m\n", runewidth.Truncate(r.Title, printWidth-2, "..."))
	fmt.Fprintf(w, "  %s\n", thin)
	printRow(w, "km", r.DisplayKm)
	if r.FirstReg != "" {
		printRow(w, ui.FirstRegistration, r.FirstReg)
	}
	if r.Power != "" {
		printRow(w, "PS/kW", r.Power)
	}
	printRow(w, "Rating", ratingColor(r.RatingBucket)+r.RatingLabel+"\033[0m")
	fmt.Fprintln(w)

	printRow(w, ui.ActualPrice, "\033[1m"+r.DisplayCurrent+"\033[0m")
	printRow(w, ui.MarketValue, "\033[1;34m"+r.DisplayEstimate+" €\033[0m")
	printRow(w, ui.Savings, "\033[1;32m"+r.DisplayDelta+"\033[0m")
	fmt.Fprintln(w)

	if len(r.TaggedArguments) > 0 {
		fmt.Fprintf(w, "\033[1;33m  %s\033[0m\n", ui.Ammo)
		fmt.Fprintf(w, "  %s\n", thin)
		for _, arg := range r.TaggedArguments {
			fmt.Fprintf(w, "  %s %s\n", runewidth.FillRight(arg.Icon, 2), strings.TrimSpace(arg.Text))
		}
		fmt.Fprintln(w)
	}

	if r.Script != "" {
		fmt.Fprintf(w, "\033[1;33m  %s\033[0m\n", ui.Script)
		fmt.Fprintf(w, "  %s\n", thin)
		fmt.Fprintf(w, "  \"%s\"\n", r.Script)
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "  %s\n\n", ui.Footer)
}

func printRow(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s : %s\n", runewidth.FillRight(runewidth.Truncate(label, 28, "..."), 28), value)
}

func ratingColor(b models.RatingBucket) string {
	switch b {
	case models.RatingExpensive:
		return "\033[1;31m"
	case models.RatingFair:
		return "\033[1;33m"
	default:
		return "\033[1;32m"
	}
}
