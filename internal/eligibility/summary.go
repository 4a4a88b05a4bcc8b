package eligibility

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
)

// DefaultSummaryTemplate is used when no template is configured
const DefaultSummaryTemplate = `Screening run {{.RunID}} finished {{.FinishedAt.Format "2006-01-02 15:04 UTC"}}
Profiles: {{.ProfilesProcessed}} | Wallets: {{.WalletsProcessed}}{{if .WalletsFailed}} ({{.WalletsFailed}} failed){{end}}
Eligible: {{.EligibleCount}} (threshold {{amount .Threshold}})
{{- if .NewlyEligible}}

Newly eligible:
{{- range .NewlyEligible}}
+ @{{.Handle}}
{{- end}}
{{- end}}
{{- if .Dropped}}

Dropped:
{{- range .Dropped}}
- @{{.Handle}}
{{- end}}
{{- end}}
{{- if .Leaderboard}}

Top holders:
{{- range $i, $e := .Leaderboard}}
{{inc $i}}. @{{$e.Handle}} {{amount $e.Total}}
{{- end}}
{{- end}}
`

// Summary is the data a run summary template renders
type Summary struct {
	RunID             uuid.UUID
	FinishedAt        time.Time
	ProfilesProcessed int
	WalletsProcessed  int
	WalletsFailed     int
	EligibleCount     int
	Threshold         *big.Int
	Decimals          int
	NewlyEligible     []Member
	Dropped           []Member
	Leaderboard       []Entry
}

// RenderSummary renders the summary with the given text/template source,
// falling back to DefaultSummaryTemplate when the source is blank.
// Templates may call {{amount .X}} to format raw amounts and {{inc $i}} for 1-based ranks.
func RenderSummary(source string, summary Summary) (string, error) {
	tmpl, err := parseSummaryTemplate(source, summary.Decimals)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, summary); err != nil {
		return "", fmt.Errorf("failed to render summary template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// ValidateSummaryTemplate checks that a template source parses
func ValidateSummaryTemplate(source string) error {
	_, err := parseSummaryTemplate(source, 0)
	return err
}

func parseSummaryTemplate(source string, decimals int) (*template.Template, error) {
	if strings.TrimSpace(source) == "" {
		source = DefaultSummaryTemplate
	}

	tmpl, err := template.New("summary").
		Option("missingkey=error").
		Funcs(template.FuncMap{
			"amount": func(raw *big.Int) string { return FormatAmount(raw, decimals) },
			"inc":    func(i int) int { return i + 1 },
		}).
		Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary template: %w", err)
	}

	return tmpl, nil
}
