package metadata

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	borderWidth = 60
	reportTitle = "APPLE APP STORE METADATA VALIDATION"
	allPassed   = "All fields pass validation!"
	someFailed  = "Some fields exceed character limits - please revise"
)

type Line struct {
	Field  Field
	Text   string
	Result Result
}

type Report struct {
	Lines []Line
}

// NewReport validates every recognized field in submission order.
func NewReport(submission *Submission) Report {
	report := Report{}

	for _, entry := range submission.Entries() {
		field, err := Lookup(entry.Field)
		if err != nil {
			continue
		}

		report.Lines = append(report.Lines, Line{
			Field:  field,
			Text:   entry.Text,
			Result: Validate(entry.Text, field.Limit),
		})
	}

	return report
}

// AllValid is true for an empty report.
func (r Report) AllValid() bool {
	return r.Failures() == 0
}

func (r Report) Failures() int {
	failures := 0
	for _, line := range r.Lines {
		if !line.Result.Valid {
			failures++
		}
	}
	return failures
}

type Renderer struct {
	Pass  string
	Fail  string
	Title string
	Color bool
}

var DefaultRenderer = Renderer{Pass: "✅", Fail: "❌", Title: "📱 "}

var ASCIIRenderer = Renderer{Pass: "[PASS]", Fail: "[FAIL]"}

func (r Renderer) indicator(valid bool) string {
	if valid {
		if r.Color {
			return color.GreenString(r.Pass)
		}
		return r.Pass
	}

	if r.Color {
		return color.RedString(r.Fail)
	}
	return r.Fail
}

func (r Renderer) FormatLine(line Line) string {
	result := line.Result
	out := fmt.Sprintf("%s %s: %d/%d characters", r.indicator(result.Valid), line.Field.Label, result.Count, line.Field.Limit)

	if result.Valid {
		return out + fmt.Sprintf(" (%d remaining)", result.Remaining)
	}

	return out + fmt.Sprintf(" (EXCEEDS by %d)", -result.Remaining)
}

func (r Renderer) Render(report Report) string {
	var b strings.Builder
	border := strings.Repeat("=", borderWidth)

	b.WriteString("\n" + border + "\n")
	b.WriteString(r.Title + reportTitle + "\n")
	b.WriteString(border + "\n\n")

	for _, line := range report.Lines {
		b.WriteString(r.FormatLine(line) + "\n")
	}

	b.WriteString("\n" + border + "\n")
	if report.AllValid() {
		b.WriteString(r.indicator(true) + " " + allPassed + "\n")
	} else {
		b.WriteString(r.indicator(false) + " " + someFailed + "\n")
	}
	b.WriteString(border + "\n\n")

	return b.String()
}

// FormatResult renders a single field. Unknown identifiers are labelled
// with the identifier itself.
func FormatResult(id string, text string, limit int) string {
	field, err := Lookup(id)
	if err != nil {
		field = Field{ID: id, Label: id}
	}
	field.Limit = limit

	return DefaultRenderer.FormatLine(Line{
		Field:  field,
		Text:   text,
		Result: Validate(text, limit),
	})
}

func RenderReport(submission *Submission) string {
	return DefaultRenderer.Render(NewReport(submission))
}
