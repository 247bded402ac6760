package metadata

import (
	"strings"
	"testing"
)

func TestFormatResult(t *testing.T) {
	cases := []struct {
		name     string
		id       string
		text     string
		limit    int
		expected string
	}{
		{
			"valid",
			AppName,
			"MyApp",
			30,
			"✅ App Name: 5/30 characters (25 remaining)",
		},
		{
			"at_limit",
			Subtitle,
			strings.Repeat("s", 30),
			30,
			"✅ Subtitle: 30/30 characters (0 remaining)",
		},
		{
			"exceeds",
			Keywords,
			strings.Repeat("a", 101),
			100,
			"❌ Keywords: 101/100 characters (EXCEEDS by 1)",
		},
		{
			"apostrophe_label",
			WhatsNew,
			"Bug fixes",
			4000,
			"✅ What's New: 9/4000 characters (3991 remaining)",
		},
		{
			"unknown_field",
			"app_icon",
			"icon",
			2,
			"❌ app_icon: 4/2 characters (EXCEEDS by 2)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := FormatResult(tc.id, tc.text, tc.limit)

			if actual != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, actual)
			}
		})
	}
}

func TestRenderReport(t *testing.T) {
	border := strings.Repeat("=", 60)

	submission := NewSubmission(Entry{AppName, "MyApp"})

	expected := "\n" + border + "\n" +
		"📱 APPLE APP STORE METADATA VALIDATION\n" +
		border + "\n\n" +
		"✅ App Name: 5/30 characters (25 remaining)\n" +
		"\n" + border + "\n" +
		"✅ All fields pass validation!\n" +
		border + "\n\n"

	actual := RenderReport(submission)
	if actual != expected {
		t.Errorf("expected report:\n%s\ngot:\n%s", expected, actual)
	}
}

func TestRenderReportFailure(t *testing.T) {
	submission := NewSubmission(Entry{Keywords, strings.Repeat("a", 101)})

	actual := RenderReport(submission)

	for _, expected := range []string{
		"❌ Keywords: 101/100 characters (EXCEEDS by 1)",
		"❌ Some fields exceed character limits - please revise",
	} {
		if !strings.Contains(actual, expected) {
			t.Errorf("expected report %q to contain %q", actual, expected)
		}
	}

	if strings.Contains(actual, "All fields pass validation!") {
		t.Errorf("expected report not to claim all fields pass")
	}
}

func TestRenderReportEmpty(t *testing.T) {
	report := NewReport(NewSubmission())

	if !report.AllValid() {
		t.Errorf("expected empty report to be all valid")
	}

	if len(report.Lines) != 0 {
		t.Errorf("expected no lines, got %d", len(report.Lines))
	}

	actual := RenderReport(NewSubmission())
	if !strings.Contains(actual, "All fields pass validation!") {
		t.Errorf("expected empty report %q to pass", actual)
	}

	if strings.Contains(actual, "characters") {
		t.Errorf("expected empty report %q to contain no field lines", actual)
	}
}

func TestNewReportSkipsUnknownFieldsAndKeepsOrder(t *testing.T) {
	submission := NewSubmission(
		Entry{WhatsNew, "Fixes"},
		Entry{"unknown", "x"},
		Entry{AppName, "MyApp"},
		Entry{"another", "y"},
	)

	report := NewReport(submission)

	if len(report.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(report.Lines))
	}

	if report.Lines[0].Field.ID != WhatsNew || report.Lines[1].Field.ID != AppName {
		t.Errorf("expected lines in insertion order, got %s, %s", report.Lines[0].Field.ID, report.Lines[1].Field.ID)
	}

	rendered := RenderReport(submission)
	if count := strings.Count(rendered, " characters ("); count != 2 {
		t.Errorf("expected 2 field lines in report, got %d", count)
	}
}

func TestReportFailures(t *testing.T) {
	submission := NewSubmission(
		Entry{AppName, strings.Repeat("a", 31)},
		Entry{Subtitle, "ok"},
		Entry{Keywords, strings.Repeat("k", 200)},
	)

	report := NewReport(submission)

	if report.Failures() != 2 {
		t.Errorf("expected 2 failures, got %d", report.Failures())
	}

	if report.AllValid() {
		t.Errorf("expected report not to be all valid")
	}
}

func TestASCIIRenderer(t *testing.T) {
	submission := NewSubmission(
		Entry{AppName, "MyApp"},
		Entry{Keywords, strings.Repeat("a", 101)},
	)

	actual := ASCIIRenderer.Render(NewReport(submission))

	for _, expected := range []string{
		"\nAPPLE APP STORE METADATA VALIDATION\n",
		"[PASS] App Name: 5/30 characters (25 remaining)",
		"[FAIL] Keywords: 101/100 characters (EXCEEDS by 1)",
		"[FAIL] Some fields exceed character limits - please revise",
	} {
		if !strings.Contains(actual, expected) {
			t.Errorf("expected report %q to contain %q", actual, expected)
		}
	}
}
