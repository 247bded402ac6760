package metadata

import "unicode/utf8"

type Result struct {
	Valid     bool
	Count     int
	Remaining int
}

// Validate counts text by code point, so multi-byte characters count once.
func Validate(text string, limit int) Result {
	count := utf8.RuneCountInString(text)

	return Result{
		Valid:     count <= limit,
		Count:     count,
		Remaining: limit - count,
	}
}

// ValidateAll validates the recognized fields present in the submission.
// Unknown identifiers and absent fields are left out of the result.
func ValidateAll(submission *Submission) map[string]Result {
	results := make(map[string]Result, submission.Len())

	for _, entry := range submission.Entries() {
		field, err := Lookup(entry.Field)
		if err != nil {
			continue
		}

		results[entry.Field] = Validate(entry.Text, field.Limit)
	}

	return results
}
