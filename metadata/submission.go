package metadata

type Entry struct {
	Field string
	Text  string
}

// Submission holds field values in the order they were collected.
// Setting an existing field replaces its text but keeps its position.
type Submission struct {
	entries []Entry
}

func NewSubmission(entries ...Entry) *Submission {
	s := &Submission{}
	for _, entry := range entries {
		s.Set(entry.Field, entry.Text)
	}
	return s
}

func (s *Submission) Set(field string, text string) {
	for i := range s.entries {
		if s.entries[i].Field == field {
			s.entries[i].Text = text
			return
		}
	}

	s.entries = append(s.entries, Entry{Field: field, Text: text})
}

func (s *Submission) Get(field string) (string, bool) {
	for _, entry := range s.Entries() {
		if entry.Field == field {
			return entry.Text, true
		}
	}

	return "", false
}

func (s *Submission) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

func (s *Submission) Entries() []Entry {
	if s == nil {
		return nil
	}

	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}
