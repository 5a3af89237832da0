package domain

import "testing"

func TestResolveDoc(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantKind DocKind
		wantURL  string
	}{
		{
			name:     "topic",
			query:    "orda",
			wantKind: DocTopic,
			wantURL:  docBaseURL + "/ORDA/overview",
		},
		{
			name:     "topic with prefix",
			query:    "error handling basics",
			wantKind: DocTopic,
			wantURL:  docBaseURL + "/Concepts/error-handling",
		},
		{
			name:     "class",
			query:    "Entity",
			wantKind: DocClass,
			wantURL:  docBaseURL + "/API/EntityClass",
		},
		{
			name:     "class with 4d prefix",
			query:    "4D.File",
			wantKind: DocClass,
			wantURL:  docBaseURL + "/API/FileClass",
		},
		{
			name:     "condensed class name",
			query:    "IMAPTransporter",
			wantKind: DocClass,
			wantURL:  docBaseURL + "/API/IMAPTransporterClass",
		},
		{
			name:     "command fallback",
			query:    "QUERY BY FORMULA",
			wantKind: DocCommand,
			wantURL:  docBaseURL + "/commands/query-by-formula",
		},
		{
			name:     "command with punctuation",
			query:    "OB Get array",
			wantKind: DocCommand,
			wantURL:  docBaseURL + "/commands/ob-get-array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDoc(tt.query)

			if got.Query != tt.query {
				t.Fatalf("Query = %q, want %q", got.Query, tt.query)
			}

			if got.Kind != tt.wantKind {
				t.Fatalf("Kind = %s, want %s", got.Kind, tt.wantKind)
			}

			if got.URL != tt.wantURL {
				t.Fatalf("URL = %s, want %s", got.URL, tt.wantURL)
			}
		})
	}
}

func TestCommandSlug(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"ALERT", "alert"},
		{"String", "string"},
		{"OBJECT Get name", "object-get-name"},
		{"  Current time  ", "current-time"},
		{"C_TEXT", "c-text"},
	}

	for _, tt := range tests {
		if got := commandSlug(tt.command); got != tt.want {
			t.Fatalf("commandSlug(%q) = %q, want %q", tt.command, got, tt.want)
		}
	}
}
