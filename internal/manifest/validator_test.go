package manifest

import (
	"strings"
	"testing"
)

func TestValidateJSONFile_Valid(t *testing.T) {
	result, err := ValidateJSONFile(SchemaVSCodeTasks, testPath("valid-tasks.json"))
	if err != nil {
		t.Fatalf("ValidateJSONFile() error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("  %s (keyword=%s)", issue, issue.Keyword)
		}
	}
}

func TestValidateJSONFile_Invalid(t *testing.T) {
	tests := []struct {
		schema   string
		file     string
		wantPath string
	}{
		{SchemaVSCodeTasks, "invalid-tasks-missing-command.json", "/tasks/0"},
		{SchemaVSCodeSettings, "invalid-settings-eol.json", "/files.eol"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateJSONFile(tt.schema, testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateJSONFile() unexpected error: %v", err)
			}
			if result.Valid {
				t.Fatalf("expected %s to be invalid", tt.file)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at %s, got %v", tt.wantPath, result.Issues)
			}
		})
	}
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	_, err := ValidateJSON(SchemaVSCodeSettings, []byte(`{"deno.enable": `))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "parsing JSON") {
		t.Errorf("error = %v, want parsing JSON", err)
	}
}

func TestValidateJSON_UnknownSchema(t *testing.T) {
	_, err := ValidateJSON("launch", []byte(`{}`))
	if err == nil {
		t.Fatal("expected error for unknown schema")
	}
}

func TestValidationIssueString(t *testing.T) {
	tests := []struct {
		issue ValidationIssue
		want  string
	}{
		{ValidationIssue{Path: "/version", Message: "value must be '2.0.0'"}, "/version: value must be '2.0.0'"},
		{ValidationIssue{Message: "missing property"}, "missing property"},
	}
	for _, tt := range tests {
		if got := tt.issue.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
