package schema

import (
	"encoding/json"
	"testing"
)

func TestValidatePresent_Success(t *testing.T) {
	schema := Schema{
		"folder":      String(),
		"maxResults":  Int(),
		"markAsRead":  Bool(),
		"temperature": Float(),
	}

	data := map[string]any{
		"folder":      "INBOX",
		"maxResults":  10,
		"markAsRead":  false,
		"temperature": 0.7,
	}

	err := ValidatePresent(schema, data)
	if err != nil {
		t.Errorf("ValidatePresent() error = %v, want nil", err)
	}
}

func TestValidatePresent_SkipsAbsentFields(t *testing.T) {
	schema := Schema{
		"folder":     String(),
		"maxResults": Int(),
	}

	data := map[string]any{
		"folder": "INBOX",
		// missing maxResults is fine for present-only validation
	}

	if err := ValidatePresent(schema, data); err != nil {
		t.Errorf("ValidatePresent() error = %v, want nil", err)
	}
}

func TestValidatePresent_WrongType(t *testing.T) {
	schema := Schema{
		"maxResults": Int(),
	}

	data := map[string]any{
		"maxResults": "ten",
	}

	err := ValidatePresent(schema, data)
	if err == nil {
		t.Fatal("ValidatePresent() should return error for wrong type")
	}

	aggr, ok := err.(*AggregateError)
	if !ok {
		t.Fatalf("error should be *AggregateError, got %T", err)
	}

	if len(aggr.Errors) != 1 {
		t.Errorf("ValidatePresent() = %d errors, want 1", len(aggr.Errors))
	}

	validErr, ok := aggr.Errors[0].(*ValidationError)
	if !ok {
		t.Fatalf("error should be *ValidationError, got %T", aggr.Errors[0])
	}

	if validErr.Key != "maxResults" {
		t.Errorf("error key = %q, want %q", validErr.Key, "maxResults")
	}
}

func TestValidatePresent_UnknownField(t *testing.T) {
	schema := Schema{
		"folder": String(),
	}

	err := ValidatePresent(schema, map[string]any{"extra": true})
	if err == nil {
		t.Fatal("ValidatePresent() should return error for unknown field")
	}
}

func TestValidatePresent_MultipleErrors(t *testing.T) {
	schema := Schema{
		"folder":     String(),
		"maxResults": Int(),
		"markAsRead": Bool(),
	}

	data := map[string]any{
		"folder":     42,
		"markAsRead": "yes",
		"extra":      true,
	}

	err := ValidatePresent(schema, data)
	if err == nil {
		t.Fatal("ValidatePresent() should return error")
	}

	errs := ValidationErrors(err)
	if len(errs) != 3 {
		t.Errorf("ValidatePresent() = %d errors, want 3", len(errs))
	}
}

func TestSchema_JSONRoundTrip(t *testing.T) {
	original := Schema{
		"folder":    String(),
		"statement": Enum("insert", "update", "delete"),
		"prompt":    Template(),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded Schema
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for key := range original {
		if decoded[key] == nil {
			t.Fatalf("decoded schema missing %q", key)
		}
		if decoded[key].Name() != original[key].Name() {
			t.Errorf("field %q = %q, want %q", key, decoded[key].Name(), original[key].Name())
		}
	}
}
