package pets

import (
	"encoding/json"
	"testing"
)

func TestPetJSON_FieldLayout(t *testing.T) {
	data, err := json.Marshal(Pet{Name: "Rex", Species: "Dog", Age: "3", ID: 1700000000000})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"name":"Rex","species":"Dog","age":"3","id":1700000000000}`
	if string(data) != want {
		t.Fatalf("Marshal = %s, want %s", data, want)
	}
}

func TestPetJSON_AgeForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"string", `{"age":"3"}`, "3"},
		{"integer", `{"age":4}`, "4"},
		{"fraction", `{"age":2.5}`, "2.5"},
		{"null", `{"age":null}`, ""},
		{"missing", `{"name":"Rex"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Pet
			if err := json.Unmarshal([]byte(tt.in), &p); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if p.Age != tt.want {
				t.Fatalf("Age = %q, want %q", p.Age, tt.want)
			}
		})
	}
}

func TestPetJSON_RejectsObjectAge(t *testing.T) {
	var p Pet
	if err := json.Unmarshal([]byte(`{"age":{"years":3}}`), &p); err == nil {
		t.Fatalf("Unmarshal returned nil error for object age")
	}
}

func TestDescribe(t *testing.T) {
	p := Pet{Name: "Rex", Species: "Dog", Age: "3"}
	if got, want := p.Describe(), "Rex is a Dog and is 3 years old"; got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
}
