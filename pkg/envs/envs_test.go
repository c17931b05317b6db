package envs

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Environment
		wantErr bool
	}{
		{name: "canonical development", input: "development", want: Development},
		{name: "canonical preview", input: "preview", want: Preview},
		{name: "canonical production", input: "production", want: Production},
		{name: "dev alias", input: "dev", want: Development},
		{name: "prev alias", input: "prev", want: Preview},
		{name: "pre alias", input: "pre", want: Preview},
		{name: "prod alias", input: "prod", want: Production},
		{name: "mixed case", input: "Production", want: Production},
		{name: "surrounding whitespace", input: "  dev\n", want: Development},
		{name: "unknown name", input: "staging", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLocalFile(t *testing.T) {
	tests := []struct {
		env  Environment
		want string
	}{
		{Development, ".env"},
		{Preview, ".env.preview"},
		{Production, ".env.production"},
	}

	for _, tt := range tests {
		t.Run(tt.env.String(), func(t *testing.T) {
			if got := tt.env.LocalFile(); got != tt.want {
				t.Errorf("LocalFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAll(t *testing.T) {
	all := All()
	want := []Environment{Development, Preview, Production}
	if len(all) != len(want) {
		t.Fatalf("All() returned %d environments, want %d", len(all), len(want))
	}
	for i, env := range want {
		if all[i] != env {
			t.Errorf("All()[%d] = %v, want %v", i, all[i], env)
		}
		if !all[i].Valid() {
			t.Errorf("All()[%d] = %v reported invalid", i, all[i])
		}
	}
}

func TestValid(t *testing.T) {
	if Environment("staging").Valid() {
		t.Error("staging should not be valid")
	}
	if Environment("").Valid() {
		t.Error("empty environment should not be valid")
	}
}
