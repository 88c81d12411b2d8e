package litweave

import (
	"strings"
	"testing"
)

func mustLanguage(t *testing.T, r *Registry, ext string) *Language {
	t.Helper()
	lang, err := r.Resolve("file"+ext, "", nil)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", ext, err)
	}
	return lang
}

func TestParse(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	tests := []struct {
		name     string
		ext      string
		input    string
		want     []Section
	}{
		{
			name:  "comment then code",
			ext:   ".go",
			input: "// doc line\nfunc main() {}\n",
			want: []Section{
				{Index: 0, Comment: "doc line\n", Code: "func main() {}\n"},
			},
		},
		{
			name:  "no comments yields single section",
			ext:   ".go",
			input: "package main\n\nfunc main() {}\n",
			want: []Section{
				{Index: 0, Comment: "", Code: "package main\n\nfunc main() {}\n"},
			},
		},
		{
			name:  "only comments yields single section with empty code",
			ext:   ".py",
			input: "# one\n# two\n",
			want: []Section{
				{Index: 0, Comment: "one\ntwo\n", Code: ""},
			},
		},
		{
			name:  "consecutive comments accumulate without flushing",
			ext:   ".py",
			input: "# first\n# second\nx = 1\n",
			want: []Section{
				{Index: 0, Comment: "first\nsecond\n", Code: "x = 1\n"},
			},
		},
		{
			name:  "comment after code starts new section",
			ext:   ".py",
			input: "# a\nx = 1\n# b\ny = 2\n",
			want: []Section{
				{Index: 0, Comment: "a\n", Code: "x = 1\n"},
				{Index: 1, Comment: "b\n", Code: "y = 2\n"},
			},
		},
		{
			name:  "interpreter directive dropped",
			ext:   ".py",
			input: "#!/usr/bin/env python\n# doc\nx = 1\n",
			want: []Section{
				{Index: 0, Comment: "doc\n", Code: "x = 1\n"},
			},
		},
		{
			name:  "indented comment recognized",
			ext:   ".go",
			input: "func f() {\n\t// inner\n\treturn\n}\n",
			want: []Section{
				{Index: 0, Comment: "", Code: "func f() {\n"},
				{Index: 1, Comment: "inner\n", Code: "\treturn\n}\n"},
			},
		},
		{
			name:  "marker without trailing space stripped",
			ext:   ".py",
			input: "#terse\nx = 1\n",
			want: []Section{
				{Index: 0, Comment: "terse\n", Code: "x = 1\n"},
			},
		},
		{
			name:  "empty input yields one empty section",
			ext:   ".go",
			input: "",
			want: []Section{
				{Index: 0, Comment: "", Code: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lang := mustLanguage(t, registry, tt.ext)
			got := Parse(lang, tt.input)

			if len(got) != len(tt.want) {
				t.Fatalf("Parse() returned %d sections, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Index != tt.want[i].Index {
					t.Errorf("section %d: Index = %d, want %d", i, got[i].Index, tt.want[i].Index)
				}
				if got[i].Comment != tt.want[i].Comment {
					t.Errorf("section %d: Comment = %q, want %q", i, got[i].Comment, tt.want[i].Comment)
				}
				if got[i].Code != tt.want[i].Code {
					t.Errorf("section %d: Code = %q, want %q", i, got[i].Code, tt.want[i].Code)
				}
			}
		})
	}
}

// Concatenating every section's comment and code in order reproduces
// the input, minus comment markers and the interpreter directive.
func TestParse_Reconstruction(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	lang := mustLanguage(t, registry, ".py")

	input := "# intro\nx = 1\n\n# middle\ny = 2\nz = 3\n"
	sections := Parse(lang, input)

	var rebuilt strings.Builder
	for _, s := range sections {
		rebuilt.WriteString(s.Comment)
		rebuilt.WriteString(s.Code)
	}

	want := "intro\nx = 1\n\nmiddle\ny = 2\nz = 3\n"
	if rebuilt.String() != want {
		t.Errorf("reconstruction = %q, want %q", rebuilt.String(), want)
	}
}

func TestJoinCode(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	lang := mustLanguage(t, registry, ".py")

	sections := []*Section{
		{Index: 0, Code: "x = 1\n"},
		{Index: 1, Code: "y = 2\n"},
		{Index: 2, Code: "z = 3\n"},
	}

	got := joinCode(lang, sections)
	want := "x = 1\n" + lang.DividerText() + "y = 2\n" + lang.DividerText() + "z = 3\n"
	if got != want {
		t.Errorf("joinCode() = %q, want %q", got, want)
	}
	if want := 2; strings.Count(got, "#DIVIDER") != want {
		t.Errorf("joinCode() inserted %d dividers, want %d", strings.Count(got, "#DIVIDER"), want)
	}
}
