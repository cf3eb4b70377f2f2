package importer

import (
	"strings"
	"testing"
)

func TestParseText(t *testing.T) {
	t.Parallel()

	text := `# oil;effect;degree
Lavendel fein; Wirkung gegen Schmerzen ;2

Immortelle;Wirkung   gegen Narben;4
`
	rows, err := ParseText(text)
	if err != nil {
		t.Fatalf("ParseText returned error: %v", err)
	}
	want := []Row{
		{Line: 2, Parent: "Lavendel fein", Child: "Wirkung gegen Schmerzen", Strength: 2},
		{Line: 4, Parent: "Immortelle", Child: "Wirkung gegen Narben", Strength: 4},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(rows), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, want[i], rows[i])
		}
	}
}

func TestParseCSVSkipsHeader(t *testing.T) {
	t.Parallel()

	input := "Öl;Molekül;Anteil\nLavendel fein;Linalool;35,5 %\n\"Zitrone; kaltgepresst\";Limonen;65\n"
	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %+v", rows)
	}
	if rows[0].Strength != 35.5 || rows[0].Line != 2 {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	if rows[1].Parent != "Zitrone; kaltgepresst" {
		t.Fatalf("expected quoted parent, got %q", rows[1].Parent)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "too few fields", input: "Lavendel fein;2", want: "line 1"},
		{name: "strength not numeric", input: "Lavendel fein;Linalool;2\nImmortelle;Nerylacetat;viel", want: "line 2"},
		{name: "missing child", input: "Lavendel fein;Linalool;2\nImmortelle; ;3", want: "names are required"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseText(tt.input)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestReadDispatchesOnExtension(t *testing.T) {
	t.Parallel()

	rows, err := Read("sheet.CSV", []byte("a;b;1\n"))
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected one csv row, got %+v (%v)", rows, err)
	}
	rows, err = Read("sheet.txt", []byte("a;b;1\nc;d;2\n"))
	if err != nil || len(rows) != 2 {
		t.Fatalf("expected two text rows, got %+v (%v)", rows, err)
	}
	if _, err := Read("sheet.pdf", []byte("not a pdf")); err == nil {
		t.Fatal("expected error for malformed pdf")
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	kind, err := ParseKind(" Oil-Effects ")
	if err != nil || kind != OilEffects {
		t.Fatalf("expected oil-effects, got %q (%v)", kind, err)
	}
	if _, err := ParseKind("perfumes"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
