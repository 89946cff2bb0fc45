package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load default catalog: %v", err)
	}

	if got := len(c.Assets); got != 13 {
		t.Errorf("default catalog has %d asset items, want 13", got)
	}
	if got := len(c.Liabilities); got != 7 {
		t.Errorf("default catalog has %d liability items, want 7", got)
	}
	if got := len(c.Income); got != 3 {
		t.Errorf("default catalog has %d income entries, want 3", got)
	}
	if got := len(c.Expenses); got != 10 {
		t.Errorf("default catalog has %d expense entries, want 10", got)
	}

	if c.Assets[0].Name != "Inmueble 1" {
		t.Errorf("first asset = %q, want %q", c.Assets[0].Name, "Inmueble 1")
	}
	if c.Liabilities[len(c.Liabilities)-1].Name != "Otros" {
		t.Errorf("last liability = %q, want %q", c.Liabilities[len(c.Liabilities)-1].Name, "Otros")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
[[assets]]
name = "Casa"
help = "Valor de la casa"

[[liabilities]]
name = "Hipoteca"
help = "Saldo de la hipoteca"

[[income]]
name = "Salario"
help = "Salario mensual"

[[expenses]]
name = "Arriendo"
help = "Arriendo mensual"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q): %v", path, err)
	}
	if len(c.Assets) != 1 || c.Assets[0].Name != "Casa" {
		t.Errorf("unexpected assets: %+v", c.Assets)
	}
}

func TestLoadRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "empty partition",
			content: `
[[assets]]
name = "Casa"
`,
		},
		{
			name: "duplicate item",
			content: `
[[assets]]
name = "Casa"
[[assets]]
name = "Casa"
[[liabilities]]
name = "Hipoteca"
[[income]]
name = "Salario"
[[expenses]]
name = "Arriendo"
`,
		},
		{
			name: "unnamed item",
			content: `
[[assets]]
help = "sin nombre"
[[liabilities]]
name = "Hipoteca"
[[income]]
name = "Salario"
[[expenses]]
name = "Arriendo"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load accepted an invalid catalog")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load accepted a missing catalog file")
	}
}
