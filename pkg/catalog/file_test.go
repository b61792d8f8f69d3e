package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadJSONArrayAndObject(t *testing.T) {
	array := `[{"id": 1, "name": "Laptop", "category": "Elettronica", "price": 1299.99, "quantity": 15}]`
	object := `{"products": [{"id": 2, "name": "Router", "category": "Rete", "price": 149.99, "quantity": 32}]}`

	got, err := Read(strings.NewReader(array), FormatJSON)
	if err != nil {
		t.Fatalf("array: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Laptop" || got[0].Quantity != 15 {
		t.Errorf("array = %+v", got)
	}

	got, err = Read(strings.NewReader(object), FormatJSON)
	if err != nil {
		t.Fatalf("object: %v", err)
	}
	if len(got) != 1 || got[0].Category != "Rete" {
		t.Errorf("object = %+v", got)
	}
}

func TestReadTOML(t *testing.T) {
	data := `
[[products]]
id = 1
name = "Cuffie Sony"
category = "Audio"
price = 399.99
quantity = 22

[[products]]
id = 2
name = "Speaker JBL"
category = "Audio"
price = 129.99
quantity = 40
`
	got, err := Read(strings.NewReader(data), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Name != "Speaker JBL" || got[1].Price != 129.99 {
		t.Errorf("Read() = %+v", got)
	}
}

func TestReadRejectsDuplicates(t *testing.T) {
	_, err := Read(strings.NewReader(`[{"id": 1}, {"id": 1}]`), FormatJSON)
	if !errors.Is(err, ErrDuplicateProduct) {
		t.Errorf("Read() error = %v, want ErrDuplicateProduct", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"catalog.json", "catalog.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := WriteFile(path, Sample()); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			got, err := FileSource{Path: path}.Products(context.Background())
			if err != nil {
				t.Fatalf("Products: %v", err)
			}
			if len(got) != 40 || got[39].Name != Sample()[39].Name {
				t.Errorf("read back %d products", len(got))
			}
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte("id,name\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ReadFile() error = %v, want ErrUnsupportedFormat", err)
	}
	if err := WriteFile(path, nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("WriteFile() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestStaticSourceCopies(t *testing.T) {
	src := StaticSource(Sample())
	got, err := src.Products(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	got[0].Name = "changed"
	if src[0].Name == "changed" {
		t.Error("StaticSource returned its backing slice")
	}
}
