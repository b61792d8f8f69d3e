package catalog

import "context"

// Source yields the products to lay out.
type Source interface {
	Products(ctx context.Context) ([]Product, error)
}

// FileSource reads products from a JSON or TOML file on every call.
type FileSource struct {
	Path string
}

// Products reads the file.
func (s FileSource) Products(ctx context.Context) ([]Product, error) {
	return ReadFile(s.Path)
}

// StaticSource serves a fixed slice.
type StaticSource []Product

// Products returns a copy of the slice.
func (s StaticSource) Products(ctx context.Context) ([]Product, error) {
	return append([]Product(nil), s...), nil
}

var (
	_ Source = FileSource{}
	_ Source = StaticSource{}
	_ Source = (*MongoSource)(nil)
)
