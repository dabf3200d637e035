package config

import (
	"fmt"
	"os"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"gopkg.in/yaml.v3"
)

type productCatalogFile struct {
	Products []domain.Product `yaml:"products"`
}

// LoadProducts reads the product catalog from a YAML file. An empty path
// yields the built-in catalog.
func LoadProducts(path string) ([]domain.Product, error) {
	if path == "" {
		return append([]domain.Product(nil), domain.DefaultProducts...), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read product catalog: %w", err)
	}
	return ParseProducts(raw)
}

// ParseProducts decodes and checks a YAML product catalog.
func ParseProducts(raw []byte) ([]domain.Product, error) {
	var file productCatalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse product catalog: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("product catalog is empty")
	}
	seen := make(map[string]bool, len(file.Products))
	for _, p := range file.Products {
		if p.ProductID == "" {
			return nil, fmt.Errorf("product catalog: product without id")
		}
		if seen[p.ProductID] {
			return nil, fmt.Errorf("product catalog: duplicate product %s", p.ProductID)
		}
		seen[p.ProductID] = true
	}
	return file.Products, nil
}
