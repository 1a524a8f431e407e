// Package seed provides the catalog's startup inventory, either the built-in
// sample set or a YAML file supplied through configuration.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/annie29007/ds-cart/internal/catalog/domain"
)

const Currency = "INR"

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Price    string `yaml:"price"`
	Stock    int    `yaml:"stock"`
}

// Default returns the sample products the simulator ships with.
func Default() []domain.Product {
	price := func(amount int64) domain.Money {
		return domain.Money{Currency: Currency, Amount: amount}
	}
	return []domain.Product{
		{ID: 101, Name: "Pen", Category: "Stationery", Price: price(1000), Stock: 100},
		{ID: 102, Name: "Notebook", Category: "Stationery", Price: price(5000), Stock: 80},
		{ID: 103, Name: "WaterBottle", Category: "Utility", Price: price(19900), Stock: 50},
		{ID: 104, Name: "Earphones", Category: "Electronics", Price: price(39900), Stock: 25},
		{ID: 105, Name: "Mouse", Category: "Electronics", Price: price(79900), Stock: 30},
	}
}

// Load reads products from a YAML file. Prices are decimal strings.
func Load(path string) ([]domain.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	products := make([]domain.Product, 0, len(f.Products))
	for _, sp := range f.Products {
		amount, err := domain.ParseAmount(sp.Price)
		if err != nil {
			return nil, fmt.Errorf("seed product %d: %w", sp.ID, err)
		}
		products = append(products, domain.Product{
			ID:       sp.ID,
			Name:     sp.Name,
			Category: sp.Category,
			Price:    domain.Money{Currency: Currency, Amount: amount},
			Stock:    sp.Stock,
		})
	}
	return products, nil
}
