package store

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"

	"farm-market-api/models"
)

//go:embed seed.yaml
var seedData []byte

type seedUser struct {
	ID       string `yaml:"id"`
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	FarmName string `yaml:"farm_name"`
	Phone    string `yaml:"phone"`
	Address  string `yaml:"address"`
}

type seedProduct struct {
	ID          string `yaml:"id"`
	FarmerID    string `yaml:"farmer_id"`
	FarmerName  string `yaml:"farmer_name"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Price       string `yaml:"price"`
	Unit        string `yaml:"unit"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Stock       int    `yaml:"stock"`
	Location    string `yaml:"location"`
}

type seedFile struct {
	Users    []seedUser    `yaml:"users"`
	Products []seedProduct `yaml:"products"`
}

// seedState parses the embedded demo data into the initial state. There is no
// persistence: this is all the data the process ever starts with.
func seedState() (State, error) {
	var f seedFile
	if err := yaml.Unmarshal(seedData, &f); err != nil {
		return State{}, fmt.Errorf("parse seed data: %w", err)
	}

	st := State{ShowNewsletter: true}
	for _, u := range f.Users {
		role := models.UserRole(u.Role)
		if !role.Valid() {
			return State{}, fmt.Errorf("seed user %s: unknown role %q", u.ID, u.Role)
		}
		st.Users = append(st.Users, models.User{
			ID:       u.ID,
			Email:    u.Email,
			Name:     u.Name,
			Role:     role,
			Phone:    u.Phone,
			Address:  u.Address,
			FarmName: u.FarmName,
		})
	}
	for _, p := range f.Products {
		category := models.ProductCategory(p.Category)
		if !category.Valid() {
			return State{}, fmt.Errorf("seed product %s: unknown category %q", p.ID, p.Category)
		}
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return State{}, fmt.Errorf("seed product %s: bad price %q: %w", p.ID, p.Price, err)
		}
		st.Products = append(st.Products, models.Product{
			ID:          p.ID,
			FarmerID:    p.FarmerID,
			FarmerName:  p.FarmerName,
			Name:        p.Name,
			Category:    category,
			Price:       price,
			Unit:        p.Unit,
			Description: p.Description,
			Image:       p.Image,
			Stock:       p.Stock,
			Location:    p.Location,
		})
	}
	return st, nil
}
