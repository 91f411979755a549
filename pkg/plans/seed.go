package plans

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/audiomint/backend/ent/plan"
)

// Definition is a plan as the seeder writes it. Tags mirror the schema validators
// so a bad definition fails before touching the database.
type Definition struct {
	Name         string  `validate:"required,alphanum"`
	DisplayName  string  `validate:"required"`
	Description  string
	Price        float64 `validate:"gte=0"`
	DailyLimit   int     `validate:"gte=0"`
	MaxDuration  int     `validate:"gte=1,lte=300"`
	MaxSteps     int     `validate:"gte=10,lte=500"`
	CanUseAPI    bool
	CanDownload  bool
	CanEditAudio bool
	PriceID      string
	IsPopular    bool
	SortOrder    int
}

// PriceIDs maps plan names to billing provider price IDs.
type PriceIDs map[string]string

// DefaultDefinitions returns the free, pro and enterprise tiers.
func DefaultDefinitions(prices PriceIDs) []Definition {
	return []Definition{
		{
			Name:        "free",
			DisplayName: "Free",
			Description: "Try AI audio generation at no cost.",
			Price:       0,
			DailyLimit:  20,
			MaxDuration: 30,
			MaxSteps:    200,
			CanDownload: true,
			SortOrder:   1,
		},
		{
			Name:         "pro",
			DisplayName:  "Pro",
			Description:  "Longer clips, more steps and API access.",
			Price:        9.99,
			DailyLimit:   100,
			MaxDuration:  60,
			MaxSteps:     300,
			CanUseAPI:    true,
			CanDownload:  true,
			CanEditAudio: true,
			PriceID:      prices["pro"],
			IsPopular:    true,
			SortOrder:    2,
		},
		{
			Name:         "enterprise",
			DisplayName:  "Enterprise",
			Description:  "High volume generation for production teams.",
			Price:        29.99,
			DailyLimit:   500,
			MaxDuration:  120,
			MaxSteps:     500,
			CanUseAPI:    true,
			CanDownload:  true,
			CanEditAudio: true,
			PriceID:      prices["enterprise"],
			SortOrder:    3,
		},
	}
}

// Seed creates every definition whose name is not taken yet and returns the names
// it created. Existing plans are left untouched.
func (c *Catalog) Seed(ctx context.Context, defs []Definition) ([]string, error) {
	validate := validator.New()
	for _, def := range defs {
		if err := validate.Struct(def); err != nil {
			return nil, fmt.Errorf("invalid plan %q: %w", def.Name, err)
		}
	}

	var created []string
	for _, def := range defs {
		exists, err := c.client.Plan.Query().Where(plan.Name(def.Name)).Exist(ctx)
		if err != nil {
			return created, fmt.Errorf("check plan %q: %w", def.Name, err)
		}
		if exists {
			c.log.Info("Plan already exists", "plan", def.Name)
			continue
		}

		create := c.client.Plan.Create().
			SetName(def.Name).
			SetDisplayName(def.DisplayName).
			SetDescription(def.Description).
			SetPrice(def.Price).
			SetDailyAudioLimit(def.DailyLimit).
			SetMaxAudioDuration(def.MaxDuration).
			SetMaxSteps(def.MaxSteps).
			SetCanUseAPI(def.CanUseAPI).
			SetCanDownload(def.CanDownload).
			SetCanEditAudio(def.CanEditAudio).
			SetIsPopular(def.IsPopular).
			SetSortOrder(def.SortOrder)
		if def.PriceID != "" {
			create.SetStripePriceID(def.PriceID)
		}

		if _, err := create.Save(ctx); err != nil {
			return created, fmt.Errorf("create plan %q: %w", def.Name, err)
		}
		c.log.Info("Plan created", "plan", def.Name)
		created = append(created, def.Name)
	}

	c.Purge()
	return created, nil
}
