package main

import (
	"marketplace/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProfileModel{},
		model.RoleGrantModel{},
		model.ListingModel{},
		model.DealRoomModel{},
		model.DealMessageModel{},
		model.OfferModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
