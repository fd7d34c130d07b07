package main

import (
	"catermatch/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.EventRequestModel{},
		model.CatererModel{},
		model.MatchModel{},
		model.LearnedLocationModel{},
		model.LocationEvalModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
