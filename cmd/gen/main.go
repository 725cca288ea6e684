package main

import (
	"cityquest/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.ExplorerProfileModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.LocationModel{},
		model.ScanRecordModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
