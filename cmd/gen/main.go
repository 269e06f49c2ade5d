// Command gen writes typed gorm/gen query helpers for the record store tables.
package main

import (
	"flag"
	"log/slog"

	"foodiecircle/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	outPath := flag.String("out", "./internal/infra/persistence/postgres/query", "directory for generated query code")
	withContext := flag.Bool("ctx", true, "generate WithContext query methods")
	flag.Parse()

	mode := gen.WithDefaultQuery | gen.WithQueryInterface
	if !*withContext {
		mode |= gen.WithoutContext
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       *outPath,
		Mode:          mode,
		FieldNullable: true,
	})

	// Order follows the foreign key chain: profiles own dishes, follows,
	// taste preferences and devices.
	g.ApplyBasic(
		model.ProfileModel{},
		model.DishModel{},
		model.SubscriptionModel{},
		model.TastePreferenceModel{},
		model.UserDeviceModel{},
	)

	slog.Info("generating query code", slog.String("out", *outPath))
	g.Execute()
}
