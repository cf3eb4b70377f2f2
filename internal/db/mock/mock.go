package mock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "oleum/internal/log"
	"oleum/models"
)

// Seeded credentials and effect names, exported for tests and local demos.
const (
	AdminEmail    = "admin@oleum.app"
	AdminPassword = "lavandula"

	PainEffect = "Wirkung gegen Schmerzen"
	ScarEffect = "Wirkung gegen Narben"
)

// New returns an in-memory sqlite database seeded with a small reference catalog.
// Every call gets its own database.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	dsn := fmt.Sprintf("file:oleum-mock-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	tx := db.WithContext(ctx)

	password, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := tx.Create(&models.User{
		Name:         "Catalog Admin",
		Email:        AdminEmail,
		PasswordHash: string(password),
	}).Error; err != nil {
		return err
	}

	skin := models.Category{Name: "Haut"}
	body := models.Category{Name: "Körper"}
	terpenes := models.Substance{Name: "Monoterpenole"}
	esters := models.Substance{Name: "Ester"}
	for _, record := range []any{&skin, &body, &terpenes, &esters} {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
	}

	lavender := models.EssentialOil{
		Name:        "Lavendel fein",
		LatinName:   "Lavandula angustifolia",
		Origin:      "Provence",
		Description: "Ausgleichend und hautpflegend.",
		Usage:       "Einreibung, Kompresse",
	}
	helichrysum := models.EssentialOil{
		Name:        "Immortelle",
		LatinName:   "Helichrysum italicum",
		Origin:      "Korsika",
		Description: "Bekannt für die Narbenpflege.",
		Usage:       "Verdünnt auftragen",
	}
	lemon := models.EssentialOil{
		Name:        "Zitrone",
		LatinName:   "Citrus limon",
		Origin:      "Sizilien",
		Description: "Frisch und belebend.",
		Usage:       "Raumduft",
	}
	wintergreen := models.EssentialOil{
		Name:        "Wintergrün",
		LatinName:   "Gaultheria procumbens",
		Origin:      "Nepal",
		Description: "Wärmend bei Muskelschmerzen.",
		Usage:       "Stark verdünnt einreiben",
	}
	for _, oil := range []*models.EssentialOil{&lavender, &helichrysum, &lemon, &wintergreen} {
		if err := tx.Create(oil).Error; err != nil {
			return err
		}
	}

	pain := models.Effect{Name: PainEffect, CategoryID: body.ID}
	scars := models.Effect{Name: ScarEffect, CategoryID: skin.ID}
	for _, effect := range []*models.Effect{&pain, &scars} {
		if err := tx.Create(effect).Error; err != nil {
			return err
		}
	}

	linalool := models.Molecule{Name: "Linalool", SubstanceID: terpenes.ID}
	salicylate := models.Molecule{Name: "Methylsalicylat", SubstanceID: esters.ID}
	neryl := models.Molecule{Name: "Nerylacetat", SubstanceID: esters.ID}
	for _, molecule := range []*models.Molecule{&linalool, &salicylate, &neryl} {
		if err := tx.Create(molecule).Error; err != nil {
			return err
		}
	}

	oilEffects := []models.EssentialOilEffect{
		{EssentialOilID: lavender.ID, EffectID: pain.ID, EffectDegree: 2},
		{EssentialOilID: helichrysum.ID, EffectID: pain.ID, EffectDegree: 1},
		{EssentialOilID: wintergreen.ID, EffectID: pain.ID, EffectDegree: 4},
		{EssentialOilID: lavender.ID, EffectID: scars.ID, EffectDegree: 1},
		{EssentialOilID: helichrysum.ID, EffectID: scars.ID, EffectDegree: 4},
	}
	for i := range oilEffects {
		if err := tx.Create(&oilEffects[i]).Error; err != nil {
			return err
		}
	}

	effectMolecules := []models.EffectMolecule{
		{EffectID: pain.ID, MoleculeID: salicylate.ID, EffectDegree: 4},
		{EffectID: pain.ID, MoleculeID: linalool.ID, EffectDegree: 2},
		{EffectID: scars.ID, MoleculeID: neryl.ID, EffectDegree: 3},
	}
	for i := range effectMolecules {
		if err := tx.Create(&effectMolecules[i]).Error; err != nil {
			return err
		}
	}

	oilMolecules := []models.EssentialOilMolecule{
		{EssentialOilID: lavender.ID, MoleculeID: linalool.ID, MoleculePercentage: 35},
		{EssentialOilID: helichrysum.ID, MoleculeID: neryl.ID, MoleculePercentage: 30},
		{EssentialOilID: wintergreen.ID, MoleculeID: salicylate.ID, MoleculePercentage: 98},
	}
	for i := range oilMolecules {
		if err := tx.Create(&oilMolecules[i]).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
