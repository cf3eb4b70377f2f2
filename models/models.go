package models

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Substance{},
		&EssentialOil{},
		&Effect{},
		&Molecule{},
		&EssentialOilEffect{},
		&EffectMolecule{},
		&EssentialOilMolecule{},
	}
}
