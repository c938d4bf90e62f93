package config

import (
	"fmt"
	"log"

	"e2d-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedMasterData seeds the catalog tables and default settings. Every
// seeder is idempotent: existing rows are left as the bureau edited
// them.
func SeedMasterData(db *gorm.DB) error {
	if err := seedSanctionTypes(db); err != nil {
		return err
	}

	if err := seedAidTypes(db); err != nil {
		return err
	}

	if err := seedSportActivities(db); err != nil {
		return err
	}

	if err := seedSettings(db); err != nil {
		return err
	}

	log.Println("✅ Master data seeded successfully")
	return nil
}

func seedSanctionTypes(db *gorm.DB) error {
	sanctionTypes := []models.SanctionType{
		{
			Name:          "Absence reunion",
			Category:      "reunion",
			Description:   "Absence non justifiee a la reunion mensuelle",
			DefaultAmount: 1000,
			IsActive:      true,
		},
		{
			Name:          "Retard reunion",
			Category:      "reunion",
			Description:   "Arrivee apres l'appel",
			DefaultAmount: 500,
			IsActive:      true,
		},
		{
			Name:          "Absence sport E2D",
			Category:      "sport_e2d",
			Description:   "Absence a la seance de sport du club E2D",
			DefaultAmount: 500,
			IsActive:      true,
		},
		{
			Name:          "Absence sport Phoenix",
			Category:      "sport_phoenix",
			Description:   "Absence a la seance du club Phoenix",
			DefaultAmount: 500,
			IsActive:      true,
		},
		{
			Name:          "Carton rouge",
			Category:      "disciplinaire",
			Description:   "Carton rouge recu en match, sanction automatique",
			DefaultAmount: 2000,
			IsActive:      true,
		},
		{
			Name:          "Trouble a l'ordre",
			Category:      "disciplinaire",
			Description:   "Comportement sanctionne par le bureau",
			DefaultAmount: 2000,
			IsActive:      true,
		},
	}

	for _, st := range sanctionTypes {
		var existing models.SanctionType
		err := db.Where("nom = ? AND categorie = ?", st.Name, st.Category).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&st).Error; err != nil {
				return err
			}
			log.Printf("   Created sanction type: %s", st.Name)
		}
	}
	return nil
}

func seedAidTypes(db *gorm.DB) error {
	aidTypes := []models.AidType{
		{
			Name:          "Maladie",
			Description:   "Aide en cas de maladie du membre ou d'un proche direct",
			DefaultAmount: 50000,
			DelayMonths:   6,
			IsActive:      true,
		},
		{
			Name:          "Mariage",
			Description:   "Aide pour le mariage du membre",
			DefaultAmount: 50000,
			DelayMonths:   6,
			IsActive:      true,
		},
		{
			Name:          "Deces",
			Description:   "Aide en cas de deces d'un proche direct",
			DefaultAmount: 100000,
			DelayMonths:   12,
			IsActive:      true,
		},
		{
			Name:          "Autre evenement",
			Description:   "Aide accordee au cas par cas par le bureau",
			DefaultAmount: 0,
			DelayMonths:   6,
			IsActive:      true,
		},
	}

	for _, at := range aidTypes {
		var existing models.AidType
		err := db.Where("nom = ?", at.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&at).Error; err != nil {
				return err
			}
			log.Printf("   Created aid type: %s", at.Name)
		}
	}
	return nil
}

func seedSportActivities(db *gorm.DB) error {
	activities := []models.SportActivity{
		{
			Kind:        "e2d",
			Name:        "Sport E2D",
			Description: "Club de sport reserve aux membres de l'association",
		},
		{
			Kind:        "phoenix",
			Name:        "Phoenix",
			Description: "Club Phoenix, ouvert aux adherents externes",
		},
	}

	for _, a := range activities {
		var existing models.SportActivity
		err := db.Where("type = ?", a.Kind).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&a).Error; err != nil {
				return err
			}
			log.Printf("   Created sport activity: %s", a.Name)
		}
	}
	return nil
}

func seedSettings(db *gorm.DB) error {
	redCardTypeID, err := findRedCardTypeID(db)
	if err != nil {
		return err
	}

	settings := []models.Setting{
		{
			Key:         "montant_cotisation_defaut",
			Value:       "10000",
			ValueType:   models.SettingNumber,
			Category:    "cotisations",
			Description: "Montant mensuel propose a la creation d'un membre",
			Modifiable:  true,
		},
		{
			Key:         "montant_fond_sport_mensuel",
			Value:       "500",
			ValueType:   models.SettingNumber,
			Category:    "cotisations",
			Description: "Part fond sport attendue chaque mois",
			Modifiable:  true,
		},
		{
			Key:         "seuil_sanctions_suspension",
			Value:       "3",
			ValueType:   models.SettingNumber,
			Category:    "sanctions",
			Description: "Nombre de sanctions impayees signalant un membre",
			Modifiable:  true,
		},
		{
			Key:         "type_sanction_carton_rouge",
			Value:       redCardTypeID,
			ValueType:   models.SettingNumber,
			Category:    "sport",
			Description: "Type de sanction applique sur carton rouge",
			Modifiable:  true,
		},
		{
			Key:         "bureau",
			Value:       `{"president":"","tresorier":"","secretaire":""}`,
			ValueType:   models.SettingJSON,
			Category:    "general",
			Description: "Composition du bureau en exercice",
			Modifiable:  true,
		},
	}

	for _, s := range settings {
		var existing models.Setting
		err := db.Where("cle = ?", s.Key).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&s).Error; err != nil {
				return err
			}
			log.Printf("   Created setting: %s", s.Key)
		}
	}
	return nil
}

func findRedCardTypeID(db *gorm.DB) (string, error) {
	var redCard models.SanctionType
	err := db.Where("nom = ?", "Carton rouge").First(&redCard).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "0", nil
		}
		return "", err
	}
	return fmt.Sprintf("%d", redCard.ID), nil
}
