package main

import (
	"context"
	"log"

	"exam-prep/internal/config"
	"exam-prep/internal/database"
	"exam-prep/internal/domain"
	"exam-prep/internal/logger"
	"exam-prep/internal/repository"

	"go.uber.org/zap"
)

// seedQuestions is a small development data set spanning several chapters
// and exam years, enough to exercise filtering and analytics locally.
var seedQuestions = []struct {
	year        int
	statement   string
	options     []string
	answer      string
	chapter     string
	bookSection string
}{
	{
		2023,
		"A 28-year-old presents with well-demarcated erythematous plaques with silvery scale on the extensor surfaces. Which finding supports the diagnosis?",
		[]string{"Auspitz sign", "Nikolsky sign", "Darier sign", "Koebner-negative distribution"},
		"A", "Psoriasis", "Papulosquamous and Eczematous Dermatoses",
	},
	{
		2023,
		"Which cytokine axis is the principal therapeutic target in moderate-to-severe plaque psoriasis?",
		[]string{"IL-4/IL-13", "IL-23/IL-17", "IL-5", "TNF-alpha exclusively"},
		"B", "Psoriasis", "Papulosquamous and Eczematous Dermatoses",
	},
	{
		2022,
		"A nodulocystic acne patient is started on oral isotretinoin. Which laboratory parameter requires monitoring?",
		[]string{"Serum ferritin", "Fasting lipid profile", "Serum calcium", "Thyroid stimulating hormone"},
		"B", "Acne Vulgaris", "Disorders of the Sebaceous and Sweat Glands",
	},
	{
		2022,
		"Which organism is implicated in the inflammatory phase of acne vulgaris?",
		[]string{"Staphylococcus aureus", "Malassezia furfur", "Cutibacterium acnes", "Demodex folliculorum", "Streptococcus pyogenes"},
		"C", "Acne Vulgaris", "Disorders of the Sebaceous and Sweat Glands",
	},
	{
		2021,
		"A changing pigmented lesion shows asymmetry, border irregularity and a diameter of 8 mm. What is the most appropriate next step?",
		[]string{"Cryotherapy", "Shave biopsy", "Excisional biopsy with narrow margins", "Observation for 6 months"},
		"C", "Melanoma", "Neoplasms of the Skin",
	},
	{
		2021,
		"Which prognostic factor carries the greatest weight in cutaneous melanoma staging?",
		[]string{"Breslow thickness", "Clark level", "Mitotic rate alone", "Anatomic site"},
		"A", "Melanoma", "Neoplasms of the Skin",
	},
	{
		2020,
		"Flaccid bullae and erosions with a positive Nikolsky sign in a middle-aged patient most likely indicate which diagnosis?",
		[]string{"Bullous pemphigoid", "Pemphigus vulgaris", "Dermatitis herpetiformis", "Linear IgA disease"},
		"B", "Pemphigus", "Vesiculobullous Diseases",
	},
	{
		2020,
		"Direct immunofluorescence in bullous pemphigoid classically shows which pattern?",
		[]string{"Intercellular IgG", "Linear IgG and C3 at the basement membrane zone", "Granular IgA in dermal papillae", "Cytoid bodies"},
		"B", "Bullous Pemphigoid", "Vesiculobullous Diseases",
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer l.Sync()

	db, err := database.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	questions := make([]*domain.Question, 0, len(seedQuestions))
	for _, s := range seedQuestions {
		q := domain.NewQuestion(s.year, s.statement, s.options, s.answer, s.chapter, s.bookSection)
		if err := q.Validate(); err != nil {
			l.Fatal("Invalid seed question", zap.String("statement", s.statement), zap.Error(err))
		}
		questions = append(questions, q)
	}

	repo := repository.NewSQLXQuestionRepository(db)
	if err := repo.SaveAll(context.Background(), questions); err != nil {
		l.Fatal("Failed to seed questions", zap.Error(err))
	}
	l.Info("Seeded question bank", zap.Int("count", len(questions)))
}
