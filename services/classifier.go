package services

import "github.com/crisvieira/satisfaction-server/models"

// ClassifyNPS maps a 0-10 recommendation score to its NPS category.
// Canonical boundaries: >=9 promoter, 7-8 neutral, <=6 detractor.
func ClassifyNPS(score int) models.Category {
	switch {
	case score >= 9:
		return models.CategoryPromoter
	case score >= 7:
		return models.CategoryNeutral
	default:
		return models.CategoryDetractor
	}
}

// ClassifyCSAT maps a 1-5 star rating to its satisfaction category.
func ClassifyCSAT(score int) models.Category {
	switch score {
	case 1:
		return models.CategoryVeryDissatisfied
	case 2:
		return models.CategoryDissatisfied
	case 3:
		return models.CategoryNeutral
	case 4:
		return models.CategorySatisfied
	default:
		return models.CategoryVerySatisfied
	}
}

// Classify dispatches on instrument. Callers pass scores already
// validated against the instrument's domain.
func Classify(instrument models.Instrument, score int) models.Category {
	if instrument == models.InstrumentNPS {
		return ClassifyNPS(score)
	}
	return ClassifyCSAT(score)
}

// CSATLabel is the display label for a 1-5 rating, used by the
// dashboard distribution.
func CSATLabel(score int) string {
	switch score {
	case 1:
		return "Very Dissatisfied"
	case 2:
		return "Dissatisfied"
	case 3:
		return "Neutral"
	case 4:
		return "Satisfied"
	case 5:
		return "Very Satisfied"
	}
	return ""
}
