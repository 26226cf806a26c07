package logic

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

// ErrContractViolation means the engine produced a prediction set that breaks
// its own output rules. It is a programming fault, never a data problem.
var ErrContractViolation = errors.New("prediction contract violation")

var contractValidator = validator.New()

var betOrder = [models.PredictionsCount]string{
	models.BetMatchWinner,
	models.BetTotalSets,
	models.BetFirstSet,
	models.BetHandicap,
	models.BetComeback,
}

// CheckContract validates an assembled prediction set
func CheckContract(set *models.MatchBettingPredictions) error {
	if err := contractValidator.Struct(set); err != nil {
		return fmt.Errorf("%w: %v", ErrContractViolation, err)
	}
	for i, p := range set.Predictions {
		if p.BetType != betOrder[i] {
			return fmt.Errorf("%w: prediction %d is %q, want %q", ErrContractViolation, i, p.BetType, betOrder[i])
		}
		if p.Recommendation != RecommendationFor(p.Confidence) {
			return fmt.Errorf("%w: %s tier %s does not match confidence %.4f",
				ErrContractViolation, p.BetType, p.Recommendation, p.Confidence)
		}
	}
	return nil
}
