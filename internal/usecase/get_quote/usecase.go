package get_quote

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/engine"
)

const operation = "quote"

// UseCase use case предварительного расчёта стоимости
type UseCase struct {
	calculator CostCalculator
	outcomes   OutcomeRecorder
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calculator CostCalculator, outcomes OutcomeRecorder, logger Logger) *UseCase {
	return &UseCase{
		calculator: calculator,
		outcomes:   outcomes,
		logger:     logger,
	}
}

// Execute считает стоимость без обращения к хранилищу
// Ошибок входа не бывает: некорректный вход отражается в Condition ответа
func (uc *UseCase) Execute(_ context.Context, req *Request) *Response {
	category := domain.Category(strings.ToLower(strings.TrimSpace(req.Category)))

	quote := uc.calculator.ComputeCost(category, req.CheckIn, req.CheckOut, req.Addons)
	uc.outcomes.ObserveEngine(operation, quote.Condition.String())

	if !quote.Valid() {
		uc.logger.Warn("GetQuote: category=%s, window=%s-%s: %s (%s)",
			req.Category, req.CheckIn, req.CheckOut, quote.Condition, quote.Detail)
	} else {
		uc.logger.Info("GetQuote: category=%s, window=%s-%s, total=%d",
			category, req.CheckIn, req.CheckOut, quote.TotalCost)
	}

	return toResponse(category, req, quote)
}

func toResponse(category domain.Category, req *Request, quote engine.Quote) *Response {
	lines := make([]AddonLine, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		lines = append(lines, AddonLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Amount:    line.Amount,
		})
	}

	resp := &Response{
		Category:        string(category),
		CheckIn:         req.CheckIn.String(),
		CheckOut:        req.CheckOut.String(),
		DurationMinutes: quote.DurationMinutes,
		BilledHours:     quote.BilledHours,
		HourlyRate:      quote.HourlyRate,
		HallCost:        quote.HallCost,
		AddonCost:       quote.AddonCost,
		TotalCost:       quote.TotalCost,
		Addons:          lines,
		Valid:           quote.Valid(),
	}
	if !quote.Valid() {
		resp.Condition = string(quote.Condition)
		resp.Detail = quote.Detail
	}
	return resp
}
