package service

import (
	"math"

	"mortgage-strategy/domain"
)

// roundTo2Decimals rounds a float64 to cents
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// ComputeMonthlyPayment returns the fixed amortized payment. A zero rate
// falls back to straight-line repayment; a term of zero months yields 0.
func ComputeMonthlyPayment(balance, annualRatePercent, years float64) float64 {
	monthlyRate := annualRatePercent / 100 / 12
	totalMonths := years * 12

	if totalMonths <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return balance / totalMonths
	}

	growth := math.Pow(1+monthlyRate, totalMonths)
	return balance * monthlyRate * growth / (growth - 1)
}

// CalculateInvestmentBalance compounds a fixed end-of-month contribution:
// existing balance grows first, then the contribution is added, so the
// first contribution earns nothing in its own month.
func CalculateInvestmentBalance(monthlyContribution float64, months int, annualRatePercent float64) float64 {
	monthlyRate := annualRatePercent / 100 / 12
	balance := 0.0

	for i := 0; i < months; i++ {
		balance = balance*(1+monthlyRate) + monthlyContribution
	}

	return balance
}

// CalculatePayment prices a plain amortized loan.
func CalculatePayment(input domain.PaymentInput) (domain.PaymentResult, error) {
	if input.TermYears <= 0 {
		return domain.PaymentResult{}, ErrInvalidTerm
	}
	if input.TermYears > MaxTermYears {
		return domain.PaymentResult{}, ErrTermTooLong
	}

	payment := ComputeMonthlyPayment(input.Balance, input.InterestRate, input.TermYears)
	total := payment * input.TermYears * 12

	return domain.PaymentResult{
		MonthlyPayment: roundTo2Decimals(payment),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(total - input.Balance),
	}, nil
}
