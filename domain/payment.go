package domain

type PaymentInput struct {
	Balance      float64 `json:"balance"`
	InterestRate float64 `json:"rate"`
	TermYears    float64 `json:"years"`
}

type PaymentResult struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}
