package dto

import (
	"fmt"
	"time"

	"fincalc-engine/internal/domain/loan"
	"fincalc-engine/internal/pkg/money"
)

const dateLayout = "2006-01-02"

type LoanParametersRequest struct {
	LoanAmount       float64  `json:"loanAmount"`
	AnnualRate       float64  `json:"annualRate"`
	TermMonths       int      `json:"termMonths"`
	Payment          *float64 `json:"payment,omitempty"`
	FirstPaymentDate string   `json:"firstPaymentDate,omitempty"`
	OddDaysAmount    float64  `json:"oddDaysAmount,omitempty"`
}

// ToParameters maps the request onto domain parameters. Bound checks
// are left to the domain validator so the caller receives every
// violation at once; only the date format is rejected here.
func (r *LoanParametersRequest) ToParameters() (loan.Parameters, error) {
	params := loan.Parameters{
		LoanAmount:    r.LoanAmount,
		AnnualRate:    r.AnnualRate,
		TermMonths:    r.TermMonths,
		Payment:       r.Payment,
		OddDaysAmount: r.OddDaysAmount,
	}

	if r.FirstPaymentDate != "" {
		firstPayment, err := time.Parse(dateLayout, r.FirstPaymentDate)
		if err != nil {
			return loan.Parameters{}, fmt.Errorf("invalid firstPaymentDate format (use YYYY-MM-DD): %w", err)
		}
		params.FirstPaymentDate = firstPayment
	}

	return params, nil
}

type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func NewValidationResponse(result loan.ValidationResult) ValidationResponse {
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	return ValidationResponse{Valid: result.Valid, Errors: errs}
}

type PaymentRequest struct {
	LoanAmount float64 `json:"loanAmount"`
	AnnualRate float64 `json:"annualRate"`
	TermMonths int     `json:"termMonths"`
}

func (r *PaymentRequest) Validate() error {
	if r.LoanAmount <= 0 {
		return fmt.Errorf("loanAmount must be greater than zero")
	}
	if r.AnnualRate < 0 || r.AnnualRate > 1 {
		return fmt.Errorf("annualRate must be a fraction between 0 and 1")
	}
	if r.TermMonths <= 0 {
		return fmt.Errorf("termMonths must be positive")
	}
	return nil
}

type PaymentResponse struct {
	MonthlyPayment string `json:"monthlyPayment"`
	Formatted      string `json:"formatted"`
}

func NewPaymentResponse(payment float64) PaymentResponse {
	return PaymentResponse{
		MonthlyPayment: money.FormatAmount(payment),
		Formatted:      money.FormatUSD(payment),
	}
}

type ScheduleEntryResponse struct {
	PeriodNumber     int    `json:"periodNumber"`
	DueDate          string `json:"dueDate"`
	BeginningBalance string `json:"beginningBalance"`
	PaymentDue       string `json:"paymentDue"`
	PrincipalDue     string `json:"principalDue"`
	InterestDue      string `json:"interestDue"`
	EndingBalance    string `json:"endingBalance"`
}

type ScheduleResponse struct {
	LoanAmount      string                  `json:"loanAmount"`
	AnnualRate      string                  `json:"annualRate"`
	Payment         string                  `json:"payment"`
	TermMonths      int                     `json:"termMonths"`
	RealizedPeriods int                     `json:"realizedPeriods"`
	TotalInterest   string                  `json:"totalInterest"`
	TotalPayments   string                  `json:"totalPayments"`
	Entries         []ScheduleEntryResponse `json:"entries"`
}

func NewScheduleResponse(schedule *loan.Schedule, percentPlaces int) ScheduleResponse {
	resp := ScheduleResponse{
		LoanAmount:      money.FormatAmount(schedule.LoanAmount),
		AnnualRate:      money.FormatPercent(schedule.AnnualRate, percentPlaces),
		Payment:         money.FormatAmount(schedule.Payment),
		TermMonths:      schedule.TermMonths,
		RealizedPeriods: len(schedule.Entries),
		TotalInterest:   money.FormatAmount(schedule.TotalInterest),
		TotalPayments:   money.FormatAmount(schedule.TotalPayments),
		Entries:         make([]ScheduleEntryResponse, len(schedule.Entries)),
	}

	for i, entry := range schedule.Entries {
		resp.Entries[i] = ScheduleEntryResponse{
			PeriodNumber:     entry.PeriodNumber,
			DueDate:          entry.DueDate.Format(dateLayout),
			BeginningBalance: money.FormatAmount(entry.BeginningBalance),
			PaymentDue:       money.FormatAmount(entry.PaymentDue),
			PrincipalDue:     money.FormatAmount(entry.PrincipalDue),
			InterestDue:      money.FormatAmount(entry.InterestDue),
			EndingBalance:    money.FormatAmount(entry.EndingBalance),
		}
	}

	return resp
}

type APRRequest struct {
	TermMonths    int     `json:"termMonths"`
	LoanAmount    float64 `json:"loanAmount"`
	Payment       float64 `json:"payment"`
	DeferredDays  int     `json:"deferredDays,omitempty"`
	OddDaysAmount float64 `json:"oddDaysAmount,omitempty"`
}

func (r *APRRequest) Validate() error {
	if r.TermMonths <= 0 {
		return fmt.Errorf("termMonths must be positive")
	}
	if r.LoanAmount <= 0 {
		return fmt.Errorf("loanAmount must be greater than zero")
	}
	if r.Payment <= 0 {
		return fmt.Errorf("payment must be greater than zero")
	}
	if r.DeferredDays < 0 {
		return fmt.Errorf("deferredDays must not be negative")
	}
	return nil
}

type APRResponse struct {
	APR       float64 `json:"apr"`
	Formatted string  `json:"formatted"`
}

func NewAPRResponse(rate float64, percentPlaces int) APRResponse {
	return APRResponse{
		APR:       rate,
		Formatted: money.FormatPercent(rate, percentPlaces),
	}
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username"`
}
