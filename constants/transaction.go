package constants

import "strings"

// TransactionType is the money-flow direction derived by the classifier.
type TransactionType string

const (
	TxnIncome  TransactionType = "income"
	TxnExpense TransactionType = "expense"
	TxnUnknown TransactionType = "unknown"
)

// ExtractionMethod records which path produced an ExtractedData record.
type ExtractionMethod string

const (
	MethodPattern    ExtractionMethod = "pattern"
	MethodPatternLLM ExtractionMethod = "pattern+llm"
)

// PaymentMethod is the canonical payment instrument.
type PaymentMethod string

const (
	PayCash         PaymentMethod = "cash"
	PayCheque       PaymentMethod = "cheque"
	PayMobileMoney  PaymentMethod = "mobile_money"
	PayBankTransfer PaymentMethod = "bank_transfer"
	PayUnknown      PaymentMethod = "unknown"
)

// NormalizePaymentMethod maps a raw matched token to a canonical payment
// method. Unrecognized input maps to PayUnknown and reports false.
func NormalizePaymentMethod(input string) (PaymentMethod, bool) {
	if input == "" {
		return PayUnknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]PaymentMethod{
		"cash":          PayCash,
		"cheque":        PayCheque,
		"check":         PayCheque,
		"m-pesa":        PayMobileMoney,
		"mpesa":         PayMobileMoney,
		"mobile money":  PayMobileMoney,
		"airtel money":  PayMobileMoney,
		"bank transfer": PayBankTransfer,
		"eft":           PayBankTransfer,
		"rtgs":          PayBankTransfer,
		"wire transfer": PayBankTransfer,
	}

	if pm, ok := synonyms[normalized]; ok {
		return pm, true
	}
	return PayUnknown, false
}
