package constants

// FieldKind identifies which document field a pattern or candidate targets.
type FieldKind string

const (
	FieldAmount        FieldKind = "amount"
	FieldDate          FieldKind = "date"
	FieldInvoiceNumber FieldKind = "invoice_number"
	FieldReference     FieldKind = "reference_number"
	FieldVendor        FieldKind = "vendor"
	FieldPaymentMethod FieldKind = "payment_method"
	FieldTax           FieldKind = "tax"
)

// AllFieldKinds lists field kinds in the order the extractor walks them.
// The order is fixed so candidate sequences are deterministic.
var AllFieldKinds = []FieldKind{
	FieldAmount,
	FieldDate,
	FieldInvoiceNumber,
	FieldReference,
	FieldVendor,
	FieldPaymentMethod,
	FieldTax,
}
