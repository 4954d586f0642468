package domain

type PeriodUnit string

const (
	PeriodDays   PeriodUnit = "days"
	PeriodMonths PeriodUnit = "months"
)

var PeriodUnits = []PeriodUnit{PeriodDays, PeriodMonths}

type CollectionMethod string

const (
	CollectionAutomatic CollectionMethod = "automatic"
	CollectionManual    CollectionMethod = "manual"
)

var CollectionMethods = []CollectionMethod{CollectionAutomatic, CollectionManual}

type TransactionAction string

const (
	ActionPurchase TransactionAction = "purchase"
	ActionVerify   TransactionAction = "verify"
	ActionRefund   TransactionAction = "refund"
)

var TransactionActions = []TransactionAction{ActionPurchase, ActionVerify, ActionRefund}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentOnline     PaymentMethod = "online"
)

var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentOnline}

type InvoiceStatus string

const (
	InvoicePending    InvoiceStatus = "pending"
	InvoiceProcessing InvoiceStatus = "processing"
	InvoicePastDue    InvoiceStatus = "pastDue"
	InvoicePaid       InvoiceStatus = "paid"
	InvoiceFailed     InvoiceStatus = "failed"
	InvoiceVoided     InvoiceStatus = "voided"
	InvoiceClosed     InvoiceStatus = "closed"
)

var InvoiceStatuses = []InvoiceStatus{
	InvoicePending,
	InvoiceProcessing,
	InvoicePastDue,
	InvoicePaid,
	InvoiceFailed,
	InvoiceVoided,
	InvoiceClosed,
}

type InvoiceOrigin string

var InvoiceOrigins = []InvoiceOrigin{
	"purchase",
	"renewal",
	"immediateChange",
	"termination",
	"refund",
	"postedCredit",
	"giftCardRedemption",
	"writeOff",
	"carryforwardCredit",
	"carryforwardGiftCredit",
	"usageCorrection",
}
