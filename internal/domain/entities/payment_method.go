package entities

// PaymentMethodNames maps provider brand codes to display names.
var PaymentMethodNames = map[string]string{
	"amex":              "American Express",
	"bankTransfer_DE":   "Überweisung",
	"bankTransfer_IBAN": "SEPA-Überweisung",
	"directEbanking":    "Sofortüberweisung",
	"elv":               "Lastschrift",
	"giropay":           "GiroPay",
	"maestro":           "Maestro",
	"mc":                "MasterCard",
	"sepadirectdebit":   "SEPA-Lastschrift",
	"visa":              "VISA",
}

// PaymentMethodName falls back to the raw code for unknown brands.
func PaymentMethodName(code string) string {
	if name, ok := PaymentMethodNames[code]; ok {
		return name
	}
	return code
}
