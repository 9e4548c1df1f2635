package hpp

import "hpp_gateway/internal/domain/entities"

var notificationFields = []string{
	"live", "eventCode", "pspReference", "originalReference", "merchantReference",
	"merchantAccountCode", "eventDate", "success", "paymentMethod", "operations",
	"reason", "value", "currency",
}

// ParseNotification decodes a notification form. Notifications carry no
// signature; the transport is authenticated with basic auth instead.
func ParseNotification(params map[string]string) (entities.PaymentNotification, error) {
	rest := make(map[string]string, len(params))
	for k, v := range params {
		rest[k] = v
	}

	var missing []string
	for _, k := range notificationFields {
		if _, ok := rest[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return entities.PaymentNotification{}, &MissingRequiredFieldError{Fields: missing}
	}

	pop := func(k string) string {
		v := rest[k]
		delete(rest, k)
		return v
	}

	live, err := ParseStrictBool("live", pop("live"))
	if err != nil {
		return entities.PaymentNotification{}, err
	}
	n := entities.PaymentNotification{
		Live:                live,
		EventCode:           pop("eventCode"),
		PSPReference:        pop("pspReference"),
		OriginalReference:   pop("originalReference"),
		MerchantReference:   pop("merchantReference"),
		MerchantAccountCode: pop("merchantAccountCode"),
	}
	if n.EventDate, err = ParseEventDate("eventDate", pop("eventDate")); err != nil {
		return entities.PaymentNotification{}, err
	}
	if n.Success, err = ParseStrictBool("success", pop("success")); err != nil {
		return entities.PaymentNotification{}, err
	}
	n.PaymentMethod = pop("paymentMethod")
	n.Operations = pop("operations")
	n.Reason = pop("reason")
	if n.Value, err = ParseInt("value", pop("value")); err != nil {
		return entities.PaymentNotification{}, err
	}
	n.Currency = pop("currency")

	if len(rest) > 0 {
		n.AdditionalParams = rest
	}
	return n, nil
}
