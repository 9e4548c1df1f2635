package hpp

import (
	"fmt"
	"net/url"
	"regexp"

	"hpp_gateway/internal/domain/entities"
)

var oldBrowserPattern = regexp.MustCompile(`MSIE [1-8]\.`)

// IsOldBrowser reports user agents that cannot render the one-page flow.
func IsOldBrowser(userAgent string) bool {
	return oldBrowserPattern.MatchString(userAgent)
}

// BackOfficeURL links a PSP reference to the provider's customer area.
func BackOfficeURL(live bool, pspReference string) string {
	env := testHost
	if live {
		env = liveHost
	}
	return fmt.Sprintf("https://ca-%s.adyen.com/ca/ca/accounts/showTxPayment.shtml?pspReference=%s&txType=Payment",
		env, url.QueryEscape(pspReference))
}

// NotificationBackOfficeURL points at the original payment for linked events.
func NotificationBackOfficeURL(n entities.PaymentNotification) string {
	ref := n.PSPReference
	if n.OriginalReference != "" {
		ref = n.OriginalReference
	}
	return BackOfficeURL(n.Live, ref)
}
