package hpp

import (
	"testing"

	"hpp_gateway/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestIsOldBrowser(t *testing.T) {
	assert.True(t, IsOldBrowser("Mozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.1)"))
	assert.True(t, IsOldBrowser("Mozilla/4.0 (compatible; MSIE 8.0; Windows NT 6.1; Trident/4.0)"))
	assert.False(t, IsOldBrowser("Mozilla/5.0 (compatible; MSIE 10.0; Windows NT 6.2; Trident/6.0)"))
	assert.False(t, IsOldBrowser("Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/128.0"))
	assert.False(t, IsOldBrowser(""))
}

func TestBackOfficeURL(t *testing.T) {
	assert.Equal(t,
		"https://ca-test.adyen.com/ca/ca/accounts/showTxPayment.shtml?pspReference=8813&txType=Payment",
		BackOfficeURL(false, "8813"))
	assert.Equal(t,
		"https://ca-live.adyen.com/ca/ca/accounts/showTxPayment.shtml?pspReference=8813&txType=Payment",
		BackOfficeURL(true, "8813"))

	n := entities.PaymentNotification{Live: true, PSPReference: "9999", OriginalReference: "8813"}
	assert.Equal(t, BackOfficeURL(true, "8813"), NotificationBackOfficeURL(n))
	n.OriginalReference = ""
	assert.Equal(t, BackOfficeURL(true, "9999"), NotificationBackOfficeURL(n))
}
