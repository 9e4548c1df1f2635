package hpp

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"hpp_gateway/internal/domain/entities"
)

const (
	DefaultShipBeforeDays  = 3
	DefaultSessionValidity = 24 * time.Hour

	liveHost = "live"
	testHost = "test"
)

// SessionOptions lists every optional payment session field. The zero value
// of each field means "not set". MerchantReturnData, AllowedMethods,
// BlockedMethods and ShopperStatement are signed even when empty.
type SessionOptions struct {
	ShopperLocale      string
	OrderData          string
	MerchantReturnData string
	CountryCode        string
	ShopperEmail       string
	ShopperReference   string
	RecurringContract  string
	AllowedMethods     string
	BlockedMethods     string
	Offset             *int
	BrandCode          string
	IssuerID           string
	ShopperStatement   string
	OfferEmail         string
}

var sessionOptionSetters = map[string]func(*SessionOptions, string) error{
	"shopperLocale":      func(o *SessionOptions, v string) error { o.ShopperLocale = v; return nil },
	"orderData":          func(o *SessionOptions, v string) error { o.OrderData = v; return nil },
	"merchantReturnData": func(o *SessionOptions, v string) error { o.MerchantReturnData = v; return nil },
	"countryCode":        func(o *SessionOptions, v string) error { o.CountryCode = v; return nil },
	"shopperEmail":       func(o *SessionOptions, v string) error { o.ShopperEmail = v; return nil },
	"shopperReference":   func(o *SessionOptions, v string) error { o.ShopperReference = v; return nil },
	"recurringContract":  func(o *SessionOptions, v string) error { o.RecurringContract = v; return nil },
	"allowedMethods":     func(o *SessionOptions, v string) error { o.AllowedMethods = v; return nil },
	"blockedMethods":     func(o *SessionOptions, v string) error { o.BlockedMethods = v; return nil },
	"brandCode":          func(o *SessionOptions, v string) error { o.BrandCode = v; return nil },
	"issuerId":           func(o *SessionOptions, v string) error { o.IssuerID = v; return nil },
	"shopperStatement":   func(o *SessionOptions, v string) error { o.ShopperStatement = v; return nil },
	"offerEmail":         func(o *SessionOptions, v string) error { o.OfferEmail = v; return nil },
	"offset": func(o *SessionOptions, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &InvalidFieldTypeError{Field: "offset", Expected: "integer", Got: v}
		}
		o.Offset = &n
		return nil
	},
}

// ParseSessionOptions builds options from provider field names and rejects
// names that are not session options.
func ParseSessionOptions(raw map[string]string) (SessionOptions, error) {
	var opts SessionOptions
	var unknown []string
	for name, value := range raw {
		set, ok := sessionOptionSetters[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if err := set(&opts, value); err != nil {
			return SessionOptions{}, err
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return SessionOptions{}, &UnknownOptionError{Names: unknown}
	}
	return opts, nil
}

// Session is one outbound payment request. Fields may be changed until
// Build is called; after that the session is considered sent.
type Session struct {
	credential entities.MerchantCredential

	MerchantReference string
	PaymentAmount     int64
	CurrencyCode      string
	ShipBeforeDate    DateValue
	SessionValidity   TimeValue
	ResURL            string
	Options           SessionOptions
}

// Redirect is a built session: the provider URL and the parameters it carries.
type Redirect struct {
	URL    string
	Params map[string]string
}

func NewSession(cred entities.MerchantCredential, merchantReference string, amount int64, currency string, opts SessionOptions) *Session {
	return &Session{
		credential:        cred,
		MerchantReference: merchantReference,
		PaymentAmount:     amount,
		CurrencyCode:      currency,
		ShipBeforeDate:    DaysFromToday(DefaultShipBeforeDays),
		SessionValidity:   TimeOffset(DefaultSessionValidity),
		Options:           opts,
	}
}

func (s *Session) Credential() entities.MerchantCredential {
	return s.credential
}

// RedirectURL is Build without the resolved parameters.
func (s *Session) RedirectURL(now time.Time, forceMulti bool) (string, error) {
	r, err := s.Build(now, forceMulti)
	if err != nil {
		return "", err
	}
	return r.URL, nil
}

// Build resolves every field against now, signs the parameters and returns
// the provider URL. forceMulti selects the multi-page flow regardless of the
// credential. Optional fields are sent only when non-empty, while the
// signature always reserves their slot.
func (s *Session) Build(now time.Time, forceMulti bool) (Redirect, error) {
	params := make(map[string]string, 24)
	var missing []string
	require := func(key, value string, present bool) {
		if !present {
			missing = append(missing, key)
			return
		}
		params[key] = value
	}

	require("merchantReference", s.MerchantReference, s.MerchantReference != "")
	require("paymentAmount", strconv.FormatInt(s.PaymentAmount, 10), s.PaymentAmount > 0)
	require("currencyCode", s.CurrencyCode, s.CurrencyCode != "")
	require("shipBeforeDate", s.ShipBeforeDate.Resolve(now), s.ShipBeforeDate.IsSet())
	require("skinCode", s.credential.SkinCode, s.credential.SkinCode != "")
	require("merchantAccount", s.credential.MerchantAccount, s.credential.MerchantAccount != "")
	require("sessionValidity", s.SessionValidity.Resolve(now), s.SessionValidity.IsSet())
	require("resURL", s.ResURL, s.ResURL != "")

	if len(missing) > 0 {
		return Redirect{}, &MissingRequiredFieldError{Fields: missing}
	}

	optional, err := s.optionalParams()
	if err != nil {
		return Redirect{}, err
	}
	for k, v := range optional {
		if v != "" {
			params[k] = v
		}
	}

	params["merchantSig"] = SetupSignature(params, s.credential.Secret)

	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}
	return Redirect{
		URL:    fmt.Sprintf("https://%s.adyen.com/hpp/%s.shtml?%s", s.host(), s.path(forceMulti), values.Encode()),
		Params: params,
	}, nil
}

func (s *Session) optionalParams() (map[string]string, error) {
	o := s.Options
	orderData := ""
	if o.OrderData != "" {
		encoded, err := EncodeOrderData(o.OrderData)
		if err != nil {
			return nil, fmt.Errorf("encode order data: %w", err)
		}
		orderData = encoded
	}
	offset := ""
	if o.Offset != nil && *o.Offset != 0 {
		offset = strconv.Itoa(*o.Offset)
	}
	return map[string]string{
		"shopperLocale":      o.ShopperLocale,
		"orderData":          orderData,
		"merchantReturnData": o.MerchantReturnData,
		"countryCode":        o.CountryCode,
		"shopperEmail":       o.ShopperEmail,
		"shopperReference":   o.ShopperReference,
		"recurringContract":  o.RecurringContract,
		"allowedMethods":     o.AllowedMethods,
		"blockedMethods":     o.BlockedMethods,
		"offset":             offset,
		"brandCode":          o.BrandCode,
		"issuerId":           o.IssuerID,
		"shopperStatement":   o.ShopperStatement,
		"offerEmail":         o.OfferEmail,
	}, nil
}

func (s *Session) host() string {
	if s.credential.IsLive {
		return liveHost
	}
	return testHost
}

func (s *Session) path(forceMulti bool) string {
	if !forceMulti && s.credential.SinglePage() {
		return "pay"
	}
	return "select"
}
