package signing

import (
	"net/url"
	"slices"
	"strings"
)

// MoMoCreateParams holds the values of a MoMo "create payment" request, exactly as
// they are sent in the request body.
type MoMoCreateParams struct {
	AccessKey   string
	Amount      string
	ExtraData   string
	IPNURL      string
	OrderID     string
	OrderInfo   string
	PartnerCode string
	RedirectURL string
	RequestID   string
	RequestType string
}

// MoMoCreate builds the raw signature of a MoMo create request.
func MoMoCreate(p MoMoCreateParams) (string, error) {
	return KeyValue(
		required("accessKey", p.AccessKey),
		required("amount", p.Amount),
		optional("extraData", p.ExtraData),
		required("ipnUrl", p.IPNURL),
		required("orderId", p.OrderID),
		required("orderInfo", p.OrderInfo),
		required("partnerCode", p.PartnerCode),
		required("redirectUrl", p.RedirectURL),
		required("requestId", p.RequestID),
		required("requestType", p.RequestType),
	)
}

// MoMoIPNParams holds the fields of an inbound MoMo payment notification as received.
type MoMoIPNParams struct {
	AccessKey    string
	Amount       string
	ExtraData    string
	Message      string
	OrderID      string
	OrderInfo    string
	OrderType    string
	PartnerCode  string
	PayType      string
	RequestID    string
	ResponseTime string
	ResultCode   string
	TransID      string
}

// MoMoIPN builds the raw signature MoMo uses for its payment notifications.
// The access key is ours; every other value comes from the notification.
func MoMoIPN(p MoMoIPNParams) (string, error) {
	return KeyValue(
		required("accessKey", p.AccessKey),
		required("amount", p.Amount),
		optional("extraData", p.ExtraData),
		required("message", p.Message),
		required("orderId", p.OrderID),
		required("orderInfo", p.OrderInfo),
		required("orderType", p.OrderType),
		required("partnerCode", p.PartnerCode),
		required("payType", p.PayType),
		required("requestId", p.RequestID),
		required("responseTime", p.ResponseTime),
		required("resultCode", p.ResultCode),
		required("transId", p.TransID),
	)
}

// ZaloPayCreateParams holds the order fields covered by the ZaloPay create MAC.
type ZaloPayCreateParams struct {
	AppID      string
	AppTransID string
	AppUser    string
	Amount     string
	AppTime    string
	EmbedData  string
	Item       string
}

// ZaloPayCreate builds the MAC input of a ZaloPay order: values joined by '|'
// in the order app_id|app_trans_id|app_user|amount|app_time|embed_data|item.
func ZaloPayCreate(p ZaloPayCreateParams) (string, error) {
	return Values("|",
		required("app_id", p.AppID),
		required("app_trans_id", p.AppTransID),
		required("app_user", p.AppUser),
		required("amount", p.Amount),
		required("app_time", p.AppTime),
		required("embed_data", p.EmbedData),
		required("item", p.Item),
	)
}

// ZaloPayCallback returns the MAC input of a ZaloPay callback, which is the
// "data" field exactly as received.
func ZaloPayCallback(data string) (string, error) {
	if data == "" {
		return "", &SigningError{Field: "data"}
	}
	return data, nil
}

// CardPaymentParams holds the values signed for a card payment result.
type CardPaymentParams struct {
	TransactionID string
	CardBIN       string
	Amount        string
	Timestamp     string
}

// CardPayment builds the canonical string attached to a card payment result:
// transactionId|cardBin|amount|timestamp.
func CardPayment(p CardPaymentParams) (string, error) {
	return Values("|",
		required("transactionId", p.TransactionID),
		required("cardBin", p.CardBIN),
		required("amount", p.Amount),
		required("timestamp", p.Timestamp),
	)
}

// BIDVRequest builds the X-Signature input of a BIDV open API call:
// the request body, then the X-Timestamp value, then the client id.
func BIDVRequest(body, timestamp, clientID string) (string, error) {
	if timestamp == "" {
		return "", &SigningError{Field: "timestamp"}
	}
	if clientID == "" {
		return "", &SigningError{Field: "clientId"}
	}
	return body + timestamp + clientID, nil
}

// Fields VNPay leaves out of its own hash.
const (
	VNPaySecureHash     = "vnp_SecureHash"
	VNPaySecureHashType = "vnp_SecureHashType"
)

// VNPay builds the hash input of a VNPay payment URL or return/IPN query: every
// non-empty parameter except the hash fields, sorted by key, query-escaped and
// joined as key=value pairs with '&'. Only the first value of a key is used.
func VNPay(params url.Values) (string, error) {
	for _, key := range []string{"vnp_TmnCode", "vnp_TxnRef"} {
		if params.Get(key) == "" {
			return "", &SigningError{Field: key}
		}
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		if key == VNPaySecureHash || key == VNPaySecureHashType || params.Get(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params.Get(key)))
	}
	return b.String(), nil
}
