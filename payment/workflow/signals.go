package workflow

const CallbackReceivedSignalName = "callback-received"

// CallbackReceivedSignal carries the outcome of a verified gateway callback.
type CallbackReceivedSignal struct {
	Paid            bool   `json:"paid"`
	ResultCode      string `json:"result_code"`
	ProviderTransID string `json:"provider_trans_id"`
}
