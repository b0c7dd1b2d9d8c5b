package gateway

import (
	"encore.dev/rlog"

	"payoo.app/payment/model"
)

func configurationFailure(gateway string, err error) error {
	rlog.Error("gateway is not configured", "gateway", gateway, "error", err)
	return model.ConfigurationError()
}

func upstreamFailure(gateway string, err error) error {
	rlog.Error("gateway call failed", "gateway", gateway, "error", err)
	return model.UpstreamError(gateway + " is unavailable")
}

func internalFailure(msg string, err error, keysAndValues ...any) error {
	rlog.Error(msg, append([]any{"error", err}, keysAndValues...)...)
	return model.InternalError()
}
