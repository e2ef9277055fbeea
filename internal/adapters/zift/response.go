package zift

import (
	"net/url"
	"strings"

	"github.com/kevin07696/zift-gateway/internal/domain/models"
)

const messageSucceeded = "Succeeded"

// parseResponse decodes a text/plain "key=value&key=value" body.
// Dotted keys keep only their last non-empty segment; when two keys collide
// after that, the later pair wins.
func parseResponse(body string) map[string]string {
	params := make(map[string]string)

	for _, pair := range strings.Split(strings.TrimSpace(body), "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		key = strings.TrimRight(key, ".")
		if i := strings.LastIndex(key, "."); i >= 0 {
			key = key[i+1:]
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		params[key] = value
	}

	return params
}

// isSuccess reports whether the response code is present and approved
func isSuccess(params map[string]string) bool {
	code, ok := params[respResponseCode]
	if !ok || code == "" {
		return false
	}
	_, approved := SuccessCodes[code]
	return approved
}

func messageFrom(success bool, params map[string]string) string {
	if success {
		return messageSucceeded
	}
	if msg := params[respResponseMessage]; msg != "" {
		return msg
	}
	return params[respFailureMessage]
}

// buildResult normalizes parsed response fields
func buildResult(params map[string]string, test bool) *models.Result {
	success := isSuccess(params)

	result := &models.Result{
		Success:       success,
		Message:       messageFrom(success, params),
		Params:        params,
		Authorization: params[respTransactionID],
		AVSCode:       params[respAVSCode],
		CVVCode:       params[respCSCCode],
		Test:          test,
	}
	if !success {
		result.ErrorCode = params[respResponseCode]
	}
	return result
}
