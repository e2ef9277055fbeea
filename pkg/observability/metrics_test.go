package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordGatewayRequest(t *testing.T) {
	counter := gatewayRequestsTotal.WithLabelValues("sale", OutcomeDeclined, "D03")
	before := testutil.ToFloat64(counter)

	RecordGatewayRequest("sale", OutcomeDeclined, "D03", 150*time.Millisecond)
	RecordGatewayRequest("sale", OutcomeDeclined, "D03", 250*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestTrackGatewayRequest(t *testing.T) {
	before := testutil.ToFloat64(gatewayRequestsInFlight)

	done := TrackGatewayRequest()
	assert.Equal(t, before+1, testutil.ToFloat64(gatewayRequestsInFlight))

	done()
	assert.Equal(t, before, testutil.ToFloat64(gatewayRequestsInFlight))
}

func TestRecordCredentialResolution(t *testing.T) {
	ok := credentialResolutionsTotal.WithLabelValues(CredentialSourceSecret, "ok")
	failed := credentialResolutionsTotal.WithLabelValues(CredentialSourceSecret, OutcomeError)
	okBefore := testutil.ToFloat64(ok)
	failedBefore := testutil.ToFloat64(failed)

	RecordCredentialResolution(CredentialSourceSecret, nil)
	RecordCredentialResolution(CredentialSourceSecret, errors.New("denied"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}
