package zift

import (
	"testing"

	"github.com/kevin07696/zift-gateway/internal/domain/models"
	"github.com/kevin07696/zift-gateway/test/mocks"
	"github.com/stretchr/testify/require"
)

// Captured sandbox responses
const (
	successfulPurchaseResponse = "responseType=sale&approvalCode=1016125726&providerTransactionId=&providerResponseMessage=Approved&providerAvsResponseCode=&accountNumberMasked=4***********1111&avsResponseCode=&responseCode=A01&entryModeType=M&cscResponseCode=&balance=&cycleCode=82193&entryMediumType=MC&holderVerificationModeType=&holderName=Longbob+Longsen&amount=50&extendedAccountType=VC&warningCode=&accountType=R&transactionCode=&transactionDate=20180716&providerTransactionCode=&transactionId=653613&token=VC10000000000008591111&accountId=1804001&originalAmount=50&providerResponseCode=&accountAccessory=0422&providerCscResponseCode=&responseMessage=Approved&currencyCode=USD&processorCode=1016125726&terminalMessage=&processorResponse="

	failedPurchaseResponse = "responseType=sale&approvalCode=&providerTransactionId=&providerResponseMessage=Insufficient+Funds&providerAvsResponseCode=&accountNumberMasked=4***********1111&avsResponseCode=&responseCode=D03&entryModeType=M&cscResponseCode=&balance=&cycleCode=82193&entryMediumType=MC&holderVerificationModeType=&holderName=Longbob+Longsen&amount=12500&extendedAccountType=VC&warningCode=&accountType=R&transactionCode=&transactionDate=20180716&providerTransactionCode=&transactionId=653643&token=VC10000000000008591111&accountId=1804001&originalAmount=12500&providerResponseCode=&accountAccessory=0422&providerCscResponseCode=&responseMessage=Insufficient+Funds&currencyCode=USD&processorCode=&terminalMessage=&processorResponse="

	successfulAuthorizeResponse = "responseType=sale-auth&approvalCode=336373676&providerTransactionId=&providerResponseMessage=Approved&providerAvsResponseCode=&accountNumberMasked=4***********1111&avsResponseCode=Y&responseCode=A01&entryModeType=M&cscResponseCode=M&balance=&cycleCode=82193&entryMediumType=MC&holderVerificationModeType=&holderName=Longbob+Longsen&amount=5000&extendedAccountType=VC&warningCode=&accountType=R&transactionCode=&transactionDate=20180716&providerTransactionCode=&transactionId=653653&token=VC10000000000008591111&accountId=1804001&originalAmount=5000&providerResponseCode=&accountAccessory=0422&providerCscResponseCode=&responseMessage=Approved&currencyCode=USD&processorCode=336373676&terminalMessage=&processorResponse="

	failedAuthorizeResponse = "responseType=sale-auth&approvalCode=&providerTransactionId=&providerResponseMessage=Insufficient+Funds&providerAvsResponseCode=&accountNumberMasked=4***********1111&avsResponseCode=&responseCode=D03&entryModeType=M&cscResponseCode=&balance=&cycleCode=82193&entryMediumType=MC&holderVerificationModeType=&holderName=Longbob+Longsen&amount=12500&extendedAccountType=VC&warningCode=&accountType=R&transactionCode=&transactionDate=20180716&providerTransactionCode=&transactionId=653522&token=VC10000000000008591111&accountId=1804001&originalAmount=12500&providerResponseCode=&accountAccessory=0422&providerCscResponseCode=&responseMessage=Insufficient+Funds&currencyCode=USD&processorCode=&terminalMessage=&processorResponse="

	successfulCaptureResponse = "responseType=capture&accountId=1804001&remainingAmount=5000&providerTransactionId=&transactionCode=&cycleCode=82193&responseMessage=Approved&transactionId=653653&terminalMessage=&responseCode=A01"

	failedCaptureResponse = "responseType=exception&failureCode=V28&failureMessage=Capture+Amount+value+must+be+less+than+or+equal+to+Authorization+Amount.+%5BaccountId%3D1804001%2C+requestType%3Dcapture%2C+transactionId%3D653572%2C+providerProfileCode%3D60791%2C+providerProfileType%3Dcards-realtime%2Fproxy%5D"

	successfulRefundResponse = "responseType=refund&accountId=1804001&remainingAmount=0&providerTransactionId=&originalTransactionCode=&transactionCode=&cycleCode=82193&responseMessage=Void+Posted+%28Auth+Reversed%29&voidAmount=5000&transactionId=653693&terminalMessage=&responseCode=A03&processorResponse="

	failedRefundResponse = "responseType=exception&failureCode=V24&failureMessage=Referenced+Transaction+is+not+found+within+the+System+or+not+accessible+to+the+current+user."

	successfulVoidResponse = "responseType=void&accountId=1804001&remainingAmount=0&providerTransactionId=&transactionCode=&cycleCode=82193&responseMessage=Void+Posted+%28Auth+Reversed%29&voidAmount=5000&transactionId=653632&terminalMessage=&responseCode=A03&processorResponse=&voidReasonCode=CI"

	failedVoidResponse = "responseType=exception&failureCode=V24&failureMessage=Referenced+Transaction+is+not+found+within+the+System+or+not+accessible+to+the+current+user."

	successfulVerifyResponse = "responseType=account-verification&approvalCode=&providerTransactionId=&providerResponseMessage=Approved&providerAvsResponseCode=&accountNumberMasked=4***********1111&avsResponseCode=&responseCode=A01&entryModeType=M&cscResponseCode=&cycleCode=82283&entryMediumType=MC&holderVerificationModeType=&holderName=Longbob+Longsen&extendedAccountType=VC&accountType=R&transactionCode=&transactionDate=20180717&providerTransactionCode=&transactionId=654283&token=VC10000000000008591111&accountId=1804001&providerResponseCode=&accountAccessory=0422&providerCscResponseCode=&responseMessage=Approved=USD&processorCode=&terminalMessage=&processorResponse="

	failedVerifyResponse = "responseType=exception&failureCode=V21&failureMessage=Field%27s+accountNumber+value+is+invalid.&failedRequestType=account-verification"

	transactionNotFoundMessage = "Referenced Transaction is not found within the System or not accessible to the current user."
	captureExceedsMessage      = "Capture Amount value must be less than or equal to Authorization Amount"
)

func testCredentials() Credentials {
	return Credentials{
		UserName:  "TestUser",
		Password:  "1234",
		AccountID: "1234",
	}
}

func testCard() *models.CreditCard {
	return &models.CreditCard{
		Number:            "4111111111111111",
		Month:             4,
		Year:              2022,
		Name:              "Longbob Longsen",
		VerificationValue: "123",
	}
}

func testAddress() *models.Address {
	return &models.Address{
		Address1: "456 My Street",
		City:     "Ottawa",
		State:    "ON",
		Zip:      "K1C2N6",
		Country:  "CA",
	}
}

func testOptions() *models.Options {
	return &models.Options{
		OrderID:        "1",
		BillingAddress: testAddress(),
		Description:    "Store Purchase",
	}
}

// newTestGateway builds a sandbox gateway whose client answers every call with body
func newTestGateway(t *testing.T, statusCode int, body string) (*Gateway, *mocks.MockHTTPClient, *mocks.MockLogger) {
	t.Helper()

	client := mocks.NewTextResponder(statusCode, body)
	logger := mocks.NewMockLogger()

	gateway, err := NewGateway(DefaultConfig("sandbox", testCredentials()), client, logger)
	require.NoError(t, err)

	return gateway, client, logger
}
