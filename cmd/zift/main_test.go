package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterports "github.com/kevin07696/zift-gateway/internal/adapters/ports"
	"github.com/kevin07696/zift-gateway/internal/domain/models"
	"github.com/kevin07696/zift-gateway/test/mocks"
)

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer

	opts, err := parseFlags([]string{
		"-op", "purchase", "-amount", "50.00", "-card", "4111111111111111",
		"-exp-month", "4", "-exp-year", "2022", "-name", "Longbob Longsen", "-cvv", "123",
		"-order", "1", "-city", "Ottawa",
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "purchase", opts.op)
	assert.Equal(t, "50.00", opts.amount)
	assert.Equal(t, models.CreditCard{
		Number: "4111111111111111", Month: 4, Year: 2022, Name: "Longbob Longsen", VerificationValue: "123",
	}, opts.card)
	assert.Equal(t, "1", opts.order)
	assert.Equal(t, "Ottawa", opts.city)

	_, err = parseFlags([]string{"-amount", "1"}, &out)
	assert.ErrorContains(t, err, "-op is required")
	assert.Contains(t, out.String(), "usage: zift")

	opts, err = parseFlags([]string{"-store-credentials"}, &out)
	require.NoError(t, err)
	assert.True(t, opts.storeCredentials)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "50.00", want: 5000},
		{raw: "1", want: 100},
		{raw: "0.5", want: 50},
		{raw: " 125.99 ", want: 12599},
		{raw: "1.500", want: 150},
		{raw: "1.005", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "-5", wantErr: true},
		{raw: "ten", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseAmount(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildOptions(t *testing.T) {
	options := buildOptions(&cliOptions{description: "Store Purchase"})

	assert.NotEmpty(t, options.OrderID, "order id defaults to a uuid")
	assert.Nil(t, options.BillingAddress)
	assert.Equal(t, "Store Purchase", options.Description)

	options = buildOptions(&cliOptions{order: "1", customer: "c-1", zip: "K1C2N6"})

	assert.Equal(t, "1", options.OrderID)
	assert.Equal(t, "c-1", options.CustomerID)
	require.NotNil(t, options.BillingAddress)
	assert.Equal(t, "K1C2N6", options.BillingAddress.Zip)
}

func TestRun_Purchase(t *testing.T) {
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotForm, _ = url.ParseQuery(string(raw))
		_, _ = io.WriteString(w, "responseType=sale&responseCode=A01&responseMessage=Approved&transactionId=653613")
	}))
	defer server.Close()

	setRunEnv(t, server.URL+"/gates/xurl?")

	var out bytes.Buffer
	err := run(context.Background(), &cliOptions{
		op:     "purchase",
		amount: "1.00",
		card:   models.CreditCard{Number: "4111111111111111", Month: 4, Year: 2022, Name: "Longbob Longsen"},
		order:  "ord-1",
	}, &out)
	require.NoError(t, err)

	var result models.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "653613", result.Authorization)
	assert.True(t, result.Test)

	assert.Equal(t, "sale", gotForm.Get("requestType"))
	assert.Equal(t, "100", gotForm.Get("amount"))
	assert.Equal(t, "ord-1", gotForm.Get("orderCode"))
	assert.Equal(t, "TestUser", gotForm.Get("userName"))
}

func TestRun_CredentialsFromLocalSecret(t *testing.T) {
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotForm, _ = url.ParseQuery(string(raw))
		_, _ = io.WriteString(w, "responseType=void&responseCode=A03&transactionId=653632")
	}))
	defer server.Close()

	secretsDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(secretsDir, "zift"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "zift", "demo"),
		[]byte(`{"userName":"vaulted","password":"s3cret","accountId":"1804001"}`), 0600))

	setRunEnv(t, server.URL+"/gates/xurl?")
	t.Setenv("ZIFT_USERNAME", "")
	t.Setenv("ZIFT_PASSWORD", "")
	t.Setenv("ZIFT_ACCOUNT_ID", "")
	t.Setenv("ZIFT_CREDENTIALS_SECRET", "zift/demo")
	t.Setenv("SECRET_MANAGER", "local")
	t.Setenv("SECRET_LOCAL_PATH", secretsDir)

	var out bytes.Buffer
	err := run(context.Background(), &cliOptions{op: "void", auth: "653632"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "vaulted", gotForm.Get("userName"))
	assert.Equal(t, "1804001", gotForm.Get("accountId"))
	assert.Equal(t, "653632", gotForm.Get("transactionId"))
}

func TestRun_Errors(t *testing.T) {
	setRunEnv(t, "http://127.0.0.1:1/gates/xurl?")

	err := run(context.Background(), &cliOptions{op: "refund", auth: "1"}, io.Discard)
	assert.ErrorContains(t, err, "-amount is required")

	err = run(context.Background(), &cliOptions{op: "settle"}, io.Discard)
	assert.ErrorContains(t, err, "unknown operation")

	t.Setenv("ZIFT_PASSWORD", "")
	err = run(context.Background(), &cliOptions{op: "void", auth: "1"}, io.Discard)
	assert.ErrorContains(t, err, "ZIFT_PASSWORD")
}

func TestRun_StoreCredentials(t *testing.T) {
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotForm, _ = url.ParseQuery(string(raw))
		_, _ = io.WriteString(w, "responseType=void&responseCode=A03&transactionId=653632")
	}))
	defer server.Close()

	secretsDir := t.TempDir()
	setRunEnv(t, server.URL+"/gates/xurl?")
	t.Setenv("ZIFT_USERNAME", "stored-user")
	t.Setenv("ZIFT_CREDENTIALS_SECRET", "zift/demo")
	t.Setenv("SECRET_MANAGER", "local")
	t.Setenv("SECRET_LOCAL_PATH", secretsDir)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &cliOptions{storeCredentials: true}, &out))
	assert.Contains(t, out.String(), "stored credentials at zift/demo")
	assert.FileExists(t, filepath.Join(secretsDir, "zift", "demo"))

	t.Setenv("ZIFT_USERNAME", "")
	t.Setenv("ZIFT_PASSWORD", "")
	t.Setenv("ZIFT_ACCOUNT_ID", "")

	require.NoError(t, run(context.Background(), &cliOptions{op: "void", auth: "653632"}, io.Discard))
	assert.Equal(t, "stored-user", gotForm.Get("userName"))
	assert.Equal(t, "1234", gotForm.Get("password"))
}

func TestRun_StoreCredentialsErrors(t *testing.T) {
	setRunEnv(t, "http://127.0.0.1:1/gates/xurl?")
	t.Setenv("ZIFT_CREDENTIALS_SECRET", "zift/demo")
	t.Setenv("SECRET_MANAGER", "aws")

	err := run(context.Background(), &cliOptions{storeCredentials: true}, io.Discard)
	assert.ErrorContains(t, err, "SECRET_MANAGER=local")

	t.Setenv("SECRET_MANAGER", "local")
	t.Setenv("SECRET_LOCAL_PATH", t.TempDir())
	t.Setenv("ZIFT_CREDENTIALS_SECRET", "")

	err = run(context.Background(), &cliOptions{storeCredentials: true}, io.Discard)
	assert.ErrorContains(t, err, "ZIFT_CREDENTIALS_SECRET")
}

type closingSecretManager struct {
	adapterports.SecretManagerAdapter
	closed int
	err    error
}

func (c *closingSecretManager) Close() error {
	c.closed++
	return c.err
}

func TestCloseSecretManager(t *testing.T) {
	logger := mocks.NewMockLogger()

	sm := &closingSecretManager{}
	closeSecretManager(sm, logger)
	assert.Equal(t, 1, sm.closed)
	assert.Empty(t, logger.WarnCalls)

	failing := &closingSecretManager{err: errors.New("connection already closed")}
	closeSecretManager(failing, logger)
	assert.Equal(t, 1, failing.closed)
	assert.Len(t, logger.WarnCalls, 1)
}

func setRunEnv(t *testing.T, gatewayURL string) {
	t.Helper()
	t.Setenv("ZIFT_USERNAME", "TestUser")
	t.Setenv("ZIFT_PASSWORD", "1234")
	t.Setenv("ZIFT_ACCOUNT_ID", "1234")
	t.Setenv("ZIFT_ENVIRONMENT", "sandbox")
	t.Setenv("ZIFT_GATEWAY_URL", gatewayURL)
	t.Setenv("ZIFT_CREDENTIALS_SECRET", "")
	t.Setenv("ZIFT_TIMEOUT", "5")
	t.Setenv("LOG_LEVEL", "error")
}
