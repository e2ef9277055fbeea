package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType represents the gateway request type of a transaction
type TransactionType string

const (
	TypeSale         TransactionType = "sale"
	TypeAuthorize    TransactionType = "sale-auth"
	TypeCapture      TransactionType = "capture"
	TypeRefund       TransactionType = "refund"
	TypeVoid         TransactionType = "void"
	TypeVerification TransactionType = "account-verification"
)

// CreditCard holds the card data sent with purchase, authorize and verify
type CreditCard struct {
	Number            string
	Month             int
	Year              int
	Name              string
	VerificationValue string // CVV/CSC, optional
}

// Address is a billing or mailing address
type Address struct {
	Address1 string
	City     string
	State    string
	Zip      string
	Country  string
}

// Options carries the optional per-operation metadata
type Options struct {
	OrderID     string
	CustomerID  string
	Customer    string // Used when CustomerID is empty
	Description string
	Tax         int64 // Minor currency units

	BillingAddress *Address
	Address        *Address // Used when BillingAddress is nil
}

// CustomerCode returns the customer identifier, preferring CustomerID
func (o *Options) CustomerCode() string {
	if o == nil {
		return ""
	}
	if strings.TrimSpace(o.CustomerID) != "" {
		return o.CustomerID
	}
	return o.Customer
}

// AddressForBilling returns the billing address, falling back to the generic address
func (o *Options) AddressForBilling() *Address {
	if o == nil {
		return nil
	}
	if o.BillingAddress != nil {
		return o.BillingAddress
	}
	return o.Address
}

// Result is the normalized outcome of a single gateway operation
type Result struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	Params        map[string]string `json:"params"`
	Authorization string            `json:"authorization,omitempty"`
	AVSCode       string            `json:"avs_code,omitempty"`
	CVVCode       string            `json:"cvv_code,omitempty"`
	ErrorCode     string            `json:"error_code,omitempty"`
	Test          bool              `json:"test"`
}

var hundred = decimal.NewFromInt(100)

// MinorUnits converts a major-unit amount (e.g. 50.00) into cents.
// Fractions of a cent are rounded half away from zero.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}
