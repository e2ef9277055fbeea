package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOptions_CustomerCode(t *testing.T) {
	tests := []struct {
		name string
		opts *Options
		want string
	}{
		{name: "nil options", opts: nil, want: ""},
		{name: "customer id wins", opts: &Options{CustomerID: "C-1", Customer: "C-2"}, want: "C-1"},
		{name: "falls back to customer", opts: &Options{Customer: "C-2"}, want: "C-2"},
		{name: "blank customer id falls back", opts: &Options{CustomerID: "  ", Customer: "C-2"}, want: "C-2"},
		{name: "neither set", opts: &Options{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.CustomerCode())
		})
	}
}

func TestOptions_AddressForBilling(t *testing.T) {
	billing := &Address{City: "Ottawa"}
	mailing := &Address{City: "Toronto"}

	assert.Nil(t, (*Options)(nil).AddressForBilling())
	assert.Nil(t, (&Options{}).AddressForBilling())
	assert.Same(t, billing, (&Options{BillingAddress: billing, Address: mailing}).AddressForBilling())
	assert.Same(t, mailing, (&Options{Address: mailing}).AddressForBilling())
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"50.00", 5000},
		{"1", 100},
		{"0.01", 1},
		{"125", 12500},
		{"10.005", 1001},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MinorUnits(decimal.RequireFromString(tt.in)))
		})
	}
}
