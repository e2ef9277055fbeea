package zift

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kevin07696/zift-gateway/internal/domain/models"
	pkgerrors "github.com/kevin07696/zift-gateway/pkg/errors"
)

// addInvoice writes the amount, the fixed retail/bill-payment classification
// and the optional order metadata
func addInvoice(post url.Values, amount int64, opts *models.Options) error {
	if amount <= 0 {
		return pkgerrors.NewValidationError(fieldAmount, "must be a positive integer amount in cents")
	}

	post.Set(fieldAmount, strconv.FormatInt(amount, 10))
	post.Set(fieldIndustryType, IndustryTypeRetail)
	post.Set(fieldCategoryType, CategoryTypeBillPayment)

	if opts == nil {
		return nil
	}
	if opts.Tax > 0 {
		post.Set(fieldTaxAmount, strconv.FormatInt(opts.Tax, 10))
	}
	if present(opts.OrderID) {
		post.Set(fieldOrderCode, opts.OrderID)
	}
	if code := opts.CustomerCode(); present(code) {
		post.Set(fieldCustomerCode, code)
	}
	if present(opts.Description) {
		post.Set(fieldMemo, opts.Description)
	}
	return nil
}

// addPayment writes the card fields
func addPayment(post url.Values, card *models.CreditCard) error {
	if card == nil {
		return pkgerrors.NewValidationError("card", "is required")
	}
	if !present(card.Number) {
		return pkgerrors.NewValidationError(fieldAccountNumber, "card number is required")
	}
	if card.Month < 1 || card.Month > 12 {
		return pkgerrors.NewValidationError(fieldAccountAccessory, "expiry month must be between 1 and 12")
	}
	if card.Year <= 0 {
		return pkgerrors.NewValidationError(fieldAccountAccessory, "expiry year is required")
	}
	if !present(card.Name) {
		return pkgerrors.NewValidationError(fieldHolderName, "card holder name is required")
	}

	// TODO: map debit and bank-account instruments to accountType E/V/S/C once
	// models.CreditCard carries the funding source.
	post.Set(fieldAccountType, AccountTypeBrandedCreditCard)
	post.Set(fieldAccountNumber, card.Number)
	post.Set(fieldAccountAccessory, expDate(card.Month, card.Year))
	post.Set(fieldHolderName, card.Name)
	if present(card.VerificationValue) {
		post.Set(fieldCSC, card.VerificationValue)
	}
	return nil
}

// addCustomerData writes the billing address, if any
func addCustomerData(post url.Values, opts *models.Options) {
	addr := opts.AddressForBilling()
	if addr == nil {
		return
	}

	setIfPresent(post, fieldStreet, addr.Address1)
	setIfPresent(post, fieldCity, addr.City)
	setIfPresent(post, fieldCountryCode, addr.Country)
	setIfPresent(post, fieldState, addr.State)
	setIfPresent(post, fieldZipCode, addr.Zip)
}

// expDate renders MMYY, e.g. month 4 year 2022 -> "0422"
func expDate(month, year int) string {
	return fmt.Sprintf("%02d%02d", month%100, year%100)
}

func setIfPresent(post url.Values, key, value string) {
	if present(value) {
		post.Set(key, value)
	}
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
