package zift

// Account types. Only branded credit card is sent; the request carries no
// information that would let us pick one of the others.
const (
	AccountTypeBrandedCreditCard        = "R"
	AccountTypeBrandedDebitCheckingCard = "E"
	AccountTypeBrandedDebitSavingsCard  = "V"
	AccountTypeBankSavingsAccount       = "S"
	AccountTypeBankCheckingAccount      = "C"
)

// Transaction industry types
const (
	IndustryTypeDirectMarketing = "DB"
	IndustryTypeEcommerce       = "EC"
	IndustryTypeRetail          = "RE"
	IndustryTypeRestaurant      = "RS"
	IndustryTypeLodging         = "LD"
	IndustryTypeCarRental       = "PT"
)

// Transaction category types
const (
	CategoryTypeBillPayment = "B"
	CategoryTypeRecurring   = "R"
	CategoryTypeInstallment = "I"
	CategoryTypeHealthcare  = "H"
)

// Request field names
const (
	fieldUserName         = "userName"
	fieldPassword         = "password"
	fieldAccountID        = "accountId"
	fieldRequestType      = "requestType"
	fieldTransactionID    = "transactionId"
	fieldAmount           = "amount"
	fieldIndustryType     = "transactionIndustryType"
	fieldCategoryType     = "transactionCategoryType"
	fieldTaxAmount        = "taxAmount"
	fieldOrderCode        = "orderCode"
	fieldCustomerCode     = "customerAccountCode"
	fieldMemo             = "memo"
	fieldAccountType      = "accountType"
	fieldAccountNumber    = "accountNumber"
	fieldAccountAccessory = "accountAccessory"
	fieldHolderName       = "holderName"
	fieldCSC              = "csc"
	fieldStreet           = "street"
	fieldCity             = "city"
	fieldState            = "state"
	fieldZipCode          = "zipCode"
	fieldCountryCode      = "countryCode"
)

// Response field names
const (
	respResponseCode    = "responseCode"
	respResponseMessage = "responseMessage"
	respFailureMessage  = "failureMessage"
	respTransactionID   = "transactionId"
	respAVSCode         = "avsResponseCode"
	respCSCCode         = "cscResponseCode"
)

// SuccessCodes are the response codes Zift uses for approved requests
var SuccessCodes = map[string]struct{}{
	"A01": {}, "A02": {}, "A03": {}, "A04": {}, "A05": {},
	"A06": {}, "A07": {}, "A08": {}, "A09": {}, "A10": {},
}

// GatewayInfo describes the processor for gateway listings
type GatewayInfo struct {
	DisplayName        string
	HomepageURL        string
	SupportedCountries []string
	SupportedCardTypes []string
	DefaultCurrency    string
	MoneyFormat        string
}

// Info returns the static description of the Zift gateway
func Info() GatewayInfo {
	return GatewayInfo{
		DisplayName:        "Zift",
		HomepageURL:        "http://ziftpay.com/",
		SupportedCountries: []string{"AU", "CA", "US"},
		SupportedCardTypes: []string{"visa", "master", "american_express", "discover"},
		DefaultCurrency:    "USD",
		MoneyFormat:        "cents",
	}
}
