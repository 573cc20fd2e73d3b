package apierror

// Stable error codes shared with the front end.
const (
	CodeInvalidJSON     = "INVALID_JSON"
	CodeInternal        = "INTERNAL_ERROR"
	CodeDBQuery         = "DB_QUERY_ERROR"
	CodeMissingFields   = "MISSING_FIELDS"
	CodeMissingRequired = "MISSING_REQUIRED_FIELDS"
	CodeNotFound        = "NOT_FOUND"
	CodeRateLimited     = "RATE_LIMITED"

	// auth
	CodeNoToken        = "NO_TOKEN"
	CodeBadToken       = "BAD_TOKEN"
	CodeNoAuth         = "NO_AUTH"
	CodeForbiddenRole  = "FORBIDDEN_ROLE"
	CodeBadCredentials = "BAD_CREDENTIALS"
	CodeEmailExists    = "EMAIL_ALREADY_EXISTS"
	CodeUserNotFound   = "USER_NOT_FOUND"

	// cash sessions
	CodeCashAlreadyOpen     = "CASH_ALREADY_OPEN"
	CodeCashNotFound        = "CASH_NOT_FOUND"
	CodeCashAlreadyClosed   = "CASH_ALREADY_CLOSED"
	CodeClosingRequired     = "CLOSING_REQUIRED"
	CodeAmountRequired      = "AMOUNT_REQUIRED"
	CodeNoCashOpen          = "NO_CASH_OPEN"
	CodeSupplierNotFound    = "SUPPLIER_NOT_FOUND"
	CodeInvalidMovementType = "INVALID_MOVEMENT_TYPE"

	// orders and checkout
	CodeOrderNotFound        = "ORDER_NOT_FOUND"
	CodeOrderClosed          = "ORDER_CLOSED"
	CodeOrderAlreadyClosed   = "ORDER_ALREADY_CLOSED"
	CodeOrderWithoutItems    = "ORDER_WITHOUT_ITEMS"
	CodeNothingToUpdate      = "NOTHING_TO_UPDATE"
	CodeInvalidStatus        = "INVALID_STATUS"
	CodeInvalidPrepStatus    = "INVALID_PREP_STATUS"
	CodeInvalidItem          = "INVALID_ITEM"
	CodeCashSessionNotFound  = "CASH_SESSION_NOT_FOUND"
	CodeCashSessionClosed    = "CASH_SESSION_CLOSED"
	CodeNoItems              = "NO_ITEMS"
	CodeInvalidPayment       = "INVALID_PAYMENT_METHOD"
	CodeProductNotFound      = "PRODUCT_NOT_FOUND"
	CodeSaleError            = "SALE_ERROR"
	CodeChargeError          = "CHARGE_ERROR"
	CodeOrderError           = "ORDER_ERROR"
	CodeSkuExists            = "SKU_ALREADY_EXISTS"

	// invoices
	CodeInvalidInvoiceType     = "INVALID_INVOICE_TYPE"
	CodeInvoiceARequiresCust   = "INVOICE_A_REQUIRES_CUSTOMER"
	CodeInvoiceARequiresRICust = "INVOICE_A_REQUIRES_RI_CUSTOMER"
	CodeSaleNotFound           = "SALE_NOT_FOUND"
	CodeCustomerNotFound       = "CUSTOMER_NOT_FOUND"
	CodeInvoiceNotFound        = "INVOICE_NOT_FOUND"
	CodeInvoiceError           = "ERROR_CREATING_INVOICE"
	CodePDFError               = "PDF_ERROR"

	// master data
	CodeCustomerExists   = "CUSTOMER_ALREADY_EXISTS"
	CodeEmployeeNotFound = "EMPLOYEE_NOT_FOUND"
	CodeReportError      = "REPORT_ERROR"
)

// Request-shape codes.
const (
	CodeInvalidDate  = "INVALID_DATE"
	CodeInvalidID    = "INVALID_ID"
	CodeInvalidTotal = "INVALID_TOTAL"
	CodeInvalidRole  = "INVALID_ROLE"
)
