package errors

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal        ErrorCode = "COMMON_001"
	ErrCodeBadRequest      ErrorCode = "COMMON_002"
	ErrCodeNotFound        ErrorCode = "COMMON_003"
	ErrCodeConflict        ErrorCode = "COMMON_004"
	ErrCodeTimeout         ErrorCode = "COMMON_005"
	ErrCodeValidation      ErrorCode = "COMMON_006"
	ErrCodeSerialization   ErrorCode = "COMMON_007"
	ErrCodeCacheError      ErrorCode = "COMMON_008"
	ErrCodeExternalService ErrorCode = "COMMON_009"
	ErrCodeUnavailable     ErrorCode = "COMMON_010"
)

// Aliases kept short for call-site readability.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")
)

// Detection Module Error Codes
const (
	ErrCodeSignatureInvalid   ErrorCode = "DET_001"
	ErrCodeRegistryEmpty      ErrorCode = "DET_002"
	ErrCodeDetectionNotFound  ErrorCode = "DET_003"
	ErrCodeDetectionCorrupted ErrorCode = "DET_004"
)

// Content Module Error Codes
const (
	ErrCodeContentLookupFailed ErrorCode = "CNT_001"
	ErrCodeContentInvalid      ErrorCode = "CNT_002"
)

// Valuation Module Error Codes
const (
	ErrCodeValuationConfigInvalid ErrorCode = "VAL_001"
	ErrCodeRateTableMissing       ErrorCode = "VAL_002"
)

// Portfolio Module Error Codes
const (
	ErrCodePortfolioEmpty        ErrorCode = "PRT_001"
	ErrCodePortfolioStoreFailure ErrorCode = "PRT_002"
)

// Messaging / Infrastructure Error Codes
const (
	ErrCodePublishFailed  ErrorCode = "MSG_001"
	ErrCodeProducerClosed ErrorCode = "MSG_002"
)

//Personal.AI order the ending
