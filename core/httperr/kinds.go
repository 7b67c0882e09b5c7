package httperr

import "net/http"

// Error kinds, one per standard 4xx and 5xx status code.
var (
	ErrBadRequest                   = kind(http.StatusBadRequest, "bad_request")
	ErrUnauthorized                 = kind(http.StatusUnauthorized, "unauthorized")
	ErrPaymentRequired              = kind(http.StatusPaymentRequired, "payment_required")
	ErrForbidden                    = kind(http.StatusForbidden, "forbidden")
	ErrNotFound                     = kind(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed             = kind(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrNotAcceptable                = kind(http.StatusNotAcceptable, "not_acceptable")
	ErrProxyAuthRequired            = kind(http.StatusProxyAuthRequired, "proxy_auth_required")
	ErrRequestTimeout               = kind(http.StatusRequestTimeout, "request_timeout")
	ErrConflict                     = kind(http.StatusConflict, "conflict")
	ErrGone                         = kind(http.StatusGone, "gone")
	ErrLengthRequired               = kind(http.StatusLengthRequired, "length_required")
	ErrPreconditionFailed           = kind(http.StatusPreconditionFailed, "precondition_failed")
	ErrRequestEntityTooLarge        = kind(http.StatusRequestEntityTooLarge, "request_entity_too_large")
	ErrRequestURITooLong            = kind(http.StatusRequestURITooLong, "request_uri_too_long")
	ErrUnsupportedMediaType         = kind(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrRequestedRangeNotSatisfiable = kind(http.StatusRequestedRangeNotSatisfiable, "requested_range_not_satisfiable")
	ErrExpectationFailed            = kind(http.StatusExpectationFailed, "expectation_failed")
	ErrTeapot                       = HTTPError{Status: http.StatusTeapot, Code: "teapot", Message: "I'm a teapot"}
	ErrMisdirectedRequest           = kind(http.StatusMisdirectedRequest, "misdirected_request")
	ErrUnprocessableEntity          = kind(http.StatusUnprocessableEntity, "unprocessable_entity")
	ErrLocked                       = kind(http.StatusLocked, "locked")
	ErrFailedDependency             = kind(http.StatusFailedDependency, "failed_dependency")
	ErrTooEarly                     = kind(http.StatusTooEarly, "too_early")
	ErrUpgradeRequired              = kind(http.StatusUpgradeRequired, "upgrade_required")
	ErrPreconditionRequired         = kind(http.StatusPreconditionRequired, "precondition_required")
	ErrTooManyRequests              = kind(http.StatusTooManyRequests, "too_many_requests")
	ErrRequestHeaderFieldsTooLarge  = kind(http.StatusRequestHeaderFieldsTooLarge, "request_header_fields_too_large")
	ErrUnavailableForLegalReasons   = kind(http.StatusUnavailableForLegalReasons, "unavailable_for_legal_reasons")

	ErrInternalServerError           = kind(http.StatusInternalServerError, "internal_server_error")
	ErrNotImplemented                = kind(http.StatusNotImplemented, "not_implemented")
	ErrBadGateway                    = kind(http.StatusBadGateway, "bad_gateway")
	ErrServiceUnavailable            = kind(http.StatusServiceUnavailable, "service_unavailable")
	ErrGatewayTimeout                = kind(http.StatusGatewayTimeout, "gateway_timeout")
	ErrHTTPVersionNotSupported       = kind(http.StatusHTTPVersionNotSupported, "http_version_not_supported")
	ErrVariantAlsoNegotiates         = kind(http.StatusVariantAlsoNegotiates, "variant_also_negotiates")
	ErrInsufficientStorage           = kind(http.StatusInsufficientStorage, "insufficient_storage")
	ErrLoopDetected                  = kind(http.StatusLoopDetected, "loop_detected")
	ErrNotExtended                   = kind(http.StatusNotExtended, "not_extended")
	ErrNetworkAuthenticationRequired = kind(http.StatusNetworkAuthenticationRequired, "network_authentication_required")
)

// byStatus maps every supported status code to its error kind.
var byStatus = func() map[int]HTTPError {
	kinds := []HTTPError{
		ErrBadRequest,
		ErrUnauthorized,
		ErrPaymentRequired,
		ErrForbidden,
		ErrNotFound,
		ErrMethodNotAllowed,
		ErrNotAcceptable,
		ErrProxyAuthRequired,
		ErrRequestTimeout,
		ErrConflict,
		ErrGone,
		ErrLengthRequired,
		ErrPreconditionFailed,
		ErrRequestEntityTooLarge,
		ErrRequestURITooLong,
		ErrUnsupportedMediaType,
		ErrRequestedRangeNotSatisfiable,
		ErrExpectationFailed,
		ErrTeapot,
		ErrMisdirectedRequest,
		ErrUnprocessableEntity,
		ErrLocked,
		ErrFailedDependency,
		ErrTooEarly,
		ErrUpgradeRequired,
		ErrPreconditionRequired,
		ErrTooManyRequests,
		ErrRequestHeaderFieldsTooLarge,
		ErrUnavailableForLegalReasons,
		ErrInternalServerError,
		ErrNotImplemented,
		ErrBadGateway,
		ErrServiceUnavailable,
		ErrGatewayTimeout,
		ErrHTTPVersionNotSupported,
		ErrVariantAlsoNegotiates,
		ErrInsufficientStorage,
		ErrLoopDetected,
		ErrNotExtended,
		ErrNetworkAuthenticationRequired,
	}
	m := make(map[int]HTTPError, len(kinds))
	for _, k := range kinds {
		m[k.Status] = k
	}
	return m
}()

func kind(status int, code string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: http.StatusText(status)}
}
