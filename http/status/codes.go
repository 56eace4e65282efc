package status

import "strconv"

type (
	Code   uint16
	Status = string
)

// HTTP status codes as registered with IANA.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	Continue           Code = 100 // RFC 9110, 15.2.1
	SwitchingProtocols Code = 101 // RFC 9110, 15.2.2

	OK             Code = 200 // RFC 9110, 15.3.1
	Created        Code = 201 // RFC 9110, 15.3.2
	Accepted       Code = 202 // RFC 9110, 15.3.3
	NoContent      Code = 204 // RFC 9110, 15.3.5
	PartialContent Code = 206 // RFC 9110, 15.3.7

	MovedPermanently  Code = 301 // RFC 9110, 15.4.2
	Found             Code = 302 // RFC 9110, 15.4.3
	SeeOther          Code = 303 // RFC 9110, 15.4.4
	NotModified       Code = 304 // RFC 9110, 15.4.5
	TemporaryRedirect Code = 307 // RFC 9110, 15.4.8
	PermanentRedirect Code = 308 // RFC 9110, 15.4.9

	BadRequest           Code = 400 // RFC 9110, 15.5.1
	Unauthorized         Code = 401 // RFC 9110, 15.5.2
	Forbidden            Code = 403 // RFC 9110, 15.5.4
	NotFound             Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed     Code = 405 // RFC 9110, 15.5.6
	NotAcceptable        Code = 406 // RFC 9110, 15.5.7
	RequestTimeout       Code = 408 // RFC 9110, 15.5.9
	Conflict             Code = 409 // RFC 9110, 15.5.10
	Gone                 Code = 410 // RFC 9110, 15.5.11
	PreconditionFailed   Code = 412 // RFC 9110, 15.5.13
	UnsupportedMediaType Code = 415 // RFC 9110, 15.5.16
	Teapot               Code = 418 // RFC 9110, 15.5.19 (Unused)
	UnprocessableEntity  Code = 422 // RFC 9110, 15.5.21
	TooManyRequests      Code = 429 // RFC 6585, 4

	InternalServerError     Code = 500 // RFC 9110, 15.6.1
	NotImplemented          Code = 501 // RFC 9110, 15.6.2
	BadGateway              Code = 502 // RFC 9110, 15.6.3
	ServiceUnavailable      Code = 503 // RFC 9110, 15.6.4
	GatewayTimeout          Code = 504 // RFC 9110, 15.6.5
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)

var texts = map[Code]Status{
	Continue:                "Continue",
	SwitchingProtocols:      "Switching Protocols",
	OK:                      "OK",
	Created:                 "Created",
	Accepted:                "Accepted",
	NoContent:               "No Content",
	PartialContent:          "Partial Content",
	MovedPermanently:        "Moved Permanently",
	Found:                   "Found",
	SeeOther:                "See Other",
	NotModified:             "Not Modified",
	TemporaryRedirect:       "Temporary Redirect",
	PermanentRedirect:       "Permanent Redirect",
	BadRequest:              "Bad Request",
	Unauthorized:            "Unauthorized",
	Forbidden:               "Forbidden",
	NotFound:                "Not Found",
	MethodNotAllowed:        "Method Not Allowed",
	NotAcceptable:           "Not Acceptable",
	RequestTimeout:          "Request Timeout",
	Conflict:                "Conflict",
	Gone:                    "Gone",
	PreconditionFailed:      "Precondition Failed",
	UnsupportedMediaType:    "Unsupported Media Type",
	Teapot:                  "I'm a teapot",
	UnprocessableEntity:     "Unprocessable Entity",
	TooManyRequests:         "Too Many Requests",
	InternalServerError:     "Internal Server Error",
	NotImplemented:          "Not Implemented",
	BadGateway:              "Bad Gateway",
	ServiceUnavailable:      "Service Unavailable",
	GatewayTimeout:          "Gateway Timeout",
	HTTPVersionNotSupported: "HTTP Version Not Supported",
}

// Text returns a text for the HTTP status code. Codes out of the table
// are described as "Unknown Status Code".
func Text(code Code) Status {
	if text, ok := texts[code]; ok {
		return text
	}

	return "Unknown Status Code"
}

// String returns the decimal representation of the code.
func (c Code) String() string {
	return strconv.FormatUint(uint64(c), 10)
}
