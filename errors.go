package hubtel

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// statusReasons maps HTTP status codes with a single fixed meaning on
// the Hubtel gateway to a human-readable sentence.
var statusReasons = map[int]string{
	402: "Your account does not have enough messaging credits to send the message.",
	403: "Recipient has not given his/her approval to receive messages.",
	404: "The specified message was not found.",
}

// badRequestReasons refines HTTP 400 by the vendor sub-code carried in
// the Status field of the response body.
var badRequestReasons = map[int]string{
	3: "The message body was too long.",
	4: "The message is not routable on the Hubtel gateway.",
	6: "The message content was rejected or is invalid.",
	7: "One or more parameters are not allowed in the message.",
	8: "One or more parameters are not valid for the message.",
}

// explainResponse returns a best-effort sentence for a non-2xx gateway
// response, or "" when no explanation is known. It never fails: a body
// that is not JSON, or lacks a Status sub-code, degrades to the generic
// per-status sentence or to no explanation at all.
func explainResponse(statusCode int, body []byte) string {
	if statusCode == 400 {
		var payload struct {
			Status int `json:"Status"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return ""
		}
		return badRequestReasons[payload.Status]
	}

	return statusReasons[statusCode]
}

// InvalidPhoneNumberError reports a recipient number that could not be
// parsed, or is not a valid number for the Ghana numbering plan.
type InvalidPhoneNumberError struct {
	// Number is the offending input.
	Number string
}

func (e *InvalidPhoneNumberError) Error() string {
	return fmt.Sprintf("%s: is not a valid phone number.", e.Number)
}

// InvalidTimeStringError reports a scheduled-time string that could not
// be parsed by any accepted format.
type InvalidTimeStringError struct {
	// Value is the offending input.
	Value string
}

func (e *InvalidTimeStringError) Error() string {
	return fmt.Sprintf("%s: is not a valid time string.", e.Value)
}

// InvalidMessageError reports a message whose body could not be
// constructed, e.g. a missing recipient or content.
type InvalidMessageError struct {
	Reason string
}

func (e *InvalidMessageError) Error() string {
	return "invalid message: " + e.Reason
}

// SMSError reports a failed gateway operation: either a transport-level
// failure (connection error, timeout, DNS) or a non-2xx response.
type SMSError struct {
	// StatusCode is the HTTP status of the gateway response, or 0 for
	// transport-level failures.
	StatusCode int

	// Reason is a best-effort explanation of the gateway response,
	// derived from the status code and the vendor sub-code in the
	// response body. It may be empty.
	Reason string

	msg   string
	cause error
}

func (e *SMSError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.msg, e.Reason)
	}

	return e.msg
}

// Unwrap returns the underlying transport error, if any.
func (e *SMSError) Unwrap() error {
	return e.cause
}

// newResponseError builds an [*SMSError] from a non-2xx gateway
// response.
func newResponseError(resp *resty.Response) *SMSError {
	return &SMSError{
		StatusCode: resp.StatusCode(),
		Reason:     explainResponse(resp.StatusCode(), resp.Body()),
		msg:        fmt.Sprintf("%s %s returned %s", resp.Request.Method, resp.Request.URL, resp.Status()),
	}
}

// newTransportError builds an [*SMSError] from a request that never
// produced a response.
func newTransportError(method, url string, err error) *SMSError {
	return &SMSError{
		msg:   fmt.Sprintf("%s %s failed: %v", method, url, err),
		cause: err,
	}
}
