// Package hubtel provides an HTTP client for the Hubtel SMSC REST API.
//
// The client wraps [github.com/go-resty/resty/v2] and covers sending
// single, group, and personalized bulk SMS, querying and rescheduling
// messages, and cancelling scheduled sends.
//
// # Basic Usage
//
//	c, err := hubtel.New("client-id", "client-secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	receipt, err := c.Send(ctx, &hubtel.Message{
//	    Sender:    "hubtel-sms",
//	    Recipient: "0550000000",
//	    Content:   "Hello world.",
//	})
//
// Recipient numbers are validated against the Ghana numbering plan and
// normalized to E.164 before any request is made; local-format numbers
// ("0550000000") and international-format numbers ("+233550000000") are
// both accepted. Scheduled times are free-form strings normalized by
// [ParseTime].
//
// # Message Shapes
//
// [Message] sends one SMS to one recipient over the messages route.
// [GroupMessage] sends the same content to many recipients as a named
// campaign, and [MessageBatch] sends per-recipient content, both over
// the batches route. Each shape validates its own fields and builds its
// own request body; a malformed message fails before any network call
// with one of [InvalidMessageError], [InvalidPhoneNumberError] or
// [InvalidTimeStringError].
//
// # Errors
//
// Transport failures and non-2xx gateway responses surface as
// [*SMSError]. Where the gateway provides one, the error carries a
// human-readable reason derived from the HTTP status code and the
// vendor sub-code in the response body.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the
// assembled configuration is validated by [New].
//
// # Retry Behaviour
//
// Nothing is retried automatically: the default retry count is 0.
// Callers opt in with [WithRetryCount], in which case
// [DefaultRetryPolicy] retries on HTTP 429, 5xx gateway errors, and
// transient connection errors. Supply a custom function via
// [WithRetryPolicy] to override this behaviour.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library; zap's SugaredLogger satisfies
// the interface directly. The default [NoopLogger] discards all log
// output.
package hubtel
