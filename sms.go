package hubtel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://smsc.hubtel.com"
	apiVersion     = "v1"
)

const defaultQueryLimit = 100

// Client talks to the Hubtel SMSC REST API. All operations authenticate
// with HTTP Basic using the client ID and secret supplied to [New], and
// issue exactly one request each (unless retries are enabled).
//
// A Client is safe for sequential reuse. [Client.StatusCode] records
// the status of the most recent response and is not safe to read while
// other operations on the same Client are in flight.
type Client struct {
	baseURL    string
	options    *Options
	http       *resty.Client
	statusCode int
}

// New constructs a Client for the given Unity API credentials. Invalid
// option values are silently ignored and defaults retained; the
// resulting configuration is validated before the Client is returned.
func New(clientID, clientSecret string, opts ...Option) (*Client, error) {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	httpClient := resty.New().
		SetBaseURL(options.baseURL).
		SetBasicAuth(clientID, clientSecret).
		SetHeaders(options.requestHeaders).
		SetLogger(options.requestLogger).
		SetRetryCount(options.retryCount).
		SetRetryWaitTime(options.retryWaitTime).
		SetRetryMaxWaitTime(options.retryMaxWaitTime).
		AddRetryCondition(options.retryPolicy)

	if options.timeout > 0 {
		httpClient.SetTimeout(options.timeout)
	}

	return &Client{
		baseURL: options.baseURL,
		options: options,
		http:    httpClient,
	}, nil
}

// StatusCode reports the HTTP status of the most recent gateway
// response, or 0 if no request has completed yet.
func (c *Client) StatusCode() int {
	return c.statusCode
}

// do issues one request and classifies the response: [200,203) returns
// the parsed JSON body, 204 returns an empty map, anything else is an
// [*SMSError]. A request that never produced a response is an
// [*SMSError] wrapping the transport failure.
func (c *Client) do(ctx context.Context, method, path string, body any, query url.Values) (map[string]any, error) {
	req := c.http.R().SetContext(ctx)

	if body != nil {
		req.SetBody(body)
	}

	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, newTransportError(method, c.baseURL+path, err)
	}

	c.statusCode = resp.StatusCode()

	switch {
	case resp.StatusCode() >= 200 && resp.StatusCode() < 203:
		var result map[string]any
		if err := json.Unmarshal(resp.Body(), &result); err != nil {
			return nil, &SMSError{
				StatusCode: resp.StatusCode(),
				msg:        fmt.Sprintf("%s %s returned an unreadable body: %v", method, path, err),
				cause:      err,
			}
		}
		return result, nil

	case resp.StatusCode() == http.StatusNoContent:
		return map[string]any{}, nil

	default:
		return nil, newResponseError(resp)
	}
}

// Send submits a message over the route it belongs to: POST
// /v1/messages/send for a [Message], POST /v1/batches/send for a
// [GroupMessage] or [MessageBatch]. The body is validated and
// normalized before any network call.
//
// A successful single send returns the gateway receipt, e.g.:
//
//	{
//	  "ClientReference": "hubtel-sms",
//	  "MessageId": "d0c74524-e0a6-4c56-8afe-9cb1c23b636c",
//	  "Status": 0,
//	  "NetworkId": "62003",
//	  "Rate": 1
//	}
//
// A successful batch send returns the campaign summary instead.
func (c *Client) Send(ctx context.Context, message Sendable) (map[string]any, error) {
	if message == nil {
		return nil, &InvalidMessageError{Reason: "message is nil"}
	}

	body, err := message.Body()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/%s/%s/send", apiVersion, message.Route())
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// SendToGroup sends the same content to every recipient as a named
// campaign. sendTime optionally schedules the campaign and accepts any
// format [ParseTime] accepts.
func (c *Client) SendToGroup(ctx context.Context, sender string, recipients []string, content, campaignName, sendTime string) (map[string]any, error) {
	return c.Send(ctx, &GroupMessage{
		Sender:       sender,
		Recipients:   recipients,
		Content:      content,
		CampaignName: campaignName,
		Time:         sendTime,
	})
}

// SendPersonalized sends a campaign of messages each with its own
// recipient and content.
func (c *Client) SendPersonalized(ctx context.Context, sender string, entries []BatchEntry, campaignName, sendTime string) (map[string]any, error) {
	return c.Send(ctx, &MessageBatch{
		Sender:       sender,
		CampaignName: campaignName,
		Entries:      entries,
		Time:         sendTime,
	})
}

// GetMessage retrieves the details of a single-recipient message by its
// gateway-issued ID.
func (c *Client) GetMessage(ctx context.Context, messageID string) (map[string]any, error) {
	path := fmt.Sprintf("/%s/messages/%s", apiVersion, messageID)
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

// Query filters a [Client.QueryMessages] call. The zero value lists the
// first 100 sent messages in chronological order.
type Query struct {
	// Start and End bound the query window. Any format accepted by
	// [ParseTime] is valid.
	Start string
	End   string

	// Skip is the number of results to skip from the result set.
	Skip int

	// Limit caps the number of returned results; 0 means 100. The
	// gateway does not limit this endpoint server-side, so the cap is
	// applied to the response.
	Limit int

	// Pending restricts the result set to scheduled, unsent messages.
	Pending bool

	// Direction filters by message direction: "in" for inbound, "out"
	// for outbound.
	Direction string
}

// QueryMessages retrieves an overview of messages sent or received by
// the account. The gateway bans accounts that query at intervals
// shorter than five seconds.
func (c *Client) QueryMessages(ctx context.Context, q Query) ([]map[string]any, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	params := url.Values{}
	params.Set("index", strconv.Itoa(q.Skip))

	if q.Start != "" {
		start, err := ParseTime(q.Start, false)
		if err != nil {
			return nil, err
		}
		params.Set("start", start)
	}

	if q.End != "" {
		end, err := ParseTime(q.End, false)
		if err != nil {
			return nil, err
		}
		params.Set("end", end)
	}

	if q.Pending {
		params.Set("pending", "true")
	}

	if q.Direction != "" {
		params.Set("direction", q.Direction)
	}

	path := fmt.Sprintf("/%s/messages", apiVersion)
	result, err := c.do(ctx, http.MethodGet, path, nil, params)
	if err != nil {
		return nil, err
	}

	return refineQueryMessages(result, limit)
}

// refineQueryMessages extracts the inner list under the Messages key
// and truncates it to limit.
func refineQueryMessages(result map[string]any, limit int) ([]map[string]any, error) {
	raw, ok := result["Messages"].([]any)
	if !ok {
		return nil, &SMSError{msg: "query response has no Messages list"}
	}

	if len(raw) > limit {
		raw = raw[:limit]
	}

	messages := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		message, ok := entry.(map[string]any)
		if !ok {
			return nil, &SMSError{msg: "query response has a malformed Messages entry"}
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// RescheduleMessage moves an unsent message to a new scheduled time.
// sendTime accepts any format [ParseTime] accepts.
func (c *Client) RescheduleMessage(ctx context.Context, messageID, sendTime string) (map[string]any, error) {
	normalized, err := ParseTime(sendTime, false)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/%s/messages/%s", apiVersion, messageID)
	return c.do(ctx, http.MethodPut, path, map[string]any{"Time": normalized}, nil)
}

// CancelMessage cancels a scheduled single-recipient message. The
// request fails if the message has already been sent.
func (c *Client) CancelMessage(ctx context.Context, messageID string) (map[string]any, error) {
	path := fmt.Sprintf("/%s/messages/%s", apiVersion, messageID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// GetBatch retrieves the details of a batch campaign by its
// gateway-issued ID.
func (c *Client) GetBatch(ctx context.Context, batchID string) (map[string]any, error) {
	path := fmt.Sprintf("/%s/batches/%s", apiVersion, batchID)
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

// CancelBatch cancels a scheduled batch campaign. The request fails if
// the batch has already been sent.
func (c *Client) CancelBatch(ctx context.Context, batchID string) (map[string]any, error) {
	path := fmt.Sprintf("/%s/batches/%s", apiVersion, batchID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
