package lambda

import "encoding/json"

// Response is the HTTP-style envelope returned to the Lambda runtime.
// It serializes to exactly {"statusCode":...,"body":...}.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Event is an invocation payload. Its contents are accepted but not interpreted.
type Event = json.RawMessage
