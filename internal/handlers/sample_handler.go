package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gin-gonic/gin"

	"mybiglambda/internal/middleware"
	"mybiglambda/internal/services"
	"mybiglambda/pkg/lambda"
)

// SampleHandler serves the sample table for Lambda and HTTP callers
type SampleHandler struct {
	tableService    services.TableService
	greetingService services.GreetingService
}

// NewSampleHandler creates a new sample handler
func NewSampleHandler(tableService services.TableService, greetingService services.GreetingService) *SampleHandler {
	return &SampleHandler{
		tableService:    tableService,
		greetingService: greetingService,
	}
}

// HandleInvoke serves one invocation. The event is not inspected.
// Errors are returned to the runtime as-is.
func (h *SampleHandler) HandleInvoke(ctx context.Context, event lambda.Event) (*lambda.Response, error) {
	var requestID string
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}

	if _, err := h.greetingService.Greet(ctx, requestID); err != nil {
		return nil, err
	}

	table, err := h.tableService.SampleTable(ctx)
	if err != nil {
		return nil, err
	}

	body, err := h.tableService.EncodeBody(ctx, table)
	if err != nil {
		return nil, err
	}

	return &lambda.Response{
		StatusCode: http.StatusOK,
		Body:       body,
	}, nil
}

// GetSample runs an invocation for an HTTP request the way API Gateway would:
// the request becomes a proxy event and the envelope becomes the HTTP response.
func (h *SampleHandler) GetSample(c *gin.Context) {
	event, err := proxyEvent(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Message: err.Error(),
		})
		return
	}

	resp, ok := h.invoke(c, event)
	if !ok {
		return
	}
	c.Data(resp.StatusCode, "application/json", []byte(resp.Body))
}

// Invoke runs an invocation with the raw request body as the event and
// returns the envelope itself, as the Lambda runtime would see it
func (h *SampleHandler) Invoke(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error:   "Request too large",
				Message: fmt.Sprintf("Request body must not exceed %d bytes", tooLarge.Limit),
			})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if !json.Valid(raw) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: "event must be valid JSON",
		})
		return
	}

	resp, ok := h.invoke(c, lambda.Event(raw))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SampleHandler) invoke(c *gin.Context, event lambda.Event) (*lambda.Response, bool) {
	ctx := lambdacontext.NewContext(c.Request.Context(), &lambdacontext.LambdaContext{
		AwsRequestID: c.GetString(middleware.RequestIDKey),
	})

	resp, err := h.HandleInvoke(ctx, event)
	if err != nil {
		// ErrorHandler logs it and writes the 500
		_ = c.Error(err)
		c.Abort()
		return nil, false
	}

	return resp, true
}

// proxyEvent converts the request into an API Gateway proxy event payload
func proxyEvent(c *gin.Context) (lambda.Event, error) {
	headers := make(map[string]string, len(c.Request.Header))
	for k := range c.Request.Header {
		headers[k] = c.Request.Header.Get(k)
	}

	query := make(map[string]string)
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	req := events.APIGatewayProxyRequest{
		HTTPMethod:            c.Request.Method,
		Path:                  c.Request.URL.Path,
		Headers:               headers,
		QueryStringParameters: query,
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID: c.GetString(middleware.RequestIDKey),
			Stage:     "local",
		},
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode proxy event: %w", err)
	}
	return lambda.Event(raw), nil
}
