package warmtransfer

import (
	"context"
	"encoding/json"

	"github.com/asecurityteam/runhttp"
	"github.com/aws/aws-lambda-go/events"
)

const (
	requestTypePost = "post"
	requestTypeGet  = "get"

	statContactRequest = "connect.request"
	statContactFailure = "connect.request.failure"
)

type contactReceived struct {
	ContactID   string `logevent:"contact_id"`
	Channel     string `logevent:"channel"`
	Queue       string `logevent:"queue"`
	RequestType string `logevent:"request_type"`
	Message     string `logevent:"message,default=contact-received"`
}

type customDataMissing struct {
	ContactID string `logevent:"contact_id"`
	Message   string `logevent:"message,default=custom-data-missing"`
}

type contactFailed struct {
	ContactID string `logevent:"contact_id"`
	Reason    string `logevent:"reason"`
	Message   string `logevent:"message,default=contact-failed"`
}

// TransferResponse is the envelope returned to the contact flow. The
// flat events.ConnectResponse map cannot carry the nested body, so the
// function returns this type and lets the lambda SDK marshal it.
type TransferResponse struct {
	StatusCode int                    `json:"statusCode"`
	Body       map[string]interface{} `json:"body"`
}

// TransferHandler is the Lambda function invoked by Amazon Connect
// contact flows. It validates the flow parameters and hands the
// customer to the warm transfer API.
type TransferHandler struct {
	API    TransferAPI
	LogFn  LogFn
	StatFn StatFn
}

// NewTransferHandler constructs a TransferHandler bound to the given
// API client.
func NewTransferHandler(api TransferAPI) *TransferHandler {
	return &TransferHandler{
		API:    api,
		LogFn:  runhttp.LoggerFromContext,
		StatFn: runhttp.StatFromContext,
	}
}

// Handle processes one Amazon Connect event. The error result is
// always nil: failures are reported through the statusCode of the
// response so the contact flow can branch on them rather than hitting
// the generic Lambda error path.
func (h *TransferHandler) Handle(ctx context.Context, event events.ConnectEvent) (TransferResponse, error) {
	logger := h.LogFn(ctx)
	stat := h.StatFn(ctx)

	contact := event.Details.ContactData
	params := event.Details.Parameters
	requestType := params["requestType"]
	logger.Info(contactReceived{
		ContactID:   contact.ContactID,
		Channel:     contact.Channel,
		Queue:       contact.Queue.Name,
		RequestType: requestType,
	})

	body, err := h.process(ctx, event, requestType)
	if err != nil {
		logger.Error(contactFailed{ContactID: contact.ContactID, Reason: err.Error()})
		stat.Count(statContactFailure, 1, "type:"+errorTag(err))
		return failureResponse(err), nil
	}
	stat.Count(statContactRequest, 1, "request_type:"+requestType)
	body["parameters"] = params
	return TransferResponse{StatusCode: 200, Body: body}, nil
}

func (h *TransferHandler) process(ctx context.Context, event events.ConnectEvent, requestType string) (map[string]interface{}, error) {
	contact := event.Details.ContactData
	phone := contact.CustomerEndpoint.Address
	if phone == "" {
		return nil, ValidationError{Field: "CustomerEndpoint.Address", Reason: "missing phone number"}
	}
	if requestType == "" {
		return nil, ValidationError{Field: "requestType", Reason: "parameter is required"}
	}

	switch requestType {
	case requestTypePost:
		data, err := customDataParam(ctx, event.Details.Parameters, contact.ContactID, h.LogFn)
		if err != nil {
			return nil, err
		}
		apiResponse, err := h.API.Transfer(ctx, contact.Queue.Name, phone, data)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"api_response": apiResponse,
			"message":      "Successfully processed POST request",
		}, nil
	case requestTypeGet:
		apiResponse, err := h.API.Status(ctx, phone)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"api_response": apiResponse,
			"message":      "Successfully processed GET request",
		}, nil
	default:
		return nil, ValidationError{Field: "requestType", Reason: "must be post or get"}
	}
}

// customDataParam extracts the customData contact flow parameter.
// Contact flows deliver parameters as strings so the value is a JSON
// encoded object. A missing value is logged and treated as empty.
func customDataParam(ctx context.Context, params map[string]string, contactID string, logFn LogFn) (map[string]interface{}, error) {
	raw, ok := params["customData"]
	if !ok || raw == "" {
		logFn(ctx).Warn(customDataMissing{ContactID: contactID})
		return map[string]interface{}{}, nil
	}
	data := map[string]interface{}{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, ValidationError{Field: "customData", Reason: "not a JSON object"}
	}
	return data, nil
}

func failureResponse(err error) TransferResponse {
	statusCode := 500
	message := "Internal server error"
	switch err.(type) {
	case ValidationError, *APIError:
		statusCode = 400
		message = "Request validation or API error"
	}
	return TransferResponse{
		StatusCode: statusCode,
		Body: map[string]interface{}{
			"message": message,
			"error":   err.Error(),
		},
	}
}

func errorTag(err error) string {
	switch err.(type) {
	case ValidationError:
		return "validation"
	case *APIError:
		return "api"
	default:
		return "internal"
	}
}
