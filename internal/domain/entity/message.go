package entity

import (
	"encoding/json"
	"fmt"
)

type Action string

const (
	ActionCaptureScreen  Action = "captureScreen"
	ActionColorPicked    Action = "colorPicked"
	ActionActivatePicker Action = "activatePicker"
)

// Endpoint names a message receiver.
type Endpoint string

const (
	EndpointBackground Endpoint = "background"
	EndpointPage       Endpoint = "page"
)

type Request struct {
	Action  Action          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Response struct {
	Success   bool   `json:"success"`
	ImageData string `json:"imageData,omitempty"`
	Error     string `json:"error,omitempty"`
}

type ActivatePayload struct {
	Format Format `json:"format"`
}

type ColorPickedPayload struct {
	Color     string `json:"color"`
	Formatted string `json:"formatted"`
}

func NewRequest(action Action, payload any) (Request, error) {
	req := Request{Action: action}
	if payload == nil {
		return req, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Request{}, fmt.Errorf("marshal %s payload: %w", action, err)
	}
	req.Payload = data
	return req, nil
}

// Decode unmarshals the request payload into v.
func (r Request) Decode(v any) error {
	if len(r.Payload) == 0 {
		return fmt.Errorf("%s: empty payload", r.Action)
	}
	if err := json.Unmarshal(r.Payload, v); err != nil {
		return fmt.Errorf("%s: decode payload: %w", r.Action, err)
	}
	return nil
}

func OK() Response {
	return Response{Success: true}
}

func Failure(err error) Response {
	return Response{Success: false, Error: err.Error()}
}
