package transportcatalogue

import (
	"encoding/json"
	"strconv"
	"strings"
)

// QueryError is a client error reported with status 400
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

func parseNonNegativeInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v < 0 {
		return 0, &QueryError{Msg: "Numeric parameter must be a non-negative integer."}
	}
	return v, nil
}

func requireParam(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &QueryError{Msg: "You must provide " + name + "."}
	}
	return value, nil
}

// parseRouteParams validates the from/to pair of a route query
func parseRouteParams(params map[string]string) (from, to string, err error) {
	if from, err = requireParam("from", params["from"]); err != nil {
		return "", "", err
	}
	if to, err = requireParam("to", params["to"]); err != nil {
		return "", "", err
	}
	return from, to, nil
}

func queryParams(values map[string][]string) map[string]string {
	params := map[string]string{}
	for k, v := range values {
		if len(v) > 0 {
			params[strings.ToLower(k)] = v[0]
		}
	}
	return params
}

type errorPayload struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func buildErrorPayload(msg, requestID string) []byte {
	b, _ := json.Marshal(errorPayload{Error: msg, RequestID: requestID})
	return b
}
