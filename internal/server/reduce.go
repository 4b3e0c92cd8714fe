package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"

	"github.com/katalvlaran/nanstat/nanops"
	"github.com/katalvlaran/nanstat/ndarray"
)

// ReduceRequest is the POST /v1/reduce body.
// Axis: absent → the reduction's default, null or "none" → whole array,
// integer → that axis. DDoF: absent → server default.
type ReduceRequest struct {
	Op    string          `json:"op"`
	Axis  json.RawMessage `json:"axis,omitempty"`
	DDoF  *int            `json:"ddof,omitempty"`
	Array *ndarray.Array  `json:"array"`
}

// ReduceResponse is the POST /v1/reduce success body.
type ReduceResponse struct {
	ID     string        `json:"id"`
	Op     string        `json:"op"`
	Axis   string        `json:"axis"`
	Result nanops.Result `json:"result"`
}

func (s *Server) handleReduce(c *echo.Context) error {
	req, err := s.decodeRequest(c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	op, err := nanops.ParseOp(req.Op)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "unknown_op", err.Error())
	}
	if req.Array == nil {
		return writeBadRequest(c, "array: required")
	}

	var opts []nanops.Option
	axisLabel := "default"
	if len(req.Axis) > 0 {
		axis, err := parseAxis(req.Axis)
		if err != nil {
			return writeBadRequest(c, fmt.Sprintf("axis: %v", err))
		}
		opts = append(opts, nanops.WithReduceAxis(axis))
		axisLabel = axis.String()
	}
	ddof := s.cfg.DefaultDDoF
	if req.DDoF != nil {
		ddof = *req.DDoF
	}
	if op.UsesDDoF() {
		opts = append(opts, nanops.WithDDoF(ddof))
	}

	res, err := nanops.Reduce(op, req.Array, opts...)
	if err != nil {
		s.log.Warn("reduction failed", "op", op.String(), "axis", axisLabel, "error", err)
		return writeReduceError(c, err)
	}

	resp := ReduceResponse{ID: s.newID(), Op: op.String(), Axis: axisLabel, Result: res}
	s.log.Debug("reduced", "id", resp.ID, "op", resp.Op, "axis", axisLabel, "shape", req.Array.Shape())
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) decodeRequest(body io.Reader) (ReduceRequest, error) {
	limit := s.cfg.MaxBodyBytes
	if limit <= 0 {
		limit = 32 << 20
	}
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return ReduceRequest{}, err
	}
	if int64(len(data)) > limit {
		return ReduceRequest{}, fmt.Errorf("request body exceeds %d bytes", limit)
	}
	var req ReduceRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return ReduceRequest{}, fmt.Errorf("invalid JSON: %w", err)
	}
	// a zero dimension lets a few bytes describe a large reduced output
	if req.Array != nil && int64(req.Array.Extent()) > limit {
		return ReduceRequest{}, fmt.Errorf("array: shape %v exceeds %d elements", req.Array.Shape(), limit)
	}
	return req, nil
}

// parseAxis accepts null, an integer, or an axis string ("none", "-1").
func parseAxis(raw json.RawMessage) (ndarray.Axis, error) {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return ndarray.WholeArray, nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ndarray.Axis{}, err
		}
		return ndarray.ParseAxis(s)
	}
	var i int
	if err := json.Unmarshal(raw, &i); err != nil {
		return ndarray.Axis{}, err
	}
	return ndarray.AxisOf(i), nil
}

func writeReduceError(c *echo.Context, err error) error {
	switch {
	case errors.Is(err, nanops.ErrInvalidAxis):
		return writeError(c, http.StatusBadRequest, "invalid_axis", err.Error())
	case errors.Is(err, nanops.ErrInvalidDDoF):
		return writeError(c, http.StatusBadRequest, "invalid_ddof", err.Error())
	case errors.Is(err, ndarray.ErrAllNaN), errors.Is(err, ndarray.ErrEmptyReduction):
		return writeError(c, http.StatusUnprocessableEntity, "reduction_error", err.Error())
	default:
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
}

// ErrorBody is the error envelope of every non-2xx response.
type ErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{"error": ErrorBody{Type: errType, Message: msg}})
}
