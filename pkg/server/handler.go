/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/ovpn-tools/ovpncheck/pkg/errors"
	"github.com/ovpn-tools/ovpncheck/pkg/serializer"
)

// handleValidate handles POST /v1/validate. The request body is raw
// configuration text; the response is the JSON validation report. The
// HTTP status is 200 whether the configuration passed or failed - the
// verdict lives in the report's summary.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, r, http.StatusMethodNotAllowed,
			errors.ErrCodeMethodNotAllowed, "only POST is supported", false)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, s.config.MaxBodyBytes+1))
	if err != nil {
		WriteError(w, r, http.StatusBadRequest,
			errors.ErrCodeInvalidRequest, "failed to read request body", false)
		return
	}
	if int64(len(body)) > s.config.MaxBodyBytes {
		WriteError(w, r, http.StatusRequestEntityTooLarge,
			errors.ErrCodeInvalidRequest, "configuration body too large", false)
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		WriteError(w, r, http.StatusBadRequest,
			errors.ErrCodeInvalidRequest, "request body is empty", false)
		return
	}

	report, err := s.scanner.ScanReader(r.Context(), bytes.NewReader(body))
	if err != nil {
		slog.Error("validation failed", "error", err)
		WriteError(w, r, http.StatusInternalServerError,
			errors.ErrCodeInternal, "validation failed", true)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, report)
}
