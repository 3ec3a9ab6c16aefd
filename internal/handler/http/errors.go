// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-guard/internal/apperror"
)

// Client-facing messages of errors raised by the transport layer itself.
const (
	messageInvalidJSON = "invalid JSON body"
	messageInvalidGZip = "invalid gzip body"
)

// errRouteNotFound answers unknown paths and unregistered methods.
var errRouteNotFound = apperror.New(http.StatusNotFound, http.StatusText(http.StatusNotFound))
