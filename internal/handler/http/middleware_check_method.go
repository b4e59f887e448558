// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/occupa-lo-studente/internal/app"
)

// routeNotFound is registered both as the NotFound and the MethodNotAllowed
// handler of the router, so a known path called with an unsupported method
// looks exactly like an unknown path.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, app.MsgRouteDoesntExist, http.StatusNotFound)
}
