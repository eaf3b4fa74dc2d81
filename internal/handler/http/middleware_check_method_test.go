// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Unsupported methods on known routes must look exactly like unknown routes.
func TestCheckHTTPMethod_HidesRoutes(t *testing.T) {
	router := newTestHandler(nil, nil, nil).Init()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "GET on POST-only route", method: http.MethodGet, path: "/user/signup"},
		{name: "DELETE on POST-only route", method: http.MethodDelete, path: "/user/signin"},
		{name: "PUT on verify-otp", method: http.MethodPut, path: "/user/verify-otp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_UnknownRoute(t *testing.T) {
	router := newTestHandler(nil, nil, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
