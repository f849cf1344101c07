package server_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/psanzceste/flight-delay-api/internal/server/testutils"
)

func ExampleServer_PredictHandler() {
	srv, _ := testutils.NewTestServer(&testutils.StubClassifier{P: 0.75})
	router := srv.Router()

	body := `{"flight_id":"IB123","distance":1200,"bad_weather":true}`
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	fmt.Println(w.Code)
	// Output: 200
}

func ExampleServer_SimulateErrorHandler() {
	srv, _ := testutils.NewTestServer(&testutils.StubClassifier{P: 0.75})
	router := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/simulate-error", strings.NewReader(`{"raise_error":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	fmt.Println(w.Code)
	// Output: 418
}
