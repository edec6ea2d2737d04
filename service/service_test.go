package service

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shaih/go-polyrecon/casefile"
	"github.com/shaih/go-polyrecon/primitives/linalg"
	"github.com/shaih/go-polyrecon/primitives/shamir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, s *Server, url, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func decodeReport(t *testing.T, w *httptest.ResponseRecorder, format casefile.Format) *casefile.Report {
	r, err := casefile.DecodeReport(w.Body, format)
	require.NoError(t, err)
	return r
}

func TestHealth(t *testing.T) {
	s := New(shamir.DefaultOptions())
	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestReconstruct(t *testing.T) {
	s := New(shamir.DefaultOptions())
	body := `{"n": 4, "k": 3, "points": [
		{"base": 10, "value": "3"},
		{"base": 10, "value": "6"},
		{"base": 10, "value": "11"},
		{"base": 10, "value": "17"}
	]}`

	w := post(t, s, "/v1/reconstruct?name=curve", contentTypeJSON, []byte(body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeJSON, w.Header().Get("Content-Type"))

	r := decodeReport(t, w, casefile.FormatJSON)
	assert.Equal(t, "curve", r.Name)
	assert.Equal(t, "2", r.Secret)
	assert.True(t, r.Checked)
	assert.Equal(t, []int{4}, r.Invalid)
	assert.False(t, r.Failed())
}

func TestReconstructMsgpack(t *testing.T) {
	s := New(shamir.DefaultOptions())
	tc := &shamir.TestCase{N: 2, K: 2, Shares: []shamir.Share{
		{Base: 16, Digits: "a"},
		{Base: 16, Digits: "f"},
	}}
	var buf bytes.Buffer
	require.NoError(t, casefile.Encode(&buf, tc, casefile.FormatMsgpack))

	w := post(t, s, "/v1/reconstruct", contentTypeMsgpack, buf.Bytes())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeMsgpack, w.Header().Get("Content-Type"))

	r := decodeReport(t, w, casefile.FormatMsgpack)
	assert.Equal(t, "5", r.Secret)
	assert.False(t, r.Checked)

	// media type parameters do not change the format
	w = post(t, s, "/v1/reconstruct", contentTypeMsgpack+"; charset=binary", buf.Bytes())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeMsgpack, w.Header().Get("Content-Type"))
	assert.Equal(t, "5", decodeReport(t, w, casefile.FormatMsgpack).Secret)
}

func TestReconstructErrors(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", `{"n": 3`, http.StatusBadRequest},
		{"missing field", `{"n": 1, "points": []}`, http.StatusBadRequest},
		{"k>n", `{"n": 1, "k": 2, "points": [{"base": 10, "value": "1"}]}`, http.StatusBadRequest},
		{"bad digit", `{"n": 1, "k": 1, "points": [{"base": 2, "value": "2"}]}`, http.StatusBadRequest},
		{"bad base", `{"n": 1, "k": 1, "points": [{"base": 40, "value": "2"}]}`, http.StatusBadRequest},
		{"too many", fmt.Sprintf(`{"n": 11, "k": 1, "points": [%s]}`,
			strings.TrimSuffix(strings.Repeat(`{"base": 10, "value": "1"},`, 11), ",")), http.StatusBadRequest},
		{"huge keyed n", `{"keys": {"n": 2000000000, "k": 1}}`, http.StatusBadRequest},
	}

	s := New(shamir.DefaultOptions())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := post(t, s, "/v1/reconstruct", contentTypeJSON, []byte(tc.body))
			assert.Equal(t, tc.status, w.Code)
			r := decodeReport(t, w, casefile.FormatJSON)
			assert.True(t, r.Failed())
			assert.Empty(t, r.Secret)
		})
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusOK, statusOf(nil))
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(fmt.Errorf("x: %w", linalg.ErrSingular)))
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(shamir.ErrRange))
	assert.Equal(t, http.StatusBadRequest, statusOf(shamir.ErrDimension))
	assert.Equal(t, http.StatusInternalServerError, statusOf(fmt.Errorf("other")))
}

func TestMethodNotAllowed(t *testing.T) {
	s := New(shamir.DefaultOptions())
	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/reconstruct", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestListenAndServe(t *testing.T) {
	s := New(shamir.DefaultOptions())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe(ctx, "127.0.0.1:0")
	}()
	cancel()
	err := <-done
	assert.Error(t, err)

	// the server also works behind httptest
	ts := httptest.NewServer(s)
	defer ts.Close()
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(b))
}
