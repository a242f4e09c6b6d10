package hmiddleware

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/heroku/sslify"
	"github.com/heroku/sslify/testing/testlog"
)

func okHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			t.Error(err)
		}
	}
}

func TestPreRequestLogger(t *testing.T) {
	logger, hook := testlog.New()
	handler := okHandler(t)

	r := chi.NewRouter()
	r.Use(PreRequestLogger(logger))
	r.Get("/", handler)

	t.Run("using with stdlib", func(t *testing.T) {
		runPreRequestLoggerTest(t, PreRequestLogger(logger)(handler), hook)
	})

	t.Run("using with chi", func(t *testing.T) {
		runPreRequestLoggerTest(t, r, hook)
	})
}

func TestPostRequestLoggerDoesNotDoubleWrapTheResponseWriter(t *testing.T) {
	logger, hook := testlog.New()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww, ok := w.(middleware.WrapResponseWriter)
		if !ok {
			t.Error("wanted the responseWriter to be a WrapResponseWriter")
			return
		}

		if _, ok := ww.Unwrap().(middleware.WrapResponseWriter); ok {
			t.Error("the inner response writer should just be the vanilla response writer")
		}

		okHandler(t)(w, r)
	})

	h := PostRequestLogger(logger)(PreRequestLogger(logger)(handler))
	runPostRequestLoggerTest(t, h, hook)
}

func TestPostRequestLogger(t *testing.T) {
	logger, hook := testlog.New()
	handler := okHandler(t)

	r := chi.NewRouter()
	r.Use(PostRequestLogger(logger))
	r.Get("/", handler)

	t.Run("using with stdlib", func(t *testing.T) {
		runPostRequestLoggerTest(t, PostRequestLogger(logger)(handler), hook)
	})

	t.Run("using with chi", func(t *testing.T) {
		runPostRequestLoggerTest(t, r, hook)
	})
}

func TestPostRequestLoggerRecordsRedirects(t *testing.T) {
	logger, hook := testlog.New()

	e := sslify.New(sslify.DefaultConfig())
	h := RequestID(PostRequestLogger(logger)(e.Middleware(okHandler(t))))

	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest("GET", "/login", nil))

	if rw.Code != http.StatusFound {
		t.Fatalf("response code was %d, wanted: %d", rw.Code, http.StatusFound)
	}

	hook.CheckAllContained(t,
		"at=finish",
		"status=302",
		"secure=false",
		"location=\"https://example.com/login\"",
	)
	hook.CheckNotContained(t, "request_id= ")
}

func runPreRequestLoggerTest(t testing.TB, h http.Handler, hook *testlog.Hook) {
	defer hook.Reset()

	s := httptest.NewServer(h)
	defer s.Close()

	req, err := http.NewRequest("GET", s.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("X-Forwarded-Proto", "https")

	rsp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer rsp.Body.Close()

	hook.CheckAllContained(t,
		// check only for the existence of these fields
		"host=",
		"request_id=",
		"remote_addr=",
		"user_agent=",

		// check exact values on these fields
		"method=GET",
		"path=\"/\"",
		"secure=false",
		"forwarded_proto=https",
		"at=start",
	)

	hook.CheckNotContained(t,
		"status=",
		"bytes=",
		"service=",
	)
}

func runPostRequestLoggerTest(t testing.TB, h http.Handler, hook *testlog.Hook) {
	defer hook.Reset()

	s := httptest.NewServer(h)
	defer s.Close()

	rsp, err := http.Get(s.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		t.Fatalf("StatusCode = %v, want %v", rsp.StatusCode, http.StatusOK)
	}

	if data, _ := ioutil.ReadAll(rsp.Body); string(data) != "ok" {
		t.Fatalf("Body = %v, want %v", string(data), "ok")
	}

	hook.CheckAllContained(t,
		// check only for the existence of these fields
		"host=",
		"request_id=",
		"remote_addr=",
		"service=",
		"user_agent=",

		// check exact values on these fields
		"method=GET",
		"path=\"/\"",
		"at=finish",
		"status=200",
		"bytes=2",
	)
}

func TestPostRequestLoggerScrubsSecrets(t *testing.T) {
	logger, hook := testlog.New()

	e := sslify.New(sslify.DefaultConfig())
	h := PostRequestLogger(logger)(e.Middleware(okHandler(t)))

	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest("GET", "/cb?token=hunter2", nil))

	if got := rw.Header().Get("Location"); got != "https://example.com/cb?token=hunter2" {
		t.Fatalf("got Location %q, the redirect itself must keep the query", got)
	}
	hook.CheckAllContained(t, "status=302", "SCRUBBED")
	hook.CheckNotContained(t, "hunter2")
}
