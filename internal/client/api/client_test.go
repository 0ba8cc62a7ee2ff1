package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSession implements Session with a settable token and a teardown
// counter.
type fakeSession struct {
	mu      sync.Mutex
	token   string
	cleared int
}

func (f *fakeSession) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeSession) ClearAuth(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.cleared++
	return nil
}

func (f *fakeSession) setToken(t string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = t
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeSession) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := &fakeSession{}
	return New(srv.URL, sess, nil), sess
}

func TestClient_InjectsBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"coins":1,"totalTopup":2,"vipLevel":0}`))
	})
	sess.setToken("T1")

	_, err := c.Wallet(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer T1", gotAuth)
	require.Equal(t, "application/json", gotContentType)
}

func TestClient_OmitsHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"rows":[]}`))
	})

	_, err := c.Market(context.Background(), "")
	require.NoError(t, err)
	require.False(t, hasAuth, "unexpected Authorization header %q", gotAuth)
}

func TestClient_TokenReadAtSendTime(t *testing.T) {
	var seen []string
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	})

	sess.setToken("T1")
	_, _ = c.Wallet(context.Background())
	sess.setToken("T2")
	_, _ = c.Wallet(context.Background())

	require.Equal(t, []string{"Bearer T1", "Bearer T2"}, seen)
}

func TestClient_401TearsDownFromAnyEndpoint(t *testing.T) {
	calls := []func(c *Client, ctx context.Context) error{
		func(c *Client, ctx context.Context) error { _, err := c.Wallet(ctx); return err },
		func(c *Client, ctx context.Context) error { _, err := c.Inventory(ctx); return err },
		func(c *Client, ctx context.Context) error { _, err := c.AdminUsers(ctx, AdminUserFilter{}); return err },
		func(c *Client, ctx context.Context) error { _, err := c.OpenChest(ctx); return err },
	}

	for _, call := range calls {
		c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		sess.setToken("expired")

		err := call(c, context.Background())
		require.ErrorIs(t, err, ErrUnauthorized)
		require.Equal(t, 1, sess.cleared)
		require.Empty(t, sess.Token())
	}
}

func TestClient_ErrorBodyFieldFallbacks(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"insufficient coins"}`, "insufficient coins"},
		{"message field", `{"message":"not enough balance"}`, "not enough balance"},
		{"both prefers error", `{"error":"a","message":"b"}`, "a"},
		{"garbage body", `<html>oops</html>`, "HTTP 400"},
		{"empty body", ``, "HTTP 400"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			})

			_, err := c.Wallet(context.Background())
			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			require.Equal(t, http.StatusBadRequest, reqErr.Status)
			require.Equal(t, tc.want, reqErr.Message)
		})
	}
}

func TestClient_NoContentAndEmptyBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	msg, err := c.ChangePassword(context.Background(), "old", "new")
	require.NoError(t, err)
	require.Empty(t, msg)

	c, _ = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// 200 with no body must not fail JSON decoding either.
	})
	msg, err = c.ChangePassword(context.Background(), "old", "new")
	require.NoError(t, err)
	require.Empty(t, msg)
}

func TestClient_DecodesSuccessBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		w.Write([]byte(`{"token":"T1","user":{"id":1,"username":"alice","role":"user","coins":5}}`))
	})

	res, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, "T1", res.Token)
	require.Equal(t, "alice", res.User.Username)
	require.Equal(t, int64(5), res.User.Coins)
}

func TestClient_MalformedSuccessBodyPropagates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":`))
	})
	_, err := c.Login(context.Background(), "alice", "pw")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}

func TestClient_TransportErrorWrapsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, &fakeSession{}, nil)
	_, err := c.Wallet(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_MultipartUpload(t *testing.T) {
	var gotContentType, gotFile string
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFile = header.Filename
		w.Write([]byte(`{"url":"/uploads/a.png"}`))
	})
	sess.setToken("T1")

	url, err := c.UploadAvatar(context.Background(), "a.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	require.Equal(t, "/uploads/a.png", url)
	require.Equal(t, "a.png", gotFile)
	require.True(t, strings.HasPrefix(gotContentType, "multipart/form-data"),
		"content type %q should be multipart, not JSON", gotContentType)
}

func TestClient_QueryParameters(t *testing.T) {
	var gotQuery string
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"rows":[]}`))
	})
	sess.setToken("T1")

	vip := 3
	_, err := c.AdminUsers(context.Background(), AdminUserFilter{VipLevel: &vip, Username: "ali"})
	require.NoError(t, err)
	require.Contains(t, gotQuery, "vipLevel=3")
	require.Contains(t, gotQuery, "username=ali")
}

func TestClient_RawDownload(t *testing.T) {
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/kyc-file/7/front", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	})
	sess.setToken("T1")

	data, contentType, err := c.AdminKycImage(context.Background(), 7, KycFront)
	require.NoError(t, err)
	require.Equal(t, "image/png", contentType)
	require.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, data)
}

func TestRequestError_Error(t *testing.T) {
	err := &RequestError{Status: 402, Message: "insufficient coins"}
	require.Contains(t, err.Error(), "insufficient coins")
	require.Contains(t, err.Error(), "402")
	require.False(t, errors.Is(err, ErrUnauthorized))
}
