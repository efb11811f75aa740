package function

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestHandleFastHTTP(t *testing.T) {
	cases := map[string]string{
		"/?wait=500":     "waited for 500 milliseconds",
		"/?wait=10000":   "waited for 10000 milliseconds",
		"/?waitx=500":    InvalidInputBody,
		"/?wait=500x":    InvalidInputBody,
		"/?wait=5000000": InvalidInputBody,
	}

	for uri, body := range cases {
		f, _, _ := newTestFunction()

		var ctx fasthttp.RequestCtx
		ctx.Request.SetRequestURI(uri)
		f.HandleFastHTTP(&ctx)

		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), uri)
		require.Equal(t, body, string(ctx.Response.Body()), uri)
	}
}

func TestFastQuery_NilArgs(t *testing.T) {
	_, ok := FastQuery{}.First(WaitParam)
	require.False(t, ok)
}
