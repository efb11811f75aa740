package function

import (
	"github.com/valyala/fasthttp"
)

// FastQuery adapts fasthttp query arguments to QueryArgs.
type FastQuery struct {
	Args *fasthttp.Args
}

// First returns the first value of key.
func (q FastQuery) First(key string) (string, bool) {
	if q.Args == nil || !q.Args.Has(key) {
		return "", false
	}
	return string(q.Args.Peek(key)), true
}

// HandleFastHTTP is the fasthttp entry point for this function.
func (f *Function) HandleFastHTTP(ctx *fasthttp.RequestCtx) {
	body := f.Respond(FastQuery{Args: ctx.QueryArgs()})

	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.WriteString(body)
}
