// Package server serves expression evaluation over HTTP.
package server

import (
	"net/http"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/logger"
	"github.com/kataras/iris/v12/middleware/recover"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
)

// maxBody limits request bodies. Expressions are short.
const maxBody = 64 << 10

// EvalRequest is the body of POST /eval.
type EvalRequest struct {
	Expr string `json:"expr"`
}

// EvalResponse is the body of a successful POST /eval.
type EvalResponse struct {
	// Value is the numeric result.
	Value float64 `json:"value"`
	// Result is the result formatted for display.
	Result string `json:"result"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	// Kind classifies evaluation errors, e.g. "division by zero".
	Kind string `json:"kind,omitempty"`
}

// NamesResponse is the body of GET /funcs.
type NamesResponse struct {
	Functions []string `json:"functions"`
	Constants []string `json:"constants"`
}

type handler struct {
	cfg  *config.Config
	app  *iris.Application
	opts []calc.ParseOption
}

// New creates the application. Call its Run method to serve.
func New(cfg *config.Config) *iris.Application {
	app := iris.New()
	app.Logger().SetLevel(cfg.Server.LogLevel)
	app.Use(recover.New())
	app.Use(logger.New())

	h := &handler{cfg: cfg, app: app, opts: cfg.Options()}
	app.Post("/eval", h.eval)
	app.Get("/funcs", h.funcs)
	return app
}

func (h *handler) eval(ctx iris.Context) {
	ctx.SetMaxRequestBodySize(maxBody)
	var req EvalRequest
	if err := ctx.ReadJSON(&req); err != nil {
		h.app.Logger().Debugf("bad request body: %v", err)
		ctx.StatusCode(http.StatusBadRequest)
		ctx.JSON(ErrorResponse{Error: "request body must be JSON like {\"expr\": \"1+1\"}"})
		return
	}
	r, err := calc.EvalString(req.Expr, h.opts...)
	if err != nil {
		kind := calc.KindOf(err)
		h.app.Logger().Debugf("eval %q: %v (%v)", req.Expr, err, kind)
		if kind == calc.KindOther {
			ctx.StatusCode(http.StatusInternalServerError)
		} else {
			ctx.StatusCode(http.StatusUnprocessableEntity)
		}
		ctx.JSON(ErrorResponse{Error: h.cfg.Error(err), Kind: kind.String()})
		return
	}
	ctx.JSON(EvalResponse{Value: r, Result: h.cfg.Result(r)})
}

func (h *handler) funcs(ctx iris.Context) {
	ctx.JSON(NamesResponse{Functions: calc.Functions(), Constants: calc.Constants()})
}
