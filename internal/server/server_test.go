package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/kataras/iris/v12/httptest"

	"github.com/zephyrtronium/calc/internal/config"
)

func TestEval(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.LogLevel = "disable"
	e := httptest.New(t, New(cfg))

	cases := []struct {
		expr   string
		value  float64
		result string
	}{
		{"sqrt(16)+3^2", 13, "13"},
		{"4/2", 2, "2"},
		{"7/2", 3.5, "3.5"},
		{"-2^2", -4, "-4"},
		{"2**10", 1024, "1024"},
	}
	for _, c := range cases {
		obj := e.POST("/eval").WithJSON(EvalRequest{Expr: c.expr}).
			Expect().Status(http.StatusOK).JSON().Object()
		obj.ValueEqual("value", c.value)
		obj.ValueEqual("result", c.result)
	}
}

func TestEvalErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.LogLevel = "disable"
	e := httptest.New(t, New(cfg))

	cases := []struct {
		expr string
		kind string
		msg  string
	}{
		{"5/0", "division by zero", "division by zero in /"},
		{"sqrt(-1)", "domain error", "-1 outside domain of sqrt"},
		{"__import__('os')", "syntax error", "invalid token at column 12: '"},
		{"os", "unknown name", `undefined name: "os"`},
		{"eval(1)", "function not allowed", `function "eval" not allowed`},
		{"sqrt", "not callable", `function "sqrt" used without a call`},
		{"sqrt(1, 2)", "arity mismatch", "cannot call sqrt with 2 arguments"},
		{"10^400", "overflow", "result of ^ out of range"},
		{strings.Repeat("(", 1000), "too complex", "257: expression nested deeper than 256"},
		{"", "syntax error", "1: no expression"},
	}
	for _, c := range cases {
		obj := e.POST("/eval").WithJSON(EvalRequest{Expr: c.expr}).
			Expect().Status(http.StatusUnprocessableEntity).JSON().Object()
		obj.ValueEqual("kind", c.kind)
		obj.ValueEqual("error", c.msg)
	}
}

func TestEvalPlain(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.LogLevel = "disable"
	cfg.Output.Plain = true
	cfg.Output.Format = "%.2f"
	e := httptest.New(t, New(cfg))

	e.POST("/eval").WithJSON(EvalRequest{Expr: "1/0"}).
		Expect().Status(http.StatusUnprocessableEntity).JSON().Object().
		ValueEqual("error", "Error").
		ValueEqual("kind", "division by zero")
	e.POST("/eval").WithJSON(EvalRequest{Expr: "1/4"}).
		Expect().Status(http.StatusOK).JSON().Object().
		ValueEqual("result", "0.25")
}

func TestEvalDepthConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.LogLevel = "disable"
	cfg.Eval.MaxDepth = 4
	e := httptest.New(t, New(cfg))

	e.POST("/eval").WithJSON(EvalRequest{Expr: "((1))"}).
		Expect().Status(http.StatusOK)
	e.POST("/eval").WithJSON(EvalRequest{Expr: "((((1))))"}).
		Expect().Status(http.StatusUnprocessableEntity).JSON().Object().
		ValueEqual("kind", "too complex")
}

func TestBadRequest(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.LogLevel = "disable"
	e := httptest.New(t, New(cfg))

	e.POST("/eval").WithText("{").Expect().Status(http.StatusBadRequest)
	e.POST("/eval").WithText("").Expect().Status(http.StatusBadRequest)
	e.POST("/eval").WithText(`{"expr": 1}`).Expect().Status(http.StatusBadRequest)
}

func TestFuncs(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.LogLevel = "disable"
	e := httptest.New(t, New(cfg))

	obj := e.GET("/funcs").Expect().Status(http.StatusOK).JSON().Object()
	obj.Value("functions").Array().Contains("sqrt", "factorial", "ln")
	obj.Value("functions").Array().NotContains("eval", "pi")
	obj.Value("constants").Array().Equal([]string{"e", "pi"})
}
