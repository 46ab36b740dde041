/*
Package main provides a toy example use of reply's http stack.
*/
package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/replykit/reply/app"
	"github.com/replykit/reply/http/req"
	"github.com/replykit/reply/http/resp"
	"github.com/replykit/reply/http/router"
	"github.com/replykit/reply/http/session"
)

type newGreeting struct {
	Name string `json:"name" validate:"required"`
}

func main() {
	a, err := app.New()
	if err != nil {
		panic(err)
	}

	parser := req.NewParser()

	// Depending on the path parameter, a different response kind answers
	// the same route.
	a.Handle(router.Route{Path: "/greetings/{id}", Method: http.MethodGet, Handler: func(r *http.Request) resp.Response {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			return resp.BadRequest("id must be a number")
		}

		switch id {
		case 0:
			return resp.NoContent()
		case 1:
			return resp.Redirect("/hello")
		default:
			return resp.Plain("Hello world!")
		}
	}})

	a.Handle(router.Route{Path: "/hello", Method: http.MethodGet, Handler: func(r *http.Request) resp.Response {
		return resp.JSON(map[string]string{"greeting": "hello"})
	}})

	// Parse and validate a JSON payload before deciding how to answer.
	a.Handle(router.Route{Path: "/greetings", Method: http.MethodPost, Handler: func(r *http.Request) resp.Response {
		var in newGreeting
		if err := parser.ParseBody(r.Body, &in); err != nil {
			var verrs req.ValidationErrors
			if errors.As(err, &verrs) {
				return verrs.Response()
			}

			return resp.BadRequest("")
		}

		return resp.WithFlash(
			session.Flash{Class: session.FlashSuccess, Msg: "Greeting for " + in.Name + " created."},
			resp.Created("/greetings/2"),
		)
	}})

	if err := a.Start(); err != nil {
		panic(err)
	}
}
