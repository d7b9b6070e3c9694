package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// fiberClient routes provider client requests straight into a fiber app.
type fiberClient struct {
	app *fiber.App
}

func (f fiberClient) Do(req *http.Request) (*http.Response, error) {
	return f.app.Test(req, -1)
}
