package main

import (
	"bytes"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>tab5sim</title></head>
<body style="background:#111;color:#ddd;font-family:sans-serif">
<img id="frame" src="/frame" style="image-rendering:pixelated">
<p>
<button onclick="go(-1)">&larr;</button>
<button onclick="go(1)">&rarr;</button>
</p>
<script>
let page = 0;
function go(d) {
  page = Math.max(0, page + d);
  fetch("/target", {method: "POST", headers: {"Content-Type": "application/json"},
    body: JSON.stringify({page: page})})
    .then(r => r.json()).then(j => { if (j.page !== undefined) page = j.page; });
}
setInterval(() => {
  document.getElementById("frame").src = "/frame?t=" + Date.now();
}, 100);
</script>
</body>
</html>
`

type targetRequest struct {
	Page *int `json:"page"`
}

// newServer returns the HTTP front end of the simulator. Page requests are
// forwarded to cmds without blocking.
func newServer(d *Display, pages int, cmds chan<- command) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html")
		return c.SendString(indexHTML)
	})

	app.Get("/frame", func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := d.WritePNG(&buf); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to encode frame")
		}
		c.Set("Content-Type", "image/png")
		c.Set("Content-Length", strconv.Itoa(buf.Len()))
		return c.Send(buf.Bytes())
	})

	app.Post("/target", func(c *fiber.Ctx) error {
		var req targetRequest
		if err := c.BodyParser(&req); err != nil || req.Page == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		page := *req.Page
		if page < 0 || page >= pages {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "page out of range"})
		}
		select {
		case cmds <- command{page: page}:
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "busy"})
		}
		return c.JSON(fiber.Map{"page": page})
	})

	return app
}
