package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"studyplan/pkg/resource"
)

type ResourceCtrl struct{ ext *resource.Extractor }

func New(ext *resource.Extractor) *ResourceCtrl { return &ResourceCtrl{ext: ext} }

// Preview fetches a resource URL and returns its extracted title/text so
// the client can show what will be fed to the generator.
func (h *ResourceCtrl) Preview(c echo.Context) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}

	title, text, err := h.ext.Extract(body.URL)
	if err != nil {
		if errors.Is(err, resource.ErrNotAllowed) {
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"title": title, "text": text})
}
