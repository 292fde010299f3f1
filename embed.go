package website

import (
	"embed"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

// embeddedAssets contains the client script shipped with the site: site.js
// (mobile nav, featured carousel, locale switcher highlight).
//
//go:embed embedded/*
var embeddedAssets embed.FS

func handleEmbeddedAsset(c echo.Context) error {
	name := path.Base(c.Request().URL.Path)
	data, err := embeddedAssets.ReadFile("embedded/" + name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	contentType := "application/octet-stream"
	if strings.HasSuffix(name, ".js") {
		contentType = "text/javascript; charset=utf-8"
	}
	return c.Blob(http.StatusOK, contentType, data)
}
