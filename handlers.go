package blogconf

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handlePreview(c echo.Context) error {
	return Render(c, PreviewPage(s.Config))
}

func (s *Server) handleConfigJSON(c echo.Context) error {
	return s.writeConfig(c, FormatJSON, echo.MIMEApplicationJSONCharsetUTF8)
}

func (s *Server) handleConfigYAML(c echo.Context) error {
	return s.writeConfig(c, FormatYAML, "application/yaml; charset=utf-8")
}

func (s *Server) writeConfig(c echo.Context, format Format, contentType string) error {
	data, err := Marshal(s.Config, format)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, contentType, data)
}

func (s *Server) handleLinks(c echo.Context) error {
	return c.JSON(http.StatusOK, nonNilLinks(s.Config.Links))
}

func (s *Server) handleSocial(c echo.Context) error {
	return c.JSON(http.StatusOK, nonNilLinks(s.Config.SocialLinks))
}

type feedResponse struct {
	Feed
	URL string `json:"url"`
}

func (s *Server) handleFeeds(c echo.Context) error {
	feeds := s.Config.Feeds()
	out := make([]feedResponse, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, feedResponse{Feed: f, URL: ResolveURL(s.Config.SiteURL, f.Path)})
	}
	return c.JSON(http.StatusOK, out)
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	he, ok := err.(*echo.HTTPError)
	if ok {
		code = he.Code
	}
	if code == http.StatusNotFound {
		_ = RenderStatus(c, code, NotFoundPage(s.Config, c.Request().URL.Path))
		return
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	s.Echo.DefaultHTTPErrorHandler(err, c)
}

func nonNilLinks(links []Link) []Link {
	if links == nil {
		return []Link{}
	}
	return links
}
