package web

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/icondeck"
)

// iconResponse is the wire shape of a single icon.
type iconResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	SVG      string `json:"svg"`
	Path     string `json:"path"`
	RawURL   string `json:"rawUrl"`
	Embed    string `json:"embed"`
}

// iconsResponse is the wire shape of the icon listing.
type iconsResponse struct {
	Icons []iconResponse `json:"icons"`
	Count int            `json:"count"`
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		s.error(w, r, icondeck.Errorf(icondeck.EINTERNAL, "Gallery page unavailable."))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleIcons(w http.ResponseWriter, r *http.Request) {
	filter := icondeck.Filter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	icons := icondeck.FilterIcons(s.state.Icons(), filter)

	resp := iconsResponse{Icons: make([]iconResponse, 0, len(icons)), Count: len(icons)}
	for _, icon := range icons {
		rawURL := s.repo.RawURL(icon.Path)
		resp.Icons = append(resp.Icons, iconResponse{
			Name:     icon.Name,
			Category: icon.Category,
			SVG:      icon.SVG,
			Path:     icon.Path,
			RawURL:   rawURL,
			Embed:    icondeck.EmbedSnippet(icon, rawURL),
		})
	}

	s.json(w, r, http.StatusOK, resp)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.json(w, r, http.StatusOK, map[string][]string{
		"categories": icondeck.Categories(s.state.Icons()),
	})
}

func (s *Server) handleIndexDownload(w http.ResponseWriter, r *http.Request) {
	idx := s.state.Index()
	if idx == nil {
		s.error(w, r, icondeck.Errorf(icondeck.ENOTFOUND, "No index available yet. Refresh first."))
		return
	}

	data, err := icondeck.EncodeIndex(idx)
	if err != nil {
		s.error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+icondeck.IndexFileName+`"`)
	w.Write(data)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if !s.state.BeginRefresh() {
		s.error(w, r, icondeck.Errorf(icondeck.ECONFLICT, "A refresh is already running."))
		return
	}
	defer s.state.EndRefresh()

	icons, idx, err := s.refresh(r.Context())
	if err != nil {
		s.error(w, r, err)
		return
	}

	s.state.Swap(icons, idx)
	s.json(w, r, http.StatusOK, map[string]any{
		"count": len(icons),
	})
}

// json writes a JSON response body with the given status.
func (s *Server) json(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", "path", r.URL.Path, "err", err)
	}
}

// error writes an application error as a JSON response. Internal errors are
// logged and masked.
func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	code := icondeck.ErrorCode(err)
	if code == icondeck.EINTERNAL {
		s.logger.Error("internal error", "path", r.URL.Path, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFromCode(code))
	json.NewEncoder(w).Encode(map[string]string{"error": icondeck.ErrorMessage(err)})
}

// statusFromCode maps application error codes to HTTP status codes.
func statusFromCode(code string) int {
	switch code {
	case icondeck.EINVALID, icondeck.ENOTCONFIGURED:
		return http.StatusBadRequest
	case icondeck.ENOTFOUND:
		return http.StatusNotFound
	case icondeck.ECONFLICT:
		return http.StatusConflict
	case icondeck.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
