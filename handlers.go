package transportcatalogue

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transport-catalogue/processor"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
)

const maxStatBody = 10 << 20

func (s *Server) handleBus(w http.ResponseWriter, r *http.Request) {
	s.answer(w, r, request.StatRecord{Type: request.StatBus, Name: chi.URLParam(r, "name")})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	s.answer(w, r, request.StatRecord{Type: request.StatStop, Name: chi.URLParam(r, "name")})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRouteParams(queryParams(r.URL.Query()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.answer(w, r, request.StatRecord{Type: request.StatRoute, From: from, To: to})
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	svg, err := s.engine.Processor.Map()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = io.WriteString(w, svg)
}

// handleStat answers a batch of stat requests posted as {"stat_requests": [...]}
func (s *Server) handleStat(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxStatBody))
	if err != nil {
		s.writeError(w, r, &QueryError{Msg: "Request body too large or unreadable."})
		return
	}
	doc, err := request.Decode(data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	stats, err := doc.StatRequests()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	responses, err := s.engine.Processor.ProcessAll(stats)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	buf, err := formatter.NewResponseBuilder("").BuildJSON(responses)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}

// answer serves one query through the response cache; not-found answers
// are sent with status 404 and are not cached
func (s *Server) answer(w http.ResponseWriter, r *http.Request, rec request.StatRecord) {
	id, err := parseNonNegativeInt(queryParams(r.URL.Query())["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec.ID = id
	buf, err := s.cache.GetOrBuild(func() ([]byte, error) {
		res, err := s.engine.Processor.Process(rec)
		if err != nil {
			return nil, err
		}
		if _, ok := res.(formatter.ErrorResponse); ok {
			return nil, catalogue.ErrNotFound
		}
		return formatter.NewResponseBuilder("").BuildOne(res)
	}, string(rec.Type), strconv.FormatInt(id, 10), rec.Name, rec.From, rec.To)

	w.Header().Set("Content-Type", "application/json")
	if errors.Is(err, catalogue.ErrNotFound) {
		body, _ := formatter.NewResponseBuilder("").BuildOne(formatter.NotFound(id))
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(body)
		return
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	_, _ = w.Write(buf)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var qe *QueryError
	switch {
	case errors.As(err, &qe), errors.Is(err, request.ErrMalformed):
		status = http.StatusBadRequest
	case errors.Is(err, processor.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buildErrorPayload(err.Error(), requestIDFrom(r.Context())))
}
