package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/randalmurphal/culinary/export"
	"github.com/randalmurphal/culinary/formatter"
	"github.com/randalmurphal/culinary/generator"
	"github.com/randalmurphal/culinary/menu"
	"github.com/randalmurphal/culinary/parser"
	"github.com/randalmurphal/culinary/provider"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// QR code size limits in pixels.
const (
	defaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024
)

// Client-facing failure messages. Details stay in the log.
const (
	msgGenerateFailed = "could not generate menu"
	msgParseFailed    = "could not parse menu"
	msgDisplayFailed  = "could not display menu"
	msgExportFailed   = "could not export menu"
	msgQRCodeFailed   = "could not create QR code"
	msgInvalidBody    = "invalid request body"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps generation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, generator.ErrMissingCuisine),
		errors.Is(err, generator.ErrMissingDiets),
		errors.Is(err, generator.ErrInvalidItemCount):
		return http.StatusBadRequest
	case errors.Is(err, provider.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, provider.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, provider.ErrCredentialsNotFound):
		return http.StatusServiceUnavailable
	case errors.Is(err, provider.ErrUnavailable),
		errors.Is(err, provider.ErrEmptyResponse),
		errors.Is(err, provider.ErrInvalidRequest),
		errors.Is(err, generator.ErrEmptyName):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var opts generator.Options
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&opts); err != nil {
		slog.Debug("invalid generate request", slog.Any("error", err))
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if opts.ItemsPerSection == 0 {
		opts.ItemsPerSection = s.itemsPerSection
	}

	res, err := s.generator.Load().Generate(r.Context(), opts)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusBadRequest {
			// Input validation errors name the offending field.
			writeError(w, status, err.Error())
			return
		}
		slog.Error("menu generation failed",
			slog.String("cuisine", opts.Cuisine),
			slog.Int("status", status),
			slog.Any("error", err))
		writeError(w, status, msgGenerateFailed)
		return
	}

	s.session.Store(res)
	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) last(w http.ResponseWriter, _ *http.Request) {
	res, ok := s.session.Last()
	if !ok {
		writeError(w, http.StatusNotFound, export.ErrNoResult.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) clear(w http.ResponseWriter, _ *http.Request) {
	s.session.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) download(w http.ResponseWriter, r *http.Request) {
	res, ok := s.session.Last()
	if !ok {
		writeError(w, http.StatusNotFound, export.ErrNoResult.Error())
		return
	}

	doc, err := export.Export(res, r.URL.Query().Get("format"))
	switch {
	case errors.Is(err, export.ErrUnknownFormat):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, export.ErrNoResult):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		slog.Error("export failed", slog.String("id", res.ID), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, msgExportFailed)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		slog.Warn("failed to write download", slog.Any("error", err))
	}
}

func (s *Server) qrcode(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.session.Last(); !ok {
		writeError(w, http.StatusNotFound, export.ErrNoResult.Error())
		return
	}

	format, _, err := export.ForFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	size := defaultQRSize
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < minQRSize || n > maxQRSize {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("size must be between %d and %d", minQRSize, maxQRSize))
			return
		}
		size = n
	}

	target := s.baseURL(r) + "/api/menus/last/download?" + url.Values{"format": {string(format)}}.Encode()
	png, err := qrcode.Encode(target, qrcode.Medium, size)
	if err != nil {
		slog.Error("qr code generation failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, msgQRCodeFailed)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		slog.Warn("failed to write qr code", slog.Any("error", err))
	}
}

// baseURL returns the configured public URL or one derived from the request.
func (s *Server) baseURL(r *http.Request) string {
	if s.publicURL != "" {
		return strings.TrimRight(s.publicURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + r.Host
}

func (s *Server) parse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		slog.Debug("read parse body", slog.Any("error", err))
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	text := string(body)

	q := r.URL.Query()
	if normalizeText, _ := strconv.ParseBool(q.Get("normalize")); normalizeText {
		if text, err = s.normalizer.Normalize(text); err != nil {
			slog.Warn("normalize failed", slog.Any("error", err))
			writeError(w, http.StatusBadRequest, msgParseFailed)
			return
		}
	}

	p := s.parser.Load()
	switch mode := q.Get("mode"); mode {
	case "", "lines":
		m, err := p.ParseLines(text)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, parser.ErrEmptyInput) {
				status = http.StatusBadRequest
			} else {
				slog.Error("parse failed", slog.Any("error", err))
			}
			writeError(w, status, msgParseFailed)
			return
		}
		writeJSON(w, http.StatusOK, m)
	case "blocks":
		sections := p.ParseBlocks(text)
		if sections == nil {
			sections = []menu.RawSection{}
		}
		writeJSON(w, http.StatusOK, sections)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown parse mode %q", mode))
	}
}

func (s *Server) format(w http.ResponseWriter, r *http.Request) {
	m := menu.New()
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(m); err != nil {
		slog.Debug("invalid menu body", slog.Any("error", err))
		writeError(w, http.StatusBadRequest, msgDisplayFailed)
		return
	}

	style := formatter.Style(r.URL.Query().Get("style"))
	contentType := "text/plain; charset=utf-8"
	if style == formatter.StyleDisplay {
		contentType = "text/markdown; charset=utf-8"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, formatter.New(formatter.WithStyle(style)).Format(m)); err != nil {
		slog.Warn("failed to write formatted menu", slog.Any("error", err))
	}
}

func (s *Server) schema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, menu.Schema())
}
