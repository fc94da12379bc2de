package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Tanay2920003/sitelink/internal/application/commands"
	"github.com/Tanay2920003/sitelink/internal/domain"
	"github.com/Tanay2920003/sitelink/internal/ports"
)

// maxBodyBytes caps request bodies on the editing endpoints
const maxBodyBytes = 1 << 20

// Handler serves the directory and editing endpoints
type Handler struct {
	repo   ports.CategoryRepository
	logger *slog.Logger
}

// NewHandler creates a new Handler
func NewHandler(repo ports.CategoryRepository, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// CategoriesResponse is the aggregated directory
type CategoriesResponse struct {
	Categories []domain.Category     `json:"categories"`
	Conflicts  []domain.SlugConflict `json:"conflicts"`
	Skipped    []string              `json:"skipped"`
}

// FileResponse is a raw content file
type FileResponse struct {
	Filename string          `json:"filename"`
	Content  json.RawMessage `json:"content"`
}

// SavedResponse describes a successful write
type SavedResponse struct {
	Filename string          `json:"filename"`
	Category domain.Category `json:"category"`
}

// CreateFileRequest is the body of POST /api/v1/files
type CreateFileRequest struct {
	Filename string          `json:"filename"`
	Content  json.RawMessage `json:"content"`
}

// ValidateResponse is returned for a document that passes the schema
type ValidateResponse struct {
	Valid    bool            `json:"valid"`
	Category domain.Category `json:"category"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ok(w, map[string]string{"status": "ok"})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	loaded, err := commands.NewLoadAllCommand(h.repo, LoggerFrom(r.Context())).Execute(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	conflicts := loaded.Conflicts
	if conflicts == nil {
		conflicts = []domain.SlugConflict{}
	}
	ok(w, CategoriesResponse{
		Categories: loaded.Categories,
		Conflicts:  conflicts,
		Skipped:    loaded.Skipped,
	})
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	loaded, err := commands.NewLoadAllCommand(h.repo, LoggerFrom(r.Context())).Execute(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	cat, found := loaded.BySlug(chi.URLParam(r, "slug"))
	if !found {
		fail(w, http.StatusNotFound, CodeNotFound, "category not found")
		return
	}
	ok(w, cat)
}

func (h *Handler) searchCommand(r *http.Request) *commands.SearchCommand {
	q := r.URL.Query()
	cmd := commands.NewSearchCommand(h.repo, LoggerFrom(r.Context()), q.Get("q"))
	cmd.IncludeFeatured, _ = strconv.ParseBool(q.Get("featured"))
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		cmd.Limit = limit
	}
	return cmd
}

func (h *Handler) searchResources(w http.ResponseWriter, r *http.Request) {
	result, err := h.searchCommand(r).Execute(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	ok(w, result)
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	result, err := h.searchCommand(r).Execute(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	ok(w, result.Suggestions)
}

func (h *Handler) featured(w http.ResponseWriter, r *http.Request) {
	ok(w, domain.FeaturedResources())
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	files, err := commands.NewListFilesCommand(h.repo).Execute(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	ok(w, files)
}

func (h *Handler) readFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	content, err := h.repo.ReadFile(filename)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !json.Valid(content) {
		fail(w, http.StatusUnprocessableEntity, CodeInvalidJSON, domain.ErrInvalidJSON.Error())
		return
	}
	ok(w, FileResponse{Filename: filename, Content: content})
}

func (h *Handler) writeFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	body, err := readBody(w, r)
	if err != nil {
		fail(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	result, err := commands.NewWriteCategoryCommand(h.repo, filename, body).Execute(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	ok(w, SavedResponse{Filename: result.Filename, Category: result.Category})
}

func (h *Handler) createFile(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		fail(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	var req CreateFileRequest
	if err := json.Unmarshal(body, &req); err != nil {
		fail(w, http.StatusBadRequest, CodeInvalidJSON, domain.ErrInvalidJSON.Error())
		return
	}
	if req.Filename == "" || len(req.Content) == 0 {
		fail(w, http.StatusBadRequest, CodeBadRequest, "filename and content are required")
		return
	}

	filename, err := h.repo.CreateFile(req.Filename, req.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}

	cat, err := domain.ParseCategory(req.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}
	created(w, SavedResponse{Filename: filename, Category: cat})
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		fail(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	cat, err := h.repo.Validate(body)
	if err != nil {
		respondError(w, r, err)
		return
	}
	ok(w, ValidateResponse{Valid: true, Category: cat})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errors.New("request body too large")
		}
		return nil, errors.New("failed to read request body")
	}
	return body, nil
}
