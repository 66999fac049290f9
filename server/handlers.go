package main

import (
	"errors"
	"io"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meikuraledutech/wfgraph"
	"github.com/meikuraledutech/wfgraph/internal/config"
	"github.com/meikuraledutech/wfgraph/xmldoc"
)

var (
	errNoFile       = errors.New("no file provided")
	errNoFileName   = errors.New("no file selected")
	errInvalidDepth = errors.New("max_depth must be a positive integer")
)

// ErrorResponse is returned by every endpoint on failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SummaryResponse is returned by /api/workflow/parse.
type SummaryResponse struct {
	Success        bool            `json:"success"`
	RequestID      string          `json:"requestId"`
	Summary        wfgraph.Summary `json:"summary"`
	Version        wfgraph.Version `json:"version"`
	ActivityCount  int             `json:"activityCount"`
	StageCount     int             `json:"stageCount"`
	ConditionCount int             `json:"conditionCount"`
	FileName       string          `json:"fileName"`
}

// DetailsResponse is returned by /api/workflow/details.
type DetailsResponse struct {
	Success     bool                            `json:"success"`
	Version     wfgraph.Version                 `json:"version"`
	Activities  map[string]wfgraph.Activity     `json:"activities"`
	Stages      map[string]wfgraph.Stage        `json:"stages"`
	Conditions  map[string]wfgraph.Condition    `json:"conditions"`
	Transitions map[string][]wfgraph.Transition `json:"transitions"`
}

// ActivitiesResponse is returned by /api/workflow/activities.
type ActivitiesResponse struct {
	Success    bool                        `json:"success"`
	Activities map[string]wfgraph.Activity `json:"activities"`
	// Order lists activity ids in document order.
	Order []string `json:"order"`
	Count int      `json:"count"`
}

// RenderResponse is returned by /api/workflow/path and /api/workflow/visualize.
type RenderResponse struct {
	Success bool           `json:"success"`
	Lines   []wfgraph.Line `json:"lines"`
	Text    string         `json:"text"`
}

type handler struct {
	parser   *xmldoc.Parser
	logger   *zap.Logger
	maxDepth int
}

func newApp(cfg *config.Config, logger *zap.Logger) *fiber.App {
	h := &handler{
		parser:   xmldoc.NewParser(logger),
		logger:   logger,
		maxDepth: cfg.Traversal.MaxDepth,
	}

	app := fiber.New(fiber.Config{
		AppName:      "wfgraph",
		BodyLimit:    cfg.Server.MaxUploadBytes,
		ErrorHandler: errorHandler(logger),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		AllowHeaders: []string{fiber.HeaderContentType},
	}))

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ── Workflow uploads ──────────────────────────────────────────────
	api := app.Group("/api/workflow")
	api.Post("/parse", h.parse)
	api.Post("/details", h.details)
	api.Post("/activities", h.activities)
	api.Post("/path", h.path)
	api.Post("/visualize", h.visualize)

	return app
}

// errorHandler puts framework failures in the same envelope as handler failures.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
		logger.Debug("Request rejected",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(err))
		return c.Status(status).JSON(ErrorResponse{Success: false, Error: err.Error()})
	}
}

// upload parses the multipart "file" field of the request.
func (h *handler) upload(c fiber.Ctx) (*wfgraph.Workflow, string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", errNoFile
	}
	if fh.Filename == "" {
		return nil, "", errNoFileName
	}
	name := filepath.Base(fh.Filename)

	f, err := fh.Open()
	if err != nil {
		return nil, name, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, name, err
	}

	w, err := h.parser.Parse(name, data)
	return w, name, err
}

func (h *handler) fail(c fiber.Ctx, requestID string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errNoFile), errors.Is(err, errNoFileName),
		errors.Is(err, errInvalidDepth), errors.Is(err, wfgraph.ErrDecode):
		status = fiber.StatusBadRequest
	}
	h.logger.Warn("Workflow request failed",
		zap.String("request_id", requestID),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Error(err))
	return c.Status(status).JSON(ErrorResponse{Success: false, Error: err.Error()})
}

func (h *handler) parse(c fiber.Ctx) error {
	requestID := uuid.NewString()
	w, name, err := h.upload(c)
	if err != nil {
		return h.fail(c, requestID, err)
	}
	h.logger.Info("Parsed workflow upload",
		zap.String("request_id", requestID),
		zap.String("file", name))

	snap := w.Snapshot()
	return c.JSON(SummaryResponse{
		Success:        true,
		RequestID:      requestID,
		Summary:        snap.Summary,
		Version:        snap.Version,
		ActivityCount:  w.Activities.Len(),
		StageCount:     w.Stages.Len(),
		ConditionCount: w.Conditions.Len(),
		FileName:       name,
	})
}

func (h *handler) details(c fiber.Ctx) error {
	w, _, err := h.upload(c)
	if err != nil {
		return h.fail(c, uuid.NewString(), err)
	}
	snap := w.Snapshot()
	return c.JSON(DetailsResponse{
		Success:     true,
		Version:     snap.Version,
		Activities:  snap.Activities,
		Stages:      snap.Stages,
		Conditions:  snap.Conditions,
		Transitions: snap.Transitions,
	})
}

func (h *handler) activities(c fiber.Ctx) error {
	w, _, err := h.upload(c)
	if err != nil {
		return h.fail(c, uuid.NewString(), err)
	}
	return c.JSON(ActivitiesResponse{
		Success:    true,
		Activities: w.Activities.Map(),
		Order:      w.Activities.Keys(),
		Count:      w.Activities.Len(),
	})
}

func (h *handler) path(c fiber.Ctx) error {
	maxDepth := h.maxDepth
	if raw := c.Query("max_depth"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return h.fail(c, uuid.NewString(), errInvalidDepth)
		}
		maxDepth = n
	}
	w, _, err := h.upload(c)
	if err != nil {
		return h.fail(c, uuid.NewString(), err)
	}
	return c.JSON(renderResponse(slices.Collect(w.Paths(maxDepth))))
}

func (h *handler) visualize(c fiber.Ctx) error {
	w, _, err := h.upload(c)
	if err != nil {
		return h.fail(c, uuid.NewString(), err)
	}
	return c.JSON(renderResponse(slices.Collect(w.Diagram())))
}

func renderResponse(lines []wfgraph.Line) RenderResponse {
	if lines == nil {
		lines = []wfgraph.Line{}
	}
	return RenderResponse{
		Success: true,
		Lines:   lines,
		Text:    wfgraph.Render(slices.Values(lines)),
	}
}
