package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/api/middleware"
	"github.com/feral-file/ff-token-gate/internal/api/shared/constants"
	"github.com/feral-file/ff-token-gate/internal/api/shared/dto"
	"github.com/feral-file/ff-token-gate/internal/api/shared/executor"
	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/logger"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// TriggerRun executes a screening run synchronously
	// POST /api/v1/runs
	TriggerRun(c *gin.Context)

	// ListRuns retrieves runs newest first
	// GET /api/v1/runs?limit=<limit>&offset=<offset>
	ListRuns(c *gin.Context)

	// GetRun retrieves a single run
	// GET /api/v1/runs/:id
	GetRun(c *gin.Context)

	// GetRunSnapshots retrieves the profile snapshots of a run
	// GET /api/v1/runs/:id/snapshots
	GetRunSnapshots(c *gin.Context)

	// GetProfile retrieves a profile with wallets and its latest snapshot
	// GET /api/v1/profiles/:handle
	GetProfile(c *gin.Context)

	// GetProfileTrend retrieves the change of a profile total over a window
	// GET /api/v1/profiles/:handle/trend?days=<days>
	GetProfileTrend(c *gin.Context)

	// LinkWallet records a verified wallet link
	// POST /api/v1/links
	LinkWallet(c *gin.Context)

	// UnlinkWallet removes a wallet, authorized by the profile secret
	// DELETE /api/v1/profiles/:handle/wallets/:address
	UnlinkWallet(c *gin.Context)

	// RotateProfileSecret issues a new profile secret
	// POST /api/v1/profiles/:handle/secret
	RotateProfileSecret(c *gin.Context)

	// ListPools retrieves all liquidity pools
	// GET /api/v1/pools
	ListPools(c *gin.Context)

	// UpsertPool creates or replaces a liquidity pool
	// PUT /api/v1/pools
	UpsertPool(c *gin.Context)

	// GetSettings retrieves the operator settings
	// GET /api/v1/settings
	GetSettings(c *gin.Context)

	// UpdateSettings updates operator settings
	// PUT /api/v1/settings
	UpdateSettings(c *gin.Context)

	// CreateWebhookClient registers a webhook endpoint
	// POST /api/v1/webhooks/clients
	CreateWebhookClient(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

func (h *handler) TriggerRun(c *gin.Context) {
	var req dto.TriggerRunRequest
	// An empty body means a forced run
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	audit(c, "trigger_run", zap.Bool("force", req.ShouldForce()))

	result, err := h.executor.TriggerRun(c.Request.Context(), req.ShouldForce())
	if err != nil {
		respondError(c, err, "Failed to run screening")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) ListRuns(c *gin.Context) {
	params, err := ParseListRunsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	runs, err := h.executor.ListRuns(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list runs")
		return
	}

	c.JSON(http.StatusOK, runs)
}

func (h *handler) GetRun(c *gin.Context) {
	runID, ok := parseRunID(c)
	if !ok {
		return
	}

	run, err := h.executor.GetRun(c.Request.Context(), runID)
	if err != nil {
		respondError(c, err, "Failed to get run")
		return
	}
	if run == nil {
		respondNotFound(c, "Run not found")
		return
	}

	c.JSON(http.StatusOK, run)
}

func (h *handler) GetRunSnapshots(c *gin.Context) {
	runID, ok := parseRunID(c)
	if !ok {
		return
	}

	snapshots, err := h.executor.GetRunSnapshots(c.Request.Context(), runID)
	if err != nil {
		respondError(c, err, "Failed to get snapshots")
		return
	}
	if snapshots == nil {
		respondNotFound(c, "Run not found")
		return
	}

	c.JSON(http.StatusOK, snapshots)
}

func (h *handler) GetProfile(c *gin.Context) {
	handle, ok := parseHandle(c)
	if !ok {
		return
	}

	profile, err := h.executor.GetProfile(c.Request.Context(), handle)
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}
	if profile == nil {
		respondNotFound(c, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *handler) GetProfileTrend(c *gin.Context) {
	handle, ok := parseHandle(c)
	if !ok {
		return
	}

	params, err := ParseTrendQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	trend, err := h.executor.GetProfileTrend(c.Request.Context(), handle, params.Days)
	if err != nil {
		respondError(c, err, "Failed to get trend")
		return
	}
	if trend == nil {
		respondNotFound(c, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, trend)
}

func (h *handler) LinkWallet(c *gin.Context) {
	var req dto.LinkWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid link")
		return
	}

	response, err := h.executor.LinkWallet(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to link wallet")
		return
	}

	status := http.StatusCreated
	if response.AlreadyLinked {
		status = http.StatusOK
	}
	c.JSON(status, response)
}

func (h *handler) UnlinkWallet(c *gin.Context) {
	handle, ok := parseHandle(c)
	if !ok {
		return
	}

	address := c.Param("address")
	if !domain.ValidAddress(address) {
		respondBadRequest(c, "Invalid address")
		return
	}

	err := h.executor.UnlinkWallet(c.Request.Context(), handle, address, c.GetHeader(constants.PROFILE_SECRET_HEADER))
	if err != nil {
		respondError(c, err, "Failed to unlink wallet")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) RotateProfileSecret(c *gin.Context) {
	handle, ok := parseHandle(c)
	if !ok {
		return
	}

	response, err := h.executor.RotateProfileSecret(c.Request.Context(), handle)
	if err != nil {
		respondError(c, err, "Failed to rotate secret")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListPools(c *gin.Context) {
	pools, err := h.executor.ListPools(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list pools")
		return
	}

	c.JSON(http.StatusOK, pools)
}

func (h *handler) UpsertPool(c *gin.Context) {
	var req dto.UpsertPoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid pool")
		return
	}

	audit(c, "upsert_pool", zap.String("pool", req.Address))

	pool, err := h.executor.UpsertPool(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to upsert pool")
		return
	}

	c.JSON(http.StatusOK, pool)
}

func (h *handler) GetSettings(c *gin.Context) {
	settings, err := h.executor.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *handler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid settings")
		return
	}

	keys := make([]string, 0, len(req.Settings))
	for k := range req.Settings {
		keys = append(keys, k)
	}
	audit(c, "update_settings", zap.Strings("keys", keys))

	settings, err := h.executor.UpdateSettings(c.Request.Context(), req.Settings)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *handler) CreateWebhookClient(c *gin.Context) {
	var req dto.CreateWebhookClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(h.debug); err != nil {
		respondError(c, err, "Invalid webhook client")
		return
	}

	response, err := h.executor.CreateWebhookClient(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create webhook client")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-token-gate-api",
	})
}

func parseRunID(c *gin.Context) (uuid.UUID, bool) {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid run ID", err.Error())
		return uuid.Nil, false
	}
	return runID, true
}

func parseHandle(c *gin.Context) (string, bool) {
	handle := domain.NormalizeHandle(c.Param("handle"))
	if !domain.ValidHandle(handle) {
		respondBadRequest(c, "Invalid handle")
		return "", false
	}
	return handle, true
}

// audit logs an operator mutation with the authenticated caller
func audit(c *gin.Context, action string, fields ...zap.Field) {
	caller := "anonymous"
	if p, ok := middleware.PrincipalFrom(c); ok {
		caller = p.Scheme
		if p.Subject != "" {
			caller = p.Subject
		}
	}
	fields = append(fields, zap.String("action", action), zap.String("caller", caller))
	logger.InfoCtx(c.Request.Context(), "Operator action", fields...)
}
