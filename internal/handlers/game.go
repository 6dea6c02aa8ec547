package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pixel_bistro/internal/models"
	"pixel_bistro/internal/network"
	"pixel_bistro/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusStarted = "started"
	statusResumed = "resumed"
	statusHosting = "hosting"
	statusJoined  = "joined"

	errNoSave         = "no saved game"
	errHostFailed     = "failed to open a room"
	errJoinFailed     = "failed to reach host"
	errUnknownAction  = "unknown action type"
	errRankingFailed  = "failed to load ranking"
	errInvalidLimit   = "invalid 'limit'; use a positive integer"
	errUnknownRoom    = "unknown room"
	errRoomFull       = "room already has a guest"
	errPeerNotEnabled = "co-op is not enabled"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...any) {
	if h.log != nil && err != nil {
		fields := append([]any{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

func (h *Handler) logRunStart(c *gin.Context, mode string, kv ...any) {
	if h.log == nil {
		return
	}
	fields := append([]any{"mode", mode, "chef_id", c.GetInt(chefIDKey), "chef", service.ChefFromContext(c.Request.Context())}, kv...)
	h.log.Infow("run_started", fields...)
}

// Respond with a status and the snapshot it produced.
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string, snap models.Snapshot, extra gin.H) {
	resp := gin.H{"status": status, "state": snap}
	for k, v := range extra {
		resp[k] = v
	}
	c.JSON(http.StatusOK, resp)
}

type joinRequest struct {
	Room string `json:"room" binding:"required"`
}

// ActionRequest is one player input.
type ActionRequest struct {
	// One of CLICK_STATION, SELECT_RECIPE, KEY_PRESS, SERVE, CLEAN, START_DAY, NEXT_DAY_CONFIRM
	Type string `json:"type" binding:"required" example:"KEY_PRESS"`
	// Target station for CLICK_STATION and SERVE
	StationID int `json:"stationId,omitempty" example:"0"`
	// Recipe for SELECT_RECIPE
	RecipeID string `json:"recipeId,omitempty" example:"salada"`
	// Ingredient key for KEY_PRESS
	Key string `json:"key,omitempty" example:"P"`
}

func (r ActionRequest) action() (models.Action, bool) {
	a := models.Action{
		Type:      models.ActionType(strings.ToUpper(strings.TrimSpace(r.Type))),
		StationID: r.StationID,
		RecipeID:  r.RecipeID,
		Key:       models.IngredientKey(strings.ToUpper(r.Key)),
	}
	return a, a.Type.Valid()
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Start a new solo game
// @Description  Discards any existing save and starts day 1.
// @Tags         game
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/game/solo [post]
// @Security     BearerAuth
func (h *Handler) newSolo(c *gin.Context) {
	snap := h.services.NewSolo(c.Request.Context())
	h.logRunStart(c, "solo")
	h.respondWithStatusAndState(c, statusStarted, snap, nil)
}

// @Summary      Continue the saved solo game
// @Tags         game
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/game/continue [post]
// @Security     BearerAuth
func (h *Handler) continueGame(c *gin.Context) {
	snap, ok := h.services.Continue(c.Request.Context())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": errNoSave})
		return
	}
	h.respondWithStatusAndState(c, statusResumed, snap, nil)
}

// @Summary      Check for a solo save
// @Tags         game
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/game/save [get]
// @Security     BearerAuth
func (h *Handler) hasSave(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"has_save": h.services.HasSave(c.Request.Context())})
}

// @Summary      Host a co-op game
// @Description  Opens a room; the game starts when a guest connects to /peer/{room}.
// @Tags         game
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, room"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/game/host [post]
// @Security     BearerAuth
func (h *Handler) hostGame(c *gin.Context) {
	room, err := h.services.Host(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errHostFailed, "game_host_failed", err)
		return
	}
	h.logRunStart(c, "host", "room", room)
	c.JSON(http.StatusOK, gin.H{"status": statusHosting, "room": room})
}

// @Summary      Join a co-op game
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      joinRequest  true  "Room code"
// @Success      200   {object}  map[string]interface{}  "status, room"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/v1/game/join [post]
// @Security     BearerAuth
func (h *Handler) joinGame(c *gin.Context) {
	var req joinRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	room := strings.ToUpper(strings.TrimSpace(req.Room))
	if err := h.services.Join(c.Request.Context(), room); err != nil {
		h.logAndJSONError(c, http.StatusBadGateway, errJoinFailed, "game_join_failed", err, "room", room)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusJoined, "room": room})
}

// @Summary      Send a player action
// @Description  Invalid actions for the current phase are accepted and ignored.
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      ActionRequest  true  "Action"
// @Success      200   {object}  models.Snapshot
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/game/actions [post]
// @Security     BearerAuth
func (h *Handler) emitAction(c *gin.Context) {
	var req ActionRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	a, ok := req.action()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errUnknownAction})
		return
	}
	c.JSON(http.StatusOK, h.services.Emit(c.Request.Context(), a))
}

// @Summary      Get the kitchen snapshot
// @Tags         game
// @Produce      json
// @Success      200  {object}  models.Snapshot
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/game/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Snapshot())
}

// @Summary      List recipes
// @Tags         game
// @Produce      json
// @Success      200  {array}   models.Recipe
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/game/menu [get]
// @Security     BearerAuth
func (h *Handler) getMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Menu())
}

// @Summary      Get the end-of-day review
// @Tags         game
// @Produce      json
// @Success      200  {object}  models.DailyReview
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/game/review [get]
// @Security     BearerAuth
func (h *Handler) getReview(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Review())
}

// @Summary      Get session status
// @Tags         game
// @Produce      json
// @Success      200  {object}  service.SessionStatus
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/game/status [get]
// @Security     BearerAuth
func (h *Handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Status())
}

// @Summary      Toggle sound cues
// @Tags         game
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/game/mute [post]
// @Security     BearerAuth
func (h *Handler) toggleMute(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"muted": h.services.ToggleMute()})
}

// @Summary      Leaderboard
// @Tags         ranking
// @Produce      json
// @Param        limit  query     int  false  "Number of entries (default 6, max 50)"
// @Success      200    {object}  map[string]interface{}  "count, entries"
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/ranking [get]
// @Security     BearerAuth
func (h *Handler) getRanking(c *gin.Context) {
	limit := 0
	if qs := c.Query("limit"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidLimit})
			return
		}
		limit = v
	}
	entries, err := h.services.Top(c.Request.Context(), limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRankingFailed, "ranking_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

// peerConnect upgrades the guest's connection for a hosted room.
func (h *Handler) peerConnect(c *gin.Context) {
	if h.services.Peer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errPeerNotEnabled})
		return
	}
	room := c.Param("room")
	err := h.services.Peer.Accept(c.Writer, c.Request, room)
	switch {
	case err == nil:
	case errors.Is(err, network.ErrUnknownRoom):
		c.JSON(http.StatusNotFound, gin.H{"error": errUnknownRoom})
	case errors.Is(err, network.ErrRoomFull):
		c.JSON(http.StatusConflict, gin.H{"error": errRoomFull})
	default:
		// The upgrader has already answered the request.
		if h.log != nil {
			h.log.Infow("peer_upgrade_failed", "room", room, "err", err)
		}
	}
}
