package rest

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/KirkDiggler/mixology/internal/ledger"
	"github.com/KirkDiggler/mixology/internal/models"
	"github.com/KirkDiggler/mixology/internal/services/bar"
	"github.com/KirkDiggler/mixology/internal/services/search"
	"github.com/gin-gonic/gin"
)

// networkErrorMessage is shown whenever the recipe source cannot be reached
const networkErrorMessage = "Failed to fetch cocktails. Please try again."

// Config holds the handler's dependencies
type Config struct {
	BarService    bar.Service
	SearchService search.Service
}

// Handler serves the JSON API
type Handler struct {
	barService    bar.Service
	searchService search.Service
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.BarService == nil {
		return nil, errors.New("bar service cannot be nil")
	}
	if cfg.SearchService == nil {
		return nil, errors.New("search service cannot be nil")
	}

	return &Handler{
		barService:    cfg.BarService,
		searchService: cfg.SearchService,
	}, nil
}

// RegisterRoutes registers the API routes on rg
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cocktails", h.SearchCocktails)
	rg.GET("/suggestions", h.Suggest)

	patrons := rg.Group("/patrons")
	{
		patrons.GET("", h.ListPatrons)
		patrons.POST("", h.CreatePatron)
		patrons.GET("/:id", h.GetPatron)
		patrons.PUT("/:id", h.UpdatePatron)
		patrons.DELETE("/:id", h.RemovePatron)
		patrons.POST("/:id/drinks", h.AddDrink)
	}

	rg.POST("/actions/:id/resolve", h.ResolveAction)
	rg.GET("/stats", h.GetStatistics)
	rg.GET("/theme", h.GetTheme)
	rg.POST("/theme/toggle", h.ToggleTheme)
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Mixology API is running",
	})
}

// SearchCocktails handles GET /cocktails?s=
func (h *Handler) SearchCocktails(c *gin.Context) {
	output, err := h.searchService.Search(c.Request.Context(), &search.SearchInput{
		Query: c.Query("s"),
	})
	if err != nil {
		log.Printf("Error searching cocktails: %v", err)
		// The result list is cleared rather than left stale
		c.JSON(http.StatusBadGateway, CocktailsResponse{
			Cocktails: []*models.Cocktail{},
			Error:     networkErrorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, CocktailsResponse{Cocktails: output.Cocktails})
}

// Suggest handles GET /suggestions?q=&session=
func (h *Handler) Suggest(c *gin.Context) {
	session := c.Query("session")
	if session == "" {
		session = c.ClientIP()
	}

	output, err := h.searchService.Suggest(c.Request.Context(), &search.SuggestInput{
		SessionID: session,
		Query:     c.Query("q"),
	})
	if err != nil {
		if errors.Is(err, search.ErrSuperseded) {
			c.JSON(http.StatusOK, SuggestionsResponse{
				Query:      strings.TrimSpace(c.Query("q")),
				Names:      []string{},
				Superseded: true,
			})
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuggestionsResponse{
		Seq:   output.Suggestions.Seq,
		Query: output.Suggestions.Query,
		Names: output.Suggestions.Names,
	})
}

// ListPatrons handles GET /patrons
func (h *Handler) ListPatrons(c *gin.Context) {
	output, err := h.barService.ListPatrons(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PatronsResponse{Patrons: output.Patrons})
}

// CreatePatron handles POST /patrons
func (h *Handler) CreatePatron(c *gin.Context) {
	var req PatronRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBadRequest(c, "Invalid request body")
		return
	}

	output, err := h.barService.AddPatron(c.Request.Context(), &bar.AddPatronInput{
		Name:     req.Name,
		BodyMass: req.BodyMass,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.save(c)
	c.JSON(http.StatusCreated, PatronResponse{Patron: output.Patron})
}

// GetPatron handles GET /patrons/:id
func (h *Handler) GetPatron(c *gin.Context) {
	output, err := h.barService.GetPatron(c.Request.Context(), &bar.GetPatronInput{
		PatronID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Status)
}

// UpdatePatron handles PUT /patrons/:id
func (h *Handler) UpdatePatron(c *gin.Context) {
	var req PatronRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBadRequest(c, "Invalid request body")
		return
	}

	output, err := h.barService.EditPatron(c.Request.Context(), &bar.EditPatronInput{
		PatronID: c.Param("id"),
		Name:     req.Name,
		BodyMass: req.BodyMass,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.save(c)
	c.JSON(http.StatusOK, PatronResponse{Patron: output.Patron})
}

// RemovePatron handles DELETE /patrons/:id. The patron stays until the returned action is accepted.
func (h *Handler) RemovePatron(c *gin.Context) {
	output, err := h.barService.RequestRemovePatron(c.Request.Context(), &bar.RequestRemovePatronInput{
		PatronID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, RemovalResponse{Action: newActionResponse(output.Action)})
}

// AddDrink handles POST /patrons/:id/drinks
func (h *Handler) AddDrink(c *gin.Context) {
	var req DrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBadRequest(c, "Invalid request body")
		return
	}

	ctx := c.Request.Context()

	cocktail := req.Cocktail
	if cocktail == nil {
		if strings.TrimSpace(req.CocktailName) == "" {
			h.writeBadRequest(c, "cocktail or cocktailName is required")
			return
		}
		found, err := h.searchService.FindCocktail(ctx, &search.FindCocktailInput{Name: req.CocktailName})
		if err != nil {
			h.writeError(c, err)
			return
		}
		cocktail = found.Cocktail
	}

	output, err := h.barService.AddDrink(ctx, &bar.AddDrinkInput{
		PatronID: c.Param("id"),
		Cocktail: cocktail,
		Quantity: parseQuantity(req.Quantity),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.save(c)
	c.JSON(http.StatusCreated, DrinkResponse{
		Status: output.Status,
		Drink:  output.Drink,
		Action: newActionResponse(output.Action),
	})
}

// ResolveAction handles POST /actions/:id/resolve
func (h *Handler) ResolveAction(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBadRequest(c, "Invalid request body")
		return
	}

	output, err := h.barService.ResolveAction(c.Request.Context(), &bar.ResolveActionInput{
		ActionID: c.Param("id"),
		Accept:   req.Accept,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if req.Accept && output.Resolved.OnAccept == models.ActionRemovePatron {
		h.save(c)
	}

	c.JSON(http.StatusOK, ResolveResponse{
		Resolved: newActionResponse(output.Resolved),
		FollowUp: newActionResponse(output.FollowUp),
	})
}

// GetStatistics handles GET /stats
func (h *Handler) GetStatistics(c *gin.Context) {
	output, err := h.barService.GetStatistics(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Statistics)
}

// GetTheme handles GET /theme
func (h *Handler) GetTheme(c *gin.Context) {
	output, err := h.barService.GetTheme(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Theme: output.Theme})
}

// ToggleTheme handles POST /theme/toggle
func (h *Handler) ToggleTheme(c *gin.Context) {
	output, err := h.barService.ToggleTheme(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.save(c)
	c.JSON(http.StatusOK, ThemeResponse{Theme: output.Theme})
}

// save persists state after a mutation; a failed save does not undo the mutation
func (h *Handler) save(c *gin.Context) {
	if err := h.barService.Save(c.Request.Context()); err != nil {
		log.Printf("Error saving state: %v", err)
	}
}

func (h *Handler) writeBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  "error",
		Code:    "INVALID_INPUT",
		Message: message,
	})
}

// writeError maps service errors to status codes
func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	message := err.Error()

	switch {
	case errors.Is(err, ledger.ErrDuplicateName):
		status, code = http.StatusConflict, "DUPLICATE_NAME"
	case errors.Is(err, ledger.ErrMissingFields),
		errors.Is(err, ledger.ErrInvalidBodyMass),
		errors.Is(err, bar.ErrNilCocktail):
		status, code = http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, ledger.ErrPatronNotFound),
		errors.Is(err, bar.ErrActionNotFound),
		errors.Is(err, search.ErrCocktailNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, search.ErrNetwork):
		status, code, message = http.StatusBadGateway, "NETWORK_ERROR", networkErrorMessage
	default:
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.FullPath(), err)
	}

	c.JSON(status, ErrorResponse{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}
