package restapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"chainregistry/internal/app/port"
	"chainregistry/internal/domain/entity"
	"chainregistry/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ChainListResponse wraps GET /chains.
type ChainListResponse struct {
	Count  int                      `json:"count"`
	Chains []entity.ChainDescriptor `json:"chains"`
}

// ContractResponse is the answer of GET /chains/:id/contracts/:name.
type ContractResponse struct {
	ChainID     uint64  `json:"chainId"`
	Name        string  `json:"name"`
	SourceChain *uint64 `json:"sourceChain,omitempty"`
	entity.Contract
}

// RPCStatusResponse is the answer of GET /chains/:id/rpc.
type RPCStatusResponse struct {
	ChainID   uint64                  `json:"chainId"`
	Endpoints []entity.EndpointStatus `json:"endpoints,omitempty"`
	Healthy   []string                `json:"healthy,omitempty"`
}

// ChainHandler serves the chain registry over HTTP.
type ChainHandler struct {
	registry port.ChainRegistry
	health   port.HealthService
	logger   port.Logger
}

// NewChainHandler creates a new ChainHandler. health may be nil, in which
// case the RPC status route answers 503.
func NewChainHandler(registry port.ChainRegistry, health port.HealthService, logger port.Logger) *ChainHandler {
	return &ChainHandler{registry: registry, health: health, logger: logger}
}

func abortWithError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}

// Health is a liveness check.
func (h *ChainHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "chains": len(h.registry.All())})
}

// ListChains handles GET /chains?testnet=&q=.
func (h *ChainHandler) ListChains(c *gin.Context) {
	var f entity.ChainFilter
	if raw, ok := c.GetQuery("testnet"); ok && raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Errorf("invalid testnet flag %q", raw))
			return
		}
		f.Testnet = &v
	}
	f.Query = c.Query("q")

	chains := h.registry.Filter(f)
	c.JSON(http.StatusOK, ChainListResponse{Count: len(chains), Chains: chains})
}

// GetChain handles GET /chains/:id where id is decimal or 0x hex.
func (h *ChainHandler) GetChain(c *gin.Context) {
	chain, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, chain)
}

// GetNetwork handles GET /networks/:slug.
func (h *ChainHandler) GetNetwork(c *gin.Context) {
	slug := c.Param("slug")
	chain, ok := h.registry.GetByNetwork(slug)
	if !ok {
		abortWithError(c, http.StatusNotFound, fmt.Errorf("%w: network %q", entity.ErrChainNotFound, slug))
		return
	}
	c.JSON(http.StatusOK, chain)
}

// GetContract handles GET /chains/:id/contracts/:name?sourceChain=.
func (h *ChainHandler) GetContract(c *gin.Context) {
	chain, ok := h.lookup(c)
	if !ok {
		return
	}
	name := c.Param("name")

	resp := ContractResponse{ChainID: chain.ID, Name: name}
	var found bool
	if raw := c.Query("sourceChain"); raw != "" {
		sourceID, err := utils.ParseChainID(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}
		resp.SourceChain = &sourceID
		resp.Contract, found = chain.ContractOn(name, sourceID)
	} else {
		resp.Contract, found = chain.Contract(name)
	}
	if !found {
		abortWithError(c, http.StatusNotFound, fmt.Errorf("contract %q not found on chain %d", name, chain.ID))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRPCStatus handles GET /chains/:id/rpc?healthy=true.
func (h *ChainHandler) GetRPCStatus(c *gin.Context) {
	if h.health == nil {
		abortWithError(c, http.StatusServiceUnavailable, errors.New("health checks are disabled"))
		return
	}
	chain, ok := h.lookup(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	onlyHealthy, _ := strconv.ParseBool(c.Query("healthy"))
	if onlyHealthy {
		urls, err := h.health.HealthyRPCURLs(ctx, chain.ID)
		if err != nil {
			h.respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, RPCStatusResponse{ChainID: chain.ID, Healthy: urls})
		return
	}

	statuses, err := h.health.CheckChain(ctx, chain.ID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, RPCStatusResponse{ChainID: chain.ID, Endpoints: statuses})
}

func (h *ChainHandler) lookup(c *gin.Context) (entity.ChainDescriptor, bool) {
	id, err := utils.ParseChainID(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return entity.ChainDescriptor{}, false
	}
	chain, ok := h.registry.Get(id)
	if !ok {
		abortWithError(c, http.StatusNotFound, fmt.Errorf("%w: %d", entity.ErrChainNotFound, id))
		return entity.ChainDescriptor{}, false
	}
	return chain, true
}

func (h *ChainHandler) respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, entity.ErrChainNotFound) {
		abortWithError(c, http.StatusNotFound, err)
		return
	}
	h.logger.Error("Health check failed", "path", c.Request.URL.Path, "error", err)
	abortWithError(c, http.StatusInternalServerError, err)
}
