package handler

import (
	"errors"
	"net/http"
	"strings"

	"address-catalog/internal/models"
	"address-catalog/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AddressHandler serves the JSON address book API
type AddressHandler struct {
	service CatalogService
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(svc CatalogService) *AddressHandler {
	return &AddressHandler{service: svc}
}

type createAddressRequest struct {
	SubmissionID string `json:"submissionId"`
	Username     string `json:"username" binding:"required"`
	DisplayName  string `json:"displayName" binding:"required"`
	PostalCode   string `json:"postalCode" binding:"required"`
}

type renameAddressRequest struct {
	DisplayName string `json:"displayName"`
}

// List handles GET /api/addresses requests
//
//	@Summary	List saved addresses
//	@Tags		addresses
//	@Produce	json
//	@Param		field	query		string	false	"Filter field"	Enums(username, city, region, displayName)
//	@Param		q		query		string	false	"Case-insensitive substring"
//	@Success	200		{array}		models.AddressEntry
//	@Router		/addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	field := models.ParseFilterField(c.Query("field"))
	c.JSON(http.StatusOK, h.service.List(field, c.Query("q")))
}

// Get handles GET /api/addresses/:id requests
//
//	@Summary	Get a saved address
//	@Tags		addresses
//	@Produce	json
//	@Param		id	path		string	true	"Entry id"
//	@Success	200	{object}	models.AddressEntry
//	@Failure	404	{object}	map[string]string
//	@Router		/addresses/{id} [get]
func (h *AddressHandler) Get(c *gin.Context) {
	entry, ok := h.service.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Create handles POST /api/addresses requests
//
//	@Summary	Resolve a postal code and save the address
//	@Tags		addresses
//	@Accept		json
//	@Produce	json
//	@Param		body	body		createAddressRequest	true	"New address"
//	@Success	201		{object}	models.AddressEntry
//	@Failure	400		{object}	map[string]string
//	@Failure	422		{object}	map[string]string
//	@Router		/addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	var req createAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields 'username', 'displayName' and 'postalCode'"})
		return
	}

	entry, err := h.service.Create(c.Request.Context(), service.CreateRequest{
		SubmissionID: req.SubmissionID,
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		PostalCode:   req.PostalCode,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields 'username', 'displayName' and 'postalCode'"})
			return
		}
		log.Warn().Err(err).Str("postal_code", req.PostalCode).Msg("address creation failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "postal code lookup failed"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Rename handles PATCH /api/addresses/:id requests
//
//	@Summary	Change the display name of a saved address
//	@Tags		addresses
//	@Accept		json
//	@Param		id		path	string					true	"Entry id"
//	@Param		body	body	renameAddressRequest	true	"New display name"
//	@Success	204
//	@Failure	400	{object}	map[string]string
//	@Router		/addresses/{id} [patch]
func (h *AddressHandler) Rename(c *gin.Context) {
	var req renameAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.DisplayName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "display name cannot be empty"})
		return
	}

	h.service.Rename(c.Request.Context(), c.Param("id"), req.DisplayName)
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/addresses/:id requests
//
//	@Summary	Delete a saved address
//	@Tags		addresses
//	@Param		id	path	string	true	"Entry id"
//	@Success	204
//	@Router		/addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	h.service.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}
