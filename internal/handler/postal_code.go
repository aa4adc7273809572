package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PostalCodeHandler handles postal code lookups
type PostalCodeHandler struct {
	resolver PostalCodeResolver
}

// NewPostalCodeHandler creates a new postal code handler
func NewPostalCodeHandler(resolver PostalCodeResolver) *PostalCodeHandler {
	return &PostalCodeHandler{resolver: resolver}
}

// Lookup handles GET /api/postal-codes/:code requests
//
//	@Summary	Resolve a postal code without saving it
//	@Tags		postal-codes
//	@Produce	json
//	@Param		code	path		string	true	"Postal code (CEP)"
//	@Success	200		{object}	models.AddressFragment
//	@Failure	404		{object}	map[string]string
//	@Router		/postal-codes/{code} [get]
func (h *PostalCodeHandler) Lookup(c *gin.Context) {
	code := c.Param("code")

	fragment, err := h.resolver.Resolve(c.Request.Context(), code)
	if err != nil {
		log.Debug().Err(err).Str("postal_code", code).Msg("postal code lookup failed")
		c.JSON(http.StatusNotFound, gin.H{"error": "postal code not found"})
		return
	}

	c.JSON(http.StatusOK, fragment)
}
