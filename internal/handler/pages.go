package handler

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"address-catalog/internal/models"
	"address-catalog/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	modalEdit   = "edit"
	modalDelete = "delete"
)

type toast struct {
	Kind    string
	Message string
}

var (
	notices = map[string]toast{
		"created": {Kind: "success", Message: "Endereço adicionado com sucesso!"},
		"renamed": {Kind: "success", Message: "Nome atualizado com sucesso!"},
		"deleted": {Kind: "success", Message: "Endereço excluído com sucesso!"},
	}
	lookupFailed  = toast{Kind: "error", Message: "Erro ao buscar o CEP!"}
	missingFields = toast{Kind: "error", Message: "Preencha todos os campos obrigatórios."}
)

var filterLabels = map[models.FilterField]string{
	models.FilterByUsername:    "Usuário",
	models.FilterByCity:        "Cidade",
	models.FilterByRegion:      "Estado",
	models.FilterByDisplayName: "Nome de Exibição",
}

type filterOption struct {
	Value    models.FilterField
	Label    string
	Selected bool
}

type filterState struct {
	Field   models.FilterField
	Text    string
	Options []filterOption
}

// Query encodes the filter for links that return to the same list view
func (f filterState) Query() template.URL {
	v := url.Values{}
	v.Set("field", string(f.Field))
	if f.Text != "" {
		v.Set("q", f.Text)
	}
	return template.URL(v.Encode())
}

type createForm struct {
	SubmissionID string `form:"submission_id"`
	Username     string `form:"username" binding:"required"`
	DisplayName  string `form:"display_name" binding:"required"`
	PostalCode   string `form:"postal_code" binding:"required"`
}

type renameForm struct {
	DisplayName string `form:"display_name"`
}

type pageData struct {
	Entries        []models.AddressEntry
	Filter         filterState
	Form           createForm
	Toast          *toast
	Modal          string
	Selected       *models.AddressEntry
	NewDisplayName string
}

// PageHandler renders the address book pages
type PageHandler struct {
	service CatalogService
}

// NewPageHandler creates a new page handler
func NewPageHandler(svc CatalogService) *PageHandler {
	return &PageHandler{service: svc}
}

func (h *PageHandler) page(c *gin.Context) pageData {
	field := models.ParseFilterField(c.Query("field"))
	text := c.Query("q")

	options := make([]filterOption, 0, len(models.FilterFields))
	for _, f := range models.FilterFields {
		options = append(options, filterOption{Value: f, Label: filterLabels[f], Selected: f == field})
	}

	return pageData{
		Entries: h.service.List(field, text),
		Filter:  filterState{Field: field, Text: text, Options: options},
		Form:    createForm{SubmissionID: uuid.NewString()},
	}
}

func (h *PageHandler) listURL(c *gin.Context, notice string) string {
	v := url.Values{}
	if field := c.Query("field"); field != "" {
		v.Set("field", field)
	}
	if q := c.Query("q"); q != "" {
		v.Set("q", q)
	}
	if notice != "" {
		v.Set("notice", notice)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// Index handles GET / requests
func (h *PageHandler) Index(c *gin.Context) {
	data := h.page(c)
	if t, ok := notices[c.Query("notice")]; ok {
		data.Toast = &t
	}
	c.HTML(http.StatusOK, "index.html", data)
}

// Create handles POST /addresses requests
func (h *PageHandler) Create(c *gin.Context) {
	var form createForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, form, &missingFields)
		return
	}

	_, err := h.service.Create(c.Request.Context(), service.CreateRequest{
		SubmissionID: form.SubmissionID,
		Username:     form.Username,
		DisplayName:  form.DisplayName,
		PostalCode:   form.PostalCode,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			h.renderForm(c, http.StatusBadRequest, form, &missingFields)
			return
		}
		log.Warn().Err(err).Str("postal_code", form.PostalCode).Msg("address creation failed")
		h.renderForm(c, http.StatusUnprocessableEntity, form, &lookupFailed)
		return
	}

	c.Redirect(http.StatusSeeOther, "/?notice=created")
}

// renderForm re-renders the page keeping the values the user entered
func (h *PageHandler) renderForm(c *gin.Context, status int, form createForm, t *toast) {
	data := h.page(c)
	if form.SubmissionID != "" {
		data.Form.SubmissionID = form.SubmissionID
	}
	data.Form.Username = form.Username
	data.Form.DisplayName = form.DisplayName
	data.Form.PostalCode = form.PostalCode
	data.Toast = t
	c.HTML(status, "index.html", data)
}

// EditForm handles GET /addresses/:id/edit requests
func (h *PageHandler) EditForm(c *gin.Context) {
	entry, ok := h.service.Get(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusSeeOther, h.listURL(c, ""))
		return
	}

	data := h.page(c)
	data.Modal = modalEdit
	data.Selected = &entry
	data.NewDisplayName = entry.DisplayName
	c.HTML(http.StatusOK, "index.html", data)
}

// Rename handles POST /addresses/:id/rename requests
func (h *PageHandler) Rename(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.service.Get(id)
	if !ok {
		c.Redirect(http.StatusSeeOther, h.listURL(c, ""))
		return
	}

	var form renameForm
	if err := c.ShouldBind(&form); err != nil {
		log.Debug().Err(err).Str("id", id).Msg("rename form rejected")
		h.renderRename(c, entry, form.DisplayName)
		return
	}

	if strings.TrimSpace(form.DisplayName) == "" || !h.service.Rename(c.Request.Context(), id, form.DisplayName) {
		h.renderRename(c, entry, form.DisplayName)
		return
	}

	c.Redirect(http.StatusSeeOther, h.listURL(c, "renamed"))
}

// renderRename keeps the rename modal open with the value the user typed
func (h *PageHandler) renderRename(c *gin.Context, entry models.AddressEntry, displayName string) {
	data := h.page(c)
	data.Modal = modalEdit
	data.Selected = &entry
	data.NewDisplayName = displayName
	c.HTML(http.StatusUnprocessableEntity, "index.html", data)
}

// DeleteForm handles GET /addresses/:id/delete requests
func (h *PageHandler) DeleteForm(c *gin.Context) {
	entry, ok := h.service.Get(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusSeeOther, h.listURL(c, ""))
		return
	}

	data := h.page(c)
	data.Modal = modalDelete
	data.Selected = &entry
	c.HTML(http.StatusOK, "index.html", data)
}

// Delete handles POST /addresses/:id/delete requests
func (h *PageHandler) Delete(c *gin.Context) {
	h.service.Delete(c.Request.Context(), c.Param("id"))
	c.Redirect(http.StatusSeeOther, h.listURL(c, "deleted"))
}
