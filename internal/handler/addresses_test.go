package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"address-catalog/internal/models"
	"address-catalog/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newJSONContext(method, target, body string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params
	return c, w
}

func TestAddressHandler_List(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		field        models.FilterField
		text         string
		mockEntries  []models.AddressEntry
		expectedBody interface{}
	}{
		{
			name:         "no filter",
			target:       "/api/addresses",
			field:        models.FilterByUsername,
			mockEntries:  []models.AddressEntry{},
			expectedBody: []interface{}{},
		},
		{
			name:         "unsupported field is passed through",
			target:       "/api/addresses?field=postalCode&q=zzz",
			field:        models.FilterField("postalCode"),
			text:         "zzz",
			mockEntries:  []models.AddressEntry{},
			expectedBody: []interface{}{},
		},
		{
			name:        "filter by region",
			target:      "/api/addresses?field=region&q=sp",
			field:       models.FilterByRegion,
			text:        "sp",
			mockEntries: []models.AddressEntry{sampleEntry},
			expectedBody: []interface{}{
				map[string]interface{}{
					"id":           "x",
					"username":     "Ana",
					"displayName":  "Casa",
					"postalCode":   "01001-000",
					"street":       "Praça da Sé",
					"neighborhood": "Sé",
					"city":         "São Paulo",
					"region":       "SP",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockCatalogService)
			handler := NewAddressHandler(mockSvc)
			mockSvc.On("List", tt.field, tt.text).Return(tt.mockEntries)

			c, w := newJSONContext(http.MethodGet, tt.target, "", nil)
			handler.List(c)

			assert.Equal(t, http.StatusOK, w.Code)
			var actualBody interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
			assert.Equal(t, tt.expectedBody, actualBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestAddressHandler_Get(t *testing.T) {
	mockSvc := new(MockCatalogService)
	handler := NewAddressHandler(mockSvc)
	mockSvc.On("Get", "x").Return(sampleEntry, true)
	mockSvc.On("Get", "y").Return(models.AddressEntry{}, false)

	c, w := newJSONContext(http.MethodGet, "/api/addresses/x", "", gin.Params{{Key: "id", Value: "x"}})
	handler.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newJSONContext(http.MethodGet, "/api/addresses/y", "", gin.Params{{Key: "id", Value: "y"}})
	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddressHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectCall     bool
		mockEntry      models.AddressEntry
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "successful creation",
			body:           `{"username":"Ana","displayName":"Casa","postalCode":"01001-000"}`,
			expectCall:     true,
			mockEntry:      sampleEntry,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing field",
			body:           `{"username":"Ana","postalCode":"01001-000"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required fields 'username', 'displayName' and 'postalCode'"},
		},
		{
			name:           "malformed body",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required fields 'username', 'displayName' and 'postalCode'"},
		},
		{
			name:           "lookup failure",
			body:           `{"username":"Ana","displayName":"Casa","postalCode":"01001-000"}`,
			expectCall:     true,
			mockError:      assert.AnError,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   gin.H{"error": "postal code lookup failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockCatalogService)
			handler := NewAddressHandler(mockSvc)
			if tt.expectCall {
				mockSvc.On("Create", mock.Anything, service.CreateRequest{
					Username:    "Ana",
					DisplayName: "Casa",
					PostalCode:  "01001-000",
				}).Return(tt.mockEntry, tt.mockError)
			}

			c, w := newJSONContext(http.MethodPost, "/api/addresses", tt.body, nil)
			handler.Create(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				var actualBody map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &actualBody))
				assert.Equal(t, tt.expectedBody, gin.H(actualBody))
			} else {
				var created models.AddressEntry
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
				assert.Equal(t, tt.mockEntry, created)
			}

			if tt.expectCall {
				mockSvc.AssertExpectations(t)
			} else {
				mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAddressHandler_Rename(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           string
		expectCall     bool
		mockApplied    bool
		expectedStatus int
	}{
		{name: "known entry", id: "x", body: `{"displayName":"Trabalho"}`, expectCall: true, mockApplied: true, expectedStatus: http.StatusNoContent},
		{name: "unknown entry", id: "y", body: `{"displayName":"Trabalho"}`, expectCall: true, mockApplied: false, expectedStatus: http.StatusNoContent},
		{name: "blank name", id: "x", body: `{"displayName":"  "}`, expectedStatus: http.StatusBadRequest},
		{name: "missing body", id: "x", body: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockCatalogService)
			handler := NewAddressHandler(mockSvc)
			if tt.expectCall {
				mockSvc.On("Rename", mock.Anything, tt.id, "Trabalho").Return(tt.mockApplied)
			}

			c, w := newJSONContext(http.MethodPatch, "/api/addresses/"+tt.id, tt.body, gin.Params{{Key: "id", Value: tt.id}})
			handler.Rename(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectCall {
				mockSvc.AssertExpectations(t)
			} else {
				mockSvc.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAddressHandler_Delete(t *testing.T) {
	for _, existed := range []bool{true, false} {
		mockSvc := new(MockCatalogService)
		handler := NewAddressHandler(mockSvc)
		mockSvc.On("Delete", mock.Anything, "x").Return(existed)

		c, w := newJSONContext(http.MethodDelete, "/api/addresses/x", "", gin.Params{{Key: "id", Value: "x"}})
		handler.Delete(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockSvc.AssertExpectations(t)
	}
}
