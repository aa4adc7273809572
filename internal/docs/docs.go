// Package docs registers the Swagger description of the JSON API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/addresses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["addresses"],
                "summary": "List saved addresses",
                "parameters": [
                    {"enum": ["username", "city", "region", "displayName"], "type": "string", "description": "Filter field", "name": "field", "in": "query"},
                    {"type": "string", "description": "Case-insensitive substring", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.AddressEntry"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["addresses"],
                "summary": "Resolve a postal code and save the address",
                "parameters": [
                    {"description": "New address", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createAddressRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.AddressEntry"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/addresses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["addresses"],
                "summary": "Get a saved address",
                "parameters": [
                    {"type": "string", "description": "Entry id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AddressEntry"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "tags": ["addresses"],
                "summary": "Change the display name of a saved address",
                "parameters": [
                    {"type": "string", "description": "Entry id", "name": "id", "in": "path", "required": true},
                    {"description": "New display name", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.renameAddressRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["addresses"],
                "summary": "Delete a saved address",
                "parameters": [
                    {"type": "string", "description": "Entry id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/postal-codes/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["postal-codes"],
                "summary": "Resolve a postal code without saving it",
                "parameters": [
                    {"type": "string", "description": "Postal code (CEP)", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AddressFragment"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handler.createAddressRequest": {
            "type": "object",
            "required": ["displayName", "postalCode", "username"],
            "properties": {
                "submissionId": {"type": "string"},
                "username": {"type": "string"},
                "displayName": {"type": "string"},
                "postalCode": {"type": "string"}
            }
        },
        "handler.renameAddressRequest": {
            "type": "object",
            "properties": {
                "displayName": {"type": "string"}
            }
        },
        "models.AddressEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "displayName": {"type": "string"},
                "postalCode": {"type": "string"},
                "street": {"type": "string"},
                "neighborhood": {"type": "string"},
                "city": {"type": "string"},
                "region": {"type": "string"}
            }
        },
        "models.AddressFragment": {
            "type": "object",
            "properties": {
                "postalCode": {"type": "string"},
                "street": {"type": "string"},
                "neighborhood": {"type": "string"},
                "city": {"type": "string"},
                "region": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Address Catalog API",
	Description:      "Saves labeled Brazilian addresses resolved from their postal code (CEP).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
