// Package docs registra el documento OpenAPI servido en /swagger.
// Se regenera con: swag init -g cmd/api/main.go -o docs
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Demo login, returns a signed token",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "List pets",
                "parameters": [
                    {"type": "string", "description": "available | pending | adopted", "name": "status", "in": "query"},
                    {"type": "string", "description": "expression, e.g. species == \"cat\"", "name": "filter", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pet"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Publish a pet (admin)",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/pet"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}}}
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Get a pet",
                "parameters": [{"type": "string", "description": "pet id", "name": "petID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/pet"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Edit a pet (admin). status is driven by applications and cannot be patched.",
                "parameters": [{"type": "string", "description": "pet id", "name": "petID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/pet"}}}
            },
            "delete": {
                "tags": ["pets"],
                "summary": "Delete a pet (admin). Its applications are kept.",
                "parameters": [{"type": "string", "description": "pet id", "name": "petID", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/applications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "List applications (admin)",
                "parameters": [{"type": "string", "description": "pending | approved | rejected", "name": "status", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Submit an adoption application",
                "responses": {"201": {"description": "Created"}, "400": {"description": "fields lists each invalid form field", "schema": {"$ref": "#/definitions/error"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}}
            }
        },
        "/applications/{applicationID}/approve": {
            "post": {
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Approve a pending application (admin)",
                "parameters": [{"type": "string", "description": "application id", "name": "applicationID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "application is not pending or pet already adopted", "schema": {"$ref": "#/definitions/error"}}}
            }
        },
        "/applications/{applicationID}/reject": {
            "post": {
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Reject a pending application (admin)",
                "parameters": [{"type": "string", "description": "application id", "name": "applicationID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "application is not pending", "schema": {"$ref": "#/definitions/error"}}}
            }
        },
        "/me/saved/{petID}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Save or unsave a pet",
                "parameters": [{"type": "string", "description": "pet id", "name": "petID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/browse": {
            "get": {
                "produces": ["application/json"],
                "tags": ["browse"],
                "summary": "Pet currently shown in the browse flow",
                "parameters": [{"type": "integer", "description": "current index", "name": "index", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Dashboard counters (admin)",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "pet": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "string"},
                "gender": {"type": "string"},
                "size": {"type": "string"},
                "temperament": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "imageUrl": {"type": "string"},
                "status": {"type": "string", "enum": ["available", "pending", "adopted"]},
                "saved": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Adoption API",
	Description:      "Catálogo de mascotas, solicitudes de adopción, favoritos y flujo de exploración.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
