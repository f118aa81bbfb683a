// Package docs registers the OpenAPI description served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}],
            "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Session"}},
                          "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Session"}},
                          "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                          "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}},
        "/auth/me": {"get": {"tags": ["auth"], "summary": "Current user", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}}}},
        "/auth/profile": {"put": {"tags": ["auth"], "summary": "Update profile", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Session"}}}}},
        "/categories": {
            "get": {"tags": ["categories"], "summary": "List categories",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Category"}}}}},
            "post": {"tags": ["categories"], "summary": "Create category", "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Category"}}}}},
        "/categories/{id}": {
            "put": {"tags": ["categories"], "summary": "Update category", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Category"}}}},
            "delete": {"tags": ["categories"], "summary": "Delete category", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}}}},
        "/recipes": {
            "get": {"tags": ["recipes"], "summary": "List recipes",
                "parameters": [{"in": "query", "name": "search", "type": "string"},
                               {"in": "query", "name": "categoryId", "type": "string"},
                               {"in": "query", "name": "difficulty", "type": "string", "enum": ["easy", "medium", "hard"]},
                               {"in": "query", "name": "userId", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Recipe"}}}}},
            "post": {"tags": ["recipes"], "summary": "Create recipe", "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Recipe"}}}}},
        "/recipes/my": {"get": {"tags": ["recipes"], "summary": "My recipes", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Recipe"}}}}}},
        "/recipes/saved": {"get": {"tags": ["bookmarks"], "summary": "Saved recipes", "security": [{"BearerAuth": []}],
            "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Recipe"}}}}}},
        "/recipes/{id}": {
            "get": {"tags": ["recipes"], "summary": "Get recipe",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Recipe"}},
                              "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}}},
            "put": {"tags": ["recipes"], "summary": "Update recipe", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Recipe"}}}},
            "delete": {"tags": ["recipes"], "summary": "Delete recipe", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}}}},
        "/recipes/{id}/share": {"get": {"tags": ["recipes"], "summary": "Share link",
            "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
            "responses": {"200": {"description": "OK"}}}},
        "/recipes/{id}/image": {"post": {"tags": ["recipes"], "summary": "Upload recipe image", "security": [{"BearerAuth": []}],
            "consumes": ["multipart/form-data"],
            "parameters": [{"in": "path", "name": "id", "type": "string", "required": true},
                           {"in": "formData", "name": "image", "type": "file", "required": true}],
            "responses": {"200": {"description": "OK"}}}},
        "/recipes/{id}/bookmark": {
            "get": {"tags": ["bookmarks"], "summary": "Bookmark state", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["bookmarks"], "summary": "Toggle bookmark", "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}}},
        "/reports": {"get": {"tags": ["reports"], "summary": "Generate report", "security": [{"BearerAuth": []}],
            "parameters": [{"in": "query", "name": "type", "type": "string", "required": true, "enum": ["category", "user"]},
                           {"in": "query", "name": "categoryId", "type": "string"},
                           {"in": "query", "name": "userId", "type": "string"},
                           {"in": "query", "name": "format", "type": "string", "required": true, "enum": ["xlsx", "xls", "pdf"]}],
            "responses": {"200": {"description": "File download"},
                          "404": {"description": "No matching recipes", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}},
        "/health": {"get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/health/ready": {"get": {"tags": ["health"], "summary": "Readiness probe",
            "responses": {"200": {"description": "OK"}, "503": {"description": "Degraded"}}}}
    },
    "definitions": {
        "ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "code": {"type": "string"}}},
        "RegisterRequest": {"type": "object", "required": ["name", "username", "password", "email"],
            "properties": {"name": {"type": "string"}, "username": {"type": "string"}, "password": {"type": "string"}, "email": {"type": "string"}}},
        "LoginRequest": {"type": "object", "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "User": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "username": {"type": "string"},
            "email": {"type": "string"}, "avatar": {"type": "string"}}},
        "Session": {"type": "object", "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/User"}}},
        "Category": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"}}},
        "Recipe": {"type": "object", "properties": {
            "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
            "cookingTime": {"type": "integer"}, "servings": {"type": "integer"},
            "difficulty": {"type": "string", "enum": ["easy", "medium", "hard"]},
            "categoryId": {"type": "string"}, "ingredients": {"type": "array", "items": {"type": "string"}},
            "instructions": {"type": "string"}, "image": {"type": "string"},
            "userId": {"type": "string"}, "authorName": {"type": "string"},
            "createdAt": {"type": "string", "format": "date-time"}, "updatedAt": {"type": "string", "format": "date-time"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Recipe Book API",
	Description:      "Recipes, categories, bookmarks and reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
