// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/service/main.go
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
        "/ping": {
            "get": {"tags": ["ops"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/register": {
            "post": {"tags": ["auth"], "summary": "Register", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/login": {
            "post": {"tags": ["auth"], "summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/logout": {
            "post": {"tags": ["auth"], "summary": "Logout", "responses": {"200": {"description": "OK"}}}
        },
        "/user": {
            "get": {"tags": ["auth"], "summary": "Current user", "security": [{"SessionCookie": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/trains": {
            "get": {"tags": ["trains"], "summary": "List trains", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["trains"], "summary": "Create a train", "security": [{"SessionCookie": []}], "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}
        },
        "/trains/{id}": {
            "get": {"tags": ["trains"], "summary": "Get a train", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["trains"], "summary": "Update a train", "security": [{"SessionCookie": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["trains"], "summary": "Delete a train", "security": [{"SessionCookie": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/routes": {
            "get": {"tags": ["routes"], "summary": "List routes", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["routes"], "summary": "Create a route", "security": [{"SessionCookie": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/routes/{id}": {
            "get": {"tags": ["routes"], "summary": "Get a route", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["routes"], "summary": "Update a route", "security": [{"SessionCookie": []}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["routes"], "summary": "Update a route", "security": [{"SessionCookie": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["routes"], "summary": "Delete a route", "security": [{"SessionCookie": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/bookings": {
            "get": {"tags": ["bookings"], "summary": "List bookings", "security": [{"SessionCookie": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["bookings"], "summary": "Create a booking", "security": [{"SessionCookie": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/bookings/{id}": {
            "get": {"tags": ["bookings"], "summary": "Get a booking", "security": [{"SessionCookie": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "put": {"tags": ["bookings"], "summary": "Update a booking", "security": [{"SessionCookie": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/bookings/{id}/cancel": {
            "post": {"tags": ["bookings"], "summary": "Cancel a booking", "security": [{"SessionCookie": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/users": {
            "get": {"tags": ["users"], "summary": "List users", "security": [{"SessionCookie": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/users/{id}": {
            "get": {"tags": ["users"], "summary": "Get a user", "security": [{"SessionCookie": []}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["users"], "summary": "Change a user's role", "security": [{"SessionCookie": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"tags": ["users"], "summary": "Delete a user", "security": [{"SessionCookie": []}], "responses": {"204": {"description": "No Content"}}}
        }
    },
    "securityDefinitions": {
        "SessionCookie": {"type": "apiKey", "name": "Cookie", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "TrainEase API",
	Description:      "Train ticket booking backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
