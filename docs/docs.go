// Package docs registers the AlumNet OpenAPI description with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new person",
                "parameters": [
                    {"description": "Registration information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Person registered", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Missing or invalid fields", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "409": {"description": "Username or email already exists", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Missing identifier or password", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "Logged out", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Get own profile",
                "parameters": [
                    {"enum": ["view", "edit"], "type": "string", "description": "view or edit", "name": "mode", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Unknown mode", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "401": {"description": "Not logged in", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Profile not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/profile/personal/save": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Save personal information",
                "parameters": [
                    {"description": "Personal information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PersonalInfoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Missing names or unknown country", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "401": {"description": "Not logged in", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/profile/{kind}/add": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Add a profile resource",
                "parameters": [
                    {"enum": ["education", "career", "skill", "interest", "expertise"], "type": "string", "description": "Resource kind", "name": "kind", "in": "path", "required": true},
                    {"description": "Payload for the kind", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "403": {"description": "Role not allowed", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "409": {"description": "Already exists", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/profile/{kind}/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Delete a profile resource",
                "parameters": [
                    {"enum": ["education", "career", "skill", "interest", "expertise"], "type": "string", "description": "Resource kind", "name": "kind", "in": "path", "required": true},
                    {"type": "integer", "description": "Row or tag id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "403": {"description": "Not owned or role not allowed", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "503": {"description": "Degraded", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string"},
                "data": {},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VAL_001"},
                "message": {"type": "string"},
                "details": {}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["username", "email", "password", "role"],
            "properties": {
                "username": {"type": "string", "example": "jdoe"},
                "email": {"type": "string", "example": "jdoe@example.com"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "alumni"]}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["identifier", "password"],
            "properties": {
                "identifier": {"type": "string", "example": "jdoe"},
                "password": {"type": "string"}
            }
        },
        "dto.PersonalInfoRequest": {
            "type": "object",
            "required": ["first_name", "last_name"],
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "phone_number": {"type": "string"},
                "address": {"type": "string"},
                "home_country": {"type": "string", "example": "TR"}
            }
        }
    },
    "securityDefinitions": {
        "SessionCookie": {
            "description": "Signed session cookie issued by /api/auth/login",
            "type": "apiKey",
            "name": "alumnet_session",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "AlumNet API",
	Description:      "Student and alumni profile directory",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
