// Package docs registers the OpenAPI document served under /swagger.
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
        "/api/v1/defaultTriggers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["DefaultTriggers"],
                "summary": "List default triggers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DefaultTriggerListResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["DefaultTriggers"],
                "summary": "Create a default trigger",
                "parameters": [
                    {"description": "Trigger without id", "name": "trigger", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateDefaultTriggerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/DefaultTriggerResponse"}, "headers": {"Location": {"type": "string", "description": "URL of the new trigger"}}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Generated id already taken"}
                }
            }
        },
        "/api/v1/defaultTriggers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["DefaultTriggers"],
                "summary": "Get a default trigger",
                "parameters": [{"type": "string", "description": "Trigger ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DefaultTriggerResponse"}},
                    "404": {"description": "Trigger not found"}
                }
            },
            "delete": {
                "tags": ["DefaultTriggers"],
                "summary": "Delete a default trigger",
                "parameters": [{"type": "string", "description": "Trigger ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Trigger not found"}}
            }
        },
        "/api/v1/defaultTriggers/{id}/time": {
            "put": {
                "consumes": ["application/json"],
                "tags": ["DefaultTriggers"],
                "summary": "Change a default trigger's time of day",
                "parameters": [
                    {"type": "string", "description": "Trigger ID", "name": "id", "in": "path", "required": true},
                    {"description": "New time of day", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTimeRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Invalid request"}, "404": {"description": "Trigger not found"}}
            }
        },
        "/api/v1/defaultTriggers/{id}/temp": {
            "put": {
                "consumes": ["application/json"],
                "tags": ["DefaultTriggers"],
                "summary": "Change a default trigger's threshold temperature",
                "parameters": [
                    {"type": "string", "description": "Trigger ID", "name": "id", "in": "path", "required": true},
                    {"description": "New threshold", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTempRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Invalid request"}, "404": {"description": "Trigger not found"}}
            }
        },
        "/api/v1/defaultTriggers/{id}/acMode": {
            "put": {
                "consumes": ["application/json"],
                "tags": ["DefaultTriggers"],
                "summary": "Change a default trigger's AC mode",
                "parameters": [
                    {"type": "string", "description": "Trigger ID", "name": "id", "in": "path", "required": true},
                    {"description": "New mode", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateModeRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Invalid request"}, "404": {"description": "Trigger not found"}}
            }
        },
        "/api/v1/defaultTriggers/{id}/acTemp": {
            "put": {
                "consumes": ["application/json"],
                "tags": ["DefaultTriggers"],
                "summary": "Change a default trigger's AC target temperature",
                "parameters": [
                    {"type": "string", "description": "Trigger ID", "name": "id", "in": "path", "required": true},
                    {"description": "New target", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTempRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Invalid request"}, "404": {"description": "Trigger not found"}}
            }
        },
        "/api/v1/dateTriggers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["DateTriggers"],
                "summary": "List date triggers",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/DateTriggerListResponse"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["DateTriggers"],
                "summary": "Create a date trigger",
                "parameters": [
                    {"description": "Trigger without id", "name": "trigger", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateDateTriggerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/DateTriggerResponse"}},
                    "400": {"description": "Invalid request"},
                    "409": {"description": "Generated id already taken"}
                }
            }
        },
        "/api/v1/dateTriggers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["DateTriggers"],
                "summary": "Get a date trigger",
                "parameters": [{"type": "string", "description": "Trigger ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/DateTriggerResponse"}}, "404": {"description": "Trigger not found"}}
            },
            "delete": {
                "tags": ["DateTriggers"],
                "summary": "Delete a date trigger",
                "parameters": [{"type": "string", "description": "Trigger ID", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Trigger not found"}}
            }
        },
        "/api/v1/dateTriggers/{id}/dateTime": {
            "put": {
                "consumes": ["application/json"],
                "tags": ["DateTriggers"],
                "summary": "Move a date trigger",
                "parameters": [
                    {"type": "string", "description": "Trigger ID", "name": "id", "in": "path", "required": true},
                    {"description": "New instant", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateDateTimeRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Invalid request"}, "404": {"description": "Trigger not found"}}
            }
        },
        "/api/v1/cache/defaultTriggers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Cache"],
                "summary": "Read the default-trigger snapshot",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/CacheEnvelope"}}, "500": {"description": "Stored snapshot is corrupt", "schema": {"$ref": "#/definitions/CacheEnvelope"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Cache"],
                "summary": "Replace the default-trigger snapshot",
                "parameters": [
                    {"description": "Full trigger set", "name": "snapshot", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PutSnapshotRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/CacheEnvelope"}}, "400": {"description": "Wrong content type or invalid body", "schema": {"$ref": "#/definitions/CacheEnvelope"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check endpoint",
                "responses": {"200": {"description": "OK"}, "503": {"description": "A dependency is unreachable"}}
            }
        }
    },
    "definitions": {
        "ACSettings": {
            "type": "object",
            "required": ["mode", "temp"],
            "properties": {
                "mode": {"type": "string", "enum": ["auto", "cool", "dry", "fan", "heat"], "example": "cool"},
                "temp": {"type": "number", "example": 24}
            }
        },
        "TimeOfDay": {
            "type": "object",
            "required": ["hour", "minute"],
            "properties": {
                "hour": {"type": "integer", "maximum": 23, "minimum": 0, "example": 7},
                "minute": {"type": "integer", "maximum": 59, "minimum": 0, "example": 30}
            }
        },
        "DefaultTrigger": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "time": {"$ref": "#/definitions/TimeOfDay"},
                "temp": {"type": "number", "example": 26},
                "ac": {"$ref": "#/definitions/ACSettings"}
            }
        },
        "DateTrigger": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "dateTime": {"type": "string", "format": "date-time"},
                "temp": {"type": "number"},
                "ac": {"$ref": "#/definitions/ACSettings"}
            }
        },
        "CreateDefaultTriggerRequest": {
            "type": "object",
            "properties": {
                "time": {"$ref": "#/definitions/TimeOfDay"},
                "temp": {"type": "number"},
                "ac": {"$ref": "#/definitions/ACSettings"}
            }
        },
        "CreateDateTriggerRequest": {
            "type": "object",
            "properties": {
                "dateTime": {"type": "string", "format": "date-time"},
                "temp": {"type": "number"},
                "ac": {"$ref": "#/definitions/ACSettings"}
            }
        },
        "DefaultTriggerResponse": {"type": "object", "properties": {"trigger": {"$ref": "#/definitions/DefaultTrigger"}}},
        "DateTriggerResponse": {"type": "object", "properties": {"trigger": {"$ref": "#/definitions/DateTrigger"}}},
        "DefaultTriggerListResponse": {"type": "object", "properties": {"triggers": {"type": "array", "items": {"$ref": "#/definitions/DefaultTrigger"}}}},
        "DateTriggerListResponse": {"type": "object", "properties": {"triggers": {"type": "array", "items": {"$ref": "#/definitions/DateTrigger"}}}},
        "UpdateTimeRequest": {"type": "object", "properties": {"time": {"$ref": "#/definitions/TimeOfDay"}}},
        "UpdateDateTimeRequest": {"type": "object", "properties": {"dateTime": {"type": "string", "format": "date-time"}}},
        "UpdateTempRequest": {"type": "object", "properties": {"temp": {"type": "number"}}},
        "UpdateModeRequest": {"type": "object", "properties": {"mode": {"type": "string", "enum": ["auto", "cool", "dry", "fan", "heat"]}}},
        "TriggerSnapshot": {
            "type": "object",
            "properties": {
                "counts": {"type": "integer"},
                "triggers": {"type": "array", "items": {"$ref": "#/definitions/DefaultTrigger"}}
            }
        },
        "PutSnapshotRequest": {"type": "object", "properties": {"triggers": {"type": "array", "items": {"$ref": "#/definitions/DefaultTrigger"}}}},
        "CacheEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "messages": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {},
                "trace_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Auto Run AC API",
	Description:      "Stores the time-of-day and calendar triggers that switch an air conditioner, and serves a cached snapshot of the daily triggers to evaluators.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
