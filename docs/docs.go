// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create an account",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange credentials for a bearer token",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Revoke the current token",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/workouts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["workouts"],
                "summary": "List workouts, most recent first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Workout"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["workouts"],
                "summary": "Log a workout",
                "parameters": [
                    {"description": "workout", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createWorkoutRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Workout"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/workouts/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["workouts"],
                "summary": "Fetch one workout",
                "parameters": [{"type": "string", "description": "workout id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Workout"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["workouts"],
                "summary": "Edit a workout; omitted fields keep their value",
                "parameters": [
                    {"type": "string", "description": "workout id", "name": "id", "in": "path", "required": true},
                    {"description": "changes", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateWorkoutRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Workout"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["workouts"],
                "summary": "Delete a workout",
                "parameters": [{"type": "string", "description": "workout id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/foods": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["foods"],
                "summary": "List one day's foods",
                "parameters": [{"type": "string", "description": "YYYY-MM-DD, defaults to today", "name": "day", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ConsumedFood"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["foods"],
                "summary": "Log a consumed food into a day bucket",
                "parameters": [
                    {"description": "food", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.logFoodRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.ConsumedFood"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/foods/barcode/{code}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["foods"],
                "summary": "Resolve a barcode into a food prefill",
                "parameters": [{"type": "string", "description": "EAN/UPC barcode", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.prefillResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/stats/weekly": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Seven-day workout and nutrition summary ending on date",
                "parameters": [{"type": "string", "description": "YYYY-MM-DD in the reporting timezone, defaults to today", "name": "date", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.WeeklyStats"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.ConsumedFood": {
            "type": "object",
            "properties": {
                "barcode": {"type": "string"},
                "calories": {"type": "number"},
                "carbs_g": {"type": "number"},
                "created_at": {"type": "string"},
                "day": {"type": "string"},
                "derived_calories": {"type": "integer"},
                "effective_calories": {"type": "number"},
                "fat_g": {"type": "number"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "protein_g": {"type": "number"},
                "user_id": {"type": "string"}
            }
        },
        "domain.FoodPrefill": {
            "type": "object",
            "properties": {
                "barcode": {"type": "string"},
                "calories": {"type": "number"},
                "carbs_g": {"type": "number"},
                "fat_g": {"type": "number"},
                "name": {"type": "string"},
                "protein_g": {"type": "number"}
            }
        },
        "domain.WeeklyStats": {
            "type": "object",
            "properties": {
                "active_days": {"type": "integer"},
                "average_calories_consumed_per_active_day": {"type": "number"},
                "calories_burned": {"type": "number"},
                "calories_burned_by_day": {"type": "array", "items": {"type": "number"}},
                "calories_consumed": {"type": "number"},
                "calories_consumed_by_day": {"type": "array", "items": {"type": "number"}},
                "day_keys": {"type": "array", "items": {"type": "string"}},
                "end_date": {"type": "string"},
                "labels": {"type": "array", "items": {"type": "string"}},
                "start_date": {"type": "string"},
                "total_workouts": {"type": "integer"},
                "workouts_by_day": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "domain.Workout": {
            "type": "object",
            "properties": {
                "calories_burned": {"type": "number"},
                "created_at": {"type": "string"},
                "duration_minutes": {"type": "number"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "occurred_at": {"type": "string"},
                "type": {"type": "string", "enum": ["cardio", "strength", "yoga", "pilates", "swimming", "cycling", "running", "other"]},
                "updated_at": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "http.createWorkoutRequest": {
            "type": "object",
            "required": ["duration_minutes", "name"],
            "properties": {
                "calories_burned": {"type": "number"},
                "duration_minutes": {"type": "number"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "occurred_at": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "http.updateWorkoutRequest": {
            "type": "object",
            "properties": {
                "calories_burned": {"type": "number"},
                "duration_minutes": {"type": "number"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "occurred_at": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "http.logFoodRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "barcode": {"type": "string"},
                "calories": {"type": "number"},
                "carbs_g": {"type": "number"},
                "day": {"type": "string"},
                "fat_g": {"type": "number"},
                "name": {"type": "string"},
                "protein_g": {"type": "number"}
            }
        },
        "http.prefillResponse": {
            "type": "object",
            "properties": {
                "found": {"type": "boolean"},
                "prefill": {"$ref": "#/definitions/domain.FoodPrefill"}
            }
        },
        "http.registerRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8}
            }
        },
        "http.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "http.tokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "http.userResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "FitJournal API",
	Description:      "Workout and nutrition journal with weekly summaries and barcode prefill.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
