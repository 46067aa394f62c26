// Package docs registers the Swagger document served at /swagger/.
// It is kept in the layout swag init writes; regenerate with go generate ./docs
// after changing handler annotations.
package docs

//go:generate swag init -g cmd/main.go -d .. -o .

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
        "/": {
            "get": {
                "tags": [
                    "pages"
                ],
                "summary": "Index",
                "responses": {
                    "303": {
                        "description": "Redirect to /user/healthcheck",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/healthcheck": {
            "get": {
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "health-checks"
                ],
                "summary": "List all health checks",
                "responses": {
                    "200": {
                        "description": "HTML page",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "303": {
                        "description": "Not logged in, redirect to /login",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health-checks"
                ],
                "summary": "Record a health check for a user",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "user_id",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Height, cm",
                        "name": "height",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Weight, kg",
                        "name": "weight",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Systolic blood pressure",
                        "name": "blood_pressure_high",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Diastolic blood pressure",
                        "name": "blood_pressure_low",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Blood sugar, mg/dL",
                        "name": "blood_sugar",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /healthcheck",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Invalid or missing field",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/login": {
            "get": {
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Login page",
                "responses": {
                    "200": {
                        "description": "HTML form",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "303": {
                        "description": "Already logged in, redirect to /",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Verifies the credentials, opens a session and sets the session cookie.",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "User login",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Username",
                        "name": "username",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Password",
                        "name": "password",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Session cookie set, redirect to /",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "Login page with an error message",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/logout": {
            "post": {
                "description": "Deletes the session and clears the session cookie.",
                "tags": [
                    "auth"
                ],
                "summary": "Log out",
                "responses": {
                    "303": {
                        "description": "Redirect to /login",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/new_healthcheck": {
            "get": {
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "health-checks"
                ],
                "summary": "New health check form",
                "responses": {
                    "200": {
                        "description": "HTML form",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "303": {
                        "description": "Not logged in, redirect to /login",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health-checks"
                ],
                "summary": "Record my health check",
                "parameters": [
                    {
                        "type": "number",
                        "description": "Height, cm",
                        "name": "height",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Weight, kg",
                        "name": "weight",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Systolic blood pressure",
                        "name": "blood_pressure_high",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Diastolic blood pressure",
                        "name": "blood_pressure_low",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Blood sugar, mg/dL",
                        "name": "blood_sugar",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /user/healthcheck",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Invalid or missing field",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/register": {
            "get": {
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Registration page",
                "responses": {
                    "200": {
                        "description": "HTML form",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new user account with a unique username. The password is hashed before storing.",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Username",
                        "name": "username",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Password",
                        "name": "password",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /login",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Missing username or password / username already exists",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/user": {
            "get": {
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "users"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "HTML page",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "303": {
                        "description": "Not logged in, redirect to /login",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Create a user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Username",
                        "name": "username",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Password",
                        "name": "password",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "Redirect to /user",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Missing username or password / username already exists",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/user/healthcheck": {
            "get": {
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "health-checks"
                ],
                "summary": "My health checks",
                "responses": {
                    "200": {
                        "description": "HTML page",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "303": {
                        "description": "Not logged in, redirect to /login",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "With the menu field the latest record is sent to the completion service and the suggestion is rendered. With the healthcheck field the measurements are stored.",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "health-checks"
                ],
                "summary": "Suggest meals or record a health check",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Request a meal suggestion",
                        "name": "menu",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Record the submitted measurements",
                        "name": "healthcheck",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "number",
                        "description": "Height, cm",
                        "name": "height",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "number",
                        "description": "Weight, kg",
                        "name": "weight",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "Systolic blood pressure",
                        "name": "blood_pressure_high",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "Diastolic blood pressure",
                        "name": "blood_pressure_low",
                        "in": "formData",
                        "required": false
                    },
                    {
                        "type": "number",
                        "description": "Blood sugar, mg/dL",
                        "name": "blood_sugar",
                        "in": "formData",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "HTML page with the suggestion",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "303": {
                        "description": "Record stored, redirect to /user/healthcheck",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Invalid or missing field",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "description": "Error message",
                    "type": "string",
                    "default": "Internal server error"
                },
                "field": {
                    "description": "Offending form field, set for validation errors",
                    "type": "string",
                    "default": "height"
                }
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
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "gw-health-tracker API",
	Description:      "Personal health tracker: accounts, health check records and meal suggestions",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
