// Package swagger holds the console API docs served on /swagger/*.
package swagger

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
        "/api/v1/session/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "store the console session",
                "parameters": [
                    {"description": "session", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/api/v1/session/logout": {
            "post": {
                "tags": ["session"],
                "summary": "clear the console session",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "current session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}}
            }
        },
        "/api/v1/requests": {
            "get": {
                "produces": ["application/json"],
                "tags": ["requests"],
                "summary": "list reservation requests",
                "parameters": [
                    {"type": "string", "description": "rechazada, reservada or en_proceso", "name": "status", "in": "query"},
                    {"type": "string", "description": "email substring", "name": "email", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.requestsResponse"}}}
            }
        },
        "/api/v1/requests/{id}/modal": {
            "post": {
                "produces": ["application/json"],
                "tags": ["modals"],
                "summary": "open a booking modal for a request",
                "parameters": [
                    {"type": "integer", "description": "request id", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "block until rooms are resolved", "name": "wait", "in": "query"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/booking.ModalView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/api/v1/forms/request": {
            "get": {
                "produces": ["application/json"],
                "tags": ["modals"],
                "summary": "placeholder request form modal",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.subjectResponse"}}}
            }
        },
        "/api/v1/modals/{modalId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["modals"],
                "summary": "booking modal state",
                "parameters": [{"type": "string", "description": "modal id", "name": "modalId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/booking.ModalView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["modals"],
                "summary": "close a modal without submitting",
                "parameters": [{"type": "string", "description": "modal id", "name": "modalId", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/v1/modals/{modalId}/view": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["modals"],
                "summary": "switch between rooms and schedules, toggles when view is empty",
                "parameters": [
                    {"type": "string", "description": "modal id", "name": "modalId", "in": "path", "required": true},
                    {"description": "view", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.viewRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/booking.ModalView"}}}
            }
        },
        "/api/v1/modals/{modalId}/rooms/{roomId}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["modals"],
                "summary": "select a room, reserved rooms are ignored",
                "parameters": [
                    {"type": "string", "description": "modal id", "name": "modalId", "in": "path", "required": true},
                    {"type": "integer", "description": "room id", "name": "roomId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.selectRoomResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/api/v1/modals/{modalId}/times": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["modals"],
                "summary": "override start and end time in the schedules view",
                "parameters": [
                    {"type": "string", "description": "modal id", "name": "modalId", "in": "path", "required": true},
                    {"description": "times", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.timesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/booking.ModalView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/api/v1/modals/{modalId}/approve": {
            "post": {
                "produces": ["application/json"],
                "tags": ["modals"],
                "summary": "approve the request with the selected room and times",
                "parameters": [{"type": "string", "description": "modal id", "name": "modalId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/api/v1/modals/{modalId}/reject": {
            "post": {
                "produces": ["application/json"],
                "tags": ["modals"],
                "summary": "reject the request",
                "parameters": [{"type": "string", "description": "modal id", "name": "modalId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/api/v1/users/info": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "register additional user info",
                "parameters": [
                    {"description": "user info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.UserInfo"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errs.ValidationErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["token"],
            "properties": {
                "token": {"type": "string"},
                "role": {"type": "string"},
                "isFirstTime": {"type": "boolean"}
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "role": {"type": "string"},
                "isAdmin": {"type": "boolean"},
                "isFirstTime": {"type": "boolean"},
                "needsUserInfo": {"type": "boolean"},
                "title": {"type": "string"},
                "subtitle": {"type": "string"}
            }
        },
        "handler.requestsResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/model.Request"}},
                "loading": {"type": "boolean"},
                "lastError": {"type": "string"}
            }
        },
        "handler.subjectResponse": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "request": {"$ref": "#/definitions/model.Request"}
            }
        },
        "handler.viewRequest": {
            "type": "object",
            "properties": {"view": {"type": "string", "enum": ["rooms", "schedules"]}}
        },
        "handler.timesRequest": {
            "type": "object",
            "properties": {
                "startTime": {"type": "string"},
                "endTime": {"type": "string"}
            }
        },
        "handler.selectRoomResponse": {
            "type": "object",
            "properties": {
                "selected": {"type": "boolean"},
                "modal": {"$ref": "#/definitions/booking.ModalView"}
            }
        },
        "booking.ModalView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "request": {"$ref": "#/definitions/model.Request"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "timesEditable": {"type": "boolean"},
                "loading": {"type": "boolean"},
                "rooms": {"type": "array", "items": {"$ref": "#/definitions/model.Room"}},
                "emptyMessage": {"type": "string"},
                "lastError": {"type": "string"}
            }
        },
        "model.Request": {
            "type": "object",
            "properties": {
                "id_solicitudes": {"type": "integer"},
                "Nombre": {"type": "string"},
                "Apellido": {"type": "string"},
                "Correo": {"type": "string"},
                "Telefono": {"type": "string"},
                "Secretaria": {"type": "string"},
                "Num_asistentes": {"type": "integer"},
                "Fecha_reserva": {"type": "string"},
                "Hora_inicio": {"type": "string"},
                "Hora_final": {"type": "string"},
                "Estado": {"type": "integer"},
                "Proposito": {"type": "string"},
                "Computador": {"type": "boolean"},
                "HDMI": {"type": "boolean"}
            }
        },
        "model.Room": {
            "type": "object",
            "properties": {
                "id_sala": {"type": "integer"},
                "estado": {"type": "integer"},
                "horaInicio": {"type": "string"},
                "horaFin": {"type": "string"},
                "intervalos": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {"type": "integer"},
                            "inicio": {"type": "string"},
                            "fin": {"type": "string"}
                        }
                    }
                }
            }
        },
        "model.UserInfo": {
            "type": "object",
            "required": ["name", "lastName", "ministry"],
            "properties": {
                "name": {"type": "string"},
                "lastName": {"type": "string"},
                "ministry": {"type": "string"}
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
	Title:            "Room booking console API",
	Description:      "Administrator console for reservation requests and room bookings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
