// Package docs registers the OpenAPI description served at /swagger.
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
        "/stocks": {
            "get": {
                "description": "Get every holding, optionally filtered by exact symbol",
                "produces": ["application/json"],
                "tags": ["stocks"],
                "summary": "List holdings",
                "parameters": [
                    {"type": "string", "description": "Exact, case-sensitive symbol", "name": "symbol", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Holdings", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Holding"}}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Add a holding; symbol, purchase_price and shares are required",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stocks"],
                "summary": "Create holding",
                "parameters": [
                    {"description": "Holding details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.HoldingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Holding created", "schema": {"$ref": "#/definitions/handlers.IDResponse"}},
                    "400": {"description": "Malformed data or duplicate symbol", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/stocks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stocks"],
                "summary": "Get holding",
                "parameters": [
                    {"type": "string", "description": "Holding ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Holding", "schema": {"$ref": "#/definitions/models.Holding"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Overwrite the supplied fields of a holding",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stocks"],
                "summary": "Update holding",
                "parameters": [
                    {"type": "string", "description": "Holding ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.HoldingRequest"}}
                ],
                "responses": {
                    "200": {"description": "Holding updated", "schema": {"$ref": "#/definitions/handlers.IDResponse"}},
                    "400": {"description": "Malformed data", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "415": {"description": "Body is not JSON", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["stocks"],
                "summary": "Delete holding",
                "parameters": [
                    {"type": "string", "description": "Holding ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Holding deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/stock-value/{id}": {
            "get": {
                "description": "Current price and value of one holding",
                "produces": ["application/json"],
                "tags": ["valuation"],
                "summary": "Holding value",
                "parameters": [
                    {"type": "string", "description": "Holding ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Holding value", "schema": {"$ref": "#/definitions/services.StockValue"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Price unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/portfolio-value": {
            "get": {
                "description": "Current value of every holding combined; fails if any price is unavailable",
                "produces": ["application/json"],
                "tags": ["valuation"],
                "summary": "Portfolio value",
                "responses": {
                    "200": {"description": "Portfolio value", "schema": {"$ref": "#/definitions/services.PortfolioValue"}},
                    "500": {"description": "Price unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/capital-gains": {
            "get": {
                "description": "Gain of every holding inside the exclusive share bounds. Failed prices count as zero.",
                "produces": ["application/json"],
                "tags": ["gains"],
                "summary": "Capital gains",
                "parameters": [
                    {"type": "integer", "description": "Only holdings with more shares than this", "name": "numsharesgt", "in": "query"},
                    {"type": "integer", "description": "Only holdings with fewer shares than this", "name": "numshareslt", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Capital gains", "schema": {"$ref": "#/definitions/services.CapitalGains"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Healthy", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Database unreachable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/admin/shutdown": {
            "post": {
                "security": [{"AdminKeyAuth": []}],
                "description": "Drain in-flight requests and stop the service",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Shut down",
                "responses": {
                    "202": {"description": "Shutdown started", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Invalid admin key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Admin key not configured", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.HoldingRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "symbol": {"type": "string"},
                "purchase_price": {"type": "number"},
                "purchase_date": {"type": "string", "example": "2024-01-02"},
                "shares": {"type": "number"}
            }
        },
        "handlers.IDResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "models.Holding": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "symbol": {"type": "string"},
                "purchase_price": {"type": "number"},
                "purchase_date": {"type": "string"},
                "shares": {"type": "integer"}
            }
        },
        "services.StockValue": {
            "type": "object",
            "properties": {
                "symbol": {"type": "string"},
                "ticker": {"type": "number"},
                "stock_value": {"type": "number"}
            }
        },
        "services.PortfolioValue": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "05-03-2024"},
                "portfolio_value": {"type": "number"}
            }
        },
        "services.GainRecord": {
            "type": "object",
            "properties": {
                "symbol": {"type": "string"},
                "current_price": {"type": "number"},
                "gain": {"type": "number"}
            }
        },
        "services.CapitalGains": {
            "type": "object",
            "properties": {
                "total_gains": {"type": "number"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/services.GainRecord"}}
            }
        }
    },
    "securityDefinitions": {
        "AdminKeyAuth": {
            "type": "apiKey",
            "name": "X-Admin-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Stocks Portfolio API",
	Description:      "Stock portfolio manager and capital gains calculator.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
