// Package docs holds the swagger description served under /swagger.
// Regenerate with: swag init -g cmd/pricing_backend/main.go -o cmd/docs
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
                "tags": ["auth"],
                "summary": "User login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "login", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Invalid credentials"}, "429": {"description": "Too many requests"}}
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "register", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Validation failed"}}
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current user",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthenticated"}}
            }
        },
        "/currencies": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["currencies"],
                "summary": "List all currencies",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["currencies"],
                "summary": "Create a new currency",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "currency", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCurrencyRequest"}}],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Validation failed"}}
            }
        },
        "/currencies/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["currencies"],
                "summary": "Get a currency by ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["currencies"],
                "summary": "Update a currency",
                "consumes": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "currency", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateCurrencyRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "422": {"description": "Validation failed"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["currencies"],
                "summary": "Delete a currency",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "409": {"description": "Currency in use"}}
            }
        },
        "/products": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "List all products",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Create a product",
                "consumes": ["application/json"],
                "parameters": [{"in": "body", "name": "product", "required": true, "schema": {"$ref": "#/definitions/dto.CreateProductRequest"}}],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Validation failed"}}
            }
        },
        "/products/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Search products",
                "parameters": [
                    {"type": "string", "name": "name", "in": "query"},
                    {"type": "string", "name": "currency_symbol", "in": "query"},
                    {"type": "number", "name": "min_price", "in": "query"},
                    {"type": "number", "name": "max_price", "in": "query"},
                    {"type": "number", "name": "min_tax_cost", "in": "query"},
                    {"type": "number", "name": "max_tax_cost", "in": "query"},
                    {"type": "number", "name": "min_manufacturing_cost", "in": "query"},
                    {"type": "number", "name": "max_manufacturing_cost", "in": "query"},
                    {"enum": ["name", "price", "tax_cost", "manufacturing_cost", "created_at", "updated_at"], "type": "string", "name": "sort_by", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "name": "sort_order", "in": "query"},
                    {"type": "integer", "name": "per_page", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Validation failed"}}
            }
        },
        "/products/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Export products",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/products/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Get a product by ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Update a product",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "product", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateProductRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "422": {"description": "Validation failed"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Delete a product",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/products/{id}/prices": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["product-prices"],
                "summary": "List a product's prices",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["product-prices"],
                "summary": "Derive a product price in another currency",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "price", "required": true, "schema": {"$ref": "#/definitions/dto.CreateProductPriceRequest"}}
                ],
                "responses": {"200": {"description": "Updated"}, "201": {"description": "Created"}, "404": {"description": "Not found"}, "422": {"description": "Validation failed"}}
            }
        },
        "/product-prices/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["product-prices"],
                "summary": "Export product prices",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/event-logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["event-logs"],
                "summary": "List audit entries",
                "parameters": [
                    {"enum": ["POST", "PUT", "DELETE"], "type": "string", "name": "event_type", "in": "query"},
                    {"type": "string", "name": "resource_type", "in": "query"},
                    {"type": "integer", "name": "user_id", "in": "query"},
                    {"enum": ["id", "created_at", "event_type", "resource_type", "user_id"], "type": "string", "name": "sort_by", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "name": "sort_order", "in": "query"},
                    {"type": "integer", "name": "per_page", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/event-logs/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["event-logs"],
                "summary": "Export audit entries",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"type": "string", "name": "start_date", "in": "query"},
                    {"type": "string", "name": "end_date", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}, "422": {"description": "Validation failed"}}
            }
        },
        "/event-logs/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["event-logs"],
                "summary": "Get an audit entry",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {"email": {"type": "string"}, "name": {"type": "string", "maxLength": 255}, "password": {"type": "string", "minLength": 8}}
        },
        "dto.CreateCurrencyRequest": {
            "type": "object",
            "required": ["exchange_rate", "name", "symbol"],
            "properties": {"exchange_rate": {"type": "number", "minimum": 0, "maximum": 999999.9999}, "name": {"type": "string", "maxLength": 255}, "symbol": {"type": "string", "maxLength": 10}}
        },
        "dto.UpdateCurrencyRequest": {
            "type": "object",
            "properties": {"exchange_rate": {"type": "number", "minimum": 0, "maximum": 999999.9999}, "name": {"type": "string", "maxLength": 255}, "symbol": {"type": "string", "maxLength": 10}}
        },
        "dto.CreateProductRequest": {
            "type": "object",
            "required": ["currency_id", "description", "name", "price"],
            "properties": {
                "name": {"type": "string", "maxLength": 255},
                "description": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "currency_id": {"type": "integer"},
                "tax_cost": {"type": "number", "minimum": 0},
                "manufacturing_cost": {"type": "number", "minimum": 0},
                "create_product_prices": {"type": "boolean"}
            }
        },
        "dto.UpdateProductRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 255},
                "description": {"type": "string"},
                "price": {"type": "number", "minimum": 0},
                "currency_id": {"type": "integer"},
                "tax_cost": {"type": "number", "minimum": 0},
                "manufacturing_cost": {"type": "number", "minimum": 0}
            }
        },
        "dto.CreateProductPriceRequest": {
            "type": "object",
            "required": ["currency_id"],
            "properties": {"currency_id": {"type": "integer"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Product Pricing API",
	Description:      "Products, currencies, derived multi-currency prices and their audit trail.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
