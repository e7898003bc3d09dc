// Package docs holds the swagger document for the pricing API.
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
        "/api/calculate_price/{product_id}": {
            "get": {
                "description": "Picks the product row from group_a or group_b by weekly revenue and applies the weekday demand, A/B, seller trust and optional seasonal adjustments scaled by price elasticity.",
                "produces": ["application/json"],
                "tags": ["Pricing"],
                "summary": "Calculate the ideal price of a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "product_id", "in": "path", "required": true},
                    {"type": "string", "format": "date", "description": "Calculation date (YYYY-MM-DD), defaults to today", "name": "date", "in": "query"},
                    {"type": "boolean", "default": false, "description": "Apply the seasonal price increase", "name": "seasonal", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Ideal price", "schema": {"$ref": "#/definitions/domain.PriceResult"}},
                    "400": {"description": "Invalid date format", "schema": {"$ref": "#/definitions/rest.PricingErrorResponse"}},
                    "404": {"description": "Product not found in any dataset, or the product id is not a non-negative integer", "schema": {"$ref": "#/definitions/rest.PricingErrorResponse"}},
                    "500": {"description": "Dataset missing or malformed", "schema": {"$ref": "#/definitions/rest.PricingErrorResponse"}}
                }
            }
        },
        "/api/v1/admin/datasets/{group}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Datasets"],
                "summary": "Summarise one dataset group",
                "parameters": [
                    {"enum": ["group_a", "group_b"], "type": "string", "name": "group", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Dataset summary", "schema": {"$ref": "#/definitions/domain.DatasetSummary"}},
                    "400": {"description": "Unknown group", "schema": {"$ref": "#/definitions/rest.ResponseError"}},
                    "401": {"description": "Missing or invalid token"},
                    "403": {"description": "Admin access required"}
                }
            }
        },
        "/api/v1/admin/datasets/cache": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Datasets"],
                "summary": "Drop cached dataset snapshots",
                "responses": {
                    "200": {"description": "Cache invalidated"},
                    "404": {"description": "Dataset cache disabled", "schema": {"$ref": "#/definitions/rest.ResponseError"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "Service is up"}}
            }
        }
    },
    "definitions": {
        "domain.AdjustmentBreakdown": {
            "type": "object",
            "properties": {
                "day_of_the_week_demand": {"type": "number"},
                "seasonal_demand": {"type": "number"},
                "elasticity": {"type": "number"},
                "seller_trust": {"type": "number"},
                "a_b_testing": {"type": "number"}
            }
        },
        "domain.PriceResult": {
            "type": "object",
            "properties": {
                "product_id": {"type": "integer"},
                "sellers_price": {"type": "number"},
                "ideal_price": {"type": "number"},
                "adjustment_parameters": {"$ref": "#/definitions/domain.AdjustmentBreakdown"},
                "data_source": {"type": "string", "enum": ["group_a", "group_b"]}
            }
        },
        "domain.DatasetSummary": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "rows": {"type": "integer"},
                "columns": {"type": "array", "items": {"type": "string"}},
                "product_ids": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "rest.PricingErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "rest.ResponseError": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Ideal Price API",
	Description:      "Computes recommended product prices from A/B demand datasets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
