package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "TenderSaarthi API",
        "description": "Public tender listings, tender posting, bookmarks and alerts.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Tenders",
            "description": "Listings and tender posting"
        },
        {
            "name": "Authentication",
            "description": "Accounts and sessions"
        },
        {
            "name": "Saved",
            "description": "Bookmarked tenders"
        },
        {
            "name": "Alerts",
            "description": "WhatsApp alert subscription"
        }
    ],
    "paths": {
        "/tenders": {
            "get": {
                "tags": [
                    "Tenders"
                ],
                "summary": "List tenders",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "type",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "default",
                            "archive",
                            "latest",
                            "closing-soon"
                        ]
                    },
                    {
                        "$ref": "#/parameters/q"
                    },
                    {
                        "$ref": "#/parameters/sort"
                    },
                    {
                        "$ref": "#/parameters/category"
                    },
                    {
                        "$ref": "#/parameters/state"
                    },
                    {
                        "$ref": "#/parameters/location"
                    },
                    {
                        "$ref": "#/parameters/authority"
                    },
                    {
                        "$ref": "#/parameters/tenderType"
                    },
                    {
                        "$ref": "#/parameters/value"
                    },
                    {
                        "$ref": "#/parameters/minPrice"
                    },
                    {
                        "$ref": "#/parameters/maxPrice"
                    },
                    {
                        "$ref": "#/parameters/publishDateFrom"
                    },
                    {
                        "$ref": "#/parameters/publishDateTo"
                    },
                    {
                        "$ref": "#/parameters/submissionDateFrom"
                    },
                    {
                        "$ref": "#/parameters/submissionDateTo"
                    },
                    {
                        "$ref": "#/parameters/page"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Listing page",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Tenders could not be loaded; data holds an empty page",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Create a tender, as draft or published",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpsertTenderRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "422": {
                        "description": "Not publishable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/tenders/archive": {
            "get": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Closed tenders",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "$ref": "#/parameters/q"
                    },
                    {
                        "$ref": "#/parameters/sort"
                    },
                    {
                        "$ref": "#/parameters/category"
                    },
                    {
                        "$ref": "#/parameters/state"
                    },
                    {
                        "$ref": "#/parameters/location"
                    },
                    {
                        "$ref": "#/parameters/authority"
                    },
                    {
                        "$ref": "#/parameters/tenderType"
                    },
                    {
                        "$ref": "#/parameters/value"
                    },
                    {
                        "$ref": "#/parameters/minPrice"
                    },
                    {
                        "$ref": "#/parameters/maxPrice"
                    },
                    {
                        "$ref": "#/parameters/publishDateFrom"
                    },
                    {
                        "$ref": "#/parameters/publishDateTo"
                    },
                    {
                        "$ref": "#/parameters/submissionDateFrom"
                    },
                    {
                        "$ref": "#/parameters/submissionDateTo"
                    },
                    {
                        "$ref": "#/parameters/page"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Listing page",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Tenders could not be loaded; data holds an empty page",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/tenders/latest": {
            "get": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Tenders published in the last 7 days",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "$ref": "#/parameters/q"
                    },
                    {
                        "$ref": "#/parameters/sort"
                    },
                    {
                        "$ref": "#/parameters/category"
                    },
                    {
                        "$ref": "#/parameters/state"
                    },
                    {
                        "$ref": "#/parameters/location"
                    },
                    {
                        "$ref": "#/parameters/authority"
                    },
                    {
                        "$ref": "#/parameters/tenderType"
                    },
                    {
                        "$ref": "#/parameters/value"
                    },
                    {
                        "$ref": "#/parameters/minPrice"
                    },
                    {
                        "$ref": "#/parameters/maxPrice"
                    },
                    {
                        "$ref": "#/parameters/publishDateFrom"
                    },
                    {
                        "$ref": "#/parameters/publishDateTo"
                    },
                    {
                        "$ref": "#/parameters/submissionDateFrom"
                    },
                    {
                        "$ref": "#/parameters/submissionDateTo"
                    },
                    {
                        "$ref": "#/parameters/page"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Listing page",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Tenders could not be loaded; data holds an empty page",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/tenders/closing-soon": {
            "get": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Tenders closing within 7 days",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "$ref": "#/parameters/q"
                    },
                    {
                        "$ref": "#/parameters/sort"
                    },
                    {
                        "$ref": "#/parameters/category"
                    },
                    {
                        "$ref": "#/parameters/state"
                    },
                    {
                        "$ref": "#/parameters/location"
                    },
                    {
                        "$ref": "#/parameters/authority"
                    },
                    {
                        "$ref": "#/parameters/tenderType"
                    },
                    {
                        "$ref": "#/parameters/value"
                    },
                    {
                        "$ref": "#/parameters/minPrice"
                    },
                    {
                        "$ref": "#/parameters/maxPrice"
                    },
                    {
                        "$ref": "#/parameters/publishDateFrom"
                    },
                    {
                        "$ref": "#/parameters/publishDateTo"
                    },
                    {
                        "$ref": "#/parameters/submissionDateFrom"
                    },
                    {
                        "$ref": "#/parameters/submissionDateTo"
                    },
                    {
                        "$ref": "#/parameters/page"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Listing page",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Tenders could not be loaded; data holds an empty page",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/tenders/filters": {
            "get": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Filter facets and slider range",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Unavailable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/tenders/price-range": {
            "get": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Convert slider positions and rupee bounds",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "minPos",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "maxPos",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "minPrice",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "maxPrice",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "legacy",
                        "in": "query",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/tenders/export": {
            "get": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Export a listing as CSV or PDF",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    },
                    {
                        "name": "type",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "$ref": "#/parameters/q"
                    },
                    {
                        "$ref": "#/parameters/sort"
                    },
                    {
                        "$ref": "#/parameters/category"
                    },
                    {
                        "$ref": "#/parameters/state"
                    },
                    {
                        "$ref": "#/parameters/location"
                    },
                    {
                        "$ref": "#/parameters/authority"
                    },
                    {
                        "$ref": "#/parameters/tenderType"
                    },
                    {
                        "$ref": "#/parameters/value"
                    },
                    {
                        "$ref": "#/parameters/minPrice"
                    },
                    {
                        "$ref": "#/parameters/maxPrice"
                    },
                    {
                        "$ref": "#/parameters/publishDateFrom"
                    },
                    {
                        "$ref": "#/parameters/publishDateTo"
                    },
                    {
                        "$ref": "#/parameters/submissionDateFrom"
                    },
                    {
                        "$ref": "#/parameters/submissionDateTo"
                    },
                    {
                        "$ref": "#/parameters/page"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Unsupported format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "503": {
                        "description": "Unavailable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/tenders/{id}": {
            "get": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Tender detail; drafts only for their author",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Replace a tender",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpsertTenderRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Delete a tender",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/tenders/{id}/publish": {
            "post": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Publish a draft",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "422": {
                        "description": "Not publishable",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Create an account",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Email taken",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Authenticate user",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Refresh access token",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RefreshTokenRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Invalid token",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Revoke a refresh token",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RefreshTokenRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Logged out"
                    }
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Current user",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/me/tenders": {
            "get": {
                "tags": [
                    "Tenders"
                ],
                "summary": "Tenders posted by the current user",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "$ref": "#/parameters/page"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/me/saved": {
            "get": {
                "tags": [
                    "Saved"
                ],
                "summary": "Saved tenders",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "$ref": "#/parameters/page"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/me/saved/{id}": {
            "get": {
                "tags": [
                    "Saved"
                ],
                "summary": "Whether a tender is saved",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Saved"
                ],
                "summary": "Save a tender",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Saved"
                ],
                "summary": "Unsave a tender",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/me/alerts": {
            "get": {
                "tags": [
                    "Alerts"
                ],
                "summary": "Alert subscription",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "No subscription",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Alerts"
                ],
                "summary": "Replace the alert subscription",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AlertPreferenceRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Alerts"
                ],
                "summary": "Remove the alert subscription",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Removed"
                    }
                }
            }
        }
    },
    "parameters": {
        "q": {
            "name": "q",
            "in": "query",
            "type": "string",
            "description": "Free text over title, reference, location and organisation"
        },
        "sort": {
            "name": "sort",
            "in": "query",
            "type": "string",
            "description": "Ordering",
            "enum": [
                "newest",
                "oldest",
                "closing",
                "value_high"
            ]
        },
        "category": {
            "name": "category",
            "in": "query",
            "type": "string",
            "description": "Comma separated categories"
        },
        "state": {
            "name": "state",
            "in": "query",
            "type": "string",
            "description": "Comma separated states"
        },
        "location": {
            "name": "location",
            "in": "query",
            "type": "string",
            "description": "Comma separated location fragments"
        },
        "authority": {
            "name": "authority",
            "in": "query",
            "type": "string",
            "description": "Comma separated authority fragments"
        },
        "tenderType": {
            "name": "tender_type",
            "in": "query",
            "type": "string",
            "description": "Comma separated tender types"
        },
        "value": {
            "name": "value",
            "in": "query",
            "type": "string",
            "description": "Comma separated value label fragments"
        },
        "minPrice": {
            "name": "minPrice",
            "in": "query",
            "type": "integer",
            "description": "Lower bound in rupees"
        },
        "maxPrice": {
            "name": "maxPrice",
            "in": "query",
            "type": "integer",
            "description": "Upper bound in rupees"
        },
        "publishDateFrom": {
            "name": "publishDateFrom",
            "in": "query",
            "type": "string",
            "description": "YYYY-MM-DD"
        },
        "publishDateTo": {
            "name": "publishDateTo",
            "in": "query",
            "type": "string",
            "description": "YYYY-MM-DD, inclusive"
        },
        "submissionDateFrom": {
            "name": "submissionDateFrom",
            "in": "query",
            "type": "string",
            "description": "YYYY-MM-DD"
        },
        "submissionDateTo": {
            "name": "submissionDateTo",
            "in": "query",
            "type": "string",
            "description": "YYYY-MM-DD, inclusive"
        },
        "page": {
            "name": "page",
            "in": "query",
            "type": "integer",
            "description": "Page, 20 tenders each"
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "meta": {
                    "type": "object"
                }
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "RegisterRequest": {
            "type": "object",
            "required": [
                "email",
                "password",
                "full_name"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "RefreshTokenRequest": {
            "type": "object",
            "required": [
                "refresh_token"
            ],
            "properties": {
                "refresh_token": {
                    "type": "string"
                }
            }
        },
        "UpsertTenderRequest": {
            "type": "object",
            "required": [
                "title",
                "authority",
                "state",
                "category"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "authority": {
                    "type": "string"
                },
                "organisationChain": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "tenderType": {
                    "type": "string"
                },
                "tenderValue": {
                    "type": "string"
                },
                "tenderValueNumeric": {
                    "type": "integer"
                },
                "publishedDate": {
                    "type": "string"
                },
                "bidSubmissionEnd": {
                    "type": "string"
                },
                "bidEndTs": {
                    "type": "string",
                    "format": "date-time"
                },
                "referenceNo": {
                    "type": "string"
                },
                "publish": {
                    "type": "boolean"
                }
            }
        },
        "AlertPreferenceRequest": {
            "type": "object",
            "required": [
                "whatsappNumber"
            ],
            "properties": {
                "whatsappNumber": {
                    "type": "string"
                },
                "enabled": {
                    "type": "boolean"
                },
                "frequency": {
                    "type": "string",
                    "enum": [
                        "instant"
                    ]
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "states": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "keywords": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "minValue": {
                    "type": "integer"
                },
                "maxValue": {
                    "type": "integer"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
