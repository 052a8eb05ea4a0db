// Package api holds the OpenAPI description served at /docs.
package api

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
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Entrypoint for the API, listing all endpoints"
            },
            "options": {
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/version": {
            "get": {
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Returns the software version of the API"
            },
            "options": {
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Returns general information about the v1 API"
            },
            "delete": {
                "tags": [
                    "v1"
                ],
                "summary": "Delete everything",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "description": "Permanently deletes all resources",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Must have the value 'yes-please-delete-everything'",
                        "name": "confirm",
                        "in": "query"
                    }
                ]
            },
            "options": {
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/clients": {
            "get": {
                "tags": [
                    "Clients"
                ],
                "summary": "Get clients",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Returns a list of clients",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Case insensitive text search",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "If true, '*' in search matches any text",
                        "name": "pattern",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Month name, e.g. 'Março'",
                        "name": "period",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset of the first record returned",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of records to return, -1 for all",
                        "name": "limit",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Clients"
                ],
                "summary": "Create clients",
                "responses": {
                    "201": {
                        "description": "Created"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Creates new clients. Derived fields are computed by the server.",
                "parameters": [
                    {
                        "description": "List of records",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "options": {
                "tags": [
                    "Clients"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/clients/{id}": {
            "get": {
                "tags": [
                    "Clients"
                ],
                "summary": "Get single record",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "patch": {
                "tags": [
                    "Clients"
                ],
                "summary": "Update record",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Only values to be updated need to be specified",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Clients"
                ],
                "summary": "Delete record",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "options": {
                "tags": [
                    "Clients"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/v1/credits": {
            "get": {
                "tags": [
                    "Credits"
                ],
                "summary": "Get credits",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Returns a list of credits",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Case insensitive text search",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "If true, '*' in search matches any text",
                        "name": "pattern",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Month name, e.g. 'Março'",
                        "name": "period",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset of the first record returned",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of records to return, -1 for all",
                        "name": "limit",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Credits"
                ],
                "summary": "Create credits",
                "responses": {
                    "201": {
                        "description": "Created"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Creates new credits. Derived fields are computed by the server.",
                "parameters": [
                    {
                        "description": "List of records",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "options": {
                "tags": [
                    "Credits"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/credits/{id}": {
            "get": {
                "tags": [
                    "Credits"
                ],
                "summary": "Get single record",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "patch": {
                "tags": [
                    "Credits"
                ],
                "summary": "Update record",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Only values to be updated need to be specified",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Credits"
                ],
                "summary": "Delete record",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "options": {
                "tags": [
                    "Credits"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/v1/cash-flows": {
            "get": {
                "tags": [
                    "Cash Flow"
                ],
                "summary": "Get cash flow entries",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Returns a list of cash flow entries",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Case insensitive text search",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "If true, '*' in search matches any text",
                        "name": "pattern",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Month name, e.g. 'Março'",
                        "name": "period",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset of the first record returned",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of records to return, -1 for all",
                        "name": "limit",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Cash Flow"
                ],
                "summary": "Create cash flow entries",
                "responses": {
                    "201": {
                        "description": "Created"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Creates new cash flow entries. Derived fields are computed by the server.",
                "parameters": [
                    {
                        "description": "List of records",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "options": {
                "tags": [
                    "Cash Flow"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/cash-flows/{id}": {
            "get": {
                "tags": [
                    "Cash Flow"
                ],
                "summary": "Get single record",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "patch": {
                "tags": [
                    "Cash Flow"
                ],
                "summary": "Update record",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Only values to be updated need to be specified",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Cash Flow"
                ],
                "summary": "Delete record",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "options": {
                "tags": [
                    "Cash Flow"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/v1/expense-controls": {
            "get": {
                "tags": [
                    "Expense Control"
                ],
                "summary": "Get expense control entries",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Returns a list of expense control entries",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Case insensitive text search",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "If true, '*' in search matches any text",
                        "name": "pattern",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Month name, e.g. 'Março'",
                        "name": "period",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset of the first record returned",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of records to return, -1 for all",
                        "name": "limit",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Expense Control"
                ],
                "summary": "Create expense control entries",
                "responses": {
                    "201": {
                        "description": "Created"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Creates new expense control entries. Derived fields are computed by the server.",
                "parameters": [
                    {
                        "description": "List of records",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "options": {
                "tags": [
                    "Expense Control"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/expense-controls/{id}": {
            "get": {
                "tags": [
                    "Expense Control"
                ],
                "summary": "Get single record",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "patch": {
                "tags": [
                    "Expense Control"
                ],
                "summary": "Update record",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Only values to be updated need to be specified",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Expense Control"
                ],
                "summary": "Delete record",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "options": {
                "tags": [
                    "Expense Control"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/v1/investments": {
            "get": {
                "tags": [
                    "Investments"
                ],
                "summary": "Get investments",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Returns a list of investments",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Case insensitive text search",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "If true, '*' in search matches any text",
                        "name": "pattern",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Month name, e.g. 'Março'",
                        "name": "period",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset of the first record returned",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of records to return, -1 for all",
                        "name": "limit",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Investments"
                ],
                "summary": "Create investments",
                "responses": {
                    "201": {
                        "description": "Created"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Creates new investments. Derived fields are computed by the server.",
                "parameters": [
                    {
                        "description": "List of records",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "options": {
                "tags": [
                    "Investments"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/investments/{id}": {
            "get": {
                "tags": [
                    "Investments"
                ],
                "summary": "Get single record",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "patch": {
                "tags": [
                    "Investments"
                ],
                "summary": "Update record",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Only values to be updated need to be specified",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to update",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Investments"
                ],
                "summary": "Delete record",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "options": {
                "tags": [
                    "Investments"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/v1/dashboard": {
            "get": {
                "tags": [
                    "Dashboard"
                ],
                "summary": "Get dashboard",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Returns totals for all record categories",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search for this text in clients, credits and investments",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "If true, '*' in search matches any text",
                        "name": "pattern",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Month name, e.g. 'Março'",
                        "name": "period",
                        "in": "query"
                    }
                ]
            },
            "options": {
                "tags": [
                    "Dashboard"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/alerts": {
            "get": {
                "tags": [
                    "Alerts"
                ],
                "summary": "Get alerts",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Returns the credits and clients that are due soon and the rates of all investments",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Reference date as YYYY-MM-DD. Defaults to the current date.",
                        "name": "today",
                        "in": "query"
                    }
                ]
            },
            "options": {
                "tags": [
                    "Alerts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/derive/clients": {
            "post": {
                "tags": [
                    "Derive"
                ],
                "summary": "Derive clients",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Sets a field on a record and returns it with derived fields recomputed",
                "parameters": [
                    {
                        "description": "record, field and value",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "options": {
                "tags": [
                    "Derive"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/derive/credits": {
            "post": {
                "tags": [
                    "Derive"
                ],
                "summary": "Derive credits",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Sets a field on a record and returns it with derived fields recomputed",
                "parameters": [
                    {
                        "description": "record, field and value",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "options": {
                "tags": [
                    "Derive"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/derive/cash-flows": {
            "post": {
                "tags": [
                    "Derive"
                ],
                "summary": "Derive cash-flows",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Sets a field on a record and returns it with derived fields recomputed",
                "parameters": [
                    {
                        "description": "record, field and value",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "options": {
                "tags": [
                    "Derive"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/derive/expense-controls": {
            "post": {
                "tags": [
                    "Derive"
                ],
                "summary": "Derive expense-controls",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Sets a field on a record and returns it with derived fields recomputed",
                "parameters": [
                    {
                        "description": "record, field and value",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "options": {
                "tags": [
                    "Derive"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/derive/investments": {
            "post": {
                "tags": [
                    "Derive"
                ],
                "summary": "Derive investments",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Sets a field on a record and returns it with derived fields recomputed",
                "parameters": [
                    {
                        "description": "record, field and value",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "options": {
                "tags": [
                    "Derive"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/derive/currency-mask": {
            "post": {
                "tags": [
                    "Derive"
                ],
                "summary": "Mask currency input",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "description": "Reads the digits of a currency input as cents",
                "parameters": [
                    {
                        "description": "input",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "options": {
                "tags": [
                    "Derive"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "description": "Returns the application health and, if not healthy, an error",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "options": {
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "General"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
